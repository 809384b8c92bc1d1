package core

import (
	"context"

	"github.com/louvorkit/louvor/store"
)

// AgentResult is the contract every specialized responder (and the batch
// orchestrator) returns. Attachments carry structured domain data owned by
// the responder; the orchestration core only passes them through.
type AgentResult struct {
	Success     bool        `json:"success"`
	Response    string      `json:"response"`
	Attachments Attachments `json:"attachments,omitempty"`
	Usage       Usage       `json:"usage,omitempty"`
}

// Attachments is the closed union of structured payloads responders can
// attach, keyed by responder identity. During hybrid merging the first
// writer of a field wins; later responders never overwrite an earlier
// responder's payload.
type Attachments struct {
	Music    *MusicAttachment    `json:"music,omitempty"`
	Schedule *ScheduleAttachment `json:"schedule,omitempty"`
	User     *UserAttachment     `json:"user,omitempty"`
}

// Empty reports whether no payload is attached.
func (a Attachments) Empty() bool {
	return a.Music == nil && a.Schedule == nil && a.User == nil
}

// Merge unions other into a without overwriting fields already set.
func (a Attachments) Merge(other Attachments) Attachments {
	if a.Music == nil {
		a.Music = other.Music
	}
	if a.Schedule == nil {
		a.Schedule = other.Schedule
	}
	if a.User == nil {
		a.User = other.User
	}
	return a
}

// MusicAttachment carries songs found by the music responder.
type MusicAttachment struct {
	Songs []store.Song `json:"songs"`
}

// ScheduleAttachment carries rota entries found by the schedule responder.
type ScheduleAttachment struct {
	Entries []store.ScheduleEntry `json:"entries"`
}

// UserAttachment carries members found by the user-info responder.
type UserAttachment struct {
	Members []store.Member `json:"members"`
}

// Request bundles the inputs handed to a responder for one invocation.
type Request struct {
	Raw     string             // Query text after command-prefix removal
	Mention string             // Cleaned @mention, empty if none
	Intent  string             // Informational intent label from classification
	History []ConversationTurn // Already trimmed by the caller
}

// Responder is implemented by every specialized agent. Process owns its own
// data retrieval; a returned error is converted by the dispatcher into a
// failed AgentResult and never propagates to the caller.
type Responder interface {
	Name() string
	Process(ctx context.Context, req Request) (AgentResult, error)
}
