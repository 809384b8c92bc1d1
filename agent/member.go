package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/store"
)

// MemberResponder answers questions about ministry team members.
type MemberResponder struct {
	BaseResponder
	members store.MemberStore
}

// NewMemberResponder creates the responder.
func NewMemberResponder(members store.MemberStore, logger logging.Logger) *MemberResponder {
	return &MemberResponder{
		BaseResponder: NewBaseResponder("user_info", logger),
		members:       members,
	}
}

// Process implements core.Responder.
func (r *MemberResponder) Process(_ context.Context, req core.Request) (core.AgentResult, error) {
	member, err := r.lookup(req)
	if errors.Is(err, store.ErrNotFound) {
		return core.AgentResult{
			Success:  true,
			Response: "Não encontrei esse integrante na equipe do ministério.",
		}, nil
	}
	if err != nil {
		return core.AgentResult{}, fmt.Errorf("looking up member: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(member.Name)
	if len(member.Roles) > 0 {
		sb.WriteString(" — " + strings.Join(member.Roles, ", "))
	}
	if len(member.Instruments) > 0 {
		sb.WriteString("\nInstrumentos: " + strings.Join(member.Instruments, ", "))
	}
	if member.Contact != "" {
		sb.WriteString("\nContato: " + member.Contact)
	}

	return core.AgentResult{
		Success:     true,
		Response:    sb.String(),
		Attachments: core.Attachments{User: &core.UserAttachment{Members: []store.Member{member}}},
	}, nil
}

// lookup resolves the member from the mention, or scans the roster for a
// name that appears in the question text.
func (r *MemberResponder) lookup(req core.Request) (store.Member, error) {
	if req.Mention != "" {
		return r.members.FindByName(req.Mention)
	}

	all, err := r.members.All()
	if err != nil {
		return store.Member{}, err
	}
	query := store.Normalize(req.Raw)
	for _, m := range all {
		for _, tok := range strings.Fields(store.Normalize(m.Name)) {
			if len(tok) >= 3 && strings.Contains(query, tok) {
				return m, nil
			}
		}
	}
	return store.Member{}, store.ErrNotFound
}
