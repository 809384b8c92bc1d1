// Package testutil provides shared builders for package tests: seeded
// catalogs, synthetic conversation histories and a scriptable responder.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/store"
)

// Songs returns n generated catalog entries with stable titles so tests can
// assert ordering across chunk boundaries.
func Songs(n int) []store.Song {
	songs := make([]store.Song, n)
	for i := range songs {
		songs[i] = store.Song{
			ID:     fmt.Sprintf("song-%03d", i+1),
			Title:  fmt.Sprintf("Canção %03d", i+1),
			Artist: "Ministério Teste",
			Themes: []string{"adoração"},
		}
	}
	return songs
}

// SampleSongs returns a small fixed repertoire with realistic Portuguese
// titles, themes and excerpts.
func SampleSongs() []store.Song {
	return []store.Song{
		{
			ID:      "s1",
			Title:   "Grande É o Senhor",
			Artist:  "Adhemar de Campos",
			Themes:  []string{"adoração", "majestade"},
			Excerpt: "Grande é o Senhor e mui digno de louvor",
		},
		{
			ID:      "s2",
			Title:   "Águas Purificadoras",
			Artist:  "Diante do Trono",
			Themes:  []string{"santidade", "renovo"},
			Excerpt: "Águas purificadoras correm neste lugar",
		},
		{
			ID:      "s3",
			Title:   "Benedictus",
			Artist:  "Vencedores por Cristo",
			Themes:  []string{"gratidão", "bênção"},
			Excerpt: "Bendito seja o Senhor Deus de Israel",
		},
	}
}

// SampleMembers returns a small fixed roster.
func SampleMembers() []store.Member {
	return []store.Member{
		{Name: "Ana Souza", Roles: []string{"ministra"}, Instruments: []string{"voz", "violão"}},
		{Name: "Carlos Lima", Roles: []string{"baterista"}, Instruments: []string{"bateria"}},
		{Name: "Mariana Alves", Roles: []string{"tecladista"}, Instruments: []string{"teclado"}},
	}
}

// SampleSchedule returns rota entries relative to ref: one past, two
// upcoming.
func SampleSchedule(ref time.Time) []store.ScheduleEntry {
	return []store.ScheduleEntry{
		{
			Date:    ref.AddDate(0, 0, -7),
			Service: "Culto de domingo",
			Leader:  "Ana Souza",
			Members: []string{"Ana Souza", "Carlos Lima"},
		},
		{
			Date:    ref.AddDate(0, 0, 3),
			Service: "Culto de domingo",
			Leader:  "Ana Souza",
			Members: []string{"Ana Souza", "Mariana Alves"},
			Songs:   []string{"Grande É o Senhor"},
		},
		{
			Date:    ref.AddDate(0, 0, 10),
			Service: "Ensaio geral",
			Leader:  "Carlos Lima",
			Members: []string{"Carlos Lima", "Mariana Alves"},
		},
	}
}

// AlternatingTurns builds n turns alternating user/assistant, starting with
// the user, with numbered contents.
func AlternatingTurns(n int) []core.ConversationTurn {
	turns := make([]core.ConversationTurn, n)
	for i := range turns {
		role := core.RoleUser
		if i%2 == 1 {
			role = core.RoleAssistant
		}
		turns[i] = core.ConversationTurn{Role: role, Content: fmt.Sprintf("turn %d", i+1)}
	}
	return turns
}

// StubResponder is a scriptable core.Responder for dispatcher tests.
type StubResponder struct {
	ResponderName string
	Result        core.AgentResult
	Err           error
	PanicWith     any

	Calls   int
	LastReq core.Request
	LastCtx context.Context
}

// Name implements core.Responder.
func (s *StubResponder) Name() string { return s.ResponderName }

// Process implements core.Responder.
func (s *StubResponder) Process(ctx context.Context, req core.Request) (core.AgentResult, error) {
	s.Calls++
	s.LastReq = req
	s.LastCtx = ctx
	if s.PanicWith != nil {
		panic(s.PanicWith)
	}
	return s.Result, s.Err
}
