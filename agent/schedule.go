package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/store"
)

// upcomingLimit caps how many rota entries one answer lists.
const upcomingLimit = 3

// ScheduleResponder answers rota questions relative to an injected clock.
type ScheduleResponder struct {
	BaseResponder
	schedule store.ScheduleStore
	now      func() time.Time
}

// ScheduleOptions configure a ScheduleResponder.
type ScheduleOptions struct {
	// Now defaults to time.Now; tests inject a fixed clock.
	Now func() time.Time
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewScheduleResponder creates the responder.
func NewScheduleResponder(schedule store.ScheduleStore, optFns ...func(o *ScheduleOptions)) *ScheduleResponder {
	opts := ScheduleOptions{Now: time.Now, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &ScheduleResponder{
		BaseResponder: NewBaseResponder("schedule", opts.Logger),
		schedule:      schedule,
		now:           opts.Now,
	}
}

// Process implements core.Responder.
func (r *ScheduleResponder) Process(_ context.Context, req core.Request) (core.AgentResult, error) {
	ref := r.now()

	var (
		entries []store.ScheduleEntry
		err     error
	)
	if req.Mention != "" {
		entries, err = r.schedule.ForMember(ref, req.Mention)
	} else {
		entries, err = r.schedule.Upcoming(ref, upcomingLimit)
	}
	if err != nil {
		return core.AgentResult{}, fmt.Errorf("reading schedule: %w", err)
	}

	if len(entries) == 0 {
		return core.AgentResult{
			Success:  true,
			Response: "Não há escalas cadastradas para as próximas datas.",
		}, nil
	}
	if len(entries) > upcomingLimit {
		entries = entries[:upcomingLimit]
	}

	var sb strings.Builder
	sb.WriteString("Próximas escalas:\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("- %s, %s", e.Service, formatDate(e.Date)))
		if e.Leader != "" {
			sb.WriteString(" — ministro: " + e.Leader)
		}
		if len(e.Members) > 0 {
			sb.WriteString("\n  Equipe: " + strings.Join(e.Members, ", "))
		}
		if len(e.Songs) > 0 {
			sb.WriteString("\n  Repertório: " + strings.Join(e.Songs, ", "))
		}
		sb.WriteString("\n")
	}

	return core.AgentResult{
		Success:     true,
		Response:    strings.TrimSpace(sb.String()),
		Attachments: core.Attachments{Schedule: &core.ScheduleAttachment{Entries: entries}},
	}, nil
}

var weekdays = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

func formatDate(t time.Time) string {
	s := fmt.Sprintf("%s %s", weekdays[int(t.Weekday())], t.Format("02/01"))
	if t.Hour() != 0 || t.Minute() != 0 {
		s += t.Format(" às 15:04")
	}
	return s
}
