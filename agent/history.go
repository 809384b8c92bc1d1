package agent

import (
	"context"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
)

// defaultHistoryText answers origin/leadership questions when no custom
// text is configured.
const defaultHistoryText = "O ministério de louvor nasceu como um pequeno grupo de voluntários " +
	"reunidos para servir nos cultos de domingo. Com o tempo a equipe cresceu, passou a " +
	"cuidar do repertório, das escalas e dos ensaios, e hoje acompanha todos os cultos e " +
	"eventos da igreja. A liderança é compartilhada entre os ministros escalados a cada semana."

// HistoryResponder answers questions about the ministry's origin and
// institutional history with a fixed, option-injectable text.
type HistoryResponder struct {
	BaseResponder
	text string
}

// HistoryOptions configure a HistoryResponder.
type HistoryOptions struct {
	// Text overrides the institutional-history answer.
	Text string
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewHistoryResponder creates the responder.
func NewHistoryResponder(optFns ...func(o *HistoryOptions)) *HistoryResponder {
	opts := HistoryOptions{Text: defaultHistoryText, Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &HistoryResponder{
		BaseResponder: NewBaseResponder("history", opts.Logger),
		text:          opts.Text,
	}
}

// Process implements core.Responder.
func (r *HistoryResponder) Process(context.Context, core.Request) (core.AgentResult, error) {
	return core.AgentResult{Success: true, Response: r.text}, nil
}
