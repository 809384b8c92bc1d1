// Package louvor provides a high-level façade over the classification and
// dispatch core of the worship-ministry assistant. Most applications
// interact with this package by:
//  1. Creating an Assistant via New() (optionally overriding the default
//     in-memory catalogs, the inference provider and the logger)
//  2. Calling Handle() once per incoming query
//
// The façade delegates intent decisions to classify.Classifier and routing
// to agent.Dispatcher while keeping setup ergonomics concise. All defaults
// are safe for local development and testing; production deployments
// typically supply a configured inference provider and a structured logger.
package louvor

import (
	"context"
	"strings"
	"time"

	"github.com/louvorkit/louvor/agent"
	"github.com/louvorkit/louvor/batch"
	"github.com/louvorkit/louvor/classify"
	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/model"
	"github.com/louvorkit/louvor/store"
)

// Options configure the Assistant instance.
type Options struct {
	// Inference drives the theological analysis. nil is valid: every
	// theological query then takes the deterministic local fallback
	// without any network call.
	Inference model.Inference

	// Catalogs (default to empty in-memory implementations if not provided).
	Songs    store.SongStore
	Schedule store.ScheduleStore
	Members  store.MemberStore

	// HistoryWindow bounds the trimmed conversation window forwarded to
	// responders. Defaults to core.DefaultHistoryWindow.
	HistoryWindow int

	// HistoryText overrides the institutional-history answer.
	HistoryText string

	// Batch forwards orchestrator tuning (chunk size, timeouts, pacing).
	Batch []func(o *batch.Options)

	// Now is the schedule clock; tests inject a fixed one.
	Now func() time.Time

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Assistant is the caller-facing entry point: one synchronous Handle call
// per query, no persisted state, classification idempotent per input.
type Assistant struct {
	opts       Options
	classifier *classify.Classifier
	dispatcher *agent.Dispatcher
}

// New creates an Assistant with optional overrides. Any unset catalog is
// initialized with an empty in-memory implementation.
func New(optFns ...func(o *Options)) *Assistant {
	opts := Options{
		Songs:         store.NewInMemorySongStore(),
		Schedule:      store.NewInMemoryScheduleStore(),
		Members:       store.NewInMemoryMemberStore(),
		HistoryWindow: core.DefaultHistoryWindow,
		Now:           time.Now,
		Logger:        logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	classifier := classify.New(func(o *classify.Options) { o.Logger = opts.Logger })

	dispatcher := agent.NewDispatcher(func(o *agent.DispatcherOptions) { o.Logger = opts.Logger })
	dispatcher.Register(core.QueryTheological, agent.NewTheologicalResponder(
		opts.Inference, opts.Songs,
		func(o *agent.TheologicalOptions) {
			o.Logger = opts.Logger
			o.Batch = opts.Batch
		},
	))
	dispatcher.Register(core.QueryMusicSearch, agent.NewMusicResponder(opts.Songs, opts.Logger))
	dispatcher.Register(core.QuerySchedule, agent.NewScheduleResponder(
		opts.Schedule,
		func(o *agent.ScheduleOptions) {
			o.Logger = opts.Logger
			o.Now = opts.Now
		},
	))
	dispatcher.Register(core.QueryUserInfo, agent.NewMemberResponder(opts.Members, opts.Logger))
	dispatcher.Register(core.QueryHistory, agent.NewHistoryResponder(func(o *agent.HistoryOptions) {
		o.Logger = opts.Logger
		if opts.HistoryText != "" {
			o.Text = opts.HistoryText
		}
	}))
	dispatcher.Register(core.QueryGeneral, agent.NewGeneralResponder(opts.Logger))

	return &Assistant{opts: opts, classifier: classifier, dispatcher: dispatcher}
}

// HandleResult is the caller-facing outcome of one query.
type HandleResult struct {
	RequestID      string               `json:"request_id"`
	Success        bool                 `json:"success"`
	Response       string               `json:"response"`
	AgentUsed      string               `json:"agent_used"`
	QueryType      core.QueryType       `json:"query_type"`
	Classification core.ClassifiedQuery `json:"classification"`
	Usage          core.Usage           `json:"usage"`
}

// Handle classifies rawQuery, trims history and dispatches to the matching
// responders. The only error it returns is core.ErrEmptyQuery; every other
// failure is recovered downstream and surfaces as a non-empty fallback
// response body.
func (a *Assistant) Handle(ctx context.Context, rawQuery string, history []core.ConversationTurn) (*HandleResult, error) {
	if strings.TrimSpace(rawQuery) == "" {
		return nil, core.ErrEmptyQuery
	}

	requestID := core.NewID()
	q := a.classifier.Classify(rawQuery)
	a.opts.Logger.Info("query classified",
		"request_id", requestID, "type", string(q.Type), "intent", q.Intent)

	trimmed := core.TrimHistory(history, a.opts.HistoryWindow)
	res := a.dispatcher.Dispatch(ctx, q, trimmed)

	return &HandleResult{
		RequestID:      requestID,
		Success:        res.Success,
		Response:       res.Response,
		AgentUsed:      strings.Join(res.AgentsUsed, "+"),
		QueryType:      q.Type,
		Classification: q,
		Usage:          res.Usage,
	}, nil
}

// Classify exposes the deterministic classification decision without
// dispatching, e.g. for routing previews.
func (a *Assistant) Classify(rawQuery string) core.ClassifiedQuery {
	return a.classifier.Classify(rawQuery)
}
