package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
)

// failureMessage is the generic body of a converted responder failure.
const failureMessage = "Desculpe, não consegui processar essa parte da sua pergunta."

// hybridOrder fixes the sequencing of responders on the hybrid path.
var hybridOrder = []core.QueryType{
	core.QueryTheological,
	core.QueryMusicSearch,
	core.QuerySchedule,
	core.QueryUserInfo,
}

// Dispatcher maps a classification outcome to one or more responders and,
// for the hybrid case, sequences them and concatenates their outputs.
type Dispatcher struct {
	responders map[core.QueryType]core.Responder
	logger     logging.Logger
}

// DispatcherOptions configure a Dispatcher.
type DispatcherOptions struct {
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher(optFns ...func(o *DispatcherOptions)) *Dispatcher {
	opts := DispatcherOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Dispatcher{
		responders: map[core.QueryType]core.Responder{},
		logger:     opts.Logger,
	}
}

// Register binds a responder to a query type, replacing any previous one.
func (d *Dispatcher) Register(t core.QueryType, r core.Responder) {
	d.responders[t] = r
}

// Responder returns the responder bound to t, or nil.
func (d *Dispatcher) Responder(t core.QueryType) core.Responder {
	return d.responders[t]
}

// DispatchResult pairs the combined agent output with the responder names
// that produced it.
type DispatchResult struct {
	core.AgentResult
	AgentsUsed []string
}

// Dispatch routes the classified query. Non-hybrid types invoke exactly one
// responder; hybrid invokes the responders for each requires* flag in fixed
// priority order and merges their outputs. A responder error is converted
// into a failed result and never aborts the other hybrid legs.
func (d *Dispatcher) Dispatch(ctx context.Context, q core.ClassifiedQuery, history []core.ConversationTurn) DispatchResult {
	req := core.Request{
		Raw:     q.CleanedQuery,
		Mention: q.MentionedEntity,
		Intent:  q.Intent,
		History: history,
	}

	if q.Type != core.QueryHybrid {
		responder := d.responders[q.Type]
		if responder == nil {
			d.logger.Error("no responder registered", "type", string(q.Type))
			return DispatchResult{AgentResult: core.AgentResult{Success: false, Response: failureMessage}}
		}
		result := d.invoke(ctx, responder, req)
		return DispatchResult{AgentResult: result, AgentsUsed: []string{responder.Name()}}
	}

	return d.dispatchHybrid(ctx, q, req)
}

// dispatchHybrid sequences the flagged responders. When the theology leg
// runs and music was also required, the separate music invocation is
// suppressed: the theological analysis already carries the full music
// context and an independent search would duplicate it.
func (d *Dispatcher) dispatchHybrid(ctx context.Context, q core.ClassifiedQuery, req core.Request) DispatchResult {
	flags := map[core.QueryType]bool{
		core.QueryTheological: q.RequiresTheology,
		core.QueryMusicSearch: q.RequiresMusic,
		core.QuerySchedule:    q.RequiresSchedule,
		core.QueryUserInfo:    q.RequiresUser,
	}
	if q.RequiresTheology && q.RequiresMusic {
		flags[core.QueryMusicSearch] = false
	}

	var (
		parts      []string
		agents     []string
		combined   core.AgentResult
		anySuccess bool
	)
	for _, t := range hybridOrder {
		if !flags[t] {
			continue
		}
		responder := d.responders[t]
		if responder == nil {
			d.logger.Error("no responder registered for hybrid leg", "type", string(t))
			continue
		}
		result := d.invoke(ctx, responder, req)
		agents = append(agents, responder.Name())
		if result.Success {
			anySuccess = true
		}
		if strings.TrimSpace(result.Response) != "" {
			parts = append(parts, result.Response)
		}
		combined.Attachments = combined.Attachments.Merge(result.Attachments)
		combined.Usage.Add(result.Usage)
	}

	combined.Success = anySuccess
	combined.Response = strings.Join(parts, "\n\n")
	if combined.Response == "" {
		combined.Response = failureMessage
	}
	return DispatchResult{AgentResult: combined, AgentsUsed: agents}
}

// invoke runs one responder, converting errors and panics into a failed
// AgentResult so nothing propagates to the caller.
func (d *Dispatcher) invoke(ctx context.Context, responder core.Responder, req core.Request) (result core.AgentResult) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("responder panicked", "responder", responder.Name(), "panic", fmt.Sprint(r))
			result = core.AgentResult{Success: false, Response: failureMessage}
		}
	}()

	result, err := responder.Process(ctx, req)
	if err != nil {
		d.logger.Error("responder failed", "responder", responder.Name(), "error", err)
		return core.AgentResult{Success: false, Response: failureMessage}
	}
	return result
}
