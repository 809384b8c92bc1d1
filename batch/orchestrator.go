package batch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/model"
	"github.com/louvorkit/louvor/store"
)

// NoMatchMarker is the exact reply the chunk prompt asks the model for when
// no candidate in the chunk is relevant. Entries carrying it are filtered
// out of the final merge.
const NoMatchMarker = "NENHUMA_RELEVANTE"

// ErrNoInference is returned when the orchestrator was built without an
// inference implementation.
var ErrNoInference = fmt.Errorf("batch: inference service not configured")

// Defaults. The per-chunk timeout must stay measurably smaller than the
// caller's overall deadline so at least one more chunk pass and the final
// merge still fit before it expires.
const (
	DefaultChunkSize       = 15
	DefaultChunkTimeout    = 25 * time.Second
	DefaultSingleTimeout   = 40 * time.Second
	DefaultInterChunkDelay = time.Second
)

// Options configure an Orchestrator.
type Options struct {
	ChunkSize       int
	ChunkTimeout    time.Duration
	SingleTimeout   time.Duration
	InterChunkDelay time.Duration
	MaxTokens       int64

	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// Orchestrator runs one logical inference-analysis operation over a
// candidate set of arbitrary size. Chunk calls are issued sequentially,
// never in parallel.
type Orchestrator struct {
	inference model.Inference
	opts      Options
	pacer     *Pacer
}

// New creates an Orchestrator around the given inference implementation.
func New(inference model.Inference, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		ChunkSize:       DefaultChunkSize,
		ChunkTimeout:    DefaultChunkTimeout,
		SingleTimeout:   DefaultSingleTimeout,
		InterChunkDelay: DefaultInterChunkDelay,
		MaxTokens:       1024,
		Logger:          logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Orchestrator{
		inference: inference,
		opts:      opts,
		pacer:     NewPacer(opts.InterChunkDelay),
	}
}

// Result is the merged outcome of an analysis run.
type Result struct {
	RunID    string
	Response string
	Usage    core.Usage
	Chunked  bool // The chunked path was taken (threshold or degrade)
}

// Analyze runs the analysis question over the candidate set.
//
// The chunked path is taken when the candidate set exceeds the chunk size
// up front, or when a single non-chunked attempt fails specifically with a
// timeout (the degrade path, taken exactly once). Any other single-call
// failure is returned to the caller, which owns the local fallback.
func (o *Orchestrator) Analyze(
	ctx context.Context,
	system, question string,
	history []core.ConversationTurn,
	candidates []store.Song,
) (*Result, error) {
	if o.inference == nil {
		return nil, ErrNoInference
	}

	res := &Result{RunID: core.NewID()}
	if len(candidates) == 0 {
		res.Response = nothingFoundMessage
		return res, nil
	}

	if len(candidates) > o.opts.ChunkSize {
		res.Chunked = true
		o.runChunked(ctx, res, system, question, history, candidates)
		return res, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, o.opts.SingleTimeout)
	resp, err := o.inference.Infer(callCtx, model.Request{
		System:    system,
		History:   history,
		Prompt:    chunkPrompt(question, candidates),
		MaxTokens: o.opts.MaxTokens,
	})
	cancel()
	if err == nil {
		res.Usage.Add(resp.Usage)
		res.Response = finalize([]string{resp.Content})
		return res, nil
	}
	if !model.IsTimeout(err) {
		return nil, err
	}

	// Timeout on the single call: degrade to the chunked path once rather
	// than retrying the same shape of call.
	o.opts.Logger.Warn("single analysis call timed out, degrading to chunked path",
		"run_id", res.RunID, "candidates", len(candidates))
	res.Chunked = true
	o.runChunked(ctx, res, system, question, history, candidates)
	return res, nil
}

// runChunked executes the partitioned analysis. Individual chunk failures
// are recorded and skipped; a failed chunk never stops the batch.
func (o *Orchestrator) runChunked(
	ctx context.Context,
	res *Result,
	system, question string,
	history []core.ConversationTurn,
	candidates []store.Song,
) {
	chunks := Partition(candidates, o.opts.ChunkSize)
	entries := make([]string, 0, len(chunks))

	for i, chunk := range chunks {
		callCtx, cancel := context.WithTimeout(ctx, o.opts.ChunkTimeout)
		resp, err := o.inference.Infer(callCtx, model.Request{
			System:    system,
			History:   history,
			Prompt:    chunkPrompt(question, chunk.Songs),
			MaxTokens: o.opts.MaxTokens,
		})
		cancel()
		o.pacer.Mark()

		if err != nil {
			o.opts.Logger.Warn("analysis chunk failed",
				"run_id", res.RunID, "chunk", chunk.Index, "size", chunk.Size(), "error", err)
			entries = append(entries, chunkFailureNote(chunk.Index))
		} else {
			res.Usage.Add(resp.Usage)
			entries = append(entries, resp.Content)
		}

		if i < len(chunks)-1 {
			if err := o.pacer.Wait(ctx); err != nil {
				o.opts.Logger.Warn("batch cancelled between chunks",
					"run_id", res.RunID, "completed", i+1, "total", len(chunks))
				break
			}
		}
	}

	res.Response = finalize(entries)
}

const (
	mergeHeader         = "Análise do repertório:"
	mergeDivider        = "\n\n---\n\n"
	nothingFoundMessage = "Não encontrei nada relevante no repertório para essa pergunta."
)

// chunkFailureNote marks a failed chunk in the working entry list. Notes
// are filtered out before the final merge.
func chunkFailureNote(index int) string {
	return fmt.Sprintf("[erro: bloco %d não pôde ser analisado]", index+1)
}

func isFailureNote(entry string) bool {
	return strings.HasPrefix(strings.TrimSpace(entry), "[erro:")
}

// finalize filters placeholder and explicit no-match entries, then
// concatenates the survivors in original chunk order under one header.
func finalize(entries []string) string {
	var kept []string
	for _, entry := range entries {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" || isFailureNote(trimmed) || strings.Contains(trimmed, NoMatchMarker) {
			continue
		}
		kept = append(kept, trimmed)
	}
	if len(kept) == 0 {
		return nothingFoundMessage
	}
	if len(kept) == 1 {
		return kept[0]
	}
	return mergeHeader + "\n\n" + strings.Join(kept, mergeDivider)
}

// chunkPrompt renders one bounded-size request payload: the question plus
// the chunk's candidate listing and the no-match instruction.
func chunkPrompt(question string, songs []store.Song) string {
	var sb strings.Builder
	sb.WriteString("Pergunta: ")
	sb.WriteString(question)
	sb.WriteString("\n\nMúsicas do repertório:\n")
	for i, song := range songs {
		sb.WriteString(fmt.Sprintf("%d. %q", i+1, song.Title))
		if song.Artist != "" {
			sb.WriteString(" — " + song.Artist)
		}
		if len(song.Themes) > 0 {
			sb.WriteString(" (temas: " + strings.Join(song.Themes, ", ") + ")")
		}
		if song.Excerpt != "" {
			sb.WriteString("\n   Trecho: " + song.Excerpt)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nConsidere apenas as músicas listadas acima. ")
	sb.WriteString("Se nenhuma delas for relevante para a pergunta, responda exatamente ")
	sb.WriteString(NoMatchMarker + ".")
	return sb.String()
}
