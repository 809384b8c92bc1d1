package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/louvorkit/louvor/batch"
	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
	"github.com/louvorkit/louvor/model"
	"github.com/louvorkit/louvor/store"
)

// theologySystemPrompt frames the analysis for the inference service.
const theologySystemPrompt = "Você é um assistente teológico de um ministério de louvor. " +
	"Analise as músicas do repertório à luz da Bíblia, citando os livros e " +
	"passagens que fundamentam cada letra. Seja direto e pastoral; responda em português."

// TheologicalResponder answers biblical-grounding questions about the
// repertoire. Large candidate sets and timed-out single calls are delegated
// to the batch orchestrator; when the inference service is not configured
// or the degrade path also fails, it falls back to a deterministic local
// keyword-match summary built from the raw catalog data, never to an empty
// response.
type TheologicalResponder struct {
	BaseResponder
	inference model.Inference
	songs     store.SongStore
	orch      *batch.Orchestrator
}

// TheologicalOptions configure a TheologicalResponder.
type TheologicalOptions struct {
	// Batch forwards orchestrator tuning (chunk size, timeouts, pacing).
	Batch []func(o *batch.Options)
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewTheologicalResponder creates the responder. inference may be nil, in
// which case every query takes the local fallback path without any network
// call.
func NewTheologicalResponder(inference model.Inference, songs store.SongStore, optFns ...func(o *TheologicalOptions)) *TheologicalResponder {
	opts := TheologicalOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}

	var orch *batch.Orchestrator
	if inference != nil {
		batchOpts := append([]func(o *batch.Options){func(o *batch.Options) {
			o.Logger = opts.Logger
		}}, opts.Batch...)
		orch = batch.New(inference, batchOpts...)
	}

	return &TheologicalResponder{
		BaseResponder: NewBaseResponder("theological", opts.Logger),
		inference:     inference,
		songs:         songs,
		orch:          orch,
	}
}

// Process implements core.Responder.
func (r *TheologicalResponder) Process(ctx context.Context, req core.Request) (core.AgentResult, error) {
	candidates, err := r.selectCandidates(req)
	if err != nil {
		return core.AgentResult{}, fmt.Errorf("selecting candidates: %w", err)
	}

	if r.inference == nil {
		// Unconfigured inference short-circuits straight to the local
		// fallback, skipping all network calls.
		r.Logger().Info("inference not configured, using local analysis", "candidates", len(candidates))
		return r.localAnalysis(req, candidates), nil
	}

	result, err := r.orch.Analyze(ctx, theologySystemPrompt, req.Raw, req.History, candidates)
	if err != nil {
		r.Logger().Warn("analysis failed, using local fallback", "error", err)
		return r.localAnalysis(req, candidates), nil
	}

	return core.AgentResult{
		Success:  true,
		Response: result.Response,
		Usage:    result.Usage,
	}, nil
}

// selectCandidates narrows the catalog before analysis: a mentioned song
// wins, then a keyword search, then the whole catalog.
func (r *TheologicalResponder) selectCandidates(req core.Request) ([]store.Song, error) {
	if req.Mention != "" {
		if song, err := r.songs.FindByTitle(req.Mention); err == nil {
			return []store.Song{song}, nil
		}
		if found, err := r.songs.Search(req.Mention); err == nil && len(found) > 0 {
			return found, nil
		}
	}

	if found, err := r.songs.Search(req.Raw); err == nil && len(found) > 0 {
		return found, nil
	}
	return r.songs.All()
}

// localStopwords are skipped when tokenizing the question for the
// deterministic fallback.
var localStopwords = map[string]bool{
	"a": true, "o": true, "as": true, "os": true, "de": true, "da": true,
	"do": true, "das": true, "dos": true, "em": true, "no": true, "na": true,
	"que": true, "qual": true, "quais": true, "com": true, "para": true,
	"uma": true, "um": true, "sobre": true, "tem": true, "têm": true,
	"musica": true, "musicas": true, "base": true, "biblica": true,
}

// localAnalysis is the deterministic keyword-match fallback. It never
// returns an empty response.
func (r *TheologicalResponder) localAnalysis(req core.Request, candidates []store.Song) core.AgentResult {
	tokens := localTokens(req.Raw)

	type scored struct {
		song store.Song
		hits int
	}
	var matches []scored
	for _, song := range candidates {
		target := store.Normalize(song.Title + " " + strings.Join(song.Themes, " ") + " " + song.Excerpt)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(target, tok) {
				hits++
			}
		}
		if hits > 0 {
			matches = append(matches, scored{song: song, hits: hits})
		}
	}

	if len(matches) == 0 {
		return core.AgentResult{
			Success: true,
			Response: "Não consegui fazer a análise completa agora, e nenhuma música do " +
				"repertório casa diretamente com os termos da sua pergunta. " +
				"Tente citar um tema ou um trecho da letra.",
		}
	}

	// Simple stable selection: keep catalog order, cap the listing.
	const maxListed = 5
	var sb strings.Builder
	sb.WriteString("Análise indisponível no momento; estas músicas do repertório tocam nos termos da sua pergunta:\n")
	listed := 0
	for _, m := range matches {
		if listed == maxListed {
			break
		}
		sb.WriteString(fmt.Sprintf("- %s", m.song.Title))
		if m.song.Artist != "" {
			sb.WriteString(" — " + m.song.Artist)
		}
		if len(m.song.Themes) > 0 {
			sb.WriteString(" (temas: " + strings.Join(m.song.Themes, ", ") + ")")
		}
		sb.WriteString("\n")
		listed++
	}
	return core.AgentResult{Success: true, Response: strings.TrimSpace(sb.String())}
}

func localTokens(query string) []string {
	var out []string
	for _, tok := range strings.Fields(store.Normalize(query)) {
		tok = strings.Trim(tok, "?!.,;:")
		if len(tok) < 3 || localStopwords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}
