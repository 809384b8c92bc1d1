package classify

import (
	"regexp"
	"strings"

	"github.com/louvorkit/louvor/core"
	"github.com/louvorkit/louvor/logging"
)

// greetings is the fixed list of pure-greeting openers. A query counts as a
// greeting only when it matches exactly or starts with an entry while being
// short enough to carry no real question.
var greetings = []string{
	"oi", "olá", "ola", "oie", "e aí", "e ai", "eai", "hey",
	"bom dia", "boa tarde", "boa noite", "tudo bem", "tudo bom",
}

// helpWords trigger the help intent. Queries containing "escala" are
// excluded: "ajuda com a escala" is a schedule question, not a help
// request, even though it carries a help word.
var helpWords = []string{
	"ajuda", "help", "comandos", "como usar", "como funciona",
	"o que você faz", "o que voce faz", "o que você pode fazer",
	"o que voce pode fazer",
}

// historyPatterns detect questions about the ministry's origin, leadership
// or institutional history. They take precedence over generic scoring so
// "quem fundou o ministério" never degrades into a user-info lookup.
var historyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`quem\s+fundou`),
	regexp.MustCompile(`quem\s+(?:lidera|come[çc]ou|criou)\s+(?:o\s+minist[ée]rio|a\s+igreja|o\s+grupo)`),
	regexp.MustCompile(`quando\s+(?:o\s+minist[ée]rio|a\s+igreja|o\s+grupo)\s+(?:come[çc]ou|surgiu|foi\s+fundad)`),
	regexp.MustCompile(`(?:hist[óo]ria|origem|trajet[óo]ria)\s+d[oa]\s+(?:minist[ée]rio|igreja|grupo)`),
	regexp.MustCompile(`como\s+(?:o\s+minist[ée]rio|a\s+igreja|o\s+grupo)\s+(?:come[çc]ou|surgiu|nasceu)`),
}

// tieOrder resolves equal top scores: the earlier entry wins.
var tieOrder = []core.QueryType{
	core.QueryTheological,
	core.QueryMusicSearch,
	core.QuerySchedule,
	core.QueryUserInfo,
	core.QueryHistory,
}

// Classifier composes extraction and scoring into a single decision. It is
// effectively stateless per call: identical input always yields an
// identical ClassifiedQuery.
type Classifier struct {
	logger logging.Logger
}

// Options configure a Classifier.
type Options struct {
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// New creates a Classifier.
func New(optFns ...func(o *Options)) *Classifier {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Classifier{logger: opts.Logger}
}

// Classify maps raw text to a ClassifiedQuery. The branches below are
// evaluated in fixed precedence order; the first match wins.
func (c *Classifier) Classify(raw string) core.ClassifiedQuery {
	ext := Extract(raw)
	q := core.ClassifiedQuery{
		Type:            core.QueryGeneral,
		MentionedEntity: ext.Mention,
		OriginalQuery:   raw,
		CleanedQuery:    ext.Cleaned,
	}
	lower := strings.ToLower(strings.TrimSpace(ext.Cleaned))

	// 1. Active command override.
	if ext.Command != "" {
		c.applyCommand(&q, ext)
		c.logger.Debug("query classified by command", "command", ext.Command, "type", string(q.Type))
		return q
	}

	table := Score(ext.Cleaned, ext.Mention)
	q.Keywords = table.Keywords

	// 2. Priority override pattern fired during scoring.
	if table.Priority {
		q.Type = core.QueryTheological
		q.Intent = "priority_theological"
		q.RequiresTheology = true
		q.RequiresMusic = true
		return q
	}

	// 3. History-intent pattern.
	for _, re := range historyPatterns {
		if re.MatchString(lower) {
			q.Type = core.QueryHistory
			q.Intent = "history"
			return q
		}
	}

	// 4. Pure greeting.
	if isGreeting(lower) {
		q.Intent = "greeting"
		return q
	}

	// 5. Pure help request.
	if isHelp(lower) {
		q.Intent = "help"
		return q
	}

	// 6. Hybrid: two or more flagged categories above the threshold.
	q.RequiresTheology = table.Scores[core.QueryTheological] >= HybridThreshold
	q.RequiresMusic = table.Scores[core.QueryMusicSearch] >= HybridThreshold
	q.RequiresSchedule = table.Scores[core.QuerySchedule] >= HybridThreshold
	q.RequiresUser = table.Scores[core.QueryUserInfo] >= HybridThreshold
	if contributing := hybridCategories(table); len(contributing) >= 2 {
		q.Type = core.QueryHybrid
		q.Intent = "hybrid: " + joinTypes(contributing)
		return q
	}

	// 7. Highest score wins; ties resolve by fixed priority order.
	winner, score := maxScore(table)
	if score == 0 {
		q.Type = core.QueryGeneral
		q.Intent = "general"
		return q
	}

	q.Type = winner
	q.Intent = string(winner)
	switch winner {
	case core.QueryTheological:
		q.RequiresTheology = true
	case core.QueryMusicSearch:
		q.RequiresMusic = true
	case core.QuerySchedule:
		q.RequiresSchedule = true
	case core.QueryUserInfo:
		q.RequiresUser = true
	}
	return q
}

// applyCommand resolves branch 1 of the ladder.
func (c *Classifier) applyCommand(q *core.ClassifiedQuery, ext Extraction) {
	switch ext.Command {
	case CommandTheology:
		q.Type = core.QueryTheological
		q.Intent = "command: " + CommandTheology
		q.RequiresTheology = true
		q.RequiresMusic = ext.Mention != ""
	case CommandMusic:
		q.Type = core.QueryMusicSearch
		q.Intent = "command: " + CommandMusic
		q.RequiresMusic = true
	case CommandSchedule:
		q.Type = core.QuerySchedule
		q.Intent = "command: " + CommandSchedule
		q.RequiresSchedule = true
	case CommandHelp:
		q.Type = core.QueryGeneral
		q.Intent = "help"
	}
}

// isGreeting reports a pure greeting: an exact list match, or a list prefix
// on a query short enough (at most four words) to carry no real question.
func isGreeting(lower string) bool {
	trimmed := strings.TrimRight(lower, "!?. ")
	for _, g := range greetings {
		if trimmed == g {
			return true
		}
		if strings.HasPrefix(trimmed, g) && len(strings.Fields(trimmed)) <= 4 {
			return true
		}
	}
	return false
}

// isHelp reports a pure help request, excluding schedule questions that
// merely carry a help word.
func isHelp(lower string) bool {
	if strings.Contains(lower, "escala") {
		return false
	}
	trimmed := strings.TrimRight(lower, "!?. ")
	for _, h := range helpWords {
		if trimmed == h || strings.HasPrefix(trimmed, h) {
			return true
		}
	}
	return false
}

func hybridCategories(table *ScoreTable) []core.QueryType {
	var out []core.QueryType
	for _, t := range []core.QueryType{
		core.QueryTheological, core.QueryMusicSearch,
		core.QuerySchedule, core.QueryUserInfo,
	} {
		if table.Scores[t] >= HybridThreshold {
			out = append(out, t)
		}
	}
	return out
}

func maxScore(table *ScoreTable) (core.QueryType, int) {
	winner := core.QueryGeneral
	best := 0
	for _, t := range tieOrder {
		if table.Scores[t] > best {
			winner, best = t, table.Scores[t]
		}
	}
	return winner, best
}

func joinTypes(types []core.QueryType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, "+")
}
