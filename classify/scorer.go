package classify

import (
	"regexp"
	"strings"

	"github.com/louvorkit/louvor/core"
)

// Scoring weights. Keywords encode single-word hints, patterns encode
// higher-precision multi-word idioms, and priority patterns encode compound
// questions that must never lose to ordinary keyword counts.
const (
	keywordWeight  = 1
	patternWeight  = 3
	priorityWeight = 10
	mentionBoost   = 5
)

// HybridThreshold is the minimum per-category score for a category to count
// toward a hybrid decision (and for an incidental requires* flag).
const HybridThreshold = 2

// ScoreTable maps each category to a non-negative score and accumulates the
// matched keyword set.
type ScoreTable struct {
	Scores   map[core.QueryType]int
	Keywords []string
	Priority bool // A priority override pattern fired (theological short-circuit)

	seen map[string]bool
}

func newScoreTable() *ScoreTable {
	return &ScoreTable{Scores: map[core.QueryType]int{}, seen: map[string]bool{}}
}

func (t *ScoreTable) add(cat core.QueryType, weight int, keyword string) {
	t.Scores[cat] += weight
	if keyword != "" && !t.seen[keyword] {
		t.seen[keyword] = true
		t.Keywords = append(t.Keywords, keyword)
	}
}

// category bundles the keyword list and compiled pattern list of one
// classification category.
type category struct {
	queryType core.QueryType
	keywords  []string
	patterns  []pattern
}

// pattern pairs a compiled idiom with the label recorded in the matched
// keyword set.
type pattern struct {
	re    *regexp.Regexp
	label string
}

// priorityPattern is an override evaluated before generic scoring. The
// ordered list preserves "first specific match wins" without hidden
// precedence between compound idioms and plain keywords.
type priorityPattern struct {
	re    *regexp.Regexp
	label string
}

// scriptureBooks feeds the priority patterns that pair "which songs" with a
// named book. Accent-free variants are included because users rarely type
// the diacritics.
const scriptureBooks = `b[íi]blia|escrituras?|g[êe]nesis|[êe]xodo|salmos?|prov[ée]rbios|isa[íi]as|evangelhos?|mateus|marcos|lucas|jo[ãa]o|atos|romanos|cor[íi]ntios|g[áa]latas|ef[ée]sios|filipenses|apocalipse`

var priorityPatterns = []priorityPattern{
	{
		re:    regexp.MustCompile(`quais?\s+(?:m[úu]sicas?|can[çc][õo]es|louvores?).{0,40}?(?:base|baseiam|baseadas?|fundament\w*|falam)\s*.{0,30}?(?:em|n[ao]s?|sobre)\s+(?:` + scriptureBooks + `)`),
		label: "músicas com base bíblica",
	},
	{
		re:    regexp.MustCompile(`(?:base|fundamento)\s+b[íi]blic[ao]\s+d(?:a|e|as|os)?\s*(?:m[úu]sicas?|can[çc][ãa]o|louvor)`),
		label: "base bíblica de música",
	},
	{
		re:    regexp.MustCompile(`(?:m[úu]sicas?|louvores?)\s+sobre\s+(?:` + scriptureBooks + `)`),
		label: "músicas sobre escritura",
	},
}

// analysisWords flip a mention boost toward theology: a mentioned song
// defaults to "look it up" unless the surrounding text clearly asks for
// interpretation.
var analysisWords = []string{
	"base", "análise", "analise", "estudo", "doutrina", "teologia",
	"teológic", "teologic", "significado", "interpreta", "explica",
	"fundamento", "bíblic", "biblic", "versículo", "versiculo",
}

var categories = []category{
	{
		queryType: core.QueryTheological,
		keywords: []string{
			"bíblia", "biblia", "bíblico", "biblico", "bíblica", "biblica",
			"versículo", "versiculo", "teologia", "teológico", "teologico",
			"doutrina", "escritura", "evangelho", "salmo", "profeta",
			"pecado", "graça", "graca", "salvação", "salvacao", "adoração",
			"adoracao", "exegese", "espírito santo", "espirito santo",
		},
		patterns: []pattern{
			{regexp.MustCompile(`base\s+b[íi]blica`), "base bíblica"},
			{regexp.MustCompile(`fundamento\s+b[íi]blico`), "fundamento bíblico"},
			{regexp.MustCompile(`o\s+que\s+a\s+b[íi]blia\s+(?:diz|ensina|fala)`), "o que a bíblia diz"},
			{regexp.MustCompile(`an[áa]lise\s+teol[óo]gica`), "análise teológica"},
		},
	},
	{
		queryType: core.QueryMusicSearch,
		keywords: []string{
			"música", "musica", "músicas", "musicas", "canção", "cancao",
			"louvor", "hino", "letra", "cifra", "tom", "repertório",
			"repertorio", "tocar", "cantar", "melodia", "acordes",
		},
		patterns: []pattern{
			{regexp.MustCompile(`qual\s+(?:a\s+)?m[úu]sica`), "qual a música"},
			{regexp.MustCompile(`letra\s+d[aeo]`), "letra de"},
			{regexp.MustCompile(`m[úu]sicas?\s+d[aeo]s?\s+\w`), "músicas de artista"},
			{regexp.MustCompile(`procur\w+\s+(?:uma\s+)?(?:m[úu]sica|louvor)`), "procurando música"},
		},
	},
	{
		queryType: core.QuerySchedule,
		keywords: []string{
			"escala", "escalado", "escalada", "culto", "ensaio", "domingo",
			"sábado", "sabado", "agenda", "horário", "horario", "data",
			"semana", "próximo", "proximo", "próxima", "proxima",
		},
		patterns: []pattern{
			{regexp.MustCompile(`escala\s+d[ae]\s+\w+`), "escala da semana"},
			{regexp.MustCompile(`quem\s+(?:est[áa]|vai\s+estar)\s+escalad`), "quem está escalado"},
			{regexp.MustCompile(`pr[óo]xim[oa]s?\s+(?:culto|domingo|ensaio|escala)`), "próximo culto"},
			{regexp.MustCompile(`quando\s+(?:é|e|ser[áa])\s+o\s+(?:culto|ensaio)`), "quando é o culto"},
		},
	},
	{
		queryType: core.QueryUserInfo,
		keywords: []string{
			"ministro", "ministra", "vocal", "vocalista", "instrumento",
			"membro", "equipe", "integrante", "contato", "função", "funcao",
			"telefone", "guitarrista", "baterista", "tecladista", "baixista",
		},
		patterns: []pattern{
			{regexp.MustCompile(`quem\s+[ée]\s+[ao]?\s*\w`), "quem é"},
			{regexp.MustCompile(`qual\s+instrumento`), "qual instrumento"},
			{regexp.MustCompile(`quem\s+toca\s+`), "quem toca"},
			{regexp.MustCompile(`quais\s+(?:s[ãa]o\s+)?os\s+(?:membros|integrantes)`), "quais os membros"},
		},
	},
	{
		queryType: core.QueryHistory,
		keywords: []string{
			"história", "historia", "origem", "fundação", "fundacao",
			"fundador", "fundadora", "começo", "comeco", "liderança",
			"lideranca", "trajetória", "trajetoria",
		},
		patterns: []pattern{
			{regexp.MustCompile(`quem\s+fundou`), "quem fundou"},
			{regexp.MustCompile(`quando\s+(?:o\s+minist[ée]rio|a\s+igreja|o\s+grupo)\s+(?:come[çc]ou|surgiu|foi\s+fundad)`), "quando começou"},
			{regexp.MustCompile(`hist[óo]ria\s+d[oa]\s+(?:minist[ée]rio|igreja|grupo)`), "história do ministério"},
		},
	},
}

// Score evaluates the cleaned query against the five category tables.
//
// Priority override patterns are checked first: when one fires the function
// returns immediately with the theological category selected, skipping the
// normal max-score resolution. Without them, compound questions like "quais
// músicas têm base em Salmos?" would be miscategorized as ordinary music
// search because they mention "música".
//
// A non-empty mention boosts theology when the surrounding text contains
// analysis-indicating words, and music search otherwise.
func Score(cleaned, mention string) *ScoreTable {
	table := newScoreTable()
	lower := strings.ToLower(cleaned)

	for _, pp := range priorityPatterns {
		if pp.re.MatchString(lower) {
			table.add(core.QueryTheological, priorityWeight, pp.label)
			table.Priority = true
			return table
		}
	}

	for _, cat := range categories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				table.add(cat.queryType, keywordWeight, kw)
			}
		}
		for _, pat := range cat.patterns {
			if pat.re.MatchString(lower) {
				table.add(cat.queryType, patternWeight, pat.label)
			}
		}
	}

	if mention != "" {
		if containsAny(lower, analysisWords) {
			table.add(core.QueryTheological, mentionBoost, "")
		} else {
			table.add(core.QueryMusicSearch, mentionBoost, "")
		}
	}

	return table
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
