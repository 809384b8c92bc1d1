package classify

import (
	"regexp"
	"strings"
)

// Extraction is the outcome of mention/command extraction.
type Extraction struct {
	Mention string // Cleaned @name reference, empty if none
	Command string // Lower-cased active command token, empty if none
	Cleaned string // Input after command removal and mention @-stripping
}

// activeCommands is the fixed set of slash commands that force a
// classification outcome. An unrecognized /word is not stripped and stays
// in the text as ordinary content.
var activeCommands = map[string]bool{
	CommandTheology: true,
	CommandMusic:    true,
	"música":        true, // accented spelling of CommandMusic
	CommandSchedule: true,
	CommandHelp:     true,
}

// Active command tokens.
const (
	CommandTheology = "teologia"
	CommandMusic    = "musica"
	CommandSchedule = "escala"
	CommandHelp     = "ajuda"
)

var (
	// A leading /word followed by whitespace and at least one more character.
	commandRe = regexp.MustCompile(`^/(\S+)\s+(\S.*)$`)

	// The first @name run. Multi-word names continue while the following
	// words are capitalized, optionally joined by Portuguese connectors
	// (da, de, do, das, dos, e); a lone lowercase token is accepted so
	// handles like @benedictus still resolve. The run stops naturally at
	// the next @, whitespace-plus-lowercase boundary or punctuation.
	mentionRe = regexp.MustCompile(`@(\p{Lu}[\p{L}\d'’-]*(?:\s+(?:(?:da|de|do|das|dos|e)\s+)?\p{Lu}[\p{L}\d'’-]*)*|[\p{Ll}\d_'’-]+)`)
)

// Extract pulls the first @mention and a leading active /command out of raw
// text, returning the cleaned remainder. It is a pure function of its input.
func Extract(raw string) Extraction {
	ext := Extraction{Cleaned: strings.TrimSpace(raw)}

	if m := commandRe.FindStringSubmatch(ext.Cleaned); m != nil {
		token := strings.ToLower(m[1])
		if activeCommands[token] {
			if token == "música" {
				token = CommandMusic
			}
			ext.Command = token
			ext.Cleaned = strings.TrimSpace(m[2])
		}
	}

	if m := mentionRe.FindStringSubmatch(ext.Cleaned); m != nil {
		ext.Mention = strings.TrimRight(m[1], "?!.,;:")
		// Drop the @ sigil but keep the name in the text so scoring still
		// sees it.
		ext.Cleaned = strings.Replace(ext.Cleaned, "@"+m[1], m[1], 1)
	}

	return ext
}
