package core

// Conversation roles accepted in history windows. Turns with any other role
// are dropped before the history is forwarded downstream.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultHistoryWindow bounds how many trimmed turns are forwarded to any
// downstream service.
const DefaultHistoryWindow = 4

// ConversationTurn is a single utterance of the recent conversation window.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TrimHistory derives a bounded, well-formed history window from the raw
// turn sequence. It never mutates its input. The result:
//
//   - contains only user/assistant turns
//   - has no two adjacent turns with the same role (the last turn of a
//     same-role run wins)
//   - never ends on a user turn (the caller supplies the current query
//     separately and it must not duplicate into history)
//   - holds at most the last n turns, oldest first
//
// n <= 0 falls back to DefaultHistoryWindow.
func TrimHistory(history []ConversationTurn, n int) []ConversationTurn {
	if n <= 0 {
		n = DefaultHistoryWindow
	}

	trimmed := make([]ConversationTurn, 0, len(history))
	for _, turn := range history {
		if turn.Role != RoleUser && turn.Role != RoleAssistant {
			continue
		}
		if len(trimmed) > 0 && trimmed[len(trimmed)-1].Role == turn.Role {
			trimmed[len(trimmed)-1] = turn
			continue
		}
		trimmed = append(trimmed, turn)
	}

	if len(trimmed) > 0 && trimmed[len(trimmed)-1].Role == RoleUser {
		trimmed = trimmed[:len(trimmed)-1]
	}

	if len(trimmed) > n {
		trimmed = trimmed[len(trimmed)-n:]
	}
	return trimmed
}
