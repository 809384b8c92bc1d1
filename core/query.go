package core

// QueryType enumerates the classification outcomes. Exactly one value is
// assigned per query; classification is total, so the worst case is
// QueryGeneral, never an absent value.
type QueryType string

const (
	// QueryTheological asks for biblical grounding or doctrinal analysis.
	QueryTheological QueryType = "theological"
	// QueryMusicSearch looks up songs in the repertoire catalog.
	QueryMusicSearch QueryType = "music_search"
	// QuerySchedule asks about the service rota.
	QuerySchedule QueryType = "schedule"
	// QueryUserInfo asks about a team member.
	QueryUserInfo QueryType = "user_info"
	// QueryHistory asks about the ministry's origin or leadership.
	QueryHistory QueryType = "history"
	// QueryHybrid spans two or more categories strongly enough that a
	// single responder would be incomplete.
	QueryHybrid QueryType = "hybrid"
	// QueryGeneral covers greetings, help requests and everything that
	// scored zero everywhere else.
	QueryGeneral QueryType = "general"
)

// Valid reports whether t is one of the enumerated query types.
func (t QueryType) Valid() bool {
	switch t {
	case QueryTheological, QueryMusicSearch, QuerySchedule,
		QueryUserInfo, QueryHistory, QueryHybrid, QueryGeneral:
		return true
	}
	return false
}

// ClassifiedQuery is the immutable output of classification. It is created
// fresh per incoming query and never persisted.
type ClassifiedQuery struct {
	Type             QueryType `json:"type"`
	Intent           string    `json:"intent"` // Human-readable label, informational only
	Keywords         []string  `json:"keywords,omitempty"`
	RequiresMusic    bool      `json:"requires_music"`
	RequiresSchedule bool      `json:"requires_schedule"`
	RequiresUser     bool      `json:"requires_user"`
	RequiresTheology bool      `json:"requires_theology"`
	MentionedEntity  string    `json:"mentioned_entity,omitempty"`
	OriginalQuery    string    `json:"original_query"`
	CleanedQuery     string    `json:"cleaned_query"`
}
