package store

import (
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned when no catalog entry matches the lookup.
	ErrNotFound = fmt.Errorf("store: entry not found")
)

// Song is a single entry of the ministry's repertoire catalog.
type Song struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Artist  string   `json:"artist"`
	Themes  []string `json:"themes,omitempty"`
	Excerpt string   `json:"excerpt,omitempty"` // Short lyric excerpt used for analysis prompts
}

// ScheduleEntry describes one service slot of the ministry rota.
type ScheduleEntry struct {
	Date    time.Time `json:"date"`
	Service string    `json:"service"` // e.g. "Culto de domingo", "Ensaio"
	Leader  string    `json:"leader"`
	Members []string  `json:"members,omitempty"`
	Songs   []string  `json:"songs,omitempty"` // Song titles planned for the slot
}

// Member is a ministry team member.
type Member struct {
	Name        string   `json:"name"`
	Roles       []string `json:"roles,omitempty"`
	Instruments []string `json:"instruments,omitempty"`
	Contact     string   `json:"contact,omitempty"`
}

// SongStore provides read access to the repertoire catalog.
type SongStore interface {
	// All returns every song in catalog order.
	All() ([]Song, error)
	// Search returns songs whose title, artist or themes match the query
	// after normalization. Results preserve catalog order.
	Search(query string) ([]Song, error)
	// FindByTitle returns the best title match or ErrNotFound.
	FindByTitle(title string) (Song, error)
}

// ScheduleStore provides read access to the service rota.
type ScheduleStore interface {
	// Upcoming returns entries at or after ref, soonest first, capped at limit.
	// limit <= 0 means no cap.
	Upcoming(ref time.Time, limit int) ([]ScheduleEntry, error)
	// ForMember returns upcoming entries that include the named member.
	ForMember(ref time.Time, name string) ([]ScheduleEntry, error)
}

// MemberStore provides read access to the team roster.
type MemberStore interface {
	// All returns every member in roster order.
	All() ([]Member, error)
	// FindByName returns the best name match or ErrNotFound.
	FindByName(name string) (Member, error)
}
