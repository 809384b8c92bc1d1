package store

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// InMemorySongStore is a volatile SongStore backed by a process-local slice.
// It is safe for concurrent access; every read returns defensive copies so
// callers cannot mutate internal state.
type InMemorySongStore struct {
	mu    sync.RWMutex
	songs []Song
}

// NewInMemorySongStore constructs a song store seeded with the given catalog.
func NewInMemorySongStore(songs ...Song) *InMemorySongStore {
	s := &InMemorySongStore{songs: make([]Song, len(songs))}
	copy(s.songs, songs)
	return s
}

// Add appends songs to the catalog.
func (s *InMemorySongStore) Add(songs ...Song) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.songs = append(s.songs, songs...)
}

// All implements SongStore.
func (s *InMemorySongStore) All() ([]Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Song, len(s.songs))
	copy(out, s.songs)
	return out, nil
}

// Search implements SongStore using normalized substring and token matching.
func (s *InMemorySongStore) Search(query string) ([]Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := Normalize(query)
	if q == "" {
		return []Song{}, nil
	}

	var out []Song
	for _, song := range s.songs {
		if songMatches(song, q) {
			out = append(out, song)
		}
	}
	return out, nil
}

// FindByTitle implements SongStore. Exact normalized title matches win over
// substring matches, which win over token-overlap matches.
func (s *InMemorySongStore) FindByTitle(title string) (Song, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := Normalize(title)
	if q == "" {
		return Song{}, ErrNotFound
	}

	best := -1
	bestScore := 0
	for i, song := range s.songs {
		t := Normalize(song.Title)
		score := 0
		switch {
		case t == q:
			score = 100
		case strings.Contains(t, q) || strings.Contains(q, t):
			score = 10
		default:
			score = tokenOverlap(q, t)
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Song{}, ErrNotFound
	}
	return s.songs[best], nil
}

func songMatches(song Song, normalizedQuery string) bool {
	if strings.Contains(Normalize(song.Title), normalizedQuery) ||
		strings.Contains(Normalize(song.Artist), normalizedQuery) {
		return true
	}
	for _, theme := range song.Themes {
		if strings.Contains(Normalize(theme), normalizedQuery) {
			return true
		}
	}
	// Fall back to token overlap so multi-word questions still hit titles.
	return tokenOverlap(normalizedQuery, Normalize(song.Title)) >= 2
}

// InMemoryScheduleStore is a volatile ScheduleStore.
type InMemoryScheduleStore struct {
	mu      sync.RWMutex
	entries []ScheduleEntry
}

// NewInMemoryScheduleStore constructs a schedule store seeded with entries.
func NewInMemoryScheduleStore(entries ...ScheduleEntry) *InMemoryScheduleStore {
	s := &InMemoryScheduleStore{entries: make([]ScheduleEntry, len(entries))}
	copy(s.entries, entries)
	return s
}

// Add appends entries to the rota.
func (s *InMemoryScheduleStore) Add(entries ...ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
}

// Upcoming implements ScheduleStore.
func (s *InMemoryScheduleStore) Upcoming(ref time.Time, limit int) ([]ScheduleEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ScheduleEntry
	for _, e := range s.entries {
		if !e.Date.Before(ref) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ForMember implements ScheduleStore.
func (s *InMemoryScheduleStore) ForMember(ref time.Time, name string) ([]ScheduleEntry, error) {
	all, err := s.Upcoming(ref, 0)
	if err != nil {
		return nil, err
	}

	q := Normalize(name)
	var out []ScheduleEntry
	for _, e := range all {
		if Normalize(e.Leader) == q {
			out = append(out, e)
			continue
		}
		for _, m := range e.Members {
			if Normalize(m) == q {
				out = append(out, e)
				break
			}
		}
	}
	return out, nil
}

// InMemoryMemberStore is a volatile MemberStore.
type InMemoryMemberStore struct {
	mu      sync.RWMutex
	members []Member
}

// NewInMemoryMemberStore constructs a member store seeded with the roster.
func NewInMemoryMemberStore(members ...Member) *InMemoryMemberStore {
	s := &InMemoryMemberStore{members: make([]Member, len(members))}
	copy(s.members, members)
	return s
}

// Add appends members to the roster.
func (s *InMemoryMemberStore) Add(members ...Member) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, members...)
}

// All implements MemberStore.
func (s *InMemoryMemberStore) All() ([]Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Member, len(s.members))
	copy(out, s.members)
	return out, nil
}

// FindByName implements MemberStore.
func (s *InMemoryMemberStore) FindByName(name string) (Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := Normalize(name)
	if q == "" {
		return Member{}, ErrNotFound
	}

	best := -1
	bestScore := 0
	for i, m := range s.members {
		n := Normalize(m.Name)
		score := 0
		switch {
		case n == q:
			score = 100
		case strings.Contains(n, q) || strings.Contains(q, n):
			score = 10
		default:
			score = tokenOverlap(q, n)
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 {
		return Member{}, ErrNotFound
	}
	return s.members[best], nil
}
