package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "aguas purificadoras", Normalize("  Águas Purificadoras "))
	assert.Equal(t, "bencao", Normalize("Benção"))
	assert.Equal(t, "", Normalize("   "))
}

func seededSongs() *InMemorySongStore {
	return NewInMemorySongStore(
		Song{ID: "s1", Title: "Grande É o Senhor", Artist: "Adhemar de Campos", Themes: []string{"adoração"}},
		Song{ID: "s2", Title: "Águas Purificadoras", Artist: "Diante do Trono", Themes: []string{"santidade"}},
		Song{ID: "s3", Title: "Grande É o Senhor Deus", Artist: "Coral", Themes: []string{"majestade"}},
	)
}

func TestSongStoreFindByTitle(t *testing.T) {
	s := seededSongs()

	t.Run("exact normalized match beats substring", func(t *testing.T) {
		song, err := s.FindByTitle("grande é o senhor")
		require.NoError(t, err)
		assert.Equal(t, "s1", song.ID)
	})

	t.Run("accent insensitive", func(t *testing.T) {
		song, err := s.FindByTitle("aguas purificadoras")
		require.NoError(t, err)
		assert.Equal(t, "s2", song.ID)
	})

	t.Run("token overlap fallback", func(t *testing.T) {
		song, err := s.FindByTitle("senhor grande")
		require.NoError(t, err)
		assert.Equal(t, "s1", song.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.FindByTitle("inexistente")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := s.FindByTitle("")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestSongStoreSearch(t *testing.T) {
	s := seededSongs()

	t.Run("matches by theme", func(t *testing.T) {
		found, err := s.Search("santidade")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "s2", found[0].ID)
	})

	t.Run("matches by artist", func(t *testing.T) {
		found, err := s.Search("diante do trono")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "s2", found[0].ID)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		found, err := s.Search("  ")
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestSongStoreAllReturnsCopy(t *testing.T) {
	s := seededSongs()
	all, err := s.All()
	require.NoError(t, err)
	require.Len(t, all, 3)

	all[0].Title = "mutated"
	again, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, "Grande É o Senhor", again[0].Title)
}

func TestScheduleStoreUpcoming(t *testing.T) {
	ref := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s := NewInMemoryScheduleStore(
		ScheduleEntry{Date: ref.AddDate(0, 0, 10), Service: "Ensaio", Leader: "Carlos Lima"},
		ScheduleEntry{Date: ref.AddDate(0, 0, -7), Service: "Culto passado", Leader: "Ana Souza"},
		ScheduleEntry{Date: ref.AddDate(0, 0, 3), Service: "Culto de domingo", Leader: "Ana Souza", Members: []string{"Carlos Lima"}},
	)

	t.Run("filters the past and sorts ascending", func(t *testing.T) {
		entries, err := s.Upcoming(ref, 0)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Culto de domingo", entries[0].Service)
		assert.Equal(t, "Ensaio", entries[1].Service)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		entries, err := s.Upcoming(ref, 1)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Culto de domingo", entries[0].Service)
	})

	t.Run("for member matches leader and team", func(t *testing.T) {
		entries, err := s.ForMember(ref, "carlos lima")
		require.NoError(t, err)
		require.Len(t, entries, 2)
	})
}

func TestMemberStoreFindByName(t *testing.T) {
	s := NewInMemoryMemberStore(
		Member{Name: "Ana Souza", Roles: []string{"ministra"}},
		Member{Name: "Carlos Lima", Roles: []string{"baterista"}},
	)

	t.Run("exact", func(t *testing.T) {
		m, err := s.FindByName("ana souza")
		require.NoError(t, err)
		assert.Equal(t, "Ana Souza", m.Name)
	})

	t.Run("partial", func(t *testing.T) {
		m, err := s.FindByName("Carlos")
		require.NoError(t, err)
		assert.Equal(t, "Carlos Lima", m.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.FindByName("Zacarias")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
