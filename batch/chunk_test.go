package batch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louvorkit/louvor/store"
)

func numberedSongs(n int) []store.Song {
	songs := make([]store.Song, n)
	for i := range songs {
		songs[i] = store.Song{ID: fmt.Sprintf("s%03d", i+1), Title: fmt.Sprintf("Canção %03d", i+1)}
	}
	return songs
}

func TestPartition(t *testing.T) {
	t.Run("splits into contiguous chunks", func(t *testing.T) {
		chunks := Partition(numberedSongs(37), 15)
		require.Len(t, chunks, 3)
		assert.Equal(t, 15, chunks[0].Size())
		assert.Equal(t, 15, chunks[1].Size())
		assert.Equal(t, 7, chunks[2].Size())

		// Indexes are sequential and the global order is preserved.
		next := 1
		for i, chunk := range chunks {
			assert.Equal(t, i, chunk.Index)
			for _, song := range chunk.Songs {
				assert.Equal(t, fmt.Sprintf("s%03d", next), song.ID)
				next++
			}
		}
	})

	t.Run("input below the chunk size yields one chunk", func(t *testing.T) {
		chunks := Partition(numberedSongs(5), 15)
		require.Len(t, chunks, 1)
		assert.Equal(t, 5, chunks[0].Size())
	})

	t.Run("exact multiple", func(t *testing.T) {
		chunks := Partition(numberedSongs(30), 15)
		require.Len(t, chunks, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Partition(nil, 15))
	})
}

func TestPartitionCoversEveryCandidateOnce(t *testing.T) {
	songs := numberedSongs(23)
	chunks := Partition(songs, 10)

	total := 0
	for _, chunk := range chunks {
		total += chunk.Size()
	}
	assert.Equal(t, len(songs), total)
}
