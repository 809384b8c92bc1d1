package batch

import "github.com/louvorkit/louvor/store"

// Chunk is an ordered, contiguous slice of the candidate set. Chunks are
// processed in order but each is an independent unit of failure.
type Chunk struct {
	Index int
	Songs []store.Song
}

// Size returns the number of candidates in the chunk.
func (c Chunk) Size() int { return len(c.Songs) }

// Partition splits candidates into ordered contiguous chunks of at most
// size items; the last chunk may be smaller. Concatenating the chunk
// slices in order reconstructs the input exactly once: no drops, no
// duplicates, order preserved.
func Partition(candidates []store.Song, size int) []Chunk {
	if size <= 0 || len(candidates) == 0 {
		return nil
	}

	chunks := make([]Chunk, 0, (len(candidates)+size-1)/size)
	for start := 0; start < len(candidates); start += size {
		end := start + size
		if end > len(candidates) {
			end = len(candidates)
		}
		chunks = append(chunks, Chunk{Index: len(chunks), Songs: candidates[start:end]})
	}
	return chunks
}
