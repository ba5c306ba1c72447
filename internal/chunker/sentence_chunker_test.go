package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsa-text-search/internal/domain"
)

func TestSentenceChunker(t *testing.T) {
	t.Run("splits into sentence windows", func(t *testing.T) {
		c := NewSentenceChunker(2, 0)
		doc := domain.Document{ID: "d1", Content: "One. Two. Three. Four. Five."}
		chunks, err := c.Chunk(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 3)
		assert.Equal(t, "One. Two.", chunks[0].Text)
		assert.Equal(t, "Three. Four.", chunks[1].Text)
		assert.Equal(t, "Five.", chunks[2].Text)
		assert.Equal(t, "d1:1", chunks[1].ChunkID)
	})

	t.Run("overlap repeats trailing sentences", func(t *testing.T) {
		c := NewSentenceChunker(2, 1)
		doc := domain.Document{ID: "d1", Content: "One. Two. Three."}
		chunks, err := c.Chunk(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "One. Two.", chunks[0].Text)
		assert.Equal(t, "Two. Three.", chunks[1].Text)
	})

	t.Run("text without terminators collapses to one chunk", func(t *testing.T) {
		c := NewSentenceChunker(3, 0)
		doc := domain.Document{ID: "d1", Content: "chicago chocolate retro candies made with love"}
		chunks, err := c.Chunk(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 1)
		assert.Equal(t, doc.Content, chunks[0].Text)
	})

	t.Run("whitespace-only document yields no chunks", func(t *testing.T) {
		c := NewSentenceChunker(3, 0)
		chunks, err := c.Chunk(domain.Document{ID: "d1", Content: "   \n\t"})
		require.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("overlap at or above window still advances", func(t *testing.T) {
		doc := domain.Document{ID: "d1", Content: "One. Two. Three. Four. Five."}
		for _, overlap := range []int{2, 3, 10} {
			c := NewSentenceChunker(2, overlap)
			chunks, err := c.Chunk(doc)
			require.NoError(t, err, "overlap=%d", overlap)
			// Effective overlap is capped at window-1, so the cursor
			// moves one sentence per chunk.
			require.Len(t, chunks, 4, "overlap=%d", overlap)
			assert.Equal(t, "One. Two.", chunks[0].Text)
			assert.Equal(t, "Two. Three.", chunks[1].Text)
			assert.Equal(t, "Four. Five.", chunks[3].Text)
		}
	})

	t.Run("invalid window sizes fall back to defaults", func(t *testing.T) {
		c := NewSentenceChunker(0, -2)
		doc := domain.Document{ID: "d1", Content: "One. Two. Three. Four. Five. Six."}
		chunks, err := c.Chunk(doc)
		require.NoError(t, err)
		require.Len(t, chunks, 2) // default window of 5
	})
}
