package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsa-text-search/internal/domain"
)

func TestStorage(t *testing.T) {
	chunks := []domain.Chunk{
		{ChunkID: "a:0", Index: 0},
		{ChunkID: "b:0", Index: 1},
		{ChunkID: "c:0", Index: 2},
	}
	vectors := [][]float64{
		{1, 0},
		{0.9, 0.1},
		{-1, 0},
	}

	t.Run("init validates dimension", func(t *testing.T) {
		s := NewStorage()
		assert.Error(t, s.Init(0))
		assert.Error(t, s.Init(-3))
		assert.NoError(t, s.Init(2))
	})

	t.Run("upsert validates shapes", func(t *testing.T) {
		s := NewStorage()
		require.NoError(t, s.Init(2))
		assert.Error(t, s.Upsert(chunks[:1], vectors[:2]))
		assert.Error(t, s.Upsert(chunks[:1], [][]float64{{1, 2, 3}}))
		assert.NoError(t, s.Upsert(chunks, vectors))
	})

	t.Run("search ranks by cosine descending", func(t *testing.T) {
		s := NewStorage()
		require.NoError(t, s.Init(2))
		require.NoError(t, s.Upsert(chunks, vectors))

		res, err := s.Search([]float64{1, 0}, 3)
		require.NoError(t, err)
		require.Len(t, res, 3)
		assert.Equal(t, "a:0", res[0].Chunk.ChunkID)
		assert.Equal(t, "b:0", res[1].Chunk.ChunkID)
		assert.Equal(t, "c:0", res[2].Chunk.ChunkID)
		assert.InDelta(t, 1.0, res[0].Score, 1e-12)
		assert.InDelta(t, -1.0, res[2].Score, 1e-12)
		for i := 1; i < len(res); i++ {
			assert.LessOrEqual(t, res[i].Score, res[i-1].Score)
		}
	})

	t.Run("topK truncates and zero topK defaults", func(t *testing.T) {
		s := NewStorage()
		require.NoError(t, s.Init(2))
		require.NoError(t, s.Upsert(chunks, vectors))

		res, err := s.Search([]float64{1, 0}, 1)
		require.NoError(t, err)
		assert.Len(t, res, 1)

		res, err = s.Search([]float64{1, 0}, 0)
		require.NoError(t, err)
		assert.Len(t, res, 3)
	})

	t.Run("zero-norm query scores zero everywhere", func(t *testing.T) {
		s := NewStorage()
		require.NoError(t, s.Init(2))
		require.NoError(t, s.Upsert(chunks, vectors))

		res, err := s.Search([]float64{0, 0}, 3)
		require.NoError(t, err)
		for _, r := range res {
			assert.Equal(t, 0.0, r.Score)
		}
	})

	t.Run("clear empties the store", func(t *testing.T) {
		s := NewStorage()
		require.NoError(t, s.Init(2))
		require.NoError(t, s.Upsert(chunks, vectors))
		require.NoError(t, s.Clear())
		res, err := s.Search([]float64{1, 0}, 3)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}
