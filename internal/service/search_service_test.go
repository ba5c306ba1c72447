package service

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lsa-text-search/internal/analyzer"
	"lsa-text-search/internal/chunker"
	"lsa-text-search/internal/embedding"
	"lsa-text-search/internal/lsa"
	"lsa-text-search/internal/summarizer"
	"lsa-text-search/internal/vectorstore/memory"
)

var candyTexts = []string{
	"chicago chocolate retro candies made with love",
	"chocolate sweets and candies collection with mini love hearts",
	"retro sweets from chicago for chocolate lovers",
}

func newCandyService(t *testing.T, rank int) (*SearchServiceImpl, []string) {
	t.Helper()
	an := analyzer.New(analyzer.Config{
		Stopwords: []string{"with", "for", "and", "from"},
		Stems:     map[string]string{"lovers": "love", "hearts": "heart"},
	})
	log := logrus.New()
	log.SetOutput(io.Discard)

	svc := NewSearchService(
		an,
		chunker.NewSentenceChunker(5, 0),
		embedding.NewLSAEmbedder(an, lsa.Options{Rank: rank}),
		memory.NewStorage(),
		summarizer.NewFrequencySummarizer(an),
		3,
		log,
	)

	dir := t.TempDir()
	paths := make([]string, len(candyTexts))
	for i, text := range candyTexts {
		paths[i] = filepath.Join(dir, "doc"+string(rune('0'+i))+".txt")
		require.NoError(t, os.WriteFile(paths[i], []byte(text), 0o644))
	}
	return svc, paths
}

func TestIngestDocuments(t *testing.T) {
	t.Run("builds index and returns summary", func(t *testing.T) {
		svc, paths := newCandyService(t, 2)
		summary, err := svc.IngestDocuments(paths)
		require.NoError(t, err)
		assert.NotEmpty(t, summary)
	})

	t.Run("no txt files is an error", func(t *testing.T) {
		svc, _ := newCandyService(t, 2)
		_, err := svc.IngestDocuments([]string{filepath.Join(t.TempDir(), "*.txt")})
		assert.Error(t, err)
	})

	t.Run("malformed glob pattern is reported", func(t *testing.T) {
		svc, _ := newCandyService(t, 2)
		_, err := svc.IngestDocuments([]string{"[.txt"})
		require.Error(t, err)
		assert.ErrorIs(t, err, filepath.ErrBadPattern)
		assert.Contains(t, err.Error(), "[.txt")
	})

	t.Run("non-txt files are skipped", func(t *testing.T) {
		svc, paths := newCandyService(t, 2)
		dir := t.TempDir()
		md := filepath.Join(dir, "notes.md")
		require.NoError(t, os.WriteFile(md, []byte("ignored"), 0o644))
		_, err := svc.IngestDocuments(append(paths, md))
		require.NoError(t, err)
	})
}

func TestQueryRanking(t *testing.T) {
	svc, paths := newCandyService(t, 2)
	_, err := svc.IngestDocuments(paths)
	require.NoError(t, err)

	res, err := svc.Query("chicago", 3)
	require.NoError(t, err)
	require.Len(t, res, 3)

	// Documents 0 and 2 contain "chicago"; document 1 does not and
	// lands on the other side of the concept space.
	assert.Equal(t, candyTexts[0], res[0].Chunk.Text)
	assert.Equal(t, candyTexts[2], res[1].Chunk.Text)
	assert.Equal(t, candyTexts[1], res[2].Chunk.Text)
	assert.Greater(t, res[0].Score, res[1].Score)
	assert.Greater(t, res[1].Score, res[2].Score)
	assert.Negative(t, res[2].Score)

	t.Run("repeat query is identical", func(t *testing.T) {
		again, err := svc.Query("chicago", 3)
		require.NoError(t, err)
		require.Len(t, again, 3)
		for i := range res {
			assert.Equal(t, res[i].Score, again[i].Score)
			assert.Equal(t, res[i].Chunk.ChunkID, again[i].Chunk.ChunkID)
		}
	})

	t.Run("scores bounded by cosine range", func(t *testing.T) {
		for _, r := range res {
			assert.GreaterOrEqual(t, r.Score, -1.0)
			assert.LessOrEqual(t, r.Score, 1.0)
		}
	})
}

func TestScores(t *testing.T) {
	svc, paths := newCandyService(t, 2)
	_, err := svc.IngestDocuments(paths)
	require.NoError(t, err)

	scores, err := svc.Scores("chicago")
	require.NoError(t, err)
	require.Len(t, scores, 3)
	assert.Greater(t, scores[0], scores[2])
	assert.Greater(t, scores[2], scores[1])
	assert.Negative(t, scores[1])
}

func TestQueryLexicalFallback(t *testing.T) {
	svc, paths := newCandyService(t, 2)
	_, err := svc.IngestDocuments(paths)
	require.NoError(t, err)

	// Every query term is out of vocabulary, so the projection is the
	// zero vector and ranking falls back to lexical overlap.
	res, err := svc.Query("quantum entanglement", 3)
	require.NoError(t, err)
	require.Len(t, res, 3)
	for _, r := range res {
		assert.Equal(t, 0.0, r.Score)
	}
}
