package embedding

import (
	"errors"
	"fmt"
	"sync"

	"lsa-text-search/internal/domain"
	"lsa-text-search/internal/lsa"
)

// ErrNotPrepared reports Embed before Prepare.
var ErrNotPrepared = errors.New("lsa embedder not prepared")

// LSAEmbedder embeds text by projecting its bag-of-words vector into
// the concept space of a truncated SVD built over the corpus.
//
// Prepare publishes a fresh immutable index and atomically replaces
// the previous one, so concurrent Embed calls always see a complete
// snapshot; no finer locking is needed.
type LSAEmbedder struct {
	analyzer domain.Analyzer
	opts     lsa.Options

	mu    sync.RWMutex
	index *lsa.Index
}

// NewLSAEmbedder creates an unprepared embedder.
func NewLSAEmbedder(analyzer domain.Analyzer, opts lsa.Options) *LSAEmbedder {
	return &LSAEmbedder{analyzer: analyzer, opts: opts}
}

// Name returns the identifier of this embedder implementation.
func (e *LSAEmbedder) Name() string { return "lsa" }

// Prepare normalizes the corpus, builds the term-document matrix and
// its truncated factorization, and swaps it in as the active index.
func (e *LSAEmbedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for LSA prepare")
	}
	docs := make([][]string, len(corpus))
	for i, text := range corpus {
		docs[i] = e.analyzer.Normalize(text)
	}
	index, err := lsa.BuildIndex(docs, e.opts)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}
	e.mu.Lock()
	e.index = index
	e.mu.Unlock()
	return nil
}

// Dimension returns the concept-space rank, 0 before Prepare.
func (e *LSAEmbedder) Dimension() int {
	if ix := e.snapshot(); ix != nil {
		return ix.Rank()
	}
	return 0
}

// Embed projects text into concept space. Terms outside the corpus
// vocabulary contribute zero; a fully out-of-vocabulary text yields
// the zero vector.
func (e *LSAEmbedder) Embed(text string) ([]float64, error) {
	ix := e.snapshot()
	if ix == nil {
		return nil, ErrNotPrepared
	}
	return ix.Project(e.analyzer.Normalize(text)), nil
}

// Index returns the active index snapshot, nil before Prepare.
func (e *LSAEmbedder) Index() *lsa.Index {
	return e.snapshot()
}

func (e *LSAEmbedder) snapshot() *lsa.Index {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.index
}
