package lsa

import (
	"errors"
	"math"
)

// ErrEmptyCorpus reports an index build over no documents or an empty
// vocabulary.
var ErrEmptyCorpus = errors.New("lsa: empty corpus")

// Weighting selects how matrix entries (and query vectors) are scaled.
type Weighting int

const (
	// WeightCount keeps raw term counts.
	WeightCount Weighting = iota
	// WeightTFIDF scales counts by smoothed inverse document frequency.
	WeightTFIDF
)

// Options configures an index build.
type Options struct {
	// Rank is the concept-space dimensionality k. Values above
	// min(|V|, N) are capped; zero or negative means untruncated.
	Rank int
	// Weighting selects the matrix weighting scheme.
	Weighting Weighting
}

// Index is the immutable concept-space index for one document
// collection: vocabulary, truncated factorization and optional IDF
// weights. Safe for concurrent readers once built.
type Index struct {
	vocab *Vocabulary
	fact  *Factorization
	idf   []float64
	docs  int
}

// BuildIndex builds the vocabulary, assembles the term-document
// matrix, and factorizes it to the configured rank.
func BuildIndex(docs [][]string, opts Options) (*Index, error) {
	vocab := BuildVocabulary(docs)
	a := TermDocumentMatrix(vocab, docs)
	if a == nil {
		return nil, ErrEmptyCorpus
	}

	var idf []float64
	if opts.Weighting == WeightTFIDF {
		idf = applyTFIDF(a)
	}

	maxRank := vocab.Len()
	if len(docs) < maxRank {
		maxRank = len(docs)
	}
	k := opts.Rank
	if k <= 0 || k > maxRank {
		k = maxRank
	}

	fact, err := Factorize(a, k)
	if err != nil {
		return nil, err
	}
	return &Index{vocab: vocab, fact: fact, idf: idf, docs: len(docs)}, nil
}

// Vocabulary returns the term axis of the index.
func (ix *Index) Vocabulary() *Vocabulary { return ix.vocab }

// Factorization returns the truncated components.
func (ix *Index) Factorization() *Factorization { return ix.fact }

// Rank returns the concept-space dimensionality.
func (ix *Index) Rank() int { return ix.fact.Rank() }

// Docs returns the number of indexed documents.
func (ix *Index) Docs() int { return ix.docs }

// DocumentVector returns document j's concept-space coordinates (the
// j-th row of V).
func (ix *Index) DocumentVector(j int) []float64 {
	k := ix.fact.Rank()
	vec := make([]float64, k)
	for c := 0; c < k; c++ {
		vec[c] = ix.fact.V.At(j, c)
	}
	return vec
}

// Project maps a normalized query token sequence into concept space:
// qs = q·U·Σ⁻¹ over the kept dimensions. Tokens outside the
// vocabulary contribute zero. A zero singular value has no defined
// inverse; that dimension is clamped to zero rather than excluded, so
// the projected vector always has length k.
func (ix *Index) Project(tokens []string) []float64 {
	q := ix.vocab.Encode(tokens)
	if ix.idf != nil {
		for i := range q {
			q[i] *= ix.idf[i]
		}
	}
	k := ix.fact.Rank()
	terms := ix.vocab.Len()
	qs := make([]float64, k)
	for j := 0; j < k; j++ {
		if ix.fact.Sigma[j] == 0 {
			continue
		}
		var dot float64
		for i := 0; i < terms; i++ {
			dot += q[i] * ix.fact.U.At(i, j)
		}
		qs[j] = dot / ix.fact.Sigma[j]
	}
	return qs
}

// Scores computes the cosine similarity between a projected query and
// every document's concept vector, in document order. Zero-norm
// vectors score the 0 sentinel.
func (ix *Index) Scores(qs []float64) []float64 {
	scores := make([]float64, ix.docs)
	for j := 0; j < ix.docs; j++ {
		scores[j] = CosineSimilarity(qs, ix.DocumentVector(j))
	}
	return scores
}

// CosineSimilarity computes dot(a, b) / (‖a‖·‖b‖). Mismatched or
// zero-norm inputs return 0 instead of an undefined value.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
