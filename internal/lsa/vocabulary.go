package lsa

import "sort"

// Vocabulary is the ordered set of distinct terms across a document
// collection. The order is lexicographic, fixed at build time, and is
// the row axis of the term-document matrix.
type Vocabulary struct {
	terms   []string
	indices map[string]int
}

// BuildVocabulary collects the distinct tokens across all documents and
// assigns each a stable index. An empty collection yields an empty
// vocabulary.
func BuildVocabulary(docs [][]string) *Vocabulary {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, tok := range doc {
			seen[tok] = struct{}{}
		}
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	indices := make(map[string]int, len(terms))
	for i, term := range terms {
		indices[term] = i
	}
	return &Vocabulary{terms: terms, indices: indices}
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int { return len(v.terms) }

// Terms returns the ordered term list. Callers must not modify it.
func (v *Vocabulary) Terms() []string { return v.terms }

// Index returns the row index of term, if present.
func (v *Vocabulary) Index(term string) (int, bool) {
	i, ok := v.indices[term]
	return i, ok
}

// Encode builds the bag-of-words count vector for a token sequence.
// Tokens outside the vocabulary contribute zero.
func (v *Vocabulary) Encode(tokens []string) []float64 {
	vec := make([]float64, len(v.terms))
	for _, tok := range tokens {
		if i, ok := v.indices[tok]; ok {
			vec[i]++
		}
	}
	return vec
}
