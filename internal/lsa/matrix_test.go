package lsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermDocumentMatrix(t *testing.T) {
	t.Run("entries are exact raw counts", func(t *testing.T) {
		docs := [][]string{
			{"a", "b", "a"},
			{"b", "c"},
		}
		v := BuildVocabulary(docs)
		a := TermDocumentMatrix(v, docs)
		require.NotNil(t, a)

		rows, cols := a.Dims()
		assert.Equal(t, v.Len(), rows)
		assert.Equal(t, len(docs), cols)

		for i, term := range v.Terms() {
			for j, doc := range docs {
				want := 0.0
				for _, tok := range doc {
					if tok == term {
						want++
					}
				}
				assert.Equal(t, want, a.At(i, j), "A[%q][%d]", term, j)
			}
		}
	})

	t.Run("vocabulary term absent from a document yields zero", func(t *testing.T) {
		docs := [][]string{{"x"}, {"y"}}
		v := BuildVocabulary(docs)
		a := TermDocumentMatrix(v, docs)
		require.NotNil(t, a)
		xi, _ := v.Index("x")
		assert.Equal(t, 0.0, a.At(xi, 1))
	})

	t.Run("entries are non-negative", func(t *testing.T) {
		docs := [][]string{{"a", "a", "b"}, {"b"}, {"c", "a"}}
		v := BuildVocabulary(docs)
		a := TermDocumentMatrix(v, docs)
		rows, cols := a.Dims()
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				assert.GreaterOrEqual(t, a.At(i, j), 0.0)
			}
		}
	})

	t.Run("degenerate axes return nil", func(t *testing.T) {
		assert.Nil(t, TermDocumentMatrix(BuildVocabulary(nil), nil))
		assert.Nil(t, TermDocumentMatrix(BuildVocabulary([][]string{{}}), [][]string{{}}))
	})
}
