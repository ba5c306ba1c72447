package lsa

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// TermDocumentMatrix assembles the |V|×N matrix of raw term counts:
// entry (i, j) is the number of occurrences of vocabulary term i in
// document j. Pure function of its inputs; returns nil when either
// axis is empty.
func TermDocumentMatrix(vocab *Vocabulary, docs [][]string) *mat.Dense {
	rows, cols := vocab.Len(), len(docs)
	if rows == 0 || cols == 0 {
		return nil
	}
	data := make([]float64, rows*cols)
	for j, doc := range docs {
		for _, tok := range doc {
			if i, ok := vocab.Index(tok); ok {
				data[i*cols+j]++
			}
		}
	}
	return mat.NewDense(rows, cols, data)
}

// applyTFIDF reweights a raw count matrix in place with smoothed IDF
// and returns the per-term IDF weights, so queries can be scaled the
// same way. Counts are kept as term frequencies (not normalized by
// document length) to stay on the same axes as the raw matrix.
func applyTFIDF(a *mat.Dense) []float64 {
	rows, cols := a.Dims()
	idf := make([]float64, rows)
	n := float64(cols)
	for i := 0; i < rows; i++ {
		df := 0
		for j := 0; j < cols; j++ {
			if a.At(i, j) > 0 {
				df++
			}
		}
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1.0
		for j := 0; j < cols; j++ {
			a.Set(i, j, a.At(i, j)*idf[i])
		}
	}
	return idf
}
