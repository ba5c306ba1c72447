package lsa

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrRank reports a truncation rank outside [1, min(|V|, N)].
	ErrRank = errors.New("lsa: rank out of range")
	// ErrFactorization reports that the SVD failed to converge.
	ErrFactorization = errors.New("lsa: factorization did not converge")
)

// Factorization holds the rank-k truncation of the singular value
// decomposition A ≈ U·Σ·Vᵀ of a term-document matrix.
type Factorization struct {
	// U is the |V|×k term-to-concept basis with orthonormal columns.
	U *mat.Dense
	// Sigma holds the k leading singular values, non-negative and
	// sorted descending. A rank-deficient matrix shows up as zeros in
	// the tail.
	Sigma []float64
	// V is the N×k document-to-concept basis; row j is document j's
	// concept-space coordinates.
	V *mat.Dense
}

// Factorize computes the thin SVD of a and truncates it to rank k.
// k must lie in [1, min(rows, cols)]; otherwise ErrRank is returned
// before any computation. Degenerate input (an all-zero matrix) still
// produces a defined result with zero singular values.
func Factorize(a *mat.Dense, k int) (*Factorization, error) {
	rows, cols := a.Dims()
	maxRank := rows
	if cols < maxRank {
		maxRank = cols
	}
	if k < 1 || k > maxRank {
		return nil, fmt.Errorf("%w: k=%d, want 1..%d", ErrRank, k, maxRank)
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrFactorization
	}

	var uFull, vFull mat.Dense
	svd.UTo(&uFull)
	svd.VTo(&vFull)
	values := svd.Values(nil)

	uk := mat.NewDense(rows, k, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < k; j++ {
			uk.Set(i, j, uFull.At(i, j))
		}
	}
	vk := mat.NewDense(cols, k, nil)
	for i := 0; i < cols; i++ {
		for j := 0; j < k; j++ {
			vk.Set(i, j, vFull.At(i, j))
		}
	}
	sigma := make([]float64, k)
	copy(sigma, values[:k])

	return &Factorization{U: uk, Sigma: sigma, V: vk}, nil
}

// Rank returns the truncation rank k.
func (f *Factorization) Rank() int { return len(f.Sigma) }

// Reconstruct computes U·Σ·Vᵀ, the rank-k approximation of the
// original matrix. Diagnostic only; serving never needs it.
func (f *Factorization) Reconstruct() *mat.Dense {
	rows, k := f.U.Dims()
	us := mat.NewDense(rows, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < rows; i++ {
			us.Set(i, j, f.U.At(i, j)*f.Sigma[j])
		}
	}
	var approx mat.Dense
	approx.Mul(us, f.V.T())
	return &approx
}

// ReconstructionError returns the Frobenius norm of A − U·Σ·Vᵀ, the
// approximation error of the truncation. Non-increasing in k.
func (f *Factorization) ReconstructionError(a *mat.Dense) float64 {
	var diff mat.Dense
	diff.Sub(a, f.Reconstruct())
	return mat.Norm(&diff, 2)
}
