package utils

import (
	"fmt"

	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("unable to invert, matrix is not square: nr, nc = %v, %v", nr, nc)
		return
	}
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// SolveRankRevealing computes the minimum norm least squares solution of
// m * x = b through a singular value decomposition. Singular values below
// rankTol relative to the largest one are treated as zero, so nearly rank
// deficient systems are solved stably.
func (m Matrix) SolveRankRevealing(b Vector) (x Vector) {
	var (
		nr, _ = m.Dims()
		svd   mat.SVD
		xv    mat.VecDense
	)
	if b.Len() != nr {
		err := fmt.Errorf("dimension mismatch in solve: nr = %v, len(b) = %v", nr, b.Len())
		panic(err)
	}
	if ok := svd.Factorize(m.M, mat.SVDThin); !ok {
		err := fmt.Errorf("unable to factorize matrix for rank revealing solve")
		panic(err)
	}
	rank := svd.Rank(rankTol)
	if rank == 0 {
		err := fmt.Errorf("unable to solve, matrix has rank zero")
		panic(err)
	}
	svd.SolveVecTo(&xv, b.V, rank)
	x = NewVector(xv.Len(), xv.RawVector().Data)
	return
}

const rankTol = 1.e-14

// ConditionNumber returns the 2-norm condition number, the ratio of the
// extreme singular values.
func (m Matrix) ConditionNumber() float64 {
	var (
		svd mat.SVD
	)
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 1.e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1.e16
	}
	// Singular values are in descending order
	minVal := values[len(values)-1]
	maxVal := values[0]
	if minVal < 1.e-16 {
		return 1.e16
	}
	return maxVal / minVal
}
