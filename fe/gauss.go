package fe

import (
	"fmt"
	"math"

	"github.com/huanglangwen/lehrfempp/utils"
	"gonum.org/v1/gonum/mat"
)

// GaussLegendre computes the nodes and weights of the n point Gauss
// quadrature rule on [0, 1], exact for polynomials of degree 2n-1. The
// nodes are the eigenvalues of the symmetric tridiagonal Jacobi matrix
// and the weights follow from the first eigenvector components
// (Golub-Welsch).
func GaussLegendre(n int) (X, W utils.Vector) {
	var (
		x, w []float64
	)
	if n < 1 {
		err := fmt.Errorf("a quadrature rule needs at least one point, n = %v", n)
		panic(err)
	}
	if n == 1 {
		x = []float64{0.5}
		w = []float64{1}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	// Off diagonal of the Jacobi matrix for the Legendre weight
	d0 := make([]float64, n)
	d1 := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		ip1 := float64(i + 1)
		d1[i] = ip1 / math.Sqrt((2*ip1-1)*(2*ip1+1))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)

	VVr := mat.NewDense(n, n, nil)
	eig.VectorsTo(VVr)
	first := VVr.RawRowView(0)
	w = make([]float64, n)
	for i := range w {
		// Map nodes from [-1, 1] to [0, 1]; the total weight becomes 1
		x[i] = 0.5 * (x[i] + 1)
		w[i] = first[i] * first[i]
	}
	X, W = utils.NewVector(n, x), utils.NewVector(n, w)
	return
}
