package fe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGaussLegendre(t *testing.T) {
	const (
		tol = 1.e-12
	)
	// 1) Total weight equals the interval length
	for n := 1; n <= 8; n++ {
		_, W := GaussLegendre(n)
		assert.InDeltaf(t, 1, W.Sum(), tol, "total weight, n = %d", n)
	}

	// 2) Known two point rule: 0.5 -+ 1/(2*sqrt(3))
	{
		X, W := GaussLegendre(2)
		assert.InDelta(t, 0.5-0.5/math.Sqrt(3), X.AtVec(0), tol)
		assert.InDelta(t, 0.5+0.5/math.Sqrt(3), X.AtVec(1), tol)
		assert.InDelta(t, 0.5, W.AtVec(0), tol)
		assert.InDelta(t, 0.5, W.AtVec(1), tol)
	}

	// 3) Exactness for monomials up to degree 2n-1
	for n := 1; n <= 6; n++ {
		X, W := GaussLegendre(n)
		for k := 0; k <= 2*n-1; k++ {
			var sum float64
			for q := 0; q < n; q++ {
				sum += W.AtVec(q) * math.Pow(X.AtVec(q), float64(k))
			}
			exact := 1. / float64(k+1)
			assert.InDeltaf(t, exact, sum, tol, "moment %d with %d points", k, n)
		}
	}

	// 4) Nodes ascending, inside (0, 1) and symmetric about the midpoint
	{
		X, W := GaussLegendre(7)
		for q := 0; q < 7; q++ {
			assert.True(t, X.AtVec(q) > 0 && X.AtVec(q) < 1)
			if q > 0 {
				assert.True(t, X.AtVec(q) > X.AtVec(q-1))
			}
			assert.InDelta(t, 1-X.AtVec(q), X.AtVec(6-q), tol)
			assert.InDelta(t, W.AtVec(q), W.AtVec(6-q), tol)
			assert.True(t, W.AtVec(q) > 0)
		}
	}
}
