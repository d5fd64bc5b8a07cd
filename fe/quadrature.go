package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
)

// QuadRule is a numerical quadrature rule on a reference element. The
// quadrature points are the columns of Points and the rule integrates
// polynomials up to degree Order exactly.
type QuadRule struct {
	RefEl   base.RefEl
	Points  utils.Matrix
	Weights utils.Vector
	Order   int
}

// NewQuadRule builds a quadrature rule of the requested exactness
// order on the given reference element. Segment and quadrilateral rules
// are (tensorized) Gauss Legendre rules, the triangle rule collapses a
// tensor rule through the Duffy transform, which needs one extra order
// in the first direction to absorb the transform's Jacobian 1-u.
func NewQuadRule(refEl base.RefEl, order int) (Q QuadRule) {
	if order < 0 {
		panic(fmt.Errorf("quadrature order %d must not be negative", order))
	}
	Q.RefEl = refEl
	Q.Order = order
	switch refEl {
	case base.Point:
		Q.Points = utils.Matrix{}
		Q.Weights = utils.NewVector(1, []float64{1})
	case base.Segment:
		n := (order + 2) / 2
		X, W := GaussLegendre(n)
		Q.Points = utils.NewMatrix(1, n, X.DataP)
		Q.Weights = W
	case base.Tria:
		n := (order + 3) / 2
		X, W := GaussLegendre(n)
		Q.Points = utils.NewMatrix(2, n*n)
		Q.Weights = utils.NewVector(n * n)
		for i := 0; i < n; i++ {
			u := X.AtVec(i)
			for j := 0; j < n; j++ {
				var (
					v = X.AtVec(j)
					k = i*n + j
				)
				Q.Points.Set(0, k, u)
				Q.Points.Set(1, k, v*(1-u))
				Q.Weights.DataP[k] = W.AtVec(i) * W.AtVec(j) * (1 - u)
			}
		}
	case base.Quad:
		n := (order + 2) / 2
		X, W := GaussLegendre(n)
		Q.Points = utils.NewMatrix(2, n*n)
		Q.Weights = utils.NewVector(n * n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				k := i*n + j
				Q.Points.Set(0, k, X.AtVec(j))
				Q.Points.Set(1, k, X.AtVec(i))
				Q.Weights.DataP[k] = W.AtVec(i) * W.AtVec(j)
			}
		}
	default:
		panic(fmt.Errorf("no quadrature rule for reference element %v", refEl))
	}
	return
}

// NumPoints returns the number of quadrature points.
func (Q QuadRule) NumPoints() int {
	return Q.Weights.Len()
}
