package fe

import (
	"testing"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
	"github.com/stretchr/testify/assert"
)

// factorial of small arguments, used for exact monomial integrals
func fact(n int) (f float64) {
	f = 1
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return
}

// applyQuad integrates f over the reference element of Q
func applyQuad(Q QuadRule, f func(x, y float64) float64) (sum float64) {
	for k := 0; k < Q.NumPoints(); k++ {
		sum += Q.Weights.AtVec(k) * f(Q.Points.At(0, k), Q.Points.At(1, k))
	}
	return
}

func TestQuadRuleSegment(t *testing.T) {
	// Monomial x^k integrates to 1/(k+1) on [0, 1]
	for order := 0; order <= 8; order++ {
		Q := NewQuadRule(base.Segment, order)
		for k := 0; k <= order; k++ {
			var sum float64
			for i := 0; i < Q.NumPoints(); i++ {
				sum += Q.Weights.AtVec(i) * utils.POW(Q.Points.At(0, i), k)
			}
			assert.InDelta(t, 1/float64(k+1), sum, 1.e-12)
		}
	}
}

func TestQuadRuleTria(t *testing.T) {
	{ // Weights sum to the area of the reference triangle
		for order := 0; order <= 10; order++ {
			Q := NewQuadRule(base.Tria, order)
			assert.InDelta(t, 0.5, Q.Weights.Sum(), 1.e-12)
		}
	}
	{ // Monomial x^a y^b integrates to a! b! / (a+b+2)! on the
		// reference triangle
		for order := 0; order <= 6; order++ {
			Q := NewQuadRule(base.Tria, order)
			for a := 0; a <= order; a++ {
				for b := 0; a+b <= order; b++ {
					exact := fact(a) * fact(b) / fact(a+b+2)
					got := applyQuad(Q, func(x, y float64) float64 {
						return utils.POW(x, a) * utils.POW(y, b)
					})
					assert.InDeltaf(t, exact, got, 1.e-12,
						"order %d monomial x^%d y^%d", order, a, b)
				}
			}
		}
	}
	{ // All points inside the closed reference triangle
		Q := NewQuadRule(base.Tria, 7)
		for k := 0; k < Q.NumPoints(); k++ {
			x, y := Q.Points.At(0, k), Q.Points.At(1, k)
			assert.True(t, x > 0 && y > 0 && x+y < 1)
			assert.True(t, Q.Weights.AtVec(k) > 0)
		}
	}
}

func TestQuadRuleQuad(t *testing.T) {
	{ // Weights sum to the area of the reference square
		for order := 0; order <= 10; order++ {
			Q := NewQuadRule(base.Quad, order)
			assert.InDelta(t, 1.0, Q.Weights.Sum(), 1.e-12)
		}
	}
	{ // Monomial x^a y^b integrates to 1/((a+1)(b+1))
		for order := 0; order <= 6; order++ {
			Q := NewQuadRule(base.Quad, order)
			for a := 0; a <= order; a++ {
				for b := 0; b <= order; b++ {
					exact := 1 / (float64(a+1) * float64(b+1))
					got := applyQuad(Q, func(x, y float64) float64 {
						return utils.POW(x, a) * utils.POW(y, b)
					})
					assert.InDeltaf(t, exact, got, 1.e-12,
						"order %d monomial x^%d y^%d", order, a, b)
				}
			}
		}
	}
}

func TestQuadRulePoint(t *testing.T) {
	Q := NewQuadRule(base.Point, 0)
	assert.Equal(t, 1, Q.NumPoints())
	assert.Equal(t, 1.0, Q.Weights.AtVec(0))
}

func TestQuadRuleErrors(t *testing.T) {
	assert.Panics(t, func() { NewQuadRule(base.Tria, -1) })
	assert.Panics(t, func() { NewQuadRule(base.RefEl(99), 2) })
}
