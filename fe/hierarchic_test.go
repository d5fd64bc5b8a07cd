package fe

import (
	"math"
	"math/rand"
	"testing"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
	"github.com/stretchr/testify/assert"
)

// evalCombination evaluates the function with the given basis expansion
// coefficients at the points in the columns of X.
func evalCombination(fe ScalarReferenceFiniteElement, dofs utils.Vector,
	X utils.Matrix) (vals []float64) {
	var (
		phi   = fe.EvalReferenceShapeFunctions(X)
		_, nq = X.Dims()
	)
	vals = make([]float64, nq)
	for q := 0; q < nq; q++ {
		for i := 0; i < fe.NumRefShapeFunctions(); i++ {
			vals[q] += dofs.AtVec(i) * phi.At(i, q)
		}
	}
	return
}

// interpolate converts point values of f at the evaluation nodes of a
// 2D element into basis expansion coefficients.
func interpolate(fe ScalarReferenceFiniteElement,
	f func(x, y float64) float64) utils.Vector {
	var (
		nodes = fe.EvaluationNodes()
		vals  = make([]float64, fe.NumEvaluationNodes())
	)
	for k := range vals {
		vals[k] = f(nodes.At(0, k), nodes.At(1, k))
	}
	return fe.NodalValuesToDofs(utils.NewVector(len(vals), vals))
}

// checkGradientsFD compares analytic gradients against central finite
// differences at interior points of a 2D reference element.
func checkGradientsFD(t *testing.T, fe ScalarReferenceFiniteElement,
	pts [][2]float64, tol float64) {
	const h = 1.e-6
	for _, pt := range pts {
		var (
			grad  = fe.GradientsReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{pt[0], pt[1]}))
			phiPx = fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{pt[0] + h, pt[1]}))
			phiMx = fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{pt[0] - h, pt[1]}))
			phiPy = fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{pt[0], pt[1] + h}))
			phiMy = fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{pt[0], pt[1] - h}))
		)
		for i := 0; i < fe.NumRefShapeFunctions(); i++ {
			assert.InDeltaf(t, (phiPx.At(i, 0)-phiMx.At(i, 0))/(2*h), grad.At(i, 0), tol,
				"d/dx of shape function %d at %v", i, pt)
			assert.InDeltaf(t, (phiPy.At(i, 0)-phiMy.At(i, 0))/(2*h), grad.At(i, 1), tol,
				"d/dy of shape function %d at %v", i, pt)
		}
	}
}

func TestHierarchicSegment(t *testing.T) {
	{ // Shape function counts
		for p := 1; p <= 5; p++ {
			fe := NewHierarchicSegment(p)
			assert.Equal(t, base.Segment, fe.RefEl())
			assert.Equal(t, p, fe.Degree())
			assert.Equal(t, p+1, fe.NumRefShapeFunctions())
			assert.Equal(t, p-1, fe.NumRefShapeFunctionsCodim(0))
			assert.Equal(t, 1, fe.NumRefShapeFunctionsCodim(1))
			assert.Equal(t, 1, fe.NumRefShapeFunctionsSub(1, 1))
			assert.Equal(t, p+1, fe.NumEvaluationNodes())
		}
	}
	{ // Vertex functions sum to one, bubbles vanish at the endpoints
		var (
			fe  = NewHierarchicSegment(4)
			X   = utils.NewMatrix(1, 5, []float64{0, 0.2, 0.5, 0.8, 1})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		for q := 0; q < 5; q++ {
			assert.InDelta(t, 1, phi.At(0, q)+phi.At(1, q), 1.e-14)
		}
		for i := 2; i <= 4; i++ {
			assert.InDelta(t, 0, phi.At(i, 0), 1.e-14)
			assert.InDelta(t, 0, phi.At(i, 4), 1.e-14)
		}
	}
	{ // Known values of the quadratic and cubic bubbles
		var (
			fe  = NewHierarchicSegment(3)
			X   = utils.NewMatrix(1, 2, []float64{0.5, 0.3})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		assert.InDelta(t, -0.25, phi.At(2, 0), 1.e-14)
		assert.InDelta(t, -0.21, phi.At(2, 1), 1.e-14)
		assert.InDelta(t, 0, phi.At(3, 0), 1.e-14)
		assert.InDelta(t, 0.084, phi.At(3, 1), 1.e-14)
	}
	{ // Evaluation nodes are the endpoints followed by Chebyshev nodes
		var (
			fe    = NewHierarchicSegment(3)
			nodes = fe.EvaluationNodes()
			cheb  = chebyshevNodes(2)
		)
		assert.Equal(t, 0., nodes.At(0, 0))
		assert.Equal(t, 1., nodes.At(0, 1))
		assert.InDelta(t, cheb[0], nodes.At(0, 2), 1.e-15)
		assert.InDelta(t, cheb[1], nodes.At(0, 3), 1.e-15)
		assert.Less(t, nodes.At(0, 2), nodes.At(0, 3))
	}
	{ // Nodal values of degree 2 at the nodes 0, 1, 1/2
		fe := NewHierarchicSegment(2)
		dofs := fe.NodalValuesToDofs(utils.NewVector(3, []float64{1, 1, 1}))
		assert.InDelta(t, 1, dofs.AtVec(0), 1.e-12)
		assert.InDelta(t, 1, dofs.AtVec(1), 1.e-12)
		assert.InDelta(t, 0, dofs.AtVec(2), 1.e-12)
		dofs = fe.NodalValuesToDofs(utils.NewVector(3, []float64{0, 0, 1}))
		assert.InDelta(t, 0, dofs.AtVec(0), 1.e-12)
		assert.InDelta(t, 0, dofs.AtVec(1), 1.e-12)
		assert.InDelta(t, -4, dofs.AtVec(2), 1.e-12)
	}
	{ // Interpolating a cubic reproduces it away from the nodes
		var (
			fe    = NewHierarchicSegment(3)
			f     = func(x float64) float64 { return x*x*x - 2*x*x + x }
			nodes = fe.EvaluationNodes()
			vals  = make([]float64, 4)
		)
		for k := range vals {
			vals[k] = f(nodes.At(0, k))
		}
		dofs := fe.NodalValuesToDofs(utils.NewVector(4, vals))
		X := utils.NewMatrix(1, 3, []float64{0.1, 0.37, 0.77})
		got := evalCombination(fe, dofs, X)
		for q, x := range []float64{0.1, 0.37, 0.77} {
			assert.InDeltaf(t, f(x), got[q], 1.e-12, "x=%v", x)
		}
	}
	{ // Derivatives against central finite differences
		const h = 1.e-6
		fe := NewHierarchicSegment(4)
		for _, x := range []float64{0.2, 0.6} {
			var (
				grad  = fe.GradientsReferenceShapeFunctions(utils.NewMatrix(1, 1, []float64{x}))
				phiPl = fe.EvalReferenceShapeFunctions(utils.NewMatrix(1, 1, []float64{x + h}))
				phiMi = fe.EvalReferenceShapeFunctions(utils.NewMatrix(1, 1, []float64{x - h}))
			)
			for i := 0; i < 5; i++ {
				assert.InDeltaf(t, (phiPl.At(i, 0)-phiMi.At(i, 0))/(2*h), grad.At(i, 0), 1.e-6,
					"shape function %d at %v", i, x)
			}
		}
	}
	{ // Errors
		assert.Panics(t, func() { NewHierarchicSegment(0) })
		fe := NewHierarchicSegment(2)
		assert.Panics(t, func() { fe.NumRefShapeFunctionsCodim(2) })
		assert.Panics(t, func() {
			fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 1, []float64{0, 0}))
		})
	}
}

func TestHierarchicTria(t *testing.T) {
	var (
		allPos = []mesh.Orientation{mesh.Positive, mesh.Positive, mesh.Positive}
		allNeg = []mesh.Orientation{mesh.Negative, mesh.Negative, mesh.Negative}
		mixed  = []mesh.Orientation{mesh.Negative, mesh.Positive, mesh.Negative}
	)
	{ // Shape function counts split over vertices, edges and interior
		for p := 1; p <= 5; p++ {
			fe := NewHierarchicTria(p, allPos)
			assert.Equal(t, base.Tria, fe.RefEl())
			total := (p + 1) * (p + 2) / 2
			assert.Equal(t, total, fe.NumRefShapeFunctions())
			assert.Equal(t, total,
				3*fe.NumRefShapeFunctionsCodim(2)+
					3*fe.NumRefShapeFunctionsCodim(1)+
					fe.NumRefShapeFunctionsCodim(0))
			assert.Equal(t, total, fe.NumEvaluationNodes())
		}
	}
	{ // Vertex functions are barycentric coordinates summing to one
		var (
			fe  = NewHierarchicTria(4, allPos)
			X   = utils.NewMatrix(2, 5, []float64{0, 1, 0, 0.2, 0.1, 0, 0, 1, 0.3, 0.6})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		for q := 0; q < 5; q++ {
			assert.InDelta(t, 1, phi.At(0, q)+phi.At(1, q)+phi.At(2, q), 1.e-14)
		}
		// Kronecker property at the vertices, all other functions vanish
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				want := 0.
				if j == k {
					want = 1.
				}
				assert.InDeltaf(t, want, phi.At(j, k), 1.e-14, "vertex function %d at vertex %d", j, k)
			}
		}
		for i := 3; i < fe.NumRefShapeFunctions(); i++ {
			for k := 0; k < 3; k++ {
				assert.InDeltaf(t, 0, phi.At(i, k), 1.e-14, "function %d at vertex %d", i, k)
			}
		}
	}
	{ // Edge functions restrict to integrated Legendre polynomials
		var (
			fe  = NewHierarchicTria(3, allPos)
			X   = utils.NewMatrix(2, 1, []float64{0.3, 0})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		assert.InDelta(t, -0.21, phi.At(3, 0), 1.e-14)
		assert.InDelta(t, 0.084, phi.At(4, 0), 1.e-14)
	}
	{ // A reversed edge sees the mirrored parameter at reversed positions
		var (
			p      = 4
			posFE  = NewHierarchicTria(p, allPos)
			negFE  = NewHierarchicTria(p, allNeg)
			ts     = []float64{0.2, 0.45, 0.8}
			ptsPos = utils.NewMatrix(2, 3, []float64{ts[0], ts[1], ts[2], 0, 0, 0})
			ptsNeg = utils.NewMatrix(2, 3, []float64{1 - ts[0], 1 - ts[1], 1 - ts[2], 0, 0, 0})
			phiPos = posFE.EvalReferenceShapeFunctions(ptsPos)
			phiNeg = negFE.EvalReferenceShapeFunctions(ptsNeg)
		)
		for i := 0; i < p-1; i++ {
			for q := range ts {
				assert.InDeltaf(t, phiPos.At(3+i, q), phiNeg.At(p+1-i, q), 1.e-14,
					"edge function %d at t=%v", i, ts[q])
			}
		}
	}
	{ // Interior bubbles vanish on the whole boundary
		var (
			fe  = NewHierarchicTria(4, mixed)
			X   = utils.NewMatrix(2, 3, []float64{0.4, 0.6, 0, 0, 0.4, 0.35})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		for i := 12; i < 15; i++ {
			for q := 0; q < 3; q++ {
				assert.InDeltaf(t, 0, phi.At(i, q), 1.e-14, "bubble %d", i)
			}
		}
	}
	{ // Interpolation reproduces polynomials for any edge orientations
		f := func(x, y float64) float64 { return x*x*y - 2*x*y + y }
		for _, relOrient := range [][]mesh.Orientation{allPos, allNeg, mixed} {
			var (
				fe   = NewHierarchicTria(4, relOrient)
				dofs = interpolate(fe, f)
				X    = utils.NewMatrix(2, 3, []float64{0.25, 0.1, 0.55, 0.3, 0.2, 0.4})
				got  = evalCombination(fe, dofs, X)
			)
			assert.InDeltaf(t, f(0.25, 0.3), got[0], 1.e-10, "orientations %v", relOrient)
			assert.InDeltaf(t, f(0.1, 0.2), got[1], 1.e-10, "orientations %v", relOrient)
			assert.InDeltaf(t, f(0.55, 0.4), got[2], 1.e-10, "orientations %v", relOrient)
		}
	}
	{ // Gradients against central finite differences
		pts := [][2]float64{{0.25, 0.3}, {0.4, 0.15}, {0.2, 0.55}}
		checkGradientsFD(t, NewHierarchicTria(3, allPos), pts, 1.e-6)
		checkGradientsFD(t, NewHierarchicTria(3, allNeg), pts, 1.e-6)
		checkGradientsFD(t, NewHierarchicTria(4, mixed), pts, 1.e-6)
	}
	{ // Evaluation node layout
		var (
			fe    = NewHierarchicTria(3, allPos)
			nodes = fe.EvaluationNodes()
			cheb  = chebyshevNodes(2)
		)
		r, c := nodes.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 10, c)
		assert.InDelta(t, cheb[0], nodes.At(0, 3), 1.e-15)
		assert.InDelta(t, 0., nodes.At(1, 3), 1.e-15)
		assert.InDelta(t, 1-cheb[0], nodes.At(0, 5), 1.e-15)
		assert.InDelta(t, cheb[0], nodes.At(1, 5), 1.e-15)
		assert.InDelta(t, 0., nodes.At(0, 7), 1.e-15)
		assert.InDelta(t, 1-cheb[0], nodes.At(1, 7), 1.e-15)
		assert.InDelta(t, cheb[0], nodes.At(0, 9), 1.e-15)
		assert.InDelta(t, cheb[0], nodes.At(1, 9), 1.e-15)
		// All nodes lie in the closed reference triangle
		for k := 0; k < c; k++ {
			assert.GreaterOrEqual(t, nodes.At(0, k), 0.)
			assert.GreaterOrEqual(t, nodes.At(1, k), 0.)
			assert.LessOrEqual(t, nodes.At(0, k)+nodes.At(1, k), 1+1.e-14)
		}
	}
	{ // Errors
		assert.Panics(t, func() { NewHierarchicTria(0, allPos) })
		assert.Panics(t, func() { NewHierarchicTria(2, allPos[:2]) })
		fe := NewHierarchicTria(2, allPos)
		assert.Panics(t, func() { fe.NumRefShapeFunctionsCodim(3) })
		assert.Panics(t, func() {
			fe.EvalReferenceShapeFunctions(utils.NewMatrix(1, 1, []float64{0}))
		})
	}
}

func TestHierarchicQuad(t *testing.T) {
	var (
		allPos = []mesh.Orientation{
			mesh.Positive, mesh.Positive, mesh.Positive, mesh.Positive}
		allNeg = []mesh.Orientation{
			mesh.Negative, mesh.Negative, mesh.Negative, mesh.Negative}
		mixed = []mesh.Orientation{
			mesh.Negative, mesh.Negative, mesh.Positive, mesh.Negative}
	)
	{ // Shape function counts split over vertices, edges and interior
		for p := 1; p <= 4; p++ {
			fe := NewHierarchicQuad(p, allPos)
			assert.Equal(t, base.Quad, fe.RefEl())
			total := (p + 1) * (p + 1)
			assert.Equal(t, total, fe.NumRefShapeFunctions())
			assert.Equal(t, total,
				4*fe.NumRefShapeFunctionsCodim(2)+
					4*fe.NumRefShapeFunctionsCodim(1)+
					fe.NumRefShapeFunctionsCodim(0))
			assert.Equal(t, total, fe.NumEvaluationNodes())
		}
	}
	{ // Vertex functions are the bilinear hat functions summing to one
		var (
			fe  = NewHierarchicQuad(3, allPos)
			X   = utils.NewMatrix(2, 4, []float64{0.3, 0.5, 0, 0.5, 0.7, 0.2, 0, 0.5})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		for q := 0; q < 4; q++ {
			sum := phi.At(0, q) + phi.At(1, q) + phi.At(2, q) + phi.At(3, q)
			assert.InDelta(t, 1, sum, 1.e-14)
		}
		assert.InDelta(t, 0.3*0.7, phi.At(2, 0), 1.e-14)
		assert.InDelta(t, 0.7*0.3, phi.At(0, 0), 1.e-14)
		// Each corner carries a quarter at the centre of the square
		for i := 0; i < 4; i++ {
			assert.InDeltaf(t, 0.25, phi.At(i, 3), 1.e-14, "corner %d", i)
		}
	}
	{ // Only the right edge block and its endpoints are alive on x=1
		var (
			p   = 3
			fe  = NewHierarchicQuad(p, allPos)
			X   = utils.NewMatrix(2, 1, []float64{1, 0.3})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		assert.InDelta(t, -0.21, phi.At(3+p, 0), 1.e-14)
		assert.InDelta(t, 0.084, phi.At(4+p, 0), 1.e-14)
		alive := map[int]bool{1: true, 2: true, 3 + p: true, 4 + p: true}
		for i := 0; i < fe.NumRefShapeFunctions(); i++ {
			if alive[i] {
				continue
			}
			assert.InDeltaf(t, 0, phi.At(i, 0), 1.e-14, "function %d", i)
		}
	}
	{ // A reversed edge sees the mirrored parameter at reversed positions
		var (
			p      = 4
			posFE  = NewHierarchicQuad(p, allPos)
			negFE  = NewHierarchicQuad(p, mixed)
			ts     = []float64{0.2, 0.45, 0.8}
			ptsPos = utils.NewMatrix(2, 3, []float64{1, 1, 1, ts[0], ts[1], ts[2]})
			ptsNeg = utils.NewMatrix(2, 3, []float64{1, 1, 1, 1 - ts[0], 1 - ts[1], 1 - ts[2]})
			phiPos = posFE.EvalReferenceShapeFunctions(ptsPos)
			phiNeg = negFE.EvalReferenceShapeFunctions(ptsNeg)
		)
		for i := 0; i < p-1; i++ {
			for q := range ts {
				assert.InDeltaf(t, phiPos.At(3+p+i, q), phiNeg.At(1+2*p-i, q), 1.e-14,
					"edge function %d at t=%v", i, ts[q])
			}
		}
	}
	{ // Interior functions are tensor products of segment bubbles
		var (
			fe  = NewHierarchicQuad(2, allPos)
			X   = utils.NewMatrix(2, 1, []float64{0.3, 0.7})
			phi = fe.EvalReferenceShapeFunctions(X)
		)
		assert.InDelta(t, (-0.21)*(-0.21), phi.At(8, 0), 1.e-14)
	}
	{ // Interpolation reproduces tensor polynomials for any orientations
		f := func(x, y float64) float64 { return x*x*x*y*y + x*y - 1 }
		for _, relOrient := range [][]mesh.Orientation{allPos, allNeg, mixed} {
			var (
				fe   = NewHierarchicQuad(3, relOrient)
				dofs = interpolate(fe, f)
				X    = utils.NewMatrix(2, 3, []float64{0.3, 0.85, 0.5, 0.6, 0.25, 0.5})
				got  = evalCombination(fe, dofs, X)
			)
			assert.InDeltaf(t, f(0.3, 0.6), got[0], 1.e-10, "orientations %v", relOrient)
			assert.InDeltaf(t, f(0.85, 0.25), got[1], 1.e-10, "orientations %v", relOrient)
			assert.InDeltaf(t, f(0.5, 0.5), got[2], 1.e-10, "orientations %v", relOrient)
		}
	}
	{ // Gradients against central finite differences
		pts := [][2]float64{{0.3, 0.7}, {0.6, 0.4}}
		checkGradientsFD(t, NewHierarchicQuad(3, allPos), pts, 1.e-6)
		checkGradientsFD(t, NewHierarchicQuad(3, allNeg), pts, 1.e-6)
		checkGradientsFD(t, NewHierarchicQuad(4, mixed), pts, 1.e-6)
	}
	{ // Evaluation node layout
		var (
			fe    = NewHierarchicQuad(2, allPos)
			nodes = fe.EvaluationNodes()
		)
		r, c := nodes.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 9, c)
		assert.InDelta(t, 0.5, nodes.At(0, 4), 1.e-15)
		assert.InDelta(t, 0., nodes.At(1, 4), 1.e-15)
		assert.InDelta(t, 1., nodes.At(0, 5), 1.e-15)
		assert.InDelta(t, 0.5, nodes.At(1, 5), 1.e-15)
		assert.InDelta(t, 0.5, nodes.At(0, 6), 1.e-15)
		assert.InDelta(t, 1., nodes.At(1, 6), 1.e-15)
		assert.InDelta(t, 0., nodes.At(0, 7), 1.e-15)
		assert.InDelta(t, 0.5, nodes.At(1, 7), 1.e-15)
		assert.InDelta(t, 0.5, nodes.At(0, 8), 1.e-15)
		assert.InDelta(t, 0.5, nodes.At(1, 8), 1.e-15)
	}
	{ // Errors
		assert.Panics(t, func() { NewHierarchicQuad(0, allPos) })
		assert.Panics(t, func() { NewHierarchicQuad(2, allPos[:3]) })
		fe := NewHierarchicQuad(2, allPos)
		assert.Panics(t, func() { fe.NumRefShapeFunctionsCodim(3) })
		assert.Panics(t, func() {
			fe.GradientsReferenceShapeFunctions(utils.NewMatrix(1, 1, []float64{0}))
		})
	}
}

func TestHierarchicPoint(t *testing.T) {
	fe := NewHierarchicPoint(3)
	assert.Equal(t, base.Point, fe.RefEl())
	assert.Equal(t, 3, fe.Degree())
	assert.Equal(t, 1, fe.NumRefShapeFunctions())
	assert.Equal(t, 1, fe.NumRefShapeFunctionsCodim(0))
	assert.Equal(t, 1, fe.NumEvaluationNodes())
	{ // The single shape function is the constant one
		phi := fe.EvalReferenceShapeFunctions(fe.EvaluationNodes())
		r, c := phi.Dims()
		assert.Equal(t, 1, r)
		assert.Equal(t, 1, c)
		assert.Equal(t, 1., phi.At(0, 0))
		phi = fe.EvalReferenceShapeFunctions(utils.NewMatrix(2, 3, make([]float64, 6)))
		_, c = phi.Dims()
		assert.Equal(t, 3, c)
		assert.Equal(t, 1., phi.At(0, 2))
	}
	{ // Dof conversion is the identity
		dofs := fe.NodalValuesToDofs(utils.NewVector(1, []float64{2.5}))
		assert.Equal(t, 2.5, dofs.AtVec(0))
	}
	{ // Errors
		assert.Panics(t, func() { NewHierarchicPoint(0) })
		assert.Panics(t, func() { fe.NumRefShapeFunctionsCodim(1) })
		assert.Panics(t, func() { fe.NumRefShapeFunctionsSub(0, 1) })
		assert.Panics(t, func() {
			fe.GradientsReferenceShapeFunctions(utils.Matrix{})
		})
		assert.Panics(t, func() {
			fe.NodalValuesToDofs(utils.NewVector(2, []float64{1, 2}))
		})
	}
}

// TestHierarchicNodalRoundTrip feeds generic nodal values through the
// rank revealing solve and evaluates the resulting expansion back at
// the evaluation nodes for every family and degree up to ten.
func TestHierarchicNodalRoundTrip(t *testing.T) {
	var (
		triaOrient = []mesh.Orientation{
			mesh.Negative, mesh.Positive, mesh.Negative}
		quadOrient = []mesh.Orientation{
			mesh.Negative, mesh.Negative, mesh.Positive, mesh.Negative}
	)
	{ // At degree one the triangle's node matrix is the identity
		fe := NewHierarchicTria(1, triaOrient)
		phi := fe.EvalReferenceShapeFunctions(fe.EvaluationNodes())
		for i := 0; i < 3; i++ {
			for q := 0; q < 3; q++ {
				want := 0.
				if i == q {
					want = 1.
				}
				assert.InDeltaf(t, want, phi.At(i, q), 1.e-14,
					"function %d at vertex %d", i, q)
			}
		}
	}
	{ // Round trip of generic nodal values
		for p := 1; p <= 10; p++ {
			for _, fe := range []ScalarReferenceFiniteElement{
				NewHierarchicSegment(p),
				NewHierarchicTria(p, triaOrient),
				NewHierarchicQuad(p, quadOrient),
			} {
				var (
					n    = fe.NumEvaluationNodes()
					vals = make([]float64, n)
				)
				for k := range vals {
					vals[k] = math.Sin(float64(2*k + 1))
				}
				var (
					dofs = fe.NodalValuesToDofs(utils.NewVector(n, vals))
					got  = evalCombination(fe, dofs, fe.EvaluationNodes())
				)
				for k := range vals {
					assert.InDeltaf(t, vals[k], got[k], 1.e-10,
						"%v p=%d node %d", fe.RefEl(), p, k)
				}
			}
		}
	}
}

// TestHierarchicVertexPartitionOfUnity sweeps random interior points:
// the vertex functions carry the partition of unity of the degree one
// subspace at every degree.
func TestHierarchicVertexPartitionOfUnity(t *testing.T) {
	var (
		rnd        = rand.New(rand.NewSource(7))
		triaOrient = []mesh.Orientation{
			mesh.Positive, mesh.Positive, mesh.Positive}
		quadOrient = []mesh.Orientation{
			mesh.Positive, mesh.Positive, mesh.Positive, mesh.Positive}
		nPts = 100
	)
	for p := 1; p <= 8; p++ {
		{ // Triangles
			data := make([]float64, 2*nPts)
			for q := 0; q < nPts; q++ {
				x, y := rnd.Float64(), rnd.Float64()
				if x+y > 1 {
					x, y = 1-x, 1-y
				}
				data[q], data[nPts+q] = x, y
			}
			phi := NewHierarchicTria(p, triaOrient).
				EvalReferenceShapeFunctions(utils.NewMatrix(2, nPts, data))
			for q := 0; q < nPts; q++ {
				sum := phi.At(0, q) + phi.At(1, q) + phi.At(2, q)
				assert.InDeltaf(t, 1, sum, 1.e-10, "tria p=%d point %d", p, q)
			}
		}
		{ // Quadrilaterals
			data := make([]float64, 2*nPts)
			for q := 0; q < nPts; q++ {
				data[q], data[nPts+q] = rnd.Float64(), rnd.Float64()
			}
			phi := NewHierarchicQuad(p, quadOrient).
				EvalReferenceShapeFunctions(utils.NewMatrix(2, nPts, data))
			for q := 0; q < nPts; q++ {
				sum := phi.At(0, q) + phi.At(1, q) + phi.At(2, q) + phi.At(3, q)
				assert.InDeltaf(t, 1, sum, 1.e-10, "quad p=%d point %d", p, q)
			}
		}
	}
}
