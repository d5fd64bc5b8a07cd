package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
)

// HierarchicTria is the hierarchic finite element of degree p on the
// reference triangle with vertices (0,0), (1,0) and (0,1). The basis
// consists of the three barycentric coordinate functions, p-1 edge
// functions per edge built from integrated Legendre polynomials in a
// blended edge parameter, and (p-2)(p-1)/2 interior bubbles built from
// integrated Jacobi polynomials.
//
// Edge functions of a negatively oriented edge are evaluated in the
// reversed edge parameter and stored at reversed positions inside the
// edge block, so that two cells sharing an edge agree on the trace of
// every edge function regardless of how each cell traverses the edge.
type HierarchicTria struct {
	degree    int
	relOrient []mesh.Orientation
	evalNodes utils.Matrix
}

func NewHierarchicTria(degree int, relOrient []mesh.Orientation) *HierarchicTria {
	if degree < 1 {
		panic(fmt.Errorf("degree %d must be at least 1", degree))
	}
	if len(relOrient) != 3 {
		panic(fmt.Errorf("expected 3 edge orientations, got %d", len(relOrient)))
	}
	fe := &HierarchicTria{degree: degree, relOrient: relOrient}
	fe.evalNodes = fe.computeEvaluationNodes()
	fe.evalNodes.SetReadOnly("HierarchicTria.evalNodes")
	return fe
}

func (fe *HierarchicTria) RefEl() base.RefEl { return base.Tria }

func (fe *HierarchicTria) Degree() int { return fe.degree }

func (fe *HierarchicTria) NumRefShapeFunctions() int {
	return (fe.degree + 1) * (fe.degree + 2) / 2
}

// NumRefShapeFunctionsCodim gives one shape function for each vertex,
// p-1 shape functions on each edge and (p-2)(p-1)/2 in the interior.
func (fe *HierarchicTria) NumRefShapeFunctionsCodim(codim int) int {
	switch codim {
	case 0:
		if fe.degree <= 2 {
			return 0
		}
		return (fe.degree - 2) * (fe.degree - 1) / 2
	case 1:
		return fe.degree - 1
	case 2:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for a triangle", codim))
}

func (fe *HierarchicTria) NumRefShapeFunctionsSub(codim, subIdx int) int {
	return fe.NumRefShapeFunctionsCodim(codim)
}

// frac is la/sum with the convention 0/0 = 0 used for the blended edge
// parameters, which are evaluated at the opposite vertex where the
// denominator vanishes.
func frac(la, sum float64) float64 {
	if sum == 0 {
		return 0
	}
	return la / sum
}

// fracD is the quotient rule derivative of frac, with the same
// convention at a vanishing denominator.
func fracD(la, laD, sum, sumD float64) float64 {
	if sum == 0 {
		return 0
	}
	return (laD*sum - la*sumD) / (sum * sum)
}

func (fe *HierarchicTria) EvalReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 2 {
		panic(fmt.Errorf("expected a 2 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	var (
		p = fe.degree
		R = utils.NewMatrix(fe.NumRefShapeFunctions(), nq)
	)
	for q := 0; q < nq; q++ {
		var (
			l1 = 1 - X.At(0, q) - X.At(1, q)
			l2 = X.At(0, q)
			l3 = X.At(1, q)
			// Blended edge parameters clamped to 0 at the opposite vertex
			l121n = frac(l1, l1+l2)
			l122n = frac(l2, l1+l2)
			l232n = frac(l2, l2+l3)
			l233n = frac(l3, l2+l3)
			l313n = frac(l3, l3+l1)
			l311n = frac(l1, l3+l1)
		)
		// Shape functions associated with the vertices
		R.Set(0, q, l1)
		R.Set(1, q, l2)
		R.Set(2, q, l3)
		// Shape functions associated with the first edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[0] == mesh.Positive {
				R.Set(3+i, q, utils.POW(l1+l2, i+2)*ILegendre(i+2, l122n))
			} else {
				R.Set(p+1-i, q, utils.POW(l1+l2, i+2)*ILegendre(i+2, l121n))
			}
		}
		// Shape functions associated with the second edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[1] == mesh.Positive {
				R.Set(p+2+i, q, utils.POW(l2+l3, i+2)*ILegendre(i+2, l233n))
			} else {
				R.Set(2*p-i, q, utils.POW(l2+l3, i+2)*ILegendre(i+2, l232n))
			}
		}
		// Shape functions associated with the third edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[2] == mesh.Positive {
				R.Set(2*p+1+i, q, utils.POW(l3+l1, i+2)*ILegendre(i+2, l311n))
			} else {
				R.Set(3*p-1-i, q, utils.POW(l3+l1, i+2)*ILegendre(i+2, l313n))
			}
		}
		// Shape functions associated with the interior of the triangle,
		// blending the second edge functions with integrated Jacobi
		// polynomials in l1
		if p > 2 {
			idx := 3 * p
			for i := 0; i < p-2; i++ {
				var edge float64
				if fe.relOrient[1] == mesh.Positive {
					edge = R.At(p+2+i, q)
				} else {
					edge = R.At(2*p-i, q)
				}
				for j := 0; j < p-i-2; j++ {
					R.Set(idx, q, edge*IJacobi(j+1, float64(2*i+4), l1))
					idx++
				}
			}
		}
	}
	return R
}

func (fe *HierarchicTria) GradientsReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 2 {
		panic(fmt.Errorf("expected a 2 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	// Gradients of the barycentric coordinate functions
	const (
		l1dx, l1dy = -1.0, -1.0
		l2dx, l2dy = 1.0, 0.0
		l3dx, l3dy = 0.0, 1.0
	)
	var (
		p = fe.degree
		R = utils.NewMatrix(fe.NumRefShapeFunctions(), 2*nq)
	)
	for q := 0; q < nq; q++ {
		var (
			l1 = 1 - X.At(0, q) - X.At(1, q)
			l2 = X.At(0, q)
			l3 = X.At(1, q)

			l1p2   = l1 + l2
			l1p2dx = l1dx + l2dx
			l1p2dy = l1dy + l2dy
			l121n  = frac(l1, l1p2)
			l122n  = frac(l2, l1p2)

			l2p3   = l2 + l3
			l2p3dx = l2dx + l3dx
			l2p3dy = l2dy + l3dy
			l232n  = frac(l2, l2p3)
			l233n  = frac(l3, l2p3)

			l3p1   = l3 + l1
			l3p1dx = l3dx + l1dx
			l3p1dy = l3dy + l1dy
			l313n  = frac(l3, l3p1)
			l311n  = frac(l1, l3p1)
		)
		// Gradients of the vertex shape functions
		R.Set(0, 2*q+0, l1dx)
		R.Set(0, 2*q+1, l1dy)
		R.Set(1, 2*q+0, l2dx)
		R.Set(1, 2*q+1, l2dy)
		R.Set(2, 2*q+0, l3dx)
		R.Set(2, 2*q+1, l3dy)
		// Gradients of the first edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[0] == mesh.Positive {
				var (
					udx  = fracD(l2, l2dx, l1p2, l1p2dx)
					udy  = fracD(l2, l2dy, l1p2, l1p2dy)
					inte = ILegendre(j+2, l122n)
					eval = Legendre(j+1, l122n)
				)
				R.Set(3+j, 2*q+0,
					l1p2dx*float64(j+2)*utils.POW(l1p2, j+1)*inte+
						utils.POW(l1p2, j+2)*udx*eval)
				R.Set(3+j, 2*q+1,
					l1p2dy*float64(j+2)*utils.POW(l1p2, j+1)*inte+
						utils.POW(l1p2, j+2)*udy*eval)
			} else {
				var (
					udx  = fracD(l1, l1dx, l1p2, l1p2dx)
					udy  = fracD(l1, l1dy, l1p2, l1p2dy)
					inte = ILegendre(j+2, l121n)
					eval = Legendre(j+1, l121n)
				)
				R.Set(p+1-j, 2*q+0,
					l1p2dx*float64(j+2)*utils.POW(l1p2, j+1)*inte+
						utils.POW(l1p2, j+2)*udx*eval)
				R.Set(p+1-j, 2*q+1,
					l1p2dy*float64(j+2)*utils.POW(l1p2, j+1)*inte+
						utils.POW(l1p2, j+2)*udy*eval)
			}
		}
		// Gradients of the second edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[1] == mesh.Positive {
				var (
					udx  = fracD(l3, l3dx, l2p3, l2p3dx)
					udy  = fracD(l3, l3dy, l2p3, l2p3dy)
					inte = ILegendre(j+2, l233n)
					eval = Legendre(j+1, l233n)
				)
				R.Set(p+2+j, 2*q+0,
					l2p3dx*float64(j+2)*utils.POW(l2p3, j+1)*inte+
						utils.POW(l2p3, j+2)*udx*eval)
				R.Set(p+2+j, 2*q+1,
					l2p3dy*float64(j+2)*utils.POW(l2p3, j+1)*inte+
						utils.POW(l2p3, j+2)*udy*eval)
			} else {
				var (
					udx  = fracD(l2, l2dx, l2p3, l2p3dx)
					udy  = fracD(l2, l2dy, l2p3, l2p3dy)
					inte = ILegendre(j+2, l232n)
					eval = Legendre(j+1, l232n)
				)
				R.Set(2*p-j, 2*q+0,
					l2p3dx*float64(j+2)*utils.POW(l2p3, j+1)*inte+
						utils.POW(l2p3, j+2)*udx*eval)
				R.Set(2*p-j, 2*q+1,
					l2p3dy*float64(j+2)*utils.POW(l2p3, j+1)*inte+
						utils.POW(l2p3, j+2)*udy*eval)
			}
		}
		// Gradients of the third edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[2] == mesh.Positive {
				var (
					udx  = fracD(l1, l1dx, l3p1, l3p1dx)
					udy  = fracD(l1, l1dy, l3p1, l3p1dy)
					inte = ILegendre(j+2, l311n)
					eval = Legendre(j+1, l311n)
				)
				R.Set(2*p+1+j, 2*q+0,
					l3p1dx*float64(j+2)*utils.POW(l3p1, j+1)*inte+
						utils.POW(l3p1, j+2)*udx*eval)
				R.Set(2*p+1+j, 2*q+1,
					l3p1dy*float64(j+2)*utils.POW(l3p1, j+1)*inte+
						utils.POW(l3p1, j+2)*udy*eval)
			} else {
				var (
					udx  = fracD(l3, l3dx, l3p1, l3p1dx)
					udy  = fracD(l3, l3dy, l3p1, l3p1dy)
					inte = ILegendre(j+2, l313n)
					eval = Legendre(j+1, l313n)
				)
				R.Set(3*p-1-j, 2*q+0,
					l3p1dx*float64(j+2)*utils.POW(l3p1, j+1)*inte+
						utils.POW(l3p1, j+2)*udx*eval)
				R.Set(3*p-1-j, 2*q+1,
					l3p1dy*float64(j+2)*utils.POW(l3p1, j+1)*inte+
						utils.POW(l3p1, j+2)*udy*eval)
			}
		}
		// Gradients of the interior shape functions by the product rule,
		// reusing the second edge gradients computed above
		if p > 2 {
			idx := 3 * p
			for j := 0; j < p-2; j++ {
				var edgeEval, edgeDx, edgeDy float64
				if fe.relOrient[1] == mesh.Positive {
					edgeEval = utils.POW(l2p3, j+2) * ILegendre(j+2, l233n)
					edgeDx = R.At(p+2+j, 2*q+0)
					edgeDy = R.At(p+2+j, 2*q+1)
				} else {
					edgeEval = utils.POW(l2p3, j+2) * ILegendre(j+2, l232n)
					edgeDx = R.At(2*p-j, 2*q+0)
					edgeDy = R.At(2*p-j, 2*q+1)
				}
				for k := 0; k < p-j-2; k++ {
					var (
						jackInte = IJacobi(k+1, float64(2*j+4), l1)
						jackEval = Jacobi(k, float64(2*j+4), l1)
					)
					R.Set(idx, 2*q+0, jackInte*edgeDx+edgeEval*jackEval*l1dx)
					R.Set(idx, 2*q+1, jackInte*edgeDy+edgeEval*jackEval*l1dy)
					idx++
				}
			}
		}
	}
	return R
}

// EvaluationNodes returns the vertices, the Chebyshev nodes of degree
// p-1 mapped onto each edge in traversal order and a triangular grid of
// Chebyshev nodes in the interior.
func (fe *HierarchicTria) EvaluationNodes() utils.Matrix {
	return fe.evalNodes
}

func (fe *HierarchicTria) NumEvaluationNodes() int {
	return fe.NumRefShapeFunctions()
}

func (fe *HierarchicTria) NodalValuesToDofs(nodevals utils.Vector) utils.Vector {
	return nodalValuesToDofs(fe, nodevals)
}

func (fe *HierarchicTria) computeEvaluationNodes() (nodes utils.Matrix) {
	var (
		p    = fe.degree
		cheb = chebyshevNodes(p - 1)
	)
	nodes = utils.NewMatrix(2, (p+1)*(p+2)/2)
	// Vertices
	nodes.Set(0, 0, 0)
	nodes.Set(1, 0, 0)
	nodes.Set(0, 1, 1)
	nodes.Set(1, 1, 0)
	nodes.Set(0, 2, 0)
	nodes.Set(1, 2, 1)
	// Edges
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 3+i, cheb[i])
		nodes.Set(1, 3+i, 0)
	}
	for i := 0; i < p-1; i++ {
		nodes.Set(0, p+2+i, 1-cheb[i])
		nodes.Set(1, p+2+i, cheb[i])
	}
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 2*p+1+i, 0)
		nodes.Set(1, 2*p+1+i, 1-cheb[i])
	}
	// Interior
	if p > 2 {
		idx := 3 * p
		for i := 0; i < p-2; i++ {
			for j := 0; j < p-2-i; j++ {
				nodes.Set(0, idx, cheb[j])
				nodes.Set(1, idx, cheb[i])
				idx++
			}
		}
	}
	return
}
