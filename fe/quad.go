package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
)

// HierarchicQuad is the hierarchic finite element of degree p on the
// reference square [0, 1]^2, built as the tensor product of two
// hierarchic segments. Edge functions of a negatively oriented edge are
// evaluated in the mirrored coordinate and stored at reversed positions
// inside the edge block, matching the convention of HierarchicTria so
// that triangles and quadrilaterals can share edges.
type HierarchicQuad struct {
	degree    int
	relOrient []mesh.Orientation
	fe1d      *HierarchicSegment
	evalNodes utils.Matrix
}

func NewHierarchicQuad(degree int, relOrient []mesh.Orientation) *HierarchicQuad {
	if degree < 1 {
		panic(fmt.Errorf("degree %d must be at least 1", degree))
	}
	if len(relOrient) != 4 {
		panic(fmt.Errorf("expected 4 edge orientations, got %d", len(relOrient)))
	}
	fe := &HierarchicQuad{
		degree:    degree,
		relOrient: relOrient,
		fe1d:      NewHierarchicSegment(degree),
	}
	fe.evalNodes = fe.computeEvaluationNodes()
	fe.evalNodes.SetReadOnly("HierarchicQuad.evalNodes")
	return fe
}

func (fe *HierarchicQuad) RefEl() base.RefEl { return base.Quad }

func (fe *HierarchicQuad) Degree() int { return fe.degree }

func (fe *HierarchicQuad) NumRefShapeFunctions() int {
	return (fe.degree + 1) * (fe.degree + 1)
}

// NumRefShapeFunctionsCodim gives one shape function for each vertex,
// p-1 shape functions on each edge and (p-1)^2 in the interior.
func (fe *HierarchicQuad) NumRefShapeFunctionsCodim(codim int) int {
	switch codim {
	case 0:
		return (fe.degree - 1) * (fe.degree - 1)
	case 1:
		return fe.degree - 1
	case 2:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for a quadrilateral", codim))
}

func (fe *HierarchicQuad) NumRefShapeFunctionsSub(codim, subIdx int) int {
	return fe.NumRefShapeFunctionsCodim(codim)
}

// coordRow extracts coordinate row i of X as a 1 x Q matrix, mirrored
// to 1-x when requested.
func coordRow(X utils.Matrix, i int, mirror bool) (R utils.Matrix) {
	_, nq := X.Dims()
	R = utils.NewMatrix(1, nq)
	for q := 0; q < nq; q++ {
		if mirror {
			R.Set(0, q, 1-X.At(i, q))
		} else {
			R.Set(0, q, X.At(i, q))
		}
	}
	return
}

func (fe *HierarchicQuad) EvalReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 2 {
		panic(fmt.Errorf("expected a 2 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	var (
		p = fe.degree
		R = utils.NewMatrix(fe.NumRefShapeFunctions(), nq)
		// 1D shape functions in both coordinates and their mirrors
		sf1dX  = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 0, false))
		sf1dY  = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 1, false))
		sf1dfX = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 0, true))
		sf1dfY = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 1, true))
	)
	for q := 0; q < nq; q++ {
		// Shape functions associated with the vertices
		R.Set(0, q, sf1dX.At(0, q)*sf1dY.At(0, q))
		R.Set(1, q, sf1dX.At(1, q)*sf1dY.At(0, q))
		R.Set(2, q, sf1dX.At(1, q)*sf1dY.At(1, q))
		R.Set(3, q, sf1dX.At(0, q)*sf1dY.At(1, q))
		// Shape functions associated with the first edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[0] == mesh.Positive {
				R.Set(4+i, q, sf1dX.At(2+i, q)*sf1dY.At(0, q))
			} else {
				R.Set(2+p-i, q, sf1dfX.At(2+i, q)*sf1dY.At(0, q))
			}
		}
		// Shape functions associated with the second edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[1] == mesh.Positive {
				R.Set(3+p+i, q, sf1dX.At(1, q)*sf1dY.At(2+i, q))
			} else {
				R.Set(1+2*p-i, q, sf1dX.At(1, q)*sf1dfY.At(2+i, q))
			}
		}
		// Shape functions associated with the third edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[2] == mesh.Positive {
				R.Set(2+2*p+i, q, sf1dfX.At(2+i, q)*sf1dY.At(1, q))
			} else {
				R.Set(3*p-i, q, sf1dX.At(2+i, q)*sf1dY.At(1, q))
			}
		}
		// Shape functions associated with the fourth edge
		for i := 0; i < p-1; i++ {
			if fe.relOrient[3] == mesh.Positive {
				R.Set(1+3*p+i, q, sf1dX.At(0, q)*sf1dfY.At(2+i, q))
			} else {
				R.Set(4*p-1-i, q, sf1dX.At(0, q)*sf1dY.At(2+i, q))
			}
		}
		// Shape functions associated with the interior of the quad
		for i := 0; i < p-1; i++ {
			for j := 0; j < p-1; j++ {
				R.Set(4*p+(p-1)*i+j, q, sf1dX.At(j+2, q)*sf1dY.At(i+2, q))
			}
		}
	}
	return R
}

func (fe *HierarchicQuad) GradientsReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 2 {
		panic(fmt.Errorf("expected a 2 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	var (
		p = fe.degree
		R = utils.NewMatrix(fe.NumRefShapeFunctions(), 2*nq)
		// 1D shape functions and derivatives in both coordinates and
		// their mirrors. The inner minus of the mirrored coordinate is
		// applied where the mirrored factor is differentiated below.
		sf1dX   = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 0, false))
		sf1dY   = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 1, false))
		sf1dDx  = fe.fe1d.GradientsReferenceShapeFunctions(coordRow(X, 0, false))
		sf1dDy  = fe.fe1d.GradientsReferenceShapeFunctions(coordRow(X, 1, false))
		sf1dfX  = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 0, true))
		sf1dfY  = fe.fe1d.EvalReferenceShapeFunctions(coordRow(X, 1, true))
		sf1dfDx = fe.fe1d.GradientsReferenceShapeFunctions(coordRow(X, 0, true))
		sf1dfDy = fe.fe1d.GradientsReferenceShapeFunctions(coordRow(X, 1, true))
	)
	for q := 0; q < nq; q++ {
		// Gradients of the vertex shape functions
		R.Set(0, 2*q+0, sf1dDx.At(0, q)*sf1dY.At(0, q))
		R.Set(0, 2*q+1, sf1dX.At(0, q)*sf1dDy.At(0, q))
		R.Set(1, 2*q+0, sf1dDx.At(1, q)*sf1dY.At(0, q))
		R.Set(1, 2*q+1, sf1dX.At(1, q)*sf1dDy.At(0, q))
		R.Set(2, 2*q+0, sf1dDx.At(1, q)*sf1dY.At(1, q))
		R.Set(2, 2*q+1, sf1dX.At(1, q)*sf1dDy.At(1, q))
		R.Set(3, 2*q+0, sf1dDx.At(0, q)*sf1dY.At(1, q))
		R.Set(3, 2*q+1, sf1dX.At(0, q)*sf1dDy.At(1, q))
		// Gradients of the first edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[0] == mesh.Positive {
				R.Set(4+j, 2*q+0, sf1dDx.At(2+j, q)*sf1dY.At(0, q))
				R.Set(4+j, 2*q+1, sf1dX.At(2+j, q)*sf1dDy.At(0, q))
			} else {
				R.Set(2+p-j, 2*q+0, -sf1dfDx.At(2+j, q)*sf1dY.At(0, q))
				R.Set(2+p-j, 2*q+1, sf1dfX.At(2+j, q)*sf1dDy.At(0, q))
			}
		}
		// Gradients of the second edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[1] == mesh.Positive {
				R.Set(3+p+j, 2*q+0, sf1dDx.At(1, q)*sf1dY.At(2+j, q))
				R.Set(3+p+j, 2*q+1, sf1dX.At(1, q)*sf1dDy.At(2+j, q))
			} else {
				R.Set(1+2*p-j, 2*q+0, sf1dDx.At(1, q)*sf1dfY.At(2+j, q))
				R.Set(1+2*p-j, 2*q+1, sf1dX.At(1, q)*-sf1dfDy.At(2+j, q))
			}
		}
		// Gradients of the third edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[2] == mesh.Positive {
				R.Set(2+2*p+j, 2*q+0, -sf1dfDx.At(2+j, q)*sf1dY.At(1, q))
				R.Set(2+2*p+j, 2*q+1, sf1dfX.At(2+j, q)*sf1dDy.At(1, q))
			} else {
				R.Set(3*p-j, 2*q+0, sf1dDx.At(2+j, q)*sf1dY.At(1, q))
				R.Set(3*p-j, 2*q+1, sf1dX.At(2+j, q)*sf1dDy.At(1, q))
			}
		}
		// Gradients of the fourth edge shape functions
		for j := 0; j < p-1; j++ {
			if fe.relOrient[3] == mesh.Positive {
				R.Set(1+3*p+j, 2*q+0, sf1dDx.At(0, q)*sf1dfY.At(2+j, q))
				R.Set(1+3*p+j, 2*q+1, sf1dX.At(0, q)*-sf1dfDy.At(2+j, q))
			} else {
				R.Set(4*p-1-j, 2*q+0, sf1dDx.At(0, q)*sf1dY.At(2+j, q))
				R.Set(4*p-1-j, 2*q+1, sf1dX.At(0, q)*sf1dDy.At(2+j, q))
			}
		}
		// Gradients of the interior shape functions
		for j := 0; j < p-1; j++ {
			for k := 0; k < p-1; k++ {
				R.Set(4*p+(p-1)*j+k, 2*q+0, sf1dDx.At(k+2, q)*sf1dY.At(j+2, q))
				R.Set(4*p+(p-1)*j+k, 2*q+1, sf1dX.At(k+2, q)*sf1dDy.At(j+2, q))
			}
		}
	}
	return R
}

// EvaluationNodes returns the vertices, the Chebyshev nodes of degree
// p-1 mapped onto each edge in traversal order and a tensor grid of
// Chebyshev nodes in the interior.
func (fe *HierarchicQuad) EvaluationNodes() utils.Matrix {
	return fe.evalNodes
}

func (fe *HierarchicQuad) NumEvaluationNodes() int {
	return fe.NumRefShapeFunctions()
}

func (fe *HierarchicQuad) NodalValuesToDofs(nodevals utils.Vector) utils.Vector {
	return nodalValuesToDofs(fe, nodevals)
}

func (fe *HierarchicQuad) computeEvaluationNodes() (nodes utils.Matrix) {
	var (
		p    = fe.degree
		cheb = chebyshevNodes(p - 1)
	)
	nodes = utils.NewMatrix(2, (p+1)*(p+1))
	// Vertices
	nodes.Set(0, 0, 0)
	nodes.Set(1, 0, 0)
	nodes.Set(0, 1, 1)
	nodes.Set(1, 1, 0)
	nodes.Set(0, 2, 1)
	nodes.Set(1, 2, 1)
	nodes.Set(0, 3, 0)
	nodes.Set(1, 3, 1)
	// Edges
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 4+i, cheb[i])
		nodes.Set(1, 4+i, 0)
	}
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 3+p+i, 1)
		nodes.Set(1, 3+p+i, cheb[i])
	}
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 2+2*p+i, 1-cheb[i])
		nodes.Set(1, 2+2*p+i, 1)
	}
	for i := 0; i < p-1; i++ {
		nodes.Set(0, 1+3*p+i, 0)
		nodes.Set(1, 1+3*p+i, 1-cheb[i])
	}
	// Interior
	for i := 0; i < p-1; i++ {
		for j := 0; j < p-1; j++ {
			nodes.Set(0, 4*p+(p-1)*i+j, cheb[j])
			nodes.Set(1, 4*p+(p-1)*i+j, cheb[i])
		}
	}
	return
}
