package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
)

// HierarchicSegment is the hierarchic finite element of degree p on the
// reference segment [0, 1]. Its p+1 shape functions are the two linear
// vertex functions 1-x and x and the p-1 integrated Legendre
// polynomials of degrees 2 through p, which vanish at both endpoints.
type HierarchicSegment struct {
	degree    int
	evalNodes utils.Matrix
}

func NewHierarchicSegment(degree int) *HierarchicSegment {
	if degree < 1 {
		panic(fmt.Errorf("degree %d must be at least 1", degree))
	}
	fe := &HierarchicSegment{degree: degree}
	fe.evalNodes = fe.computeEvaluationNodes()
	fe.evalNodes.SetReadOnly("HierarchicSegment.evalNodes")
	return fe
}

func (fe *HierarchicSegment) RefEl() base.RefEl { return base.Segment }

func (fe *HierarchicSegment) Degree() int { return fe.degree }

func (fe *HierarchicSegment) NumRefShapeFunctions() int { return fe.degree + 1 }

// NumRefShapeFunctionsCodim gives one shape function for each vertex
// and p-1 shape functions for the interior of the segment.
func (fe *HierarchicSegment) NumRefShapeFunctionsCodim(codim int) int {
	switch codim {
	case 0:
		return fe.degree - 1
	case 1:
		return 1
	}
	panic(fmt.Errorf("codim %d out of range for a segment", codim))
}

func (fe *HierarchicSegment) NumRefShapeFunctionsSub(codim, subIdx int) int {
	return fe.NumRefShapeFunctionsCodim(codim)
}

func (fe *HierarchicSegment) EvalReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 1 {
		panic(fmt.Errorf("expected a 1 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	R := utils.NewMatrix(fe.NumRefShapeFunctions(), nq)
	for q := 0; q < nq; q++ {
		x := X.At(0, q)
		R.Set(0, q, 1-x)
		R.Set(1, q, x)
		for i := 0; i < fe.degree-1; i++ {
			R.Set(i+2, q, ILegendre(i+2, x))
		}
	}
	return R
}

func (fe *HierarchicSegment) GradientsReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	nr, nq := X.Dims()
	if nr != 1 {
		panic(fmt.Errorf("expected a 1 x Q coordinate matrix, got %d x %d", nr, nq))
	}
	R := utils.NewMatrix(fe.NumRefShapeFunctions(), nq)
	for q := 0; q < nq; q++ {
		x := X.At(0, q)
		R.Set(0, q, -1)
		R.Set(1, q, 1)
		for i := 0; i < fe.degree-1; i++ {
			R.Set(i+2, q, Legendre(i+1, x))
		}
	}
	return R
}

// EvaluationNodes returns the endpoints of the segment followed by the
// Chebyshev nodes of degree p-1.
func (fe *HierarchicSegment) EvaluationNodes() utils.Matrix {
	return fe.evalNodes
}

func (fe *HierarchicSegment) NumEvaluationNodes() int { return fe.degree + 1 }

func (fe *HierarchicSegment) NodalValuesToDofs(nodevals utils.Vector) utils.Vector {
	return nodalValuesToDofs(fe, nodevals)
}

func (fe *HierarchicSegment) computeEvaluationNodes() (nodes utils.Matrix) {
	nodes = utils.NewMatrix(1, fe.degree+1)
	nodes.Set(0, 0, 0)
	nodes.Set(0, 1, 1)
	cheb := chebyshevNodes(fe.degree - 1)
	for i := 0; i < fe.degree-1; i++ {
		nodes.Set(0, 2+i, cheb[i])
	}
	return
}
