package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
)

// HierarchicPoint is the finite element on a point entity. It carries
// exactly one constant shape function and exists so that vertices can
// be treated uniformly with the other entity types.
type HierarchicPoint struct {
	degree int
}

func NewHierarchicPoint(degree int) *HierarchicPoint {
	if degree < 1 {
		panic(fmt.Errorf("degree %d must be at least 1", degree))
	}
	return &HierarchicPoint{degree: degree}
}

func (fe *HierarchicPoint) RefEl() base.RefEl { return base.Point }

func (fe *HierarchicPoint) Degree() int { return fe.degree }

func (fe *HierarchicPoint) NumRefShapeFunctions() int { return 1 }

func (fe *HierarchicPoint) NumRefShapeFunctionsCodim(codim int) int {
	if codim != 0 {
		panic(fmt.Errorf("codim %d out of range for a point", codim))
	}
	return 1
}

func (fe *HierarchicPoint) NumRefShapeFunctionsSub(codim, subIdx int) int {
	if subIdx != 0 {
		panic(fmt.Errorf("subIdx %d out of range for a point", subIdx))
	}
	return fe.NumRefShapeFunctionsCodim(codim)
}

// EvalReferenceShapeFunctions returns a row of ones, one entry per
// evaluation point. A point has no coordinates, so only the column
// count of X is used and an empty X stands for the single point.
func (fe *HierarchicPoint) EvalReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	_, nq := X.Dims()
	if nq == 0 {
		nq = 1
	}
	R := utils.NewMatrix(1, nq)
	for q := 0; q < nq; q++ {
		R.Set(0, q, 1)
	}
	return R
}

func (fe *HierarchicPoint) GradientsReferenceShapeFunctions(X utils.Matrix) utils.Matrix {
	panic(fmt.Errorf("gradients not defined on points"))
}

func (fe *HierarchicPoint) EvaluationNodes() utils.Matrix {
	return utils.Matrix{}
}

func (fe *HierarchicPoint) NumEvaluationNodes() int { return 1 }

// NodalValuesToDofs is the identity for a point since its only shape
// function is the constant 1.
func (fe *HierarchicPoint) NodalValuesToDofs(nodevals utils.Vector) utils.Vector {
	if nodevals.Len() != 1 {
		panic(fmt.Errorf("expected 1 nodal value, got %d", nodevals.Len()))
	}
	return nodevals.Copy()
}
