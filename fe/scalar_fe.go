// Package fe implements hierarchic scalar finite elements of arbitrary
// polynomial degree on segments, triangles and quadrilaterals. The
// shape functions follow the construction in
// https://arxiv.org/pdf/1504.03025.pdf and are compatible across cell
// boundaries when the edge functions are mirrored according to the
// relative orientations of the cell's edges.
package fe

import (
	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
)

// ScalarReferenceFiniteElement describes a scalar valued finite element
// on a reference element. Coordinates are passed as column vectors of a
// matrix, so evaluating at Q points on a 2D reference element takes a
// 2 x Q matrix and yields an N x Q matrix with one row per shape
// function. Gradients come back as an N x 2Q matrix with the partial
// derivatives of point q in columns 2q and 2q+1.
type ScalarReferenceFiniteElement interface {
	// RefEl returns the reference element the shape functions live on
	RefEl() base.RefEl
	// Degree returns the maximal polynomial degree of the shape functions
	Degree() int
	// NumRefShapeFunctions returns the total number of shape functions
	NumRefShapeFunctions() int
	// NumRefShapeFunctionsCodim returns the number of shape functions
	// associated with each subentity of the given co-dimension
	NumRefShapeFunctionsCodim(codim int) int
	// NumRefShapeFunctionsSub returns the number of shape functions
	// associated with the given subentity
	NumRefShapeFunctionsSub(codim, subIdx int) int
	// EvalReferenceShapeFunctions evaluates all shape functions at the
	// points passed as columns of X
	EvalReferenceShapeFunctions(X utils.Matrix) utils.Matrix
	// GradientsReferenceShapeFunctions evaluates the gradients of all
	// shape functions at the points passed as columns of X
	GradientsReferenceShapeFunctions(X utils.Matrix) utils.Matrix
	// EvaluationNodes returns the nodes used to define degrees of
	// freedom from point values
	EvaluationNodes() utils.Matrix
	// NumEvaluationNodes returns the number of evaluation nodes
	NumEvaluationNodes() int
	// NodalValuesToDofs converts values at the evaluation nodes into
	// basis expansion coefficients
	NodalValuesToDofs(nodevals utils.Vector) utils.Vector
}

// nodalValuesToDofs computes the coefficients d solving
// sum_j d_j phi_j(x_i) = nodevals_i at the evaluation nodes x_i. The
// hierarchic bases are not cardinal bases, so a dense linear system is
// solved with a rank revealing factorization.
func nodalValuesToDofs(fe ScalarReferenceFiniteElement,
	nodevals utils.Vector) utils.Vector {
	shapeFunctionsAtNodes :=
		fe.EvalReferenceShapeFunctions(fe.EvaluationNodes())
	return shapeFunctionsAtNodes.Transpose().SolveRankRevealing(nodevals)
}
