package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
)

// MassMatrixProvider computes element mass matrices for a hierarchic
// space by Gauss quadrature, a tensor product rule on quadrilaterals
// and a collapsed tensor rule on triangles. It satisfies
// assemble.EntityMatrixProvider.
//
// The default quadrature order 2p+1 integrates the mass integrand
// exactly on affine triangles and on bilinearly mapped quadrilaterals.
type MassMatrixProvider struct {
	space *HierarchicSpace
	rules map[base.RefEl]QuadRule
}

// NewMassMatrixProvider sets up quadrature rules for every cell type
// present in the space's mesh. An optional argument overrides the
// quadrature order.
func NewMassMatrixProvider(space *HierarchicSpace, quadOrderO ...int) *MassMatrixProvider {
	order := 2*space.Degree() + 1
	if len(quadOrderO) != 0 {
		order = quadOrderO[0]
	}
	mp := &MassMatrixProvider{
		space: space,
		rules: make(map[base.RefEl]QuadRule),
	}
	for _, ct := range space.Mesh().CellTypes {
		if _, present := mp.rules[ct]; !present {
			mp.rules[ct] = NewQuadRule(ct, order)
		}
	}
	return mp
}

func (mp *MassMatrixProvider) IsActive(cell int) bool { return true }

func (mp *MassMatrixProvider) Eval(cell int) utils.Matrix {
	var (
		msh  = mp.space.Mesh()
		fe   = mp.space.ShapeFunctionLayout(0, cell)
		rule = mp.rules[msh.CellTypes[cell]]
		phi  = fe.EvalReferenceShapeFunctions(rule.Points)
		n    = fe.NumRefShapeFunctions()
		detJ = cellJacobianDets(msh, cell, rule.Points)
		M    = utils.NewMatrix(n, n)
	)
	for q := 0; q < rule.NumPoints(); q++ {
		w := rule.Weights.AtVec(q) * detJ[q]
		for i := 0; i < n; i++ {
			wi := w * phi.At(i, q)
			for j := 0; j < n; j++ {
				M.Set(i, j, M.At(i, j)+wi*phi.At(j, q))
			}
		}
	}
	return M
}

// cellJacobianDets returns the metric factor of the cell's reference
// map at each evaluation point. Triangles map affinely so the factor
// is constant, quadrilaterals map bilinearly. Counterclockwise cell
// numbering keeps the factor positive.
func cellJacobianDets(msh *mesh.Mesh, cell int, pts utils.Matrix) []float64 {
	var (
		_, nq  = pts.Dims()
		xs, ys = msh.CellVertexCoords(cell)
		detJ   = make([]float64, nq)
	)
	switch msh.CellTypes[cell] {
	case base.Tria:
		d := (xs[1]-xs[0])*(ys[2]-ys[0]) - (xs[2]-xs[0])*(ys[1]-ys[0])
		for q := range detJ {
			detJ[q] = d
		}
	case base.Quad:
		for q := 0; q < nq; q++ {
			var (
				xi     = pts.At(0, q)
				eta    = pts.At(1, q)
				dxdXi  = (xs[1]-xs[0])*(1-eta) + (xs[2]-xs[3])*eta
				dydXi  = (ys[1]-ys[0])*(1-eta) + (ys[2]-ys[3])*eta
				dxdEta = (xs[3]-xs[0])*(1-xi) + (xs[2]-xs[1])*xi
				dydEta = (ys[3]-ys[0])*(1-xi) + (ys[2]-ys[1])*xi
			)
			detJ[q] = dxdXi*dydEta - dxdEta*dydXi
		}
	default:
		panic(fmt.Errorf("illegal cell type %v", msh.CellTypes[cell]))
	}
	return detJ
}
