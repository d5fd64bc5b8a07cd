package assemble

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/utils"
)

// EntityMatrixProvider computes the element matrix of a cell. IsActive
// lets a provider restrict assembly to part of the mesh.
type EntityMatrixProvider interface {
	IsActive(cell int) bool
	Eval(cell int) utils.Matrix
}

// AssembleMatrixLocally assembles the global matrix in triplet form by
// scattering each cell's element matrix with the covering dof indices
// of the cell. Contributions to the same entry accumulate.
func AssembleMatrixLocally(dofh DofHandler, provider EntityMatrixProvider) utils.DOK {
	var (
		N   = dofh.NumDofs()
		A   = utils.NewDOK(N, N)
		msh = dofh.Mesh()
	)
	for c := 0; c < msh.NumCells(); c++ {
		if !provider.IsActive(c) {
			continue
		}
		var (
			elem   = provider.Eval(c)
			dofs   = dofh.GlobalDofIndices(0, c)
			nr, nc = elem.Dims()
		)
		if nr != len(dofs) || nc != len(dofs) {
			panic(fmt.Errorf("element matrix of cell %d is %d x %d, want %d x %d",
				c, nr, nc, len(dofs), len(dofs)))
		}
		for i := 0; i < nr; i++ {
			for j := 0; j < nc; j++ {
				A.AddAt(dofs[i], dofs[j], elem.At(i, j))
			}
		}
	}
	return A
}
