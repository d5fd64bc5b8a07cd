// Package assemble provides the local to global index mapping for
// finite element spaces and the assembly of global sparse matrices from
// element contributions.
package assemble

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
)

// DofHandler maps the degrees of freedom of mesh entities to global
// indices. Entities are addressed by co-dimension and entity index as
// in mesh.Mesh. Interior dofs belong to the entity itself, the covering
// dofs of an entity also include those of all its subentities.
type DofHandler interface {
	// NumDofs returns the total number of global degrees of freedom
	NumDofs() int
	// NumLocalDofs returns the number of dofs covering an entity
	NumLocalDofs(codim, idx int) int
	// NumInteriorDofs returns the number of dofs owned by an entity
	NumInteriorDofs(codim, idx int) int
	// GlobalDofIndices returns the covering dofs of an entity in the
	// local shape function order of the hierarchic finite elements
	GlobalDofIndices(codim, idx int) utils.Index
	// InteriorGlobalDofIndices returns the dofs owned by an entity in
	// the entity's intrinsic order
	InteriorGlobalDofIndices(codim, idx int) utils.Index
	// Mesh returns the underlying mesh
	Mesh() *mesh.Mesh
}

// UniformFEDofHandler assigns the same number of interior dofs to every
// entity of the same reference element type. Global dofs are numbered
// vertices first, then edges, then cells, each group in entity order.
//
// Within a cell's covering list, the dofs of an edge appear in the
// edge's intrinsic ascending order when the cell's relative orientation
// for that edge is positive and in reversed order when it is negative.
// The hierarchic cell bases store the shape functions of a negative
// edge at reversed block positions, so this reversal lines every local
// row up with the global basis function it represents and yields a
// conforming space.
type UniformFEDofHandler struct {
	msh      *mesh.Mesh
	numPoint int   // interior dofs per vertex
	numSeg   int   // interior dofs per edge
	numCell  []int // interior dofs per cell
	edgeBase int   // first edge dof
	cellBase []int // first interior dof per cell
	numDofs  int
}

// NewUniformFEDofHandler numbers the dofs of msh with the given
// interior dof counts per reference element type. Missing entries in
// dofMap count as zero.
func NewUniformFEDofHandler(msh *mesh.Mesh, dofMap map[base.RefEl]int) *UniformFEDofHandler {
	for refEl, n := range dofMap {
		if n < 0 {
			panic(fmt.Errorf("negative interior dof count %d for %v", n, refEl))
		}
	}
	h := &UniformFEDofHandler{
		msh:      msh,
		numPoint: dofMap[base.Point],
		numSeg:   dofMap[base.Segment],
		numCell:  make([]int, msh.NumCells()),
		cellBase: make([]int, msh.NumCells()),
	}
	h.edgeBase = msh.NumVertices() * h.numPoint
	offset := h.edgeBase + msh.NumEdges()*h.numSeg
	for c := 0; c < msh.NumCells(); c++ {
		h.numCell[c] = dofMap[msh.CellTypes[c]]
		h.cellBase[c] = offset
		offset += h.numCell[c]
	}
	h.numDofs = offset
	return h
}

func (h *UniformFEDofHandler) Mesh() *mesh.Mesh { return h.msh }

func (h *UniformFEDofHandler) NumDofs() int { return h.numDofs }

func (h *UniformFEDofHandler) NumInteriorDofs(codim, idx int) int {
	h.checkEntity(codim, idx)
	switch codim {
	case 0:
		return h.numCell[idx]
	case 1:
		return h.numSeg
	}
	return h.numPoint
}

func (h *UniformFEDofHandler) NumLocalDofs(codim, idx int) int {
	h.checkEntity(codim, idx)
	switch codim {
	case 0:
		refEl := h.msh.CellTypes[idx]
		return refEl.NumSubEntities(2)*h.numPoint +
			refEl.NumSubEntities(1)*h.numSeg + h.numCell[idx]
	case 1:
		return 2*h.numPoint + h.numSeg
	}
	return h.numPoint
}

// InteriorGlobalDofIndices returns the entity's own dofs, always in the
// entity's intrinsic order.
func (h *UniformFEDofHandler) InteriorGlobalDofIndices(codim, idx int) utils.Index {
	h.checkEntity(codim, idx)
	switch codim {
	case 0:
		return dofRange(h.cellBase[idx], h.numCell[idx])
	case 1:
		return dofRange(h.edgeBase+idx*h.numSeg, h.numSeg)
	}
	return dofRange(idx*h.numPoint, h.numPoint)
}

// GlobalDofIndices returns the covering dofs of an entity. For cells
// the list follows the local shape function order of the hierarchic
// families: vertices, then edge blocks with orientation dependent
// direction, then the interior.
func (h *UniformFEDofHandler) GlobalDofIndices(codim, idx int) utils.Index {
	h.checkEntity(codim, idx)
	switch codim {
	case 0:
		dofs := make(utils.Index, 0, h.NumLocalDofs(codim, idx))
		for _, v := range h.msh.CellVertices(idx) {
			dofs = append(dofs, dofRange(v*h.numPoint, h.numPoint)...)
		}
		for k, e := range h.msh.CellEdges[idx] {
			edgeDofs := dofRange(h.edgeBase+e*h.numSeg, h.numSeg)
			if h.msh.CellOrient[idx][k] == mesh.Negative {
				edgeDofs = edgeDofs.Reversed()
			}
			dofs = append(dofs, edgeDofs...)
		}
		return append(dofs, dofRange(h.cellBase[idx], h.numCell[idx])...)
	case 1:
		dofs := make(utils.Index, 0, h.NumLocalDofs(codim, idx))
		ev := h.msh.EdgeVertices(idx)
		dofs = append(dofs, dofRange(ev[0]*h.numPoint, h.numPoint)...)
		dofs = append(dofs, dofRange(ev[1]*h.numPoint, h.numPoint)...)
		return append(dofs, dofRange(h.edgeBase+idx*h.numSeg, h.numSeg)...)
	}
	return dofRange(idx*h.numPoint, h.numPoint)
}

func (h *UniformFEDofHandler) checkEntity(codim, idx int) {
	if idx < 0 || idx >= h.msh.NumEntities(codim) {
		panic(fmt.Errorf("entity index %d out of range at codim %d", idx, codim))
	}
}

func dofRange(first, count int) utils.Index {
	I := make(utils.Index, count)
	for i := range I {
		I[i] = first + i
	}
	return I
}
