package fe

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/assemble"
	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/mesh"
)

// HierarchicSpace is a scalar finite element space of uniform degree p
// on a hybrid 2D mesh. It installs a hierarchic shape function layout
// on every mesh entity, with each cell's layout built from the cell's
// own view of its edge orientations, and numbers the global degrees of
// freedom with a UniformFEDofHandler. The space is immutable after
// construction and safe for concurrent reads.
type HierarchicSpace struct {
	msh     *mesh.Mesh
	degree  int
	layouts [3][]ScalarReferenceFiniteElement
	dofh    *assemble.UniformFEDofHandler
}

func NewHierarchicSpace(msh *mesh.Mesh, degree int) *HierarchicSpace {
	if degree < 1 {
		panic(fmt.Errorf("degree %d must be at least 1", degree))
	}
	s := &HierarchicSpace{msh: msh, degree: degree}
	// Shape function layouts for the vertices
	point := NewHierarchicPoint(degree)
	s.layouts[2] = make([]ScalarReferenceFiniteElement, msh.NumVertices())
	for v := range s.layouts[2] {
		s.layouts[2][v] = point
	}
	// Shape function layouts for the edges. Edge layouts evaluate in
	// the edge's intrinsic direction, so one shared instance serves all
	// edges.
	segment := NewHierarchicSegment(degree)
	s.layouts[1] = make([]ScalarReferenceFiniteElement, msh.NumEdges())
	for e := range s.layouts[1] {
		s.layouts[1][e] = segment
	}
	// Shape function layouts for the cells
	var numRsfTria, numRsfQuad int
	s.layouts[0] = make([]ScalarReferenceFiniteElement, msh.NumCells())
	for c := range s.layouts[0] {
		switch msh.CellTypes[c] {
		case base.Tria:
			fe := NewHierarchicTria(degree, msh.RelativeOrientations(c))
			s.layouts[0][c] = fe
			numRsfTria = fe.NumRefShapeFunctionsCodim(0)
		case base.Quad:
			fe := NewHierarchicQuad(degree, msh.RelativeOrientations(c))
			s.layouts[0][c] = fe
			numRsfQuad = fe.NumRefShapeFunctionsCodim(0)
		default:
			panic(fmt.Errorf("illegal cell type %v", msh.CellTypes[c]))
		}
	}
	s.dofh = assemble.NewUniformFEDofHandler(msh, map[base.RefEl]int{
		base.Point:   1,
		base.Segment: segment.NumRefShapeFunctionsCodim(0),
		base.Tria:    numRsfTria,
		base.Quad:    numRsfQuad,
	})
	return s
}

func (s *HierarchicSpace) Mesh() *mesh.Mesh { return s.msh }

func (s *HierarchicSpace) Degree() int { return s.degree }

// LocGlobMap returns the local to global dof mapping of the space.
func (s *HierarchicSpace) LocGlobMap() *assemble.UniformFEDofHandler {
	return s.dofh
}

// ShapeFunctionLayout returns the finite element installed on the
// given entity.
func (s *HierarchicSpace) ShapeFunctionLayout(codim, idx int) ScalarReferenceFiniteElement {
	if codim < 0 || codim > 2 {
		panic(fmt.Errorf("codim %d out of range for a 2D mesh", codim))
	}
	if idx < 0 || idx >= len(s.layouts[codim]) {
		panic(fmt.Errorf("entity index %d out of range at codim %d", idx, codim))
	}
	return s.layouts[codim][idx]
}

// NumRefShapeFunctions returns the total number of shape functions of
// the layout installed on the given entity.
func (s *HierarchicSpace) NumRefShapeFunctions(codim, idx int) int {
	return s.ShapeFunctionLayout(codim, idx).NumRefShapeFunctions()
}
