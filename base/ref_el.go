package base

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/utils"
)

// RefEl identifies one of the four reference element shapes used by the
// library: the point, the unit interval, the unit right triangle and the
// unit square. All topology queries are answered from fixed tables, so
// values are freely copyable and equality is tag equality.
type RefEl uint8

const (
	Point RefEl = iota
	Segment
	Tria
	Quad
)

// Edge to vertex incidence in canonical local order.
var (
	triaEdgeVerts = [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	quadEdgeVerts = [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
)

func (r RefEl) String() string {
	switch r {
	case Point:
		return "Point"
	case Segment:
		return "Segment"
	case Tria:
		return "Tria"
	case Quad:
		return "Quad"
	}
	return "Invalid"
}

// Dimension returns the dimension of the reference domain.
func (r RefEl) Dimension() int {
	switch r {
	case Point:
		return 0
	case Segment:
		return 1
	case Tria, Quad:
		return 2
	}
	panic(fmt.Errorf("unknown reference element tag %d", r))
}

// NumNodes returns the number of vertices of the shape.
func (r RefEl) NumNodes() int {
	switch r {
	case Point:
		return 1
	case Segment:
		return 2
	case Tria:
		return 3
	case Quad:
		return 4
	}
	panic(fmt.Errorf("unknown reference element tag %d", r))
}

// NumSubEntities returns the number of sub-entities of the given
// co-dimension. Codim 0 is the shape itself.
func (r RefEl) NumSubEntities(codim int) int {
	if codim < 0 || codim > r.Dimension() {
		panic(fmt.Errorf("codim %d out of range for %v", codim, r))
	}
	if codim == 0 {
		return 1
	}
	switch r {
	case Segment:
		return 2 // two endpoints
	case Tria:
		return 3 // codim 1: edges, codim 2: vertices
	case Quad:
		return 4
	}
	panic(fmt.Errorf("unknown reference element tag %d", r))
}

// SubType returns the shape of the subIdx-th sub-entity at the given
// co-dimension.
func (r RefEl) SubType(codim, subIdx int) RefEl {
	if subIdx < 0 || subIdx >= r.NumSubEntities(codim) {
		panic(fmt.Errorf("sub-entity index %d out of range for %v at codim %d", subIdx, r, codim))
	}
	switch codim {
	case 0:
		return r
	case 1:
		if r.Dimension() == 2 {
			return Segment
		}
		return Point
	case 2:
		return Point
	}
	panic(fmt.Errorf("codim %d out of range for %v", codim, r))
}

// SubSubEntity2SubEntity maps a sub-entity of a sub-entity to its index
// with respect to this shape. The sub-entity is addressed by (subCodim,
// subIdx); (subSubCodim, subSubIdx) address the sub-sub-entity relative to
// the sub-entity, with subSubCodim relative to the sub-entity's dimension.
// The main use is looking up which cell vertex bounds which cell edge.
func (r RefEl) SubSubEntity2SubEntity(subCodim, subIdx, subSubCodim, subSubIdx int) int {
	if subIdx < 0 || subIdx >= r.NumSubEntities(subCodim) {
		panic(fmt.Errorf("sub-entity index %d out of range for %v at codim %d", subIdx, r, subCodim))
	}
	sub := r.SubType(subCodim, subIdx)
	if subSubCodim < 0 || subSubCodim > sub.Dimension() {
		panic(fmt.Errorf("sub-sub codim %d out of range for %v sub-entity %v", subSubCodim, r, sub))
	}
	if subSubIdx < 0 || subSubIdx >= sub.NumSubEntities(subSubCodim) {
		panic(fmt.Errorf("sub-sub index %d out of range for %v sub-entity %v", subSubIdx, r, sub))
	}
	if r == Point {
		return 0
	}
	if subCodim == 0 {
		// The sub-entity is the shape itself.
		return subSubIdx
	}
	if subCodim == r.Dimension() {
		// The sub-entity is a vertex; its only sub-sub-entity is itself.
		return subIdx
	}
	// Remaining case: a 2D cell, subCodim 1 (edge), subSubCodim 1 (endpoint).
	switch r {
	case Tria:
		return triaEdgeVerts[subIdx][subSubIdx]
	case Quad:
		return quadEdgeVerts[subIdx][subSubIdx]
	}
	panic(fmt.Errorf("unknown reference element tag %d", r))
}

// NodeCoords returns the canonical vertex coordinates as a
// Dimension x NumNodes matrix. For the point the matrix is empty.
func (r RefEl) NodeCoords() utils.Matrix {
	switch r {
	case Point:
		return utils.Matrix{}
	case Segment:
		return utils.NewMatrix(1, 2, []float64{0, 1})
	case Tria:
		return utils.NewMatrix(2, 3, []float64{
			0, 1, 0,
			0, 0, 1,
		})
	case Quad:
		return utils.NewMatrix(2, 4, []float64{
			0, 1, 1, 0,
			0, 0, 1, 1,
		})
	}
	panic(fmt.Errorf("unknown reference element tag %d", r))
}
