package mesh

import (
	"fmt"

	"github.com/huanglangwen/lehrfempp/base"
	"github.com/huanglangwen/lehrfempp/utils"
)

// Orientation relates the traversal direction of a cell's local edge to
// the intrinsic direction of the global edge it covers. The intrinsic
// direction of an edge always runs from its lower numbered global vertex
// to its higher numbered one.
type Orientation int8

const (
	Positive Orientation = 1
	Negative Orientation = -1
)

func (o Orientation) String() string {
	switch o {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	}
	return "invalid"
}

// Mesh is a conforming hybrid 2D mesh of triangles and quadrilaterals.
// Entities are addressed by co-dimension: cells are codim 0, edges codim
// 1 and vertices codim 2. The edge table is derived from the cell to
// vertex incidence at construction.
type Mesh struct {
	VX, VY     utils.Vector
	EToV       [][]int
	CellTypes  []base.RefEl
	EdgeVerts  [][2]int        // endpoints in ascending global order
	CellEdges  [][]int         // cell to edge incidence in local edge order
	CellOrient [][]Orientation // cell traversal direction per local edge
}

// NewMesh builds the mesh from vertex coordinates and a cell to vertex
// list. Cells with three vertices become triangles, cells with four
// become quadrilaterals; every cell must list its vertices in counter
// clockwise order.
func NewMesh(vx, vy []float64, etov [][]int) (msh *Mesh, err error) {
	var (
		nVerts = len(vx)
		nCells = len(etov)
	)
	if len(vy) != nVerts {
		err = fmt.Errorf("coordinate count mismatch: len(vx) = %v, len(vy) = %v", nVerts, len(vy))
		return
	}
	if nVerts == 0 || nCells == 0 {
		err = fmt.Errorf("empty mesh: %v vertices, %v cells", nVerts, nCells)
		return
	}
	msh = &Mesh{
		VX:         utils.NewVector(nVerts, vx),
		VY:         utils.NewVector(nVerts, vy),
		EToV:       etov,
		CellTypes:  make([]base.RefEl, nCells),
		CellEdges:  make([][]int, nCells),
		CellOrient: make([][]Orientation, nCells),
	}
	edgeIDs := make(map[[2]int]int)
	for c, verts := range etov {
		var refEl base.RefEl
		switch len(verts) {
		case 3:
			refEl = base.Tria
		case 4:
			refEl = base.Quad
		default:
			err = fmt.Errorf("cell %v has %v vertices, want 3 or 4", c, len(verts))
			return nil, err
		}
		msh.CellTypes[c] = refEl
		for i, v := range verts {
			if v < 0 || v >= nVerts {
				err = fmt.Errorf("cell %v references vertex %v out of range [0, %v)", c, v, nVerts)
				return nil, err
			}
			for j := 0; j < i; j++ {
				if verts[j] == v {
					err = fmt.Errorf("cell %v lists vertex %v twice", c, v)
					return nil, err
				}
			}
		}
		if signedArea(vx, vy, verts) < utils.NODETOL {
			err = fmt.Errorf("cell %v is degenerate or not counter clockwise", c)
			return nil, err
		}
		nEdges := refEl.NumSubEntities(1)
		msh.CellEdges[c] = make([]int, nEdges)
		msh.CellOrient[c] = make([]Orientation, nEdges)
		for k := 0; k < nEdges; k++ {
			a := verts[refEl.SubSubEntity2SubEntity(1, k, 1, 0)]
			b := verts[refEl.SubSubEntity2SubEntity(1, k, 1, 1)]
			lo, hi := a, b
			orient := Positive
			if a > b {
				lo, hi = b, a
				orient = Negative
			}
			key := [2]int{lo, hi}
			id, ok := edgeIDs[key]
			if !ok {
				id = len(msh.EdgeVerts)
				edgeIDs[key] = id
				msh.EdgeVerts = append(msh.EdgeVerts, key)
			}
			msh.CellEdges[c][k] = id
			msh.CellOrient[c][k] = orient
		}
	}
	return
}

func signedArea(vx, vy []float64, verts []int) (area float64) {
	for i, v := range verts {
		w := verts[(i+1)%len(verts)]
		area += vx[v]*vy[w] - vx[w]*vy[v]
	}
	area /= 2
	return
}

func (msh *Mesh) NumCells() int    { return len(msh.EToV) }
func (msh *Mesh) NumEdges() int    { return len(msh.EdgeVerts) }
func (msh *Mesh) NumVertices() int { return msh.VX.Len() }

// NumEntities returns the entity count at the given co-dimension.
func (msh *Mesh) NumEntities(codim int) int {
	switch codim {
	case 0:
		return msh.NumCells()
	case 1:
		return msh.NumEdges()
	case 2:
		return msh.NumVertices()
	}
	panic(fmt.Errorf("codim %d out of range for a 2D mesh", codim))
}

// EntityRefEl returns the reference element of entity idx at the given
// co-dimension.
func (msh *Mesh) EntityRefEl(codim, idx int) base.RefEl {
	if idx < 0 || idx >= msh.NumEntities(codim) {
		panic(fmt.Errorf("entity index %d out of range at codim %d", idx, codim))
	}
	switch codim {
	case 0:
		return msh.CellTypes[idx]
	case 1:
		return base.Segment
	}
	return base.Point
}

// RelativeOrientations returns the traversal directions of cell c's
// edges relative to their intrinsic directions. The returned slice is
// shared with the mesh and must not be modified.
func (msh *Mesh) RelativeOrientations(c int) []Orientation {
	return msh.CellOrient[c]
}

func (msh *Mesh) CellVertices(c int) []int    { return msh.EToV[c] }
func (msh *Mesh) EdgeVertices(e int) [2]int   { return msh.EdgeVerts[e] }
func (msh *Mesh) VertexCoords(v int) (x, y float64) {
	return msh.VX.AtVec(v), msh.VY.AtVec(v)
}

// CellVertexCoords returns the coordinates of cell c's vertices in local
// order.
func (msh *Mesh) CellVertexCoords(c int) (x, y []float64) {
	verts := msh.EToV[c]
	x = make([]float64, len(verts))
	y = make([]float64, len(verts))
	for i, v := range verts {
		x[i] = msh.VX.AtVec(v)
		y[i] = msh.VY.AtVec(v)
	}
	return
}

// CellArea returns the area of cell c.
func (msh *Mesh) CellArea(c int) float64 {
	return signedArea(msh.VX.DataP, msh.VY.DataP, msh.EToV[c])
}

// Area returns the total area covered by the mesh.
func (msh *Mesh) Area() (area float64) {
	for c := range msh.EToV {
		area += msh.CellArea(c)
	}
	return
}
