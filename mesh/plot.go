package mesh

import (
	"math"

	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"
)

// BuildTriMesh converts the mesh into the triangle soup used by the
// plotting library. Quadrilaterals are fan split into two triangles
// from their first vertex.
func (msh *Mesh) BuildTriMesh() (gm geometry.TriMesh) {
	gm.XY = make([]float32, 2*msh.NumVertices())
	for v := 0; v < msh.NumVertices(); v++ {
		gm.XY[2*v] = float32(msh.VX.AtVec(v))
		gm.XY[2*v+1] = float32(msh.VY.AtVec(v))
	}
	for _, verts := range msh.EToV {
		gm.TriVerts = append(gm.TriVerts,
			[3]int64{int64(verts[0]), int64(verts[1]), int64(verts[2])})
		if len(verts) == 4 {
			gm.TriVerts = append(gm.TriVerts,
				[3]int64{int64(verts[0]), int64(verts[2]), int64(verts[3])})
		}
	}
	return
}

// PlotMesh opens an interactive window showing the mesh edges. It does
// not return.
func (msh *Mesh) PlotMesh() {
	var (
		gm                     = msh.BuildTriMesh()
		xMin, xMax, yMin, yMax = getMinMax(gm.XY)
	)
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	ch.AddTriMesh(gm)
	for {
	}
}

func getMinMax(XY []float32) (xMin, xMax, yMin, yMax float32) {
	xMin, xMax = float32(math.MaxFloat32), float32(-math.MaxFloat32)
	yMin, yMax = float32(math.MaxFloat32), float32(-math.MaxFloat32)
	for i := 0; i < len(XY)/2; i++ {
		x, y := XY[i*2+0], XY[i*2+1]
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	return
}
