package fe

import (
	"testing"

	"github.com/huanglangwen/lehrfempp/assemble"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/utils"
	"github.com/stretchr/testify/assert"
)

// vertexBlockSum adds up the matrix entries coupling vertex dofs. The
// vertex shape functions sum to one on every cell, so for a mass
// matrix this block sums to the mesh area.
func vertexBlockSum(A utils.DOK, nv int) (sum float64) {
	for i := 0; i < nv; i++ {
		for j := 0; j < nv; j++ {
			sum += A.At(i, j)
		}
	}
	return
}

func TestMassMatrixLowestOrder(t *testing.T) {
	{ // At degree 1 every dof is a vertex dof and the total is the area
		for _, msh := range []*mesh.Mesh{
			mesh.TwoTriangleSquare(), mesh.UnitQuad(), mesh.MixedStrip(),
		} {
			space := NewHierarchicSpace(msh, 1)
			A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space))
			assert.InDeltaf(t, msh.Area(), A.Sum(), 1.e-14, "mesh area %v", msh.Area())
		}
	}
	{ // Exact entries on a single reference triangle
		msh, err := mesh.NewMesh([]float64{0, 1, 0}, []float64{0, 0, 1}, [][]int{{0, 1, 2}})
		assert.NoError(t, err)
		space := NewHierarchicSpace(msh, 1)
		A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space))
		assert.InDelta(t, 1.0/12, A.At(0, 0), 1.e-14)
		assert.InDelta(t, 1.0/12, A.At(1, 1), 1.e-14)
		assert.InDelta(t, 1.0/24, A.At(0, 1), 1.e-14)
		assert.InDelta(t, 1.0/24, A.At(2, 0), 1.e-14)
	}
	{ // Exact entries on the unit quadrilateral
		space := NewHierarchicSpace(mesh.UnitQuad(), 1)
		A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space))
		assert.InDelta(t, 1.0/9, A.At(0, 0), 1.e-14)
		assert.InDelta(t, 1.0/18, A.At(0, 1), 1.e-14)
		assert.InDelta(t, 1.0/36, A.At(0, 2), 1.e-14)
		assert.InDelta(t, 1.0, A.Sum(), 1.e-14)
	}
}

func TestMassMatrixHigherOrder(t *testing.T) {
	{ // Vertex block recovers the area at any degree
		for _, degree := range []int{2, 3, 4} {
			for _, msh := range []*mesh.Mesh{
				mesh.TwoTriangleSquare(), mesh.UnitQuad(), mesh.MixedStrip(),
			} {
				space := NewHierarchicSpace(msh, degree)
				A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space))
				assert.InDeltaf(t, msh.Area(), vertexBlockSum(A, msh.NumVertices()), 1.e-13,
					"degree %d", degree)
			}
		}
	}
	{ // Element matrices are symmetric with positive diagonal
		space := NewHierarchicSpace(mesh.TwoTriangleSquare(), 3)
		mp := NewMassMatrixProvider(space)
		for c := 0; c < 2; c++ {
			assert.True(t, mp.IsActive(c))
			M := mp.Eval(c)
			n, _ := M.Dims()
			assert.Equal(t, space.NumRefShapeFunctions(0, c), n)
			for i := 0; i < n; i++ {
				assert.Greater(t, M.At(i, i), 0.)
				for j := i + 1; j < n; j++ {
					assert.InDelta(t, M.At(i, j), M.At(j, i), 1.e-14)
				}
			}
		}
	}
	{ // Bilinear geometry of a trapezoid is integrated exactly
		msh, err := mesh.NewMesh(
			[]float64{0, 2, 1.5, 0.5}, []float64{0, 0, 1, 1}, [][]int{{0, 1, 2, 3}})
		assert.NoError(t, err)
		assert.InDelta(t, 1.5, msh.Area(), 1.e-14)
		space := NewHierarchicSpace(msh, 2)
		A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space))
		assert.InDelta(t, 1.5, vertexBlockSum(A, 4), 1.e-13)
	}
	{ // An explicit quadrature order can be supplied
		space := NewHierarchicSpace(mesh.MixedStrip(), 2)
		A := assemble.AssembleMatrixLocally(space.LocGlobMap(), NewMassMatrixProvider(space, 6))
		assert.InDelta(t, 1.5, vertexBlockSum(A, 5), 1.e-13)
	}
}
