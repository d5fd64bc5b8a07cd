package mesh

import "fmt"

// Built in meshes used by the command line tools and the tests.

// TwoTriangleSquare splits the unit square into two triangles along the
// diagonal from (0,0) to (1,1). The diagonal edge is traversed in
// opposite directions by the two cells, which makes this the smallest
// mesh exercising both edge orientations.
func TwoTriangleSquare() *Mesh {
	msh, err := NewMesh(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[][]int{{0, 1, 2}, {0, 2, 3}},
	)
	if err != nil {
		panic(err)
	}
	return msh
}

// UnitQuad is the unit square as a single quadrilateral cell.
func UnitQuad() *Mesh {
	msh, err := NewMesh(
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[][]int{{0, 1, 2, 3}},
	)
	if err != nil {
		panic(err)
	}
	return msh
}

// MixedStrip glues a triangle onto the right edge of the unit square.
// The shared edge runs between vertices 1 and 2 and is traversed in
// opposite directions by the quadrilateral and the triangle.
func MixedStrip() *Mesh {
	msh, err := NewMesh(
		[]float64{0, 1, 1, 0, 2},
		[]float64{0, 0, 1, 1, 0},
		[][]int{{0, 1, 2, 3}, {1, 4, 2}},
	)
	if err != nil {
		panic(err)
	}
	return msh
}

// UniformTriSquare meshes the unit square with 2*n*n triangles by
// splitting each cell of an n by n grid along its up diagonal.
func UniformTriSquare(n int) *Mesh {
	if n < 1 {
		panic(fmt.Errorf("grid size %d must be positive", n))
	}
	vx, vy := gridVertices(n)
	etov := make([][]int, 0, 2*n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := j*(n+1) + i
			v10 := v00 + 1
			v01 := v00 + n + 1
			v11 := v01 + 1
			etov = append(etov, []int{v00, v10, v11}, []int{v00, v11, v01})
		}
	}
	msh, err := NewMesh(vx, vy, etov)
	if err != nil {
		panic(err)
	}
	return msh
}

// UniformQuadSquare meshes the unit square with an n by n grid of
// quadrilaterals.
func UniformQuadSquare(n int) *Mesh {
	if n < 1 {
		panic(fmt.Errorf("grid size %d must be positive", n))
	}
	vx, vy := gridVertices(n)
	etov := make([][]int, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			v00 := j*(n+1) + i
			etov = append(etov, []int{v00, v00 + 1, v00 + n + 2, v00 + n + 1})
		}
	}
	msh, err := NewMesh(vx, vy, etov)
	if err != nil {
		panic(err)
	}
	return msh
}

func gridVertices(n int) (vx, vy []float64) {
	h := 1 / float64(n)
	vx = make([]float64, (n+1)*(n+1))
	vy = make([]float64, (n+1)*(n+1))
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			vx[j*(n+1)+i] = float64(i) * h
			vy[j*(n+1)+i] = float64(j) * h
		}
	}
	return
}
