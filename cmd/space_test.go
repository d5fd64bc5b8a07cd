package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/huanglangwen/lehrfempp/params"
)

func TestSpaceInput(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Test Space
MeshFile: square.msh
PolynomialOrder: 4
QuadratureOrder: 9
PlotMesh: false
`)
	var input params.RunParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.MeshFile, "square.msh")
	assert.Equal(t, input.PolynomialOrder, 4)
	input.Print()
	assert.Equal(t, input.QuadratureOrder, 9)

	// Flags fill in whatever the input file leaves open
	parmFile := filepath.Join(t.TempDir(), "run.yaml")
	if err = os.WriteFile(parmFile, []byte("Title: From File\n"), 0644); err != nil {
		panic(err)
	}
	ms := &ModelSpace{ParmFile: parmFile, GridFile: "other.msh", Degree: 3, Graph: true}
	rp := processInput(ms)
	assert.Equal(t, rp.Title, "From File")
	assert.Equal(t, rp.MeshFile, "other.msh")
	assert.Equal(t, rp.PolynomialOrder, 3)
	assert.Equal(t, rp.PlotMesh, true)
}
