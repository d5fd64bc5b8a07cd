package params

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type RunParameters struct {
	Title           string `yaml:"Title"`
	MeshFile        string `yaml:"MeshFile"`
	PolynomialOrder int    `yaml:"PolynomialOrder"`
	QuadratureOrder int    `yaml:"QuadratureOrder"`
	PlotMesh        bool   `yaml:"PlotMesh"`
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("[%s]\t\t= Mesh File\n", rp.MeshFile)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", rp.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Quadrature Order\n", rp.QuadratureOrder)
	fmt.Printf("[%v]\t\t\t= Plot Mesh\n", rp.PlotMesh)
}
