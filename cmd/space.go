/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/huanglangwen/lehrfempp/assemble"
	"github.com/huanglangwen/lehrfempp/fe"
	"github.com/huanglangwen/lehrfempp/mesh"
	"github.com/huanglangwen/lehrfempp/params"
)

type ModelSpace struct {
	GridFile string
	ParmFile string
	Degree   int
	Graph    bool
	Profile  bool
}

// SpaceCmd represents the space command
var SpaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Builds a finite element space on a 2D grid and assembles its mass matrix",
	Long: `
Builds a hierarchic scalar finite element space of the requested degree
on a 2D grid and assembles the mass matrix of the space. Without a grid
file a small built-in grid of one quadrilateral and one triangle is
used.

Example input file:
########################################
Title: "Test Space"
MeshFile: square.msh
PolynomialOrder: 4
QuadratureOrder: 9
PlotMesh: false
########################################
`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("space called")
		ms := &ModelSpace{}
		if ms.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if ms.ParmFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		ms.Degree, _ = cmd.Flags().GetInt("degree")
		ms.Graph, _ = cmd.Flags().GetBool("graph")
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		rp := processInput(ms)
		RunSpace(ms, rp)
	},
}

func processInput(ms *ModelSpace) (rp *params.RunParameters) {
	var (
		err error
	)
	rp = &params.RunParameters{
		Title:           "built-in mixed strip",
		PolynomialOrder: ms.Degree,
	}
	if len(ms.ParmFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(ms.ParmFile); err != nil {
			panic(err)
		}
		if err = rp.Parse(data); err != nil {
			panic(err)
		}
	}
	if len(ms.GridFile) != 0 {
		rp.MeshFile = ms.GridFile
	}
	if rp.PolynomialOrder <= 0 {
		rp.PolynomialOrder = ms.Degree
	}
	if ms.Graph {
		rp.PlotMesh = true
	}
	rp.Print()
	return
}

func init() {
	rootCmd.AddCommand(SpaceCmd)
	SpaceCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in gmsh 2.2 (.msh) format")
	SpaceCmd.Flags().StringP("inputFile", "I", "", "YAML file for run parameters like:\n\t- PolynomialOrder\n\t- QuadratureOrder")
	SpaceCmd.Flags().IntP("degree", "N", 3, "polynomial degree of the space")
	SpaceCmd.Flags().BoolP("graph", "g", false, "display the grid in a graphics window")
	SpaceCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
}

func RunSpace(ms *ModelSpace, rp *params.RunParameters) {
	if ms.Profile {
		defer profile.Start().Stop()
	}
	var (
		msh *mesh.Mesh
		err error
	)
	if len(rp.MeshFile) != 0 {
		if msh, err = mesh.ReadGmsh22(rp.MeshFile); err != nil {
			panic(err)
		}
	} else {
		msh = mesh.MixedStrip()
	}
	space := fe.NewHierarchicSpace(msh, rp.PolynomialOrder)
	var mp *fe.MassMatrixProvider
	if rp.QuadratureOrder > 0 {
		mp = fe.NewMassMatrixProvider(space, rp.QuadratureOrder)
	} else {
		mp = fe.NewMassMatrixProvider(space)
	}
	A := assemble.AssembleMatrixLocally(space.LocGlobMap(), mp)
	// The vertex shape functions sum to one on every cell, so the
	// vertex block of the mass matrix integrates unity over the grid
	var unity float64
	for i := 0; i < msh.NumVertices(); i++ {
		for j := 0; j < msh.NumVertices(); j++ {
			unity += A.At(i, j)
		}
	}
	fmt.Printf("%d\t\t\t\t= Cells\n", msh.NumCells())
	fmt.Printf("%d\t\t\t\t= Edges\n", msh.NumEdges())
	fmt.Printf("%d\t\t\t\t= Vertices\n", msh.NumVertices())
	fmt.Printf("%d\t\t\t\t= Degrees of freedom\n", space.LocGlobMap().NumDofs())
	fmt.Printf("%d\t\t\t\t= Mass matrix entries\n", A.NNZ())
	fmt.Printf("%8.6f\t\t= Integral of unity\n", unity)
	fmt.Printf("%8.6f\t\t= Grid area\n", msh.Area())
	if rp.PlotMesh {
		msh.PlotMesh()
	}
}
