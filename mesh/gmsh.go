package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// gmshCellNodes maps the Gmsh v2.2 element type numbers carried by 2D
// cells to their node counts. Lower dimensional elements (points,
// boundary lines) and higher order variants are skipped by the reader.
var gmshCellNodes = map[int]int{
	2: 3, // 3-node triangle
	3: 4, // 4-node quadrangle
}

// ReadGmsh22 reads a Gmsh MSH file in format version 2.2 and returns
// the 2D cells it contains. Node ids need not be contiguous.
func ReadGmsh22(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		scanner   = bufio.NewScanner(file)
		nodeIndex = make(map[int]int)
		vx, vy    []float64
		etov      [][]int
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch line {
		case "$MeshFormat":
			if err := readMeshFormat22(scanner); err != nil {
				return nil, err
			}

		case "$Nodes":
			if vx, vy, err = readNodes22(scanner, nodeIndex); err != nil {
				return nil, err
			}

		case "$Elements":
			if etov, err = readElements22(scanner, nodeIndex); err != nil {
				return nil, err
			}

		default:
			if strings.HasPrefix(line, "$") && !strings.HasPrefix(line, "$End") {
				// Skip sections we do not use
				endMarker := "$End" + line[1:]
				for scanner.Scan() {
					if strings.TrimSpace(scanner.Text()) == endMarker {
						break
					}
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner error: %v", err)
	}
	if len(etov) == 0 {
		return nil, fmt.Errorf("%s contains no 2D cells", filename)
	}

	return NewMesh(vx, vy, etov)
}

// readMeshFormat22 checks the MeshFormat section
func readMeshFormat22(scanner *bufio.Scanner) error {
	if !scanner.Scan() {
		return fmt.Errorf("unexpected EOF in MeshFormat")
	}

	parts := strings.Fields(scanner.Text())
	if len(parts) < 3 {
		return fmt.Errorf("invalid MeshFormat line")
	}
	if !strings.HasPrefix(parts[0], "2.") {
		return fmt.Errorf("unsupported msh format version %s, want 2.2", parts[0])
	}
	if fileType, _ := strconv.Atoi(parts[1]); fileType == 1 {
		return fmt.Errorf("binary msh files are not supported")
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndMeshFormat" {
			break
		}
	}

	return nil
}

// readNodes22 reads nodes in v2.2 format
func readNodes22(scanner *bufio.Scanner, nodeIndex map[int]int) (vx, vy []float64, err error) {
	if !scanner.Scan() {
		return nil, nil, fmt.Errorf("unexpected EOF in Nodes")
	}

	numNodes, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	vx = make([]float64, 0, numNodes)
	vy = make([]float64, 0, numNodes)

	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			return nil, nil, fmt.Errorf("unexpected EOF reading nodes")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 4 {
			return nil, nil, fmt.Errorf("invalid node line: %s", scanner.Text())
		}

		nodeID, _ := strconv.Atoi(parts[0])
		x, _ := strconv.ParseFloat(parts[1], 64)
		y, _ := strconv.ParseFloat(parts[2], 64)

		nodeIndex[nodeID] = len(vx)
		vx = append(vx, x)
		vy = append(vy, y)
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndNodes" {
			break
		}
	}

	return
}

// readElements22 reads elements in v2.2 format, keeping triangles and
// quadrilaterals
func readElements22(scanner *bufio.Scanner, nodeIndex map[int]int) (etov [][]int, err error) {
	if !scanner.Scan() {
		return nil, fmt.Errorf("unexpected EOF in Elements")
	}

	numElements, _ := strconv.Atoi(strings.TrimSpace(scanner.Text()))

	for i := 0; i < numElements; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("unexpected EOF reading elements")
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) < 3 {
			return nil, fmt.Errorf("invalid element line")
		}

		elemID, _ := strconv.Atoi(parts[0])
		elemType, _ := strconv.Atoi(parts[1])
		numTags, _ := strconv.Atoi(parts[2])

		numNodes, ok := gmshCellNodes[elemType]
		if !ok {
			// Skip points, boundary lines and unknown element types
			continue
		}

		nodeStart := 3 + numTags
		if len(parts) < nodeStart+numNodes {
			return nil, fmt.Errorf("element %d: expected %d nodes, got %d",
				elemID, numNodes, len(parts)-nodeStart)
		}

		verts := make([]int, numNodes)
		for j := 0; j < numNodes; j++ {
			nodeID, _ := strconv.Atoi(parts[nodeStart+j])
			idx, ok := nodeIndex[nodeID]
			if !ok {
				return nil, fmt.Errorf("element %d references unknown node %d", elemID, nodeID)
			}
			verts[j] = idx
		}
		etov = append(etov, verts)
	}

	// Skip to end
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "$EndElements" {
			break
		}
	}

	return
}
