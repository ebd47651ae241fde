package mesh

import (
	"errors"

	"tri-rasterizer/internal/mathutil"
)

var (
	ErrSyntax     = errors.New("malformed statement")
	ErrIndexRange = errors.New("vertex index out of range")
)

// Group is a named run of polygon faces. Each face lists vertex indices
// (0-based) in winding order.
type Group struct {
	Name  string
	Faces [][]int
}

// Mesh holds positions and grouped faces. Positions are immutable once
// loaded; renders share one Mesh across every instance.
type Mesh struct {
	Name      string
	Positions []mathutil.Vec3
	Groups    []Group
}

func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

func (m *Mesh) Vertex(i int) mathutil.Vec3 {
	return m.Positions[i]
}

// Triangles returns every three-vertex face, group by group in file order.
// Faces with any other vertex count are left out.
func (m *Mesh) Triangles() [][3]int {
	var tris [][3]int
	for _, g := range m.Groups {
		for _, f := range g.Faces {
			if len(f) != 3 {
				continue
			}
			tris = append(tris, [3]int{f[0], f[1], f[2]})
		}
	}
	return tris
}

// FaceCount returns the number of faces of any size.
func (m *Mesh) FaceCount() int {
	n := 0
	for _, g := range m.Groups {
		n += len(g.Faces)
	}
	return n
}
