package mesh

import "tri-rasterizer/internal/mathutil"

// Cube returns the 8-vertex, 12-triangle cube spanning [-1, 1] on every
// axis. Faces wind counter-clockwise seen from outside, two per side in the
// order +Z, -Z, +X, -X, +Y, -Y.
func Cube() *Mesh {
	return &Mesh{
		Name: "cube",
		Positions: []mathutil.Vec3{
			{-1, -1, -1},
			{1, -1, -1},
			{1, 1, -1},
			{-1, 1, -1},
			{-1, -1, 1},
			{1, -1, 1},
			{1, 1, 1},
			{-1, 1, 1},
		},
		Groups: []Group{{
			Name: "cube",
			Faces: [][]int{
				{4, 5, 6}, {4, 6, 7},
				{1, 0, 3}, {1, 3, 2},
				{5, 1, 2}, {5, 2, 6},
				{0, 4, 7}, {0, 7, 3},
				{7, 6, 2}, {7, 2, 3},
				{0, 1, 5}, {0, 5, 4},
			},
		}},
	}
}

// SingleTriangle returns the one-triangle mesh drawn by the "triangle" scene.
func SingleTriangle() *Mesh {
	return &Mesh{
		Name: "triangle",
		Positions: []mathutil.Vec3{
			{-0.5, 0.5, 1},
			{0.5, 0.5, 1},
			{0, -0.5, 1},
		},
		Groups: []Group{{Name: "triangle", Faces: [][]int{{0, 1, 2}}}},
	}
}
