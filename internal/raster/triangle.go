package raster

import (
	"image"
	"math"

	"tri-rasterizer/internal/mathutil"
)

// Edges is the per-triangle setup consumed by the pixel loop.
//
// E holds the rows of M⁻¹, where M has the raster vertices' (x, y, w) as
// columns. E[i]·(x, y, 1) is the homogeneous weight of vertex i at a sample:
// positive inside the edge opposite vertex i, zero on it. C is E[0]+E[1]+E[2],
// so C·(x, y, 1) is the interpolated 1/w, larger meaning nearer.
type Edges struct {
	E [3]mathutil.Vec3
	C mathutil.Vec3
}

// Setup builds the edge functions for three raster-space vertices.
// It reports false for back-facing and degenerate triangles (det(M) >= 0),
// which must not touch any pixel.
func Setup(v0, v1, v2 mathutil.Vec4) (Edges, bool) {
	m := mathutil.Mat3FromColumns(v0.XYW(), v1.XYW(), v2.XYW())
	// NaN fails this comparison too.
	if !(m.Det() < 0) {
		return Edges{}, false
	}
	inv := m.Inverse()
	e := Edges{E: [3]mathutil.Vec3{inv.Row(0), inv.Row(1), inv.Row(2)}}
	e.C = e.E[0].Add(e.E[1]).Add(e.E[2])
	return e, true
}

// EvalEdge evaluates the line equation e at (x, y).
func EvalEdge(e mathutil.Vec3, x, y float64) float64 {
	return e[0]*x + e[1]*y + e[2]
}

// EdgeInside classifies a sample against one edge. Samples exactly on the
// edge line go to the side picked by the coefficients, so two triangles
// sharing an edge never both claim (or both drop) the sample.
func EdgeInside(e mathutil.Vec3, x, y float64) bool {
	r := EvalEdge(e, x, y)
	if r > 0 {
		return true
	}
	if r < 0 {
		return false
	}
	if e[0] > 0 {
		return true
	}
	if e[0] < 0 {
		return false
	}
	return !(e[1] < 0)
}

// RasterizeTriangle scans the pixels of area (clipped to the frame), writes
// every covered sample that passes the depth test and returns the number of
// fragments written.
//
// The depth test keeps the larger inverse depth; on equality the current
// triangle wins, so the result depends on draw order.
func RasterizeTriangle(fb *FrameStore, e Edges, area image.Rectangle, shade Shader, object, tri int) int {
	area = area.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	written := 0
	for y := area.Min.Y; y < area.Max.Y; y++ {
		sy := float64(y) + 0.5
		rowOff := y * fb.Width
		for x := area.Min.X; x < area.Max.X; x++ {
			sx := float64(x) + 0.5
			if !EdgeInside(e.E[0], sx, sy) || !EdgeInside(e.E[1], sx, sy) || !EdgeInside(e.E[2], sx, sy) {
				continue
			}

			weight := EvalEdge(e.C, sx, sy)
			i := rowOff + x
			if !(weight >= fb.Depth[i]) {
				continue
			}
			fb.Depth[i] = weight

			fb.set(i, shade(Fragment{
				X:        x,
				Y:        y,
				Object:   object,
				Triangle: tri,
				Alpha:    EvalEdge(e.E[0], sx, sy),
				Beta:     EvalEdge(e.E[1], sx, sy),
				Gamma:    EvalEdge(e.E[2], sx, sy),
			}))
			written++
		}
	}
	return written
}

// conservativeBounds returns a pixel rectangle containing every sample the
// triangle can cover. With any vertex at w <= 0 the projected hull is not
// bounded, so the whole frame is returned.
func conservativeBounds(v [3]mathutil.Vec4, width, height int) image.Rectangle {
	full := image.Rect(0, 0, width, height)
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range v {
		if !(p[3] > 0) {
			return full
		}
		x, y := p[0]/p[3], p[1]/p[3]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			return full
		}
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}

	// One pixel of slack absorbs rounding between the divide above and
	// the edge evaluation.
	lo := func(f float64, n int) int {
		return int(mathutil.Clamp(math.Floor(f)-1, -1, float64(n)))
	}
	hi := func(f float64, n int) int {
		return int(mathutil.Clamp(math.Ceil(f)+1, -1, float64(n)))
	}
	r := image.Rect(lo(minX, width), lo(minY, height), hi(maxX, width), hi(maxY, height))
	return r.Intersect(full)
}
