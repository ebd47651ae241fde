package raster

import (
	"image"

	"tri-rasterizer/internal/mathutil"
)

// Geometry is the mesh collaborator the renderer consumes.
type Geometry interface {
	VertexCount() int
	Vertex(i int) mathutil.Vec3
	// Triangles lists index triples in draw order.
	Triangles() [][3]int
}

// Object is one instance of a geometry placed by its model matrix.
type Object struct {
	Model    mathutil.Mat4
	Geometry Geometry
}

// Stats summarizes one render. Nothing in the pipeline depends on it.
type Stats struct {
	Triangles int // triangles considered
	Culled    int // rejected as back-facing or degenerate
	Fragments int // pixel writes that passed the depth test
}

func (s *Stats) add(o Stats) {
	s.Triangles += o.Triangles
	s.Culled += o.Culled
	s.Fragments += o.Fragments
}

// Renderer turns objects into pixels, one triangle at a time.
type Renderer struct {
	Width  int
	Height int
	Mapper Mapper // nil means ClipToRaster
	Shader Shader // nil means DebugWeights

	// BoundingBox restricts each triangle's scan to a conservative pixel
	// rectangle. The output is identical either way.
	BoundingBox bool
}

// Render draws objects into a fresh frame store, in object order and then
// triangle order.
func (r *Renderer) Render(projection, view mathutil.Mat4, objects []Object) (*FrameStore, Stats) {
	fb := NewFrameStore(r.Width, r.Height)
	stats := r.RenderInto(fb, projection, view, objects)
	return fb, stats
}

// RenderInto draws objects into an existing frame store, keeping whatever
// depth it already holds.
func (r *Renderer) RenderInto(fb *FrameStore, projection, view mathutil.Mat4, objects []Object) Stats {
	t := Transform{Projection: projection, View: view}
	mapper := r.mapper()

	var stats Stats
	for oi, obj := range objects {
		if obj.Geometry == nil {
			continue
		}
		mvp := t.ModelViewProjection(obj.Model)

		n := obj.Geometry.VertexCount()
		verts := make([]mathutil.Vec4, n)
		for i := 0; i < n; i++ {
			verts[i] = mapper(mvp.MulVec4(obj.Geometry.Vertex(i).Point()), fb.Width, fb.Height)
		}

		for ti, tri := range obj.Geometry.Triangles() {
			if !inRange(tri, n) {
				continue
			}
			stats.add(r.DrawTriangle(fb, oi, ti, verts[tri[0]], verts[tri[1]], verts[tri[2]]))
		}
	}
	return stats
}

// DrawTriangle sets up and rasterizes a single raster-space triangle.
func (r *Renderer) DrawTriangle(fb *FrameStore, object, tri int, v0, v1, v2 mathutil.Vec4) Stats {
	stats := Stats{Triangles: 1}
	e, ok := Setup(v0, v1, v2)
	if !ok {
		stats.Culled = 1
		return stats
	}

	area := image.Rect(0, 0, fb.Width, fb.Height)
	if r.BoundingBox {
		area = conservativeBounds([3]mathutil.Vec4{v0, v1, v2}, fb.Width, fb.Height)
	}
	stats.Fragments = RasterizeTriangle(fb, e, area, r.shader(), object, tri)
	return stats
}

func (r *Renderer) mapper() Mapper {
	if r.Mapper == nil {
		return ClipToRaster
	}
	return r.Mapper
}

func (r *Renderer) shader() Shader {
	if r.Shader == nil {
		return DebugWeights()
	}
	return r.Shader
}

func inRange(tri [3]int, n int) bool {
	for _, i := range tri {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
