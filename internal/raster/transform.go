package raster

import "tri-rasterizer/internal/mathutil"

// Transform carries the scene-wide camera matrices.
type Transform struct {
	Projection mathutil.Mat4
	View       mathutil.Mat4
}

// ModelViewProjection returns projection · view · model.
func (t Transform) ModelViewProjection(model mathutil.Mat4) mathutil.Mat4 {
	return t.Projection.Mul(t.View).Mul(model)
}

// Clip maps a model-space position to clip space.
func (t Transform) Clip(model mathutil.Mat4, p mathutil.Vec3) mathutil.Vec4 {
	return t.ModelViewProjection(model).MulVec4(p.Point())
}
