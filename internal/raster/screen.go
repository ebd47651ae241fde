package raster

import "tri-rasterizer/internal/mathutil"

// Mapper maps a clip-space vertex to raster space for a width×height target.
type Mapper func(clip mathutil.Vec4, width, height int) mathutil.Vec4

// ClipToRaster is the viewport mapping. The perspective divide is not done
// here: x and y stay scaled by w, and w is kept as the perspective weight
// the edge setup divides out.
func ClipToRaster(c mathutil.Vec4, width, height int) mathutil.Vec4 {
	return mathutil.Vec4{
		float64(width) * (c[0] + c[3]) / 2,
		float64(height) * (c[3] - c[1]) / 2,
		c[2],
		c[3],
	}
}

// FixedRaster is the plain normalized-to-pixel mapping used by the single
// triangle scene: y is not flipped and w is forced to 1.
func FixedRaster(c mathutil.Vec4, width, height int) mathutil.Vec4 {
	return mathutil.Vec4{
		float64(width) * (c[0] + 1) / 2,
		float64(height) * (c[1] + 1) / 2,
		c[2],
		1,
	}
}
