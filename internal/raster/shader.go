package raster

import (
	"image/color"

	"tri-rasterizer/internal/mathutil"
)

// Fragment is one covered sample handed to a Shader. Alpha, Beta and Gamma
// are the three edge function values at the sample center.
type Fragment struct {
	X, Y     int
	Object   int // index into the rendered object list
	Triangle int // triangle number within the object's geometry
	Alpha    float64
	Beta     float64
	Gamma    float64
}

// Shader picks the color of a fragment that passed the depth test.
type Shader func(f Fragment) RGB

// DefaultPalette holds one color per cube triangle.
var DefaultPalette = []RGB{
	{255, 0, 0},
	{0, 255, 0},
	{0, 0, 255},
	{255, 255, 0},
	{255, 0, 255},
	{0, 255, 255},
	{255, 128, 0},
	{128, 0, 255},
	{0, 128, 255},
	{255, 0, 128},
	{128, 255, 0},
	{255, 255, 255},
}

// DebugWeights writes the edge values straight into the color channels.
func DebugWeights() Shader {
	return ScaledWeights(255)
}

// ScaledWeights writes alpha, beta and gamma multiplied by scale into the
// color channels, saturating at 0 and 255.
func ScaledWeights(scale float64) Shader {
	return func(f Fragment) RGB {
		return RGB{
			saturate(f.Alpha * scale),
			saturate(f.Beta * scale),
			saturate(f.Gamma * scale),
		}
	}
}

// Palette colors each triangle flat, by triangle number modulo the palette.
func Palette(colors []RGB) Shader {
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	return func(f Fragment) RGB {
		return colors[f.Triangle%len(colors)]
	}
}

// Solid colors every fragment c.
func Solid(c color.Color) Shader {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	rgb := RGB{n.R, n.G, n.B}
	return func(Fragment) RGB {
		return rgb
	}
}

// saturate truncates toward zero like a float-to-byte cast, clamped to the byte range.
func saturate(v float64) uint8 {
	if v != v {
		return 0
	}
	return uint8(mathutil.Clamp(v, 0, 255))
}
