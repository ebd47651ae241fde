package imagesink

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func gradient() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 17, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 15), uint8(y * 28), uint8((x + y) * 7), 255})
		}
	}
	return img
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := gradient()
	dir := t.TempDir()
	for _, name := range []string{"a.png", "a.webp", "a.bmp", "a.tiff", "a.tga", "nested/dir/a.PNG"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, src); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got.Bounds().Size() != src.Bounds().Size() {
				t.Fatalf("size = %v, want %v", got.Bounds().Size(), src.Bounds().Size())
			}
			b := got.Bounds()
			for y := 0; y < 9; y++ {
				for x := 0; x < 17; x++ {
					want := src.NRGBAAt(x, y)
					c := color.NRGBAModel.Convert(got.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
					if c != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, c, want)
					}
				}
			}
		})
	}
}

func TestUnsupportedFormat(t *testing.T) {
	if _, err := FormatFor("frame.jpg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFor(jpg) err = %v", err)
	}
	if err := Save(filepath.Join(t.TempDir(), "frame"), gradient()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Save without extension err = %v", err)
	}
	if err := Encode(&bytes.Buffer{}, gradient(), Format("gif")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(gif) err = %v", err)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	for _, f := range []Format{PNG, WebP, BMP, TIFF, TGA} {
		var a, b bytes.Buffer
		if err := Encode(&a, gradient(), f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if err := Encode(&b, gradient(), f); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !bytes.Equal(a.Bytes(), b.Bytes()) {
			t.Errorf("%s output differs between runs", f)
		}
	}
}
