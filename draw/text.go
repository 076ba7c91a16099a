package draw

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Text draws s with its baseline origin at dot using the given face.
func Text(dst Image, face font.Face, dot image.Point, c color.Color, s string) {
	drawer := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	drawer.DrawString(s)
}

// TextWidth returns the advance of s in pixels for the given face.
func TextWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LoadFontFace parses TrueType font data and returns a face with the given
// point size at 72 DPI.
func LoadFontFace(data []byte, points float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size: points,
	}), nil
}
