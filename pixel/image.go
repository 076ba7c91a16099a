package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can clear and fill itself.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is the container used by the image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pages.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// PageImage is a 1-bit per pixel monochrome image packed 8 rows per byte
// with the least significant bit on top. This is the native page layout of
// SSD1xxx OLED display RAM: byte i of a page holds column i, bit j of that
// byte holds row page*8+j.
type PageImage struct {
	Buffer
}

// NewPageImage returns a zeroed page-packed image. The buffer covers
// ceil(h/8) whole pages of w bytes each.
func NewPageImage(w, h int) *PageImage {
	pages := (h + 7) / 8
	return &PageImage{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, pages*w),
			Stride: w,
		},
	}
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

// PixOffset returns the index of the byte holding the pixel at (x, y).
func (p *PageImage) PixOffset(x, y int) int {
	return y/8*p.Stride + x
}

func (p *PageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	return Mono{
		On: p.Pix[pos]&bit != 0,
	}
}

func (p *PageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/8*p.Stride + x
		bit = byte(1) << uint(y&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

func (p *PageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}
