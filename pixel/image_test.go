package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestPageImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewPageImage(size.X, size.Y)
	}, MonoModel)
}

func TestPageImageLayout(t *testing.T) {
	i := NewPageImage(16, 16)

	if v := len(i.Pix); v != 32 {
		t.Fatalf("expected 32 byte buffer for 16x16, got %d", v)
	}

	// Bit j of byte (page*stride + x) is row page*8+j.
	i.Set(3, 0, On)
	if i.Pix[3] != 0x01 {
		t.Errorf("expected pixel (3,0) in byte 3 bit 0, buffer byte is %#02x", i.Pix[3])
	}
	i.Set(3, 7, On)
	if i.Pix[3] != 0x81 {
		t.Errorf("expected pixel (3,7) in byte 3 bit 7, buffer byte is %#02x", i.Pix[3])
	}
	i.Set(5, 9, On)
	if v := i.PixOffset(5, 9); v != 21 {
		t.Errorf("expected pixel (5,9) at offset 21, got %d", v)
	}
	if i.Pix[21] != 0x02 {
		t.Errorf("expected pixel (5,9) in byte 21 bit 1, buffer byte is %#02x", i.Pix[21])
	}
	i.Set(3, 0, Off)
	if i.Pix[3] != 0x80 {
		t.Errorf("expected pixel (3,0) cleared, buffer byte is %#02x", i.Pix[3])
	}
}

func TestPageImageRoundsUpToWholePages(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{128, 128, 2048},
		{128, 64, 1024},
		{128, 63, 1024},
		{8, 1, 8},
		{16, 9, 32},
	}
	for _, test := range tests {
		if v := len(NewPageImage(test.w, test.h).Pix); v != test.want {
			t.Errorf("expected %dx%d buffer to be %d bytes, got %d", test.w, test.h, test.want, v)
		}
	}
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 64),
		image.Pt(128, 128),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := monoModel(i.At(x, y)); v != Off {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(256)),
		G: uint8(rand.Intn(256)),
		B: uint8(rand.Intn(256)),
		A: 0xff,
	}
}
