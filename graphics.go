package ssd1327

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jkin8010/ssd1327/pixel"
)

// Graphics is a display mode with a local page-packed framebuffer. Drawing
// primitives mutate the buffer; Flush sends only the region that changed
// since the previous flush.
//
// Graphics implements [image/draw.Image], so the standard library draw
// package, font drawers and this module's draw package all render into it.
type Graphics struct {
	dev *Display
	buf *pixel.PageImage

	// Dirty rectangle in native (unrotated) buffer space, min inclusive and
	// max exclusive. min >= max on either axis means nothing changed.
	min image.Point
	max image.Point
}

// Graphics converts the display into buffered graphics mode. The basic
// Display must not be used afterwards.
func (d *Display) Graphics() *Graphics {
	g := &Graphics{
		dev: d,
		buf: pixel.NewPageImage(d.size.W, d.size.H),
	}
	g.markAllDirty()
	return g
}

func (g *Graphics) String() string {
	w, h := g.dev.Dimensions()
	return fmt.Sprintf("SSD1327 graphics %dx%d", w, h)
}

// Init runs the chip bring-up sequence. The next flush repaints the whole
// screen since the chip RAM content is unknown after reset.
func (g *Graphics) Init() error {
	if err := g.dev.Init(); err != nil {
		return err
	}
	g.markAllDirty()
	return nil
}

// SetRotation sets the display rotation.
func (g *Graphics) SetRotation(rotation Rotation) error {
	return g.dev.SetRotation(rotation)
}

// SetMirror toggles horizontal mirroring.
func (g *Graphics) SetMirror(mirror bool) error {
	return g.dev.SetMirror(mirror)
}

// SetBrightness changes the display brightness.
func (g *Graphics) SetBrightness(brightness Brightness) error {
	return g.dev.SetBrightness(brightness)
}

// SetContrast adjusts the contrast level.
func (g *Graphics) SetContrast(level uint8) error {
	return g.dev.SetContrast(level)
}

// Show toggles the display panel on or off.
func (g *Graphics) Show(show bool) error {
	return g.dev.Show(show)
}

// Reset performs the hardware reset sequence.
func (g *Graphics) Reset() error {
	return g.dev.Reset()
}

// Rotation returns the current rotation.
func (g *Graphics) Rotation() Rotation {
	return g.dev.Rotation()
}

// Dimensions returns the effective width and height under the current
// rotation.
func (g *Graphics) Dimensions() (w, h int) {
	return g.dev.Dimensions()
}

// Close turns the panel off and closes the connection.
func (g *Graphics) Close() error {
	return g.dev.Close()
}

// ColorModel implements image.Image.
func (g *Graphics) ColorModel() color.Model {
	return pixel.MonoModel
}

// Bounds implements image.Image, taking rotation into account.
func (g *Graphics) Bounds() image.Rectangle {
	w, h := g.dev.Dimensions()
	return image.Rect(0, 0, w, h)
}

// transform maps logical coordinates into native buffer coordinates. The
// chip remap register realizes the scan direction; only the axis swap is
// done in software.
func (g *Graphics) transform(x, y int) (int, int) {
	switch g.dev.rotation % 4 {
	case Rotate90, Rotate270:
		return y, x
	default:
		return x, y
	}
}

// Set implements draw.Image and grows the dirty region.
func (g *Graphics) Set(x, y int, c color.Color) {
	px, py := g.transform(x, y)
	if !(image.Point{X: px, Y: py}).In(g.buf.Rect) {
		return
	}
	g.buf.Set(px, py, c)
	g.grow(px, py)
}

// At implements image.Image.
func (g *Graphics) At(x, y int) color.Color {
	px, py := g.transform(x, y)
	return g.buf.At(px, py)
}

// SetPixel turns the pixel at (x, y) on or off.
func (g *Graphics) SetPixel(x, y int, on bool) {
	if on {
		g.Set(x, y, pixel.On)
	} else {
		g.Set(x, y, pixel.Off)
	}
}

// Buffer exposes the underlying framebuffer image.
func (g *Graphics) Buffer() *pixel.PageImage {
	return g.buf
}

// Clear blanks the framebuffer. The display itself changes on the next
// Flush.
func (g *Graphics) Clear() {
	g.buf.Clear()
	g.markAllDirty()
}

func (g *Graphics) grow(x, y int) {
	if x < g.min.X {
		g.min.X = x
	}
	if y < g.min.Y {
		g.min.Y = y
	}
	if x+1 > g.max.X {
		g.max.X = x + 1
	}
	if y+1 > g.max.Y {
		g.max.Y = y + 1
	}
}

func (g *Graphics) markAllDirty() {
	g.min = image.Pt(0, 0)
	g.max = image.Pt(g.dev.size.W, g.dev.size.H)
}

func (g *Graphics) markClean() {
	g.min = image.Pt(g.dev.size.W, g.dev.size.H)
	g.max = image.Pt(0, 0)
}

// Flush sends the dirty region of the framebuffer to the display, page by
// page. The dirty rows are widened to whole pages since pages are the
// transfer unit. The address window is reprogrammed to the same rectangle
// right before the data so the pages land where they changed; without that
// the pixels would silently end up in the wrong position. A clean buffer
// flushes nothing.
func (g *Graphics) Flush() error {
	if g.min.X >= g.max.X || g.min.Y >= g.max.Y {
		return nil
	}

	var (
		start = image.Pt(g.min.X, g.min.Y&^7)
		end   = image.Pt(min(g.max.X, g.dev.size.W), min((g.max.Y+7)&^7, g.dev.size.H))
	)
	if err := g.dev.SetDrawArea(start, end); err != nil {
		return err
	}
	if err := flushChunks(g.dev.c, g.buf.Pix, g.buf.Stride, start, image.Pt(end.X, end.Y-1)); err != nil {
		return err
	}
	g.markClean()
	return nil
}

var _ DisplayConfig = (*Graphics)(nil)
