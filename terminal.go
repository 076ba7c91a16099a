package ssd1327

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jkin8010/ssd1327/pixel"
)

// Terminal glyph cell size in pixels. A cell spans two display pages, so
// every glyph write transfers exactly 16 bytes.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Terminal is a bufferless display mode that writes text glyph by glyph at a
// cursor position, like a simple terminal. No framebuffer is kept; each
// glyph is rasterized into a single scratch cell and sent immediately.
type Terminal struct {
	dev  *Display
	face font.Face
	cell *pixel.PageImage

	col, row   int
	cols, rows int
}

// Terminal converts the display into terminal mode. The basic Display must
// not be used afterwards.
func (d *Display) Terminal() *Terminal {
	return &Terminal{
		dev:  d,
		face: basicfont.Face7x13,
		cell: pixel.NewPageImage(cellWidth, cellHeight),
		cols: d.size.W / cellWidth,
		rows: d.size.H / cellHeight,
	}
}

func (t *Terminal) String() string {
	return fmt.Sprintf("SSD1327 terminal %dx%d", t.cols, t.rows)
}

// Init runs the chip bring-up sequence.
func (t *Terminal) Init() error {
	return t.dev.Init()
}

// SetRotation sets the display rotation.
func (t *Terminal) SetRotation(rotation Rotation) error {
	return t.dev.SetRotation(rotation)
}

// SetBrightness changes the display brightness.
func (t *Terminal) SetBrightness(brightness Brightness) error {
	return t.dev.SetBrightness(brightness)
}

// Show toggles the display panel on or off.
func (t *Terminal) Show(show bool) error {
	return t.dev.Show(show)
}

// Reset performs the hardware reset sequence.
func (t *Terminal) Reset() error {
	return t.dev.Reset()
}

// Close turns the panel off and closes the connection.
func (t *Terminal) Close() error {
	return t.dev.Close()
}

// SetFont changes the glyph face. Glyphs wider than 8 or taller than 16
// pixels are clipped to the cell.
func (t *Terminal) SetFont(face font.Face) {
	t.face = face
}

// Size returns the terminal size in glyph cells.
func (t *Terminal) Size() (cols, rows int) {
	return t.cols, t.rows
}

// Position returns the cursor cell.
func (t *Terminal) Position() (col, row int) {
	return t.col, t.row
}

// SetPosition moves the cursor to the given glyph cell, clamping into range.
func (t *Terminal) SetPosition(col, row int) {
	t.col = max(0, min(col, t.cols-1))
	t.row = max(0, min(row, t.rows-1))
}

// Clear blanks the whole screen and homes the cursor.
func (t *Terminal) Clear() error {
	if err := t.dev.SetDrawArea(image.Pt(0, 0), image.Pt(t.dev.size.W, t.dev.size.H)); err != nil {
		return err
	}
	if err := t.dev.c.Data(make([]byte, t.dev.size.bufferSize())...); err != nil {
		return err
	}
	t.col, t.row = 0, 0
	return nil
}

// Write implements io.Writer so the terminal works with fmt.Fprintf and
// friends. The byte count only reflects complete writes; a transport error
// aborts mid-string.
func (t *Terminal) Write(p []byte) (int, error) {
	if err := t.WriteString(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString writes s at the cursor, advancing it glyph by glyph. '\n'
// moves to the start of the next line, '\r' to the start of the current
// line; writing past the right edge wraps, and past the bottom wraps back to
// the top.
func (t *Terminal) WriteString(s string) error {
	for _, r := range s {
		switch r {
		case '\n':
			t.col = 0
			t.nextRow()
		case '\r':
			t.col = 0
		default:
			if err := t.writeGlyph(r); err != nil {
				return err
			}
			t.advance()
		}
	}
	return nil
}

func (t *Terminal) advance() {
	if t.col++; t.col >= t.cols {
		t.col = 0
		t.nextRow()
	}
}

func (t *Terminal) nextRow() {
	if t.row++; t.row >= t.rows {
		t.row = 0
	}
}

// writeGlyph rasterizes r into the scratch cell and sends the cell's two
// pages to the cursor position. The cell's draw area is programmed first so
// the glyph lands in the right place.
func (t *Terminal) writeGlyph(r rune) error {
	t.cell.Clear()

	drawer := font.Drawer{
		Dst:  t.cell,
		Src:  image.NewUniform(pixel.On),
		Face: t.face,
		Dot:  fixed.P(0, t.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(string(r))

	var (
		x0 = t.col * cellWidth
		y0 = t.row * cellHeight
	)
	if err := t.dev.SetDrawArea(image.Pt(x0, y0), image.Pt(x0+cellWidth, y0+cellHeight)); err != nil {
		return err
	}
	return flushChunks(t.dev.c, t.cell.Pix, t.cell.Stride, image.Pt(0, 0), image.Pt(cellWidth, cellHeight-1))
}

var _ DisplayConfig = (*Terminal)(nil)
