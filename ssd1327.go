// Package ssd1327 contains a driver for the Solomon Systech SSD1327 OLED
// display controller, driven as a monochrome page-packed framebuffer over
// I²C or SPI.
//
// A display starts in basic mode, which only exposes low-level primitives.
// Use [Display.Graphics] for a framebuffered mode with dirty-region flushing
// and [image/draw] integration, or [Display.Terminal] for a bufferless
// cursor-addressed text mode. Conversion is one way; the basic Display must
// not be used afterwards.
//
// A Display owns its Conn exclusively. Operations are blocking and must not
// be interleaved from concurrent goroutines; the chip has no transaction
// framing and interleaved register writes corrupt its state.
package ssd1327

import (
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio"
)

var debug bool

func init() {
	debug = os.Getenv("SSD1327_DEBUG") != ""
}

// DisplayConfig is the configuration capability shared by every operating
// mode.
type DisplayConfig interface {
	// Init runs the full chip bring-up sequence.
	Init() error

	// SetRotation adjusts the pixel rotation.
	SetRotation(Rotation) error
}

// Display drives the controller in basic mode, with only low-level
// primitives available.
type Display struct {
	c        Conn
	size     Size
	rotation Rotation
	halted   bool
}

// New creates a basic display on top of the given connection.
func New(c Conn, size Size, rotation Rotation) *Display {
	return &Display{
		c:        c,
		size:     size,
		rotation: rotation,
	}
}

func (d *Display) String() string {
	w, h := d.Dimensions()
	return fmt.Sprintf("SSD1327 OLED %dx%d", w, h)
}

// Close turns the panel off and closes the connection.
func (d *Display) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			_ = d.c.Close()
			return err
		}
		d.halted = true
	}
	return d.c.Close()
}

func (d *Display) commands(cmds ...Command) error {
	for _, cmd := range cmds {
		if err := cmd.Send(d.c); err != nil {
			return err
		}
	}
	return nil
}

// Init fully reprograms the chip registers. The chip retains nothing across
// reset, so the whole sequence runs on every call. The first transport error
// aborts the sequence; the chip is then left partially configured.
func (d *Display) Init() error {
	if debug {
		log.Printf("ssd1327: initialising display with rotation %s", d.rotation)
	}

	if err := DisplayOn(false).Send(d.c); err != nil {
		return err
	}
	if err := d.size.configure(d.c); err != nil {
		return err
	}
	if err := d.SetRotation(d.rotation); err != nil {
		return err
	}
	if err := d.commands(
		DisplayOffset(0x00),
		DisplayMode(ModeNormal),
		PhaseLength(PhaseAuto),
		ClockDivide(Clock100Hz),
		VoltageRegulator(true),
	); err != nil {
		return err
	}
	if err := d.SetBrightness(BrightnessNormal); err != nil {
		return err
	}
	return d.commands(
		VCOMHVoltage(VCOMH082),
		PreChargeVoltage(PreCharge050),
		FunctionSelectionB(0x62),
		CommandLock(false),
		HorizontalScrollSetup(ScrollLeft, 0, 0x3F, 0, 0x7F, Frames2),
		EnableScroll(false),
		DisplayOn(true),
	)
}

// Reset performs the hardware reset sequence on connections wired with a
// reset pin. The timing is fixed by the chip, not configurable.
func (d *Display) Reset() error {
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	time.Sleep(1 * time.Millisecond)
	if err := d.c.Reset(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return d.c.Reset(gpio.High)
}

// Rotation returns the current rotation.
func (d *Display) Rotation() Rotation {
	return d.rotation
}

// SetRotation reprograms the remap register and display start line for the
// given rotation and stores it.
func (d *Display) SetRotation(rotation Rotation) error {
	d.rotation = rotation
	remap, startLine := rotation.remap()
	return d.commands(Remap(remap), DisplayStartLine(startLine))
}

// SetMirror flips the panel horizontally without changing the stored
// rotation. Disabling the mirror re-applies the plain rotation mapping.
func (d *Display) SetMirror(mirror bool) error {
	if !mirror {
		return d.SetRotation(d.rotation)
	}
	remap, startLine := d.rotation.mirrorRemap()
	return d.commands(Remap(remap), DisplayStartLine(startLine))
}

// Dimensions returns the display width and height, taking the current
// rotation into account.
func (d *Display) Dimensions() (w, h int) {
	return d.rotation.dimensions(d.size)
}

// Show toggles the display panel on or off. The chip retains its RAM and can
// be drawn to while off.
func (d *Display) Show(show bool) error {
	return DisplayOn(show).Send(d.c)
}

// SetBrightness changes the display brightness.
func (d *Display) SetBrightness(brightness Brightness) error {
	return d.commands(
		SecondPreChargePeriod(brightness.precharge),
		Contrast(brightness.contrast),
	)
}

// SetContrast adjusts the contrast level alone.
func (d *Display) SetContrast(level uint8) error {
	return Contrast(level).Send(d.c)
}

// SetDrawArea programs the chip address window that the next data write will
// populate. start is inclusive and end exclusive per axis; the chip expects
// inclusive bounds, so the end values are translated with a saturating -1.
func (d *Display) SetDrawArea(start, end image.Point) error {
	return d.commands(
		ColumnAddress(byte(start.X), inclusiveEnd(end.X)),
		RowAddress(byte(start.Y), inclusiveEnd(end.Y)),
	)
}

func inclusiveEnd(v int) byte {
	if v <= 0 {
		return 0
	}
	return byte(v - 1)
}

// SetColumn sets the column window to [column, width-1], keeping the full
// remaining row addressable.
func (d *Display) SetColumn(column int) error {
	return ColumnAddress(byte(column), byte(d.size.W-1)).Send(d.c)
}

// SetRow sets the row window to [row, height-1].
func (d *Display) SetRow(row int) error {
	return RowAddress(byte(row), byte(d.size.H-1)).Send(d.c)
}

// Clear blanks the entire display RAM.
func (d *Display) Clear() error {
	if err := d.SetDrawArea(image.Pt(1, 1), image.Pt(d.size.W, d.size.H)); err != nil {
		return err
	}
	return d.c.Data(make([]byte, d.size.bufferSize())...)
}

// Draw sends a raw page-packed buffer to the display with no windowing.
func (d *Display) Draw(buffer []byte) error {
	return d.c.Data(buffer...)
}

// BoundedDraw sends only the pages and columns of buffer that cover the
// rectangle between upperLeft and lowerRight. The caller must program the
// matching draw area first (see SetDrawArea), otherwise the pixels land in
// the wrong screen position.
func (d *Display) BoundedDraw(buffer []byte, stride int, upperLeft, lowerRight image.Point) error {
	return flushChunks(d.c, buffer, stride, upperLeft, lowerRight)
}

// Scroll starts horizontal scrolling of the row band between startRow and
// endRow, stepping every interval frames.
func (d *Display) Scroll(dir ScrollDirection, startRow, endRow int, interval FrameInterval) error {
	return d.commands(
		HorizontalScrollSetup(dir, 0, 0x3F, byte(startRow), byte(endRow), interval),
		EnableScroll(true),
	)
}

// StopScroll stops any scrolling previously set up.
func (d *Display) StopScroll() error {
	return EnableScroll(false).Send(d.c)
}

// flushChunks streams the pages of a page-packed buffer that cover the
// rectangle between upperLeft (inclusive) and lowerRight, one data write per
// page, columns [upperLeft.X, lowerRight.X). Pages are 8 rows tall; a
// rectangle that does not start or end on a page boundary transfers the
// whole covering pages. Pages past the end of the buffer are skipped.
func flushChunks(c Conn, buffer []byte, stride int, upperLeft, lowerRight image.Point) error {
	var (
		startPage = upperLeft.Y / 8
		numPages  = (lowerRight.Y-upperLeft.Y)/8 + 1
	)
	for page := startPage; page < startPage+numPages; page++ {
		off := page * stride
		if off >= len(buffer) {
			break
		}
		row := buffer[off:min(off+stride, len(buffer))]
		if err := c.Data(row[upperLeft.X:lowerRight.X]...); err != nil {
			return err
		}
	}
	return nil
}

var _ DisplayConfig = (*Display)(nil)
