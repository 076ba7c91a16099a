package ssd1327

// Command byte layouts per the SSD1327 datasheet, chapter 9. Every command
// encodes to a fixed 7-byte buffer (1 opcode + at most 6 data bytes) plus the
// number of valid bytes, so encoding never allocates and never fails.
//
// Multi-bit fields are masked to their register width before packing. The
// column and row address commands deliberately pass their arguments through
// unmasked; the chip ignores illegal high bits itself.

// Command is a single encoded controller command.
type Command struct {
	buf [7]byte
	n   int
}

// Bytes returns the encoded command bytes.
func (c Command) Bytes() []byte {
	return c.buf[:c.n]
}

// Send transmits the command through the sink as a command-class payload.
func (c Command) Send(conn Conn) error {
	return conn.Command(c.buf[0], c.buf[1:c.n]...)
}

// ColumnAddress sets the column start and end address (0x15). Valid values
// are 0-63 in horizontal or vertical addressing mode; values are not masked
// at this layer.
func ColumnAddress(start, end byte) Command {
	return Command{buf: [7]byte{0x15, start, end}, n: 3}
}

// RowAddress sets the row start and end address (0x75). Valid values are
// 0-127; values are not masked at this layer.
func RowAddress(start, end byte) Command {
	return Command{buf: [7]byte{0x75, start, end}, n: 3}
}

// Contrast sets the contrast level (0x81). Higher is brighter, default 0x7F.
func Contrast(level byte) Command {
	return Command{buf: [7]byte{0x81, level}, n: 2}
}

// Remap sets the segment/COM remap register (0xA0). See GenerateRemap.
func Remap(value byte) Command {
	return Command{buf: [7]byte{0xA0, value}, n: 2}
}

// DisplayStartLine sets the display start line (0xA1).
func DisplayStartLine(line byte) Command {
	return Command{buf: [7]byte{0xA1, line}, n: 2}
}

// DisplayOffset sets the vertical display offset (0xA2).
func DisplayOffset(offset byte) Command {
	return Command{buf: [7]byte{0xA2, offset}, n: 2}
}

// Mode is one of the four display modes (0xA4-0xA7).
type Mode byte

// Supported display modes.
const (
	ModeNormal Mode = 0xA4
	ModeAllOn  Mode = 0xA5
	ModeAllOff Mode = 0xA6
	ModeInvert Mode = 0xA7
)

// DisplayMode selects the display mode.
func DisplayMode(mode Mode) Command {
	return Command{buf: [7]byte{(byte(mode) & 0xA7) | 0xA4}, n: 1}
}

// MultiplexRatio sets the multiplex ratio (0xA8), range 16-128, reset 128.
func MultiplexRatio(ratio byte) Command {
	return Command{buf: [7]byte{0xA8, ratio}, n: 2}
}

// VoltageRegulator enables or disables the internal Vdd regulator (0xAB,
// function selection A).
func VoltageRegulator(enable bool) Command {
	return Command{buf: [7]byte{0xAB, boolByte(enable)}, n: 2}
}

// DisplayOn turns the display panel on or off (0xAE/0xAF).
func DisplayOn(on bool) Command {
	return Command{buf: [7]byte{0xAE | boolByte(on)}, n: 1}
}

// Phase is a phase length setting for command 0xB1.
type Phase byte

// Phase length presets.
const (
	PhaseReset     Phase = 0x0F // phase 1: reset
	PhasePreCharge Phase = 0xF0 // phase 2: pre-charge
	PhaseAuto      Phase = 0xF1
)

// PhaseLength sets the phase 1 and 2 period lengths (0xB1).
func PhaseLength(phase Phase) Command {
	return Command{buf: [7]byte{0xB1, byte(phase)}, n: 2}
}

// ClockFrequency is a named front clock divide ratio / oscillator frequency
// preset for command 0xB3.
type ClockFrequency byte

// Frame frequency presets.
const (
	Clock80Hz  ClockFrequency = 0xC1
	Clock90Hz  ClockFrequency = 0xE1
	Clock100Hz ClockFrequency = 0x00
	Clock110Hz ClockFrequency = 0x30
	Clock120Hz ClockFrequency = 0x50
	Clock130Hz ClockFrequency = 0x70
)

// ClockDivide sets the display clock divide ratio and oscillator frequency
// (0xB3).
func ClockDivide(freq ClockFrequency) Command {
	return Command{buf: [7]byte{0xB3, byte(freq)}, n: 2}
}

// SetGPIO sets the GPIO0 and GPIO1 pin output levels (0xB5).
func SetGPIO(value byte) Command {
	return Command{buf: [7]byte{0xB5, value}, n: 2}
}

// SecondPreChargePeriod sets the second pre-charge period (0xB6), 0-15 DCLKs.
func SecondPreChargePeriod(period byte) Command {
	return Command{buf: [7]byte{0xB6, period}, n: 2}
}

// GrayScaleTable programs a gray scale table entry (0xB8). The value is
// masked to the register's 4 significant bits.
func GrayScaleTable(value byte) Command {
	return Command{buf: [7]byte{0xB8, value & 0x0F}, n: 2}
}

// DefaultGrayScaleTable selects the built-in linear gray scale table (0xB9).
func DefaultGrayScaleTable() Command {
	return Command{buf: [7]byte{0xB9}, n: 1}
}

// PreChargeLevel is a pre-charge voltage preset for command 0xBC.
type PreChargeLevel byte

// Pre-charge voltage presets, as a fraction of Vcc.
const (
	PreCharge020   PreChargeLevel = 0x00 // 0.20 × Vcc
	PreCharge050   PreChargeLevel = 0x05 // 0.50 × Vcc
	PreCharge0613  PreChargeLevel = 0x07 // 0.613 × Vcc
	PreChargeVCOMH PreChargeLevel = 0x08
)

// PreChargeVoltage sets the pre-charge voltage level (0xBC).
func PreChargeVoltage(level PreChargeLevel) Command {
	return Command{buf: [7]byte{0xBC, byte(level)}, n: 2}
}

// VCOMHLevel is a COM deselect voltage preset for command 0xBE.
type VCOMHLevel byte

// VCOMH deselect levels, as a fraction of Vcc.
const (
	VCOMH072 VCOMHLevel = 0b000 // 0.72 × Vcc
	VCOMH082 VCOMHLevel = 0b101 // 0.82 × Vcc
	VCOMH086 VCOMHLevel = 0b111 // 0.86 × Vcc
)

// VCOMHVoltage sets the VCOMH deselect voltage (0xBE).
func VCOMHVoltage(level VCOMHLevel) Command {
	return Command{buf: [7]byte{0xBE, byte(level)}, n: 2}
}

// FunctionSelectionB sets function selection B (0xD5).
func FunctionSelectionB(value byte) Command {
	return Command{buf: [7]byte{0xD5, value}, n: 2}
}

// CommandLock locks or unlocks the command interface (0xFD). The lock flag
// occupies bit 2; the remaining bits are fixed at 0x12.
func CommandLock(lock bool) Command {
	return Command{buf: [7]byte{0xFD, boolByte(lock)<<2 | 0x12}, n: 2}
}

// ScrollDirection is the horizontal scroll direction.
type ScrollDirection byte

// Scroll directions.
const (
	ScrollLeft  ScrollDirection = 0
	ScrollRight ScrollDirection = 1
)

// FrameInterval is the number of frames between horizontal scroll steps.
type FrameInterval byte

// Scroll step intervals.
const (
	Frames2   FrameInterval = 0b111
	Frames3   FrameInterval = 0b100
	Frames4   FrameInterval = 0b101
	Frames5   FrameInterval = 0b110
	Frames6   FrameInterval = 0b000
	Frames32  FrameInterval = 0b001
	Frames64  FrameInterval = 0b010
	Frames256 FrameInterval = 0b011
)

// HorizontalScrollSetup configures horizontal scrolling (0x26/0x27). Row
// values are masked to 7 bits and column values to 6 bits so illegal bits
// never leak into adjacent fields.
func HorizontalScrollSetup(dir ScrollDirection, colStart, colEnd, rowStart, rowEnd byte, interval FrameInterval) Command {
	return Command{
		buf: [7]byte{
			0x26 | byte(dir),
			0x00,
			rowStart & 0x7F,
			byte(interval),
			rowEnd & 0x7F,
			colStart & 0x3F,
			colEnd & 0x3F,
		},
		n: 7,
	}
}

// EnableScroll activates or deactivates scrolling (0x2E/0x2F).
func EnableScroll(enable bool) Command {
	return Command{buf: [7]byte{0x2E | boolByte(enable)}, n: 1}
}

// GenerateRemap builds the remap register value (0xA0) from its individual
// configuration flags. The result is masked to the register's 7 significant
// bits; bit 7 is always clear.
func GenerateRemap(colRemap, nibbleRemap, addrIncrement, verticalScale, comRemap, horizontalScale, comSplitOddEven bool) byte {
	return 0x7F & (boolByte(colRemap)<<0 |
		boolByte(nibbleRemap)<<1 |
		boolByte(addrIncrement)<<2 |
		boolByte(verticalScale)<<3 |
		boolByte(comRemap)<<4 |
		boolByte(horizontalScale)<<5 |
		boolByte(comSplitOddEven)<<6)
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
