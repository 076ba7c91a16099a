package ssd1327

// Rotation defines the logical pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// remap returns the remap register value and display start line that realize
// the rotation on the panel. The four pairs are fixed; rotation never moves
// pixel data, it only reconfigures the chip's scan directions.
func (r Rotation) remap() (remap, startLine byte) {
	switch r % 4 {
	case Rotate90:
		return 0b0101_1000, 0x00
	case Rotate180:
		return 0b0001_0101, 0x00
	case Rotate270:
		return 0b0001_0111, 0x78
	default:
		return 0b0101_1100, 0x00
	}
}

// mirrorRemap is remap with the column remap bit flipped, leaving the stored
// rotation untouched. Only the unrotated orientation has a distinct mirror
// pattern on this panel.
func (r Rotation) mirrorRemap() (remap, startLine byte) {
	if r%4 == NoRotation {
		return 0b0101_1110, 0x00
	}
	return r.remap()
}

// dimensions returns the effective display size under the rotation.
func (r Rotation) dimensions(size Size) (w, h int) {
	if r%4 == Rotate90 || r%4 == Rotate270 {
		return size.H, size.W
	}
	return size.W, size.H
}
