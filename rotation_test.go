package ssd1327

import "testing"

func TestRotationRemap(t *testing.T) {
	tests := []struct {
		rotation  Rotation
		remap     byte
		startLine byte
	}{
		{NoRotation, 0b0101_1100, 0x00},
		{Rotate90, 0b0101_1000, 0x00},
		{Rotate180, 0b0001_0101, 0x00},
		{Rotate270, 0b0001_0111, 0x78},
	}
	for _, tt := range tests {
		t.Run(tt.rotation.String(), func(it *testing.T) {
			remap, startLine := tt.rotation.remap()
			if remap != tt.remap {
				it.Errorf("expected remap %#08b, got %#08b", tt.remap, remap)
			}
			if startLine != tt.startLine {
				it.Errorf("expected start line %#02x, got %#02x", tt.startLine, startLine)
			}
		})
	}
}

func TestRotationMirrorRemap(t *testing.T) {
	remap, startLine := NoRotation.mirrorRemap()
	if remap != 0b0101_1110 || startLine != 0x00 {
		t.Errorf("expected mirrored remap 0b0101_1110/0x00, got %#08b/%#02x", remap, startLine)
	}

	// Rotated orientations have no distinct mirror pattern.
	for _, r := range []Rotation{Rotate90, Rotate180, Rotate270} {
		mr, ms := r.mirrorRemap()
		rr, rs := r.remap()
		if mr != rr || ms != rs {
			t.Errorf("%s: expected mirror remap to match remap, got %#08b/%#02x", r, mr, ms)
		}
	}
}

func TestRotationDimensions(t *testing.T) {
	size := Size{W: 128, H: 64}
	for _, r := range []Rotation{NoRotation, Rotate180} {
		if w, h := r.dimensions(size); w != 128 || h != 64 {
			t.Errorf("%s: expected 128x64, got %dx%d", r, w, h)
		}
	}
	for _, r := range []Rotation{Rotate90, Rotate270} {
		if w, h := r.dimensions(size); w != 64 || h != 128 {
			t.Errorf("%s: expected 64x128, got %dx%d", r, w, h)
		}
	}
}

func TestRotationString(t *testing.T) {
	tests := []struct {
		rotation Rotation
		want     string
	}{
		{NoRotation, "0°"},
		{Rotate90, "90°"},
		{Rotate180, "180°"},
		{Rotate270, "270°"},
		{Rotation(5), "90°"},
	}
	for _, tt := range tests {
		if got := tt.rotation.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
