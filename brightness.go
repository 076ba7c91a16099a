package ssd1327

// Brightness pairs a contrast level with the matching second pre-charge
// period. The two registers are always programmed together; mismatched
// values wash out the panel at low duty cycles.
type Brightness struct {
	precharge byte
	contrast  byte
}

// Brightness presets, dimmest to brightest.
var (
	BrightnessDimmest   = Brightness{precharge: 0x01, contrast: 0x00}
	BrightnessDim       = Brightness{precharge: 0x04, contrast: 0x2F}
	BrightnessNormal    = Brightness{precharge: 0x04, contrast: 0x7F}
	BrightnessBright    = Brightness{precharge: 0x04, contrast: 0xBF}
	BrightnessBrightest = Brightness{precharge: 0x04, contrast: 0xFF}
)

// CustomBrightness returns a brightness with an explicit contrast level and
// the default second pre-charge period.
func CustomBrightness(contrast byte) Brightness {
	return Brightness{precharge: 0x04, contrast: contrast}
}
