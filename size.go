package ssd1327

// Size is the native panel size in pixels. It is fixed for the lifetime of a
// display instance.
type Size struct {
	W int
	H int
}

// Common panel sizes.
var (
	Size128x128 = Size{W: 128, H: 128}
	Size128x64  = Size{W: 128, H: 64}
)

// configure programs the multiplex ratio and the full-panel address window.
func (s Size) configure(c Conn) error {
	if err := MultiplexRatio(byte(s.H - 1)).Send(c); err != nil {
		return err
	}
	if err := ColumnAddress(0, byte(s.W-1)).Send(c); err != nil {
		return err
	}
	return RowAddress(0, byte(s.H-1)).Send(c)
}

// bufferSize is the page-packed framebuffer size in bytes: one bit per pixel,
// 8 rows per byte, rounded up to whole pages.
func (s Size) bufferSize() int {
	return (s.H + 7) / 8 * s.W
}
