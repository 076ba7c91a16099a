// Package pixel implements the 1-bit color model and page-packed image
// layout used by SSD1xxx OLED display RAM, compatible with Go's native
// [image/color.Color] and [image/draw.Image] interfaces.
package pixel
