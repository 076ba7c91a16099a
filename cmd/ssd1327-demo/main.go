// Command ssd1327-demo exercises an SSD1327 OLED display connected over I²C
// or SPI.
//
// Usage:
//
//	ssd1327-demo [flags] <i2c|spi> <graphics|terminal|basic>
package main

import (
	"flag"
	"fmt"
	"image"
	"math"
	"os"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/jkin8010/ssd1327"
	"github.com/jkin8010/ssd1327/draw"
	"github.com/jkin8010/ssd1327/pixel"
)

func main() {
	widthFlag := flag.Int("width", 128, "Display width")
	heightFlag := flag.Int("height", 128, "Display height")
	i2cDeviceFlag := flag.Int("i2c-dev", ssd1327.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(ssd1327.DefaultI2CConfig.Addr), "I²C device address")
	spiPortFlag := flag.String("spi-port", "", "SPI port name (default: use first available)")
	spiSpeedFlag := flag.Uint("spi-speed", uint(ssd1327.DefaultSPIConfig.SpeedHz), "SPI clock in Hz")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "", "Chip enable GPIO pin (optional)")
	rotateFlag := flag.String("rotate", "", "Display rotation")
	mirrorFlag := flag.Bool("mirror", false, "Mirror the display horizontally")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <i2c|spi> <graphics|terminal|basic>\n", os.Args[0])
		os.Exit(1)
	}

	var rotation ssd1327.Rotation
	switch *rotateFlag {
	case "", "no", "0":
		rotation = ssd1327.NoRotation
	case "90", "right", "cw":
		rotation = ssd1327.Rotate90
	case "180", "flip":
		rotation = ssd1327.Rotate180
	case "270", "left", "ccw":
		rotation = ssd1327.Rotate270
	default:
		fatal(fmt.Errorf("invalid rotation %q specified", *rotateFlag))
	}
	fmt.Printf("using rotation: %s\n", rotation)

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn  ssd1327.Conn
		isSPI bool
		err   error
	)
	switch busType := flag.Arg(0); busType {
	case "i2c":
		conn, err = ssd1327.OpenI2C(&ssd1327.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		isSPI = true
		config := &ssd1327.SPIConfig{
			Port:    *spiPortFlag,
			SpeedHz: uint32(*spiSpeedFlag),
			Reset:   gpioreg.ByName(*resetPinFlag),
			DC:      gpioreg.ByName(*dcPinFlag),
		}
		if *cePinFlag != "" {
			config.CS = gpioreg.ByName(*cePinFlag)
		}
		conn, err = ssd1327.OpenSPI(config)
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	fmt.Printf("using connection: %s\n", conn)

	display := ssd1327.New(conn, ssd1327.Size{W: *widthFlag, H: *heightFlag}, rotation)
	if isSPI {
		if err = display.Reset(); err != nil {
			fatal(err)
		}
	}

	switch mode := flag.Arg(1); mode {
	case "graphics":
		err = graphicsDemo(display, *mirrorFlag)
	case "terminal":
		err = terminalDemo(display)
	case "basic":
		err = basicDemo(display)
	default:
		err = fmt.Errorf("unsupported mode %q", mode)
	}
	if err != nil {
		fatal(err)
	}
}

func graphicsDemo(display *ssd1327.Display, mirror bool) error {
	g := display.Graphics()
	if err := g.Init(); err != nil {
		return err
	}
	if mirror {
		if err := g.SetMirror(true); err != nil {
			return err
		}
	}
	fmt.Printf("using driver: %s\n", g)

	bounds := g.Bounds()

	// Border, title and a scene rendered off-screen with gg.
	draw.Rectangle(g, bounds, pixel.On)
	draw.Text(g, basicfont.Face7x13, image.Pt(4, 14), pixel.On, "SSD1327")

	dc := gg.NewContext(bounds.Dx(), bounds.Dy())
	dc.SetRGB(1, 1, 1)
	dc.DrawCircle(float64(bounds.Dx())/2, float64(bounds.Dy())/2, float64(bounds.Dy())/4)
	dc.Stroke()
	draw.Draw(g, bounds, dc.Image(), image.Point{}, draw.Over)

	if err := g.Flush(); err != nil {
		return err
	}
	time.Sleep(2 * time.Second)

	// Animated sine wave; only the dirty band is retransmitted per frame.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for offset := 0; offset < 256; offset++ {
		mid := bounds.Dy() / 2
		draw.Box(g, image.Rect(1, mid-18, bounds.Dx()-1, mid+18), pixel.Off)
		for x := 1; x < bounds.Dx()-1; x++ {
			angle := float64(x+offset) * 4 * math.Pi / float64(bounds.Dx())
			y := mid + int(math.Sin(angle)*16)
			g.SetPixel(x, y, true)
		}
		if err := g.Flush(); err != nil {
			return err
		}
		<-ticker.C
	}

	return g.Close()
}

func terminalDemo(display *ssd1327.Display) error {
	t := display.Terminal()
	if err := t.Init(); err != nil {
		return err
	}
	if err := t.Clear(); err != nil {
		return err
	}
	fmt.Printf("using driver: %s\n", t)

	for c := byte('a'); c <= 'z'; c++ {
		if err := t.WriteString(string(c)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(t, "\nhello, %s", "world"); err != nil {
		return err
	}
	time.Sleep(5 * time.Second)

	return t.Close()
}

func basicDemo(display *ssd1327.Display) error {
	if err := display.Init(); err != nil {
		return err
	}
	if err := display.Clear(); err != nil {
		return err
	}
	fmt.Printf("using driver: %s\n", display)

	// Checkerboard, drawn raw page by page.
	w, h := display.Dimensions()
	buffer := make([]byte, h/8*w)
	for i := range buffer {
		if i/8%2 == 0 {
			buffer[i] = 0x0F
		} else {
			buffer[i] = 0xF0
		}
	}
	if err := display.SetDrawArea(image.Pt(0, 0), image.Pt(w, h)); err != nil {
		return err
	}
	if err := display.Draw(buffer); err != nil {
		return err
	}
	time.Sleep(5 * time.Second)

	return display.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal:", err)
	os.Exit(1)
}
