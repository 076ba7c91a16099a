package ssd1327

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func playbackConn(pb *i2ctest.Playback, reset gpio.PinOut) *i2cConn {
	return &i2cConn{
		bus:   pb,
		dev:   &i2c.Dev{Bus: pb, Addr: uint16(DefaultI2CConfig.Addr)},
		reset: reset,
	}
}

func TestI2CFraming(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			// Commands are prefixed with control byte 0x00, data with 0x40.
			{Addr: 0x3c, W: []byte{0x00, 0x81, 0x42}},
			{Addr: 0x3c, W: []byte{0x00, 0xAF}},
			{Addr: 0x3c, W: []byte{0x40, 0x01, 0x02, 0x03}},
		},
	}
	c := playbackConn(pb, nil)

	if err := c.Command(0x81, 0x42); err != nil {
		t.Fatal(err)
	}
	if err := c.Command(0xAF); err != nil {
		t.Fatal(err)
	}
	if err := c.Data(0x01, 0x02, 0x03); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CDisplayTransaction(t *testing.T) {
	pb := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x3c, W: []byte{0x00, 0xB6, 0x04}},
			{Addr: 0x3c, W: []byte{0x00, 0x81, 0xFF}},
		},
	}
	d := New(playbackConn(pb, nil), Size128x128, NoRotation)
	if err := d.SetBrightness(BrightnessBrightest); err != nil {
		t.Fatal(err)
	}
	if err := pb.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestI2CReset(t *testing.T) {
	pin := &gpiotest.Pin{N: "RST"}
	c := playbackConn(&i2ctest.Playback{DontPanic: true}, pin)

	if err := c.Reset(gpio.High); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.High {
		t.Errorf("expected the reset pin high, got %s", pin.L)
	}
	if err := c.Reset(gpio.Low); err != nil {
		t.Fatal(err)
	}
	if pin.L != gpio.Low {
		t.Errorf("expected the reset pin low, got %s", pin.L)
	}
}

func TestI2CResetWithoutPin(t *testing.T) {
	c := playbackConn(&i2ctest.Playback{DontPanic: true}, nil)
	if err := c.Reset(gpio.High); !errors.Is(err, ErrResetPin) {
		t.Fatalf("expected ErrResetPin, got %v", err)
	}
}
