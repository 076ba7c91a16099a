package ssd1327

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// Conn errors.
var (
	ErrResetPin = errors.New("ssd1327: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("ssd1327: data/command (DC) GPIO pin is invalid")
)

// Conn is the command/data sink used to reach the display controller. The
// two channels map onto the chip's command/data distinction; whether that is
// realized with an I²C control byte or a DC GPIO line is the conn's concern.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level.
	Reset(gpio.Level) error

	// Command sends a command byte with optional argument bytes.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// I²C control bytes prefixed to every transaction.
const (
	i2cCommand = 0x00
	i2cData    = 0x40
)

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin, optional.
	Reset gpio.PinOut
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	bus   i2c.BusCloser
	dev   *i2c.Dev
	reset gpio.PinOut
}

// OpenI2C opens an I²C connection to the display controller.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	var (
		bus i2c.BusCloser
		err error
	)
	if config.Device < 0 {
		bus, err = i2creg.Open("")
	} else {
		bus, err = i2creg.Open(strconv.Itoa(config.Device))
	}
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		bus:   bus,
		dev:   &i2c.Dev{Bus: bus, Addr: uint16(config.Addr)},
		reset: config.Reset,
	}, nil
}

func (c *i2cConn) String() string {
	return fmt.Sprintf("I²C bus %s", c.bus)
}

func (c *i2cConn) Close() error {
	return c.bus.Close()
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return ErrResetPin
	}
	return c.reset.Out(level)
}

func (c *i2cConn) Command(cmnd byte, args ...byte) error {
	return c.dev.Tx(append([]byte{i2cCommand, cmnd}, args...), nil)
}

func (c *i2cConn) Data(data ...byte) error {
	return c.dev.Tx(append([]byte{i2cData}, data...), nil)
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the SPI port name, empty for the first available port.
	Port string

	// SpeedHz is the bus clock in Hertz.
	SpeedHz uint32

	// Mode is the SPI clock polarity/phase mode.
	Mode spi.Mode

	// DataLow inverts the DC line: low selects data instead of commands.
	DataLow bool

	// BatchSize limits the size of a single data transfer.
	BatchSize int

	// Reset pin, required.
	Reset gpio.PinOut

	// DC is the data/command pin, required.
	DC gpio.PinOut

	// CS is an optional manually driven chip select pin.
	CS gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	SpeedHz:   8_000_000,
	BatchSize: 4096,
}

type spiConn struct {
	port      spi.PortCloser
	conn      spi.Conn
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	cs        gpio.PinOut
	dataLow   bool
	batchSize int
}

// OpenSPI opens a 4-wire SPI connection to the display controller.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if config.Reset == nil || config.Reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(physic.Frequency(config.SpeedHz)*physic.Hertz, config.Mode, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	dcLevel := gpio.Level(config.DataLow)
	if err = config.DC.Out(dcLevel); err != nil {
		_ = port.Close()
		return nil, err
	}

	return &spiConn{
		port:      port,
		conn:      c,
		reset:     config.Reset,
		dc:        config.DC,
		dcLevel:   dcLevel,
		cs:        config.CS,
		dataLow:   config.DataLow,
		batchSize: config.BatchSize,
	}, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI port %s", c.port)
}

func (c *spiConn) Close() error {
	return c.port.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

// Command sends the opcode and its argument bytes in a single command-class
// transfer; the DC line stays at the command level for the whole payload.
func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.updateDC(gpio.Level(c.dataLow)); err != nil {
		return
	}
	if err = c.conn.Tx(append([]byte{cmnd}, args...), nil); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.Level(!c.dataLow)); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) writeChunked(data []byte) (err error) {
	if debug && len(data) > c.batchSize {
		log.Printf("ssd1327: write %d bytes of data in %d chunks", len(data), (len(data)+c.batchSize-1)/c.batchSize)
	}
	for len(data) > c.batchSize {
		if err = c.conn.Tx(data[:c.batchSize], nil); err != nil {
			return
		}
		data = data[c.batchSize:]
	}
	return c.conn.Tx(data, nil)
}
