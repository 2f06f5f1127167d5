//go:build linux

package gpio

import (
	"fmt"

	"github.com/CarlosSiles67/Rotary/internal/debug"
	"github.com/warthog618/go-gpiocdev"
)

// GpiocdevDriver drives lines through the Linux GPIO character device.
// Unlike the memory-mapped driver it works on any gpiochip, not just
// the Raspberry Pi's.
type GpiocdevDriver struct {
	chip  string
	lines map[int]*gpiocdev.Line
}

// NewGpiocdevDriver creates a character-device GPIO driver on the given
// chip (e.g. "gpiochip0"; empty selects gpiochip0). Lines are requested
// lazily on SetupPin.
func NewGpiocdevDriver(chip string) (*GpiocdevDriver, error) {
	if chip == "" {
		chip = "gpiochip0"
	}
	debug.Info("Initializing gpiocdev GPIO driver on %s", chip)
	return &GpiocdevDriver{
		chip:  chip,
		lines: make(map[int]*gpiocdev.Line),
	}, nil
}

func (d *GpiocdevDriver) SetupPin(pin int, mode PinMode) error {
	debug.GPIO("SetupPin", pin, mode)

	if l, ok := d.lines[pin]; ok {
		l.Close()
		delete(d.lines, pin)
	}

	var opts []gpiocdev.LineReqOption
	switch mode {
	case Input:
		opts = []gpiocdev.LineReqOption{gpiocdev.AsInput}
	case InputPullUp:
		opts = []gpiocdev.LineReqOption{gpiocdev.AsInput, gpiocdev.WithPullUp}
	case Output:
		opts = []gpiocdev.LineReqOption{gpiocdev.AsOutput(0)}
	default:
		return fmt.Errorf("unknown pin mode: %d", mode)
	}

	l, err := gpiocdev.RequestLine(d.chip, pin, opts...)
	if err != nil {
		return fmt.Errorf("request line %d on %s: %w", pin, d.chip, err)
	}
	d.lines[pin] = l
	return nil
}

func (d *GpiocdevDriver) WritePin(pin int, level Level) error {
	debug.GPIO("WritePin", pin, level)

	l, ok := d.lines[pin]
	if !ok {
		if err := d.SetupPin(pin, Output); err != nil {
			return err
		}
		l = d.lines[pin]
	}

	v := 0
	if level == High {
		v = 1
	}
	if err := l.SetValue(v); err != nil {
		return fmt.Errorf("set line %d: %w", pin, err)
	}
	return nil
}

func (d *GpiocdevDriver) ReadPin(pin int) (Level, error) {
	debug.GPIO("ReadPin", pin, nil)

	l, ok := d.lines[pin]
	if !ok {
		if err := d.SetupPin(pin, Input); err != nil {
			return Low, err
		}
		l = d.lines[pin]
	}

	v, err := l.Value()
	if err != nil {
		return Low, fmt.Errorf("read line %d: %w", pin, err)
	}
	if v != 0 {
		return High, nil
	}
	return Low, nil
}

func (d *GpiocdevDriver) Close() error {
	debug.Trace("GPIO Close (gpiocdev driver)")

	for pin, l := range d.lines {
		debug.Verbose("Releasing line %d", pin)
		l.Close()
	}
	d.lines = make(map[int]*gpiocdev.Line)
	return nil
}
