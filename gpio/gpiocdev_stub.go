//go:build !linux

package gpio

import "errors"

// ErrNotSupported is returned on platforms without the Linux GPIO
// character device.
var ErrNotSupported = errors.New("gpiocdev driver not supported on this platform")

// GpiocdevDriver is a stub for non-linux platforms.
type GpiocdevDriver struct{}

// NewGpiocdevDriver returns an error on non-linux platforms.
func NewGpiocdevDriver(chip string) (*GpiocdevDriver, error) {
	return nil, ErrNotSupported
}

func (d *GpiocdevDriver) SetupPin(pin int, mode PinMode) error { return ErrNotSupported }

func (d *GpiocdevDriver) WritePin(pin int, level Level) error { return ErrNotSupported }

func (d *GpiocdevDriver) ReadPin(pin int) (Level, error) { return Low, ErrNotSupported }

func (d *GpiocdevDriver) Close() error { return nil }
