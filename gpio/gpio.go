package gpio

import (
	"fmt"

	"github.com/CarlosSiles67/Rotary/internal/debug"
)

// Level represents the logical state of a GPIO pin.
type Level bool

const (
	Low  Level = false
	High Level = true
)

// PinMode indicates how a GPIO line is configured.
type PinMode int

const (
	Input PinMode = iota
	InputPullUp
	Output
)

// Driver defines the abstract interface for digital I/O lines.
// This allows plugging in a real Raspberry Pi implementation
// (memory-mapped or character device) or a mock for development on PC.
type Driver interface {
	SetupPin(pin int, mode PinMode) error
	WritePin(pin int, level Level) error
	ReadPin(pin int) (Level, error)
	Close() error
}

// Driver kinds accepted by NewDriver.
const (
	DriverMock     = "mock"
	DriverRPIO     = "rpio"
	DriverGpiocdev = "gpiocdev"
)

// NewDriver creates a GPIO driver by kind: "mock" (dev/test), "rpio"
// (memory-mapped, go-rpio) or "gpiocdev" (Linux character device). An
// empty kind selects the mock driver.
func NewDriver(kind string) (Driver, error) {
	switch kind {
	case DriverMock, "":
		debug.Info("Using MOCK GPIO driver (development mode)")
		return NewMockDriver(), nil
	case DriverRPIO:
		return NewRPiDriver()
	case DriverGpiocdev:
		return NewGpiocdevDriver("gpiochip0")
	default:
		return nil, fmt.Errorf("unknown gpio driver kind: %q", kind)
	}
}

// MockDriver is a test implementation that logs actions and keeps pin
// state in memory. A pulled-up input with no forced level reads High,
// matching an open line on real hardware, so an idle encoder stays
// quiet under the mock.
type MockDriver struct {
	modes  map[int]PinMode
	levels map[int]Level
}

func NewMockDriver() *MockDriver {
	return &MockDriver{
		modes:  make(map[int]PinMode),
		levels: make(map[int]Level),
	}
}

func (m *MockDriver) SetupPin(pin int, mode PinMode) error {
	debug.GPIO("SetupPin", pin, mode)
	m.modes[pin] = mode
	return nil
}

func (m *MockDriver) WritePin(pin int, level Level) error {
	debug.GPIO("WritePin", pin, level)
	m.levels[pin] = level
	return nil
}

func (m *MockDriver) ReadPin(pin int) (Level, error) {
	if level, ok := m.levels[pin]; ok {
		debug.GPIO("ReadPin", pin, level)
		return level, nil
	}
	if m.modes[pin] == InputPullUp {
		debug.GPIO("ReadPin", pin, High)
		return High, nil
	}
	debug.GPIO("ReadPin", pin, Low)
	return Low, nil
}

// SetLevel forces the level a subsequent ReadPin returns, simulating an
// external signal on the line.
func (m *MockDriver) SetLevel(pin int, level Level) {
	m.levels[pin] = level
}

func (m *MockDriver) Close() error {
	debug.Trace("GPIO Close (mock)")
	return nil
}
