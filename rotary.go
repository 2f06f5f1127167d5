// Package rotary decodes the two-bit gray code emitted by a mechanical
// quadrature rotary encoder into direction-tagged step events, and
// debounces the momentary push-button often built into the same knob.
//
// The core is two pure, sampled state machines: Decoder (table-driven
// quadrature decoding with inherent bounce rejection) and Button
// (press-release and hold detection). Rotary binds them to a hardware
// collaborator (gpio.Driver plus a Clock) for hosts that want the
// library to do the line reads itself. Everything is poll-driven: the
// host calls Process and the button queries from its own sampling loop,
// which should run well above the fastest expected rotation rate.
package rotary

import (
	"errors"
	"fmt"
	"time"

	"github.com/CarlosSiles67/Rotary/gpio"
)

// ErrNoButton is returned by button queries on a unit constructed
// without a button line.
var ErrNoButton = errors.New("rotary: no button pin configured")

// Clock supplies the monotonic time base used for button debouncing.
// Implementations must be non-decreasing between calls.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now, which carries the
// runtime's monotonic reading.
func SystemClock() Clock { return systemClock{} }

// Config identifies the input lines of one encoder unit and its
// decoding resolution. The mode is fixed at construction.
type Config struct {
	PinA      int // encoder line A, sample bit 0
	PinB      int // encoder line B, sample bit 1
	ButtonPin int // push-button line; 0 = no button
	Mode      StepMode
}

// Rotary binds the decoding state machines to one physical encoder
// unit. It owns no goroutine and performs no blocking call; each method
// is a single read-and-advance over the current sample. One Rotary is
// meant to be driven by a single control-loop goroutine; hosts needing
// cross-goroutine access must synchronize externally.
type Rotary struct {
	gpio  gpio.Driver
	clock Clock
	cfg   Config
	dec   *Decoder
	btn   Button
}

// New configures the encoder lines (and the button line, when present)
// as pulled-up inputs on the given driver and returns a unit in the
// neutral state. A nil clock selects SystemClock.
func New(g gpio.Driver, clock Clock, cfg Config) (*Rotary, error) {
	if clock == nil {
		clock = SystemClock()
	}
	if err := g.SetupPin(cfg.PinA, gpio.InputPullUp); err != nil {
		return nil, fmt.Errorf("setup line A (pin %d): %w", cfg.PinA, err)
	}
	if err := g.SetupPin(cfg.PinB, gpio.InputPullUp); err != nil {
		return nil, fmt.Errorf("setup line B (pin %d): %w", cfg.PinB, err)
	}
	if cfg.ButtonPin > 0 {
		if err := g.SetupPin(cfg.ButtonPin, gpio.InputPullUp); err != nil {
			return nil, fmt.Errorf("setup button (pin %d): %w", cfg.ButtonPin, err)
		}
	}
	return &Rotary{
		gpio:  g,
		clock: clock,
		cfg:   cfg,
		dec:   NewDecoder(cfg.Mode),
	}, nil
}

// Process samples both encoder lines and advances the decoder, returning
// the direction of the step completed by this sample, if any. On a read
// error the decoder state is left untouched for that tick.
func (r *Rotary) Process() (Direction, error) {
	a, err := r.gpio.ReadPin(r.cfg.PinA)
	if err != nil {
		return DirNone, fmt.Errorf("read line A (pin %d): %w", r.cfg.PinA, err)
	}
	b, err := r.gpio.ReadPin(r.cfg.PinB)
	if err != nil {
		return DirNone, fmt.Errorf("read line B (pin %d): %w", r.cfg.PinB, err)
	}
	var sample uint8
	if a == gpio.High {
		sample |= 0x01
	}
	if b == gpio.High {
		sample |= 0x02
	}
	return r.dec.Process(sample), nil
}

// ResetDecoder returns the quadrature state machine to neutral.
func (r *Rotary) ResetDecoder() {
	r.dec.Reset()
}

// ButtonPressedReleased samples the button line and reports whether a
// clean press-then-release cycle completed, firing once per cycle. See
// Button.PressedReleased for the debounce policy.
func (r *Rotary) ButtonPressedReleased(debounce time.Duration) (bool, error) {
	closed, err := r.readClosed()
	if err != nil {
		return false, err
	}
	return r.btn.PressedReleased(closed, r.clock.Now(), debounce), nil
}

// ButtonPressedHeld samples the button line and reports whether the
// button has been held past threshold, firing once per hold. See
// Button.PressedHeld.
func (r *Rotary) ButtonPressedHeld(threshold time.Duration) (bool, error) {
	closed, err := r.readClosed()
	if err != nil {
		return false, err
	}
	return r.btn.PressedHeld(closed, r.clock.Now(), threshold), nil
}

// ReadButton returns the instantaneous, non-debounced button level:
// ButtonPressed while the line reads closed, ButtonReleased otherwise.
// No state is mutated.
func (r *Rotary) ReadButton() (ButtonState, error) {
	closed, err := r.readClosed()
	if err != nil {
		return ButtonReset, err
	}
	if closed {
		return ButtonPressed, nil
	}
	return ButtonReleased, nil
}

// ResetButton discards any in-progress press or hold tracking.
func (r *Rotary) ResetButton() {
	r.btn.Reset()
}

// readClosed reads the button line; with the pull-up, open reads high
// and a press pulls the line low.
func (r *Rotary) readClosed() (bool, error) {
	if r.cfg.ButtonPin <= 0 {
		return false, ErrNoButton
	}
	level, err := r.gpio.ReadPin(r.cfg.ButtonPin)
	if err != nil {
		return false, fmt.Errorf("read button (pin %d): %w", r.cfg.ButtonPin, err)
	}
	return level == gpio.Low, nil
}
