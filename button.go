package rotary

import "time"

// ButtonState describes the momentary push-button. Pressed and Released
// are disjoint flags; their combination marks a completed cycle.
type ButtonState uint8

const (
	ButtonReset           ButtonState = 0x00
	ButtonPressed         ButtonState = 0x01
	ButtonReleased        ButtonState = 0x10
	ButtonPressedReleased ButtonState = ButtonPressed | ButtonReleased
)

func (s ButtonState) String() string {
	switch s {
	case ButtonReset:
		return "reset"
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	case ButtonPressedReleased:
		return "pressed+released"
	default:
		return "invalid"
	}
}

// Button tracks debounced activity on one momentary push-button wired
// active-low (pull-up keeps the open line high; a press reads closed).
//
// The two detectors keep independent state, so a host may poll either or
// both on the same tick without one consuming the other's progress.
// Like the Decoder, Button is pure and sampled: each method takes the
// current line reading plus a monotonic timestamp and returns at once.
type Button struct {
	press pressTracker
	hold  holdTracker
}

// pressTracker carries the press-release detector: the state bits and
// the time the current press began.
type pressTracker struct {
	state ButtonState
	since time.Time
}

// holdTracker carries the held detector separately.
type holdTracker struct {
	down  bool
	since time.Time
}

// PressedReleased advances the press-release detector with one sample
// and returns true exactly once per complete press-then-release cycle.
//
// A press is registered the instant the line reads closed. The release
// is recognized only once more than debounce has elapsed since the press
// AND the line reads open again, so debounce acts as a minimum dwell
// time: a press longer than debounce still completes on its actual
// release. A release observed before the dwell has elapsed is simply
// re-checked on later ticks.
func (b *Button) PressedReleased(closed bool, now time.Time, debounce time.Duration) bool {
	if b.press.state == ButtonPressed {
		if now.Sub(b.press.since) > debounce && !closed {
			b.press.state |= ButtonReleased
		}
	} else if closed {
		b.press.state |= ButtonPressed
		b.press.since = now
	}

	if b.press.state == ButtonPressedReleased {
		b.press.state = ButtonReset
		return true
	}
	return false
}

// PressedHeld advances the held detector with one sample and returns
// true exactly once when the line has stayed closed for longer than
// threshold. The detector then re-arms, so a continued hold fires again
// after another full threshold. A release before the threshold discards
// the press without an event.
func (b *Button) PressedHeld(closed bool, now time.Time, threshold time.Duration) bool {
	if !closed {
		b.hold = holdTracker{}
		return false
	}
	if !b.hold.down {
		b.hold.down = true
		b.hold.since = now
		return false
	}
	if now.Sub(b.hold.since) > threshold {
		b.hold = holdTracker{}
		return true
	}
	return false
}

// Reset discards any in-progress press or hold tracking on both
// detectors.
func (b *Button) Reset() {
	b.press = pressTracker{}
	b.hold = holdTracker{}
}
