package gpio

import "testing"

func TestMockDriver_PullUpInputReadsHigh(t *testing.T) {
	m := NewMockDriver()
	if err := m.SetupPin(17, InputPullUp); err != nil {
		t.Fatalf("SetupPin: %v", err)
	}

	// An open pulled-up line floats high.
	level, err := m.ReadPin(17)
	if err != nil {
		t.Fatalf("ReadPin: %v", err)
	}
	if level != High {
		t.Errorf("open pulled-up line: got %v, want High", level)
	}

	// An external signal overrides the pull-up.
	m.SetLevel(17, Low)
	level, err = m.ReadPin(17)
	if err != nil {
		t.Fatalf("ReadPin: %v", err)
	}
	if level != Low {
		t.Errorf("driven line: got %v, want Low", level)
	}
}

func TestMockDriver_PlainInputReadsLow(t *testing.T) {
	m := NewMockDriver()
	if err := m.SetupPin(4, Input); err != nil {
		t.Fatalf("SetupPin: %v", err)
	}
	level, err := m.ReadPin(4)
	if err != nil {
		t.Fatalf("ReadPin: %v", err)
	}
	if level != Low {
		t.Errorf("undriven input: got %v, want Low", level)
	}
}

func TestMockDriver_WriteThenRead(t *testing.T) {
	m := NewMockDriver()
	if err := m.SetupPin(5, Output); err != nil {
		t.Fatalf("SetupPin: %v", err)
	}
	if err := m.WritePin(5, High); err != nil {
		t.Fatalf("WritePin: %v", err)
	}
	level, err := m.ReadPin(5)
	if err != nil {
		t.Fatalf("ReadPin: %v", err)
	}
	if level != High {
		t.Errorf("written pin: got %v, want High", level)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestNewDriver_MockByDefault(t *testing.T) {
	for _, kind := range []string{"", DriverMock} {
		d, err := NewDriver(kind)
		if err != nil {
			t.Fatalf("NewDriver(%q): %v", kind, err)
		}
		if _, ok := d.(*MockDriver); !ok {
			t.Errorf("NewDriver(%q): got %T, want *MockDriver", kind, d)
		}
	}
}

func TestNewDriver_UnknownKind(t *testing.T) {
	if _, err := NewDriver("sysfs"); err == nil {
		t.Error("expected error for unknown driver kind, got nil")
	}
}
