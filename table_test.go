package rotary

import "testing"

// ---------- table totality ----------

func TestTables_TotalAndClosed(t *testing.T) {
	tables := map[string]stepTable{
		"full-step": fullStepTable,
		"half-step": halfStepTable,
	}
	for name, table := range tables {
		states := len(table)
		for state := 0; state < states; state++ {
			for sample := uint8(0); sample < 4; sample++ {
				next := table.Next(uint8(state), sample)
				if int(next&stateMask) >= states {
					t.Errorf("%s: state %d sample %02b leads to unknown state %#02x",
						name, state, sample, next)
				}
				if next&^uint8(stateMask|dirMask) != 0 {
					t.Errorf("%s: state %d sample %02b sets stray bits: %#02x",
						name, state, sample, next)
				}
			}
		}
	}
}

func TestTables_DirectionOnlyAtSettledPositions(t *testing.T) {
	// Full-step emits only when closing back at 00 (sample 0); half-step
	// also at 11 (sample 3).
	for state := 0; state < len(fullStepTable); state++ {
		for sample := uint8(1); sample < 4; sample++ {
			next := fullStepTable.Next(uint8(state), sample)
			if next&dirMask != 0 {
				t.Errorf("full-step: state %d sample %02b emits %#02x away from 00",
					state, sample, next&dirMask)
			}
		}
	}
	for state := 0; state < len(halfStepTable); state++ {
		for _, sample := range []uint8{1, 2} {
			next := halfStepTable.Next(uint8(state), sample)
			if next&dirMask != 0 {
				t.Errorf("half-step: state %d sample %02b emits %#02x at a transient position",
					state, sample, next&dirMask)
			}
		}
	}
}

func TestStepTable_OutOfRangeStateClamps(t *testing.T) {
	// State nibbles beyond the table must land back at neutral instead
	// of indexing out of bounds.
	for _, table := range []stepTable{fullStepTable, halfStepTable} {
		for sample := uint8(0); sample < 4; sample++ {
			got := table.Next(0x0f, sample)
			want := table.Next(rStart, sample)
			if got != want {
				t.Errorf("sample %02b: clamped lookup got %#02x, want neutral-row %#02x",
					sample, got, want)
			}
		}
	}
}

// ---------- Direction / StepMode strings ----------

func TestDirection_String(t *testing.T) {
	cases := map[Direction]string{
		DirNone:         "none",
		DirCW:           "clockwise",
		DirCCW:          "counter-clockwise",
		Direction(0x30): "invalid",
	}
	for dir, want := range cases {
		if got := dir.String(); got != want {
			t.Errorf("Direction(%#02x).String() = %q, want %q", uint8(dir), got, want)
		}
	}
}

func TestStepMode_String(t *testing.T) {
	if got := FullStep.String(); got != "full-step" {
		t.Errorf("FullStep.String() = %q", got)
	}
	if got := HalfStep.String(); got != "half-step" {
		t.Errorf("HalfStep.String() = %q", got)
	}
}
