package endzone250

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// snapshot copies everything but the FPGA memory banks, which are large
// preallocated arenas written only by P/R pattern-load commands and the
// all-zero program-ID clear of control op 09; comparing them on every property check would make these tests do
// millions of redundant word comparisons.
func snapshot(sim *Simulator) Simulator {
	cp := *sim
	for i := range cp.fpgas {
		cp.fpgas[i].PatternMemoryA = nil
		cp.fpgas[i].PatternMemoryB = nil
		cp.fpgas[i].TristateMemoryA = nil
		cp.fpgas[i].TristateMemoryB = nil
	}
	return cp
}

func TestProcessCommandAddressMismatch(t *testing.T) {
	tests := []string{
		"<C2003>",
		"<C0017>",
		"<CFF21>",
	}
	for _, buf := range tests {
		t.Run(buf, func(t *testing.T) {
			sim := New(0x1F)
			before := snapshot(sim)
			result, err := sim.ProcessCommand([]byte(buf))
			if err != nil {
				t.Fatalf("ProcessCommand(%q) error: %v", buf, err)
			}
			if result.Response != nil {
				t.Errorf("ProcessCommand(%q) Response = %q, want nil", buf, result.Response)
			}
			after := snapshot(sim)
			if diff := deep.Equal(before, after); diff != nil {
				t.Errorf("state changed on address mismatch for %q: %v\nstate: %s", buf, diff, spew.Sdump(after))
			}
		})
	}
}

func TestProcessCommandInvalidFrame(t *testing.T) {
	sim := New(0x1F)
	if _, err := sim.ProcessCommand([]byte("no frame here")); err == nil {
		t.Error("expected InvalidFrame error, got nil")
	}
}

func TestProcessCommandSequenceOnOff(t *testing.T) {
	sim := New(0x1F)

	result, err := sim.ProcessCommand([]byte("<C1F03>"))
	if err != nil {
		t.Fatalf("sequence on: %v", err)
	}
	if got, want := string(result.Response), "#ON#"; got != want {
		t.Errorf("sequence on response = %q, want %q", got, want)
	}
	if !sim.sequenceOn {
		t.Error("sequence_on not set true after C1F03")
	}

	result, err = sim.ProcessCommand([]byte("<C1F04>"))
	if err != nil {
		t.Fatalf("sequence off: %v", err)
	}
	if got, want := string(result.Response), "#OFF#"; got != want {
		t.Errorf("sequence off response = %q, want %q", got, want)
	}
	if sim.sequenceOn {
		t.Error("sequence_on not set false after C1F04")
	}
}

// TestDataLettersIgnoredOutsideSession verifies that every driver-load-session
// letter is silently ignored when no load session is active, matching the
// hardware's tolerance for a data letter arriving out of sequence.
func TestDataLettersIgnoredOutsideSession(t *testing.T) {
	letters := "VQTDSEAFJLXNGHKOMZWUBIY"
	for i := 0; i < len(letters); i++ {
		buf := []byte("<" + string(letters[i]) + "garbagepayload>")
		t.Run(string(letters[i]), func(t *testing.T) {
			sim := New(0x1F)
			before := snapshot(sim)
			result, err := sim.ProcessCommand(buf)
			if err != nil {
				t.Fatalf("ProcessCommand(%q) error: %v", buf, err)
			}
			if result.Response != nil {
				t.Errorf("ProcessCommand(%q) Response = %q, want nil", buf, result.Response)
			}
			after := snapshot(sim)
			if diff := deep.Equal(before, after); diff != nil {
				t.Errorf("state changed for out-of-session %q: %v", buf, diff)
			}
		})
	}
}

func TestVersionStringDefaults(t *testing.T) {
	sim := New(0x1F,
		WithFPGA(0, 0, 5),
		WithFPGA(1, 1, 6),
		WithClockGenerator(0, 0, 1),
		WithClockGenerator(1, 0, 2),
		WithClockGenerator(2, 0, 3),
		WithClockGenerator(3, 0, 4),
		WithSineWave(0, 0, 7),
		WithSineWave(1, 0, 8),
	)

	result, err := sim.ProcessCommand([]byte("<C1F21>"))
	if err != nil {
		t.Fatalf("version string: %v", err)
	}
	want := "#101.46,105,106,101,102,103,104,107,108,100#"
	if got := string(result.Response); got != want {
		t.Errorf("version string = %q, want %q", got, want)
	}
}
