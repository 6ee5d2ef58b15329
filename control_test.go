package endzone250

import (
	"strings"
	"testing"
)

func TestCtrlSequenceOnCalStep4Mirroring(t *testing.T) {
	sim := New(0x1F)
	for i := range sim.psus {
		sim.psus[i].VoltageSetS3 = uint16(300 + i)
		sim.psus[i].VoltageSetS4 = uint16(400 + i)
	}

	// offsets 14..19 decode to step 4; offsets 5..14 are unused filler.
	content := "C1F0500000000000004"
	if len(content) != 19 {
		t.Fatalf("test fixture content length = %d, want 19", len(content))
	}
	if _, err := sim.ctrlSequenceOnCal(content); err != nil {
		t.Fatalf("ctrlSequenceOnCal: %v", err)
	}

	for i := 0; i < 4; i++ {
		if got, want := sim.psus[i].VoltageSetpoint, float32(400+i); got != want {
			t.Errorf("psus[%d].voltage_setpoint = %v, want %v", i, got, want)
		}
	}
	// Preserved quirk: PSUs 5-6 (index 4,5) both read voltage_set_s3 of
	// PSU 5 at step 4, not their own voltage_set_s4.
	wantMirror := float32(sim.psus[4].VoltageSetS3)
	if got := sim.psus[4].VoltageSetpoint; got != wantMirror {
		t.Errorf("psus[4].voltage_setpoint = %v, want %v (mirrors its own s3)", got, wantMirror)
	}
	if got := sim.psus[5].VoltageSetpoint; got != wantMirror {
		t.Errorf("psus[5].voltage_setpoint = %v, want %v (mirrors psus[4].s3)", got, wantMirror)
	}
}

func TestCtrlSetProgramIDAsymmetricZeroing(t *testing.T) {
	sim := New(0x1F, WithFPGA(0, 0, 1), WithFPGA(1, 1, 2))
	for i := range sim.fpgas {
		for j := range sim.fpgas[i].PatternMemoryA {
			sim.fpgas[i].PatternMemoryA[j] = 0xDEADBEEF
			break
		}
		sim.fpgas[i].PatternMemoryB[0] = 0xDEADBEEF
		sim.fpgas[i].TristateMemoryA[0] = 0xDEADBEEF
		sim.fpgas[i].TristateMemoryB[0] = 0xDEADBEEF
	}

	// address and data fields (offsets 9..14, 14..19) both zero triggers
	// the memory-clear branch.
	content := "C1F09" + "00000000000000"
	if len(content) != 19 {
		t.Fatalf("test fixture content length = %d, want 19", len(content))
	}
	if _, err := sim.ctrlSetProgramID(content); err != nil {
		t.Fatalf("ctrlSetProgramID: %v", err)
	}

	if sim.fpgas[0].PatternMemoryA[0] != 0 {
		t.Error("fpgas[0].pattern_memory_a not zeroed")
	}
	if sim.fpgas[0].PatternMemoryB[0] != 0 {
		t.Error("fpgas[0].pattern_memory_b not zeroed")
	}
	if sim.fpgas[0].TristateMemoryA[0] != 0 {
		t.Error("fpgas[0].tristate_memory_a not zeroed")
	}
	// Preserved quirk: fpgas[1] only clears tristate_memory_b, leaving
	// its pattern_memory_a/b and tristate_memory_a untouched.
	if sim.fpgas[1].PatternMemoryA[0] != 0xDEADBEEF {
		t.Error("fpgas[1].pattern_memory_a unexpectedly zeroed")
	}
	if sim.fpgas[1].PatternMemoryB[0] != 0xDEADBEEF {
		t.Error("fpgas[1].pattern_memory_b unexpectedly zeroed")
	}
	if sim.fpgas[1].TristateMemoryA[0] != 0xDEADBEEF {
		t.Error("fpgas[1].tristate_memory_a unexpectedly zeroed")
	}
	if sim.fpgas[1].TristateMemoryB[0] != 0 {
		t.Error("fpgas[1].tristate_memory_b not zeroed")
	}
}

func TestVIMonitorFaultFlagsLength(t *testing.T) {
	sim := New(0x1F)
	sim.refreshMeasuredValues()
	out := sim.makeVIMonitorString()

	start := strings.Index(out, ",0")
	if start == -1 {
		t.Fatalf("could not locate fault-flag region in %q", out)
	}

	fields := strings.Split(strings.TrimPrefix(out, "#"), ",")
	// field index 13 is the 18-char fault-flag block (6 voltage/current
	// pairs and the auto-reset counter precede it).
	var faultField string
	for _, f := range fields {
		if len(f) == 18 && isBinaryDigits(f) {
			faultField = f
			break
		}
	}
	if faultField == "" {
		t.Fatalf("no 18-character binary fault-flag field found in %q", out)
	}
}

func isBinaryDigits(s string) bool {
	for _, c := range s {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

func TestCtrlDataLoadPatternSession(t *testing.T) {
	sim := New(0x1F)
	resp, err := sim.ctrlDataLoad("C1F5000")
	if err != nil {
		t.Fatalf("ctrlDataLoad enter pattern: %v", err)
	}
	if got, want := string(resp), "#OK#"; got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
	if !sim.loadingPattern {
		t.Error("loading_pattern not set")
	}
	if got, want := sim.sramAddress, uint32(1); got != want {
		t.Errorf("sram_address = %d, want %d", got, want)
	}

	resp, err = sim.ctrlDataLoad("C1F5001")
	if err != nil {
		t.Fatalf("ctrlDataLoad end pattern: %v", err)
	}
	if got, want := string(resp), "#0,1,#"; got != want {
		t.Errorf("response = %q, want %q", got, want)
	}
	if sim.loadingPattern {
		t.Error("loading_pattern still set after end")
	}
}
