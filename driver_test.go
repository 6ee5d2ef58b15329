package endzone250

import "testing"

// enterDriverLoad puts sim into a driver-load session the way control-50
// sub-mode 2 does, without going through ProcessCommand's framing.
func enterDriverLoad(sim *Simulator) {
	sim.loadingDriver = true
	sim.loadingPattern = false
	sim.driverChecksum = 0
}

func TestVCommandChecksum(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	if err := sim.handleDriverCommand('V', "Vxx0605004003002001"); err != nil {
		t.Fatalf("handleV: %v", err)
	}
	if got, want := sim.driverChecksum, uint32(21); got != want {
		t.Errorf("driver_checksum = %d, want %d", got, want)
	}
}

func TestQCommandStateAndChecksum(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	if err := sim.handleDriverCommand('Q', "Qxx0306420C8007D0FA00"); err != nil {
		t.Fatalf("handleQ: %v", err)
	}

	psu := &sim.psus[2]
	if got, want := psu.SequenceID, uint8(2); got != want {
		t.Errorf("psu[2].sequence_id = %d, want %d", got, want)
	}
	if got, want := psu.SequenceDelay, uint32(100); got != want {
		t.Errorf("psu[2].sequence_delay = %d, want %d", got, want)
	}
	if got, want := psu.HighVoltageLimit, float32(25.0); got != want {
		t.Errorf("psu[2].high_voltage_limit = %v, want %v", got, want)
	}
	if got, want := psu.LowVoltageLimit, float32(12.5); got != want {
		t.Errorf("psu[2].low_voltage_limit = %v, want %v", got, want)
	}
	if got, want := sim.driverChecksum, uint32(3680); got != want {
		t.Errorf("driver_checksum = %d, want %d", got, want)
	}
}

func TestOCommandRouting(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	if err := sim.handleDriverCommand('O', "Oxx0901020304"); err != nil {
		t.Fatalf("handleO: %v", err)
	}
	if got, want := sim.outputRouting[8], uint32(0x04030201); got != want {
		t.Errorf("output_routing[8] = %#X, want %#X", got, want)
	}
	if got, want := sim.driverChecksum, uint32(19); got != want {
		t.Errorf("driver_checksum = %d, want %d", got, want)
	}
}

// TestACommandPreservedQuirk locks in the original firmware's field
// exclusion/duplication in the A-command checksum: s4 is parsed but never
// contributes, and s7 is a second read of s5's trailing two characters.
func TestACommandPreservedQuirk(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "A123456789ABCDEF012"
	if len(content) != 19 {
		t.Fatalf("test fixture content length = %d, want 19", len(content))
	}
	if err := sim.handleDriverCommand('A', content); err != nil {
		t.Fatalf("handleA: %v", err)
	}

	s1, _ := parseHexWindow(content, 7, 11)
	s2, _ := parseHexWindow(content, 4, 7)
	s3, _ := parseHexWindow(content, 3, 4)
	s5, _ := parseHexWindow(content, 15, 19)
	s6, _ := parseHexWindow(content, 14, 15)
	s7, _ := parseHexWindow(content, 17, 19)

	want := checksumAdd(s1, s2, s3, s5, s6, s7)
	if got := sim.driverChecksum; got != want {
		t.Errorf("driver_checksum = %d, want %d (s4 excluded, s7 overlaps s5)", got, want)
	}
	if got, want := sim.systemConfig.PowerUpDelay, s5; got != want {
		t.Errorf("power_up_delay = %d, want %d", got, want)
	}
}

// TestFCommandNibbleChecksum locks in the F-command's nibble-sum checksum,
// which sums hex-digit values rather than the parsed field integers.
func TestFCommandNibbleChecksum(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "F123456789ABCDEF01"
	if len(content) != 18 {
		t.Fatalf("test fixture content length = %d, want 18", len(content))
	}
	if err := sim.handleDriverCommand('F', content); err != nil {
		t.Fatalf("handleF: %v", err)
	}

	want, err := nibbleSum(content, 3, 18)
	if err != nil {
		t.Fatalf("nibbleSum: %v", err)
	}
	if got := sim.driverChecksum; got != want {
		t.Errorf("driver_checksum = %d, want %d (nibble sum of offsets 3..18)", got, want)
	}
}

// TestKCommandBytePacking locks in the K-command's FRC source fields
// being packed the same little-endian-byte way as N/G/H, not as 4-bit
// nibbles.
func TestKCommandBytePacking(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "Kxx12345678"
	if len(content) != 11 {
		t.Fatalf("test fixture content length = %d, want 11", len(content))
	}
	if err := sim.handleDriverCommand('K', content); err != nil {
		t.Fatalf("handleK: %v", err)
	}

	if got, want := sim.frcConfig.Source14, uint32(0x05060708); got != want {
		t.Errorf("frc_config.source_1_4 = %#X, want %#X", got, want)
	}
}

// TestVCommandOutOfRangeSilentDrop locks in the array-bounded-write
// behavior: an out-of-range PSU ordinal drops the write but still
// accumulates the checksum and returns no error.
func TestVCommandOutOfRangeSilentDrop(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "Vxx0705004003002001"
	if err := sim.handleDriverCommand('V', content); err != nil {
		t.Fatalf("handleV with out-of-range psu# returned error: %v", err)
	}

	psuNum, _ := parseHexWindow(content, 3, 5)
	reserved, _ := parseHexWindow(content, 5, 7)
	s4, _ := parseHexWindow(content, 7, 10)
	s3, _ := parseHexWindow(content, 10, 13)
	s2, _ := parseHexWindow(content, 13, 16)
	s1, _ := parseHexWindow(content, 16, 19)
	want := checksumAdd(psuNum, reserved, s4, s3, s2, s1)
	if got := sim.driverChecksum; got != want {
		t.Errorf("driver_checksum = %d, want %d (checksum still accumulates)", got, want)
	}
}

// TestMCommandUstepEnabledUnconditional locks in that ustep_enabled is
// set regardless of whether psu# is in range.
func TestMCommandUstepEnabledUnconditional(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "Mxx00001100020030040"
	if len(content) != 20 {
		t.Fatalf("test fixture content length = %d, want 20", len(content))
	}
	if err := sim.handleDriverCommand('M', content); err != nil {
		t.Fatalf("handleM with out-of-range psu# returned error: %v", err)
	}
	if !sim.ustepEnabled {
		t.Errorf("ustep_enabled = false, want true (set before the psu# guard)")
	}
}

// TestTCommandFieldOrder locks in the descending s8..s1 field-naming
// convention shared with the N/G/H/K commands: offset 3 is s8 (the last
// alarm value, alarm_values[3]), offset 17 is s1 (the first timer value,
// timer_values[0]).
func TestTCommandFieldOrder(t *testing.T) {
	sim := New(0x1F)
	enterDriverLoad(sim)

	content := "Txx0102030405060708"
	if len(content) != 19 {
		t.Fatalf("test fixture content length = %d, want 19", len(content))
	}
	if err := sim.handleDriverCommand('T', content); err != nil {
		t.Fatalf("handleT: %v", err)
	}

	// s8..s1 = 1,2,3,4,5,6,7,8 in offset order; timers take s1..s4,
	// alarms take s5..s8.
	wantTimer := [4]uint32{8, 7, 6, 5}
	if sim.timerValues != wantTimer {
		t.Errorf("timer_values = %v, want %v", sim.timerValues, wantTimer)
	}
	wantAlarm := [4]uint32{4, 3, 2, 1}
	if sim.alarmValues != wantAlarm {
		t.Errorf("alarm_values = %v, want %v", sim.alarmValues, wantAlarm)
	}
}
