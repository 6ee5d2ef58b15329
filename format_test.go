package endzone250

import "testing"

func TestMakeProgramIDString(t *testing.T) {
	sim := New(0x1F)
	sim.progIDHint = 42
	sim.progIDLint = 7

	got := sim.makeProgramIDString()
	want := "#00042,00007#"
	if got != want {
		t.Errorf("makeProgramIDString() = %q, want %q", got, want)
	}
}

func TestMakeRefMonitorString(t *testing.T) {
	sim := New(0x1F, WithBackplane(0x02, 0x55, true, false))
	sim.progIDHint = 10
	sim.progIDLint = 20
	sim.sequenceOn = true

	got := sim.makeRefMonitorString()
	if len(got) == 0 || got[0] != '#' || got[len(got)-1] != '#' {
		t.Fatalf("makeRefMonitorString() = %q, want #-delimited", got)
	}
}

func TestMakeFaultLogStringOmitsDoorFlag(t *testing.T) {
	sim := New(0x1F)
	log := &FaultLog{
		ClockStatus1732: 1,
		ClockStatus116:  2,
		ClockStatus4964: 3,
		ClockStatus3348: 4,
	}
	got := sim.makeFaultLogString(log)

	// Unlike the VI-monitor string, the fault-log string has no trailing
	// door-flag digit and no comma before its closing '#'.
	if got[len(got)-2] == ',' {
		t.Errorf("makeFaultLogString() = %q, has trailing comma before '#'", got)
	}
}

func TestFormatVoltageHighRangeSwitch(t *testing.T) {
	if got, want := formatVoltage(900.0), "1090.0"; got != want {
		t.Errorf("formatVoltage(900.0) = %q, want %q", got, want)
	}
	if got, want := formatVoltage(10.0), "110.00"; got != want {
		t.Errorf("formatVoltage(10.0) = %q, want %q", got, want)
	}
}

func TestMakeAmonMonitorStringEmpty(t *testing.T) {
	sim := New(0x1F)
	got := sim.makeAmonMonitorString()
	want := "#1000,#"
	if got != want {
		t.Errorf("makeAmonMonitorString() with no tests = %q, want %q", got, want)
	}
}

func TestMakeAmonMonitorStringOneTest(t *testing.T) {
	sim := New(0x1F)
	sim.amonTestCount = 1
	sim.amonTests[0] = AmonTest{
		TestType:  1,
		PsuLink:   1,
		Tp1Gain:   1,
		CalGain:   1,
		Board:     3,
		Tag:       9,
		HighLimit: 10,
		LowLimit:  -10,
	}
	sim.psus[0].HighVoltageLimit = 10
	sim.psus[0].LowVoltageLimit = -10

	got := sim.makeAmonMonitorString()
	if got[0] != '#' || got[len(got)-1] != '#' {
		t.Fatalf("makeAmonMonitorString() = %q, want #-delimited", got)
	}
}
