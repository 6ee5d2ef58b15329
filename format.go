package endzone250

import "fmt"

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// makeRefMonitorString implements the reference-monitor string (spec.md
// §4.6, control op 17).
func (s *Simulator) makeRefMonitorString() string {
	doorClosed := 1
	if s.doorOpen {
		doorClosed = 0
	}
	return fmt.Sprintf(
		"#%X,%X,%X,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d#",
		uint32(s.backPanelAddress)+0x100,
		uint32(s.rs485Address)+0x100,
		uint32(s.bibCode)+0x1000,
		boolDigit(s.bpRes1Present),
		boolDigit(s.bpRes2Present),
		s.progIDLint+100000,
		s.progIDHint+100000,
		boolDigit(s.sequenceOn),
		s.timerValues[0]+1000,
		s.timerValues[1]+1000,
		s.timerValues[2]+1000,
		s.timerValues[3]+1000,
		s.alarmValues[0]+1000,
		s.alarmValues[1]+1000,
		s.alarmValues[2]+1000,
		s.alarmValues[3]+1000,
		doorClosed,
	)
}

// makeConfigurationString implements the hardware-topology string
// (spec.md §4.6, control op 18).
func (s *Simulator) makeConfigurationString() string {
	invFail := func(ok bool) int {
		if ok {
			return 0
		}
		return 1
	}
	return fmt.Sprintf(
		"#%X,%X,%X,%d,%d,%X,%X,%X,%X,%X,%X,%d,%d,%d,%d,%d,%X,%d,%X,%d,%X,%d,%X,%d,%X,%d,%X,%d,%X,%d,%d,%d,%d,%d,%d#",
		uint32(s.backPanelAddress)+0x100,
		uint32(s.rs485Address)+0x100,
		uint32(s.bibCode)+0x1000,
		boolDigit(s.bpRes1Present),
		boolDigit(s.bpRes2Present),
		uint32(s.psuDataCodes[0])+0x100,
		uint32(s.psuDataCodes[1])+0x100,
		uint32(s.psuDataCodes[2])+0x100,
		uint32(s.psuDataCodes[3])+0x100,
		uint32(s.psuDataCodes[4])+0x100,
		uint32(s.psuDataCodes[5])+0x100,
		boolDigit(s.fpgas[0].Present),
		s.fpgas[0].Position,
		boolDigit(s.fpgas[1].Present),
		s.fpgas[1].Position,
		boolDigit(s.clockGenerators[0].Present),
		uint32(s.clockGenerators[0].ModuleType)+0x100,
		boolDigit(s.clockGenerators[1].Present),
		uint32(s.clockGenerators[1].ModuleType)+0x100,
		boolDigit(s.clockGenerators[2].Present),
		uint32(s.clockGenerators[2].ModuleType)+0x100,
		boolDigit(s.clockGenerators[3].Present),
		uint32(s.clockGenerators[3].ModuleType)+0x100,
		boolDigit(s.sineWaves[0].Present),
		uint32(s.sineWaves[0].ModuleType)+0x100,
		boolDigit(s.sineWaves[1].Present),
		uint32(s.sineWaves[1].ModuleType)+0x100,
		boolDigit(s.amonPresent),
		uint32(s.amonType)+0x100,
		invFail(s.fpgas[0].MemATestOK),
		invFail(s.fpgas[1].MemBTestOK),
		invFail(s.fpgas[0].CtrlATestOK),
		invFail(s.fpgas[1].CtrlBTestOK),
		boolDigit(s.sineWaves[0].Programmed),
		boolDigit(s.sineWaves[1].Programmed),
	)
}

// makeVersionString implements the version string (spec.md §4.6,
// control op 21). The trailing field is a fixed placeholder for an
// analog module whose version this protocol never reports.
func (s *Simulator) makeVersionString() string {
	return fmt.Sprintf(
		"#%.2f,%d,%d,%d,%d,%d,%d,%d,%d,%d#",
		s.firmwareVersion+100.0,
		uint32(s.fpgas[0].Version)+100,
		uint32(s.fpgas[1].Version)+100,
		uint32(s.clockGenerators[0].FpgaVersion)+100,
		uint32(s.clockGenerators[1].FpgaVersion)+100,
		uint32(s.clockGenerators[2].FpgaVersion)+100,
		uint32(s.clockGenerators[3].FpgaVersion)+100,
		uint32(s.sineWaves[0].FpgaVersion)+100,
		uint32(s.sineWaves[1].FpgaVersion)+100,
		100,
	)
}

// makeProgramIDString implements the program-ID string (spec.md §4.6,
// control op 22).
func (s *Simulator) makeProgramIDString() string {
	return fmt.Sprintf("#%05d,%05d#", s.progIDHint, s.progIDLint)
}

func formatVoltage(v float32) string {
	if v > 899.0 {
		return fmt.Sprintf("%.1f", (v/10.0)+1000.0)
	}
	return fmt.Sprintf("%.2f", v+100.0)
}

// makeVIMonitorString implements the primary VI-monitor string
// (spec.md §4.6, control ops 16 and 24).
func (s *Simulator) makeVIMonitorString() string {
	out := "#"
	for i := range s.psus {
		psu := &s.psus[i]
		out += formatVoltage(psu.MeasuredVoltage) + ","
		out += fmt.Sprintf("%.2f,", psu.MeasuredCurrent+100.0)
	}

	out += fmt.Sprintf("%d,", s.systemConfig.AutoResetCounter+1000)

	var faults [18]byte
	for i, psu := range s.psus {
		if psu.MeasuredCurrent > psu.CurrentMonitorLimit {
			faults[i] = '1'
		} else {
			faults[i] = '0'
		}
	}
	for i, psu := range s.psus {
		if psu.MeasuredVoltage < psu.LowVoltageLimit {
			faults[6+i] = '1'
		} else {
			faults[6+i] = '0'
		}
	}
	for i, psu := range s.psus {
		if psu.MeasuredVoltage > psu.HighVoltageLimit {
			faults[12+i] = '1'
		} else {
			faults[12+i] = '0'
		}
	}
	out += string(faults[:])

	var clockStatus1to32, clockStatus33to64 uint32
	out += fmt.Sprintf(",%X,", (clockStatus1to32>>16)+0x10000)
	out += fmt.Sprintf("%X,", (clockStatus1to32&0xFFFF)+0x10000)
	out += fmt.Sprintf("%X,", (clockStatus33to64>>16)+0x10000)
	out += fmt.Sprintf("%X,", (clockStatus33to64&0xFFFF)+0x10000)

	swStatus := 0
	if s.sineWaves[0].HasFailure {
		swStatus += 1
	}
	if s.sineWaves[1].HasFailure {
		swStatus += 2
	}
	out += fmt.Sprintf("%X,", uint32(swStatus)+0x100)
	out += fmt.Sprintf("%.2f,", s.sineWaves[0].RmsValue+100.0)
	out += fmt.Sprintf("%.2f,", s.sineWaves[1].RmsValue+100.0)

	out += fmt.Sprintf("%d,", boolDigit(s.sequenceOn))

	for _, v := range s.timerValues {
		out += fmt.Sprintf("%d,", v+1000)
	}
	for _, v := range s.alarmValues {
		out += fmt.Sprintf("%d,", v+1000)
	}

	doorClosed := 1
	if s.doorOpen {
		doorClosed = 0
	}
	out += fmt.Sprintf("%d#", doorClosed)
	return out
}

// makeFaultLogString implements the fault-log string (spec.md §4.6,
// control op 20): structurally the same as the VI-monitor string but
// drawn from a stored FaultLog and omitting the trailing door flag and
// its comma.
func (s *Simulator) makeFaultLogString(log *FaultLog) string {
	out := "#"
	for i := 0; i < 6; i++ {
		out += formatVoltage(log.MonitorVoltages[i]) + ","
		out += fmt.Sprintf("%.2f,", log.MonitorCurrents[i]+100.0)
	}

	out += fmt.Sprintf("%d,", log.AutoResetCounter+1000)

	var faults [18]byte
	for i := 0; i < 6; i++ {
		if (log.OverCurrentFlags>>uint(i))&1 == 1 {
			faults[i] = '1'
		} else {
			faults[i] = '0'
		}
	}
	for i := 0; i < 6; i++ {
		if (log.UnderVoltageFlags>>uint(i))&1 == 1 {
			faults[6+i] = '1'
		} else {
			faults[6+i] = '0'
		}
	}
	for i := 0; i < 6; i++ {
		if (log.OverVoltageFlags>>uint(i))&1 == 1 {
			faults[12+i] = '1'
		} else {
			faults[12+i] = '0'
		}
	}
	out += string(faults[:])

	out += fmt.Sprintf(",%X,", uint32(log.ClockStatus1732)+0x10000)
	out += fmt.Sprintf("%X,", uint32(log.ClockStatus116)+0x10000)
	out += fmt.Sprintf("%X,", uint32(log.ClockStatus4964)+0x10000)
	out += fmt.Sprintf("%X,", uint32(log.ClockStatus3348)+0x10000)

	out += fmt.Sprintf("%X,", uint32(log.SwFaultStatus)+0x100)
	out += fmt.Sprintf("%.2f,", log.Sw1Rms+100.0)
	out += fmt.Sprintf("%.2f,", log.Sw2Rms+100.0)

	out += fmt.Sprintf("%d,", boolDigit(log.DriverOn))

	for _, v := range log.TimerValues {
		out += fmt.Sprintf("%d,", v+1000)
	}
	for _, v := range log.AlarmValues {
		out += fmt.Sprintf("%d,", v+1000)
	}

	out = out[:len(out)-1] // drop the trailing comma, no door flag follows
	out += "#"
	return out
}

// makeAmonMonitorString implements the AMON-monitor string (spec.md
// §4.6, control op 25), synthesizing each active test's measurement
// per §4.7.
func (s *Simulator) makeAmonMonitorString() string {
	out := fmt.Sprintf("#%X,", s.amonBp+0x1000)

	if s.amonTestCount > 0 {
		for i := uint32(0); i < s.amonTestCount; i++ {
			test := &s.amonTests[i]
			value, status := s.measureAmonTest(int(i))

			out += fmt.Sprintf("%.2f,", value+100.0)
			out += fmt.Sprintf("%d,", status)
			out += fmt.Sprintf("%d,", test.Board+10)

			if i == s.amonTestCount-1 {
				out += fmt.Sprintf("%d", test.Tag+100)
			} else {
				out += fmt.Sprintf("%d,", test.Tag+100)
			}
		}
	}

	out += "#"
	return out
}
