package endzone250

import "strconv"

// handleControlCommand parses and executes a 'C<addr><id>[params]'
// control frame (spec.md §4.4). It returns nil, nil when the parsed
// address does not match rs485Address — a silent ignore, not an
// error.
func (s *Simulator) handleControlCommand(content string) ([]byte, error) {
	if len(content) < 5 {
		return nil, errTooShort()
	}

	addr, err := strconv.ParseUint(content[1:3], 16, 8)
	if err != nil {
		return nil, errInvalidAddress(err)
	}
	if uint8(addr) != s.rs485Address {
		return nil, nil
	}

	id, err := strconv.ParseUint(content[3:5], 10, 8)
	if err != nil {
		return nil, errInvalidCommandID(err)
	}

	s.refreshMeasuredValues()

	switch id {
	case 1:
		return s.ctrlClearClockFail()
	case 2:
		return s.ctrlClearSwFail()
	case 3:
		return s.ctrlSequenceOn()
	case 4:
		return s.ctrlSequenceOff()
	case 5:
		return s.ctrlSequenceOnCal(content)
	case 9:
		return s.ctrlSetProgramID(content)
	case 16:
		return s.ctrlSetTempOK(content)
	case 17:
		return []byte(s.makeRefMonitorString()), nil
	case 18:
		return []byte(s.makeConfigurationString()), nil
	case 19:
		return s.ctrlSelfTestMem(content)
	case 20:
		return s.ctrlGetFaultLog(content)
	case 21:
		return []byte(s.makeVersionString()), nil
	case 22:
		return []byte(s.makeProgramIDString()), nil
	case 23:
		return []byte(sprintfChecksum(s.progIDHint + s.progIDLint)), nil
	case 24:
		return []byte(s.makeVIMonitorString()), nil
	case 25:
		return []byte(s.makeAmonMonitorString()), nil
	case 50:
		return s.ctrlDataLoad(content)
	default:
		return nil, errUnimplemented(int(id))
	}
}

func sprintfChecksum(v uint32) string {
	return "#" + strconv.FormatUint(uint64(v), 10) + "#"
}

// refreshMeasuredValues implements spec.md §4.5: it runs before every
// control operation, regardless of whether that operation reports the
// values.
func (s *Simulator) refreshMeasuredValues() {
	for i := range s.psus {
		psu := &s.psus[i]
		if !psu.Enabled {
			psu.MeasuredVoltage = 0
			psu.MeasuredCurrent = 0
			continue
		}
		rawV := psu.VoltageSetpoint / 409.5
		rawI := float32(10.0 * 0.05)

		v := rawV*psu.PsuCalVal + psu.VCalOffsetVal
		iMeasured := (rawI + psu.ICalOffsetVal) * psu.ICalVal

		psu.MeasuredVoltage = clampNonneg(v)
		psu.MeasuredCurrent = clampNonneg(iMeasured)
	}
}

func clampNonneg(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

func (s *Simulator) ctrlClearClockFail() ([]byte, error) {
	for i := range s.clockGenerators {
		s.clockGenerators[i].HasFailure = false
	}
	return []byte("#OK#"), nil
}

func (s *Simulator) ctrlClearSwFail() ([]byte, error) {
	for i := range s.sineWaves {
		s.sineWaves[i].HasFailure = false
	}
	return []byte("#OK#"), nil
}

func (s *Simulator) ctrlSequenceOn() ([]byte, error) {
	for i := range s.amonTests {
		s.amonTests[i] = AmonTest{}
	}
	s.systemConfig.AutoResetCounter = 0
	s.systemConfig.IgnoreClockFails = false

	for i := range s.psus {
		psu := &s.psus[i]
		if psu.VoltageSetS4 > 0 {
			psu.Enabled = true
			psu.VoltageSetpoint = float32(psu.VoltageSetS4)
		} else {
			psu.Enabled = false
			psu.VoltageSetpoint = 0
		}
	}

	s.sequenceOn = true
	return []byte("#ON#"), nil
}

func (s *Simulator) ctrlSequenceOff() ([]byte, error) {
	s.sequenceOn = false
	return []byte("#OFF#"), nil
}

// ctrlSequenceOnCal implements control op 05: a calibration sequencing
// step that loads each PSU's voltage_set_sN as its setpoint, with a
// quirk preserved from the original firmware: step 4 reads
// voltage_set_s3 (not s4) for PSUs 5-6, and PSU 6 always mirrors
// PSU 5's value for the chosen step.
func (s *Simulator) ctrlSequenceOnCal(content string) ([]byte, error) {
	if len(content) < 19 {
		return nil, errTooShort()
	}
	step, err := parseDecWindow(content, 14, 19)
	if err != nil {
		return nil, errInvalidParameter()
	}

	var setpoints [psuCount]uint16
	switch step {
	case 1:
		for i := 0; i < psuCount; i++ {
			setpoints[i] = s.psus[i].VoltageSetS1
		}
		setpoints[5] = s.psus[4].VoltageSetS1
	case 2:
		for i := 0; i < psuCount; i++ {
			setpoints[i] = s.psus[i].VoltageSetS2
		}
		setpoints[5] = s.psus[4].VoltageSetS2
	case 3:
		for i := 0; i < psuCount; i++ {
			setpoints[i] = s.psus[i].VoltageSetS3
		}
		setpoints[5] = s.psus[4].VoltageSetS3
	case 4:
		for i := 0; i < 4; i++ {
			setpoints[i] = s.psus[i].VoltageSetS4
		}
		setpoints[4] = s.psus[4].VoltageSetS3
		setpoints[5] = s.psus[4].VoltageSetS3
	default:
		for i := range setpoints {
			setpoints[i] = 0
		}
	}

	for i := range s.psus {
		s.psus[i].Enabled = true
		s.psus[i].VoltageSetpoint = float32(setpoints[i])
	}

	s.sequenceOn = true
	s.systemConfig.AutoResetCounter = 0
	return []byte("#ON#"), nil
}

// ctrlSetProgramID implements control op 09. When both parsed fields
// are zero, it clears AMON test state and zeroes FPGA pattern memory
// with an asymmetric bank selection preserved from the original
// firmware: fpgas[0] clears pattern_a/b and tristate_a, while fpgas[1]
// clears only tristate_b.
func (s *Simulator) ctrlSetProgramID(content string) ([]byte, error) {
	if len(content) < 19 {
		return nil, errTooShort()
	}
	address, err := parseDecWindow(content, 9, 14)
	if err != nil {
		return nil, errInvalidParameter()
	}
	data, err := parseDecWindow(content, 14, 19)
	if err != nil {
		return nil, errInvalidParameter()
	}

	s.progIDHint = address
	s.progIDLint = data

	if address == 0 && data == 0 {
		s.systemConfig.ClocksRequired = false
		s.amonTestCount = 0
		for i := range s.amonTests {
			s.amonTests[i] = AmonTest{}
		}

		if s.fpgas[0].Present {
			zeroU32Slice(s.fpgas[0].PatternMemoryA)
			zeroU32Slice(s.fpgas[0].PatternMemoryB)
			zeroU32Slice(s.fpgas[0].TristateMemoryA)
		}
		if s.fpgas[1].Present {
			zeroU32Slice(s.fpgas[1].TristateMemoryB)
		}
	}
	return []byte("#OK#"), nil
}

func (s *Simulator) ctrlSetTempOK(content string) ([]byte, error) {
	if len(content) < 19 {
		return nil, errTooShort()
	}
	data, err := parseDecWindow(content, 14, 19)
	if err != nil {
		return nil, errInvalidParameter()
	}
	s.tempOK = data == 1
	return []byte(s.makeVIMonitorString()), nil
}

func (s *Simulator) ctrlSelfTestMem(content string) ([]byte, error) {
	if len(content) < 19 {
		return nil, errTooShort()
	}
	if _, err := parseDecWindow(content, 14, 19); err != nil {
		return nil, errInvalidParameter()
	}

	s.progIDHint = 0
	s.progIDLint = 0
	for i := range s.fpgas {
		s.fpgas[i].MemATestOK = true
		s.fpgas[i].MemBTestOK = true
		s.fpgas[i].CtrlATestOK = true
		s.fpgas[i].CtrlBTestOK = true
	}
	return []byte("#OK#"), nil
}

func (s *Simulator) ctrlGetFaultLog(content string) ([]byte, error) {
	if len(content) < 19 {
		return nil, errTooShort()
	}
	index, err := parseDecWindow(content, 14, 19)
	if err != nil {
		return nil, errInvalidParameter()
	}
	if int(index) < faultLogCount {
		return []byte(s.makeFaultLogString(&s.faultLogs[index])), nil
	}
	return []byte(s.makeFaultLogString(&FaultLog{})), nil
}

func (s *Simulator) ctrlDataLoad(content string) ([]byte, error) {
	if len(content) < 7 {
		return nil, errTooShort()
	}
	mode, err := parseDecWindow(content, 5, 7)
	if err != nil {
		return nil, errInvalidParameter()
	}

	switch mode {
	case 0:
		s.loadingPattern = true
		s.loadingDriver = false
		s.sramAddress = 1
		s.patternChecksum = 0
		return []byte("#OK#"), nil
	case 1:
		s.loadingPattern = false
		return []byte(sprintfPatternEnd(s.patternChecksum, s.sramAddress)), nil
	case 2:
		s.loadingDriver = true
		s.loadingPattern = false
		s.driverChecksum = 0
		return []byte("#OK#"), nil
	case 3:
		s.loadingDriver = false
		return []byte(sprintfChecksum(s.driverChecksum)), nil
	default:
		return nil, errInvalidParameter()
	}
}

func sprintfPatternEnd(checksum, addr uint32) string {
	return "#" + strconv.FormatUint(uint64(checksum), 10) + "," + strconv.FormatUint(uint64(addr), 10) + ",#"
}
