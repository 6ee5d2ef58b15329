package endzone250

// handleV implements the 'V' driver-load command: PSU voltage setpoint
// staging fields (spec.md §4.3, row V).
func (s *Simulator) handleV(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	psuNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	reserved, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 7, 10)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 10, 13)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 13, 16)
	if err != nil {
		return err
	}
	s1, err := parseHexWindow(content, 16, 19)
	if err != nil {
		return err
	}
	// Array-bounded write: out-of-range ordinals (e.g. PSU #7, a valid
	// clock-monitor-config slot this handler ignores) are silently
	// dropped, not an error — the checksum still accumulates.
	if psuNum >= 1 && int(psuNum) <= psuCount {
		psu := &s.psus[psuNum-1]
		psu.VoltageSetS4 = uint16(s4)
		psu.VoltageSetS3 = uint16(s3)
		psu.VoltageSetS2 = uint16(s2)
		psu.VoltageSetS1 = uint16(s1)
	}

	s.addDriverChecksum(checksumAdd(psuNum, reserved, s4, s3, s2, s1))
	return nil
}

// handleQ implements the 'Q' driver-load command: PSU sequencing and
// calibration fields (spec.md §4.3, row Q).
func (s *Simulator) handleQ(content string) error {
	if len(content) < 21 {
		return errTooShort()
	}
	psuNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	delay, err := parseHexWindow(content, 5, 8)
	if err != nil {
		return err
	}
	seqID, err := parseHexWindow(content, 8, 9)
	if err != nil {
		return err
	}
	calV, err := parseHexWindow(content, 9, 13)
	if err != nil {
		return err
	}
	lowV, err := parseHexWindow(content, 13, 16)
	if err != nil {
		return err
	}
	highV, err := parseHexWindow(content, 16, 19)
	if err != nil {
		return err
	}
	vreadGain, err := parseHexWindow(content, 19, 20)
	if err != nil {
		return err
	}
	vmonMult, err := parseHexWindow(content, 20, 21)
	if err != nil {
		return err
	}
	// Array-bounded write: out-of-range psuNum is silently dropped, not
	// an error — the checksum still accumulates.
	if psuNum >= 1 && int(psuNum) <= psuCount {
		psu := &s.psus[psuNum-1]
		psu.SequenceID = uint8(seqID)
		psu.SequenceDelay = delay

		monDivisor := float32(1.0)
		if vmonMult != 1 {
			monDivisor = 10.0
		}
		psu.HighVoltageLimit = float32(highV) / monDivisor
		psu.LowVoltageLimit = float32(lowV) / monDivisor

		var calDivisor float32
		switch vreadGain {
		case 2:
			calDivisor = 500.0
		case 1:
			calDivisor = 1000.0
		default:
			calDivisor = 10000.0
		}
		psu.PsuCalVal = float32(calV) / calDivisor
	}

	s.addDriverChecksum(checksumAdd(psuNum, delay, seqID, calV, lowV, highV))
	return nil
}

// handleM implements the 'M' driver-load command: microstep enable and
// PSU microstep timing fields (spec.md §4.3, row M).
func (s *Simulator) handleM(content string) error {
	if len(content) < 20 {
		return errTooShort()
	}
	psuNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	steps, err := parseHexWindow(content, 5, 8)
	if err != nil {
		return err
	}
	enable, err := parseHexWindow(content, 8, 9)
	if err != nil {
		return err
	}
	delay, err := parseHexWindow(content, 9, 13)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 13, 16)
	if err != nil {
		return err
	}
	s1, err := parseHexWindow(content, 16, 19)
	if err != nil {
		return err
	}
	reserved, err := parseHexWindow(content, 19, 20)
	if err != nil {
		return err
	}
	_ = reserved
	// ustep_enabled is set regardless of psuNum validity; the per-PSU
	// fields below are an array-bounded write, silently dropped on an
	// out-of-range ordinal rather than erroring.
	s.ustepEnabled = enable == 1
	if psuNum >= 1 && int(psuNum) <= psuCount {
		psu := &s.psus[psuNum-1]
		psu.UstepSteps = steps
		psu.UstepDelay = delay
	}

	s.addDriverChecksum(checksumAdd(psuNum, steps, enable, delay, s2, s1))
	return nil
}

// handleD implements the 'D' driver-load command: PSU current
// calibration fields, with a split target depending on whether psu#
// addresses a voltage or current channel (spec.md §4.3, row D).
func (s *Simulator) handleD(content string) error {
	if len(content) < 17 {
		return errTooShort()
	}
	psuNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	iCal, err := parseHexWindow(content, 5, 9)
	if err != nil {
		return err
	}
	iMon, err := parseHexWindow(content, 9, 12)
	if err != nil {
		return err
	}
	iCalOff, err := parseHexWindow(content, 12, 16)
	if err != nil {
		return err
	}
	posNeg, err := parseHexWindow(content, 16, 17)
	if err != nil {
		return err
	}

	// Array-bounded write: an ordinal outside both the voltage-channel and
	// current-channel ranges is silently dropped, not an error — the
	// checksum still accumulates.
	switch {
	case psuNum >= 1 && int(psuNum) <= psuCount:
		psu := &s.psus[psuNum-1]
		psu.CurrentMonitorLimit = float32(iMon) / 100.0
		psu.ICalVal = float32(iCal) / 1000.0
		v := float32(iCalOff) / 100.0
		if posNeg == 1 {
			v = -v
		}
		psu.ICalOffsetVal = v
		psu.PosNegI = uint8(posNeg)
	case psuNum >= 7 && int(psuNum) <= 8:
		psu := &s.psus[psuNum-7]
		v := float32(iCalOff) / 100.0
		if posNeg == 1 {
			v = -v
		}
		psu.VCalOffsetVal = v
		psu.PosNegV = uint8(posNeg)
	}

	s.addDriverChecksum(checksumAdd(psuNum, iCal, iMon, iCalOff, posNeg))
	return nil
}
