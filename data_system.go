package endzone250

// handleZ implements the 'Z' driver-load command: power-temperature-
// cycling configuration (spec.md §4.3, row Z).
func (s *Simulator) handleZ(content string) error {
	if len(content) < 15 {
		return errTooShort()
	}
	enabled, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	onTime, err := parseHexWindow(content, 5, 9)
	if err != nil {
		return err
	}
	offTime, err := parseHexWindow(content, 9, 13)
	if err != nil {
		return err
	}
	unit, err := parseHexWindow(content, 13, 15)
	if err != nil {
		return err
	}

	s.ptcConfig.Enabled = enabled == 1
	if unit != 1 {
		s.ptcConfig.OnTime = onTime * 60
		s.ptcConfig.OffTime = offTime * 60
	} else {
		s.ptcConfig.OnTime = onTime
		s.ptcConfig.OffTime = offTime
	}

	s.addDriverChecksum(checksumAdd(enabled, onTime, offTime, unit))
	return nil
}

// handleE implements the 'E' driver-load command: the system error-
// handling and PSU-sequencing flag group (spec.md §4.3, row E).
func (s *Simulator) handleE(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	s9, err := parseHexWindow(content, 3, 7)
	if err != nil {
		return err
	}
	s8, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	s7, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	s6, err := parseHexWindow(content, 11, 13)
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 13, 15)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 15, 16)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 16, 17)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 17, 18)
	if err != nil {
		return err
	}
	s1, err := parseHexWindow(content, 18, 19)
	if err != nil {
		return err
	}

	cfg := &s.systemConfig
	cfg.AutoReset = s6 == 1
	cfg.AutoResetRetries = s7
	cfg.StopOnVError = s1 == 1
	cfg.StopOnIError = s2 == 1
	cfg.StopOnClkError = s3 == 1
	cfg.PsuSequenceEnabled = s4 == 1
	cfg.StopOnTempError = s5 == 1
	cfg.PsuStepEnabled = s8 == 1
	cfg.PsuStepDelay = s9

	s.addDriverChecksum(checksumAdd(s9, s8, s7, s6, s5, s4, s3, s2, s1))
	return nil
}

// handleA implements the 'A' driver-load command: power-up-delay and
// set-point fields. Field s4 is parsed but unused, and s7 deliberately
// overlaps s5's trailing digits in the checksum — both preserved from
// the original firmware (spec.md §4.3, row A).
func (s *Simulator) handleA(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	s1, err := parseHexWindow(content, 7, 11)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 4, 7)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 3, 4)
	if err != nil {
		return err
	}
	_, err = parseHexWindow(content, 11, 13) // s4_unused
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 15, 19)
	if err != nil {
		return err
	}
	s6, err := parseHexWindow(content, 14, 15)
	if err != nil {
		return err
	}
	s7, err := parseHexWindow(content, 17, 19)
	if err != nil {
		return err
	}

	s.systemConfig.PowerUpDelay = s5
	s.systemConfig.SetPointEnabled = s6 == 1

	s.addDriverChecksum(checksumAdd(s1, s2, s3, s5, s6, s7))
	return nil
}

// handleF implements the 'F' driver-load command: clock-restart and
// clock-monitor-filter fields. Its checksum sums the nibble values of
// the 15 hex characters rather than the parsed field integers, a
// Preserved Quirk of the original firmware (spec.md §4.3, row F).
func (s *Simulator) handleF(content string) error {
	if len(content) < 18 {
		return errTooShort()
	}
	s9, err := parseHexWindow(content, 3, 4)
	if err != nil {
		return err
	}
	s8, err := parseHexWindow(content, 4, 5)
	if err != nil {
		return err
	}
	s7, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	s6, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	_, err = parseHexWindow(content, 9, 10) // s5_unused
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 10, 12)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 12, 14)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 14, 16)
	if err != nil {
		return err
	}
	s1, err := parseHexWindow(content, 16, 18)
	if err != nil {
		return err
	}
	nibbles, err := nibbleSum(content, 3, 18)
	if err != nil {
		return err
	}

	cfg := &s.systemConfig
	cfg.ClocksRestartRequired = s8 == 1
	cfg.ClocksRestartTime = (s6 + (s7 << 8)) * 60
	cfg.Clk32MonFilter = ^(s1 + (s2 << 8))
	cfg.Clk64MonFilter = ^(s3 + (s4 << 8))
	cfg.ClocksRequired = s9 == 1

	s.addDriverChecksum(nibbles)
	return nil
}

// handleJ implements the 'J' driver-load command: modulated-sequence
// timing fields (spec.md §4.3, row J).
func (s *Simulator) handleJ(content string) error {
	if len(content) < 17 {
		return errTooShort()
	}
	s1, err := parseHexWindow(content, 3, 4)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 4, 5)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	s6, err := parseHexWindow(content, 11, 13)
	if err != nil {
		return err
	}
	s7, err := parseHexWindow(content, 13, 15)
	if err != nil {
		return err
	}
	s8, err := parseHexWindow(content, 15, 17)
	if err != nil {
		return err
	}

	cfg := &s.systemConfig
	cfg.SigsModSequenceOn = s1
	cfg.SigsModSequenceOff = s2
	cfg.SeqOffDelay3 = s3
	cfg.SeqOnDelay3 = s4
	cfg.SeqOffDelay2 = s5
	cfg.SeqOnDelay2 = s6
	cfg.SeqOffDelay1 = s7
	cfg.SeqOnDelay1 = s8

	s.addDriverChecksum(checksumAdd(s1, s2, s3, s4, s5, s6, s7, s8))
	return nil
}
