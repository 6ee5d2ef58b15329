package endzone250

// handleS implements the 'S' driver-load command: sine-wave module
// configuration fields (spec.md §4.3, row S).
func (s *Simulator) handleS(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	swNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	used, err := parseHexWindow(content, 5, 6)
	if err != nil {
		return err
	}
	typ, err := parseHexWindow(content, 6, 7)
	if err != nil {
		return err
	}
	reset, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	duty, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	freqBase, err := parseHexWindow(content, 11, 13)
	if err != nil {
		return err
	}
	offset, err := parseHexWindow(content, 13, 16)
	if err != nil {
		return err
	}
	amp, err := parseHexWindow(content, 16, 19)
	if err != nil {
		return err
	}

	if swNum < 1 || int(swNum) > sineWaveCount {
		return errInvalidParameter()
	}
	sw := &s.sineWaves[swNum-1]
	sw.Enabled = used == 1
	sw.ModuleType = uint8(typ)
	sw.ResetValue = reset
	sw.DutyCycle = duty
	sw.FrequencyBase = freqBase
	sw.Offset = offset
	sw.Amplitude = amp

	s.addDriverChecksum(checksumAdd(swNum, used, typ, reset, duty, freqBase, offset, amp))
	return nil
}
