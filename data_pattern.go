package endzone250

// handleL implements the 'L' driver-load command: pattern-loop table
// entries (spec.md §4.3, row L).
func (s *Simulator) handleL(content string) error {
	if len(content) < 11 {
		return errTooShort()
	}
	loopNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	count, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	endAddr, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	startAddr, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}

	// Array-bounded write: an out-of-range loopNum is silently dropped,
	// not an error — the checksum still accumulates.
	if loopNum >= 1 && int(loopNum) <= patternLoopCount {
		s.patternLoops[loopNum-1] = PatternLoop{Count: count, EndAddr: endAddr, StartAddr: startAddr}
	}

	s.addDriverChecksum(checksumAdd(loopNum, count, endAddr, startAddr))
	return nil
}

// handleX implements the 'X' driver-load command: main clock
// configuration and loop-enable fields (spec.md §4.3, row X).
func (s *Simulator) handleX(content string) error {
	if len(content) < 14 {
		return errTooShort()
	}
	s1, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 11, 12)
	if err != nil {
		return err
	}
	s6, err := parseHexWindow(content, 12, 14)
	if err != nil {
		return err
	}

	s.mainClockConfig = MainClockConfig{FreqLow: s1, FreqHigh: s2, PeriodLow: s3, PeriodHigh: s4, Source: s5}
	s.loopEnables = s6

	s.addDriverChecksum(checksumAdd(s1, s2, s3, s4, s5, s6))
	return nil
}

// parseEightByteFields parses the eight 2-hex-digit fields shared by
// the N/G/H commands, returned in s8..s1 order (offset 3 is s8,
// offset 17 is s1).
func parseEightByteFields(content string) (s8, s7, s6, s5, s4, s3, s2, s1 uint32, err error) {
	offsets := [8]int{3, 5, 7, 9, 11, 13, 15, 17}
	var vals [8]uint32
	for i, off := range offsets {
		v, e := parseHexWindow(content, off, off+2)
		if e != nil {
			return 0, 0, 0, 0, 0, 0, 0, 0, e
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7], nil
}

// handleN implements the 'N' driver-load command: the repeat-count
// pair (spec.md §4.3, row N).
func (s *Simulator) handleN(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	s8, s7, s6, s5, s4, s3, s2, s1, err := parseEightByteFields(content)
	if err != nil {
		return err
	}
	s.repeatCount1 = le32(byte(s1), byte(s2), byte(s3), byte(s4))
	s.repeatCount2 = le32(byte(s5), byte(s6), byte(s7), byte(s8))

	s.addDriverChecksum(checksumAdd(s8, s7, s6, s5, s4, s3, s2, s1))
	return nil
}

// handleG implements the 'G' driver-load command: FRC frequency fields
// (spec.md §4.3, row N / G / H).
func (s *Simulator) handleG(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	s8, s7, s6, s5, s4, s3, s2, s1, err := parseEightByteFields(content)
	if err != nil {
		return err
	}
	s.frcConfig.Frequency14 = le32(byte(s1), byte(s2), byte(s3), byte(s4))
	s.frcConfig.Frequency58 = le32(byte(s5), byte(s6), byte(s7), byte(s8))

	s.addDriverChecksum(checksumAdd(s8, s7, s6, s5, s4, s3, s2, s1))
	return nil
}

// handleH implements the 'H' driver-load command: FRC period fields
// (spec.md §4.3, row N / G / H).
func (s *Simulator) handleH(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	s8, s7, s6, s5, s4, s3, s2, s1, err := parseEightByteFields(content)
	if err != nil {
		return err
	}
	s.frcConfig.Period14 = le32(byte(s1), byte(s2), byte(s3), byte(s4))
	s.frcConfig.Period58 = le32(byte(s5), byte(s6), byte(s7), byte(s8))

	s.addDriverChecksum(checksumAdd(s8, s7, s6, s5, s4, s3, s2, s1))
	return nil
}

// handleK implements the 'K' driver-load command: FRC source fields,
// packed from eight single-hex-digit nibbles (spec.md §4.3, row K). The
// packing itself is the same little-endian byte packing N/G/H use.
func (s *Simulator) handleK(content string) error {
	if len(content) < 11 {
		return errTooShort()
	}
	var n [8]uint32
	for i := 0; i < 8; i++ {
		v, err := parseHexWindow(content, 3+i, 4+i)
		if err != nil {
			return err
		}
		n[i] = v
	}
	// n[0]=s8 .. n[7]=s1, matching the N/G/H field order.
	s8, s7, s6, s5, s4, s3, s2, s1 := n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7]
	s.frcConfig.Source14 = le32(byte(s1), byte(s2), byte(s3), byte(s4))
	s.frcConfig.Source58 = le32(byte(s5), byte(s6), byte(s7), byte(s8))

	s.addDriverChecksum(checksumAdd(n[:]...))
	return nil
}

// handleO implements the 'O' driver-load command: output-routing table
// entries (spec.md §4.3, row O).
func (s *Simulator) handleO(content string) error {
	if len(content) < 13 {
		return errTooShort()
	}
	group, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 11, 13)
	if err != nil {
		return err
	}

	// Array-bounded write: an out-of-range group is silently dropped, not
	// an error — the checksum still accumulates.
	if group >= 1 && int(group) <= routingGroups {
		s.outputRouting[group-1] = le32(byte(s2), byte(s3), byte(s4), byte(s5))
	}

	s.addDriverChecksum(checksumAdd(group, s2, s3, s4, s5))
	return nil
}
