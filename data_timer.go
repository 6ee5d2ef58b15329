package endzone250

// handleT implements the 'T' driver-load command: the four timer and
// four alarm value fields (spec.md §4.3, row T).
func (s *Simulator) handleT(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	var vals [8]uint32
	offsets := [8]int{3, 5, 7, 9, 11, 13, 15, 17}
	for i, off := range offsets {
		v, err := parseHexWindow(content, off, off+2)
		if err != nil {
			return err
		}
		vals[i] = v
	}
	// vals holds s8..s1 in ascending-offset order (offset 3 is s8,
	// offset 17 is s1); timers take s1..s4, alarms s5..s8.
	s8, s7, s6, s5, s4, s3, s2, s1 := vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7]
	s.timerValues = [4]uint32{s1, s2, s3, s4}
	s.alarmValues = [4]uint32{s5, s6, s7, s8}

	s.addDriverChecksum(checksumAdd(vals[:]...))
	return nil
}
