package endzone250

// addDriverChecksum folds a handler's checksum contribution into
// driver_checksum with 32-bit wrapping addition and appends the
// required debug-log line (spec.md §4.3).
func (s *Simulator) addDriverChecksum(contribution uint32) {
	s.driverChecksum += contribution
	s.log("Driver checksum updated by %d, new value: %d", contribution, s.driverChecksum)
}

// addPatternChecksum is the pattern-load-session analogue of
// addDriverChecksum (spec.md §4.3.2).
func (s *Simulator) addPatternChecksum(contribution uint32) {
	s.patternChecksum += contribution
	s.log("Pattern checksum updated by %d, new value: %d", contribution, s.patternChecksum)
}

// handleDriverCommand routes a driver-load-session ASCII frame to its
// per-letter handler.
func (s *Simulator) handleDriverCommand(letter byte, content string) error {
	switch letter {
	case 'V':
		return s.handleV(content)
	case 'Q':
		return s.handleQ(content)
	case 'M':
		return s.handleM(content)
	case 'D':
		return s.handleD(content)
	case 'Z':
		return s.handleZ(content)
	case 'W':
		return s.handleW(content)
	case 'U':
		return s.handleU(content)
	case 'B':
		return s.handleB(content)
	case 'I':
		return s.handleI(content)
	case 'Y':
		return s.handleY(content)
	case 'T':
		return s.handleT(content)
	case 'S':
		return s.handleS(content)
	case 'E':
		return s.handleE(content)
	case 'A':
		return s.handleA(content)
	case 'F':
		return s.handleF(content)
	case 'J':
		return s.handleJ(content)
	case 'L':
		return s.handleL(content)
	case 'X':
		return s.handleX(content)
	case 'N':
		return s.handleN(content)
	case 'G':
		return s.handleG(content)
	case 'H':
		return s.handleH(content)
	case 'K':
		return s.handleK(content)
	case 'O':
		return s.handleO(content)
	default:
		return errUnimplemented(int(letter))
	}
}
