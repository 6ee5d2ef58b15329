package endzone250

// dispatch implements the mode gate (spec.md §4.2): it routes content
// to the pattern-load binary handlers, the driver-load ASCII handlers,
// or the control-frame parser, depending on session flags and the
// leading letter. The bool return reports whether content was
// recognized and acted on; a false return with a nil error means the
// frame was silently ignored, matching hardware behavior for a data
// letter arriving outside its session.
func (s *Simulator) dispatch(content []byte) (response []byte, handled bool, err error) {
	letter := content[0]

	if s.loadingPattern && (letter == 'P' || letter == 'R') {
		err = s.handlePatternCommand(letter, content)
		return nil, true, err
	}

	if s.loadingDriver && isDriverLoadLetter(letter) {
		err = s.handleDriverCommand(letter, string(content))
		return nil, true, err
	}

	if letter == 'C' {
		resp, err := s.handleControlCommand(string(content))
		return resp, true, err
	}

	return nil, false, nil
}

func isDriverLoadLetter(letter byte) bool {
	switch letter {
	case 'V', 'Q', 'T', 'D', 'S', 'E', 'A', 'F', 'J', 'L', 'X', 'N', 'G', 'H', 'K', 'O', 'M', 'Z', 'W', 'U', 'B', 'I', 'Y':
		return true
	default:
		return false
	}
}
