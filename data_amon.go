package endzone250

import "math"

func amonTestSlot(s *Simulator, testNum uint32) (*AmonTest, error) {
	if testNum < 1 || int(testNum) > amonTestCapacity {
		return nil, errInvalidParameter()
	}
	return &s.amonTests[testNum-1], nil
}

// amonTestSlotBounded is the array-bounded-write counterpart to
// amonTestSlot: an out-of-range test# is not an error, it just means
// there is no slot to write into.
func amonTestSlotBounded(s *Simulator, testNum uint32) *AmonTest {
	if testNum < 1 || int(testNum) > amonTestCapacity {
		return nil
	}
	return &s.amonTests[testNum-1]
}

// handleW implements the 'W' driver-load command: AMON test topology
// fields (spec.md §4.3, row W).
func (s *Simulator) handleW(content string) error {
	if len(content) < 21 {
		return errTooShort()
	}
	testNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	typ, err := parseHexWindow(content, 5, 7)
	if err != nil {
		return err
	}
	tp1Mux, err := parseHexWindow(content, 7, 9)
	if err != nil {
		return err
	}
	tp1AmonA, err := parseHexWindow(content, 9, 11)
	if err != nil {
		return err
	}
	tp1AmonB, err := parseHexWindow(content, 11, 13)
	if err != nil {
		return err
	}
	tp2Mux, err := parseHexWindow(content, 13, 15)
	if err != nil {
		return err
	}
	tp2AmonA, err := parseHexWindow(content, 15, 17)
	if err != nil {
		return err
	}
	tp2AmonB, err := parseHexWindow(content, 17, 19)
	if err != nil {
		return err
	}
	psuLink, err := parseHexWindow(content, 19, 21)
	if err != nil {
		return err
	}

	// Array-bounded write: an out-of-range test# is silently dropped, not
	// an error — the checksum still accumulates.
	if test := amonTestSlotBounded(s, testNum); test != nil {
		test.TestType = typ
		test.Tp1MuxCh = tp1Mux
		test.Tp1AmonMuxA = tp1AmonA
		test.Tp1AmonMuxB = tp1AmonB
		test.Tp2MuxCh = tp2Mux
		test.Tp2AmonMuxA = tp2AmonA
		test.Tp2AmonMuxB = tp2AmonB
		test.PsuLink = psuLink
	}

	s.addDriverChecksum(checksumAdd(testNum, typ, tp1Mux, tp1AmonA, tp1AmonB, tp2Mux, tp2AmonA, tp2AmonB, psuLink))
	return nil
}

// handleU implements the 'U' driver-load command: AMON gain fields and
// the active test count (spec.md §4.3, row U).
func (s *Simulator) handleU(content string) error {
	if len(content) < 19 {
		return errTooShort()
	}
	testNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	tp1Gain, err := parseHexWindow(content, 5, 9)
	if err != nil {
		return err
	}
	tp2Gain, err := parseHexWindow(content, 9, 13)
	if err != nil {
		return err
	}
	sumGain, err := parseHexWindow(content, 13, 17)
	if err != nil {
		return err
	}
	testCount, err := parseHexWindow(content, 17, 19)
	if err != nil {
		return err
	}

	// Array-bounded write: an out-of-range test# is silently dropped, not
	// an error — the checksum still accumulates. amon_test_count is set
	// unconditionally regardless of testNum's validity.
	if test := amonTestSlotBounded(s, testNum); test != nil {
		test.Tp1Gain = float32(tp1Gain) / 1000.0
		test.Tp2Gain = float32(tp2Gain) / 1000.0
		test.SumGain = float32(sumGain) / 1000.0
	}
	s.amonTestCount = testCount

	s.addDriverChecksum(checksumAdd(testNum, tp1Gain, tp2Gain, sumGain, testCount))
	return nil
}

// handleB implements the 'B' driver-load command: the cmd_type-keyed
// AMON field group (spec.md §4.3, row B and §4.3.1).
func (s *Simulator) handleB(content string) error {
	if len(content) < 18 {
		return errTooShort()
	}
	cmdType, err := parseHexWindow(content, 3, 4)
	if err != nil {
		return err
	}
	testNum, err := parseHexWindow(content, 4, 6)
	if err != nil {
		return err
	}
	s1, err := parseHexWindow(content, 8, 10)
	if err != nil {
		return err
	}
	s2, err := parseHexWindow(content, 10, 12)
	if err != nil {
		return err
	}
	s3, err := parseHexWindow(content, 12, 14)
	if err != nil {
		return err
	}
	s4, err := parseHexWindow(content, 14, 16)
	if err != nil {
		return err
	}
	s5, err := parseHexWindow(content, 16, 18)
	if err != nil {
		return err
	}

	if cmdType < 1 || cmdType > 4 {
		return errInvalidParameter()
	}
	if testNum < 1 || int(testNum) > amonTestCapacity {
		return errInvalidParameter()
	}
	s.amonTestCount = testNum
	test := &s.amonTests[testNum-1]

	switch cmdType {
	case 1:
		test.Tp1MuxCh = s1
		test.Tp1PeakDetect = s2
		test.Tp2MuxCh = s3
		test.Tp2PeakDetect = s4
		test.TestType = s5
	case 2:
		test.Tp1AmonMuxA = s1
		test.Tp1Samples = s2
		test.Tp2AmonMuxA = s3
		test.Tp2Samples = s4
		test.Board = s5
	case 3:
		test.Tp1AmonMuxB = s1
		test.Tp1Discharge = s2
		test.Tp2AmonMuxB = s3
		test.Tp2Discharge = s4
		test.Tag = s5
	case 4:
		test.Tp1CommonMux = s1
		test.Tp1DischargeTime = s2
		test.Tp2CommonMux = s3
		test.Tp2DischargeTime = s4
		test.UnitType = s5
	}

	s.addDriverChecksum(checksumAdd(cmdType, testNum, s1, s2, s3, s4, s5))
	return nil
}

// handleI implements the 'I' driver-load command: the cmd_type-keyed
// raw IEEE-754 float field (spec.md §4.3, row I). The checksum
// contribution sums cmd_type, test#, and the per-nibble digit values
// of the eight hex characters that encode the float, not the parsed
// integer itself (matching the original firmware).
func (s *Simulator) handleI(content string) error {
	if len(content) < 21 {
		return errTooShort()
	}
	cmdType, err := parseHexWindow(content, 3, 4)
	if err != nil {
		return err
	}
	testNum, err := parseHexWindow(content, 4, 6)
	if err != nil {
		return err
	}
	bits, err := parseHexWindow(content, 13, 21)
	if err != nil {
		return err
	}
	nibbles, err := nibbleSum(content, 13, 21)
	if err != nil {
		return err
	}

	test, err := amonTestSlot(s, testNum)
	if err != nil {
		return err
	}
	v := math.Float32frombits(bits)

	switch cmdType {
	case 1:
		test.Tp1Gain = v
	case 2:
		test.Tp2Gain = v
	case 3:
		test.SumGain = v
	case 4:
		test.CalGain = v
	case 5:
		test.CalOffset = v
	case 6:
		test.HighLimit = v
	case 7:
		test.LowLimit = v
	default:
		return errInvalidParameter()
	}

	s.addDriverChecksum(checksumAdd(cmdType, testNum, nibbles))
	return nil
}

// handleY implements the 'Y' driver-load command: AMON calibration and
// identification fields (spec.md §4.3, row Y).
func (s *Simulator) handleY(content string) error {
	if len(content) < 17 {
		return errTooShort()
	}
	testNum, err := parseHexWindow(content, 3, 5)
	if err != nil {
		return err
	}
	calGain, err := parseHexWindow(content, 5, 9)
	if err != nil {
		return err
	}
	calOffset, err := parseHexWindow(content, 9, 13)
	if err != nil {
		return err
	}
	board, err := parseHexWindow(content, 13, 15)
	if err != nil {
		return err
	}
	tag, err := parseHexWindow(content, 15, 17)
	if err != nil {
		return err
	}

	// Array-bounded write: an out-of-range test# is silently dropped, not
	// an error — the checksum still accumulates.
	if test := amonTestSlotBounded(s, testNum); test != nil {
		test.CalGain = float32(calGain) / 1000.0
		test.CalOffset = float32(calOffset) / 1000.0
		test.Board = board
		test.Tag = tag
	}

	s.addDriverChecksum(checksumAdd(testNum, calGain, calOffset, board, tag))
	return nil
}
