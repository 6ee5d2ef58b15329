package endzone250

// measureAmonTest synthesizes a measured value and pass/fail status for
// AMON test slot i, modeling the absence of a real ADC by deriving a
// plausible reading from the linked PSU's configured limits (spec.md
// §4.7).
func (s *Simulator) measureAmonTest(i int) (value float32, status uint32) {
	test := &s.amonTests[i]

	psuIndex := 0
	if test.PsuLink > 0 && int(test.PsuLink) <= psuCount {
		psuIndex = int(test.PsuLink) - 1
	}
	psu := &s.psus[psuIndex]

	var raw float32
	if test.TestType == 1 {
		raw = (psu.HighVoltageLimit + psu.LowVoltageLimit) / 2.0
	} else {
		raw = psu.CurrentMonitorLimit / 2.0
	}

	switch test.TestType {
	case 1, 2:
		value = raw*test.Tp1Gain - test.CalOffset
		value *= test.CalGain
	case 3:
		reading1 := raw * test.Tp1Gain
		reading2 := (raw * 0.9) * test.Tp2Gain
		diff := reading1 - reading2
		if diff < 0 {
			diff = -diff
		}
		value = diff * test.SumGain
		value -= test.CalOffset
		value *= test.CalGain
	default:
		value = 0
	}

	if value < 0 {
		value = 0
	}

	status = s.amonTestStatus(value, test)
	return value, status
}

func (s *Simulator) amonTestStatus(value float32, test *AmonTest) uint32 {
	if test.PsuLink == 0 || int(test.PsuLink) > psuCount {
		return 0
	}
	psu := &s.psus[test.PsuLink-1]

	switch test.TestType {
	case 1:
		if value > psu.HighVoltageLimit {
			return 1
		}
		if value < psu.LowVoltageLimit {
			return 2
		}
	case 2, 3:
		if value > psu.CurrentMonitorLimit {
			return 1
		}
	}
	return 0
}
