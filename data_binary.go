package endzone250

import "encoding/binary"

// handlePatternCommand implements the 'P'/'R' pattern-load handlers
// (spec.md §4.3.2). Unlike the driver-load letters, content is raw
// binary, not ASCII hex: content[0] is the letter, the remainder is
// packed little-endian 32-bit words interleaved with single control
// bytes. Behavior branches on whether both FPGAs are present.
func (s *Simulator) handlePatternCommand(letter byte, content []byte) error {
	if s.fpgas[1].Present {
		return s.handlePatternTwoFPGA(letter, content)
	}
	return s.handlePatternOneFPGA(letter, content)
}

func le32At(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

func patternWord(v uint32, complement bool) uint32 {
	if complement {
		return ^v
	}
	return v
}

// handlePatternTwoFPGA writes one word to each FPGA's mem_a bank per
// quartet, two quartets per frame, advancing sram_address by 2.
func (s *Simulator) handlePatternTwoFPGA(letter byte, content []byte) error {
	if len(content) < 19 {
		return errTooShort()
	}
	complement := letter == 'R'

	d1a := le32At(content, 1)
	d1b := le32At(content, 5)
	ctrl1 := content[9]
	d2a := le32At(content, 10)
	d2b := le32At(content, 14)
	ctrl2 := content[18]

	addr := s.sramAddress
	s.writePatternWord(0, addr, patternWord(d1a, complement), complement)
	s.writePatternWord(1, addr, patternWord(d1b, complement), complement)
	addr++
	s.writePatternWord(0, addr, patternWord(d2a, complement), complement)
	s.writePatternWord(1, addr, patternWord(d2b, complement), complement)
	s.sramAddress += 2

	contribution := sumBytes(content[1:9]) + sumBytes(content[10:18]) + uint32(ctrl1) + uint32(ctrl2)
	s.addPatternChecksum(contribution)
	return nil
}

// handlePatternOneFPGA writes four successive words into fpgas[0]'s
// mem_a bank, each followed by a control byte.
func (s *Simulator) handlePatternOneFPGA(letter byte, content []byte) error {
	if len(content) < 21 {
		return errTooShort()
	}
	complement := letter == 'R'

	var ctrlSum uint32
	var dataSum uint32
	addr := s.sramAddress
	off := 1
	for i := 0; i < 4; i++ {
		word := le32At(content, off)
		ctrl := content[off+4]
		dataSum += sumBytes(content[off : off+4])
		ctrlSum += uint32(ctrl)

		s.writePatternWord(0, addr, patternWord(word, complement), complement)
		addr++
		off += 5
	}
	s.sramAddress += 4

	s.addPatternChecksum(ctrlSum + dataSum)
	return nil
}

func (s *Simulator) writePatternWord(fpga int, addr uint32, word uint32, complement bool) {
	if int(addr) >= patternMemSize {
		return
	}
	if complement {
		s.fpgas[fpga].TristateMemoryA[addr] = word
	} else {
		s.fpgas[fpga].PatternMemoryA[addr] = word
	}
}

func sumBytes(b []byte) uint32 {
	var sum uint32
	for _, v := range b {
		sum += uint32(v)
	}
	return sum
}
