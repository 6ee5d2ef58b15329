package endzone250

// patternMemSize is the length of each FPGA pattern/tristate memory
// bank: 0x100000 32-bit words, addressed directly by SRAM address.
// Preallocated once at construction and never resized — resizing
// during a pattern-load session would break the address stability the
// protocol depends on (spec.md §5).
const patternMemSize = 0x100000

// FPGA is the complete state of one pattern-generator FPGA, including
// its four preallocated memory banks.
type FPGA struct {
	Present  bool
	Position uint8
	Version  uint8

	MemATestOK  bool
	MemBTestOK  bool
	CtrlATestOK bool
	CtrlBTestOK bool

	PatternMemoryA []uint32
	PatternMemoryB []uint32
	TristateMemoryA []uint32
	TristateMemoryB []uint32
}

func newFPGA() FPGA {
	return FPGA{
		PatternMemoryA:  make([]uint32, patternMemSize),
		PatternMemoryB:  make([]uint32, patternMemSize),
		TristateMemoryA: make([]uint32, patternMemSize),
		TristateMemoryB: make([]uint32, patternMemSize),
	}
}

func zeroU32Slice(s []uint32) {
	for i := range s {
		s[i] = 0
	}
}
