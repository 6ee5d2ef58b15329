// Package endzone250 simulates the command-protocol engine of the
// "Endzone 250" industrial test-equipment driver board: frame
// extraction, address filtering, mode-gated dispatch among pattern-load,
// driver-load, and control command families, per-command field parsing
// with bit-exact state mutation, checksum accumulation over data-load
// sessions, and hardware-exact response formatting.
//
// The simulator is synchronous and single-threaded: ProcessCommand is
// the sole mutator of a Simulator and must not be called concurrently
// from multiple goroutines on the same instance.
package endzone250

import "fmt"

// Config carries the construction-time options for a Simulator: its
// firmware version and the initial hardware topology a caller wants
// to simulate (which FPGAs/clock generators/sine waves are physically
// present, PSU hardware-type codes, backplane topology). The RS-485
// address is not part of Config; it is New's first argument. Fields
// start from defaultConfig (firmware 1.46, AMON type 0xFF, both
// backplane resistors present, everything else zero); use Option
// functions to populate a non-trivial topology.
type Config struct {
	FirmwareVersion float32

	PsuDataCodes [psuCount]uint8

	FpgaPresent      [fpgaCount]bool
	FpgaPosition     [fpgaCount]uint8
	FpgaVersion      [fpgaCount]uint8
	ClockPresent     [clockGenCount]bool
	ClockModuleType  [clockGenCount]uint8
	ClockFpgaVersion [clockGenCount]uint8
	SinePresent      [sineWaveCount]bool
	SineModuleType   [sineWaveCount]uint8
	SineFpgaVersion  [sineWaveCount]uint8

	AmonPresent bool
	AmonType    uint8

	BackPanelAddress uint8
	BibCode          uint16
	BpRes1Present    bool
	BpRes2Present    bool
}

// Option mutates a Config during New.
type Option func(*Config)

// WithFirmwareVersion overrides the default firmware version (1.46).
func WithFirmwareVersion(v float32) Option {
	return func(c *Config) { c.FirmwareVersion = v }
}

// WithFPGA marks FPGA index i (0 or 1) present with the given position
// and version.
func WithFPGA(i int, position, version uint8) Option {
	return func(c *Config) {
		c.FpgaPresent[i] = true
		c.FpgaPosition[i] = position
		c.FpgaVersion[i] = version
	}
}

// WithClockGenerator marks clock generator index i (0..3) present.
func WithClockGenerator(i int, moduleType, fpgaVersion uint8) Option {
	return func(c *Config) {
		c.ClockPresent[i] = true
		c.ClockModuleType[i] = moduleType
		c.ClockFpgaVersion[i] = fpgaVersion
	}
}

// WithSineWave marks sine-wave module index i (0 or 1) present.
func WithSineWave(i int, moduleType, fpgaVersion uint8) Option {
	return func(c *Config) {
		c.SinePresent[i] = true
		c.SineModuleType[i] = moduleType
		c.SineFpgaVersion[i] = fpgaVersion
	}
}

// WithAmon marks the AMON/DUTMON module present with the given type
// byte.
func WithAmon(amonType uint8) Option {
	return func(c *Config) {
		c.AmonPresent = true
		c.AmonType = amonType
	}
}

// WithBackplane sets the backplane topology fields reported by the
// reference-monitor and configuration strings.
func WithBackplane(address uint8, bibCode uint16, res1, res2 bool) Option {
	return func(c *Config) {
		c.BackPanelAddress = address
		c.BibCode = bibCode
		c.BpRes1Present = res1
		c.BpRes2Present = res2
	}
}

func defaultConfig() Config {
	return Config{
		FirmwareVersion: 1.46,
		AmonType:        0xFF,
		BpRes1Present:   true,
		BpRes2Present:   true,
	}
}

// Simulator owns the complete internal state of one simulated Endzone
// 250 board. A Simulator is owned exclusively by its caller: there is
// no internal locking, and ProcessCommand must be called serially.
type Simulator struct {
	rs485Address    uint8
	firmwareVersion float32
	sequenceOn      bool
	progIDHint      uint32
	progIDLint      uint32
	tempOK          bool

	psus         [psuCount]PSU
	psuDataCodes [psuCount]uint8

	fpgas           [fpgaCount]FPGA
	clockGenerators [clockGenCount]ClockGenerator
	sineWaves       [sineWaveCount]SineWave

	amonPresent bool
	amonType    uint8
	amonBp      uint32

	timerValues [4]uint32
	alarmValues [4]uint32

	systemConfig    SystemConfig
	ptcConfig       PtcConfig
	mainClockConfig MainClockConfig
	frcConfig       FrcConfig

	amonTests     [amonTestCapacity]AmonTest
	amonTestCount uint32

	ustepEnabled bool

	patternLoops  [patternLoopCount]PatternLoop
	loopEnables   uint32
	repeatCount1  uint32
	repeatCount2  uint32
	outputRouting [routingGroups]uint32

	backPanelAddress uint8
	bibCode          uint16
	bpRes1Present    bool
	bpRes2Present    bool
	doorOpen         bool

	faultLogs [faultLogCount]FaultLog

	// Load-session state.
	sramAddress     uint32
	patternChecksum uint32
	driverChecksum  uint32
	loadingPattern  bool
	loadingDriver   bool

	logs []string
}

// New constructs a Simulator at the given RS-485 address, applying any
// Options to its initial hardware topology. A bare New(addr) matches
// the hardware's power-on defaults: every module absent, every PSU
// enabled with unity gains and +/-1.0 limits, backplane resistors
// present, door closed.
func New(address uint8, opts ...Option) *Simulator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Simulator{
		rs485Address:    address,
		firmwareVersion: cfg.FirmwareVersion,
		amonPresent:     cfg.AmonPresent,
		amonType:        cfg.AmonType,
		psuDataCodes:    cfg.PsuDataCodes,
		backPanelAddress: cfg.BackPanelAddress,
		bibCode:          cfg.BibCode,
		bpRes1Present:    cfg.BpRes1Present,
		bpRes2Present:    cfg.BpRes2Present,
		sramAddress:      1,
	}

	for i := range s.psus {
		s.psus[i] = defaultPSU()
	}
	for i := range s.fpgas {
		s.fpgas[i] = newFPGA()
		s.fpgas[i].Present = cfg.FpgaPresent[i]
		s.fpgas[i].Position = cfg.FpgaPosition[i]
		s.fpgas[i].Version = cfg.FpgaVersion[i]
	}
	for i := range s.clockGenerators {
		s.clockGenerators[i].Present = cfg.ClockPresent[i]
		s.clockGenerators[i].ModuleType = cfg.ClockModuleType[i]
		s.clockGenerators[i].FpgaVersion = cfg.ClockFpgaVersion[i]
	}
	for i := range s.sineWaves {
		s.sineWaves[i].Present = cfg.SinePresent[i]
		s.sineWaves[i].ModuleType = cfg.SineModuleType[i]
		s.sineWaves[i].FpgaVersion = cfg.SineFpgaVersion[i]
	}

	return s
}

// Result is the outcome of a successful ProcessCommand call.
type Result struct {
	// Response is the ASCII reply string for control commands, or nil
	// for data commands and silently-ignored frames.
	Response []byte
	// Logs is the sequence of debug-log lines produced while handling
	// this one call, most recent last.
	Logs []string
}

func (s *Simulator) log(format string, args ...any) {
	s.logs = append(s.logs, fmt.Sprintf(format, args...))
}

// ProcessCommand extracts one frame from buf, dispatches it, and
// returns the structured result. The debug-log buffer is cleared at
// the start of every call.
func (s *Simulator) ProcessCommand(buf []byte) (Result, error) {
	s.logs = nil

	content, err := extractFrame(buf)
	if err != nil {
		return Result{}, err
	}

	if resp, handled, err := s.dispatch(content); handled {
		if err != nil {
			return Result{}, err
		}
		return Result{Response: resp, Logs: s.logs}, nil
	}

	return Result{Logs: s.logs}, nil
}
