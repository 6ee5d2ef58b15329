package endzone250

// ClockGenerator is the complete state of one of the four clock
// modules.
type ClockGenerator struct {
	Present     bool
	Enabled     bool
	Frequency   uint32
	ModuleType  uint8
	FpgaVersion uint8
	HasFailure  bool
}

// SineWave is the complete state of one of the two sine-wave
// generator modules.
type SineWave struct {
	Present    bool
	Enabled    bool
	Amplitude  uint32
	Offset     uint32
	FrequencyBase uint32
	DutyCycle  uint32
	ResetValue uint32
	ModuleType uint8
	FpgaVersion uint8
	Programmed bool
	HasFailure bool
	RmsValue   float32
}
