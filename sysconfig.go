package endzone250

// SystemConfig holds the 'E'/'A'/'F'/'J'-command system configuration
// fields. The original firmware groups all of these onto one config
// struct regardless of which command letter writes them; this is
// carried unchanged rather than split across letter-named structs.
type SystemConfig struct {
	AutoReset        bool
	AutoResetRetries uint32
	AutoResetCounter uint32
	IgnoreClockFails bool

	StopOnVError    bool
	StopOnIError    bool
	StopOnClkError  bool
	StopOnTempError bool

	PsuSequenceEnabled bool
	PsuStepEnabled     bool
	PsuStepDelay       uint32

	PowerUpDelay    uint32
	SetPointEnabled bool

	// 'F' command fields.
	ClocksRestartRequired bool
	ClocksRestartTime     uint32
	ClocksRequired        bool
	Clk32MonFilter        uint32
	Clk64MonFilter        uint32

	// 'J' command fields.
	SigsModSequenceOn  uint32
	SigsModSequenceOff uint32
	SeqOffDelay3       uint32
	SeqOnDelay3        uint32
	SeqOffDelay2       uint32
	SeqOnDelay2        uint32
	SeqOffDelay1       uint32
	SeqOnDelay1        uint32
}

// PtcConfig holds the 'Z'-command power-temperature-cycling state.
type PtcConfig struct {
	Enabled bool
	OnTime  uint32 // seconds
	OffTime uint32 // seconds
}

// MainClockConfig holds the 'X'-command main clock fields.
type MainClockConfig struct {
	FreqLow    uint32
	FreqHigh   uint32
	PeriodLow  uint32
	PeriodHigh uint32
	Source     uint32
}

// FrcConfig holds the fractional-clock-configuration fields written by
// the 'G'/'H'/'K' commands (two groups: channels 1-4 and 5-8).
type FrcConfig struct {
	Frequency14 uint32
	Frequency58 uint32
	Period14    uint32
	Period58    uint32
	Source14    uint32
	Source58    uint32
}

// PatternLoop is one of the eight pattern-loop table entries.
type PatternLoop struct {
	Count     uint32
	EndAddr   uint32
	StartAddr uint32
}

// FaultLog is a single fault-log entry, structurally mirroring the
// VI-monitor string but omitting the door flag (spec.md §4.6).
type FaultLog struct {
	MonitorVoltages [6]float32
	MonitorCurrents [6]float32

	AutoResetCounter uint32

	OverCurrentFlags  uint8 // bit i = PSU i+1
	UnderVoltageFlags uint8
	OverVoltageFlags  uint8

	ClockStatus116  uint16
	ClockStatus1732 uint16
	ClockStatus3348 uint16
	ClockStatus4964 uint16

	SwFaultStatus uint8
	Sw1Rms        float32
	Sw2Rms        float32

	DriverOn bool

	TimerValues [4]uint32
	AlarmValues [4]uint32
}
