package endzone250

// routingGroups is the length of the output-routing table.
const routingGroups = 16

// patternLoopCount is the number of pattern-loop table entries.
const patternLoopCount = 8

// faultLogCount is the number of retained fault-log entries.
const faultLogCount = 10

// amonTestCapacity is the number of pre-allocated AMON test slots.
const amonTestCapacity = 100

// psuCount is the number of power supply units.
const psuCount = 6

// fpgaCount, clockGenCount, sineWaveCount are the module counts of the
// remaining fixed-size hardware arrays.
const (
	fpgaCount      = 2
	clockGenCount  = 4
	sineWaveCount  = 2
)
