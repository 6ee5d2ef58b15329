package endzone250

// AmonTest is the configuration of one of the 100 AMON (analog
// monitor / DUTMON) test slots.
type AmonTest struct {
	TestType uint32 // 1=voltage, 2=current, 3=current-summing

	Tp1MuxCh      uint32
	Tp1AmonMuxA   uint32
	Tp1AmonMuxB   uint32
	Tp1CommonMux  uint32
	Tp1PeakDetect uint32
	Tp1Samples    uint32
	Tp1Discharge  uint32
	Tp1DischargeTime uint32

	Tp2MuxCh      uint32
	Tp2AmonMuxA   uint32
	Tp2AmonMuxB   uint32
	Tp2CommonMux  uint32
	Tp2PeakDetect uint32
	Tp2Samples    uint32
	Tp2Discharge  uint32
	Tp2DischargeTime uint32

	PsuLink uint32

	Tp1Gain   float32
	Tp2Gain   float32
	SumGain   float32
	CalGain   float32
	CalOffset float32
	HighLimit float32
	LowLimit  float32

	Board    uint32
	Tag      uint32
	UnitType uint32
}
