package endzone250

import "testing"

func TestParseHexWindow(t *testing.T) {
	v, err := parseHexWindow("xxFF00", 2, 4)
	if err != nil {
		t.Fatalf("parseHexWindow: %v", err)
	}
	if got, want := v, uint32(0xFF); got != want {
		t.Errorf("parseHexWindow = %#X, want %#X", got, want)
	}

	if _, err := parseHexWindow("xxGG", 2, 4); err == nil {
		t.Error("expected error for non-hex window")
	}
}

func TestParseDecWindow(t *testing.T) {
	v, err := parseDecWindow("xx 42", 2, 5)
	if err != nil {
		t.Fatalf("parseDecWindow: %v", err)
	}
	if got, want := v, uint32(42); got != want {
		t.Errorf("parseDecWindow = %d, want %d", got, want)
	}
}

func TestNibbleSum(t *testing.T) {
	v, err := nibbleSum("00FF", 0, 4)
	if err != nil {
		t.Fatalf("nibbleSum: %v", err)
	}
	if got, want := v, uint32(0+0+15+15); got != want {
		t.Errorf("nibbleSum = %d, want %d", got, want)
	}
}

func TestChecksumAdd(t *testing.T) {
	if got, want := checksumAdd(1, 2, 3), uint32(6); got != want {
		t.Errorf("checksumAdd = %d, want %d", got, want)
	}
	// 32-bit wrapping add, not a saturating or widening one.
	if got, want := checksumAdd(0xFFFFFFFF, 1), uint32(0); got != want {
		t.Errorf("checksumAdd wraparound = %d, want %d", got, want)
	}
}

func TestLe32(t *testing.T) {
	if got, want := le32(0x01, 0x02, 0x03, 0x04), uint32(0x04030201); got != want {
		t.Errorf("le32 = %#X, want %#X", got, want)
	}
}
