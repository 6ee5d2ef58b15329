package endzone250

import (
	"encoding/binary"
	"strconv"
	"strings"
)

// parseHexWindow parses content[start:end] as an unsigned hex integer.
// It returns InvalidParameter on a non-hex or out-of-range substring.
// Callers must have already verified len(content) >= end.
func parseHexWindow(content string, start, end int) (uint32, error) {
	v, err := strconv.ParseUint(content[start:end], 16, 32)
	if err != nil {
		return 0, errInvalidParameter()
	}
	return uint32(v), nil
}

// parseDecWindow parses content[start:end] as an unsigned decimal
// integer, trimming surrounding whitespace the way the original
// firmware's field parser tolerated space-padded decimal fields.
func parseDecWindow(content string, start, end int) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(content[start:end]), 10, 32)
	if err != nil {
		return 0, errInvalidParameter()
	}
	return uint32(v), nil
}

// nibbleValue returns the value of a single hex digit, or an error if
// c is not a hex digit. Used by the F-command checksum, which sums
// nibble values rather than parsed field integers (a Preserved Quirk).
func nibbleValue(c byte) (uint32, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0'), nil
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10, nil
	case c >= 'A' && c <= 'F':
		return uint32(c-'A') + 10, nil
	default:
		return 0, errInvalidParameter()
	}
}

// nibbleSum sums the nibble values of content[start:end].
func nibbleSum(content string, start, end int) (uint32, error) {
	var sum uint32
	for i := start; i < end; i++ {
		v, err := nibbleValue(content[i])
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// checksumAdd performs the 32-bit wrapping addition every data-command
// checksum contribution uses, folding an arbitrary number of pieces.
func checksumAdd(pieces ...uint32) uint32 {
	var sum uint32
	for _, p := range pieces {
		sum += p
	}
	return sum
}

// le32 assembles four little-endian bytes into a uint32 (used by the
// N/G/H/K/O driver-load handlers, all of which parse individual hex
// fields rather than a contiguous wire slice, so the bytes are assembled
// by hand and fed through the same little-endian rule binary.LittleEndian
// uses; the P/R pattern-load handlers read their wire slice with le32At).
func le32(b0, b1, b2, b3 byte) uint32 {
	return binary.LittleEndian.Uint32([]byte{b0, b1, b2, b3})
}
