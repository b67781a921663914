// internal/display/quantize.go
package display

// Code is a 4-bit display code driven onto the BCD address lines.
type Code uint8

// NumCodes is the number of discrete display states.
const NumCodes = 9

// LineMask covers the four address lines.
const LineMask uint8 = 0x0F

// levels is the fixed quantization table: upper bounds of half-open
// [lower, upper) ranges partitioning the full byte space into nine
// buckets of width 28. The last bucket is wider (32) and absorbs the
// remainder up to 255; the asymmetry is part of the device contract
// and MUST NOT be rebalanced.
var levels = [NumCodes]uint16{28, 56, 84, 112, 140, 168, 196, 224, 256}

// Quantize maps a sample byte to its display code by a sequential
// range scan: the first upper bound exceeding the sample selects the
// code. The scan is exhaustive over 0..255, so the trailing return is
// unreachable; it exists defensively and yields the top code.
func Quantize(b byte) Code {
	for code, upper := range levels {
		if uint16(b) < upper {
			return Code(code)
		}
	}
	return NumCodes - 1
}
