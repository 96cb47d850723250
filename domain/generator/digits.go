package generator

import (
	"strconv"

	"randlab/domain/core"
)

// digitCount returns the number of decimal digits in v
func digitCount(v int64) int {
	if v < 0 {
		v = -v
	}
	return len(strconv.FormatInt(v, 10))
}

// pow10 returns 10^d
func pow10(d int) int64 {
	p := int64(1)
	for i := 0; i < d; i++ {
		p *= 10
	}
	return p
}

// extractMiddle returns the centered d-digit window of v's decimal rendering.
// When the rendering's digit-count parity differs from d's, one zero digit is
// prepended first so the window stays centered. Fails when the (possibly
// padded) rendering is still shorter than d digits.
func extractMiddle(v int64, d int) (int64, error) {
	digits := strconv.FormatInt(v, 10)
	if len(digits)%2 != d%2 {
		digits = "0" + digits
	}
	if len(digits) < d {
		return 0, core.NewInsufficientDigitsError(v, d)
	}
	start := (len(digits) - d) / 2
	mid, err := strconv.ParseInt(digits[start:start+d], 10, 64)
	if err != nil {
		return 0, core.NewInsufficientDigitsError(v, d)
	}
	return mid, nil
}
