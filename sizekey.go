package fontmap

import (
	"math"
	"strconv"
)

// SizeKey makes a float64 font size usable as an exact map key.
//
// Equality is defined over the raw IEEE-754 bit pattern, not numeric
// equality: two sizes are the same key iff their bit representations are
// identical. A size of 12.0 and one computed as 11.999999999 are distinct
// cache entries even though they round to the same pixel, and NaN keys
// never match anything (NaN bit patterns can even differ from each other).
// Callers must not rely on numerically-close sizes colliding; queue the
// exact value you will later query.
type SizeKey uint64

// SizeKeyOf returns the exact-bits key for size.
func SizeKeyOf(size float64) SizeKey {
	return SizeKey(math.Float64bits(size))
}

// Value returns the size the key was derived from.
func (k SizeKey) Value() float64 {
	return math.Float64frombits(uint64(k))
}

// String implements fmt.Stringer.
func (k SizeKey) String() string {
	return strconv.FormatFloat(k.Value(), 'g', -1, 64)
}
