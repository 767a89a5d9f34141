package crafting

import (
	"math"
	"math/bits"
)

// mulSat multiplies two non-negative quantities, clamping at math.MaxInt.
// The second result reports whether the product was clamped.
func mulSat(a, b int) (int, bool) {
	if a <= 0 || b <= 0 {
		return a * b, false
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return math.MaxInt, true
	}
	return int(lo), false
}

// addSat adds two non-negative quantities, clamping at math.MaxInt
func addSat(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return a + b, false
	}
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 || sum > math.MaxInt {
		return math.MaxInt, true
	}
	return int(sum), false
}
