package utils

import "golang.org/x/exp/constraints"

// BoolToString returns "1" if b is true, "0" otherwise.
func BoolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Clamp returns value limited to the range [min, max].
func Clamp[T constraints.Integer | constraints.Float](min, value, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ZeroAdjust8 returns v, or 1 if v is 0.
func ZeroAdjust8(v uint8) uint8 {
	if v == 0 {
		return 1
	}
	return v
}
