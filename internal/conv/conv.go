// Package conv provides checked integer narrowing for the engine.
//
// Narrowing is rare enough here that a panic on overflow is the right
// response: it indicates a graph larger than the engine's internal limits,
// which the compiler's MaxStates guard should have rejected first.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking if n is negative or does not
// fit. The uint comparison avoids overflow on 32-bit platforms.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
