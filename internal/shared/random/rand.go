package random

const (
	// golden is the SplitMix64 increment (2^64 / phi).
	golden = 0x9e3779b97f4a7c15

	parkMillerMultiplier = 48271
	parkMillerModulus    = 2147483647 // 2^31 - 1
)

// ParkMiller performs one step of the Lehmer (Park–Miller) generator:
// next = seed * 48271 mod (2^31 - 1). The product is taken in 64 bits so it never wraps.
func ParkMiller(seed uint32) uint32 {
	return uint32(uint64(seed) * parkMillerMultiplier % parkMillerModulus)
}

// SplitMix64 maps z to a well-mixed 64-bit value.
// This is the canonical SplitMix64 step with the increment folded in: x = z + golden; mix(x).
// All arithmetic wraps modulo 2^64.
func SplitMix64(z uint64) uint64 {
	z += golden
	z ^= z >> 30
	z *= 0xbf58476d1ce4e5b9
	z ^= z >> 27
	z *= 0x94d049bb133111eb
	z ^= z >> 31
	return z
}
