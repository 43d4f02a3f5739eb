// Package xorshift128plus implements the xorshift128+ pseudo-random number
// generator producing float64 values uniformly distributed in [0, 1).
//
// A fixed seed yields the same sequence on every platform, so sequences can be
// reproduced across processes and across implementations in other languages.
// The generator is not suitable for cryptographic use.
//
// A *XorShift128Plus is not safe for concurrent use. Give every goroutine its
// own independently seeded instance instead of sharing one behind a lock.
//
// Seeding notes: an all-zero 128-bit state is a fixed point of the update and
// yields 0 forever. FromBytes with sixteen zero bytes and FromU32 with any
// multiple of 2^31-1 (0, 2147483647, 4294967294) reach it. Constructors do not
// reject such seeds; use IsZero to detect them.
package xorshift128plus

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/LinusU/go-xorshift128plus/config"
	"github.com/LinusU/go-xorshift128plus/internal/shared/random"
	"github.com/zeebo/xxh3"
)

const (
	mantissaBits = 52
	mantissaMask = 1<<mantissaBits - 1
)

// XorShift128Plus holds 128 bits of generator state.
type XorShift128Plus struct {
	s0 uint64
	s1 uint64
}

// State is a copy of the generator state. It can be stored and handed back
// to FromState to replay the sequence from that point on.
type State struct {
	S0 uint64
	S1 uint64
}

// FromBytes constructs a generator from 16 bytes of raw seed data. The first
// eight bytes form s0 and the last eight form s1, both little-endian.
func FromBytes(seed [16]byte) *XorShift128Plus {
	return &XorShift128Plus{
		s0: binary.LittleEndian.Uint64(seed[0:8]),
		s1: binary.LittleEndian.Uint64(seed[8:16]),
	}
}

// FromU32 constructs a generator from a 32-bit seed expanded by four rounds of
// the Park–Miller generator. Only 32 bits of entropy reach the state.
func FromU32(seed uint32) *XorShift128Plus {
	raw0 := random.ParkMiller(seed)
	raw1 := random.ParkMiller(raw0)
	raw2 := random.ParkMiller(raw1)
	raw3 := random.ParkMiller(raw2)

	return &XorShift128Plus{
		s0: uint64(raw1)<<32 | uint64(raw0),
		s1: uint64(raw3)<<32 | uint64(raw2),
	}
}

// FromU64 constructs a generator from a 64-bit seed expanded by two rounds of
// SplitMix64. Only 64 bits of entropy reach the state.
func FromU64(seed uint64) *XorShift128Plus {
	raw0 := random.SplitMix64(seed)
	raw1 := random.SplitMix64(raw0)

	return &XorShift128Plus{s0: raw0, s1: raw1}
}

// FromString constructs a generator from arbitrary text. The text is hashed
// with XXH3-128; the low half becomes s0 and the high half s1.
func FromString(seed string) *XorShift128Plus {
	h := xxh3.HashString128(seed)
	return &XorShift128Plus{s0: h.Lo, s1: h.Hi}
}

// FromState constructs a generator that continues from a previously captured state.
func FromState(st State) *XorShift128Plus {
	return &XorShift128Plus{s0: st.S0, s1: st.S1}
}

// New constructs a generator from a declarative seed.
func New(seed *config.Seed) (*XorShift128Plus, error) {
	switch seed.Kind {
	case config.SeedKindBytes:
		b, err := seed.Bytes()
		if err != nil {
			return nil, err
		}
		return FromBytes(b), nil
	case config.SeedKindU32:
		v, err := seed.U32()
		if err != nil {
			return nil, err
		}
		return FromU32(v), nil
	case config.SeedKindU64:
		v, err := seed.U64()
		if err != nil {
			return nil, err
		}
		return FromU64(v), nil
	case config.SeedKindString:
		return FromString(seed.Value), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownSeedKind, seed.Kind)
	}
}

// Next advances the state and returns a value in [0, 1).
func (g *XorShift128Plus) Next() float64 {
	x := g.s0
	y := g.s1

	g.s0 = y

	x ^= x << 23
	x ^= x >> 17
	x ^= y
	x ^= y >> 26

	g.s1 = x

	// the mantissa is below 2^52, so float64 conversion is exact
	return math.Ldexp(float64((g.s0+g.s1)&mantissaMask), -mantissaBits)
}

// State returns a copy of the current state.
func (g *XorShift128Plus) State() State {
	return State{S0: g.s0, S1: g.s1}
}

// IsZero reports whether the generator is stuck in the all-zero state.
func (g *XorShift128Plus) IsZero() bool {
	return g.s0 == 0 && g.s1 == 0
}

// String renders the state as 32 hex digits, s0 first.
func (g *XorShift128Plus) String() string {
	return fmt.Sprintf("%016x%016x", g.s0, g.s1)
}
