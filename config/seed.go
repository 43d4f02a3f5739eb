package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownSeedKind  = errors.New("unknown seed kind")
	ErrInvalidSeedValue = errors.New("invalid seed value")
)

// SeedKind selects which construction path turns Seed.Value into generator state.
type SeedKind string

const (
	SeedKindBytes  SeedKind = "bytes"
	SeedKindU32    SeedKind = "u32"
	SeedKindU64    SeedKind = "u64"
	SeedKindString SeedKind = "string"
)

// Seed is a declarative description of the initial generator state.
//
// Value is interpreted according to Kind:
//   - bytes:  exactly 32 hex digits (16 bytes), optional 0x prefix, byte 0 first;
//   - u32:    decimal, or 0x/0o/0b prefixed integer fitting in 32 bits;
//   - u64:    same as u32 but fitting in 64 bits;
//   - string: arbitrary text, hashed into the full 128-bit state.
type Seed struct {
	Kind  SeedKind `yaml:"kind"`
	Value string   `yaml:"value"`
}

// Validate reports whether Value is well-formed for Kind.
func (s *Seed) Validate() error {
	switch s.Kind {
	case SeedKindBytes:
		_, err := s.Bytes()
		return err
	case SeedKindU32:
		_, err := s.U32()
		return err
	case SeedKindU64:
		_, err := s.U64()
		return err
	case SeedKindString:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownSeedKind, s.Kind)
	}
}

// Bytes decodes Value as 16 raw seed bytes.
func (s *Seed) Bytes() (seed [16]byte, err error) {
	raw, err := hex.DecodeString(trimHexPrefix(strings.TrimSpace(s.Value)))
	if err != nil {
		return seed, fmt.Errorf("%w: decode hex bytes %q: %s", ErrInvalidSeedValue, s.Value, err)
	}
	if len(raw) != len(seed) {
		return seed, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSeedValue, len(seed), len(raw))
	}
	copy(seed[:], raw)
	return seed, nil
}

// U32 parses Value as an unsigned 32-bit integer.
func (s *Seed) U32() (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s.Value), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: parse u32 %q: %s", ErrInvalidSeedValue, s.Value, err)
	}
	return uint32(v), nil
}

// U64 parses Value as an unsigned 64-bit integer.
func (s *Seed) U64() (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s.Value), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse u64 %q: %s", ErrInvalidSeedValue, s.Value, err)
	}
	return v, nil
}

func trimHexPrefix(v string) string {
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		return v[2:]
	}
	return v
}
