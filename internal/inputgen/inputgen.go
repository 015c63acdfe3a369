// internal/inputgen/inputgen.go
// Package inputgen synthesizes benchmark inputs under reproducible byte distributions.
package inputgen

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// ErrInvalidArgument is returned for unknown modes and negative sizes.
var ErrInvalidArgument = errors.New("invalid argument")

// Mode selects the byte distribution used to fill a generated input.
type Mode int

const (
	// Homogenous fills every byte with HomogenousByte.
	Homogenous Mode = iota
	// Spread cycles through byte values with a stride of the native word width in bits.
	Spread
	// Random draws bytes from a fixed-seed MINSTD0 generator.
	Random
)

// HomogenousByte is the value written to every byte in Homogenous mode.
const HomogenousByte byte = 'a'

// SpreadStride is the per-byte increment in Spread mode (64 on 64-bit platforms).
const SpreadStride = bits.UintSize

var modeNames = map[Mode]string{
	Homogenous: "homogenous",
	Spread:     "spread",
	Random:     "random",
}

// Modes lists every supported mode in declaration order.
func Modes() []Mode {
	return []Mode{Homogenous, Spread, Random}
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// MarshalText lets reports encode modes by name.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: unknown generation mode %d", ErrInvalidArgument, int(m))
	}
	return []byte(m.String()), nil
}

// ParseMode maps a mode name ("homogenous", "spread", "random") to a Mode.
func ParseMode(s string) (Mode, error) {
	name := strings.TrimSpace(s)
	for mode, candidate := range modeNames {
		if candidate == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown input generation type %q (want random, spread or homogenous)", ErrInvalidArgument, s)
}

// Generate returns a freshly allocated buffer of exactly size bytes filled according to mode.
func Generate(size int, mode Mode) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative input size %d", ErrInvalidArgument, size)
	}
	switch mode {
	case Homogenous:
		return homogenous(size), nil
	case Spread:
		return spread(size), nil
	case Random:
		return random(size), nil
	default:
		return nil, fmt.Errorf("%w: unknown generation mode %d", ErrInvalidArgument, int(mode))
	}
}

func homogenous(size int) []byte {
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = HomogenousByte
	}
	return buf
}

func spread(size int) []byte {
	buf := make([]byte, size)
	var next byte
	for i := range buf {
		buf[i] = next
		next += byte(SpreadStride)
	}
	return buf
}

func random(size int) []byte {
	buf := make([]byte, size)
	gen := newMinstd(DefaultSeed)
	for i := range buf {
		buf[i] = gen.nextByte()
	}
	return buf
}
