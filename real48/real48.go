package real48

import (
	"encoding/hex"
	"math"
	"strings"
)

const (
	// Size is the number of bytes in a packed real.
	Size = 6

	// Bias is subtracted from the stored exponent byte.
	Bias = 129

	// MantissaBits is the number of stored fraction bits.
	MantissaBits = 39

	signMask byte = 0b1000_0000
)

// Real is a packed real in big-endian byte order.
type Real [Size]byte

// FromUint64 returns the packed real held in the low 48 bits of n.
func FromUint64(n uint64) (r Real) {
	for i := Size - 1; i >= 0; i-- {
		r[i] = byte(n)
		n >>= 8
	}

	return r
}

// Uint64 returns the packed real as a 48 bit integer.
func (r Real) Uint64() (n uint64) {
	for _, b := range r {
		n = n<<8 | uint64(b)
	}

	return n
}

// Float64 returns the decoded value.
func (r Real) Float64() float64 {
	return Decode(r)
}

// Negative is true when the sign bit is set.
func (r Real) Negative() bool {
	return r[5]&signMask != 0
}

// Exponent returns the unbiased power of two.
func (r Real) Exponent() int {
	return int(r[0]) - Bias
}

// Mantissa returns the 39 fraction bits with the most significant bit first.
func (r Real) Mantissa() uint64 {
	return uint64(r[5]&^signMask)<<32 |
		uint64(r[4])<<24 |
		uint64(r[3])<<16 |
		uint64(r[2])<<8 |
		uint64(r[1])
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Real) UnmarshalBinary(data []byte) (err error) {
	if len(data) != Size {
		return Error.New("invalid size: %d", len(data))
	}

	copy(r[:], data)

	return nil
}

// Decode converts a packed real to a float64.
func Decode(r Real) float64 {
	if r == (Real{}) {
		return 0
	}

	mantissa := r.Mantissa()

	fraction := 0.0
	weight := 1.0
	for i := MantissaBits - 1; i >= 0; i-- {
		weight /= 2
		if mantissa>>uint(i)&1 == 1 {
			fraction += weight
		}
	}

	value := math.Ldexp(1+fraction, r.Exponent())
	if r.Negative() {
		value = -value
	}

	return value
}

// ParseHex parses a packed real written as 12 hex digits. A leading "0x" is
// allowed, as are spaces and colons between digits.
func ParseHex(s string) (r Real, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(c rune) rune {
		switch c {
		case ' ', '\t', ':':
			return -1
		}

		return c
	}, s)

	if len(s) != Size*2 {
		return r, Error.New("invalid hex length: %q", s)
	}

	_, err = hex.Decode(r[:], []byte(s))
	if err != nil {
		return r, Error.Wrap(err)
	}

	return r, nil
}
