package cubic

import (
	"errors"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/hassoon1986/ginger-lib/field"
)

var (
	// ErrInvalidByteLength is returned when a byte encoding does not hold
	// exactly three full-width coefficients.
	ErrInvalidByteLength = errors.New("cubic: invalid byte encoding length")
	// ErrInvalidBitLength is returned when a bit encoding does not hold
	// exactly three fixed-width coefficients.
	ErrInvalidBitLength = errors.New("cubic: invalid bit encoding length")
)

// Cmp compares z and x lexicographically, most significant coefficient
// first: A2, then A1, then A0. The result is a strict total order, used to
// pick canonical representatives (e.g. between y and -y in point
// decompression).
func (z *Element[B, PB, P]) Cmp(x *Element[B, PB, P]) int {
	if c := PB(&z.A2).Cmp(&x.A2); c != 0 {
		return c
	}
	if c := PB(&z.A1).Cmp(&x.A1); c != 0 {
		return c
	}
	return PB(&z.A0).Cmp(&x.A0)
}

// IsOdd reports the canonical sign bit of z for compressed encodings: the
// parity of A2, falling back to A1 when A2 is zero, and to A0 when both are.
func (z *Element[B, PB, P]) IsOdd() bool {
	if !PB(&z.A2).IsZero() {
		return PB(&z.A2).Bit(0) == 1
	}
	if !PB(&z.A1).IsZero() {
		return PB(&z.A1).Bit(0) == 1
	}
	return PB(&z.A0).Bit(0) == 1
}

// Marshal returns the byte encoding of z, the concatenation of the canonical
// encodings of A0, A1, A2 in that order.
func (z *Element[B, PB, P]) Marshal() []byte {
	b0 := PB(&z.A0).Marshal()
	out := make([]byte, 0, 3*len(b0))
	out = append(out, b0...)
	out = append(out, PB(&z.A1).Marshal()...)
	out = append(out, PB(&z.A2).Marshal()...)
	return out
}

// Unmarshal decodes the output of Marshal. It never truncates or pads: a
// buffer of the wrong length returns ErrInvalidByteLength, a non-canonical
// coefficient returns the base field decoding error.
func (z *Element[B, PB, P]) Unmarshal(e []byte) error {
	n := coeffByteLen[B, PB]()
	if len(e) != 3*n {
		return ErrInvalidByteLength
	}
	if err := PB(&z.A0).SetBytesCanonical(e[:n]); err != nil {
		return err
	}
	if err := PB(&z.A1).SetBytesCanonical(e[n : 2*n]); err != nil {
		return err
	}
	return PB(&z.A2).SetBytesCanonical(e[2*n:])
}

// MarshalBits returns the bit encoding of z: the little-endian bits of each
// coefficient in A0, A1, A2 order, each occupying exactly
// DegreeOverBasePrimeField/3 × BasePrimeFieldBits positions.
func (z *Element[B, PB, P]) MarshalBits() *bitset.BitSet {
	s := coeffBitLen[B, PB, P]()
	b := bitset.New(3 * s)
	writeCoeffBits[B, PB](b, &z.A0, 0, s)
	writeCoeffBits[B, PB](b, &z.A1, s, s)
	writeCoeffBits[B, PB](b, &z.A2, 2*s, s)
	return b
}

// UnmarshalBits decodes the output of MarshalBits, slicing the set
// positionally. A set of the wrong length returns ErrInvalidBitLength.
func (z *Element[B, PB, P]) UnmarshalBits(b *bitset.BitSet) error {
	s := coeffBitLen[B, PB, P]()
	if b.Len() != 3*s {
		return ErrInvalidBitLength
	}
	if err := readCoeffBits[B, PB](b, &z.A0, 0, s); err != nil {
		return err
	}
	if err := readCoeffBits[B, PB](b, &z.A1, s, s); err != nil {
		return err
	}
	return readCoeffBits[B, PB](b, &z.A2, 2*s, s)
}

// SetRandom draws each coefficient independently and uniformly from the base
// field and returns z, or an error if the base field sampler fails.
func (z *Element[B, PB, P]) SetRandom() (*Element[B, PB, P], error) {
	if _, err := PB(&z.A0).SetRandom(); err != nil {
		return nil, err
	}
	if _, err := PB(&z.A1).SetRandom(); err != nil {
		return nil, err
	}
	if _, err := PB(&z.A2).SetRandom(); err != nil {
		return nil, err
	}
	return z, nil
}

func coeffByteLen[B any, PB field.Element[B]]() int {
	return len(PB(new(B)).Marshal())
}

func coeffBitLen[B any, PB field.Element[B], P Params[B, PB]]() uint {
	var p P
	return uint(p.DegreeOverBasePrimeField() / 3 * p.BasePrimeFieldBits())
}

func writeCoeffBits[B any, PB field.Element[B]](b *bitset.BitSet, c *B, offset, size uint) {
	var v big.Int
	v.SetBytes(PB(c).Marshal())
	for i := uint(0); i < size; i++ {
		if v.Bit(int(i)) == 1 {
			b.Set(offset + i)
		}
	}
}

func readCoeffBits[B any, PB field.Element[B]](b *bitset.BitSet, c *B, offset, size uint) error {
	var v big.Int
	for i := uint(0); i < size; i++ {
		if b.Test(offset + i) {
			v.SetBit(&v, int(i), 1)
		}
	}
	buf := make([]byte, coeffByteLen[B, PB]())
	v.FillBytes(buf)
	return PB(c).SetBytesCanonical(buf)
}
