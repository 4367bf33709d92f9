// Package smallfield implements 𝔽₁₃, a toy prime field whose arithmetic can
// be checked by hand. It exists to exercise the extension tower engine in
// tests; it satisfies the same capability contract as the gnark-crypto prime
// fields but trades all performance concerns for readability.
package smallfield

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
)

const (
	// Modulus is the field characteristic.
	Modulus = 13
	// Bits is the modulus bit length.
	Bits = 4
	// Bytes is the width of the canonical encoding.
	Bytes = 1
)

var bigModulus = big.NewInt(Modulus)

// ErrInvalidEncoding is returned for inputs that are not a canonical
// one-byte encoding of a residue.
var ErrInvalidEncoding = errors.New("smallfield: invalid canonical encoding")

// Element is a residue mod 13, always kept in [0, 13).
type Element uint8

// NewElement returns v mod 13 as a field element.
func NewElement(v uint64) Element {
	return Element(v % Modulus)
}

func (z *Element) Set(x *Element) *Element {
	*z = *x
	return z
}

func (z *Element) SetZero() *Element {
	*z = 0
	return z
}

func (z *Element) SetOne() *Element {
	*z = 1
	return z
}

func (z *Element) SetUint64(v uint64) *Element {
	*z = Element(v % Modulus)
	return z
}

// SetRandom draws a uniform residue from crypto/rand.
func (z *Element) SetRandom() (*Element, error) {
	v, err := rand.Int(rand.Reader, bigModulus)
	if err != nil {
		return nil, err
	}
	*z = Element(v.Uint64())
	return z, nil
}

func (z *Element) Add(x, y *Element) *Element {
	*z = (*x + *y) % Modulus
	return z
}

func (z *Element) Sub(x, y *Element) *Element {
	*z = (*x + Modulus - *y) % Modulus
	return z
}

func (z *Element) Double(x *Element) *Element {
	*z = (*x + *x) % Modulus
	return z
}

func (z *Element) Neg(x *Element) *Element {
	*z = (Modulus - *x) % Modulus
	return z
}

func (z *Element) Mul(x, y *Element) *Element {
	*z = Element(uint16(*x) * uint16(*y) % Modulus)
	return z
}

func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// inverseTable[a] is a⁻¹ mod 13, with the 0 entry following the convention
// that the inverse of zero is zero.
var inverseTable = [Modulus]Element{0, 1, 7, 9, 10, 8, 11, 2, 5, 3, 4, 6, 12}

func (z *Element) Inverse(x *Element) *Element {
	*z = inverseTable[*x]
	return z
}

func (z *Element) Equal(x *Element) bool {
	return *z == *x
}

func (z *Element) IsZero() bool {
	return *z == 0
}

func (z *Element) IsOne() bool {
	return *z == 1
}

func (z *Element) Cmp(x *Element) int {
	switch {
	case *z < *x:
		return -1
	case *z > *x:
		return 1
	default:
		return 0
	}
}

func (z *Element) Bit(i uint64) uint64 {
	return uint64(*z) >> i & 1
}

func (z *Element) Marshal() []byte {
	return []byte{byte(*z)}
}

func (z *Element) SetBytesCanonical(e []byte) error {
	if len(e) != Bytes || e[0] >= Modulus {
		return ErrInvalidEncoding
	}
	*z = Element(e[0])
	return nil
}

func (z *Element) String() string {
	return strconv.Itoa(int(*z))
}
