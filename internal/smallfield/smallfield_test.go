package smallfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	for a := uint64(0); a < Modulus; a++ {
		for b := uint64(0); b < Modulus; b++ {
			x, y := NewElement(a), NewElement(b)

			var r Element
			r.Add(&x, &y)
			require.EqualValues(t, (a+b)%Modulus, r)

			r.Sub(&x, &y)
			require.EqualValues(t, (a+Modulus-b)%Modulus, r)

			r.Mul(&x, &y)
			require.EqualValues(t, a*b%Modulus, r)
		}
	}
}

func TestInverse(t *testing.T) {
	var zero, r Element
	require.True(t, r.Inverse(&zero).IsZero(), "inverse of zero is zero by convention")

	for a := uint64(1); a < Modulus; a++ {
		x := NewElement(a)
		var inv, prod Element
		inv.Inverse(&x)
		prod.Mul(&x, &inv)
		require.True(t, prod.IsOne(), "%d * %s != 1", a, inv.String())
	}
}

func TestNegDouble(t *testing.T) {
	for a := uint64(0); a < Modulus; a++ {
		x := NewElement(a)

		var n, s Element
		n.Neg(&x)
		s.Add(&x, &n)
		require.True(t, s.IsZero())

		var d Element
		d.Double(&x)
		s.Add(&x, &x)
		require.True(t, d.Equal(&s))
	}
}

func TestEncoding(t *testing.T) {
	for a := uint64(0); a < Modulus; a++ {
		x := NewElement(a)
		enc := x.Marshal()
		require.Len(t, enc, Bytes)

		var y Element
		require.NoError(t, y.SetBytesCanonical(enc))
		require.True(t, x.Equal(&y))
	}

	var y Element
	require.ErrorIs(t, y.SetBytesCanonical([]byte{13}), ErrInvalidEncoding)
	require.ErrorIs(t, y.SetBytesCanonical([]byte{1, 2}), ErrInvalidEncoding)
	require.ErrorIs(t, y.SetBytesCanonical(nil), ErrInvalidEncoding)
}

func TestBit(t *testing.T) {
	x := NewElement(13 + 5) // reduces to 5 = 101₂
	require.EqualValues(t, 5, x)
	require.EqualValues(t, 1, x.Bit(0))
	require.EqualValues(t, 0, x.Bit(1))
	require.EqualValues(t, 1, x.Bit(2))
	require.EqualValues(t, 0, x.Bit(3))
}

func TestSetRandom(t *testing.T) {
	for i := 0; i < 64; i++ {
		var x Element
		_, err := x.SetRandom()
		require.NoError(t, err)
		require.Less(t, uint8(x), uint8(Modulus))
	}
}
