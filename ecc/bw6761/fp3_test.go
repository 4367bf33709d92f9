package bw6761

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/hassoon1986/ginger-lib/field/cubic"
)

func genE3() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a E3
		if _, err := a.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(&a, gopter.NoShrinker)
	}
}

func genFp() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var a fp.Element
		if _, err := a.SetRandom(); err != nil {
			panic(err)
		}
		return gopter.NewGenResult(&a, gopter.NoShrinker)
	}
}

func testParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20
	return parameters
}

func TestE3Arithmetic(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("[BW6-761] square == mul by self", prop.ForAll(
		func(a *E3) bool {
			var s, m E3
			s.Square(a)
			m.Mul(a, a)
			return s.Equal(&m)
		},
		genE3(),
	))

	properties.Property("[BW6-761] a * a⁻¹ == 1", prop.ForAll(
		func(a *E3) bool {
			var i, r E3
			if i.Inverse(a) == nil {
				return false
			}
			r.Mul(a, &i)
			return r.IsOne()
		},
		genE3(),
	))

	properties.Property("[BW6-761] distributivity", prop.ForAll(
		func(a, b, c *E3) bool {
			var s, l, t, u E3
			s.Add(b, c)
			l.Mul(a, &s)
			t.Mul(a, b)
			u.Mul(a, c)
			t.Add(&t, &u)
			return l.Equal(&t)
		},
		genE3(), genE3(), genE3(),
	))

	properties.Property("[BW6-761] MulByNonResidue fast path == generic path", prop.ForAll(
		func(x *fp.Element) bool {
			var p Fp3Params
			var fast, generic fp.Element
			p.MulByNonResidue(&fast, x)
			cubic.MulByNonResidue[fp.Element, *fp.Element, Fp3Params](&generic, x)
			return fast.Equal(&generic)
		},
		genFp(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	var zero E3
	require.Nil(t, new(E3).Inverse(&zero))
}

func TestE3Frobenius(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	p := fp.Modulus()

	properties.Property("[BW6-761] frobenius(1) == x^p", prop.ForAll(
		func(a *E3) bool {
			var f, e E3
			f.Frobenius(a, 1)
			e.Exp(*a, p)
			return f.Equal(&e)
		},
		genE3(),
	))

	properties.Property("[BW6-761] three applications of frobenius(1) are the identity", prop.ForAll(
		func(a *E3) bool {
			var f E3
			f.Frobenius(a, 1)
			f.Frobenius(&f, 1)
			f.Frobenius(&f, 1)
			return f.Equal(a)
		},
		genE3(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	require.True(t, frobCoeffC1[0].IsOne(), "power 0 must be the identity")
	require.True(t, frobCoeffC2[0].IsOne(), "power 0 must be the identity")
}

func TestE3Norm(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	// N(x) = x^(p²+p+1)
	p := fp.Modulus()
	normExp := new(big.Int).Mul(p, p)
	normExp.Add(normExp, p)
	normExp.Add(normExp, big.NewInt(1))

	properties.Property("[BW6-761] norm == x^(p²+p+1)", prop.ForAll(
		func(a *E3) bool {
			n := a.Norm()
			var e E3
			e.Exp(*a, normExp)
			return e.A0.Equal(&n) && e.A1.IsZero() && e.A2.IsZero()
		},
		genE3(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestE3Encoding(t *testing.T) {
	properties := gopter.NewProperties(testParameters())

	properties.Property("[BW6-761] byte round trip", prop.ForAll(
		func(a *E3) bool {
			enc := a.Marshal()
			if len(enc) != 3*fp.Bytes {
				return false
			}
			var b E3
			if err := b.Unmarshal(enc); err != nil {
				return false
			}
			return b.Equal(a)
		},
		genE3(),
	))

	properties.Property("[BW6-761] bit round trip", prop.ForAll(
		func(a *E3) bool {
			bits := a.MarshalBits()
			if bits.Len() != 3*fp.Bits {
				return false
			}
			var b E3
			if err := b.UnmarshalBits(bits); err != nil {
				return false
			}
			return b.Equal(a)
		},
		genE3(),
	))

	properties.Property("[BW6-761] ordering is antisymmetric", prop.ForAll(
		func(a, b *E3) bool {
			return a.Cmp(b) == -b.Cmp(a) && a.Cmp(a) == 0
		},
		genE3(), genE3(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))

	var b E3
	require.ErrorIs(t, b.Unmarshal(make([]byte, 3*fp.Bytes-1)), cubic.ErrInvalidByteLength)
}

func TestE3BatchInvert(t *testing.T) {
	batch := make([]E3, 5)
	for i := range batch {
		if i == 2 {
			continue // keep a zero entry
		}
		if _, err := batch[i].SetRandom(); err != nil {
			t.Fatal(err)
		}
	}

	inverted := cubic.BatchInvert(batch)
	for i := range batch {
		if batch[i].IsZero() {
			require.True(t, inverted[i].IsZero())
			continue
		}
		var want E3
		require.NotNil(t, want.Inverse(&batch[i]))
		require.True(t, inverted[i].Equal(&want))
	}
}
