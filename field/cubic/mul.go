package cubic

import (
	"math/big"

	"github.com/hassoon1986/ginger-lib/field"
)

// Mul sets z = x * y
//
// Karatsuba interpolation, section 4 of https://eprint.iacr.org/2006/471:
// the three diagonal products are reused across the cross terms, so the
// product costs 6 base field multiplications instead of the schoolbook 9.
func (z *Element[B, PB, P]) Mul(x, y *Element[B, PB, P]) *Element[B, PB, P] {
	var p P
	var ad, be, cf, s, t, u, v, w B

	// notation: x = d + e·X + f·X², y = a + b·X + c·X²
	PB(&ad).Mul(&x.A0, &y.A0)
	PB(&be).Mul(&x.A1, &y.A1)
	PB(&cf).Mul(&x.A2, &y.A2)

	// u = (e+f)(b+c) - be - cf
	PB(&s).Add(&x.A1, &x.A2)
	PB(&t).Add(&y.A1, &y.A2)
	PB(&u).Mul(&s, &t)
	PB(&u).Sub(&u, &be)
	PB(&u).Sub(&u, &cf)
	p.MulByNonResidue(&u, &u)
	PB(&u).Add(&u, &ad)

	// v = (d+e)(a+b) - ad - be + α·cf
	PB(&s).Add(&x.A0, &x.A1)
	PB(&t).Add(&y.A0, &y.A1)
	PB(&v).Mul(&s, &t)
	PB(&v).Sub(&v, &ad)
	PB(&v).Sub(&v, &be)
	p.MulByNonResidue(&t, &cf)
	PB(&v).Add(&v, &t)

	// w = (d+f)(a+c) - ad + be - cf
	PB(&s).Add(&x.A0, &x.A2)
	PB(&t).Add(&y.A0, &y.A2)
	PB(&w).Mul(&s, &t)
	PB(&w).Sub(&w, &ad)
	PB(&w).Add(&w, &be)
	PB(&w).Sub(&w, &cf)

	z.A0 = u
	z.A1 = v
	z.A2 = w
	return z
}

// Square sets z = x * x
//
// CH-SQR2, section 4 of https://eprint.iacr.org/2006/471: 5 base field
// squarings/multiplications against 6 for a generic Mul, which matters in the
// exponentiation loops that dominate pairing and Frobenius-based arithmetic.
func (z *Element[B, PB, P]) Square(x *Element[B, PB, P]) *Element[B, PB, P] {
	var p P
	var s0, s1, s2, s3, s4, t B

	PB(&s0).Square(&x.A0)
	PB(&s1).Mul(&x.A0, &x.A1)
	PB(&s1).Double(&s1)
	PB(&s2).Sub(&x.A0, &x.A1)
	PB(&s2).Add(&s2, &x.A2)
	PB(&s2).Square(&s2)
	PB(&s3).Mul(&x.A1, &x.A2)
	PB(&s3).Double(&s3)
	PB(&s4).Square(&x.A2)

	// A2 = s1 + s2 + s3 - s0 - s4, computed first so the inputs are free
	// to be overwritten below
	PB(&t).Add(&s1, &s2)
	PB(&t).Add(&t, &s3)
	PB(&t).Sub(&t, &s0)
	PB(&t).Sub(&t, &s4)

	p.MulByNonResidue(&s3, &s3)
	PB(&z.A0).Add(&s0, &s3)
	p.MulByNonResidue(&s4, &s4)
	PB(&z.A1).Add(&s1, &s4)
	z.A2 = t
	return z
}

// Inverse sets z = 1/x and returns z, or returns nil when x is zero, the one
// element with no inverse (mirroring the big.Int.ModInverse convention).
//
// Algorithm 17 of https://eprint.iacr.org/2010/354: the cost of the (single)
// base field inversion is amortized over a handful of multiplications,
// whatever the extension degree. Note the subtraction in s2: the formula as
// originally published carries a typo at this step, corrected here as in
// Scott's errata; do not "fix" it back against the paper.
func (z *Element[B, PB, P]) Inverse(x *Element[B, PB, P]) *Element[B, PB, P] {
	if x.IsZero() {
		return nil
	}

	var p P
	var t0, t1, t2, t3, t4, t5, t6 B
	var s0, s1, s2 B
	var a1, a2, a3 B

	PB(&t0).Square(&x.A0)
	PB(&t1).Square(&x.A1)
	PB(&t2).Square(&x.A2)
	PB(&t3).Mul(&x.A0, &x.A1)
	PB(&t4).Mul(&x.A0, &x.A2)
	PB(&t5).Mul(&x.A1, &x.A2)

	// s0 = t0 - α·t5
	p.MulByNonResidue(&s0, &t5)
	PB(&s0).Sub(&t0, &s0)
	// s1 = α·t2 - t3
	p.MulByNonResidue(&s1, &t2)
	PB(&s1).Sub(&s1, &t3)
	// s2 = t1 - t4
	PB(&s2).Sub(&t1, &t4)

	// t6 = (x.A0·s0 + α·(x.A2·s1 + x.A1·s2))⁻¹
	PB(&a1).Mul(&x.A2, &s1)
	PB(&a2).Mul(&x.A1, &s2)
	PB(&a3).Add(&a1, &a2)
	p.MulByNonResidue(&a3, &a3)
	PB(&t6).Mul(&x.A0, &s0)
	PB(&t6).Add(&t6, &a3)
	PB(&t6).Inverse(&t6)

	PB(&z.A0).Mul(&t6, &s0)
	PB(&z.A1).Mul(&t6, &s1)
	PB(&z.A2).Mul(&t6, &s2)
	return z
}

// BatchInvert returns a new slice with the inverses of a, using the Montgomery
// product trick: a single extension field inversion (hence a single base field
// inversion) for the whole batch. Zero entries stay zero.
func BatchInvert[B any, PB field.Element[B], P Params[B, PB]](a []Element[B, PB, P]) []Element[B, PB, P] {
	res := make([]Element[B, PB, P], len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := make([]bool, len(a))
	var accumulator Element[B, PB, P]
	accumulator.SetOne()

	for i := range a {
		if a[i].IsZero() {
			zeroes[i] = true
			continue
		}
		res[i].Set(&accumulator)
		accumulator.Mul(&accumulator, &a[i])
	}

	accumulator.Inverse(&accumulator)

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes[i] {
			continue
		}
		res[i].Mul(&res[i], &accumulator)
		accumulator.Mul(&accumulator, &a[i])
	}

	return res
}

// Exp sets z = xᵏ using plain square-and-multiply. A negative k
// exponentiates the inverse of x, which must then be invertible.
func (z *Element[B, PB, P]) Exp(x Element[B, PB, P], k *big.Int) *Element[B, PB, P] {
	if k.IsUint64() && k.Uint64() == 0 {
		return z.SetOne()
	}

	e := k
	if k.Sign() == -1 {
		// x is a copy, inverting in place is fine
		if x.Inverse(&x) == nil {
			panic("cubic: zero raised to a negative power")
		}
		e = new(big.Int).Neg(k)
	}

	z.SetOne()
	for i := e.BitLen() - 1; i >= 0; i-- {
		z.Square(z)
		if e.Bit(i) == 1 {
			z.Mul(z, &x)
		}
	}
	return z
}
