package cubic

// Frobenius sets z = x^(p^power), p the characteristic of the base prime
// field, in time linear in the tower instead of a full exponentiation: the
// base field Frobenius is applied to each coefficient, then A1 and A2 are
// corrected by the precomputed coefficient tables. A0 needs no correction in
// this representation.
func (z *Element[B, PB, P]) Frobenius(x *Element[B, PB, P], power uint64) *Element[B, PB, P] {
	var p P
	z.Set(x)
	p.FrobeniusBase(&z.A0, power)
	p.FrobeniusBase(&z.A1, power)
	p.FrobeniusBase(&z.A2, power)
	p.MulByFrobCoeff(&z.A1, &z.A2, power)
	return z
}

// Norm returns x · x^p · x^p², the product of x with its Frobenius
// conjugates. The product lies in the base (prime) field by construction;
// Norm panics if its extension coefficients do not vanish, which indicates a
// defective parameter set (wrong Frobenius tables), a configuration fault
// callers must not catch and retry.
func (x *Element[B, PB, P]) Norm() B {
	var t, u Element[B, PB, P]
	t.Frobenius(x, 1)
	u.Frobenius(x, 2)
	u.Mul(&u, x)
	t.Mul(&t, &u)
	if !(PB(&t.A1).IsZero() && PB(&t.A2).IsZero()) {
		panic("cubic: norm does not collapse to the base field; inconsistent Frobenius parameters")
	}
	return t.A0
}
