// Package cubic implements the generic cubic extension F³ = F[X]/(X³-α) of an
// arbitrary base field F, for α a cubic non-residue in F.
//
// The same code builds successive levels of the extension towers used by
// pairing-friendly curves: instantiate it over a prime field to get Fp3, or
// over a quadratic extension to get Fp6. A tower is described by a [Params]
// type; distinct parameter sets produce distinct, non-interchangeable element
// types, so mixing towers is a compile-time error and every base field call
// is monomorphized (no dynamic dispatch on the hot path).
//
// Multiplication uses the Karatsuba schedule and squaring the CH-SQR2
// schedule of Devegili, Ó hÉigeartaigh, Scott, Dahab, "Multiplication and
// Squaring on Pairing-Friendly Fields" (https://eprint.iacr.org/2006/471),
// section 4. Inversion uses a single base field inversion following Beuchat
// et al., "High-Speed Software Implementation of the Optimal Ate Pairing over
// Barreto-Naehrig Curves" (https://eprint.iacr.org/2010/354), Algorithm 17.
package cubic

import (
	"github.com/hassoon1986/ginger-lib/field"
)

// Params describes one cubic extension: the non-residue defining the modulus
// polynomial, the Frobenius structure, and the shape of the tower below it.
//
// Implementations are stateless struct types; the engine instantiates them by
// their zero value. All values they return must be constants fixed at
// construction of the parameter set.
type Params[B any, PB field.Element[B]] interface {
	// NonResidue returns α, the base field element for which X³-α is
	// irreducible.
	NonResidue() B

	// MulByNonResidue sets z to α·x and returns z. z and x may alias.
	// Parameter sets without a structured non-residue can delegate to the
	// package level [MulByNonResidue].
	MulByNonResidue(z, x *B) *B

	// MulByFrobCoeff multiplies c1 and c2 in place by the precomputed
	// Frobenius coefficients for the given power. There is no generic
	// fallback: the efficient formula depends on the subfield the
	// coefficients lie in, and a wrong table silently produces wrong
	// results, so new parameter sets must be validated against known test
	// vectors.
	MulByFrobCoeff(c1, c2 *B, power uint64)

	// FrobeniusBase applies the base field's own Frobenius endomorphism to
	// z and returns z. It is the identity when the base field is prime.
	FrobeniusBase(z *B, power uint64) *B

	// DegreeOverBasePrimeField returns the degree of the extension over
	// the prime field at the bottom of the tower (3 when the base field is
	// itself prime).
	DegreeOverBasePrimeField() int

	// BasePrimeFieldBits returns the bit length of the base prime field
	// modulus.
	BasePrimeFieldBits() int
}

// MulByNonResidue is the generic non-residue multiplication, a plain base
// field multiply by α. Parameter sets whose non-residue has structure (a
// small integer, a subfield element) should implement a dedicated formula
// instead of calling it.
func MulByNonResidue[B any, PB field.Element[B], P Params[B, PB]](z, x *B) *B {
	var p P
	nr := p.NonResidue()
	return PB(z).Mul(&nr, x)
}

// An Element of the cubic extension, the polynomial A0 + A1·X + A2·X² modulo
// X³-α. Any triple of base field values is a valid element; the base field's
// own reduction keeps each coefficient canonical, so no separate reduction
// step ever applies. The zero value is the additive identity.
//
// Elements have value semantics. Methods follow the base field convention:
// the receiver is the destination and is returned for chaining, operands are
// never modified, receiver and operands may alias.
type Element[B any, PB field.Element[B], P Params[B, PB]] struct {
	A0, A1, A2 B
}

// Set z = x
func (z *Element[B, PB, P]) Set(x *Element[B, PB, P]) *Element[B, PB, P] {
	PB(&z.A0).Set(&x.A0)
	PB(&z.A1).Set(&x.A1)
	PB(&z.A2).Set(&x.A2)
	return z
}

// SetZero sets z to the additive identity
func (z *Element[B, PB, P]) SetZero() *Element[B, PB, P] {
	PB(&z.A0).SetZero()
	PB(&z.A1).SetZero()
	PB(&z.A2).SetZero()
	return z
}

// SetOne sets z to the multiplicative identity
func (z *Element[B, PB, P]) SetOne() *Element[B, PB, P] {
	PB(&z.A0).SetOne()
	PB(&z.A1).SetZero()
	PB(&z.A2).SetZero()
	return z
}

// SetBaseField embeds a base field scalar as a degree-0 element
func (z *Element[B, PB, P]) SetBaseField(x *B) *Element[B, PB, P] {
	PB(&z.A0).Set(x)
	PB(&z.A1).SetZero()
	PB(&z.A2).SetZero()
	return z
}

// IsZero returns true if z is the additive identity
func (z *Element[B, PB, P]) IsZero() bool {
	return PB(&z.A0).IsZero() && PB(&z.A1).IsZero() && PB(&z.A2).IsZero()
}

// IsOne returns true if z is the multiplicative identity
func (z *Element[B, PB, P]) IsOne() bool {
	return PB(&z.A0).IsOne() && PB(&z.A1).IsZero() && PB(&z.A2).IsZero()
}

// Equal returns true if z equals x, coefficient by coefficient
func (z *Element[B, PB, P]) Equal(x *Element[B, PB, P]) bool {
	return PB(&z.A0).Equal(&x.A0) && PB(&z.A1).Equal(&x.A1) && PB(&z.A2).Equal(&x.A2)
}

// Add sets z = x + y
func (z *Element[B, PB, P]) Add(x, y *Element[B, PB, P]) *Element[B, PB, P] {
	PB(&z.A0).Add(&x.A0, &y.A0)
	PB(&z.A1).Add(&x.A1, &y.A1)
	PB(&z.A2).Add(&x.A2, &y.A2)
	return z
}

// Sub sets z = x - y
func (z *Element[B, PB, P]) Sub(x, y *Element[B, PB, P]) *Element[B, PB, P] {
	PB(&z.A0).Sub(&x.A0, &y.A0)
	PB(&z.A1).Sub(&x.A1, &y.A1)
	PB(&z.A2).Sub(&x.A2, &y.A2)
	return z
}

// Double sets z = 2x
func (z *Element[B, PB, P]) Double(x *Element[B, PB, P]) *Element[B, PB, P] {
	PB(&z.A0).Double(&x.A0)
	PB(&z.A1).Double(&x.A1)
	PB(&z.A2).Double(&x.A2)
	return z
}

// Neg sets z = -x
func (z *Element[B, PB, P]) Neg(x *Element[B, PB, P]) *Element[B, PB, P] {
	PB(&z.A0).Neg(&x.A0)
	PB(&z.A1).Neg(&x.A1)
	PB(&z.A2).Neg(&x.A2)
	return z
}

// MulByElement sets z = x scaled by the base field element y, coefficient by
// coefficient. It is the cheap path for scaling by twist or cofactor values
// that live in the base field.
func (z *Element[B, PB, P]) MulByElement(x *Element[B, PB, P], y *B) *Element[B, PB, P] {
	var yCopy B
	PB(&yCopy).Set(y)
	PB(&z.A0).Mul(&x.A0, &yCopy)
	PB(&z.A1).Mul(&x.A1, &yCopy)
	PB(&z.A2).Mul(&x.A2, &yCopy)
	return z
}

func (z *Element[B, PB, P]) String() string {
	return PB(&z.A0).String() + "+(" + PB(&z.A1).String() + ")*u+(" + PB(&z.A2).String() + ")*u**2"
}
