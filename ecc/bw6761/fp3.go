// Package bw6761 instantiates the cubic extension over the BW6-761 base
// field:
//
//	𝔽p³[u] = 𝔽p[X]/(X³+4)
//
// BW6-761 (https://eprint.iacr.org/2020/351) is the outer curve of a 2-chain
// with BLS12-377; its sextic tower is built as a quadratic extension of this
// 𝔽p³. The base field comes from gnark-crypto.
package bw6761

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bw6-761/fp"

	"github.com/hassoon1986/ginger-lib/field/cubic"
)

// E3 is an element c0 + c1·u + c2·u² of 𝔽p³, u³ = -4.
type E3 = cubic.Element[fp.Element, *fp.Element, Fp3Params]

// Fp3Params parameterizes 𝔽p³ over the BW6-761 base field. Its non-residue
// is α = -4.
type Fp3Params struct{}

var (
	nonResidue  fp.Element
	frobCoeffC1 [3]fp.Element
	frobCoeffC2 [3]fp.Element
)

func init() {
	nonResidue.SetUint64(4)
	nonResidue.Neg(&nonResidue)

	// Frobenius coefficient tables: c1[i] = α^((pⁱ-1)/3), c2[i] = c1[i]².
	// p ≡ 1 mod 3, so the exponents are exact. Fixed here once, read-only
	// afterwards.
	p := fp.Modulus()
	var pi, exp big.Int
	pi.SetUint64(1)
	one := big.NewInt(1)
	three := big.NewInt(3)
	for i := range frobCoeffC1 {
		exp.Sub(&pi, one)
		exp.Div(&exp, three)
		frobCoeffC1[i].Exp(nonResidue, &exp)
		frobCoeffC2[i].Square(&frobCoeffC1[i])
		pi.Mul(&pi, p)
	}
}

// NonResidue returns α = -4.
func (Fp3Params) NonResidue() fp.Element {
	return nonResidue
}

// MulByNonResidue sets z = -4·x with two doublings and a negation instead of
// a full multiplication.
func (Fp3Params) MulByNonResidue(z, x *fp.Element) *fp.Element {
	z.Double(x).Double(z)
	return z.Neg(z)
}

// MulByFrobCoeff multiplies c1 and c2 by the Frobenius coefficients of the
// given power.
func (Fp3Params) MulByFrobCoeff(c1, c2 *fp.Element, power uint64) {
	c1.Mul(c1, &frobCoeffC1[power%3])
	c2.Mul(c2, &frobCoeffC2[power%3])
}

// FrobeniusBase is the identity: the base field is prime.
func (Fp3Params) FrobeniusBase(z *fp.Element, power uint64) *fp.Element {
	return z
}

// DegreeOverBasePrimeField returns 3.
func (Fp3Params) DegreeOverBasePrimeField() int {
	return 3
}

// BasePrimeFieldBits returns the bit length of the BW6-761 base field
// modulus.
func (Fp3Params) BasePrimeFieldBits() int {
	return fp.Bits
}
