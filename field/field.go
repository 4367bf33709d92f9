// Package field declares the capability set a base field scalar must provide
// to serve as the coefficient type of an extension tower.
//
// The method set mirrors the pointer-receiver API of the gnark-crypto prime
// field elements, so that types such as bw6-761's fp.Element satisfy the
// contract without adapters.
package field

// Element is the constraint satisfied by a pointer to a base field scalar of
// underlying type E.
//
// All arithmetic methods follow the gnark-crypto convention: the receiver is
// the destination, operands are read-only, and the receiver is returned to
// allow chaining. Receivers and operands may alias.
type Element[E any] interface {
	*E

	Set(x *E) *E
	SetZero() *E
	SetOne() *E
	// SetRandom draws a uniform scalar from the field's own
	// cryptographically secure source.
	SetRandom() (*E, error)

	Add(x, y *E) *E
	Sub(x, y *E) *E
	Double(x *E) *E
	Neg(x *E) *E
	Mul(x, y *E) *E
	Square(x *E) *E
	// Inverse sets the receiver to 1/x. The inverse of zero is zero.
	Inverse(x *E) *E

	Equal(x *E) bool
	IsZero() bool
	IsOne() bool
	// Cmp compares canonical (non-Montgomery) integer representatives.
	Cmp(x *E) int
	// Bit returns the i-th bit of the canonical representative. Bit(0) is
	// the parity used for sign selection.
	Bit(i uint64) uint64

	// Marshal returns the canonical big-endian encoding, always of the
	// field's full byte width.
	Marshal() []byte
	// SetBytesCanonical decodes exactly one full-width canonical encoding
	// and errors on any other input.
	SetBytesCanonical(e []byte) error

	String() string
}
