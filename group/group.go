package group

import (
	"errors"
	"io"
)

// Encoding sizes shared by every group usable with the VRF. Scalars and
// points both encode to exactly this many bytes.
const (
	ScalarSize = 32
	PointSize  = 32
	// UniformSize is the number of uniform bytes consumed by
	// [Group.HashToPoint].
	UniformSize = 64
)

var (
	// ErrInvalidScalar is returned by [Scalar.SetBytes] when the input is
	// not the canonical encoding of a scalar.
	ErrInvalidScalar = errors.New("group: invalid scalar encoding")
	// ErrInvalidPoint is returned by [Point.SetBytes] when the input does
	// not encode an element of the prime-order group.
	ErrInvalidPoint = errors.New("group: invalid point encoding")
	// ErrUniformLength is returned by [Group.HashToPoint] when the input is
	// not exactly [UniformSize] bytes.
	ErrUniformLength = errors.New("group: uniform input must be 64 bytes")
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Zero sets the receiver to zero, overwriting its previous value.
	Zero() Scalar
	// Bytes returns the 32-byte little-endian canonical encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a canonical encoding and returns it.
	// Encodings of values >= order are rejected with [ErrInvalidScalar].
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
}

// Point represents an element of a prime-order group, typically a point
// on an elliptic curve or a quotient of one.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// ScalarMult sets the receiver to s*p and returns it.
	ScalarMult(s Scalar, p Point) Point
	// ScalarBaseMult sets the receiver to s*G, G being the group generator.
	ScalarBaseMult(s Scalar) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the 32-byte compressed encoding of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a compressed encoding and returns it.
	// Encodings that do not decompress to a group element, or that are not
	// the canonical encoding of that element, are rejected with
	// [ErrInvalidPoint].
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order group suitable for the VRF. It provides
// factory methods for scalars and points, the generator, random scalar
// generation, wide reduction, and a deterministic map from uniform bytes
// onto the group.
//
// Example usage:
//
//	g := ristretto.New()
//	k, _ := g.RandomScalar(rand.Reader)
//	u := g.NewPoint().ScalarBaseMult(k)
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns a copy of the group's fixed base point.
	Generator() Point
	// RandomScalar reads 32 bytes from r and reduces them modulo the
	// group order.
	RandomScalar(r io.Reader) (Scalar, error)
	// ReduceScalar interprets up to 64 bytes as a little-endian integer
	// and returns it reduced modulo the group order.
	ReduceScalar(data []byte) Scalar
	// HashToPoint maps [UniformSize] uniform bytes onto the group. The
	// map is deterministic and never returns an invalid point.
	HashToPoint(uniform []byte) (Point, error)
	// Order returns the group order as a little-endian byte slice.
	Order() []byte
	// Name identifies the group, e.g. "ristretto255".
	Name() string
}
