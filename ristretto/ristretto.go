package ristretto

import (
	"fmt"
	"io"

	"github.com/f3rmion/vrf/group"
	"github.com/gtank/ristretto255"
)

// order is the prime order l = 2^252 + 27742317777372353535851937790883648493,
// little-endian.
var order = [group.ScalarSize]byte{
	0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58,
	0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10,
}

// generator is the Ristretto255 basepoint. It is never mutated; Generator
// hands out copies.
var generator = ristretto255.NewGeneratorElement()

// Scalar represents an element of the Ristretto255 scalar field.
// It implements [group.Scalar] by wrapping ristretto255.Scalar.
type Scalar struct {
	inner *ristretto255.Scalar
}

func newScalar() *Scalar {
	return &Scalar{inner: ristretto255.NewScalar()}
}

// Add sets s to a + b (mod l) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod l) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner.Subtract(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod l) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner.Multiply(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner.Add(a.(*Scalar).inner, ristretto255.NewScalar())
	return s
}

// Zero overwrites s with zero and returns s.
func (s *Scalar) Zero() group.Scalar {
	s.inner.Zero()
	return s
}

// Bytes returns the 32-byte little-endian canonical encoding of s.
func (s *Scalar) Bytes() []byte {
	return s.inner.Bytes()
}

// SetBytes sets s from a 32-byte little-endian encoding. Values that are
// not fully reduced modulo l are rejected.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != group.ScalarSize {
		return nil, fmt.Errorf("%w: got %d bytes", group.ErrInvalidScalar, len(data))
	}
	if _, err := s.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidScalar, err)
	}
	return s, nil
}

// Equal reports whether s and b represent the same scalar, in constant time.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Equal(b.(*Scalar).inner) == 1
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Equal(ristretto255.NewScalar()) == 1
}

// Point is an element of the Ristretto255 group. It implements
// [group.Point] by wrapping ristretto255.Element.
type Point struct {
	inner *ristretto255.Element
}

func newPoint() *Point {
	return &Point{inner: ristretto255.NewIdentityElement()}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	p.inner.Add(a.(*Point).inner, b.(*Point).inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	p.inner.ScalarMult(s.(*Scalar).inner, q.(*Point).inner)
	return p
}

// ScalarBaseMult sets p to s * G and returns p.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	p.inner.ScalarBaseMult(s.(*Scalar).inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	p.inner.Add(a.(*Point).inner, ristretto255.NewIdentityElement())
	return p
}

// Bytes returns the 32-byte Ristretto255 encoding of p.
func (p *Point) Bytes() []byte {
	return p.inner.Bytes()
}

// SetBytes sets p from a 32-byte Ristretto255 encoding. Non-canonical
// encodings and byte strings that are not valid encodings are rejected.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != group.PointSize {
		return nil, fmt.Errorf("%w: got %d bytes", group.ErrInvalidPoint, len(data))
	}
	if _, err := p.inner.SetCanonicalBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidPoint, err)
	}
	return p, nil
}

// Equal reports whether p and b represent the same group element.
func (p *Point) Equal(b group.Point) bool {
	return p.inner.Equal(b.(*Point).inner) == 1
}

// IsIdentity reports whether p is the identity element.
func (p *Point) IsIdentity() bool {
	return p.inner.Equal(ristretto255.NewIdentityElement()) == 1
}

// Ristretto255 implements [group.Group] for the Ristretto255 prime-order
// group built on Curve25519.
//
// Ristretto255 is a zero-sized type. Create an instance with
// &Ristretto255{} or [New].
type Ristretto255 struct{}

// New returns the Ristretto255 group.
func New() *Ristretto255 {
	return &Ristretto255{}
}

// NewScalar returns a new scalar initialized to zero.
func (g *Ristretto255) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *Ristretto255) NewPoint() group.Point {
	return newPoint()
}

// Generator returns a copy of the Ristretto255 basepoint.
func (g *Ristretto255) Generator() group.Point {
	return newPoint().Set(&Point{inner: generator})
}

// RandomScalar reads 32 bytes from r and reduces them modulo l.
func (g *Ristretto255) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.ScalarSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	s := g.ReduceScalar(buf[:])
	for i := range buf {
		buf[i] = 0
	}
	return s, nil
}

// ReduceScalar interprets data (at most 64 bytes, little-endian) as an
// integer and reduces it modulo l. Longer inputs are truncated to their
// first 64 bytes.
func (g *Ristretto255) ReduceScalar(data []byte) group.Scalar {
	var wide [group.UniformSize]byte
	copy(wide[:], data)
	s := newScalar()
	// SetUniformBytes only fails on a length other than 64.
	if _, err := s.inner.SetUniformBytes(wide[:]); err != nil {
		panic(err)
	}
	for i := range wide {
		wide[i] = 0
	}
	return s
}

// HashToPoint maps 64 uniform bytes onto the group with the Ristretto255
// one-way map. Every input yields a valid element.
func (g *Ristretto255) HashToPoint(uniform []byte) (group.Point, error) {
	if len(uniform) != group.UniformSize {
		return nil, group.ErrUniformLength
	}
	p := newPoint()
	if _, err := p.inner.SetUniformBytes(uniform); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrUniformLength, err)
	}
	return p, nil
}

// Order returns l as a little-endian byte slice.
func (g *Ristretto255) Order() []byte {
	out := make([]byte, len(order))
	copy(out, order[:])
	return out
}

// Name returns "ristretto255".
func (g *Ristretto255) Name() string {
	return "ristretto255"
}
