package bjj

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/twistededwards"
	"github.com/f3rmion/vrf/group"
	"golang.org/x/crypto/blake2b"
)

// maxHashAttempts bounds the try-and-increment loop in HashToPoint. Each
// candidate decompresses with probability about 1/2.
const maxHashAttempts = 256

// errHashToPoint is returned if no candidate in maxHashAttempts decodes.
var errHashToPoint = errors.New("bjj: hash to point exhausted candidates")

// curveOrder is the Baby Jubjub subgroup order.
// This is distinct from the BN254 scalar field order (Fr).
var (
	curveOrder *big.Int
	cofactor   *big.Int
)

func init() {
	curve := twistededwards.GetEdwardsCurve()
	curveOrder = new(big.Int).Set(&curve.Order)
	cofactor = new(big.Int)
	curve.Cofactor.BigInt(cofactor)
}

// reverse returns a reversed copy of b, converting between little-endian
// encodings and the big-endian form math/big expects.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[len(b)-1-i]
	}
	return out
}

// Scalar represents an element of the Baby Jubjub scalar field.
// It implements [group.Scalar] using big.Int with modular arithmetic
// over the curve's subgroup order.
//
// All arithmetic operations automatically reduce results modulo the
// curve order to maintain valid scalar values.
type Scalar struct {
	inner *big.Int
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// reduce ensures the scalar is in the range [0, curveOrder).
func (s *Scalar) reduce() {
	s.inner.Mod(s.inner, curveOrder)
}

// Add sets s to a + b (mod curveOrder) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Sub sets s to a - b (mod curveOrder) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Mul sets s to a * b (mod curveOrder) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(aScalar.inner, bScalar.inner)
	s.reduce()
	return s
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(aScalar.inner)
	return s
}

// Zero scrubs the limbs backing s and sets it to zero.
func (s *Scalar) Zero() group.Scalar {
	words := s.inner.Bits()
	for i := range words {
		words[i] = 0
	}
	s.inner.SetInt64(0)
	return s
}

// Bytes returns the scalar as a 32-byte little-endian representation.
func (s *Scalar) Bytes() []byte {
	var be [group.ScalarSize]byte
	s.inner.FillBytes(be[:])
	return reverse(be[:])
}

// SetBytes sets s from a 32-byte little-endian encoding and returns s.
// Values that are not below the curve order are rejected rather than
// reduced.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	if len(data) != group.ScalarSize {
		return nil, fmt.Errorf("%w: got %d bytes", group.ErrInvalidScalar, len(data))
	}
	v := new(big.Int).SetBytes(reverse(data))
	if v.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: value not below the subgroup order", group.ErrInvalidScalar)
	}
	s.inner.Set(v)
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Cmp(bScalar.inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// Point represents a point in the prime-order subgroup of Baby Jubjub.
// It implements [group.Point] by wrapping gnark-crypto's PointAffine.
//
// Points are represented in affine coordinates (x, y) on the twisted
// Edwards curve. The identity element is (0, 1).
type Point struct {
	inner twistededwards.PointAffine
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	aPoint := a.(*Point)
	bPoint := b.(*Point)
	p.inner.Add(&aPoint.inner, &bPoint.inner)
	return p
}

// ScalarMult sets p to s * q and returns p.
func (p *Point) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*Point)
	p.inner.ScalarMultiplication(&qPoint.inner, scalar.inner)
	return p
}

// ScalarBaseMult sets p to s * G and returns p.
func (p *Point) ScalarBaseMult(s group.Scalar) group.Point {
	scalar := s.(*Scalar)
	base := twistededwards.GetEdwardsCurve().Base
	p.inner.ScalarMultiplication(&base, scalar.inner)
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	aPoint := a.(*Point)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed point encoding as a byte slice.
func (p *Point) Bytes() []byte {
	enc := p.inner.Bytes()
	return enc[:]
}

// SetBytes sets p from a compressed point encoding and returns p.
// The encoding must decompress to a curve point in the prime-order
// subgroup and must be the canonical encoding of that point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) != group.PointSize {
		return nil, fmt.Errorf("%w: got %d bytes", group.ErrInvalidPoint, len(data))
	}
	var q twistededwards.PointAffine
	if _, err := q.SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", group.ErrInvalidPoint, err)
	}
	if !q.IsOnCurve() {
		return nil, fmt.Errorf("%w: not on curve", group.ErrInvalidPoint)
	}
	if !inSubgroup(&q) {
		return nil, fmt.Errorf("%w: not in prime-order subgroup", group.ErrInvalidPoint)
	}
	if enc := q.Bytes(); !bytes.Equal(enc[:], data) {
		return nil, fmt.Errorf("%w: non-canonical encoding", group.ErrInvalidPoint)
	}
	p.inner.Set(&q)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the identity element (0, 1).
func (p *Point) IsIdentity() bool {
	return p.inner.IsZero()
}

func inSubgroup(q *twistededwards.PointAffine) bool {
	var t twistededwards.PointAffine
	t.ScalarMultiplication(q, curveOrder)
	return t.IsZero()
}

// BJJ implements [group.Group] for the Baby Jubjub curve.
//
// BJJ is a zero-sized type that provides access to Baby Jubjub curve
// operations. Create an instance with &BJJ{} or new(BJJ).
type BJJ struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *BJJ) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element (0, 1).
func (g *BJJ) NewPoint() group.Point {
	var p Point
	p.inner.X.SetZero()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point for the Baby Jubjub curve.
func (g *BJJ) Generator() group.Point {
	var p Point
	p.inner = twistededwards.GetEdwardsCurve().Base
	return &p
}

// RandomScalar generates a random scalar from 32 bytes of r, read as a
// little-endian integer and reduced modulo the subgroup order.
func (g *BJJ) RandomScalar(r io.Reader) (group.Scalar, error) {
	var buf [group.ScalarSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return g.ReduceScalar(buf[:]), nil
}

// ReduceScalar interprets data as a little-endian integer and reduces it
// modulo the subgroup order. Inputs longer than 64 bytes are truncated.
func (g *BJJ) ReduceScalar(data []byte) group.Scalar {
	if len(data) > group.UniformSize {
		data = data[:group.UniformSize]
	}
	s := newScalar()
	s.inner.SetBytes(reverse(data))
	s.reduce()
	return s
}

// HashToPoint maps 64 uniform bytes into the prime-order subgroup by
// try-and-increment: BLAKE2b-256(uniform || counter) is decompressed as a
// candidate point, multiplied by the cofactor, and accepted if the result
// is not the identity.
func (g *BJJ) HashToPoint(uniform []byte) (group.Point, error) {
	if len(uniform) != group.UniformSize {
		return nil, group.ErrUniformLength
	}
	var counter [1]byte
	for i := 0; i < maxHashAttempts; i++ {
		counter[0] = byte(i)
		h, _ := blake2b.New256(nil)
		h.Write(uniform)
		h.Write(counter[:])
		candidate := h.Sum(nil)

		var q twistededwards.PointAffine
		if _, err := q.SetBytes(candidate); err != nil || !q.IsOnCurve() {
			continue
		}
		var p Point
		p.inner.ScalarMultiplication(&q, cofactor)
		if p.inner.IsZero() {
			continue
		}
		return &p, nil
	}
	return nil, errHashToPoint
}

// Order returns the order of the Baby Jubjub curve's prime-order subgroup
// as a little-endian byte slice.
func (g *BJJ) Order() []byte {
	var be [group.ScalarSize]byte
	curveOrder.FillBytes(be[:])
	return reverse(be[:])
}

// Name returns "babyjubjub".
func (g *BJJ) Name() string {
	return "babyjubjub"
}
