package vrf

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/f3rmion/vrf/group"
)

// ProofSize is the length of an encoded proof: gamma || c || s.
const ProofSize = group.PointSize + 2*group.ScalarSize

var (
	// ErrInvalidProof wraps decoding failures for proofs.
	ErrInvalidProof = errors.New("vrf: invalid proof")
	// ErrInvalidLength is returned when a proof is not ProofSize bytes.
	ErrInvalidLength = errors.New("vrf: wrong encoding length")
)

// Proof is the triple (gamma, c, s) produced by [VRF.Sign].
//
//	gamma = x * H(alpha)
//	c     = H(alpha || Y || gamma || k*G || k*H(alpha))
//	s     = k - c*x
type Proof struct {
	group string
	gamma group.Point
	c     group.Scalar
	s     group.Scalar
}

// ProofFromBytes decodes a 96-byte proof. Every field must be canonical;
// if any field fails to decode the whole proof is rejected.
func (v *VRF) ProofFromBytes(data []byte) (*Proof, error) {
	if len(data) != ProofSize {
		return nil, fmt.Errorf("%w: %w: got %d bytes, want %d", ErrInvalidProof, ErrInvalidLength, len(data), ProofSize)
	}

	gamma, err := v.group.NewPoint().SetBytes(data[:group.PointSize])
	if err != nil {
		return nil, fmt.Errorf("%w: gamma: %w", ErrInvalidProof, err)
	}
	c, err := v.group.NewScalar().SetBytes(data[group.PointSize : group.PointSize+group.ScalarSize])
	if err != nil {
		return nil, fmt.Errorf("%w: c: %w", ErrInvalidProof, err)
	}
	s, err := v.group.NewScalar().SetBytes(data[group.PointSize+group.ScalarSize:])
	if err != nil {
		return nil, fmt.Errorf("%w: s: %w", ErrInvalidProof, err)
	}

	return &Proof{
		group: v.group.Name(),
		gamma: gamma,
		c:     c,
		s:     s,
	}, nil
}

// Bytes returns the 96-byte encoding gamma || c || s.
func (p *Proof) Bytes() []byte {
	out := make([]byte, 0, ProofSize)
	out = append(out, p.gamma.Bytes()...)
	out = append(out, p.c.Bytes()...)
	out = append(out, p.s.Bytes()...)
	return out
}

// Gamma returns the encoding of gamma, the point that determines beta.
func (p *Proof) Gamma() []byte {
	return p.gamma.Bytes()
}

// Equal reports whether p and o have identical encodings.
func (p *Proof) Equal(o *Proof) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.group == o.group && subtle.ConstantTimeCompare(p.Bytes(), o.Bytes()) == 1
}

// String returns the hex encoding of p.
func (p *Proof) String() string {
	return hex.EncodeToString(p.Bytes())
}

// MarshalText implements encoding.TextMarshaler using lowercase hex.
func (p *Proof) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
