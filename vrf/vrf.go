package vrf

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/vrf/group"
)

var (
	// ErrNilGroup is returned by New when no group is supplied.
	ErrNilGroup = errors.New("vrf: nil group")
	// ErrNilHasher is returned by NewWithHasher when no hasher is supplied.
	ErrNilHasher = errors.New("vrf: nil hasher")
	// ErrHasherSize is returned when a hasher's wide or challenge role has
	// the wrong output size, or its output role has none.
	ErrHasherSize = errors.New("vrf: hasher output sizes must be 64 (wide), 32 (challenge) and > 0 (output)")
	// ErrGroupMismatch is returned when a key belongs to a different group
	// than the VRF it is used with.
	ErrGroupMismatch = errors.New("vrf: key belongs to a different group")
	// ErrKeyDestroyed is returned when signing with a destroyed secret key.
	ErrKeyDestroyed = errors.New("vrf: secret key has been destroyed")
	// ErrNilKey is returned when signing with a nil or zero-value secret key.
	ErrNilKey = errors.New("vrf: nil secret key")
)

// VRF holds the group and hash configuration for evaluating and verifying
// proofs. A VRF is immutable and safe for concurrent use.
type VRF struct {
	group  group.Group
	hasher Hasher
}

// New creates a VRF over g using [SHA2Hasher].
func New(g group.Group) (*VRF, error) {
	return NewWithHasher(g, &SHA2Hasher{})
}

// NewWithHasher creates a VRF over g with a custom set of hash functions.
// The hasher's Wide and Challenge roles must produce 64 and 32 bytes.
func NewWithHasher(g group.Group, h Hasher) (*VRF, error) {
	if g == nil {
		return nil, ErrNilGroup
	}
	if h == nil {
		return nil, ErrNilHasher
	}
	if err := checkHasher(h); err != nil {
		return nil, err
	}

	return &VRF{
		group:  g,
		hasher: h,
	}, nil
}

// Group returns the group the VRF operates in.
func (v *VRF) Group() group.Group {
	return v.group
}

// BetaSize returns the length of the outputs produced by [VRF.Beta].
func (v *VRF) BetaSize() int {
	return v.hasher.Output().Size()
}

// Sign evaluates the VRF on alpha and returns a proof. The nonce is drawn
// from r, which must be a cryptographically secure source; a predictable or
// repeated nonce reveals the secret key.
//
// Two calls with the same key and alpha return proofs with the same gamma,
// and therefore the same beta, but different c and s.
func (v *VRF) Sign(r io.Reader, sk *SecretKey, alpha []byte) (*Proof, error) {
	if sk == nil || sk.scalar == nil || sk.public == nil {
		return nil, ErrNilKey
	}
	if sk.destroyed {
		return nil, ErrKeyDestroyed
	}
	if sk.public.group != v.group.Name() {
		return nil, ErrGroupMismatch
	}

	// a = H(alpha)
	a, err := v.hashToGroup(alpha)
	if err != nil {
		return nil, fmt.Errorf("vrf: hashing to group: %w", err)
	}

	// gamma = x * a
	gamma := v.group.NewPoint().ScalarMult(sk.scalar, a)

	k, err := v.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("vrf: reading nonce: %w", err)
	}
	defer k.Zero()

	// U = k * G, V = k * a
	u := v.group.NewPoint().ScalarBaseMult(k)
	vk := v.group.NewPoint().ScalarMult(k, a)

	// c = H(alpha || Y || gamma || U || V)
	c := v.challenge(alpha, sk.public.point, gamma, u, vk)

	// s = k - c * x
	cx := v.group.NewScalar().Mul(c, sk.scalar)
	defer cx.Zero()
	s := v.group.NewScalar().Sub(k, cx)

	return &Proof{
		group: v.group.Name(),
		gamma: gamma,
		c:     c,
		s:     s,
	}, nil
}

// Verify reports whether p proves that beta is the VRF output for alpha
// under pk. The challenge and beta are both compared in constant time and
// both are always evaluated; the result does not reveal which one failed.
func (v *VRF) Verify(pk *PublicKey, alpha, beta []byte, p *Proof) bool {
	if pk == nil || p == nil {
		return false
	}
	if pk.group != v.group.Name() || p.group != v.group.Name() {
		return false
	}

	// a = H(alpha)
	a, err := v.hashToGroup(alpha)
	if err != nil {
		return false
	}

	// U' = c * Y + s * G
	u := v.group.NewPoint().ScalarMult(p.c, pk.point)
	u = v.group.NewPoint().Add(u, v.group.NewPoint().ScalarBaseMult(p.s))

	// V' = c * gamma + s * a
	vk := v.group.NewPoint().ScalarMult(p.c, p.gamma)
	vk = v.group.NewPoint().Add(vk, v.group.NewPoint().ScalarMult(p.s, a))

	// c' = H(alpha || Y || gamma || U' || V')
	c := v.challenge(alpha, pk.point, p.gamma, u, vk)

	challengeOK := subtle.ConstantTimeCompare(c.Bytes(), p.c.Bytes())
	betaOK := subtle.ConstantTimeCompare(beta, v.Beta(p))
	return challengeOK&betaOK == 1
}

// Beta returns the VRF output carried by p: the output hash of gamma's
// encoding. It needs no key, but the value is only meaningful once
// [VRF.Verify] has accepted p for the expected public key and alpha.
func (v *VRF) Beta(p *Proof) []byte {
	if p == nil || p.gamma == nil {
		return nil
	}
	h := v.hasher.Output()
	h.Write(p.gamma.Bytes())
	return h.Sum(nil)
}

// hashToGroup maps alpha onto the group through the wide hash.
func (v *VRF) hashToGroup(alpha []byte) (group.Point, error) {
	h := v.hasher.Wide()
	h.Write(alpha)
	return v.group.HashToPoint(h.Sum(nil))
}

// challenge computes the Fiat-Shamir challenge. The 32-byte digest is
// reduced modulo the group order directly, without rejection sampling.
func (v *VRF) challenge(alpha []byte, public, gamma, u, vk group.Point) group.Scalar {
	h := v.hasher.Challenge()
	h.Write(alpha)
	h.Write(public.Bytes())
	h.Write(gamma.Bytes())
	h.Write(u.Bytes())
	h.Write(vk.Bytes())
	return v.group.ReduceScalar(h.Sum(nil))
}
