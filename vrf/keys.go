package vrf

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/f3rmion/vrf/group"
)

var (
	// ErrInvalidSecretKey wraps decoding failures for secret keys.
	ErrInvalidSecretKey = errors.New("vrf: invalid secret key")
	// ErrInvalidPublicKey wraps decoding failures for public keys.
	ErrInvalidPublicKey = errors.New("vrf: invalid public key")
)

// SecretKey is a signer's private scalar together with its public key.
// The scalar is only exported through [SecretKey.Bytes].
type SecretKey struct {
	scalar    group.Scalar
	public    *PublicKey
	destroyed bool
}

// PublicKey is the verifier-facing group element Y = x * G.
type PublicKey struct {
	group string
	point group.Point
}

// GenerateKey draws a new secret key from r.
func (v *VRF) GenerateKey(r io.Reader) (*SecretKey, error) {
	x, err := v.group.RandomScalar(r)
	if err != nil {
		return nil, fmt.Errorf("vrf: generating key: %w", err)
	}
	return v.newSecretKey(x), nil
}

// SecretKeyFromBytes decodes a 32-byte canonical scalar encoding.
func (v *VRF) SecretKeyFromBytes(data []byte) (*SecretKey, error) {
	x, err := v.group.NewScalar().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecretKey, err)
	}
	return v.newSecretKey(x), nil
}

// PublicKeyFromBytes decodes a 32-byte compressed group element.
func (v *VRF) PublicKeyFromBytes(data []byte) (*PublicKey, error) {
	y, err := v.group.NewPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return &PublicKey{group: v.group.Name(), point: y}, nil
}

func (v *VRF) newSecretKey(x group.Scalar) *SecretKey {
	return &SecretKey{
		scalar: x,
		public: &PublicKey{
			group: v.group.Name(),
			point: v.group.NewPoint().ScalarBaseMult(x),
		},
	}
}

// Public returns the public key matching sk.
func (sk *SecretKey) Public() *PublicKey {
	return sk.public
}

// Bytes returns the 32-byte canonical encoding of the secret scalar. The
// caller owns the returned slice and is responsible for wiping it.
func (sk *SecretKey) Bytes() []byte {
	return sk.scalar.Bytes()
}

// Equal reports whether sk and o hold the same scalar, in constant time.
func (sk *SecretKey) Equal(o *SecretKey) bool {
	if sk == nil || o == nil {
		return sk == o
	}
	return sk.public.group == o.public.group &&
		subtle.ConstantTimeCompare(sk.scalar.Bytes(), o.scalar.Bytes()) == 1
}

// Destroy overwrites the secret scalar with zero. A destroyed key can no
// longer sign; its public key remains usable.
func (sk *SecretKey) Destroy() {
	if sk.scalar != nil {
		sk.scalar.Zero()
	}
	sk.destroyed = true
}

// String identifies the key by its public half without revealing the
// secret scalar.
func (sk *SecretKey) String() string {
	return "SecretKey(" + sk.public.String() + ")"
}

// Bytes returns the 32-byte compressed encoding of pk.
func (pk *PublicKey) Bytes() []byte {
	return pk.point.Bytes()
}

// Equal reports whether pk and o encode the same group element.
func (pk *PublicKey) Equal(o *PublicKey) bool {
	if pk == nil || o == nil {
		return pk == o
	}
	return pk.group == o.group && subtle.ConstantTimeCompare(pk.Bytes(), o.Bytes()) == 1
}

// String returns the hex encoding of pk.
func (pk *PublicKey) String() string {
	return hex.EncodeToString(pk.Bytes())
}

// MarshalText implements encoding.TextMarshaler using lowercase hex.
func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}
