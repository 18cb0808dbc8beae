package signer

import (
	"errors"
	"fmt"

	"github.com/f3rmion/vrf/vrf"
	"go.uber.org/zap"
)

var (
	// ErrInvalidPublicKey is returned when the public key does not decode.
	ErrInvalidPublicKey = errors.New("signer: invalid public key")
	// ErrInvalidProof is returned when the proof does not decode.
	ErrInvalidProof = errors.New("signer: invalid proof")
	// ErrVerification is returned when a well-formed proof does not verify.
	// No further reason is given.
	ErrVerification = errors.New("signer: verification failed")
)

// Verify checks that proof shows beta is the output for alpha under the
// encoded public key.
func Verify(v *vrf.VRF, public, alpha, beta, proof []byte) error {
	vr, err := NewVerifier(v, public)
	if err != nil {
		return err
	}
	return vr.Verify(alpha, beta, proof)
}

// Verifier checks proofs against a single decoded public key.
// It is safe for concurrent use.
type Verifier struct {
	vrf    *vrf.VRF
	key    *vrf.PublicKey
	logger *zap.Logger
}

// NewVerifier decodes public and binds it for later checks. Only
// [WithLogger] has an effect on a Verifier.
func NewVerifier(v *vrf.VRF, public []byte, opts ...Option) (*Verifier, error) {
	if v == nil {
		return nil, ErrNilVRF
	}
	pk, err := v.PublicKeyFromBytes(public)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}

	o := applyOptions(opts)

	return &Verifier{
		vrf:    v,
		key:    pk,
		logger: o.logger.With(zap.String("public_key", pk.String())),
	}, nil
}

// Verify checks proof against alpha and the expected beta.
func (vr *Verifier) Verify(alpha, beta, proof []byte) error {
	p, err := vr.vrf.ProofFromBytes(proof)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	if !vr.vrf.Verify(vr.key, alpha, beta, p) {
		vr.logger.Debug("proof rejected")
		return ErrVerification
	}
	return nil
}

// VerifyProof checks proof against alpha and returns the beta it carries.
// The returned beta is only produced for an accepted proof.
func (vr *Verifier) VerifyProof(alpha, proof []byte) ([]byte, error) {
	p, err := vr.vrf.ProofFromBytes(proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	beta := vr.vrf.Beta(p)
	if !vr.vrf.Verify(vr.key, alpha, beta, p) {
		vr.logger.Debug("proof rejected")
		return nil, ErrVerification
	}
	return beta, nil
}

// PublicKey returns the encoded public key the verifier is bound to.
func (vr *Verifier) PublicKey() []byte {
	return vr.key.Bytes()
}
