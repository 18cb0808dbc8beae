package signer

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/vrf/vrf"
	"go.uber.org/zap"
)

var (
	// ErrClosed is returned by Evaluate after Close.
	ErrClosed = errors.New("signer: closed")
	// ErrNilVRF is returned when no VRF instance is supplied.
	ErrNilVRF = errors.New("signer: nil vrf")
)

// Evaluation is the result of evaluating the VRF on one input.
type Evaluation struct {
	// Beta is the pseudorandom output. It is determined by the key and
	// alpha alone.
	Beta []byte

	// Proof is the 96-byte encoded proof. It differs between evaluations
	// of the same input.
	Proof []byte
}

// Option configures a Signer or Verifier.
type Option func(*options)

type options struct {
	rand   io.Reader
	logger *zap.Logger
}

func defaultOptions() options {
	return options{
		rand:   rand.Reader,
		logger: zap.NewNop(),
	}
}

// WithRand sets the randomness source used for nonces, and for key
// generation when [Generate] is given a nil reader. The default is
// crypto/rand.Reader.
func WithRand(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.rand = r
		}
	}
}

// WithLogger sets the logger for lifecycle events. Secrets and proofs are
// never logged.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Signer holds a secret key and evaluates the VRF with it.
//
// A Signer is safe for concurrent use provided its randomness source is.
// Close may be called while evaluations are in flight; it waits for them
// to finish before wiping the key.
type Signer struct {
	mu     sync.RWMutex
	vrf    *vrf.VRF
	key    *vrf.SecretKey
	rand   io.Reader
	logger *zap.Logger
	closed bool
}

// New creates a Signer from a 32-byte encoded secret key. The caller keeps
// ownership of secret and should wipe it once New returns.
func New(v *vrf.VRF, secret []byte, opts ...Option) (*Signer, error) {
	if v == nil {
		return nil, ErrNilVRF
	}
	sk, err := v.SecretKeyFromBytes(secret)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	s := newSigner(v, sk, applyOptions(opts))
	s.logger.Debug("secret key loaded", zap.String("public_key", sk.Public().String()))
	return s, nil
}

// Generate creates a Signer with a fresh secret key drawn from rng. A nil
// rng falls back to the source set by [WithRand], or crypto/rand.Reader.
func Generate(v *vrf.VRF, rng io.Reader, opts ...Option) (*Signer, error) {
	if v == nil {
		return nil, ErrNilVRF
	}
	o := applyOptions(opts)
	if rng == nil {
		rng = o.rand
	}
	sk, err := v.GenerateKey(rng)
	if err != nil {
		return nil, fmt.Errorf("signer: %w", err)
	}
	s := newSigner(v, sk, o)
	s.logger.Info("secret key generated", zap.String("public_key", sk.Public().String()))
	return s, nil
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func newSigner(v *vrf.VRF, sk *vrf.SecretKey, o options) *Signer {
	return &Signer{
		vrf:    v,
		key:    sk,
		rand:   o.rand,
		logger: o.logger.With(zap.String("group", v.Group().Name())),
	}
}

// PublicKey returns the 32-byte encoded public key. It remains available
// after Close.
func (s *Signer) PublicKey() []byte {
	return s.key.Public().Bytes()
}

// Evaluate computes beta and a fresh proof for alpha.
func (s *Signer) Evaluate(alpha []byte) (*Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	p, err := s.vrf.Sign(s.rand, s.key, alpha)
	if err != nil {
		s.logger.Warn("evaluation failed", zap.Error(err))
		return nil, fmt.Errorf("signer: %w", err)
	}

	return &Evaluation{
		Beta:  s.vrf.Beta(p),
		Proof: p.Bytes(),
	}, nil
}

// Close wipes the secret key. Later calls to Evaluate return [ErrClosed].
// Close is idempotent.
func (s *Signer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.key.Destroy()
	s.closed = true
	s.logger.Debug("secret key wiped", zap.String("public_key", s.key.Public().String()))
	return nil
}
