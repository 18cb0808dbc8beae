package signer

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/f3rmion/vrf/bjj"
	"github.com/f3rmion/vrf/group"
	"github.com/f3rmion/vrf/ristretto"
	"github.com/f3rmion/vrf/vrf"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func groups() map[string]group.Group {
	return map[string]group.Group{
		"ristretto255": ristretto.New(),
		"babyjubjub":   &bjj.BJJ{},
	}
}

func TestEvaluateAndVerify(t *testing.T) {
	for name, g := range groups() {
		t.Run(name, func(t *testing.T) {
			v, err := vrf.New(g)
			if err != nil {
				t.Fatal(err)
			}
			s, err := Generate(v, rand.Reader)
			if err != nil {
				t.Fatalf("failed to generate signer: %v", err)
			}
			defer s.Close()

			alpha := []byte("hello signer API")
			ev, err := s.Evaluate(alpha)
			if err != nil {
				t.Fatalf("failed to evaluate: %v", err)
			}
			if len(ev.Proof) != vrf.ProofSize {
				t.Errorf("proof length = %d, want %d", len(ev.Proof), vrf.ProofSize)
			}

			if err := Verify(v, s.PublicKey(), alpha, ev.Beta, ev.Proof); err != nil {
				t.Errorf("verification failed: %v", err)
			}

			// Wrong message should fail
			err = Verify(v, s.PublicKey(), []byte("wrong message"), ev.Beta, ev.Proof)
			if !errors.Is(err, ErrVerification) {
				t.Errorf("wrong message: got %v, want ErrVerification", err)
			}

			// Same input, same beta, different proof
			ev2, err := s.Evaluate(alpha)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(ev.Beta, ev2.Beta) {
				t.Error("beta differs between evaluations")
			}
			if bytes.Equal(ev.Proof, ev2.Proof) {
				t.Error("proofs should be blinded")
			}
		})
	}
}

func TestNewFromBytes(t *testing.T) {
	v, _ := vrf.New(ristretto.New())
	sk, err := v.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	s, err := New(v, sk.Bytes())
	if err != nil {
		t.Fatalf("failed to load signer: %v", err)
	}
	if !bytes.Equal(s.PublicKey(), sk.Public().Bytes()) {
		t.Error("public key mismatch after load")
	}

	t.Run("RejectsBadSecret", func(t *testing.T) {
		bad := bytes.Repeat([]byte{0xff}, 32)
		_, err := New(v, bad)
		if !errors.Is(err, vrf.ErrInvalidSecretKey) {
			t.Errorf("got %v, want ErrInvalidSecretKey", err)
		}
		if err != nil && !strings.HasPrefix(err.Error(), "signer: ") {
			t.Errorf("error %q lacks package prefix", err)
		}
	})

	t.Run("RejectsNilVRF", func(t *testing.T) {
		if _, err := New(nil, sk.Bytes()); !errors.Is(err, ErrNilVRF) {
			t.Errorf("got %v, want ErrNilVRF", err)
		}
	})
}

func TestGenerateReader(t *testing.T) {
	v, _ := vrf.New(ristretto.New())

	t.Run("NilFallsBackToDefault", func(t *testing.T) {
		s, err := Generate(v, nil)
		if err != nil {
			t.Fatalf("Generate with nil reader: %v", err)
		}
		defer s.Close()
		if _, err := s.Evaluate([]byte("default source")); err != nil {
			t.Error(err)
		}
	})

	t.Run("NilUsesWithRand", func(t *testing.T) {
		seed := bytes.Repeat([]byte{0x5a}, 32)
		s, err := Generate(v, nil, WithRand(bytes.NewReader(seed)))
		if err != nil {
			t.Fatal(err)
		}
		defer s.Close()

		want, err := v.GenerateKey(bytes.NewReader(seed))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(s.PublicKey(), want.Public().Bytes()) {
			t.Error("key was not drawn from the WithRand source")
		}
	})
}

func TestClose(t *testing.T) {
	v, _ := vrf.New(ristretto.New())
	s, err := Generate(v, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	pub := s.PublicKey()

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Evaluate([]byte("after close")); !errors.Is(err, ErrClosed) {
		t.Errorf("got %v, want ErrClosed", err)
	}
	if !bytes.Equal(s.PublicKey(), pub) {
		t.Error("public key changed after close")
	}
	if err := s.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestConcurrentEvaluateAndClose(t *testing.T) {
	v, _ := vrf.New(ristretto.New())
	s, err := Generate(v, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ev, err := s.Evaluate([]byte("concurrent"))
			if errors.Is(err, ErrClosed) {
				return
			}
			if err != nil {
				t.Errorf("evaluate: %v", err)
				return
			}
			if err := Verify(v, s.PublicKey(), []byte("concurrent"), ev.Beta, ev.Proof); err != nil {
				t.Errorf("verify: %v", err)
			}
		}()
	}
	s.Close()
	wg.Wait()
}

func TestVerifyErrors(t *testing.T) {
	v, _ := vrf.New(ristretto.New())
	s, err := Generate(v, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	alpha := []byte("errors")
	ev, err := s.Evaluate(alpha)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("InvalidPublicKey", func(t *testing.T) {
		err := Verify(v, []byte{1, 2, 3}, alpha, ev.Beta, ev.Proof)
		if !errors.Is(err, ErrInvalidPublicKey) {
			t.Errorf("got %v, want ErrInvalidPublicKey", err)
		}
	})

	t.Run("InvalidProof", func(t *testing.T) {
		err := Verify(v, s.PublicKey(), alpha, ev.Beta, ev.Proof[:95])
		if !errors.Is(err, ErrInvalidProof) {
			t.Errorf("got %v, want ErrInvalidProof", err)
		}
		if !errors.Is(err, vrf.ErrInvalidLength) {
			t.Errorf("got %v, want wrapped ErrInvalidLength", err)
		}
	})

	t.Run("TamperedBeta", func(t *testing.T) {
		beta := append([]byte(nil), ev.Beta...)
		beta[0] ^= 1
		if err := Verify(v, s.PublicKey(), alpha, beta, ev.Proof); !errors.Is(err, ErrVerification) {
			t.Errorf("got %v, want ErrVerification", err)
		}
	})
}

func TestVerifierVerifyProof(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	v, _ := vrf.New(&bjj.BJJ{})
	s, err := Generate(v, rand.Reader, WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	alpha := []byte("verifier")
	ev, err := s.Evaluate(alpha)
	if err != nil {
		t.Fatal(err)
	}

	vr, err := NewVerifier(v, s.PublicKey(), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}

	beta, err := vr.VerifyProof(alpha, ev.Proof)
	if err != nil {
		t.Fatalf("VerifyProof: %v", err)
	}
	if !bytes.Equal(beta, ev.Beta) {
		t.Error("recovered beta differs from evaluated beta")
	}

	if _, err := vr.VerifyProof([]byte("other"), ev.Proof); !errors.Is(err, ErrVerification) {
		t.Errorf("got %v, want ErrVerification", err)
	}
	if logs.FilterMessage("proof rejected").Len() != 1 {
		t.Error("expected one rejection log entry")
	}
	if logs.FilterMessage("secret key generated").Len() != 1 {
		t.Error("expected key generation log entry")
	}
}
