package vrf

import (
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"
	"testing"

	"github.com/f3rmion/vrf/ristretto"
)

// narrowHasher uses a 32-byte hash where 64 bytes are required.
type narrowHasher struct{ SHA2Hasher }

func (h *narrowHasher) Wide() hash.Hash { return sha256.New() }

// wideChallengeHasher uses a 64-byte hash for the challenge.
type wideChallengeHasher struct{ SHA2Hasher }

func (h *wideChallengeHasher) Challenge() hash.Hash { return sha512.New() }

func TestHasherSizes(t *testing.T) {
	g := ristretto.New()

	tests := []struct {
		name    string
		hasher  Hasher
		wantErr bool
		beta    int
	}{
		{"SHA2", &SHA2Hasher{}, false, 28},
		{"SHA3", &SHA3Hasher{}, false, 32},
		{"Blake2bDefault", &Blake2bHasher{}, false, 32},
		{"Blake2b16", &Blake2bHasher{Size: 16}, false, 16},
		{"Blake2bTooLarge", &Blake2bHasher{Size: 65}, true, 0},
		{"Blake3Default", &Blake3Hasher{}, false, 32},
		{"Blake3Long", &Blake3Hasher{Size: 64}, false, 64},
		{"NarrowWide", &narrowHasher{}, true, 0},
		{"WideChallenge", &wideChallengeHasher{}, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewWithHasher(g, tt.hasher)
			if tt.wantErr {
				if !errors.Is(err, ErrHasherSize) {
					t.Errorf("got %v, want ErrHasherSize", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if v.BetaSize() != tt.beta {
				t.Errorf("BetaSize() = %d, want %d", v.BetaSize(), tt.beta)
			}
		})
	}
}

func TestHashersDisagree(t *testing.T) {
	g := ristretto.New()
	a, _ := New(g)
	b, _ := NewWithHasher(g, &Blake2bHasher{Size: 28})

	sk, _ := a.GenerateKey(seededReader("hashers"))
	p, err := a.Sign(seededReader("nonce"), sk, []byte("input"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Verify(sk.Public(), []byte("input"), a.Beta(p), p) {
		t.Error("proof verified under a different hasher")
	}
}
