package vrf

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Sizes the VRF requires from the first two hash roles.
const (
	WideSize      = 64
	ChallengeSize = 32
)

// defaultOutputSize is used by hashers whose output size is left at zero.
const defaultOutputSize = 32

// Hasher defines the hash functions required by the VRF. Each method
// returns a fresh hash.Hash for a single computation.
//
// Wide and Challenge must produce exactly [WideSize] and [ChallengeSize]
// bytes; [NewWithHasher] rejects hashers that do not. Output may have any
// positive size and determines the length of beta. The same hash family may
// serve several roles.
type Hasher interface {
	// Wide returns the hash that maps alpha onto the group.
	Wide() hash.Hash
	// Challenge returns the hash for the Fiat-Shamir challenge.
	Challenge() hash.Hash
	// Output returns the hash that derives beta from gamma.
	Output() hash.Hash
}

// SHA2Hasher implements Hasher with SHA-512, SHA-256 and SHA-224.
// This is the default hasher.
type SHA2Hasher struct{}

// Wide implements Hasher.Wide with SHA-512.
func (h *SHA2Hasher) Wide() hash.Hash {
	return sha512.New()
}

// Challenge implements Hasher.Challenge with SHA-256.
func (h *SHA2Hasher) Challenge() hash.Hash {
	return sha256simd.New()
}

// Output implements Hasher.Output with SHA-224.
func (h *SHA2Hasher) Output() hash.Hash {
	return sha256.New224()
}

// Blake2bHasher implements Hasher using BLAKE2b at 512 and 256 bits, with
// a configurable beta length.
type Blake2bHasher struct {
	// Size is the length of beta in bytes, 1 to 64.
	// Default: 32
	Size int
}

// Wide implements Hasher.Wide with BLAKE2b-512.
func (h *Blake2bHasher) Wide() hash.Hash {
	d, _ := blake2b.New512(nil)
	return d
}

// Challenge implements Hasher.Challenge with BLAKE2b-256.
func (h *Blake2bHasher) Challenge() hash.Hash {
	d, _ := blake2b.New256(nil)
	return d
}

// Output implements Hasher.Output with BLAKE2b of h.Size bytes. It returns
// nil if Size is out of range.
func (h *Blake2bHasher) Output() hash.Hash {
	d, err := blake2b.New(outputSize(h.Size), nil)
	if err != nil {
		return nil
	}
	return d
}

// Blake3Hasher implements Hasher using BLAKE3 in extendable-output mode.
type Blake3Hasher struct {
	// Size is the length of beta in bytes.
	// Default: 32
	Size int
}

// Wide implements Hasher.Wide with 64 bytes of BLAKE3 output.
func (h *Blake3Hasher) Wide() hash.Hash {
	return blake3.New(WideSize, nil)
}

// Challenge implements Hasher.Challenge with 32 bytes of BLAKE3 output.
func (h *Blake3Hasher) Challenge() hash.Hash {
	return blake3.New(ChallengeSize, nil)
}

// Output implements Hasher.Output with h.Size bytes of BLAKE3 output.
func (h *Blake3Hasher) Output() hash.Hash {
	return blake3.New(outputSize(h.Size), nil)
}

// SHA3Hasher implements Hasher with SHA3-512 and SHA3-256.
type SHA3Hasher struct{}

// Wide implements Hasher.Wide with SHA3-512.
func (h *SHA3Hasher) Wide() hash.Hash {
	return sha3.New512()
}

// Challenge implements Hasher.Challenge with SHA3-256.
func (h *SHA3Hasher) Challenge() hash.Hash {
	return sha3.New256()
}

// Output implements Hasher.Output with SHA3-256.
func (h *SHA3Hasher) Output() hash.Hash {
	return sha3.New256()
}

func outputSize(n int) int {
	if n <= 0 {
		return defaultOutputSize
	}
	return n
}

// checkHasher verifies the sizes of h's three roles.
func checkHasher(h Hasher) error {
	if w := h.Wide(); w == nil || w.Size() != WideSize {
		return ErrHasherSize
	}
	if c := h.Challenge(); c == nil || c.Size() != ChallengeSize {
		return ErrHasherSize
	}
	if o := h.Output(); o == nil || o.Size() <= 0 {
		return ErrHasherSize
	}
	return nil
}
