// Package vrf implements a verifiable random function over a prime-order
// group.
//
// A VRF lets the holder of a secret key x compute a pseudorandom output
// beta for any input alpha, together with a proof that anyone holding the
// public key Y = x*G can check. For a fixed key and input, beta is unique:
// no proof can convince a verifier of any other output.
//
// # Construction
//
// Given a hash H that maps bytes onto the group:
//
//	a     = H(alpha)
//	gamma = x * a
//	k     = random nonce
//	c     = Challenge(alpha || Y || gamma || k*G || k*a) mod q
//	s     = k - c*x
//	beta  = Output(gamma)
//
// The proof is (gamma, c, s), encoded as 96 bytes. A verifier recomputes
// U' = c*Y + s*G and V' = c*gamma + s*a and accepts iff the recomputed
// challenge equals c and the claimed beta equals Output(gamma). Both
// comparisons are constant-time and both always run.
//
// Signing twice on the same input yields the same gamma and beta, but a
// different (c, s) because the nonce is fresh. Proofs are therefore
// blinded: an observer cannot tell whether two proofs came from the same
// evaluation.
//
// # Usage
//
//	v, err := vrf.New(ristretto.New())
//	if err != nil {
//		return err
//	}
//
//	sk, err := v.GenerateKey(rand.Reader)
//	if err != nil {
//		return err
//	}
//	defer sk.Destroy()
//
//	proof, err := v.Sign(rand.Reader, sk, alpha)
//	if err != nil {
//		return err
//	}
//	beta := v.Beta(proof)
//
//	// Publish sk.Public().Bytes(), proof.Bytes() and beta
//
//	ok := v.Verify(pk, alpha, beta, proof)
//
// # Hash Functions
//
// The three hash roles are supplied by a [Hasher]:
//
//   - [SHA2Hasher] (default): SHA-512 / SHA-256 / SHA-224
//   - [Blake2bHasher]: BLAKE2b-512 / BLAKE2b-256 / BLAKE2b of configurable size
//   - [Blake3Hasher]: BLAKE3 in extendable-output mode
//   - [SHA3Hasher]: SHA3-512 / SHA3-256 / SHA3-256
//
// Signer and verifier must agree on the group and the hasher; mixing
// configurations produces proofs that do not verify.
//
// # Security Considerations
//
//   - The nonce reader must be a cryptographically secure source. A repeated
//     or predictable nonce reveals the secret key.
//   - The challenge is a 32-byte digest reduced modulo the group order with
//     no rejection sampling. For ristretto255 the bias is negligible.
//   - Beta may be read from any decoded proof, but is only meaningful once
//     Verify has accepted that proof for the expected key and input.
//   - Call [SecretKey.Destroy] when a key is no longer needed.
package vrf
