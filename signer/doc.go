// Package signer provides a byte-oriented API over the [vrf] package for
// applications that store and transmit keys, outputs and proofs as raw
// bytes. It owns the secret key, supplies randomness, and reports failures
// as sentinel errors.
//
// For full control over keys and proofs, use the [vrf] package directly.
//
// # Evaluating
//
//	v, _ := vrf.New(ristretto.New())
//	s, err := signer.Generate(v, rand.Reader, signer.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	ev, err := s.Evaluate(alpha)
//	if err != nil {
//		return err
//	}
//
//	// Publish s.PublicKey(), ev.Beta and ev.Proof
//
// # Verifying
//
//	if err := signer.Verify(v, publicKey, alpha, beta, proof); err != nil {
//		// errors.Is(err, signer.ErrVerification) for a rejected proof
//		return err
//	}
//
// A [Verifier] binds one public key for repeated checks, and
// [Verifier.VerifyProof] recovers beta from an accepted proof.
//
// # Key Lifetime
//
// Close overwrites the secret scalar. The public key stays readable, but
// Evaluate returns [ErrClosed]. The byte slice passed to [New] is not
// retained; the caller is responsible for wiping it.
package signer
