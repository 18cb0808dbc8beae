package vrf_test

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/f3rmion/vrf/ristretto"
	"github.com/f3rmion/vrf/vrf"
)

func Example() {
	v, err := vrf.New(ristretto.New())
	if err != nil {
		panic(err)
	}

	sk, err := v.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	defer sk.Destroy()

	alpha := []byte{0, 1, 2, 3}
	proof, err := v.Sign(rand.Reader, sk, alpha)
	if err != nil {
		panic(err)
	}
	beta := v.Beta(proof)

	// The verifier only sees the public key, alpha, beta and the proof.
	pk, err := v.PublicKeyFromBytes(sk.Public().Bytes())
	if err != nil {
		panic(err)
	}
	decoded, err := v.ProofFromBytes(proof.Bytes())
	if err != nil {
		panic(err)
	}

	fmt.Println("verified:", v.Verify(pk, alpha, beta, decoded))
	fmt.Println("beta bytes:", len(beta))
	fmt.Println("proof bytes:", len(proof.Bytes()))
	// Output:
	// verified: true
	// beta bytes: 28
	// proof bytes: 96
}

// Evaluating the same input twice yields one output with two unlinkable
// proofs.
func Example_blinding() {
	v, _ := vrf.New(ristretto.New())
	sk, _ := v.GenerateKey(rand.Reader)
	alpha := []byte("lottery round 7")

	p1, _ := v.Sign(rand.Reader, sk, alpha)
	p2, _ := v.Sign(rand.Reader, sk, alpha)

	fmt.Println("same beta:", bytes.Equal(v.Beta(p1), v.Beta(p2)))
	fmt.Println("same gamma:", bytes.Equal(p1.Gamma(), p2.Gamma()))
	fmt.Println("same proof:", p1.Equal(p2))
	fmt.Println("both verify:", v.Verify(sk.Public(), alpha, v.Beta(p1), p1) && v.Verify(sk.Public(), alpha, v.Beta(p2), p2))
	// Output:
	// same beta: true
	// same gamma: true
	// same proof: false
	// both verify: true
}
