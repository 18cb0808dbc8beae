// Package ristretto provides a Ristretto255 implementation of the
// [group.Group] interface. It is the default group for the vrf package.
//
// Ristretto255 is a prime-order group built as a quotient of the Edwards
// form of Curve25519. It removes the cofactor, so every valid 32-byte
// encoding names exactly one element of a group of prime order
//
//	l = 2^252 + 27742317777372353535851937790883648493
//
// This package wraps github.com/gtank/ristretto255, which is constant time
// and follows RFC 9496 for encoding, decoding and the one-way map from 64
// uniform bytes. Those three operations are bit-compatible with other
// RFC 9496 implementations such as curve25519-dalek.
//
// # Usage
//
//	g := ristretto.New()
//	v, err := vrf.New(g)
//
// # Encodings
//
// Scalars are 32 little-endian bytes and must be fully reduced modulo l.
// Points are 32-byte Ristretto255 encodings; SetBytes rejects every string
// that is not the canonical encoding of a group element.
package ristretto
