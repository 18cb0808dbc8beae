// Package bjj provides a Baby Jubjub elliptic curve implementation of the
// [group.Group] interface, as an alternative group for the vrf package.
//
// Baby Jubjub is a twisted Edwards curve defined over the scalar field of
// BN254 (also known as alt_bn128). It is commonly used in zero-knowledge
// proof systems, where VRF outputs over it are cheap to verify in-circuit.
//
// This package wraps the Baby Jubjub implementation from gnark-crypto,
// providing a clean interface that satisfies [group.Group], [group.Scalar],
// and [group.Point].
//
// # Curve Parameters
//
// Baby Jubjub is defined by the equation:
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// where a = 168700 and d = 168696 over the BN254 scalar field.
//
// The curve has cofactor 8 and a prime-order subgroup of size:
//
//	2736030358979909402780800718157159386076813972158567259200215660948447373041
//
// # Encodings
//
// Scalars are 32 little-endian bytes and must be below the subgroup order.
// Points use gnark-crypto's 32-byte compressed form; decoding additionally
// checks that the point is on the curve, lies in the prime-order subgroup,
// and re-encodes to the same bytes.
//
// # Usage
//
//	g := &bjj.BJJ{}
//	v, err := vrf.New(g)
//
// # Security
//
// Scalar arithmetic uses math/big and point multiplication is not constant
// time. Prefer the ristretto package where timing side channels matter.
package bjj
