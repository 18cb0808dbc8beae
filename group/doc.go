// Package group defines abstract interfaces for the prime-order groups
// used by the vrf package.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for discrete-log-equality proofs:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute k - c*x
//	s := g.NewScalar().Mul(c, x)
//	s = g.NewScalar().Sub(k, s)
//
// All operations that can fail return errors rather than panicking.
//
// # Encodings
//
// Scalars and points both encode to exactly 32 bytes. Scalars use the
// little-endian canonical representative; SetBytes rejects anything that is
// not already reduced. Points use the group's standard compression; SetBytes
// rejects encodings that are not canonical encodings of group elements.
//
// # Implementations
//
// The ristretto package implements Ristretto255 and is the default group.
// The bjj package implements the prime-order subgroup of Baby Jubjub.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Point operations are constant-time where possible
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid or non-canonical encodings are rejected in SetBytes
package group
