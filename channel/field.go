// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import "github.com/holiman/uint256"

// Modulus is the field modulus used by DrawFieldElement's rejection
// sampling. It defaults to the 252-bit STARK-friendly prime
// p = 2^251 + 17*2^192 + 1. Hosts using a different field swap this var
// before constructing any channel; the wire encoding width (32 bytes,
// big-endian) never changes regardless of the modulus in use.
var Modulus = uint256.MustFromHex("0x0800000000000011000000000000000000000000000000000000000000000001")

// rejectionMask keeps the low 252 bits of a drawn 256-bit value, per spec:
// without it the rejection loop would never terminate for moduli below
// 2^252 whenever drawn values cluster above the modulus.
var rejectionMask = uint256.MustFromHex("0x0fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

// FieldElement is a field element represented by its canonical U256
// big-endian representative. It does not re-reduce on construction from
// wire bytes: a VerifierChannel faithfully mirrors whatever 32-byte value
// appears in the proof, even one that is >= Modulus.
type FieldElement struct {
	val uint256.Int
}

// FieldElementFromU256 wraps a raw 256-bit integer as a FieldElement
// without reducing it.
func FieldElementFromU256(v *uint256.Int) FieldElement {
	return FieldElement{val: *v}
}

// U256 returns the element's canonical representative as a fresh *uint256.Int.
func (f FieldElement) U256() *uint256.Int {
	v := f.val
	return &v
}

// Bytes32 encodes the element as 32 big-endian bytes.
func (f FieldElement) Bytes32() [32]byte {
	return f.val.Bytes32()
}

// Equal reports whether two field elements hold the same representative.
func (f FieldElement) Equal(other FieldElement) bool {
	return f.val.Eq(&other.val)
}

// String renders the element as a 0x-prefixed hex string, for debugging.
func (f FieldElement) String() string {
	return f.val.Hex()
}
