// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

// Package channel implements the Fiat-Shamir transcript channel shared by a
// STARK prover and verifier: a deterministic randomness oracle (PublicCoin)
// seeded by absorbed prover messages, plus the ProverChannel/VerifierChannel
// pair that keep a serialized proof and a coin in lockstep. The package is a
// pure in-memory state machine — it performs no I/O, authenticates nothing,
// and knows nothing about the constraint system, FRI, or Merkle trees that
// sit above it.
package channel

import (
	"encoding/binary"

	"github.com/holiman/uint256"
	"golang.org/x/crypto/sha3"
)

// powDomainTag prefixes every PoW seed computation. It is wire-visible
// through the verifier's grinding check and must never change.
var powDomainTag = [8]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xed}

// PublicCoin is the deterministic randomness oracle every challenge in the
// transcript funnels through. Absorbing data resets the draw counter;
// drawing advances it without touching the digest.
type PublicCoin struct {
	digest  [32]byte
	counter uint64
}

// NewPublicCoin returns a coin with digest = Keccak256(seed) and counter 0.
func NewPublicCoin(seed []byte) *PublicCoin {
	return &PublicCoin{digest: keccak256(seed)}
}

// Digest returns the coin's current 32-byte digest.
func (c *PublicCoin) Digest() [32]byte { return c.digest }

// Counter returns the coin's current draw counter.
func (c *PublicCoin) Counter() uint64 { return c.counter }

// Equal reports whether two coins hold identical digest and counter state.
func (c *PublicCoin) Equal(other *PublicCoin) bool {
	return c.digest == other.digest && c.counter == other.counter
}

// Absorb sets digest = Keccak256(digest || data) and resets counter to 0.
// data may be empty; the call still rehashes and resets the counter.
func (c *PublicCoin) Absorb(data []byte) {
	c.digest = keccak256(c.digest[:], data)
	c.counter = 0
}

// DrawBytes32 returns Keccak256(digest || 24 zero bytes || counter_be_u64)
// and then increments counter. The 24-byte pad sits between the digest and
// the counter and is part of the wire-compatible definition.
func (c *PublicCoin) DrawBytes32() [32]byte {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], c.counter)
	var zero [24]byte
	out := keccak256(c.digest[:], zero[:], ctr[:])
	c.counter++
	return out
}

// DrawU256 draws a block and interprets it as a big-endian 256-bit integer.
func (c *PublicCoin) DrawU256() *uint256.Int {
	b := c.DrawBytes32()
	return new(uint256.Int).SetBytes32(b[:])
}

// DrawFieldElement draws a uniform field element below Modulus by rejection
// sampling: mask the top 4 bits of each draw and retry until the masked
// 252-bit value is strictly less than Modulus.
func (c *PublicCoin) DrawFieldElement() FieldElement {
	for {
		n := c.DrawU256()
		n.And(n, rejectionMask)
		if n.Lt(Modulus) {
			return FieldElement{val: *n}
		}
	}
}

// PowSeed returns the domain-separated PoW challenge seed for a given
// difficulty. It is a pure function of coin state; it does not mutate
// digest or counter.
func (c *PublicCoin) PowSeed(bits uint8) [32]byte {
	return keccak256(powDomainTag[:], c.digest[:], []byte{bits})
}

// PowVerify reports whether nonce solves the PoW puzzle at the given
// difficulty: Keccak256(PowSeed(bits) || nonce) must have at least bits
// leading zero bits, read as a big-endian 256-bit integer.
func (c *PublicCoin) PowVerify(nonce uint64, bits uint8) bool {
	return powVerifyWithSeed(c.PowSeed(bits), nonce, bits)
}

func powVerifyWithSeed(seed [32]byte, nonce uint64, bits uint8) bool {
	var nb [8]byte
	binary.BigEndian.PutUint64(nb[:], nonce)
	digest := keccak256(seed[:], nb[:])
	return leadingZeroBits(digest) >= int(bits)
}

func leadingZeroBits(digest [32]byte) int {
	n := new(uint256.Int).SetBytes32(digest[:])
	return 256 - n.BitLen()
}

// keccak256 hashes the concatenation of parts with pre-NIST Keccak (the
// 0x01 domain byte tiny_keccak calls "keccak", not SHA3's 0x06). Swapping
// in the stdlib/NIST SHA3-256 here would silently change the wire format.
func keccak256(parts ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
