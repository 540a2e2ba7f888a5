// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"context"
	"encoding/binary"

	"github.com/holiman/uint256"
)

// ProverChannel serializes prover messages into an append-only proof while
// keeping its PublicCoin synchronized: every write both appends to Proof
// and absorbs the same bytes into Coin.
type ProverChannel struct {
	Coin  *PublicCoin
	Proof []byte
}

// NewProverChannel starts a channel with Proof = seed (copied verbatim) and
// Coin = NewPublicCoin(seed).
func NewProverChannel(seed []byte) *ProverChannel {
	proof := make([]byte, len(seed))
	copy(proof, seed)
	return &ProverChannel{Coin: NewPublicCoin(seed), Proof: proof}
}

// write appends data to Proof and absorbs it into Coin as one block. Every
// typed Write* method below funnels through here so the two stay in lockstep.
func (p *ProverChannel) write(data []byte) {
	p.Proof = append(p.Proof, data...)
	p.Coin.Absorb(data)
}

// WriteBytes32 writes 32 raw bytes.
func (p *ProverChannel) WriteBytes32(data [32]byte) {
	p.write(data[:])
}

// WriteU64 writes 8 big-endian bytes.
func (p *ProverChannel) WriteU64(v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	p.write(buf[:])
}

// WriteU256 writes 32 big-endian bytes.
func (p *ProverChannel) WriteU256(v *uint256.Int) {
	b := v.Bytes32()
	p.write(b[:])
}

// WriteField writes a field element's canonical 32-byte representative.
func (p *ProverChannel) WriteField(f FieldElement) {
	b := f.Bytes32()
	p.write(b[:])
}

// WriteFieldSlice writes the concatenation of each element's 32-byte
// encoding as a *single* absorption. This is the encoding used for groups
// of field elements; see WriteU256Slice for the element-at-a-time
// alternative used for Merkle row decommitments.
func (p *ProverChannel) WriteFieldSlice(elems []FieldElement) {
	buf := make([]byte, 0, 32*len(elems))
	for _, e := range elems {
		b := e.Bytes32()
		buf = append(buf, b[:]...)
	}
	p.write(buf)
}

// WriteU256Slice writes each element as an *independent* 32-byte write —
// one absorption per element, not one absorption for the whole run. This
// mirrors the protocol's Merkle row decommitment encoding and is not
// equivalent, in coin state, to WriteFieldSlice over the same bytes.
func (p *ProverChannel) WriteU256Slice(elems []*uint256.Int) {
	for _, e := range elems {
		p.WriteU256(e)
	}
}

// ChallengeBytes32 draws a raw 32-byte block from the coin.
func (p *ProverChannel) ChallengeBytes32() [32]byte { return p.Coin.DrawBytes32() }

// ChallengeU256 draws a 256-bit integer from the coin.
func (p *ProverChannel) ChallengeU256() *uint256.Int { return p.Coin.DrawU256() }

// ChallengeField draws a uniform field element from the coin.
func (p *ProverChannel) ChallengeField() FieldElement { return p.Coin.DrawFieldElement() }

// FindNonce forwards to Coin.FindNonce.
func (p *ProverChannel) FindNonce(bits uint8) (uint64, error) { return p.Coin.FindNonce(bits) }

// FindNonceParallel forwards to Coin.FindNonceParallel.
func (p *ProverChannel) FindNonceParallel(ctx context.Context, bits uint8) (uint64, error) {
	return p.Coin.FindNonceParallel(ctx, bits)
}

// PowVerify forwards to Coin.PowVerify.
func (p *ProverChannel) PowVerify(nonce uint64, bits uint8) bool {
	return p.Coin.PowVerify(nonce, bits)
}
