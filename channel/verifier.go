// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"

	"github.com/holiman/uint256"
)

// VerifierChannel replays a serialized proof, mirroring the coin-side
// effects the prover performed while writing it. Replays are read-only over
// Proof; cursor only ever advances.
type VerifierChannel struct {
	Coin   *PublicCoin
	Proof  []byte
	cursor int
}

// NewVerifierChannel fails with ErrPrefixMismatch if proof does not begin
// with seed verbatim. Otherwise it returns a channel with Coin =
// NewPublicCoin(seed) and the read cursor positioned just past the seed.
func NewVerifierChannel(seed, proof []byte) (*VerifierChannel, error) {
	if len(proof) < len(seed) || !bytes.Equal(proof[:len(seed)], seed) {
		return nil, fmt.Errorf("%w", ErrPrefixMismatch)
	}
	return &VerifierChannel{
		Coin:   NewPublicCoin(seed),
		Proof:  proof,
		cursor: len(seed),
	}, nil
}

// Cursor returns the current read offset into Proof.
func (v *VerifierChannel) Cursor() int { return v.cursor }

// readRaw returns the next n bytes of Proof and advances cursor, or fails
// with ErrOutOfBounds without mutating cursor or Coin.
func (v *VerifierChannel) readRaw(n int) ([]byte, error) {
	if n < 0 || v.cursor+n > len(v.Proof) {
		return nil, fmt.Errorf("%w", ErrOutOfBounds)
	}
	data := v.Proof[v.cursor : v.cursor+n]
	v.cursor += n
	return data, nil
}

// ReplayBytes32 reads 32 bytes, absorbs them into Coin, and returns them.
func (v *VerifierChannel) ReplayBytes32() ([32]byte, error) {
	data, err := v.readRaw(32)
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], data)
	v.Coin.Absorb(data)
	return out, nil
}

// ReplayU64 reads 8 big-endian bytes, absorbs them, and returns the value.
func (v *VerifierChannel) ReplayU64() (uint64, error) {
	data, err := v.readRaw(8)
	if err != nil {
		return 0, err
	}
	v.Coin.Absorb(data)
	return binary.BigEndian.Uint64(data), nil
}

// ReplayU256 reads 32 big-endian bytes, absorbs them, and decodes them as a
// 256-bit integer.
func (v *VerifierChannel) ReplayU256() (*uint256.Int, error) {
	b, err := v.ReplayBytes32()
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).SetBytes32(b[:]), nil
}

// ReplayField reads 32 bytes, absorbs them, and decodes them directly as a
// field element's representative. A value >= Modulus is accepted as-is: the
// verifier never re-reduces, it only mirrors what is on the wire.
func (v *VerifierChannel) ReplayField() (FieldElement, error) {
	b, err := v.ReplayBytes32()
	if err != nil {
		return FieldElement{}, err
	}
	return FieldElement{val: *new(uint256.Int).SetBytes32(b[:])}, nil
}

// ReplayFieldSlice reads n field elements (32 bytes each) and absorbs the
// whole run as a *single* block, mirroring ProverChannel.WriteFieldSlice. It
// fails with ErrOutOfBounds, without mutating Coin, if fewer than n*32
// bytes remain.
func (v *VerifierChannel) ReplayFieldSlice(n int) ([]FieldElement, error) {
	data, err := v.readRaw(32 * n)
	if err != nil {
		return nil, err
	}
	out := make([]FieldElement, n)
	for i := 0; i < n; i++ {
		out[i] = FieldElement{val: *new(uint256.Int).SetBytes32(data[32*i : 32*i+32])}
	}
	v.Coin.Absorb(data)
	return out, nil
}

// ReplayU256Slice reads n U256 values, each as its own 32-byte replay and
// its own absorption, mirroring ProverChannel.WriteU256Slice. A failure
// partway through leaves Coin mutated by whichever elements already
// succeeded, matching the element-at-a-time write it replays.
func (v *VerifierChannel) ReplayU256Slice(n int) ([]*uint256.Int, error) {
	out := make([]*uint256.Int, n)
	for i := 0; i < n; i++ {
		u, err := v.ReplayU256()
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

// ChallengeBytes32 draws a raw 32-byte block from the coin.
func (v *VerifierChannel) ChallengeBytes32() [32]byte { return v.Coin.DrawBytes32() }

// ChallengeU256 draws a 256-bit integer from the coin.
func (v *VerifierChannel) ChallengeU256() *uint256.Int { return v.Coin.DrawU256() }

// ChallengeField draws a uniform field element from the coin.
func (v *VerifierChannel) ChallengeField() FieldElement { return v.Coin.DrawFieldElement() }

// FindNonce forwards to Coin.FindNonce.
func (v *VerifierChannel) FindNonce(bits uint8) (uint64, error) { return v.Coin.FindNonce(bits) }

// FindNonceParallel forwards to Coin.FindNonceParallel.
func (v *VerifierChannel) FindNonceParallel(ctx context.Context, bits uint8) (uint64, error) {
	return v.Coin.FindNonceParallel(ctx, bits)
}

// PowVerify forwards to Coin.PowVerify.
func (v *VerifierChannel) PowVerify(nonce uint64, bits uint8) bool {
	return v.Coin.PowVerify(nonce, bits)
}
