// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func fieldFromHex(s string) FieldElement {
	return FieldElementFromU256(new(uint256.Int).SetBytes(mustHex(s)))
}

// TestAbsorptionChain is scenario S2: a sequence of typed writes on a fresh
// prover channel, checked against golden digests after each step.
func TestAbsorptionChain(t *testing.T) {
	p := NewProverChannel(testSeed)

	randBytes := p.ChallengeBytes32()

	p.WriteBytes32(randBytes)
	require.Equal(t, mustHex("3174a00d031bc8deff799e24a78ee347b303295a6cb61986a49873d9b6f13a0d"), sliceOf(p.Coin.Digest()))

	p.WriteU64(11_028_357_238)
	require.Equal(t, mustHex("21571e2a323daa1e6f2adda87ce912608e1325492d868e8fe41626633d6acb93"), sliceOf(p.Coin.Digest()))

	fe := fieldFromHex("0389a47fe0e1e5f9c05d8dcb27b069b67b1c7ec61a5c0a3f54d81aea83d2c8f0")
	p.WriteField(fe)
	require.Equal(t, mustHex("34a12938f047c34da72b5949434950fa2b24220270fd26e6f64b6eb5e86c6626"), sliceOf(p.Coin.Digest()))

	fe2 := fieldFromHex("129ab47fe0e1a5f9c05d8dcb27b069b67b1c7ec61a5c0a3f54d81aea83d2c8f0")
	p.WriteFieldSlice([]FieldElement{fe, fe2})
	require.Equal(t, mustHex("a748ff89e2c4322afb061ef3321e207b3fe32c35f181de0809300995dd9b92fd"), sliceOf(p.Coin.Digest()))
}

func sliceOf(b [32]byte) []byte { return b[:] }

// TestProofIsSeedPlusWrites checks the invariant that Proof is exactly the
// seed followed by the concatenation of typed write payloads, in order.
func TestProofIsSeedPlusWrites(t *testing.T) {
	p := NewProverChannel(testSeed)
	require.Equal(t, testSeed, p.Proof)

	p.WriteU64(42)
	require.Len(t, p.Proof, len(testSeed)+8)
	require.Equal(t, testSeed, p.Proof[:len(testSeed)])

	var block [32]byte
	copy(block[:], []byte("0123456789abcdef0123456789abcdef"))
	p.WriteBytes32(block)
	require.Len(t, p.Proof, len(testSeed)+8+32)
}

// TestSliceVsElementAbsorption is testable property 8 / scenario S6: writing
// two U256 values as independent writes produces a different digest than
// writing the same bytes as one field-element-slice write.
func TestSliceVsElementAbsorption(t *testing.T) {
	a := fieldFromHex("0389a47fe0e1e5f9c05d8dcb27b069b67b1c7ec61a5c0a3f54d81aea83d2c8f0")
	b := fieldFromHex("129ab47fe0e1a5f9c05d8dcb27b069b67b1c7ec61a5c0a3f54d81aea83d2c8f0")

	slicePC := NewProverChannel(testSeed)
	slicePC.WriteFieldSlice([]FieldElement{a, b})

	elementPC := NewProverChannel(testSeed)
	elementPC.WriteU256Slice([]*uint256.Int{a.U256(), b.U256()})

	require.NotEqual(t, slicePC.Coin.Digest(), elementPC.Coin.Digest())
}
