// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import "errors"

// Sentinel errors returned by VerifierChannel and the proof-of-work search.
// Prover-side writes are infallible given sufficient memory; there is no
// prover-side error set.
var (
	// ErrPrefixMismatch is returned by NewVerifierChannel when the supplied
	// seed is not a byte-for-byte prefix of the supplied proof.
	ErrPrefixMismatch = errors.New("channel: seed is not a prefix of proof")

	// ErrOutOfBounds is returned by a replay when fewer bytes remain in the
	// proof than the requested element (or run of elements) needs.
	ErrOutOfBounds = errors.New("channel: replay exceeds remaining proof bytes")

	// ErrNonceNotFound is returned by a nonce search that exhausted the
	// full uint64 range without finding a solution. Practically unreachable
	// for pow bits <= 40.
	ErrNonceNotFound = errors.New("channel: no nonce satisfies the requested difficulty")
)
