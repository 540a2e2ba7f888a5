// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package channel

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// powBatchSize is the number of nonces each parallel worker claims at a
// time before checking whether another worker already found a solution.
const powBatchSize = uint64(1) << 20

// FindNonce searches single-threaded, in order, for the smallest nonce that
// satisfies the PoW difficulty bits. It is exhaustive up to math.MaxUint64;
// in practice bits <= 40 is assumed and a solution is found almost
// immediately.
func (c *PublicCoin) FindNonce(bits uint8) (uint64, error) {
	seed := c.PowSeed(bits)
	nonce := uint64(0)
	for {
		if powVerifyWithSeed(seed, nonce, bits) {
			return nonce, nil
		}
		if nonce == math.MaxUint64 {
			return 0, ErrNonceNotFound
		}
		nonce++
	}
}

// FindNonceParallel partitions [0, math.MaxUint64) into powBatchSize chunks
// handed out to a pool of runtime.GOMAXPROCS(0) workers, each racing to
// verify nonces in its claimed chunk. It returns the first solution any
// worker finds; unlike FindNonce it gives no minimality guarantee. ctx
// cancellation stops the search early and returns the ctx error.
func (c *PublicCoin) FindNonceParallel(ctx context.Context, bits uint8) (uint64, error) {
	seed := c.PowSeed(bits)
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	maxBatch := uint64(math.MaxUint64) / powBatchSize

	var nextBatch atomic.Uint64
	var found atomic.Bool
	var result atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				if found.Load() {
					return nil
				}
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				idx := nextBatch.Add(1) - 1
				if idx > maxBatch {
					return nil // nonce space exhausted
				}
				start := idx * powBatchSize
				end := start + powBatchSize
				if idx == maxBatch {
					end = math.MaxUint64
				}

				for nonce := start; nonce < end; nonce++ {
					if nonce%4096 == 0 && found.Load() {
						return nil
					}
					if powVerifyWithSeed(seed, nonce, bits) {
						if found.CompareAndSwap(false, true) {
							result.Store(nonce)
						}
						return nil
					}
				}
			}
		})
	}

	if err := g.Wait(); err != nil && !found.Load() {
		return 0, err
	}
	if !found.Load() {
		return 0, ErrNonceNotFound
	}
	return result.Load(), nil
}
