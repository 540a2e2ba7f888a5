// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/zeebo/blake3"
	"go.uber.org/zap"

	"github.com/Setheum-Foundation/OpenZKP/channel"
)

func demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run a prover/verifier round trip and print each digest",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Value: "0123456789abcded"},
		},
		Action: func(c *cli.Context) error {
			log := loggerFromContext(c)
			seed, err := hex.DecodeString(c.String("seed"))
			if err != nil {
				return fmt.Errorf("invalid --seed: %w", err)
			}

			p := channel.NewProverChannel(seed)
			randBlock := p.ChallengeBytes32()
			p.WriteBytes32(randBlock)
			p.WriteU64(uint64(len(seed)))
			digest := p.Coin.Digest()
			log.Info("prover wrote", zap.String("digest", hex.EncodeToString(digest[:])))

			v, err := channel.NewVerifierChannel(seed, p.Proof)
			if err != nil {
				return err
			}
			if _, err := v.ReplayBytes32(); err != nil {
				return err
			}
			if _, err := v.ReplayU64(); err != nil {
				return err
			}

			fmt.Printf("prover digest:   %x\n", p.Coin.Digest())
			fmt.Printf("verifier digest: %x\n", v.Coin.Digest())
			fmt.Printf("coins equal:     %v\n", p.Coin.Equal(v.Coin))
			return nil
		},
	}
}

func grindCommand() *cli.Command {
	return &cli.Command{
		Name:  "grind",
		Usage: "search for a proof-of-work nonce at a given difficulty",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seed", Value: "0123456789abcded"},
			&cli.UintFlag{Name: "bits", Value: 16},
			&cli.BoolFlag{Name: "parallel"},
		},
		Action: func(c *cli.Context) error {
			log := loggerFromContext(c)
			seed, err := hex.DecodeString(c.String("seed"))
			if err != nil {
				return fmt.Errorf("invalid --seed: %w", err)
			}
			bits := uint8(c.Uint("bits"))
			coin := channel.NewPublicCoin(seed)

			start := time.Now()
			var nonce uint64
			if c.Bool("parallel") {
				nonce, err = coin.FindNonceParallel(context.Background(), bits)
			} else {
				nonce, err = coin.FindNonce(bits)
			}
			if err != nil {
				return err
			}
			log.Info("found nonce", zap.Uint64("nonce", nonce), zap.Duration("elapsed", time.Since(start)))
			fmt.Printf("nonce: %d\n", nonce)
			return nil
		},
	}
}

func hashCommand() *cli.Command {
	return &cli.Command{
		Name:  "hash",
		Usage: "hash raw hex input with the channel's Keccak-256 or with blake3, for comparison",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "data", Required: true},
			&cli.StringFlag{Name: "algo", Value: "keccak256"},
		},
		Action: func(c *cli.Context) error {
			log := loggerFromContext(c)
			data, err := hex.DecodeString(c.String("data"))
			if err != nil {
				return fmt.Errorf("invalid --data: %w", err)
			}

			switch c.String("algo") {
			case "keccak256":
				coin := channel.NewPublicCoin(data)
				fmt.Printf("%x\n", coin.Digest())
			case "blake3":
				sum := blake3.Sum256(data)
				fmt.Printf("%x\n", sum)
			default:
				return fmt.Errorf("unknown --algo %q, want keccak256 or blake3", c.String("algo"))
			}
			log.Debug("hash computed", zap.String("algo", c.String("algo")), zap.Int("input_len", len(data)))
			return nil
		},
	}
}
