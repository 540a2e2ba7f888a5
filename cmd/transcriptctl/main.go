// Copyright 2025 The OpenZKP Authors
// SPDX-License-Identifier: Apache-2.0

// Command transcriptctl is a small demonstration harness around the
// channel package: it drives a prover/verifier round trip, grinds
// proof-of-work nonces, and hashes arbitrary input, all from the command
// line.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const loggerMetadataKey = "logger"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "transcriptctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath string

	app := &cli.App{
		Name:  "transcriptctl",
		Usage: "exercise the Fiat-Shamir transcript channel from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to a YAML config file",
				Destination: &configPath,
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			c.App.Metadata[loggerMetadataKey] = log
			return nil
		},
		Commands: []*cli.Command{
			demoCommand(),
			grindCommand(),
			hashCommand(),
		},
	}
	app.Metadata = map[string]interface{}{}

	return app.Run(args)
}

// loggerFromContext returns the logger installed by the app's Before hook.
func loggerFromContext(c *cli.Context) *zap.Logger {
	if log, ok := c.App.Metadata[loggerMetadataKey].(*zap.Logger); ok {
		return log
	}
	return zap.NewNop()
}
