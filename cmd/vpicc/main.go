// go-vpicc
// Copyright (c) 2026 The go-vpicc Authors.
// SPDX-License-Identifier: MIT
//
// This file is part of go-vpicc.
//
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Command vpicc attaches a demo virtual smartcard to a running vpcd daemon.
// The card logs every event and answers all APDUs with the success status
// word 9000.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	vpicc "github.com/vsmartcard/go-vpicc"
)

type config struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	Debug          bool          `mapstructure:"debug"`
	Reconnect      bool          `mapstructure:"reconnect"`
	ReconnectDelay time.Duration `mapstructure:"reconnect-delay"`
}

// loadConfig resolves settings from flags with VPICC_* environment
// variable overrides.
func loadConfig(args []string) (*config, error) {
	flags := pflag.NewFlagSet("vpicc", pflag.ContinueOnError)
	flags.String("host", vpicc.DefaultHost, "vpcd host to connect to")
	flags.Int("port", vpicc.DefaultPort, "vpcd TCP port")
	flags.Bool("debug", false, "enable trace output of every frame")
	flags.Bool("reconnect", false, "dial again after a session ends")
	flags.Duration("reconnect-delay", 2*time.Second, "pause between reconnect attempts")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	v.SetEnvPrefix("VPICC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("session failed")
	}
}

// run drives sessions until the context is canceled or, without the
// reconnect flag, until the first session ends.
func run(ctx context.Context, cfg *config) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	for {
		err := runSession(ctx, addr)
		if ctx.Err() != nil {
			log.Info().Msg("shutting down")
			return nil
		}
		if !cfg.Reconnect {
			return err
		}
		log.Warn().Err(err).Dur("delay", cfg.ReconnectDelay).Msg("session ended, reconnecting")
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return nil
		case <-time.After(cfg.ReconnectDelay):
		}
	}
}

// runSession runs one connection to completion. Canceling the context
// closes the stream, which unblocks Run.
func runSession(ctx context.Context, addr string) error {
	log.Info().Str("addr", addr).Msg("connecting to vpcd")
	conn, err := vpicc.ConnectContext(ctx, addr, vpicc.WithLogger(log.Logger))
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	return conn.Run(vpicc.DummyCard{})
}
