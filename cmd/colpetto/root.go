/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	colpetto "github.com/verdiwm/colpetto"
	"github.com/verdiwm/colpetto/internal/config"
	"github.com/verdiwm/colpetto/internal/logger"
	"github.com/verdiwm/colpetto/pkg/libinput"
	"github.com/verdiwm/colpetto/pkg/logsink"
)

var (
	configPath string
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:   "colpetto",
		Short: "Inspect libinput devices and events",
		Long: `colpetto opens a libinput context on a seat (udev backend) or on a
list of device nodes (path backend) and prints what libinput reports.
Reading /dev/input usually requires root or membership in the input group.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	rootCmd.Version = colpetto.Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default: search for colpetto.toml)")
	flags.String("seat", config.DefaultConfig.Seat, "seat to assign with the udev backend")
	flags.String("backend", config.DefaultConfig.Backend, "device discovery backend: udev or path")
	flags.StringSlice("device", nil, "device node for the path backend (repeatable)")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(keysCmd, eventsCmd, watchCmd, devicesCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	v := config.New(configPath)
	flags := cmd.Flags()
	for key, flag := range map[string]string{
		"seat":      "seat",
		"backend":   "backend",
		"devices":   "device",
		"log.level": "log-level",
	} {
		if f := flags.Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}

	c, err := config.Load(v)
	if err != nil {
		return err
	}
	cfg = c
	logger.SetLevel(cfg.Log.Level)
	logger.Debug("configuration loaded", "file", v.ConfigFileUsed(), "backend", cfg.Backend, "seat", cfg.Seat)
	return nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func contextOptions() []libinput.Option {
	if !cfg.Log.Native {
		return nil
	}
	return []libinput.Option{
		libinput.WithLogger(logsink.Charm(logger.Logger)),
		libinput.WithLogPriority(cfg.Priority()),
	}
}

// openContext creates a context for the configured backend with its
// devices enumerated.
func openContext() (*libinput.Context, error) {
	iface := libinput.DefaultInterface()
	opts := contextOptions()

	if cfg.Backend == config.BackendPath {
		if len(cfg.Devices) == 0 {
			return nil, fmt.Errorf("path backend requires at least one --device")
		}
		li, err := libinput.NewPath(iface, opts...)
		if err != nil {
			return nil, err
		}
		for _, path := range cfg.Devices {
			d, err := li.AddDevice(path)
			if err != nil {
				logger.Error("adding device failed", "path", path, "err", err)
				li.Close()
				return nil, err
			}
			logger.Debug("device added", "path", path, "sysname", d.Sysname())
			d.Close()
		}
		return li, nil
	}

	li, err := libinput.NewUdev(iface, opts...)
	if err != nil {
		return nil, err
	}
	if err := li.AssignSeat(cfg.Seat); err != nil {
		logger.Warn("seat assignment failed", "seat", cfg.Seat)
		li.Close()
		return nil, err
	}
	return li, nil
}

// streamEvents runs fn for every event until the user interrupts.
func streamEvents(fn func(libinput.Event)) error {
	ctx, stop := signalContext()
	defer stop()

	li, err := openContext()
	if err != nil {
		return err
	}
	defer li.Close()

	stream, err := li.EventStream()
	if err != nil {
		return err
	}
	defer stream.Close()

	for ev, err := range stream.All(ctx) {
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Errorf("event stream stopped: %v", err)
			return err
		}
		fn(ev)
		ev.Close()
	}
	return nil
}
