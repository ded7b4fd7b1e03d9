/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/floof-os/netroom/internal/config"
	"github.com/floof-os/netroom/internal/console"
	"github.com/floof-os/netroom/internal/device"
	"github.com/floof-os/netroom/internal/logging"
	"github.com/floof-os/netroom/internal/monitor"
	"github.com/floof-os/netroom/internal/shell"
	"github.com/spf13/cobra"
)

var version = "v1.0.0-dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		noColor    bool
		backend    string
	)

	root := &cobra.Command{
		Use:           "netroom",
		Short:         "Simulated home network room",
		Long:          "Register simulated routers, modems and hubs, then connect, operate and ping them from a text menu.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			cfg, _, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if backend != "" {
				cfg.Console.Backend = backend
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			return run(cmd.Context(), cfg)
		},
	}

	root.Flags().StringVar(&configPath, "config", "", "path to config file")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	root.Flags().StringVar(&backend, "console", "", "line editor: readline, liner or plain")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show netroom version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "netroom %s\n", version)
		},
	})

	return root
}

func run(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	logger, closer, err := logging.Open(cfg.Log, version)
	if err != nil {
		fmt.Printf("Warning: Could not initialize audit log: %v\n", err)
		logger = logging.Discard()
	} else {
		defer closer.Close()
	}

	con, err := console.Open(cfg.Console, cfg.ClearScreen())
	if err != nil {
		return fmt.Errorf("failed to initialize console: %w", err)
	}
	defer con.Close()

	pinger := device.NewPinger(cfg.PingDelay())

	opts := shell.Options{
		Prompt: cfg.Prompt,
		Pinger: pinger,
		Logger: logger.With("component", "shell"),
	}
	if cfg.Monitor.Dashboard && con.Interactive() {
		opts.Dashboard = monitor.NewDashboard(pinger)
	}

	return shell.New(con, opts).Run(ctx)
}
