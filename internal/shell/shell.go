/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

// Package shell is the menu-driven front end of the network room. It owns
// the session's device registry and dispatches each menu action against it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/floof-os/netroom/internal/console"
	"github.com/floof-os/netroom/internal/device"
	"github.com/floof-os/netroom/internal/logging"
)

// Dashboard is opened after a hub enables traffic monitoring.
type Dashboard interface {
	Run(ctx context.Context, devices []*device.Device) error
}

type Options struct {
	Prompt    string
	Pinger    *device.Pinger
	Logger    *logging.Logger
	Dashboard Dashboard
}

type Shell struct {
	con       *console.Console
	reg       *device.Registry
	pinger    *device.Pinger
	log       *logging.Logger
	prompt    string
	dashboard Dashboard
}

func New(con *console.Console, opts Options) *Shell {
	s := &Shell{
		con:       con,
		reg:       device.NewRegistry(),
		pinger:    opts.Pinger,
		log:       opts.Logger,
		prompt:    opts.Prompt,
		dashboard: opts.Dashboard,
	}

	if s.pinger == nil {
		s.pinger = device.NewPinger(device.DefaultPingDelay)
	}
	if s.log == nil {
		s.log = logging.Discard()
	}
	if s.prompt == "" {
		s.prompt = "Select an option: "
	}

	return s
}

func (s *Shell) Registry() *device.Registry {
	return s.reg
}

// Run shows the menu until the user exits or input ends. Only console
// failures other than end of input or an interrupt are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.displayWelcome()
	s.log.Info("session started")

	for {
		s.showMenu()

		line, err := s.con.Prompt(ctx, s.prompt)
		if err != nil {
			if isEndOfInput(err) {
				s.terminate()
				return nil
			}
			s.log.Error("failed to read menu option", "error", err)
			return fmt.Errorf("error reading input: %w", err)
		}

		option, err := parseOption(line)
		if err != nil {
			s.con.Clear()
			s.con.Error("Invalid input, please enter a number.")
			if err := s.pause(ctx); err != nil {
				return err
			}
			continue
		}

		if option == OptionExit {
			s.terminate()
			return nil
		}

		if !option.Valid() {
			s.con.Clear()
			s.con.Bold("Invalid option. Please try again.")
			if err := s.pause(ctx); err != nil {
				return err
			}
			continue
		}

		s.log.Debug("menu option selected", "option", option.String())

		if err := s.execute(ctx, option); err != nil {
			if !isEndOfInput(err) {
				s.log.Error("action failed", "option", option.String(), "error", err)
				return err
			}
			s.log.Info("action aborted", "option", option.String(), "reason", err.Error())
		}
	}
}

func (s *Shell) terminate() {
	s.con.Println()
	s.con.Bold("The Program was Terminated.")
	s.log.Info("session ended", "devices", s.reg.Len())
}

// pause waits for Enter. End of input is left for the next menu prompt to
// report.
func (s *Shell) pause(ctx context.Context) error {
	if err := s.con.Pause(ctx); err != nil && !isEndOfInput(err) {
		return err
	}
	return nil
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, console.ErrInterrupt) || errors.Is(err, context.Canceled)
}
