/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/floof-os/netroom/internal/device"
)

func (s *Shell) execute(ctx context.Context, option Option) error {
	s.con.Clear()

	switch option {
	case OptionAdd:
		return s.addDevice(ctx)
	case OptionList:
		return s.listDevices(ctx)
	case OptionConnect:
		return s.connectDevice(ctx)
	case OptionDisconnect:
		return s.disconnectDevice(ctx)
	case OptionOperate:
		return s.operateDevice(ctx)
	case OptionPing:
		return s.pingDevice(ctx)
	default:
		return fmt.Errorf("unknown option: %d", option)
	}
}

func (s *Shell) addDevice(ctx context.Context) error {
	var kind device.Kind
	for {
		s.showDeviceTypeMenu()
		choice, err := s.con.Prompt(ctx, "Enter the number corresponding to the device type: ", "1", "2", "3")
		if err != nil {
			return err
		}
		s.con.Clear()

		kind, err = device.KindFromChoice(choice)
		if err == nil {
			break
		}
		s.con.Error("Invalid device type. Please try again.")
	}

	address, err := s.con.Prompt(ctx, fmt.Sprintf("Enter the IP address of the %s [x.x.x.x]: ", kind))
	if err != nil {
		return err
	}
	if !device.ValidateIP(address) {
		s.con.Clear()
		s.con.Bold("Invalid IP address format. Please enter a valid IPv4 address.")
		s.log.Info("device rejected", "kind", kind.String(), "address", address, "reason", device.ErrInvalidAddress.Error())
		return s.pause(ctx)
	}

	var location string
	for location == "" {
		location, err = s.con.Prompt(ctx, fmt.Sprintf("Enter the location of the %s: ", kind))
		if err != nil {
			return err
		}
		if location == "" {
			s.con.Println("Location cannot be empty. Please enter a valid location.")
		}
	}

	s.con.Clear()

	d, err := device.New(kind, address, location)
	if err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}
	n := s.reg.Add(d)

	s.con.Println()
	s.con.Printf("Device '%s' added successfully:\n", kind)
	s.showInfoCard(d)
	s.log.Info("device added", "id", d.ID(), "number", n, "kind", kind.String(), "address", address, "location", location)

	return s.pause(ctx)
}

func (s *Shell) listDevices(ctx context.Context) error {
	if s.reg.Len() == 0 {
		s.con.Bold("No device(s) added yet.")
		return s.pause(ctx)
	}

	s.con.Println()
	s.con.Println("Devices Information:")
	for i, d := range s.reg.All() {
		s.con.Println()
		s.con.Printf("Device Number: [%d]\n", i+1)
		s.showInfoCard(d)
	}

	return s.pause(ctx)
}

func (s *Shell) connectDevice(ctx context.Context) error {
	if s.reg.Len() == 0 {
		s.con.Bold("No device(s) available to connect.")
		return s.pause(ctx)
	}

	s.showDeviceTable()
	d, err := s.selectDevice(ctx, "connect")
	if err != nil {
		return s.pauseAfter(ctx, err)
	}

	if d.Connect() {
		s.con.Success("Device %s is now connected.", d.Address())
	} else {
		s.con.Warn("Device %s is already connected.", d.Address())
	}
	s.log.Info("device connect", "id", d.ID(), "address", d.Address(), "connected", d.Connected())

	return s.pause(ctx)
}

func (s *Shell) disconnectDevice(ctx context.Context) error {
	if s.reg.Len() == 0 {
		s.con.Bold("No device(s) available to disconnect.")
		return s.pause(ctx)
	}

	s.showDeviceTable()
	d, err := s.selectDevice(ctx, "disconnect")
	if err != nil {
		return s.pauseAfter(ctx, err)
	}

	if d.Disconnect() {
		s.con.Success("Device %s has been disconnected.", d.Address())
	} else {
		s.con.Warn("Device %s is already disconnected.", d.Address())
	}
	s.log.Info("device disconnect", "id", d.ID(), "address", d.Address(), "connected", d.Connected())

	return s.pause(ctx)
}

func (s *Shell) operateDevice(ctx context.Context) error {
	if s.reg.Len() == 0 {
		s.con.Bold("No device(s) to Operate.")
		return s.pause(ctx)
	}

	s.con.Bold("Devices Available:")
	s.showDeviceTable()
	d, err := s.selectDevice(ctx, "operate")
	if err != nil {
		return s.pauseAfter(ctx, err)
	}

	flow := d.Operate(s.reg)
	outcome, err := device.Drive(ctx, flow, s.con)
	if err != nil {
		return err
	}

	attrs := append([]any{"id", d.ID(), "kind", d.Kind().String(), "address", d.Address(), "outcome", outcome.String()}, flow.Details()...)
	s.log.Info("device operated", attrs...)

	if hub, ok := flow.(*device.HubFlow); ok && hub.MonitoringEnabled() && s.dashboard != nil {
		if err := s.dashboard.Run(ctx, s.reg.Connected()); err != nil {
			s.con.Error("Failed to open traffic monitor: %v", err)
			s.log.Warn("traffic monitor failed", "error", err)
		}
	}

	return s.pause(ctx)
}

func (s *Shell) pingDevice(ctx context.Context) error {
	if s.reg.Len() == 0 {
		s.con.Bold("No device(s) to check the ping.")
		return s.pause(ctx)
	}

	s.con.Bold("Devices Available:")
	s.showDeviceTable()

	address, err := s.con.Prompt(ctx, "Enter the IP address to ping: ", s.reg.Addresses()...)
	if err != nil {
		return err
	}

	if d, ok := s.reg.Lookup(address); ok && d.Connected() {
		s.con.Info("Checking Ping... please wait.")
	}

	reply, err := s.pinger.Ping(ctx, s.reg, address)
	switch {
	case err == nil:
		s.con.Println()
		s.con.Println(reply.String())
		s.log.Info("ping", "address", address, "time_ms", reply.Time.Milliseconds(), "ttl", reply.TTL)
	case errors.Is(err, device.ErrNoResponse):
		s.con.Warn("Device %s is offline. No response.", address)
		s.log.Info("ping", "address", address, "result", "offline")
	case errors.Is(err, device.ErrNoSuchDevice):
		s.con.Error("No device with that IP address.")
		s.log.Info("ping", "address", address, "result", "unknown")
	default:
		return err
	}

	return s.pause(ctx)
}

// selectDevice asks for a 1-based device number. Bad input is reported to
// the user and returned as an error wrapping ErrNotANumber or
// device.ErrInvalidIndex.
func (s *Shell) selectDevice(ctx context.Context, action string) (*device.Device, error) {
	line, err := s.con.Prompt(ctx, fmt.Sprintf("Select the device number to %s: ", action))
	if err != nil {
		return nil, err
	}

	n, err := parseNumber(line)
	if err != nil {
		s.con.Error("Please enter a valid number.")
		return nil, err
	}

	d, err := s.reg.At(n)
	if err != nil {
		s.con.Error("Invalid device number.")
		return nil, err
	}

	return d, nil
}

// pauseAfter finishes an action that ended on a selection error.
func (s *Shell) pauseAfter(ctx context.Context, err error) error {
	if errors.Is(err, ErrNotANumber) || errors.Is(err, device.ErrInvalidIndex) {
		s.log.Info("selection rejected", "reason", err.Error())
		return s.pause(ctx)
	}
	return err
}
