/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

// Package device models the simulated network devices of the network room:
// their identity and connection status, the registry that holds them, the
// interactive operate flow of each device kind and the simulated ping.
package device

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Device struct {
	id        string
	kind      Kind
	address   string
	location  string
	connected bool
}

// New validates address and location and returns a disconnected device.
func New(kind Kind, address, location string) (*Device, error) {
	switch kind {
	case Router, Modem, Hub:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	if !ValidateIP(address) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}

	if strings.TrimSpace(location) == "" {
		return nil, ErrEmptyLocation
	}

	return &Device{
		id:       uuid.NewString(),
		kind:     kind,
		address:  address,
		location: location,
	}, nil
}

func (d *Device) ID() string       { return d.id }
func (d *Device) Kind() Kind       { return d.kind }
func (d *Device) Address() string  { return d.address }
func (d *Device) Location() string { return d.location }
func (d *Device) Connected() bool  { return d.connected }

// Connect marks the device connected and reports whether the status changed.
func (d *Device) Connect() bool {
	if d.connected {
		return false
	}
	d.connected = true
	return true
}

// Disconnect marks the device disconnected and reports whether the status
// changed.
func (d *Device) Disconnect() bool {
	if !d.connected {
		return false
	}
	d.connected = false
	return true
}

type Snapshot struct {
	Kind      Kind
	Address   string
	Location  string
	Connected bool
}

func (s Snapshot) Status() string {
	return StatusString(s.Connected)
}

func (d *Device) Describe() Snapshot {
	return Snapshot{
		Kind:      d.kind,
		Address:   d.address,
		Location:  d.location,
		Connected: d.connected,
	}
}

func StatusString(connected bool) string {
	if connected {
		return "Connected"
	}
	return "Disconnected"
}

// Operate returns the interactive flow for the device's kind. A disconnected
// device yields a flow that only reports it is offline.
func (d *Device) Operate(reg *Registry) Flow {
	if !d.connected {
		return newOfflineFlow(d)
	}

	switch d.kind {
	case Router:
		return newRouterFlow(d)
	case Modem:
		return newModemFlow(d)
	case Hub:
		return newHubFlow(d, reg)
	default:
		return newOfflineFlow(d)
	}
}
