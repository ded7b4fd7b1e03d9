/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import "fmt"

// Registry is the insertion-ordered set of devices created in a session.
// Devices are never removed, so a 1-based position stays valid for the
// lifetime of the registry.
type Registry struct {
	devices []*Device
}

func NewRegistry() *Registry {
	return &Registry{devices: make([]*Device, 0)}
}

// Add appends d and returns its 1-based position.
func (r *Registry) Add(d *Device) int {
	r.devices = append(r.devices, d)
	return len(r.devices)
}

func (r *Registry) Len() int {
	return len(r.devices)
}

func (r *Registry) All() []*Device {
	out := make([]*Device, len(r.devices))
	copy(out, r.devices)
	return out
}

// At returns the device at 1-based position n.
func (r *Registry) At(n int) (*Device, error) {
	if n < 1 || n > len(r.devices) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}
	return r.devices[n-1], nil
}

// Lookup returns the first device registered with address.
func (r *Registry) Lookup(address string) (*Device, bool) {
	for _, d := range r.devices {
		if d.address == address {
			return d, true
		}
	}
	return nil, false
}

func (r *Registry) Connected() []*Device {
	var out []*Device
	for _, d := range r.devices {
		if d.connected {
			out = append(out, d)
		}
	}
	return out
}

func (r *Registry) Addresses() []string {
	out := make([]string, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d.address)
	}
	return out
}
