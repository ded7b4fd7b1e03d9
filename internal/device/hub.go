/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import "strings"

// HubFlow is the operate flow of a hub. Its listing covers every connected
// device in the registry, the hub itself included.
type HubFlow struct {
	dev        *Device
	reg        *Registry
	done       bool
	monitoring bool
}

func newHubFlow(d *Device, reg *Registry) *HubFlow {
	return &HubFlow{dev: d, reg: reg}
}

func (f *HubFlow) Start() []Message {
	msgs := []Message{info("Checking connected devices...")}

	var addrs []string
	if f.reg != nil {
		for _, d := range f.reg.Connected() {
			addrs = append(addrs, d.address)
		}
	}

	if len(addrs) == 0 {
		return append(msgs, warning("No devices connected to the hub."))
	}

	return append(msgs,
		info("Devices connected to the hub: %s", strings.Join(addrs, ", ")),
		success("Broadcasting data to all connected devices."),
	)
}

func (f *HubFlow) Pending() (Prompt, bool) {
	if f.done {
		return Prompt{}, false
	}
	return yesNoPrompt("Would you like to enable network traffic monitoring? (yes/no): "), true
}

func (f *HubFlow) Answer(answer string) []Message {
	if f.done {
		return nil
	}

	yes, ok := parseYesNo(answer)
	if !ok {
		return []Message{invalidChoice()}
	}

	f.done = true
	if yes {
		f.monitoring = true
		return []Message{success("Network traffic monitoring enabled.")}
	}
	return []Message{info("Skipping network monitoring.")}
}

func (f *HubFlow) Outcome() Outcome {
	if f.done {
		return OutcomeCompleted
	}
	return OutcomeRunning
}

func (f *HubFlow) Details() []any {
	return []any{"monitoring", f.monitoring}
}

// MonitoringEnabled reports whether the user turned traffic monitoring on.
func (f *HubFlow) MonitoringEnabled() bool {
	return f.monitoring
}
