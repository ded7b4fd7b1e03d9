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
	"fmt"

	"github.com/floof-os/netroom/internal/device"
)

func FormatDeviceRow(n int, d *device.Device) string {
	return fmt.Sprintf("| Device Number: [%d] | Device Type: %s | IP Address: (%s) | Status: %s |",
		n, d.Kind(), d.Address(), device.StatusString(d.Connected()))
}

// FormatInfoCard renders the lines shown between dividers for one device.
func FormatInfoCard(s device.Snapshot) []string {
	return []string{
		fmt.Sprintf(" Device Type : %-10s", s.Kind),
		fmt.Sprintf(" IP Address  : %-15s", s.Address),
		fmt.Sprintf(" Status      : %-10s", s.Status()),
		fmt.Sprintf(" Location    : %-20s", s.Location),
	}
}

func (s *Shell) showInfoCard(d *device.Device) {
	s.con.Divider()
	for _, line := range FormatInfoCard(d.Describe()) {
		s.con.Println(line)
	}
	s.con.Divider()
}

func (s *Shell) showDeviceTable() {
	for i, d := range s.reg.All() {
		s.con.Println(FormatDeviceRow(i+1, d))
	}
}
