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

const welcomeTitle = "WELCOME TO THE NETWORK ROOM"

var menuEntries = []struct {
	option Option
	text   string
}{
	{OptionAdd, "Add a device to connect to the Network."},
	{OptionList, "Show Information of all Devices."},
	{OptionConnect, "Connect a Device."},
	{OptionDisconnect, "Disconnect a Device."},
	{OptionOperate, "Operate a Device."},
	{OptionPing, "Check Ping of the Device (Simulated)."},
	{OptionExit, "Exit"},
}

func (s *Shell) displayWelcome() {
	s.con.Clear()
	s.con.Divider()
	s.con.Centered(welcomeTitle)
}

func (s *Shell) showMenu() {
	s.con.Divider()
	s.con.Bold("Menu:")
	for _, e := range menuEntries {
		s.con.Printf("[%d] - %s\n", e.option, e.text)
	}
	s.con.Divider()
}

func (s *Shell) showDeviceTypeMenu() {
	s.con.Println("Select device type:")
	for i, k := range device.Choices {
		s.con.Println(fmt.Sprintf("[%d] - %s", i+1, k))
	}
}
