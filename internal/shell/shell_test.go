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
	"bytes"
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/floof-os/netroom/internal/config"
	"github.com/floof-os/netroom/internal/console"
	"github.com/floof-os/netroom/internal/device"
	"github.com/floof-os/netroom/internal/logging"
)

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func runShell(t *testing.T, input string, opts Options) (*Shell, string) {
	t.Helper()

	var out bytes.Buffer
	con := console.NewPlain(strings.NewReader(input), &out, console.Options{})
	if opts.Pinger == nil {
		opts.Pinger = &device.Pinger{Rand: rand.New(rand.NewPCG(7, 7))}
	}

	s := New(con, opts)
	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return s, out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestEndToEndRouter(t *testing.T) {
	var logBuf bytes.Buffer
	logger := logging.New(config.LogConfig{Level: "info", Format: "text"}, &logBuf, "test")

	s, out := runShell(t, script(
		"1", "1", "192.168.1.1", "Office", "",
		"2", "",
		"3", "1", "",
		"5", "1", "admin", "secret", "yes", "testnet", "pass1234", "",
		"4", "1", "",
		"7",
	), Options{Logger: logger})

	if s.Registry().Len() != 1 {
		t.Fatalf("registry length = %d, want 1", s.Registry().Len())
	}
	d, _ := s.Registry().At(1)
	if d.Connected() {
		t.Error("router should end disconnected")
	}

	assertContains(t, out,
		"WELCOME TO THE NETWORK ROOM",
		"[1] - Add a device to connect to the Network.",
		"[7] - Exit",
		"[1] - Router",
		"Device 'Router' added successfully:",
		" Device Type : Router",
		" IP Address  : 192.168.1.1",
		" Status      : Disconnected",
		" Location    : Office",
		"Device Number: [1]",
		"| Device Number: [1] | Device Type: Router | IP Address: (192.168.1.1) | Status: Disconnected |",
		"Device 192.168.1.1 is now connected.",
		"| Device Number: [1] | Device Type: Router | IP Address: (192.168.1.1) | Status: Connected |",
		"Login successful.",
		"WiFi network 'testnet' has been successfully configured.",
		"Router at 192.168.1.1 is now managing network traffic.",
		"Device 192.168.1.1 has been disconnected.",
		"The Program was Terminated.",
	)

	logs := logBuf.String()
	assertContains(t, logs, "device added", "outcome=completed", "ssid=testnet")
	if strings.Contains(logs, "pass1234") || strings.Contains(logs, "secret") {
		t.Error("passwords must never be logged")
	}
}

func TestMenuInputErrors(t *testing.T) {
	_, out := runShell(t, script("abc", "", "9", "", "0", "", "7"), Options{})

	assertContains(t, out, "Invalid input, please enter a number.", "Invalid option. Please try again.")
	if strings.Count(out, "Invalid option. Please try again.") != 2 {
		t.Error("both 9 and 0 should be rejected as options")
	}
}

func TestEmptyRegistryMessages(t *testing.T) {
	_, out := runShell(t, script("2", "", "3", "", "4", "", "5", "", "6", "", "7"), Options{})

	assertContains(t, out,
		"No device(s) added yet.",
		"No device(s) available to connect.",
		"No device(s) available to disconnect.",
		"No device(s) to Operate.",
		"No device(s) to check the ping.",
	)
}

func TestAddDeviceValidation(t *testing.T) {
	s, out := runShell(t, script(
		"1", "4", "3", "300.1.1.1", "",
		"1", "2", "10.0.0.1", "", "   ", "Garage", "",
		"7",
	), Options{})

	if s.Registry().Len() != 1 {
		t.Fatalf("registry length = %d, want 1", s.Registry().Len())
	}
	d, _ := s.Registry().At(1)
	if d.Kind() != device.Hub || d.Location() != "Garage" {
		t.Errorf("unexpected device %+v", d.Describe())
	}

	assertContains(t, out,
		"Invalid device type. Please try again.",
		"Enter the IP address of the Modem [x.x.x.x]: ",
		"Invalid IP address format. Please enter a valid IPv4 address.",
		"Enter the location of the Hub: ",
		"Location cannot be empty. Please enter a valid location.",
	)
	if strings.Count(out, "Location cannot be empty.") != 2 {
		t.Error("empty and blank locations should both be rejected")
	}
}

func TestSelectionErrors(t *testing.T) {
	s, out := runShell(t, script(
		"1", "3", "10.0.0.1", "Hall", "",
		"3", "two", "",
		"3", "5", "",
		"4", "0", "",
		"5", "-1", "",
		"7",
	), Options{})

	d, _ := s.Registry().At(1)
	if d.Connected() {
		t.Error("rejected selections must not change status")
	}
	assertContains(t, out, "Please enter a valid number.", "Invalid device number.")
	if strings.Count(out, "Invalid device number.") != 3 {
		t.Errorf("want 3 out-of-range reports, got %d", strings.Count(out, "Invalid device number."))
	}
}

func TestConnectTwiceIsNoop(t *testing.T) {
	s, out := runShell(t, script(
		"1", "1", "192.168.0.1", "Office", "",
		"3", "1", "",
		"3", "1", "",
		"4", "1", "",
		"4", "1", "",
		"7",
	), Options{})

	assertContains(t, out,
		"Device 192.168.0.1 is now connected.",
		"Device 192.168.0.1 is already connected.",
		"Device 192.168.0.1 has been disconnected.",
		"Device 192.168.0.1 is already disconnected.",
	)
	d, _ := s.Registry().At(1)
	if d.Connected() {
		t.Error("device should end disconnected")
	}
}

func TestOperateOfflineAndAuthFailure(t *testing.T) {
	s, out := runShell(t, script(
		"1", "3", "10.0.0.1", "Hall", "",
		"5", "1", "",
		"3", "1", "",
		"5", "1", "", "", "", "", "", "", "",
		"7",
	), Options{})

	assertContains(t, out,
		"Modem is offline. Connect it first.",
		"Authentication failed after 3 attempts.",
	)
	if strings.Contains(out, "handling internet traffic") {
		t.Error("modem must not reach traffic handling after failed authentication")
	}
	d, _ := s.Registry().At(1)
	if !d.Connected() {
		t.Error("failed authentication must not disconnect the modem")
	}
}

type fakeDashboard struct {
	calls   int
	devices []*device.Device
	err     error
}

func (f *fakeDashboard) Run(_ context.Context, devices []*device.Device) error {
	f.calls++
	f.devices = devices
	return f.err
}

func TestHubOpensDashboardWhenMonitoring(t *testing.T) {
	dash := &fakeDashboard{}

	_, out := runShell(t, script(
		"1", "2", "10.0.0.10", "Closet", "",
		"1", "1", "10.0.0.1", "Office", "",
		"3", "1", "",
		"5", "1", "maybe", "yes", "",
		"5", "1", "no", "",
		"7",
	), Options{Dashboard: dash})

	assertContains(t, out,
		"Devices connected to the hub: 10.0.0.10",
		"Broadcasting data to all connected devices.",
		"Invalid choice. Please enter 'yes' or 'no'.",
		"Network traffic monitoring enabled.",
		"Skipping network monitoring.",
	)
	if strings.Contains(out, "Devices connected to the hub: 10.0.0.10, 10.0.0.1") {
		t.Error("disconnected router must not be listed")
	}
	if dash.calls != 1 {
		t.Fatalf("dashboard opened %d times, want 1", dash.calls)
	}
	if len(dash.devices) != 1 || dash.devices[0].Address() != "10.0.0.10" {
		t.Errorf("dashboard devices = %v", dash.devices)
	}
}

func TestDashboardErrorIsReported(t *testing.T) {
	dash := &fakeDashboard{err: errors.New("no tty")}

	_, out := runShell(t, script(
		"1", "2", "10.0.0.10", "Closet", "",
		"3", "1", "",
		"5", "1", "yes", "",
		"7",
	), Options{Dashboard: dash})

	assertContains(t, out, "Failed to open traffic monitor: no tty")
}

func TestPing(t *testing.T) {
	_, out := runShell(t, script(
		"1", "1", "192.168.1.1", "Office", "",
		"1", "3", "192.168.1.2", "Hall", "",
		"3", "1", "",
		"6", "192.168.1.1", "",
		"6", "192.168.1.2", "",
		"6", "8.8.8.8", "",
		"7",
	), Options{})

	assertContains(t, out,
		"Devices Available:",
		"Checking Ping... please wait.",
		"Reply from 192.168.1.1: bytes=32 time=",
		"Device 192.168.1.2 is offline. No response.",
		"No device with that IP address.",
	)
	if strings.Count(out, "Checking Ping... please wait.") != 1 {
		t.Error("only the connected device should be pinged")
	}
}

func TestEndOfInputInsideFlowReturnsToMenu(t *testing.T) {
	s, out := runShell(t, script(
		"1", "1", "192.168.1.1", "Office", "",
		"3", "1", "",
		"5", "1", "admin",
	), Options{})

	assertContains(t, out, "The Program was Terminated.")
	d, _ := s.Registry().At(1)
	if !d.Connected() {
		t.Error("aborted operate must not change status")
	}
}

func TestParseOption(t *testing.T) {
	tests := []struct {
		input   string
		want    Option
		wantErr bool
	}{
		{"1", OptionAdd, false},
		{" 7 ", OptionExit, false},
		{"42", Option(42), false},
		{"x", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}

	for _, tt := range tests {
		got, err := parseOption(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOption(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrNotANumber) {
			t.Errorf("parseOption(%q) error = %v, want ErrNotANumber", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("parseOption(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	if Option(42).Valid() || !OptionPing.Valid() {
		t.Error("Valid() mismatch")
	}
}
