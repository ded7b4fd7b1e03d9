/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/floof-os/netroom/internal/device"
)

func TestPlainPrompt(t *testing.T) {
	var out bytes.Buffer
	c := NewPlain(strings.NewReader("  hello  \nlast"), &out, Options{ClearScreen: true})

	got, err := c.Prompt(context.Background(), "Say: ")
	if err != nil || got != "hello" {
		t.Fatalf("Prompt() = %q, %v", got, err)
	}

	got, err = c.Prompt(context.Background(), "Again: ")
	if err != nil || got != "last" {
		t.Fatalf("Prompt() without trailing newline = %q, %v", got, err)
	}

	if _, err := c.Prompt(context.Background(), "More: "); !errors.Is(err, io.EOF) {
		t.Errorf("Prompt() at end of input error = %v, want io.EOF", err)
	}

	if !strings.Contains(out.String(), "Say: Again: More: ") {
		t.Errorf("prompts not written: %q", out.String())
	}
}

func TestAskPrintsHeader(t *testing.T) {
	var out bytes.Buffer
	c := NewPlain(strings.NewReader("admin\nsecret\n"), &out, Options{})

	ctx := context.Background()
	user, err := c.Ask(ctx, device.Prompt{Header: "Enter the router's login credentials:", Label: "Username: "})
	if err != nil || user != "admin" {
		t.Fatalf("Ask() = %q, %v", user, err)
	}
	pass, err := c.Ask(ctx, device.Prompt{Label: "Password: ", Secret: true})
	if err != nil || pass != "secret" {
		t.Fatalf("Ask() secret = %q, %v", pass, err)
	}

	want := "\nEnter the router's login credentials:\nUsername: Password: "
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestAskHonoursCancelledContext(t *testing.T) {
	c := NewPlain(strings.NewReader("x\n"), io.Discard, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Ask(ctx, device.Prompt{Label: "x: "}); !errors.Is(err, context.Canceled) {
		t.Errorf("Ask() error = %v, want context.Canceled", err)
	}
}

func TestShowWithoutColour(t *testing.T) {
	var out bytes.Buffer
	c := NewPlain(strings.NewReader(""), &out, Options{})

	c.Show(device.Message{Level: device.LevelSuccess, Text: "Login successful."})
	c.Error("Invalid device number.")

	want := "\nLogin successful.\n\nInvalid device number.\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestLayoutHelpers(t *testing.T) {
	var out bytes.Buffer
	c := NewPlain(strings.NewReader("\n"), &out, Options{ClearScreen: true})

	c.Divider()
	c.Centered("TITLE")
	if err := c.Pause(context.Background()); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}

	lines := strings.Split(out.String(), "\n")
	if lines[0] != strings.Repeat("-", DividerWidth) {
		t.Errorf("divider = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "TITLE" || !strings.HasPrefix(lines[1], strings.Repeat(" ", 35)) {
		t.Errorf("centred line = %q", lines[1])
	}
	if strings.Contains(out.String(), "\033[2J") {
		t.Error("screen must not be cleared when output is not a terminal")
	}
	if !strings.Contains(out.String(), "Press Enter to return to main menu...") {
		t.Error("missing pause prompt")
	}
}

func TestChoiceCompleter(t *testing.T) {
	c := &choiceCompleter{choices: []string{"yes", "no"}}

	got, length := c.Do([]rune("y"), 1)
	if len(got) != 1 || string(got[0]) != "es" || length != 1 {
		t.Errorf("Do(y) = %q, %d", got, length)
	}

	got, _ = c.Do([]rune(""), 0)
	if len(got) != 2 {
		t.Errorf("Do(empty) = %q, want both choices", got)
	}

	addr := &choiceCompleter{choices: []string{"192.168.1.1", "192.168.1.20", "10.0.0.1"}}
	got, length = addr.Do([]rune("192"), 3)
	if len(got) != 1 || string(got[0]) != ".168.1." || length != 3 {
		t.Errorf("Do(192) = %q, %d; want common prefix", got, length)
	}

	got, _ = addr.Do([]rune("172"), 3)
	if len(got) != 0 {
		t.Errorf("Do(172) = %q, want none", got)
	}
}

func TestFindCommonPrefix(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"yes"}, "yes"},
		{[]string{"10.0.0.1", "10.0.0.2"}, "10.0.0."},
		{[]string{"yes", "no"}, ""},
	}
	for _, tt := range tests {
		if got := findCommonPrefix(tt.in); got != tt.want {
			t.Errorf("findCommonPrefix(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
