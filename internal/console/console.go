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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/floof-os/netroom/internal/config"
	"github.com/floof-os/netroom/internal/device"
	"golang.org/x/term"
)

const DividerWidth = 75

var ErrInterrupt = errors.New("interrupted")

type Options struct {
	ClearScreen bool
	HistoryFile string
}

// Console is the user's terminal: prompts are read through a line editor
// backend and messages are written, coloured by level, to out.
type Console struct {
	in    lineReader
	out   io.Writer
	clear bool
	tty   bool
	width int

	successColor *color.Color
	errorColor   *color.Color
	infoColor    *color.Color
	warnColor    *color.Color
	boldColor    *color.Color
}

// Open builds the console selected by cfg on the process's stdin and
// stdout. Non-terminal input always uses the plain backend.
func Open(cfg config.ConsoleConfig, clearScreen bool) (*Console, error) {
	opts := Options{ClearScreen: clearScreen, HistoryFile: cfg.HistoryFile}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewPlain(os.Stdin, os.Stdout, opts), nil
	}

	switch strings.ToLower(cfg.Backend) {
	case config.BackendPlain:
		return NewPlain(os.Stdin, os.Stdout, opts), nil
	case config.BackendLiner:
		return newConsole(newLinerReader(opts.HistoryFile), os.Stdout, opts), nil
	default:
		r, err := newReadlineReader(opts.HistoryFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing readline: %v. Falling back to liner.\n", err)
			return newConsole(newLinerReader(opts.HistoryFile), os.Stdout, opts), nil
		}
		return newConsole(r, os.Stdout, opts), nil
	}
}

// NewPlain returns a console reading lines from in without any editing
// support. Secret prompts are read like any other line.
func NewPlain(in io.Reader, out io.Writer, opts Options) *Console {
	return newConsole(newPlainReader(in, out), out, opts)
}

func newConsole(in lineReader, out io.Writer, opts Options) *Console {
	c := &Console{
		in:           in,
		out:          out,
		clear:        opts.ClearScreen,
		width:        DividerWidth,
		successColor: color.New(color.FgGreen, color.Bold),
		errorColor:   color.New(color.FgRed, color.Bold),
		infoColor:    color.New(color.FgCyan),
		warnColor:    color.New(color.FgYellow),
		boldColor:    color.New(color.Bold),
	}

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.tty = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && w < DividerWidth {
			c.width = w
		}
	} else {
		for _, col := range []*color.Color{c.successColor, c.errorColor, c.infoColor, c.warnColor, c.boldColor} {
			col.DisableColor()
		}
	}

	return c
}

// Interactive reports whether output goes to a terminal.
func (c *Console) Interactive() bool {
	return c.tty
}

// Ask implements device.Asker.
func (c *Console) Ask(ctx context.Context, p device.Prompt) (string, error) {
	if p.Header != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, p.Header)
	}
	if p.Secret {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		line, err := c.in.readSecret(p.Label)
		return strings.TrimSpace(line), err
	}
	return c.Prompt(ctx, p.Label, p.Choices...)
}

// Prompt reads one trimmed line. Choices, when given, are offered as tab
// completions.
func (c *Console) Prompt(ctx context.Context, label string, choices ...string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	c.in.setCompleter(choices)
	defer c.in.setCompleter(nil)

	line, err := c.in.readLine(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Show implements device.Asker.
func (c *Console) Show(m device.Message) {
	fmt.Fprintln(c.out)
	switch m.Level {
	case device.LevelSuccess:
		c.successColor.Fprintln(c.out, m.Text)
	case device.LevelWarning:
		c.warnColor.Fprintln(c.out, m.Text)
	case device.LevelError:
		c.errorColor.Fprintln(c.out, m.Text)
	default:
		c.infoColor.Fprintln(c.out, m.Text)
	}
}

func (c *Console) Success(format string, args ...any) {
	c.Show(device.Message{Level: device.LevelSuccess, Text: fmt.Sprintf(format, args...)})
}

func (c *Console) Info(format string, args ...any) {
	c.Show(device.Message{Level: device.LevelInfo, Text: fmt.Sprintf(format, args...)})
}

func (c *Console) Warn(format string, args ...any) {
	c.Show(device.Message{Level: device.LevelWarning, Text: fmt.Sprintf(format, args...)})
}

func (c *Console) Error(format string, args ...any) {
	c.Show(device.Message{Level: device.LevelError, Text: fmt.Sprintf(format, args...)})
}

// Bold prints a heading line.
func (c *Console) Bold(format string, args ...any) {
	c.boldColor.Fprintln(c.out, fmt.Sprintf(format, args...))
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Divider() {
	fmt.Fprintln(c.out, strings.Repeat("-", c.width))
}

// Centered prints text centred within the divider width.
func (c *Console) Centered(text string) {
	pad := (c.width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(c.out, strings.Repeat(" ", pad)+text)
}

// Clear clears the screen when enabled and output is a terminal.
func (c *Console) Clear() {
	if c.clear && c.tty {
		fmt.Fprint(c.out, "\033[2J\033[H")
	}
}

// Pause waits for Enter, then clears the screen.
func (c *Console) Pause(ctx context.Context) error {
	fmt.Fprintln(c.out)
	if _, err := c.Prompt(ctx, "Press Enter to return to main menu..."); err != nil {
		return err
	}
	c.Clear()
	return nil
}

func (c *Console) Close() error {
	return c.in.close()
}
