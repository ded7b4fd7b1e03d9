/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import (
	"context"
	"fmt"
	"strings"
)

const MaxLoginAttempts = 3

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

type Message struct {
	Level Level
	Text  string
}

func info(format string, args ...any) Message {
	return Message{Level: LevelInfo, Text: fmt.Sprintf(format, args...)}
}

func success(format string, args ...any) Message {
	return Message{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)}
}

func warning(format string, args ...any) Message {
	return Message{Level: LevelWarning, Text: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Message {
	return Message{Level: LevelError, Text: fmt.Sprintf(format, args...)}
}

// Prompt is a question a flow waits on. Header, when set, is printed on its
// own line before Label. Secret answers must not be echoed. Choices lists
// the answers a console may offer for completion.
type Prompt struct {
	Header  string
	Label   string
	Secret  bool
	Choices []string
}

type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeOffline
	OutcomeAuthFailed
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeOffline:
		return "offline"
	case OutcomeAuthFailed:
		return "auth-failed"
	case OutcomeCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Flow is the operate sequence of one device kind, advanced one answer at a
// time. Start is called once before the first Pending.
type Flow interface {
	Start() []Message
	Pending() (Prompt, bool)
	Answer(answer string) []Message
	Outcome() Outcome
	// Details returns key/value pairs describing what the flow configured.
	Details() []any
}

// Asker is the console side of a flow.
type Asker interface {
	Ask(ctx context.Context, p Prompt) (string, error)
	Show(m Message)
}

// Drive runs f to completion against a. An Ask error aborts the flow and is
// returned together with the outcome reached so far.
func Drive(ctx context.Context, f Flow, a Asker) (Outcome, error) {
	for _, m := range f.Start() {
		a.Show(m)
	}

	for {
		p, ok := f.Pending()
		if !ok {
			return f.Outcome(), nil
		}

		if err := ctx.Err(); err != nil {
			return f.Outcome(), err
		}

		answer, err := a.Ask(ctx, p)
		if err != nil {
			return f.Outcome(), fmt.Errorf("operate aborted: %w", err)
		}

		for _, m := range f.Answer(answer) {
			a.Show(m)
		}
	}
}

func yesNoPrompt(label string) Prompt {
	return Prompt{Label: label, Choices: []string{"yes", "no"}}
}

func parseYesNo(answer string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

func invalidChoice() Message {
	return failure("Invalid choice. Please enter 'yes' or 'no'.")
}

// login is the bounded credential exchange shared by routers and modems.
type login struct {
	header      string
	idLabel     string
	secretLabel string
	okText      string

	attempts    int
	awaitSecret bool
	id          string
}

func (l *login) prompt() Prompt {
	if l.awaitSecret {
		return Prompt{Label: l.secretLabel, Secret: true}
	}
	return Prompt{Header: l.header, Label: l.idLabel}
}

// answer consumes one field. done is set once the exchange has a verdict.
func (l *login) answer(s string) (msgs []Message, done, ok bool) {
	if !l.awaitSecret {
		l.id = s
		l.awaitSecret = true
		return nil, false, false
	}

	l.awaitSecret = false
	l.attempts++

	if l.id != "" && s != "" {
		return []Message{success("%s", l.okText)}, true, true
	}

	msgs = append(msgs, failure("Invalid credentials. Please try again."))
	if l.attempts >= MaxLoginAttempts {
		msgs = append(msgs, failure("Authentication failed after %d attempts.", MaxLoginAttempts))
		return msgs, true, false
	}
	return msgs, false, false
}

type offlineFlow struct {
	dev *Device
}

func newOfflineFlow(d *Device) *offlineFlow {
	return &offlineFlow{dev: d}
}

func (f *offlineFlow) Start() []Message {
	return []Message{warning("%s is offline. Connect it first.", f.dev.kind)}
}

func (f *offlineFlow) Pending() (Prompt, bool)  { return Prompt{}, false }
func (f *offlineFlow) Answer(string) []Message { return nil }
func (f *offlineFlow) Outcome() Outcome         { return OutcomeOffline }
func (f *offlineFlow) Details() []any           { return nil }
