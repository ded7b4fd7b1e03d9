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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/peterh/liner"
)

type lineReader interface {
	readLine(prompt string) (string, error)
	readSecret(prompt string) (string, error)
	setCompleter(choices []string)
	close() error
}

type plainReader struct {
	reader *bufio.Reader
	out    io.Writer
}

func newPlainReader(in io.Reader, out io.Writer) *plainReader {
	return &plainReader{reader: bufio.NewReader(in), out: out}
}

func (p *plainReader) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *plainReader) readSecret(prompt string) (string, error) {
	return p.readLine(prompt)
}

func (p *plainReader) setCompleter([]string) {}

func (p *plainReader) close() error {
	return nil
}

type readlineReader struct {
	rl        *readline.Instance
	completer *choiceCompleter
}

func newReadlineReader(historyFile string) (*readlineReader, error) {
	completer := &choiceCompleter{}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       historyFile,
		AutoComplete:      completer,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &readlineReader{rl: rl, completer: completer}, nil
}

func (r *readlineReader) readLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return line, err
}

func (r *readlineReader) readSecret(prompt string) (string, error) {
	b, err := r.rl.ReadPassword(prompt)
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupt
	}
	return string(b), err
}

func (r *readlineReader) setCompleter(choices []string) {
	r.completer.choices = choices
}

func (r *readlineReader) close() error {
	return r.rl.Close()
}

type linerReader struct {
	state       *liner.State
	historyFile string
	choices     []string
}

func newLinerReader(historyFile string) *linerReader {
	l := &linerReader{state: liner.NewLiner(), historyFile: historyFile}

	l.state.SetCtrlCAborts(true)
	l.state.SetTabCompletionStyle(liner.TabPrints)
	l.state.SetCompleter(func(line string) []string {
		return filterChoices(l.choices, line)
	})

	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			l.state.ReadHistory(f)
			f.Close()
		}
	}

	return l
}

func (l *linerReader) readLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupt
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		l.state.AppendHistory(line)
	}
	return line, nil
}

func (l *linerReader) readSecret(prompt string) (string, error) {
	line, err := l.state.PasswordPrompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupt
	}
	return line, err
}

func (l *linerReader) setCompleter(choices []string) {
	l.choices = choices
}

func (l *linerReader) close() error {
	if l.historyFile != "" {
		if f, err := os.Create(l.historyFile); err == nil {
			l.state.WriteHistory(f)
			f.Close()
		}
	}
	return l.state.Close()
}
