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
	"strconv"
	"strings"
)

type modemState int

const (
	modemAuth modemState = iota
	modemAskBandwidth
	modemBandwidth
	modemDone
)

type modemFlow struct {
	dev       *Device
	state     modemState
	login     login
	bandwidth int
	outcome   Outcome
}

func newModemFlow(d *Device) *modemFlow {
	return &modemFlow{
		dev: d,
		login: login{
			header:      "Enter your ISP credentials:",
			idLabel:     "ISP Account ID: ",
			secretLabel: "ISP Password: ",
			okText:      "Authenticated with ISP successfully.",
		},
	}
}

func (f *modemFlow) Start() []Message {
	return nil
}

func (f *modemFlow) Pending() (Prompt, bool) {
	switch f.state {
	case modemAuth:
		return f.login.prompt(), true
	case modemAskBandwidth:
		return yesNoPrompt("Would you like to set a bandwidth limit? (yes/no): "), true
	case modemBandwidth:
		return Prompt{Label: "Enter bandwidth limit (in Mbps): "}, true
	default:
		return Prompt{}, false
	}
}

func (f *modemFlow) Answer(answer string) []Message {
	answer = strings.TrimSpace(answer)

	switch f.state {
	case modemAuth:
		msgs, done, ok := f.login.answer(answer)
		if done {
			if ok {
				f.state = modemAskBandwidth
			} else {
				f.state = modemDone
				f.outcome = OutcomeAuthFailed
			}
		}
		return msgs

	case modemAskBandwidth:
		yes, ok := parseYesNo(answer)
		if !ok {
			return []Message{invalidChoice()}
		}
		if yes {
			f.state = modemBandwidth
			return nil
		}
		return f.finish(info("Skipping bandwidth configuration."))

	case modemBandwidth:
		n, err := strconv.Atoi(answer)
		if err != nil {
			f.state = modemAskBandwidth
			return []Message{failure("Invalid input. Please enter a numeric value for bandwidth.")}
		}
		if n <= 0 {
			f.state = modemAskBandwidth
			return []Message{failure("Bandwidth must be a positive number.")}
		}
		f.bandwidth = n
		return f.finish(success("Bandwidth limit set to %d Mbps.", n))
	}

	return nil
}

// finish runs the signal check that always follows configuration.
func (f *modemFlow) finish(msgs ...Message) []Message {
	f.state = modemDone
	f.outcome = OutcomeCompleted
	return append(msgs,
		info("Checking signal strength... Signal is stable."),
		success("Modem at %s is now handling internet traffic.", f.dev.address),
	)
}

func (f *modemFlow) Outcome() Outcome {
	return f.outcome
}

func (f *modemFlow) Details() []any {
	if f.bandwidth == 0 {
		return nil
	}
	return []any{"bandwidth_mbps", f.bandwidth}
}
