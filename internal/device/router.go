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

type routerState int

const (
	routerAuth routerState = iota
	routerAskWiFi
	routerSSID
	routerWiFiPassword
	routerDone
)

type routerFlow struct {
	dev     *Device
	state   routerState
	login   login
	ssid    string
	outcome Outcome
}

func newRouterFlow(d *Device) *routerFlow {
	return &routerFlow{
		dev: d,
		login: login{
			header:      "Enter the router's login credentials:",
			idLabel:     "Username: ",
			secretLabel: "Password: ",
			okText:      "Login successful.",
		},
	}
}

func (f *routerFlow) Start() []Message {
	return []Message{info("To operate the router, connect it to a modem and Ethernet.")}
}

func (f *routerFlow) Pending() (Prompt, bool) {
	switch f.state {
	case routerAuth:
		return f.login.prompt(), true
	case routerAskWiFi:
		return yesNoPrompt("Would you like to configure your WiFi network? (yes/no): "), true
	case routerSSID:
		return Prompt{Label: "Enter WiFi network name (SSID): "}, true
	case routerWiFiPassword:
		return Prompt{Label: "Enter WiFi password: ", Secret: true}, true
	default:
		return Prompt{}, false
	}
}

func (f *routerFlow) Answer(answer string) []Message {
	answer = strings.TrimSpace(answer)

	switch f.state {
	case routerAuth:
		msgs, done, ok := f.login.answer(answer)
		if done {
			if ok {
				f.state = routerAskWiFi
			} else {
				f.state = routerDone
				f.outcome = OutcomeAuthFailed
			}
		}
		return msgs

	case routerAskWiFi:
		yes, ok := parseYesNo(answer)
		if !ok {
			return []Message{invalidChoice()}
		}
		if yes {
			f.state = routerSSID
			return nil
		}
		f.ssid = ""
		return f.finish(info("Skipping WiFi configuration."))

	case routerSSID:
		f.ssid = answer
		f.state = routerWiFiPassword
		return nil

	case routerWiFiPassword:
		if f.ssid == "" || answer == "" {
			f.state = routerAskWiFi
			return []Message{failure("Invalid input. Both SSID and password must be provided.")}
		}
		return f.finish(success("WiFi network '%s' has been successfully configured.", f.ssid))
	}

	return nil
}

func (f *routerFlow) finish(msgs ...Message) []Message {
	f.state = routerDone
	f.outcome = OutcomeCompleted
	return append(msgs, success("Router at %s is now managing network traffic.", f.dev.address))
}

func (f *routerFlow) Outcome() Outcome {
	return f.outcome
}

func (f *routerFlow) Details() []any {
	if f.outcome != OutcomeCompleted || f.ssid == "" {
		return nil
	}
	return []any{"ssid", f.ssid}
}
