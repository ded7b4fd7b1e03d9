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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("not a number")

type Option int

const (
	OptionAdd Option = iota + 1
	OptionList
	OptionConnect
	OptionDisconnect
	OptionOperate
	OptionPing
	OptionExit
)

func (o Option) String() string {
	switch o {
	case OptionAdd:
		return "add"
	case OptionList:
		return "list"
	case OptionConnect:
		return "connect"
	case OptionDisconnect:
		return "disconnect"
	case OptionOperate:
		return "operate"
	case OptionPing:
		return "ping"
	case OptionExit:
		return "exit"
	default:
		return "unknown"
	}
}

func (o Option) Valid() bool {
	return o >= OptionAdd && o <= OptionExit
}

func parseNumber(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	return n, nil
}

func parseOption(input string) (Option, error) {
	n, err := parseNumber(input)
	if err != nil {
		return 0, err
	}
	return Option(n), nil
}
