/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import "fmt"

type Kind int

const (
	Router Kind = iota + 1
	Modem
	Hub
)

func (k Kind) String() string {
	switch k {
	case Router:
		return "Router"
	case Modem:
		return "Modem"
	case Hub:
		return "Hub"
	default:
		return "Unknown"
	}
}

// Choices lists the kinds in the order the add-device menu numbers them.
var Choices = []Kind{Router, Hub, Modem}

// KindFromChoice maps a 1-based add-device menu entry to its kind.
func KindFromChoice(choice string) (Kind, error) {
	for i, k := range Choices {
		if choice == fmt.Sprint(i+1) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, choice)
}
