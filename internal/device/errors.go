/*
 * FloofOS - Fast Line-rate Offload On Fabric Operating System
 * Copyright (C) 2025 FloofOS Networks <dev@floofos.io>
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License.
 */

package device

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid IPv4 address")
	ErrEmptyLocation  = errors.New("location cannot be empty")
	ErrUnknownKind    = errors.New("unknown device type")
	ErrInvalidIndex   = errors.New("invalid device number")
	ErrNoSuchDevice   = errors.New("no device with that IP address")
	ErrNoResponse     = errors.New("device is offline")
)
