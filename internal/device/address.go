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

// ValidateIP reports whether address has exactly four dot-separated parts,
// each an integer in [0,255]. Whitespace around a part and a leading sign
// are tolerated, so "010" and "+1" are valid octets.
func ValidateIP(address string) bool {
	parts := strings.Split(address, ".")
	if len(parts) != 4 {
		return false
	}

	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return false
		}
		if n < 0 || n > 255 {
			return false
		}
	}

	return true
}
