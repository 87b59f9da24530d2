// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the cybersafe application.
package util

import "strconv"

// IntToString converts an int to string.
func IntToString(i int) string {
	return strconv.Itoa(i)
}
