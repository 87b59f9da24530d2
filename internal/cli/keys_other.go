// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package cli

import "os"

// setCbreak is unsupported here; only Ctrl+C interrupts the typing effect.
func setCbreak(*os.File) (func(), error) {
	return nil, errKeysUnsupported
}
