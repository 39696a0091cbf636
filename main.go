// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat
//
// m8term - Dirtywave M8 headless display client for the terminal.

package main

import (
	"os"

	"github.com/yelobat/m8term/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
