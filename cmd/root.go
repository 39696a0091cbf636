// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	// Logging flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "m8term",
	Short: "Dirtywave M8 headless display client",
	Long: `m8term - A terminal client for the Dirtywave M8 in headless mode.

Decodes the SLIP-framed display command stream the M8 sends over USB
serial and renders it, logs it, or records it for later replay.

Connection modes:
  Serial:    --port /dev/ttyACM0 [--baud 115200]
             (omitted --port auto-detects the M8 by USB VID/PID)
  WebSocket: --url ws://host/m8 [--username user]

For WebSocket authentication, the password is read from the M8TERM_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell history.`,
	Version: "1.0.0",
}

func init() {
	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device (auto-detect if empty)")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 115200, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log per-packet decode errors")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
