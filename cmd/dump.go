// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yelobat/m8term/pkg/m8"
)

var dumpValidate bool

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Decode and print display commands as they arrive",
	Long: `Continuously decode the M8 display stream and print each command in
human-readable form, one per line.

The device is sent an enable ('E') and a reset ('R') on connect so it
streams the full screen state. Malformed frames are dropped and logged;
decoding continues with the next frame.

Supports both serial and WebSocket connections.`,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().BoolVar(&dumpValidate, "validate", false, "Report commands that draw outside the display")
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := initLogger()

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("m8term - Command Dump\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	if err := enableDevice(conn); err != nil {
		return err
	}
	defer conn.Write(m8.DisconnectMessage())

	stats := m8.NewStatistics()
	decoder := m8.NewDecoder(m8.WithErrorFunc(func(err error) {
		stats.RecordError(err)
		logger.Debug().Err(err).Msg("dropped frame")
	}))
	buf := make([]byte, 1024)

	for {
		n, err := conn.Read(buf)
		if err != nil {
			if err == ErrConnectionClosed {
				logger.Info().Msg("connection closed")
				fmt.Print(stats.String())
				return nil
			}
			logger.Warn().Err(err).Msg("read error")
			continue
		}

		for _, command := range decoder.DecodeCycle(buf[:n]) {
			stats.RecordCommand(command)
			fmt.Println(m8.FormatCommand(command))

			if dumpValidate {
				for _, v := range m8.ValidateCommand(command) {
					logger.Warn().Str("command", m8.CommandName(command)).Msg(v.Message)
				}
			}
		}
	}
}

// enableDevice puts the M8 into headless streaming mode and requests a
// full screen refresh.
func enableDevice(conn Connection) error {
	if _, err := conn.Write(m8.EnableMessage()); err != nil {
		return fmt.Errorf("failed to send enable command: %v", err)
	}
	if _, err := conn.Write(m8.ResetMessage()); err != nil {
		return fmt.Errorf("failed to send reset command: %v", err)
	}
	return nil
}
