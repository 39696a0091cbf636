// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/yelobat/m8term/pkg/m8"
)

var (
	replayIn    string
	replayStats bool
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Print a recorded command stream",
	Long: `Read a recording produced by the record command and print each command
with its original timestamp. With --stats, only a summary is printed.`,
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayIn, "in", "i", "", "Recording file to replay (required)")
	replayCmd.Flags().BoolVar(&replayStats, "stats", false, "Print only a command summary")
	replayCmd.MarkFlagRequired("in")
}

func runReplay(cmd *cobra.Command, args []string) error {
	in, err := os.Open(replayIn)
	if err != nil {
		return fmt.Errorf("failed to open recording: %v", err)
	}
	defer in.Close()

	reader := m8.NewRecordingReader(in)
	stats := m8.NewStatistics()

	for {
		command, at, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		stats.RecordCommand(command)
		if !replayStats {
			fmt.Printf("[%s] %s\n", at.Format("15:04:05.000"), m8.FormatCommand(command))
		}
	}

	if replayStats {
		fmt.Print(stats.String())
	}
	return nil
}
