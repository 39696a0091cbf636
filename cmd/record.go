// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/yelobat/m8term/pkg/m8"
)

var recordOut string

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record the decoded command stream to a file",
	Long: `Decode the M8 display stream and append every command, with its decode
timestamp, to a CBOR stream file. Use the replay command to play it back.

Recording runs until interrupted with Ctrl+C.`,
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
	recordCmd.Flags().StringVarP(&recordOut, "out", "o", "m8term.m8rec", "Output recording file")
}

func runRecord(cmd *cobra.Command, args []string) error {
	logger := initLogger()

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	out, err := os.Create(recordOut)
	if err != nil {
		return fmt.Errorf("failed to create recording file: %v", err)
	}
	defer out.Close()

	fmt.Printf("m8term - Session Recorder\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Recording to: %s\n", recordOut)
	fmt.Printf("Press Ctrl+C to stop\n\n")

	if err := enableDevice(conn); err != nil {
		return err
	}
	defer conn.Write(m8.DisconnectMessage())

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	// The reader goroutine owns the connection; the main goroutine owns
	// decoder, writer and stats.
	chunks := make(chan []byte, 16)
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				readErr <- err
				return
			}
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			chunks <- chunk
		}
	}()

	writer := m8.NewRecordingWriter(out)
	stats := m8.NewStatistics()
	decoder := m8.NewDecoder(m8.WithErrorFunc(func(err error) {
		stats.RecordError(err)
		logger.Debug().Err(err).Msg("dropped frame")
	}))

	for {
		select {
		case <-interrupt:
			fmt.Print("\n" + stats.String())
			return nil

		case err := <-readErr:
			if err == ErrConnectionClosed {
				logger.Info().Msg("connection closed")
				fmt.Print(stats.String())
				return nil
			}
			return fmt.Errorf("read error: %v", err)

		case chunk := <-chunks:
			now := time.Now()
			for _, command := range decoder.DecodeCycle(chunk) {
				stats.RecordCommand(command)
				if err := writer.Append(command, now); err != nil {
					return err
				}
			}
		}
	}
}
