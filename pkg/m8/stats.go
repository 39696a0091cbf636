// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import (
	"errors"
	"fmt"
	"time"
)

// Statistics tracks decode throughput and the error taxonomy over a
// session. It is updated from the same goroutine that runs the decoder.
type Statistics struct {
	StartTime time.Time

	// Command counters
	TotalCommands uint64
	Rectangles    uint64
	Characters    uint64
	Waveforms     uint64
	SystemInfos   uint64

	// Error counters
	TotalErrors     uint64
	Overflows       uint64
	BadEscapes      uint64
	BadFormats      uint64
	UnknownCommands uint64

	// Rates (calculated)
	CommandRate float64 // commands/sec
	ErrorRate   float64 // errors/sec
}

// NewStatistics creates a statistics tracker starting now.
func NewStatistics() *Statistics {
	return &Statistics{StartTime: time.Now()}
}

// RecordCommand counts one successfully decoded command.
func (s *Statistics) RecordCommand(cmd Command) {
	s.TotalCommands++
	switch cmd.(type) {
	case DrawRectangle:
		s.Rectangles++
	case DrawCharacter:
		s.Characters++
	case DrawOscilloscopeWaveform:
		s.Waveforms++
	case SystemInfo:
		s.SystemInfos++
	}
}

// RecordError counts one per-packet decode error by kind.
func (s *Statistics) RecordError(err error) {
	s.TotalErrors++

	var escErr *UnknownEscapedByteError
	var cmdErr *UnrecognizedCommandError
	switch {
	case errors.Is(err, ErrBufferOverflow):
		s.Overflows++
	case errors.As(err, &escErr):
		s.BadEscapes++
	case errors.As(err, &cmdErr):
		s.UnknownCommands++
	default:
		s.BadFormats++
	}
}

// CalculateRates refreshes the per-second command and error rates.
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.CommandRate = float64(s.TotalCommands) / elapsed
		s.ErrorRate = float64(s.TotalErrors) / elapsed
	}
}

// String returns a formatted statistics summary.
func (s *Statistics) String() string {
	s.CalculateRates()

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Commands:        %8d (%.1f/s)\n", s.TotalCommands, s.CommandRate)
	result += fmt.Sprintf("  Rectangles:    %8d\n", s.Rectangles)
	result += fmt.Sprintf("  Characters:    %8d\n", s.Characters)
	result += fmt.Sprintf("  Waveforms:     %8d\n", s.Waveforms)
	result += fmt.Sprintf("  System infos:  %8d\n", s.SystemInfos)

	if s.TotalErrors > 0 {
		result += fmt.Sprintf("Errors:          %8d (%.2f/s)\n", s.TotalErrors, s.ErrorRate)
		if s.Overflows > 0 {
			result += fmt.Sprintf("  Overflows:     %8d\n", s.Overflows)
		}
		if s.BadEscapes > 0 {
			result += fmt.Sprintf("  Bad escapes:   %8d\n", s.BadEscapes)
		}
		if s.BadFormats > 0 {
			result += fmt.Sprintf("  Bad formats:   %8d\n", s.BadFormats)
		}
		if s.UnknownCommands > 0 {
			result += fmt.Sprintf("  Unknown cmds:  %8d\n", s.UnknownCommands)
		}
	}

	return result
}
