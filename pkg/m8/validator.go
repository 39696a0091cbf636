// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import "fmt"

// AnomalyType classifies commands that parsed correctly but describe draws
// a real device would never produce.
type AnomalyType int

const (
	AnomalyOutOfBounds AnomalyType = iota
	AnomalyZeroSize
	AnomalySampleRange
)

// ValidationError describes one anomaly found in a parsed command.
type ValidationError struct {
	Type    AnomalyType
	Message string
}

// Error implements the error interface
func (v *ValidationError) Error() string {
	return v.Message
}

// ValidateCommand checks a parsed command against the physical display.
// Returns a slice of validation errors (empty if the command is sane).
// Anomalies usually indicate stream corruption that happened to survive
// framing and length checks.
func ValidateCommand(cmd Command) []ValidationError {
	switch c := cmd.(type) {
	case DrawRectangle:
		return validateRectangle(c)
	case DrawCharacter:
		return validateCharacter(c)
	case DrawOscilloscopeWaveform:
		return validateWaveform(c)
	}
	return []ValidationError{}
}

func validateRectangle(c DrawRectangle) []ValidationError {
	errors := []ValidationError{}

	if c.Size.Width == 0 || c.Size.Height == 0 {
		errors = append(errors, ValidationError{
			Type:    AnomalyZeroSize,
			Message: fmt.Sprintf("zero-sized rectangle %dx%d at (%d,%d)", c.Size.Width, c.Size.Height, c.Pos.X, c.Pos.Y),
		})
	}

	right := uint32(c.Pos.X) + uint32(c.Size.Width)
	bottom := uint32(c.Pos.Y) + uint32(c.Size.Height)
	if right > DisplayWidth || bottom > DisplayHeight {
		errors = append(errors, ValidationError{
			Type: AnomalyOutOfBounds,
			Message: fmt.Sprintf("rectangle (%d,%d)+%dx%d exceeds %dx%d display",
				c.Pos.X, c.Pos.Y, c.Size.Width, c.Size.Height, DisplayWidth, DisplayHeight),
		})
	}

	return errors
}

func validateCharacter(c DrawCharacter) []ValidationError {
	if c.Pos.X >= DisplayWidth || c.Pos.Y >= DisplayHeight {
		return []ValidationError{{
			Type:    AnomalyOutOfBounds,
			Message: fmt.Sprintf("character at (%d,%d) outside %dx%d display", c.Pos.X, c.Pos.Y, DisplayWidth, DisplayHeight),
		}}
	}
	return []ValidationError{}
}

func validateWaveform(c DrawOscilloscopeWaveform) []ValidationError {
	errors := []ValidationError{}

	for i, sample := range c.Samples {
		if int(sample) >= DisplayHeight {
			errors = append(errors, ValidationError{
				Type:    AnomalySampleRange,
				Message: fmt.Sprintf("waveform sample %d is row %d, past display height %d", i, sample, DisplayHeight),
			})
			// One report per command is enough.
			break
		}
	}

	return errors
}
