// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import "fmt"

// FormatCommand renders a command as a single human-readable line, the way
// the dump subcommand prints the live stream.
func FormatCommand(cmd Command) string {
	switch c := cmd.(type) {
	case DrawRectangle:
		return fmt.Sprintf("RECT pos=(%d,%d) size=%dx%d colour=#%02X%02X%02X",
			c.Pos.X, c.Pos.Y, c.Size.Width, c.Size.Height, c.Colour.R, c.Colour.G, c.Colour.B)

	case DrawCharacter:
		return fmt.Sprintf("CHAR %q pos=(%d,%d) fg=#%02X%02X%02X bg=#%02X%02X%02X",
			printableRune(c.Code), c.Pos.X, c.Pos.Y,
			c.Foreground.R, c.Foreground.G, c.Foreground.B,
			c.Background.R, c.Background.G, c.Background.B)

	case DrawOscilloscopeWaveform:
		return fmt.Sprintf("WAVE colour=#%02X%02X%02X samples=%d",
			c.Colour.R, c.Colour.G, c.Colour.B, len(c.Samples))

	case SystemInfo:
		return fmt.Sprintf("INFO hardware=%s firmware=%d.%d.%d font=%d",
			HardwareName(c.HardwareType), c.Major, c.Minor, c.Patch, c.FontMode)

	default:
		return fmt.Sprintf("UNKNOWN %T", cmd)
	}
}

// CommandName returns the short name of a command's wire type.
func CommandName(cmd Command) string {
	switch cmd.(type) {
	case DrawRectangle:
		return "RECT"
	case DrawCharacter:
		return "CHAR"
	case DrawOscilloscopeWaveform:
		return "WAVE"
	case SystemInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// HardwareName returns the human-readable name of a SystemInfo hardware
// type.
func HardwareName(hardwareType uint8) string {
	switch hardwareType {
	case HardwareHeadless:
		return "Headless"
	case HardwareBetaM8:
		return "Beta M8"
	case HardwareProduction:
		return "Production M8"
	case HardwareModel02:
		return "Production M8 Model:02"
	default:
		return fmt.Sprintf("Unknown (0x%02X)", hardwareType)
	}
}

func printableRune(code uint8) rune {
	if code < 0x20 || code > 0x7E {
		return '.'
	}
	return rune(code)
}
