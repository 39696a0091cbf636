// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

package m8

import "testing"

// ============================================================
// Validator Tests
// ============================================================

func hasAnomaly(errs []ValidationError, kind AnomalyType) bool {
	for _, e := range errs {
		if e.Type == kind {
			return true
		}
	}
	return false
}

func TestValidateCommand_Rectangle(t *testing.T) {
	tests := []struct {
		name string
		cmd  DrawRectangle
		want []AnomalyType
	}{
		{
			name: "full screen clear is sane",
			cmd:  DrawRectangle{Pos: Position{0, 0}, Size: Size{DisplayWidth, DisplayHeight}},
			want: nil,
		},
		{
			name: "zero width",
			cmd:  DrawRectangle{Pos: Position{10, 10}, Size: Size{0, 5}},
			want: []AnomalyType{AnomalyZeroSize},
		},
		{
			name: "right edge overflow",
			cmd:  DrawRectangle{Pos: Position{315, 0}, Size: Size{10, 1}},
			want: []AnomalyType{AnomalyOutOfBounds},
		},
		{
			name: "bottom edge overflow",
			cmd:  DrawRectangle{Pos: Position{0, 239}, Size: Size{1, 2}},
			want: []AnomalyType{AnomalyOutOfBounds},
		},
		{
			name: "zero size far off screen",
			cmd:  DrawRectangle{Pos: Position{1000, 1000}, Size: Size{0, 0}},
			want: []AnomalyType{AnomalyZeroSize, AnomalyOutOfBounds},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateCommand(tt.cmd)
			if len(errs) != len(tt.want) {
				t.Fatalf("expected %d anomalies, got %d: %v", len(tt.want), len(errs), errs)
			}
			for _, kind := range tt.want {
				if !hasAnomaly(errs, kind) {
					t.Errorf("missing anomaly %d in %v", kind, errs)
				}
			}
		})
	}
}

func TestValidateCommand_Character(t *testing.T) {
	if errs := ValidateCommand(DrawCharacter{Pos: Position{319, 239}}); len(errs) != 0 {
		t.Errorf("on-screen character flagged: %v", errs)
	}
	errs := ValidateCommand(DrawCharacter{Pos: Position{320, 0}})
	if !hasAnomaly(errs, AnomalyOutOfBounds) {
		t.Errorf("off-screen character not flagged: %v", errs)
	}
}

func TestValidateCommand_Waveform(t *testing.T) {
	good := make([]byte, MaxWaveformSamples)
	for i := range good {
		good[i] = byte(i % DisplayHeight)
	}
	if errs := ValidateCommand(DrawOscilloscopeWaveform{Samples: good}); len(errs) != 0 {
		t.Errorf("in-range waveform flagged: %v", errs)
	}

	// Multiple bad samples still produce a single report.
	bad := []byte{10, 240, 250, 255}
	errs := ValidateCommand(DrawOscilloscopeWaveform{Samples: bad})
	if len(errs) != 1 || !hasAnomaly(errs, AnomalySampleRange) {
		t.Errorf("expected one sample-range anomaly, got %v", errs)
	}
}

func TestValidateCommand_SystemInfoAlwaysSane(t *testing.T) {
	errs := ValidateCommand(SystemInfo{HardwareType: 0x7F, Major: 255})
	if errs == nil || len(errs) != 0 {
		t.Errorf("system info should validate clean, got %v", errs)
	}
}
