// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 yelobat

// Package screen maintains a virtual M8 display: the pixel surface draw
// commands are applied to, plus the derived character-cell grid a terminal
// renderer can draw cheaply.
package screen

import "github.com/yelobat/m8term/pkg/m8"

// Character cell geometry of the small M8 font.
const (
	CellWidth  = 8
	CellHeight = 10
)

// Cols and Rows of the character grid.
const (
	Cols = m8.DisplayWidth / CellWidth
	Rows = m8.DisplayHeight / CellHeight
)

// Cell is one character-grid position.
type Cell struct {
	Code       uint8
	Foreground m8.Colour
	Background m8.Colour
}

// Screen applies decoded commands to an in-memory display. Not safe for
// concurrent use; apply and read from the same goroutine.
type Screen struct {
	pixels   []m8.Colour
	cells    []Cell
	waveform m8.DrawOscilloscopeWaveform
	info     m8.SystemInfo
	hasInfo  bool
	dirty    bool
}

// New creates a cleared screen.
func New() *Screen {
	s := &Screen{
		pixels: make([]m8.Colour, m8.DisplayWidth*m8.DisplayHeight),
		cells:  make([]Cell, Cols*Rows),
	}
	return s
}

// Clear resets every pixel and cell to black and drops the stored
// waveform. Device info is kept; it does not describe screen content.
func (s *Screen) Clear() {
	for i := range s.pixels {
		s.pixels[i] = m8.ColourBlack
	}
	for i := range s.cells {
		s.cells[i] = Cell{}
	}
	s.waveform = m8.DrawOscilloscopeWaveform{}
	s.dirty = true
}

// Apply executes one command against the screen.
func (s *Screen) Apply(cmd m8.Command) {
	switch c := cmd.(type) {
	case m8.DrawRectangle:
		s.fillRect(c)
	case m8.DrawCharacter:
		s.setCell(c)
	case m8.DrawOscilloscopeWaveform:
		s.waveform = c
		s.dirty = true
	case m8.SystemInfo:
		s.info = c
		s.hasInfo = true
	}
}

// Pixel returns the colour at (x, y). Out-of-range coordinates are black.
func (s *Screen) Pixel(x, y int) m8.Colour {
	if x < 0 || x >= m8.DisplayWidth || y < 0 || y >= m8.DisplayHeight {
		return m8.ColourBlack
	}
	return s.pixels[y*m8.DisplayWidth+x]
}

// CellAt returns the character cell at (row, col).
func (s *Screen) CellAt(row, col int) Cell {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Cell{}
	}
	return s.cells[row*Cols+col]
}

// Waveform returns the most recent oscilloscope trace.
func (s *Screen) Waveform() m8.DrawOscilloscopeWaveform {
	return s.waveform
}

// Info returns the last SystemInfo and whether one has been seen.
func (s *Screen) Info() (m8.SystemInfo, bool) {
	return s.info, s.hasInfo
}

// Dirty reports whether the screen changed since the last call and clears
// the flag.
func (s *Screen) Dirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// fillRect paints the rectangle's pixels and evicts any character cells it
// fully covers, so stale glyphs do not survive a background wipe.
func (s *Screen) fillRect(c m8.DrawRectangle) {
	x0 := int(c.Pos.X)
	y0 := int(c.Pos.Y)
	x1 := min(x0+int(c.Size.Width), m8.DisplayWidth)
	y1 := min(y0+int(c.Size.Height), m8.DisplayHeight)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.pixels[y*m8.DisplayWidth+x] = c.Colour
		}
	}

	row0 := y0 / CellHeight
	row1 := (y1 + CellHeight - 1) / CellHeight
	col0 := x0 / CellWidth
	col1 := (x1 + CellWidth - 1) / CellWidth
	for row := row0; row < row1 && row < Rows; row++ {
		for col := col0; col < col1 && col < Cols; col++ {
			cellX := col * CellWidth
			cellY := row * CellHeight
			if cellX >= x0 && cellX+CellWidth <= x1 && cellY >= y0 && cellY+CellHeight <= y1 {
				s.cells[row*Cols+col] = Cell{Background: c.Colour}
			}
		}
	}

	s.dirty = true
}

func (s *Screen) setCell(c m8.DrawCharacter) {
	col := int(c.Pos.X) / CellWidth
	row := int(c.Pos.Y) / CellHeight
	if col < 0 || col >= Cols || row < 0 || row >= Rows {
		return
	}
	s.cells[row*Cols+col] = Cell{
		Code:       c.Code,
		Foreground: c.Foreground,
		Background: c.Background,
	}
	s.dirty = true
}
