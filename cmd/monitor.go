// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 yelobat

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yelobat/m8term/pkg/m8"
	"github.com/yelobat/m8term/pkg/screen"
)

var monitorKeymapPath string

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Live terminal view of the M8 display",
	Long: `Render the M8's character layer in the terminal and forward key
presses to the device.

The M8 draws its UI as character cells over background rectangles; this
view reproduces that layer (waveform and pixel-level draws are summarized
in the status line).

Default key bindings: z=edit x=option arrows=d-pad a=select s=start.
Override them with a TOML keymap file via --keymap. Press Ctrl+C or Esc
to quit.`,
	RunE: runMonitor,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	monitorCmd.Flags().StringVar(&monitorKeymapPath, "keymap", "", "TOML keymap file")
}

//////////////////////////////////////////////////////////////
// Messages
//////////////////////////////////////////////////////////////

type displayDataMsg struct {
	commands []m8.Command
	errors   []error
}

type monitorTickMsg time.Time

type readErrorMsg struct {
	err error
}

//////////////////////////////////////////////////////////////
// Model
//////////////////////////////////////////////////////////////

type monitorModel struct {
	conn     Connection
	connInfo string
	keymap   KeyMap

	screen *screen.Screen
	stats  *m8.Statistics

	eventLog    viewport.Model
	logEntries  []string
	maxLog      int
	logChanged  bool
	width       int
	height      int
	quitting    bool
	readFailure error
}

func initialMonitorModel(conn Connection, connInfo string, keymap KeyMap) monitorModel {
	vp := viewport.New(80, 6)
	return monitorModel{
		conn:     conn,
		connInfo: connInfo,
		keymap:   keymap,
		screen:   screen.New(),
		stats:    m8.NewStatistics(),
		eventLog: vp,
		maxLog:   200,
		width:    80,
		height:   24,
	}
}

func (m monitorModel) Init() tea.Cmd {
	return tea.Batch(
		monitorTickCmd(),
		tea.EnterAltScreen,
	)
}

func monitorTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return monitorTickMsg(t)
	})
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		if mask := m.keymap.Mask(msg.String()); mask != 0 {
			// Terminals deliver no key-up events, so emit a full
			// press/release pair per keystroke.
			m.conn.Write(m8.ControllerMessage(mask))
			m.conn.Write(m8.ControllerMessage(0))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eventLog.Width = msg.Width - 4
		m.eventLog.Height = m.logHeight()

	case monitorTickMsg:
		m.stats.CalculateRates()
		return m, monitorTickCmd()

	case displayDataMsg:
		for _, err := range msg.errors {
			m.stats.RecordError(err)
			m.addLogEntry(fmt.Sprintf("DROPPED FRAME: %v", err))
		}
		for _, command := range msg.commands {
			m.stats.RecordCommand(command)
			m.screen.Apply(command)
		}
		if m.logChanged {
			m.eventLog.SetContent(strings.Join(m.logEntries, "\n"))
			m.eventLog.GotoBottom()
			m.logChanged = false
		}

	case readErrorMsg:
		m.readFailure = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *monitorModel) addLogEntry(message string) {
	entry := fmt.Sprintf("%s %s", time.Now().Format("15:04:05.000"), message)
	m.logEntries = append(m.logEntries, entry)
	if len(m.logEntries) > m.maxLog {
		m.logEntries = m.logEntries[len(m.logEntries)-m.maxLog:]
	}
	m.logChanged = true
}

func (m monitorModel) logHeight() int {
	h := m.height - screen.Rows - 6
	if h < 3 {
		h = 3
	}
	return h
}

//////////////////////////////////////////////////////////////
// View
//////////////////////////////////////////////////////////////

func (m monitorModel) View() string {
	if m.quitting {
		if m.readFailure != nil {
			return fmt.Sprintf("Connection lost: %v\n", m.readFailure)
		}
		return "Disconnecting...\n"
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	statsLabelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("%s | Ctrl+C to quit", m.connInfo)))
	s.WriteString("\n")
	s.WriteString(boxStyle.Render(m.renderScreen()))
	s.WriteString("\n")
	s.WriteString(statsLabelStyle.Render(m.statusLine()))
	s.WriteString("\n")
	s.WriteString(m.eventLog.View())

	return s.String()
}

// renderScreen draws the character grid, one terminal cell per M8 cell,
// with 24-bit colours taken straight from the draw commands.
func (m monitorModel) renderScreen() string {
	var b strings.Builder
	for row := 0; row < screen.Rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		// Group runs of identical colouring into one styled chunk to keep
		// the frame small.
		var run strings.Builder
		var runFg, runBg m8.Colour
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColour(runFg))).
				Background(lipgloss.Color(hexColour(runBg)))
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
		for col := 0; col < screen.Cols; col++ {
			cell := m.screen.CellAt(row, col)
			ch := byte(' ')
			if cell.Code >= 0x20 && cell.Code <= 0x7E {
				ch = cell.Code
			}
			if run.Len() > 0 && (cell.Foreground != runFg || cell.Background != runBg) {
				flush()
			}
			runFg = cell.Foreground
			runBg = cell.Background
			run.WriteByte(ch)
		}
		flush()
	}
	return b.String()
}

func (m monitorModel) statusLine() string {
	wave := m.screen.Waveform()
	line := fmt.Sprintf("cmds %d (%.0f/s)  errs %d  wave %d samples",
		m.stats.TotalCommands, m.stats.CommandRate, m.stats.TotalErrors, len(wave.Samples))

	if info, ok := m.screen.Info(); ok {
		line += fmt.Sprintf("  |  %s fw %d.%d.%d",
			m8.HardwareName(info.HardwareType), info.Major, info.Minor, info.Patch)
	}
	return line
}

func hexColour(c m8.Colour) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

//////////////////////////////////////////////////////////////
// Command
//////////////////////////////////////////////////////////////

func runMonitor(cmd *cobra.Command, args []string) error {
	keymap := DefaultKeyMap()
	if monitorKeymapPath != "" {
		loaded, err := LoadKeyMap(monitorKeymapPath)
		if err != nil {
			return err
		}
		keymap = loaded
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := enableDevice(conn); err != nil {
		return err
	}
	defer conn.Write(m8.DisconnectMessage())

	p := tea.NewProgram(initialMonitorModel(conn, connInfo, keymap))

	// Reader goroutine: decode each read cycle and hand the finished
	// commands to the TUI. The decoder lives here so all of its mutable
	// session state stays on one goroutine.
	go func() {
		var cycleErrors []error
		decoder := m8.NewDecoder(m8.WithErrorFunc(func(err error) {
			cycleErrors = append(cycleErrors, err)
		}))

		buf := make([]byte, 1024)
		for {
			n, err := conn.Read(buf)
			if err != nil {
				p.Send(readErrorMsg{err: err})
				return
			}

			cycleErrors = nil
			commands := decoder.DecodeCycle(buf[:n])
			if len(commands) == 0 && len(cycleErrors) == 0 {
				continue
			}

			// The decoder reuses its command slice each cycle; copy
			// before crossing goroutines.
			owned := make([]m8.Command, len(commands))
			copy(owned, commands)
			p.Send(displayDataMsg{commands: owned, errors: cycleErrors})
		}
	}()

	_, err = p.Run()
	return err
}
