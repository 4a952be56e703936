// Package tui provides a Bubble Tea terminal user interface for music-catalog.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/music-catalog/internal/config"
	"github.com/handiism/music-catalog/internal/report"
	"github.com/handiism/music-catalog/internal/scan"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)

	albumStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateReport
	StateError
)

const maxLogs = 10

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   scan.ProgressLevel
}

// eventBuffer collects scan events from the scanner goroutines until the UI
// polls them.
type eventBuffer struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (b *eventBuffer) add(event scan.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, LogEntry{Message: event.Message, Level: event.Level})
}

func (b *eventBuffer) drain() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := b.entries
	b.entries = nil
	return entries
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	viewport  viewport.Model
	settings  *config.Settings
	logs      []LogEntry
	report    *report.Report
	summary   *scan.Summary
	err       error

	// Scan context
	ctx    context.Context
	cancel context.CancelFunc

	scanner *scan.Scanner
	events  *eventBuffer
	scanID  int

	// Options
	mean    bool
	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model using settings for scanning.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.SetValue(settings.MusicPath)
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		viewport:  viewport.New(80, 20),
		settings:  settings,
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
		mean:      settings.ToAverageMode() == report.AverageMean,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ScanDoneMsg is sent when the scan completes.
	ScanDoneMsg struct {
		ScanID  int
		Library *scan.Library
		Summary *scan.Summary
		Err     error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-10, 5)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateScanning {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				m.state = StateScanning
				m.scanID++
				m.logs = nil
				m.events = &eventBuffer{}
				m.scanner = scan.NewScanner(m.settings.ToScanConfig(), m.events.add)
				return m, tea.Batch(m.startScan(), m.spinner.Tick, m.tickProgress())
			}

		case "tab":
			if m.state == StateInput {
				m.mean = !m.mean
				return m, nil
			}

		case "shift+tab":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state == StateReport || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateReport || m.state == StateError {
				// Reset for a new scan
				m.state = StateInput
				m.logs = nil
				m.report = nil
				m.summary = nil
				m.err = nil
				m.scanner = nil
				m.events = nil
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.Focus()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ScanDoneMsg:
		// Results of a cancelled or earlier scan
		if msg.ScanID != m.scanID || m.state != StateScanning {
			return m, nil
		}
		m.collectLogs()
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateReport
			m.summary = msg.Summary
			mode := report.AveragePairwise
			if m.mean {
				mode = report.AverageMean
			}
			m.report = report.Build(msg.Library.Catalog, mode)
			m.viewport.SetContent(renderReport(m.report))
			m.viewport.GotoTop()
		}

	case TickMsg:
		if m.scanner != nil && m.state == StateScanning {
			m.collectLogs()
			read, total := m.scanner.GetProgress()
			var percent float64
			if total > 0 {
				percent = float64(read) / float64(total)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateReport:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// collectLogs moves buffered scan events into the visible log.
func (m *Model) collectLogs() {
	if m.events == nil {
		return
	}
	for _, entry := range m.events.drain() {
		if entry.Level == scan.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, entry)
	}
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startScan loads the directory in the background.
func (m Model) startScan() tea.Cmd {
	ctx, scanner, id := m.ctx, m.scanner, m.scanID
	dir := strings.TrimSpace(m.textInput.Value())
	return func() tea.Msg {
		lib, summary, err := scanner.Load(ctx, dir)
		return ScanDoneMsg{ScanID: id, Library: lib, Summary: summary, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♫ Music Catalog"))
	b.WriteString("\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateReport:
		b.WriteString(m.viewReport())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Music directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	meanCheck := "[ ]"
	if m.mean {
		meanCheck = "[x]"
	}
	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Arithmetic mean averages (tab)\n", meanCheck))
	b.WriteString(fmt.Sprintf("  %s Verbose/debug output (shift+tab)\n", verboseCheck))

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading tags..."))
	b.WriteString("\n\n")

	if m.scanner != nil {
		read, total := m.scanner.GetProgress()
		var percent float64
		if total > 0 {
			percent = float64(read) / float64(total)
		}
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Files: %d/%d", read, total)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewReport() string {
	var b strings.Builder

	if m.summary != nil {
		b.WriteString(successStyle.Render(fmt.Sprintf(
			"%d songs in %d albums from %d files (%d skipped, %d duplicates)",
			m.summary.Songs, m.summary.Albums, m.summary.Files, m.summary.Skipped, m.summary.Duplicates,
		)))
		b.WriteString("\n")
	}
	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s\n\n", m.err.Error()))
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case scan.LevelError:
			style = errorStyle
			prefix = "✗"
		case scan.LevelWarning:
			style = warningStyle
			prefix = "!"
		case scan.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case scan.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • tab: mean • shift+tab: verbose • esc: quit"
	case StateScanning:
		return "esc: cancel"
	case StateReport:
		return "↑/↓: scroll • r: new scan • q: quit"
	case StateError:
		return "r: new scan • q: quit"
	}
	return ""
}

// renderReport renders a report with the TUI styles.
func renderReport(r *report.Report) string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Albums (%s average)", r.Mode)))
	b.WriteString("\n")
	for _, a := range r.Albums {
		avg := "-"
		if a.HasAverage {
			avg = report.FormatDuration(a.Average)
		}
		b.WriteString(albumStyle.Render(fmt.Sprintf("  ♪ %s", a.Name)))
		b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d) %d songs, avg %s", a.Year, a.Songs, avg)))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("  no album: %d songs", r.NoAlbumSongs)))
	b.WriteString("\n\n")

	longestSong, longestAlbum := "(none)", "(none)"
	if r.HasLongestSong {
		longestSong = r.LongestSong
	}
	if r.HasLongestAlbum {
		longestAlbum = r.LongestAlbum
	}
	b.WriteString(infoStyle.Render("Longest song:  " + longestSong))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render("Longest album: " + longestAlbum))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Albums by year"))
	b.WriteString("\n")
	for _, year := range r.Years() {
		b.WriteString(fmt.Sprintf("  %d: %s\n", year, strings.Join(r.AlbumsByYear[year], ", ")))
	}
	b.WriteString("\n")

	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Songs (%d)", len(r.SongNames))))
	b.WriteString("\n")
	for _, name := range r.SongNames {
		b.WriteString("  " + name + "\n")
	}

	return b.String()
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
