package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/veskimagi/airobot/internal/thermostat"
)

// StatusReader is the subset of the thermostat client the watch screen
// needs.
type StatusReader interface {
	GetStatuses(ctx context.Context) (*thermostat.ThermostatStatus, error)
	GetSettings(ctx context.Context) (*thermostat.ThermostatSettings, error)
}

// Messages
type readingMsg struct {
	status   *thermostat.ThermostatStatus
	settings *thermostat.ThermostatSettings
	err      error
}

type tickMsg time.Time

// watchKeyMap defines key bindings for the watch screen
type watchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k watchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k watchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Quit},
	}
}

// WatchModel is the live status dashboard. It polls the thermostat at a
// fixed interval and renders the latest readings.
type WatchModel struct {
	client   StatusReader
	label    string
	interval time.Duration

	status      *thermostat.ThermostatStatus
	settings    *thermostat.ThermostatSettings
	lastError   error
	lastUpdated time.Time
	fetching    bool

	// UI state
	Width  int
	Height int

	spinner spinner.Model
	help    help.Model
	keys    watchKeyMap
}

// NewWatchModel creates a watch dashboard for the given thermostat.
// The label is shown in the header (nickname or device ID). A
// non-positive interval falls back to the device polling interval.
func NewWatchModel(client StatusReader, label string, interval time.Duration) WatchModel {
	if interval <= 0 {
		interval = thermostat.PollingInterval
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	return WatchModel{
		client:   client,
		label:    label,
		interval: interval,
		fetching: true,
		spinner:  s,
		help:     help.New(),
		keys: watchKeyMap{
			Refresh: key.NewBinding(
				key.WithKeys("r"),
				key.WithHelp("r", "refresh"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "esc", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
	}
}

// Init starts the spinner and the first fetch
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// Update handles messages for the watch screen
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if !m.fetching {
				m.fetching = true
				return m, m.fetchCmd()
			}
		}
		return m, nil

	case readingMsg:
		m.fetching = false
		if msg.err != nil {
			m.lastError = msg.err
		} else {
			m.lastError = nil
			m.status = msg.status
			m.settings = msg.settings
			m.lastUpdated = time.Now()
		}
		return m, m.scheduleTick()

	case tickMsg:
		if !m.fetching {
			m.fetching = true
			return m, m.fetchCmd()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// fetchCmd fetches statuses and settings off the UI goroutine
func (m WatchModel) fetchCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), thermostat.DefaultTimeout)
		defer cancel()

		status, err := client.GetStatuses(ctx)
		if err != nil {
			return readingMsg{err: err}
		}
		settings, err := client.GetSettings(ctx)
		if err != nil {
			return readingMsg{err: err}
		}
		return readingMsg{status: status, settings: settings}
	}
}

// scheduleTick schedules the next poll
func (m WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the watch screen
func (m WatchModel) View() string {
	content := m.buildContent()
	helpText := m.help.View(m.keys)
	return RenderApplicationContainer(content, m.label, helpText, m.Width, m.Height)
}

// buildContent builds the dashboard body
func (m WatchModel) buildContent() string {
	var b strings.Builder

	if m.status == nil && m.lastError == nil {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Connecting to thermostat...\n")
		return b.String()
	}

	if m.lastError != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("✗ %v", m.lastError)))
		b.WriteString("\n")
		if m.status != nil {
			b.WriteString(LabelStyle.Render(fmt.Sprintf("Showing last reading from %s", m.lastUpdated.Format("15:04:05"))))
			b.WriteString("\n")
		}
		if m.status == nil {
			return b.String()
		}
	}

	b.WriteString(m.renderReadings())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// renderReadings renders the sensor reading box
func (m WatchModel) renderReadings() string {
	status := m.status
	var rows []string

	rows = append(rows, readingRow("Air temperature", formatOptionalFloat(status.TempAir, "%.1f°C")))
	rows = append(rows, readingRow("Humidity", formatOptionalFloat(status.HumAir, "%.1f%%")))

	if status.HasFloorSensor() {
		rows = append(rows, readingRow("Floor temperature", formatOptionalFloat(status.TempFloor, "%.1f°C")))
	}
	if status.HasCO2Sensor() {
		rows = append(rows, readingRow("CO2", formatOptionalInt(status.CO2, "%d ppm")))
		rows = append(rows, readingRow("Air quality index", formatOptionalInt(status.AQI, "%d / 5")))
	}

	rows = append(rows, readingRow("Setpoint", formatOptionalFloat(status.SetpointTemp, "%.1f°C")))

	if m.settings != nil {
		rows = append(rows, readingRow("Mode", formatMode(m.settings)))
		rows = append(rows, readingRow("Hysteresis band", fmt.Sprintf("%.1f°C", m.settings.HysteresisBand)))
		if m.settings.DeviceName != "" {
			rows = append(rows, readingRow("Device name", m.settings.DeviceName))
		}
	}

	return InfoBoxStyle.Render(strings.Join(rows, "\n"))
}

// renderStatusLine renders the heating / flags / freshness line
func (m WatchModel) renderStatusLine() string {
	status := m.status
	var parts []string

	if status.IsHeating() {
		parts = append(parts, HeatingStyle.Render("● HEATING"))
	} else {
		parts = append(parts, IdleStyle.Render("○ idle"))
	}

	if status.StatusFlags.WindowOpenDetected {
		parts = append(parts, HeatingStyle.Render("⚠ window open"))
	}
	if status.HasError() {
		parts = append(parts, ErrorStyle.UnsetPadding().UnsetBorderStyle().Render(fmt.Sprintf("⚠ device error code %d", status.Errors)))
	}

	if m.fetching {
		parts = append(parts, m.spinner.View()+" refreshing")
	} else if !m.lastUpdated.IsZero() {
		parts = append(parts, LabelStyle.Render("updated "+m.lastUpdated.Format("15:04:05")))
	}

	return strings.Join(parts, "   ")
}

func readingRow(label, value string) string {
	return fmt.Sprintf("%s %s",
		LabelStyle.Width(20).Render(label),
		ValueStyle.Render(value))
}

func formatOptionalFloat(v *float64, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func formatOptionalInt(v *int, format string) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf(format, *v)
}

func formatMode(settings *thermostat.ThermostatSettings) string {
	switch {
	case settings.IsHomeMode():
		return "HOME"
	case settings.IsAwayMode():
		return "AWAY"
	default:
		return fmt.Sprintf("unknown (%d)", settings.Mode)
	}
}

// Run starts the watch dashboard in the alternate screen buffer and
// blocks until the user quits.
func Run(client StatusReader, label string, interval time.Duration) error {
	program := tea.NewProgram(NewWatchModel(client, label, interval), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
