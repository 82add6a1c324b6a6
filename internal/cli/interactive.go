package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxforge/studio/internal/persona"
	"github.com/voxforge/studio/internal/studio"
)

// The interactive setup is a small sequential picker: writing mode, then
// persona (skipped in auto mode), then duration and platform. Results land
// in the generate flags.

type pickerStep int

const (
	stepMode pickerStep = iota
	stepPersona
	stepDuration
	stepPlatform
	stepDone
)

type pickerModel struct {
	step      pickerStep
	cursor    int
	personas  []persona.Profile
	cancelled bool

	mode     string
	creator  string
	duration string
	platform string
}

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#7D56F4")).
				MarginBottom(1)

	pickerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true).
				PaddingLeft(2)

	pickerOptionStyle = lipgloss.NewStyle().
				PaddingLeft(4)

	pickerHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

var modeOptions = []struct {
	value string
	label string
}{
	{"manual", "Manual - pick a persona yourself"},
	{"auto", "Auto Match - let the engine pick for the topic"},
	{"blend", "Blend - primary voice with secondary influences"},
}

func runInteractiveSetup() error {
	m := pickerModel{
		personas: persona.DefaultCatalog(),
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("interactive setup: %w", err)
	}
	result := final.(pickerModel)
	if result.cancelled {
		return fmt.Errorf("setup cancelled")
	}

	flagMode = result.mode
	flagCreator = result.creator
	flagDuration = result.duration
	flagPlatform = result.platform
	return nil
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) options() []string {
	switch m.step {
	case stepMode:
		out := make([]string, len(modeOptions))
		for i, o := range modeOptions {
			out[i] = o.label
		}
		return out
	case stepPersona:
		out := make([]string, len(m.personas))
		for i, p := range m.personas {
			out[i] = fmt.Sprintf("%s - %s", p.Name, p.Bio.Tagline)
		}
		return out
	case stepDuration:
		return studio.Durations
	default:
		return studio.Platforms
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.options())-1 {
			m.cursor++
		}

	case "enter":
		switch m.step {
		case stepMode:
			m.mode = modeOptions[m.cursor].value
			if m.mode == "auto" {
				// Auto mode picks its own persona.
				m.step = stepDuration
			} else {
				m.step = stepPersona
			}
		case stepPersona:
			m.creator = m.personas[m.cursor].ID
			m.step = stepDuration
		case stepDuration:
			m.duration = studio.Durations[m.cursor]
			m.step = stepPlatform
		case stepPlatform:
			m.platform = studio.Platforms[m.cursor]
			m.step = stepDone
			return m, tea.Quit
		}
		m.cursor = 0
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.step == stepDone || m.cancelled {
		return ""
	}

	titles := map[pickerStep]string{
		stepMode:     "Writing mode",
		stepPersona:  "Creator persona",
		stepDuration: "Target duration",
		stepPlatform: "Target platform",
	}

	s := pickerTitleStyle.Render(titles[m.step]) + "\n"
	for i, opt := range m.options() {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+opt) + "\n"
		} else {
			s += pickerOptionStyle.Render(opt) + "\n"
		}
	}
	s += pickerHelpStyle.Render("up/down to move, enter to select, q to cancel")
	return s
}
