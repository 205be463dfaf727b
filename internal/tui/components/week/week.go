package week

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/scentry/internal/app"
)

// AssignMsg asks the parent model to open the assignment form for a day.
type AssignMsg struct {
	DayKey string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Assign key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Assign: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter", "assign"),
		),
	}
}

type Model struct {
	days     []string
	assigned map[string]string
	todayKey string
	cursor   int
	keys     KeyMap

	cursorStyle lipgloss.Style
	todayStyle  lipgloss.Style
}

func New(today time.Time, assigned map[string]string, accent lipgloss.Color) Model {
	days := app.WeekDayKeys(today)
	todayKey := app.DayKey(today)

	cursor := 0
	for i, day := range days {
		if day == todayKey {
			cursor = i
			break
		}
	}

	return Model{
		days:        days,
		assigned:    assigned,
		todayKey:    todayKey,
		cursor:      cursor,
		keys:        DefaultKeyMap(),
		cursorStyle: lipgloss.NewStyle().Foreground(accent).Bold(true),
		todayStyle:  lipgloss.NewStyle().Underline(true),
	}
}

func (m *Model) SetAssigned(assigned map[string]string) {
	m.assigned = assigned
}

// SelectedDay returns the day key under the cursor.
func (m Model) SelectedDay() string {
	return m.days[m.cursor]
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.days)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Assign):
			day := m.days[m.cursor]
			return m, func() tea.Msg { return AssignMsg{DayKey: day} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	for i, day := range m.days {
		label := day
		if t, err := time.Parse("2006-01-02", day); err == nil {
			label = t.Format("Mon Jan 2")
		}

		name, ok := m.assigned[day]
		if !ok {
			name = "-"
		}

		line := fmt.Sprintf("%-12s %s", label, name)
		if day == m.todayKey {
			line = m.todayStyle.Render(line)
		}
		if i == m.cursor {
			line = m.cursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n  enter: assign a fragrance to the selected day")
	return b.String()
}
