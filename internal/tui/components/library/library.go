package library

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/scentry/internal/scent"
)

type AddMsg struct{}

type DeleteMsg struct {
	Index int
	Name  string
}

type Item struct {
	Name  string
	Index int
}

func (i Item) Title() string {
	return fmt.Sprintf("%s %s", scent.VibeIcon(i.Name), i.Name)
}
func (i Item) Description() string { return string(scent.Classify(i.Name)) }
func (i Item) FilterValue() string { return i.Name }

type KeyMap struct {
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(names []string, width, height int) Model {
	l := list.New(toItems(names), list.NewDefaultDelegate(), width, height)
	l.Title = "Library"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(names []string) []list.Item {
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Index: i}
	}
	return items
}

func (m *Model) SetNames(names []string) {
	m.list.SetItems(toItems(names))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteMsg{Index: i.Index, Name: i.Name} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No fragrances yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
