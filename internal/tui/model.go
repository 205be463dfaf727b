package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/scentry/internal/app"
	"github.com/julianstephens/scentry/internal/tui/components/library"
	"github.com/julianstephens/scentry/internal/tui/components/week"
	"github.com/julianstephens/scentry/internal/tui/components/wishlist"
	"github.com/julianstephens/scentry/internal/validation"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateLibrary
	StateWishlist
	StateWeek
	StateAddFragrance
	StateAddWish
	StateAssign
	StateConfirmDelete
)

// tabCount is the number of cycle-able tabs; form and confirm states sit
// outside the tab rotation.
const tabCount = 4

type Model struct {
	app           *app.App
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	libraryList   library.Model
	wishlistList  wishlist.Model
	weekModel     week.Model

	form       *huh.Form
	addName    string
	assignDay  string
	assignName string

	deleteIndex int
	deleteName  string
	deleteWish  bool

	accent            lipgloss.Color
	statusMsg         string
	validationWarning string
	quitting          bool
	width             int
	height            int
}

func NewModel(a *app.App) Model {
	profile := a.Profile()
	accent := accentColor(profile.Theme)

	m := Model{
		app:          a,
		state:        StateHome,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		libraryList:  library.New(a.Library(), 0, 0),
		wishlistList: wishlist.New(a.Wishlist(), 0, 0),
		weekModel:    week.New(time.Now(), a.Planner(), accent),
		accent:       accent,
	}

	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateLibrary, StateWishlist:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateWeek:
		keys = append(keys, m.keys.Enter)
	case StateHome:
		keys = append(keys, m.keys.Theme)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Theme}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateLibrary, StateWishlist:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// updateValidationStatus checks stored collections for inconsistencies and
// caches a one-line warning for the home tab.
func (m *Model) updateValidationStatus() {
	state := validation.State{
		Library:  m.app.Library(),
		Wishlist: m.app.Wishlist(),
		Planner:  m.app.Planner(),
		Recent:   m.app.Recent(),
	}
	result := validation.New().Validate(state)
	if result.HasConflicts() {
		m.validationWarning = fmt.Sprintf("⚠ %d consistency warning(s), run 'scentry validate'", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

func (m *Model) refresh() {
	m.libraryList.SetNames(m.app.Library())
	m.wishlistList.SetEntries(m.app.Wishlist())
	m.weekModel.SetAssigned(m.app.Planner())
	m.updateValidationStatus()
}

// addFragranceForm builds the single-field form used on the library tab.
func (m *Model) addFragranceForm() *huh.Form {
	m.addName = ""
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Fragrance name").
			Value(&m.addName),
	))
}

// addWishForm offers tracked fragrances not yet wished for, plus free text.
func (m *Model) addWishForm() *huh.Form {
	m.addName = ""
	options := m.app.AvailableWishOptions()

	if len(options) == 0 {
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Fragrance name").
				Value(&m.addName),
		))
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, name := range options {
		huhOptions[i] = huh.NewOption(name, name)
	}
	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Add to wishlist").
			Options(huhOptions...).
			Value(&m.addName),
	))
}

// assignForm selects a library fragrance for the chosen day.
func (m *Model) assignForm(dayKey string) *huh.Form {
	m.assignDay = dayKey
	m.assignName = ""

	names := m.app.Library()
	options := make([]huh.Option[string], len(names))
	for i, name := range names {
		options[i] = huh.NewOption(name, name)
	}

	return huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(fmt.Sprintf("Fragrance for %s", dayKey)).
			Options(options...).
			Value(&m.assignName),
	))
}
