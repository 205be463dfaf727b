package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/scentry/internal/tui/components/library"
	"github.com/julianstephens/scentry/internal/tui/components/week"
	"github.com/julianstephens/scentry/internal/tui/components/wishlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.libraryList.SetSize(msg.Width-h, msg.Height-v-4)
		m.wishlistList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case library.AddMsg:
		m.previousState = m.state
		m.form = m.addFragranceForm()
		m.state = StateAddFragrance
		return m, m.form.Init()

	case library.DeleteMsg:
		m.deleteIndex = msg.Index
		m.deleteName = msg.Name
		m.deleteWish = false
		m.state = StateConfirmDelete
		return m, nil

	case wishlist.AddMsg:
		m.previousState = m.state
		m.form = m.addWishForm()
		m.state = StateAddWish
		return m, m.form.Init()

	case wishlist.DeleteMsg:
		m.deleteIndex = msg.Index
		m.deleteName = msg.Name
		m.deleteWish = true
		m.state = StateConfirmDelete
		return m, nil

	case week.AssignMsg:
		if len(m.app.Library()) == 0 {
			m.statusMsg = "Add a fragrance before planning your week"
			return m, nil
		}
		m.previousState = m.state
		m.form = m.assignForm(msg.DayKey)
		m.state = StateAssign
		return m, m.form.Init()
	}

	switch m.state {
	case StateAddFragrance, StateAddWish, StateAssign:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.statusMsg = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			if m.state == StateHome {
				if next, err := m.app.CycleTheme(); err == nil {
					m.accent = accentColor(next)
					m.statusMsg = fmt.Sprintf("Theme: %s", next)
				}
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateLibrary:
		m.libraryList, cmd = m.libraryList.Update(msg)
	case StateWishlist:
		m.wishlistList, cmd = m.wishlistList.Update(msg)
	case StateWeek:
		m.weekModel, cmd = m.weekModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateAddFragrance:
			if stored, err := m.app.AddFragrance(m.addName); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Added %s", stored)
			}
		case StateAddWish:
			if entry, err := m.app.AddWish(m.addName); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Wishlisted %s", entry.Name)
			}
		case StateAssign:
			if err := m.app.Assign(m.assignDay, m.assignName); err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Planned %s for %s", m.assignName, m.assignDay)
			}
		}
		m.refresh()
		m.state = m.previousState
		m.form = nil
	case huh.StateAborted:
		m.state = m.previousState
		m.form = nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			var err error
			if m.deleteWish {
				_, err = m.app.RemoveWish(m.deleteIndex)
			} else {
				_, err = m.app.RemoveFragrance(m.deleteIndex)
			}
			if err != nil {
				m.statusMsg = err.Error()
			} else {
				m.statusMsg = fmt.Sprintf("Removed %s", m.deleteName)
			}
			m.refresh()
			if m.deleteWish {
				m.state = StateWishlist
			} else {
				m.state = StateLibrary
			}
		case "n", "N", "esc":
			if m.deleteWish {
				m.state = StateWishlist
			} else {
				m.state = StateLibrary
			}
		}
	}
	return m, nil
}
