package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/scentry/internal/scent"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateHome:
		content = m.viewHome()
	case StateLibrary:
		content = docStyle.Render(m.libraryList.View())
	case StateWishlist:
		content = docStyle.Render(m.wishlistList.View())
	case StateWeek:
		content = docStyle.Render(m.weekModel.View())
	case StateAddFragrance, StateAddWish, StateAssign:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.statusMsg != "" {
		sections = append(sections, "  "+m.statusMsg)
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	active, inactive := tabStyles(m.accent)

	var tabs []string
	for i, title := range []string{"Home", "Library", "Wishlist", "Week"} {
		state := SessionState(i)
		current := m.state == state
		// Forms and confirms render under their originating tab
		if !current && m.state >= tabCount {
			current = m.previousState == state
		}
		if current {
			tabs = append(tabs, active.Render(title))
		} else {
			tabs = append(tabs, inactive.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHome() string {
	var b strings.Builder

	b.WriteString("\n  scentry\n\n")
	b.WriteString(fmt.Sprintf("  Library:  %d fragrance(s)\n", len(m.app.Library())))
	b.WriteString(fmt.Sprintf("  Wishlist: %d entr(ies)\n", len(m.app.Wishlist())))
	b.WriteString(fmt.Sprintf("  Planned:  %d day(s)\n", m.app.PlannedCount()))

	if name, ok := m.app.TodaysFragrance(time.Now()); ok {
		b.WriteString(fmt.Sprintf("\n  Today: %s %s\n", scent.VibeIcon(name), name))
	} else {
		b.WriteString("\n  Nothing planned for today\n")
	}

	insight := m.app.Insight()
	if insight.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", insight.Suggestion))
	}

	if m.validationWarning != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", m.validationWarning))
	}

	b.WriteString("\n  t: cycle theme\n")
	return b.String()
}

func (m Model) viewConfirmDelete() string {
	target := "library"
	if m.deleteWish {
		target = "wishlist"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Remove %q from your %s?", m.deleteName, target)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
