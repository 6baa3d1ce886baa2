package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const progressBarWidth = 40

//nolint:gochecknoglobals // Shared lipgloss styles, the idiomatic pattern for static styling
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	phaseStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	counterStyle  = lipgloss.NewStyle().PaddingLeft(2)
	activityStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("245"))
)

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("sync-names"))
	b.WriteString("\n\n")

	b.WriteString(m.phaseLine())
	b.WriteString("\n")

	b.WriteString(counterStyle.Render(fmt.Sprintf(
		"%d processed · %d renamed · %d copied · %d collisions",
		m.stats.Processed, m.stats.Renamed, m.stats.Copied, m.stats.Collisions,
	)))
	b.WriteString("\n")

	if m.phase >= PhaseResolving && m.stats.Collisions > 0 {
		percent := float64(m.resolved) / float64(m.stats.Collisions)
		b.WriteString(counterStyle.Render(m.bar.ViewAs(percent)))
		b.WriteString("\n")
	}

	if len(m.activity) > 0 {
		b.WriteString("\n")

		for _, line := range m.activity {
			b.WriteString(activityStyle.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("press q to quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *Model) phaseLine() string {
	switch m.phase {
	case PhaseWalking:
		dir := m.currentDir
		if dir == "" {
			dir = "…"
		}

		return m.spin.View() + phaseStyle.Render("matching ") + dimStyle.Render(dir)
	case PhaseResolving:
		return m.spin.View() + phaseStyle.Render(fmt.Sprintf(
			"resolving collisions (%d/%d)", m.resolved, m.stats.Collisions,
		))
	case PhaseDone:
		return phaseStyle.Render(fmt.Sprintf(
			"done: %d renamed, %d copied, %d collisions (%d renamed, %d copied as fallback)",
			m.stats.Renamed, m.stats.Copied, m.stats.Collisions,
			m.stats.ResolvedRenames, m.stats.ResolvedCopies,
		))
	case PhaseError:
		return errorStyle.Render("failed: " + m.err.Error())
	default:
		return ""
	}
}
