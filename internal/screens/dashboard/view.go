package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/smahajan/codequarry/internal/curriculum"
	"github.com/smahajan/codequarry/internal/ui/components"
	"github.com/smahajan/codequarry/internal/ui/theme"
)

func (d *DashboardScreen) View(width, height int) string {
	if d.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(d.errMsg + "\n\nPress R to retry.")
	}
	if d.data == nil {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading your dashboard...")
	}

	var b strings.Builder
	b.WriteString(d.renderProfile(width))
	b.WriteString("\n\n")
	b.WriteString(d.renderPath(width, height))
	return b.String()
}

func (d *DashboardScreen) renderProfile(width int) string {
	p := d.data.Profile

	rank := p.SkillLevel
	if rank == "" {
		rank = "Unranked"
	}
	line := theme.Selected.Render(rank) +
		theme.Body.Render(fmt.Sprintf("   %d solved", p.ProblemsSolved))
	if !p.AssessmentCompleted {
		line += theme.Hint.Render("   Take the assessment to get placed.")
	}

	var bars []string
	barWidth := width - 30
	if barWidth > 40 {
		barWidth = 40
	}
	for _, topic := range orderedStrengths(p.TopicStrength) {
		bar := components.NewProgressBar(
			fmt.Sprintf("%-10s", topic.name), topic.strength, true, barWidth)
		bars = append(bars, bar.View())
	}

	content := line
	if len(bars) > 0 {
		content += "\n\n" + strings.Join(bars, "\n")
	}
	return theme.Card.Width(width - 6).Render(content)
}

func (d *DashboardScreen) renderPath(width, height int) string {
	var b strings.Builder
	idx := 0
	for _, topic := range d.data.LearningPath {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render("  " + topic.Name))
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + topic.Description))
		b.WriteString("\n")

		for _, problem := range topic.Problems {
			b.WriteString(d.renderProblem(problem, idx == d.cursor))
			b.WriteString("\n")
			idx++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DashboardScreen) renderProblem(p curriculum.Question, selected bool) string {
	marker := " "
	if desc, err := p.Difficulty.Display(); err == nil {
		marker = lipgloss.NewStyle().
			Foreground(lipgloss.Color(desc.Color)).
			Render(desc.Marker)
	}

	label := fmt.Sprintf("%s %s", marker, p.Title)
	if selected {
		return theme.Selected.Render("    ▸ " + label)
	}
	return theme.Unselected.Render("      " + label)
}

type topicStrength struct {
	name     string
	strength float64
}

// orderedStrengths returns topic strengths in the canonical diagnostic
// topic order, then any extras alphabetically.
func orderedStrengths(m map[string]float64) []topicStrength {
	if len(m) == 0 {
		return nil
	}
	canonical := []string{"Arrays", "Strings", "Loops"}
	var out []topicStrength
	seen := make(map[string]bool)
	for _, name := range canonical {
		if v, ok := m[name]; ok {
			out = append(out, topicStrength{name, v})
			seen[name] = true
		}
	}
	var extras []string
	for name := range m {
		if !seen[name] {
			extras = append(extras, name)
		}
	}
	sort.Strings(extras)
	for _, name := range extras {
		out = append(out, topicStrength{name, m[name]})
	}
	return out
}
