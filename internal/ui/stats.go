package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"wellmind/internal/engine"
	"wellmind/internal/pet"
)

// StatsModel is a simple Bubble Tea model for displaying stats
type StatsModel struct {
	State engine.State
}

// Init implements tea.Model
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			return m, tea.Quit
		}
	}
	return m, nil
}

func makeBar(value int) string {
	filled := value / 20
	bar := ""
	for i := 0; i < 5; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}

// View implements tea.Model
func (m StatsModel) View() string {
	c := m.State.Companion
	emoji := companionEmoji(c)

	mood := "–"
	if len(m.State.Journal.Entries) > 0 {
		last := m.State.Journal.Entries[0]
		mood = last.Emotion.Emoji() + " " + string(last.Emotion)
	}
	forecast := "–"
	if p := m.State.Prediction; p != nil {
		forecast = fmt.Sprintf("%s %s (%d%%)", p.Mood.Emoji(), p.Mood, p.Confidence)
	}

	var s strings.Builder
	s.WriteString("╔════════════════════════════════════╗\n")
	s.WriteString(fmt.Sprintf("║  %s %s %s                  ║\n", emoji, c.Name, emoji))
	s.WriteString("╠════════════════════════════════════╣\n")
	s.WriteString(fmt.Sprintf("║  Level:   %-24s ║\n", fmt.Sprintf("%d (%d/%d xp)", c.Level, c.Experience, c.NextLevelAt())))
	s.WriteString(fmt.Sprintf("║  Status:  %-24s ║\n", pet.GetStatus(c)))
	s.WriteString(fmt.Sprintf("║  Coins:   %-24d ║\n", m.State.Rewards.Coins))
	s.WriteString(fmt.Sprintf("║  Badges:  %-24d ║\n", len(m.State.Rewards.Badges)))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Happiness: [%s] %3d%%           ║\n", makeBar(c.Happiness), c.Happiness))
	s.WriteString(fmt.Sprintf("║  Energy:    [%s] %3d%%           ║\n", makeBar(c.Energy), c.Energy))
	s.WriteString(fmt.Sprintf("║  Hunger:    [%s] %3d%%           ║\n", makeBar(c.Hunger), c.Hunger))
	s.WriteString(fmt.Sprintf("║  Clean:     [%s] %3d%%           ║\n", makeBar(c.Cleanliness), c.Cleanliness))
	s.WriteString(fmt.Sprintf("║  Health:    [%s] %3d%%           ║\n", makeBar(c.Health), c.Health))
	s.WriteString("║                                    ║\n")
	s.WriteString(fmt.Sprintf("║  Last mood: %-23s║\n", mood))
	s.WriteString(fmt.Sprintf("║  Streak:    %-23s║\n", fmt.Sprintf("%d days", m.State.Journal.Streak.Current)))
	s.WriteString(fmt.Sprintf("║  Tomorrow:  %-23s║\n", forecast))
	s.WriteString("╚════════════════════════════════════╝\n")
	s.WriteString("\nPress ESC, click, or any key to close...")

	return s.String()
}

// DisplayStats shows the stats display
func DisplayStats(s engine.State) error {
	program := tea.NewProgram(StatsModel{State: s}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("stats display: %w", err)
	}
	return nil
}
