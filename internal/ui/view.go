package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wellmind/internal/pet"
	"wellmind/internal/rewards"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	faint   lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7FD1AE")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7FD1AE")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7FD1AE")).
		Width(44),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7FD1AE")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	faint: lipgloss.NewStyle().
		Faint(true),
}

var skinEmoji = map[pet.Skin]string{
	pet.SkinDefault: "🐱",
	pet.SkinGolden:  "🦁",
	pet.SkinRainbow: "🦄",
	pet.SkinNinja:   "🐈‍⬛",
	pet.SkinAngel:   "😇",
	pet.SkinDevil:   "😈",
}

var accessoryEmoji = map[pet.Accessory]string{
	pet.AccessoryHat:     "🎩",
	pet.AccessoryGlasses: "🕶️",
	pet.AccessoryBowtie:  "🎀",
	pet.AccessoryCrown:   "👑",
	pet.AccessoryScarf:   "🧣",
}

// companionEmoji renders the companion with its skin and accessory.
func companionEmoji(c pet.Companion) string {
	emoji, ok := skinEmoji[c.Skin]
	if !ok {
		emoji = skinEmoji[pet.SkinDefault]
	}
	return emoji + accessoryEmoji[c.Accessory]
}

var mainMenu = []string{
	MenuCheckIn: "Check in",
	MenuFeed:    "Feed",
	MenuPlay:    "Play",
	MenuClean:   "Clean",
	MenuSleep:   "Sleep",
	MenuBreathe: "Breathe",
	MenuBonus:   "Daily bonus",
	MenuPlan:    "Weekly plan",
	MenuShop:    "Shop",
	MenuQuit:    "Quit",
}

var pickerTitles = map[Screen]string{
	ScreenEmotion: "How are you feeling?",
	ScreenFood:    "Pick a food",
	ScreenGame:    "Pick a game",
	ScreenShop:    "Shop",
	ScreenPlan:    "This week's plan",
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Take care of yourself!\n"
	}
	if m.Screen == ScreenBreathe {
		return m.Breathe.View()
	}

	// Show animation if one is active
	if m.Animation.Type != AnimNone {
		return m.renderAnimation()
	}

	sections := []string{
		m.renderTitle(),
		"",
		m.renderStats(),
		"",
		m.renderStatus(),
		m.renderWellbeing(),
	}

	if msg := m.activeMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}

	helpText := "Use arrows to move • enter to select • q to quit"
	body := m.renderMenu()
	if m.Screen != ScreenMain {
		body = m.renderPicker()
		helpText = "arrows to move • enter to select • esc to go back"
		if m.Screen == ScreenPlan {
			helpText = "enter to complete • g for a new plan • esc to go back"
		}
	}

	sections = append(sections,
		"",
		body,
		"",
		gameStyles.faint.Render(helpText),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) activeMessage() string {
	if m.Message != "" && m.Clock.Now().Before(m.MessageExpires) {
		return m.Message
	}
	return ""
}

func (m Model) renderTitle() string {
	emoji := companionEmoji(m.State.Companion)
	return gameStyles.title.Render(emoji + " " + m.State.Companion.Name + " " + emoji)
}

func (m Model) renderStats() string {
	c := m.State.Companion
	stats := []struct {
		name, value string
	}{
		{"Level", fmt.Sprintf("%d (%d/%d xp)", c.Level, c.Experience, c.NextLevelAt())},
		{"Happiness", fmt.Sprintf("%d%%", c.Happiness)},
		{"Energy", fmt.Sprintf("%d%%", c.Energy)},
		{"Hunger", fmt.Sprintf("%d%%", c.Hunger)},
		{"Clean", fmt.Sprintf("%d%%", c.Cleanliness)},
		{"Health", fmt.Sprintf("%d%%", c.Health)},
		{"Coins", fmt.Sprintf("%d 🪙", m.State.Rewards.Coins)},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	return gameStyles.status.Render(fmt.Sprintf("Status: %s", pet.GetStatusWithLabel(m.State.Companion)))
}

// renderWellbeing shows the user's side: today's mood, streak, forecast
// and badges.
func (m Model) renderWellbeing() string {
	now := m.Clock.Now()
	today := "not yet"
	if entry, ok := m.State.Journal.Today(now); ok {
		today = entry.Emotion.Emoji() + " " + string(entry.Emotion)
	}

	lines := []string{
		fmt.Sprintf("Today:     %s", today),
		fmt.Sprintf("Streak:    %d days • %d check-ins", m.State.Journal.Streak.Current, m.State.Journal.Count()),
	}

	if p := m.State.Prediction; p != nil {
		lines = append(lines, fmt.Sprintf("Tomorrow:  %s (%d%%)", p.Mood, p.Confidence), "  "+p.Suggestion)
	}

	if len(m.State.Rewards.Badges) > 0 {
		var icons []string
		for _, b := range m.State.Rewards.Badges {
			if info, ok := rewards.Info(b); ok {
				icons = append(icons, info.Icon)
			}
		}
		lines = append(lines, "Badges:    "+strings.Join(icons, " "))
	}

	return gameStyles.status.Render(strings.Join(lines, "\n"))
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range mainMenu {
		if i == MenuSleep && m.State.Companion.Sleeping {
			choice = "Wake"
		}
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, choice))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderPicker() string {
	opts := m.PickerOptions()
	if len(opts) == 0 {
		return gameStyles.menuBox.Render("Nothing here yet")
	}

	menuItems := []string{gameStyles.menu.Render(pickerTitles[m.Screen]), ""}
	for i, opt := range opts {
		cursor := " "
		if m.PickerChoice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, fmt.Sprintf("%s %s", cursor, opt))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation() string {
	frame := m.Animation.View()

	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(1, 2)

	sections := []string{
		m.renderTitle(),
		"",
		animStyle.Render(frame),
	}

	if msg := m.activeMessage(); msg != "" {
		sections = append(sections, "", gameStyles.status.Render(msg))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
