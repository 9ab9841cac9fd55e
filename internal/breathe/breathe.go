// Package breathe runs a paced breathing exercise in which the companion
// follows a breath marker that rises while inhaling and sinks while
// exhaling.
package breathe

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellmind/internal/pet"
)

const (
	tickInterval   = 70 * time.Millisecond
	minVisibleRows = 6

	PhaseDuration = 4 * time.Second
	Duration      = 60 * time.Second
)

// Phase is one part of a breath cycle.
type Phase int

const (
	Inhale Phase = iota
	Hold
	Exhale
)

func (p Phase) String() string {
	switch p {
	case Inhale:
		return "Breathe in..."
	case Hold:
		return "Hold..."
	default:
		return "Breathe out..."
	}
}

// Marker is what the companion follows across the screen.
type Marker struct {
	Emoji string
	Name  string
}

// Markers are the available breath markers.
var Markers = map[string]Marker{
	"bubble": {Emoji: "🫧", Name: "bubble"},
	"leaf":   {Emoji: "🍃", Name: "leaf"},
	"cloud":  {Emoji: "☁️", Name: "cloud"},
}

// DoneMsg reports the end of an embedded exercise.
type DoneMsg struct {
	Completed bool
}

// Model is the Bubble Tea model for one exercise.
type Model struct {
	Companion  pet.Companion
	Marker     Marker
	TermWidth  int
	TermHeight int
	PetPosX    int
	PetPosY    int
	MarkerPosX int
	MarkerPosY int
	Frame      int
	Done       bool
	Completed  bool
	// Standalone quits the program when the exercise ends instead of
	// emitting a DoneMsg to a parent model.
	Standalone bool
}

type tickMsg time.Time

// New returns an exercise for c.
func New(c pet.Companion) Model {
	return Model{
		Companion:  c,
		Marker:     Markers["bubble"],
		MarkerPosX: 5,
	}
}

// Run starts a full-screen exercise and reports whether it was completed.
func Run(c pet.Companion) (bool, error) {
	m := New(c)
	m.Standalone = true

	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("breathing exercise: %w", err)
	}
	return final.(Model).Completed, nil
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Elapsed returns the exercise time covered so far.
func (m Model) Elapsed() time.Duration {
	return time.Duration(m.Frame) * tickInterval
}

// Phase returns the current breath phase.
func (m Model) Phase() Phase {
	return Phase((m.Elapsed() / PhaseDuration) % 3)
}

// Remaining returns the whole seconds left in the exercise.
func (m Model) Remaining() int {
	left := Duration - m.Elapsed()
	if left < 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.Done {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.finish(false)

	case tea.WindowSizeMsg:
		m.TermWidth = msg.Width
		m.TermHeight = msg.Height
		m.clampPositions()
		return m, nil

	case tickMsg:
		m.Frame++
		if m.Elapsed() >= Duration {
			return m.finish(true)
		}
		if m.TermWidth == 0 || m.TermHeight == 0 {
			return m, tick()
		}

		m.MarkerPosX = int(float64(m.maxX()) * float64(m.Elapsed()) / float64(Duration))
		m.MarkerPosY = m.markerRow()

		// The companion trails the marker
		if m.Frame%2 == 0 {
			distX := m.MarkerPosX - m.PetPosX
			distY := m.MarkerPosY - m.PetPosY

			if distX > 3 {
				m.PetPosX++
			}
			if distY > 0 {
				m.PetPosY++
			} else if distY < 0 {
				m.PetPosY--
			}
		}
		m.clampPositions()
		return m, tick()
	}

	return m, nil
}

func (m Model) finish(completed bool) (tea.Model, tea.Cmd) {
	m.Done = true
	m.Completed = completed
	if m.Standalone {
		return m, tea.Quit
	}
	return m, func() tea.Msg { return DoneMsg{Completed: completed} }
}

// markerRow places the marker by breath: rising while inhaling, held at
// the top, sinking while exhaling.
func (m Model) markerRow() int {
	rows := m.visibleRows()
	if rows < 2 {
		return 0
	}
	bottom := rows - 2
	progress := float64(m.Elapsed()%PhaseDuration) / float64(PhaseDuration)

	switch m.Phase() {
	case Inhale:
		return bottom - int(progress*float64(bottom))
	case Hold:
		return 0
	default:
		return int(progress * float64(bottom))
	}
}

// companionEmoji picks the companion's face from its stats and how close
// it is to the marker.
func companionEmoji(c pet.Companion, distX, distY int) string {
	if absInt(distX) <= 2 && absInt(distY) <= 1 {
		return "😌"
	}
	if c.Energy < 30 {
		return "😴"
	}
	if c.Happiness < 30 {
		return "😿"
	} else if c.Happiness > 80 {
		return "😸"
	}
	return "😺"
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// View implements tea.Model
func (m Model) View() string {
	if m.TermWidth == 0 || m.TermHeight == 0 {
		return "Initializing..."
	}

	rows := m.visibleRows()
	emoji := companionEmoji(m.Companion, m.MarkerPosX-m.PetPosX, m.MarkerPosY-m.PetPosY)

	grid := make([][]rune, rows-1)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", m.TermWidth))
	}
	place := func(x, y int, s string) {
		if y < 0 || y >= len(grid) || x < 0 || x >= m.TermWidth-2 {
			return
		}
		for i, r := range []rune(s) {
			if x+i < m.TermWidth {
				grid[y][x+i] = r
			}
		}
	}
	place(m.MarkerPosX, m.MarkerPosY, m.Marker.Emoji)
	place(m.PetPosX, m.PetPosY, emoji)

	var result strings.Builder
	for _, row := range grid {
		result.WriteString(string(row))
		result.WriteRune('\n')
	}
	result.WriteString(fmt.Sprintf("\n%s  %ds left with %s  (any key to stop)", m.Phase(), m.Remaining(), m.Companion.Name))

	return result.String()
}

func (m *Model) clampPositions() {
	rows := m.visibleRows()
	if rows < 1 {
		return
	}

	m.PetPosX = clampInt(m.PetPosX, 0, m.maxX())
	m.MarkerPosX = clampInt(m.MarkerPosX, 0, m.maxX())
	m.PetPosY = clampInt(m.PetPosY, 0, rows-2)
	m.MarkerPosY = clampInt(m.MarkerPosY, 0, rows-2)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m Model) visibleRows() int {
	if m.TermHeight <= 0 {
		return 0
	}
	rows := m.TermHeight - 2 // leave space for instruction
	if rows < minVisibleRows {
		rows = minVisibleRows
	}
	return rows
}

func (m Model) maxX() int {
	if m.TermWidth <= 2 {
		return 0
	}
	return m.TermWidth - 2
}
