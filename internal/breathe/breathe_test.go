package breathe

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellmind/internal/pet"
)

func sized(m Model) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func framesFor(d time.Duration) int {
	return int(d / tickInterval)
}

func TestMarkers(t *testing.T) {
	for name, marker := range Markers {
		if marker.Name != name {
			t.Errorf("Name = %q, want %q", marker.Name, name)
		}
		if marker.Emoji == "" {
			t.Errorf("marker %q has no emoji", name)
		}
	}
}

func TestModel_Init(t *testing.T) {
	if cmd := New(pet.New(time.Now())).Init(); cmd == nil {
		t.Error("Init() returned nil command, expected tick")
	}
}

func TestModel_Update_WindowSizeMsg(t *testing.T) {
	m := sized(New(pet.Companion{}))
	if m.TermWidth != 80 || m.TermHeight != 24 {
		t.Errorf("size = %dx%d, want 80x24", m.TermWidth, m.TermHeight)
	}
}

func TestPhases(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    Phase
	}{
		{0, Inhale},
		{3 * time.Second, Inhale},
		{5 * time.Second, Hold},
		{9 * time.Second, Exhale},
		{13 * time.Second, Inhale},
	}

	for _, tt := range tests {
		t.Run(tt.elapsed.String(), func(t *testing.T) {
			m := Model{Frame: framesFor(tt.elapsed)}
			if got := m.Phase(); got != tt.want {
				t.Errorf("Phase() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarkerRisesAndSinks(t *testing.T) {
	m := sized(New(pet.Companion{}))
	bottom := m.visibleRows() - 2

	m.Frame = 0
	if got := m.markerRow(); got != bottom {
		t.Errorf("start of inhale row = %d, want bottom %d", got, bottom)
	}
	m.Frame = framesFor(5 * time.Second)
	if got := m.markerRow(); got != 0 {
		t.Errorf("hold row = %d, want top", got)
	}
	m.Frame = framesFor(11*time.Second + 900*time.Millisecond)
	if got := m.markerRow(); got < bottom-2 {
		t.Errorf("end of exhale row = %d, want near bottom %d", got, bottom)
	}
}

func TestKeyStopsWithoutCompleting(t *testing.T) {
	m := sized(New(pet.Companion{}))

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got := updated.(Model)
	if !got.Done || got.Completed {
		t.Errorf("Done=%v Completed=%v, want stopped early", got.Done, got.Completed)
	}
	if cmd == nil {
		t.Fatal("Expected a DoneMsg command")
	}
	if msg, ok := cmd().(DoneMsg); !ok || msg.Completed {
		t.Errorf("cmd() = %#v, want DoneMsg{Completed: false}", msg)
	}
}

func TestRunsToCompletion(t *testing.T) {
	m := sized(New(pet.New(time.Now())))

	var model tea.Model = m
	var cmd tea.Cmd
	for i := 0; i < framesFor(Duration)+2 && !model.(Model).Done; i++ {
		model, cmd = model.Update(tickMsg(time.Now()))
	}

	got := model.(Model)
	if !got.Done || !got.Completed {
		t.Fatalf("Done=%v Completed=%v after full duration", got.Done, got.Completed)
	}
	if msg, ok := cmd().(DoneMsg); !ok || !msg.Completed {
		t.Errorf("cmd() = %#v, want DoneMsg{Completed: true}", msg)
	}
	if got.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", got.Remaining())
	}

	// Further messages are ignored once done
	again, cmd := got.Update(tickMsg(time.Now()))
	if cmd != nil || again.(Model).Frame != got.Frame {
		t.Error("Expected a finished exercise to ignore ticks")
	}
}

func TestPositionsStayOnScreen(t *testing.T) {
	var model tea.Model = sized(New(pet.Companion{}))
	for i := 0; i < framesFor(Duration); i++ {
		model, _ = model.Update(tickMsg(time.Now()))
		m := model.(Model)
		if m.Done {
			break
		}
		rows := m.visibleRows()
		if m.PetPosX < 0 || m.PetPosX > m.maxX() || m.MarkerPosX < 0 || m.MarkerPosX > m.maxX() {
			t.Fatalf("frame %d: x out of range pet=%d marker=%d", m.Frame, m.PetPosX, m.MarkerPosX)
		}
		if m.PetPosY < 0 || m.PetPosY > rows-2 || m.MarkerPosY < 0 || m.MarkerPosY > rows-2 {
			t.Fatalf("frame %d: y out of range pet=%d marker=%d", m.Frame, m.PetPosY, m.MarkerPosY)
		}
	}
}

func TestCompanionEmoji(t *testing.T) {
	tests := []struct {
		name   string
		c      pet.Companion
		dx, dy int
		want   string
	}{
		{"close to marker", pet.Companion{Energy: 10}, 1, 0, "😌"},
		{"tired", pet.Companion{Energy: 10, Happiness: 90}, 10, 0, "😴"},
		{"sad", pet.Companion{Energy: 50, Happiness: 10}, 10, 0, "😿"},
		{"happy", pet.Companion{Energy: 50, Happiness: 90}, 10, 0, "😸"},
		{"default", pet.Companion{Energy: 50, Happiness: 50}, 10, 0, "😺"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := companionEmoji(tt.c, tt.dx, tt.dy); got != tt.want {
				t.Errorf("companionEmoji() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestView(t *testing.T) {
	if got := New(pet.Companion{}).View(); got != "Initializing..." {
		t.Errorf("View() before size = %q", got)
	}

	m := sized(New(pet.Companion{Name: "Mochi"}))
	view := m.View()
	for _, want := range []string{"Breathe in...", "60s left with Mochi", m.Marker.Emoji} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}
