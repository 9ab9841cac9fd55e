package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"wellmind/internal/clock"
	"wellmind/internal/engine"
	"wellmind/internal/journal"
	"wellmind/internal/pet"
	"wellmind/internal/rewards"
	"wellmind/internal/storage"
)

func newAnimEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(storage.NewMemoryStore(), clock.NewManual(time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)), clock.Seeded(1))
	if err != nil {
		t.Fatalf("engine.New() error = %v", err)
	}
	return e
}

func TestFirstCheckInPayout(t *testing.T) {
	e := newAnimEngine(t)
	before := e.Snapshot()
	if _, err := e.RecordMood(journal.Happy, "", nil); err != nil {
		t.Fatal(err)
	}

	// The first check-in also unlocks first_checkin
	want := fmt.Sprintf("+%d 🪙  +%d xp", rewards.CheckInCoins+rewards.BadgeBonus, engine.CheckInExperience)
	if got := Payout(before, e.Snapshot()); got != want {
		t.Errorf("Expected payout %q, got %q", want, got)
	}
}

func TestCleanPayout(t *testing.T) {
	e := newAnimEngine(t)
	if err := e.AddCoins(pet.CleanCost); err != nil {
		t.Fatal(err)
	}
	before := e.Snapshot()
	if ok, err := e.CleanCompanion(); !ok || err != nil {
		t.Fatalf("CleanCompanion() = %v, %v", ok, err)
	}

	want := fmt.Sprintf("-%d 🪙  +%d xp", pet.CleanCost, pet.CareExperience)
	if got := Payout(before, e.Snapshot()); got != want {
		t.Errorf("Expected payout %q, got %q", want, got)
	}
}

func TestPayout(t *testing.T) {
	state := func(coins, level, xp int) engine.State {
		var s engine.State
		s.Rewards.Coins = coins
		s.Companion.Level = level
		s.Companion.Experience = xp
		return s
	}

	tests := []struct {
		name          string
		before, after engine.State
		want          string
	}{
		{"nothing changed", state(10, 1, 20), state(10, 1, 20), ""},
		{"level up replaces xp", state(0, 1, 95), state(10, 2, 5), "+10 🪙  level 2!"},
		{"spend only", state(10, 1, 20), state(7, 1, 20), "-3 🪙"},
		{"sleep drains nothing", state(5, 3, 40), state(5, 3, 40), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payout(tt.before, tt.after); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAnimationView(t *testing.T) {
	a := Animation{Type: AnimClean, Companion: "🦁", Payout: "-5 🪙"}

	for a.Frame = 0; a.Frame < a.Frames(); a.Frame++ {
		view := a.View()
		if strings.Contains(view, petMark) {
			t.Errorf("frame %d still has the pet placeholder", a.Frame)
		}
		last := a.Frame == a.Frames()-1
		if strings.Contains(view, a.Payout) != last {
			t.Errorf("frame %d: payout shown = %v, want %v", a.Frame, !last, last)
		}
	}
	if !strings.Contains(a.View(), "🦁") {
		t.Error("Expected the companion in the final frame")
	}

	// Past the end the last frame holds
	a.Frame = 100
	if !strings.Contains(a.View(), a.Payout) {
		t.Error("Expected the last frame to hold after the animation ends")
	}
}

func TestEveryActionShowsTheCompanion(t *testing.T) {
	for _, animType := range []AnimationType{AnimFeed, AnimPlay, AnimSleep, AnimClean, AnimCheckIn} {
		a := Animation{Type: animType, Companion: "🐱"}
		seen := false
		for a.Frame = 0; a.Frame < a.Frames(); a.Frame++ {
			if strings.Contains(a.View(), "🐱") {
				seen = true
			}
		}
		if !seen {
			t.Errorf("Animation type %v never draws the companion", animType)
		}
	}
}

func TestAnimationDone(t *testing.T) {
	tests := []struct {
		name string
		anim Animation
		want bool
	}{
		{"start", Animation{Type: AnimCheckIn}, false},
		{"last frame", Animation{Type: AnimCheckIn, Frame: Animation{Type: AnimCheckIn}.Frames() - 1}, false},
		{"past end", Animation{Type: AnimCheckIn, Frame: Animation{Type: AnimCheckIn}.Frames()}, true},
		{"none", Animation{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.anim.Done(); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
	if got := (Animation{}).View(); got != "" {
		t.Errorf("Expected empty view without an animation, got %q", got)
	}
}

func TestModelAnimationCarriesPayout(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = selectMenu(t, m, MenuCheckIn)
	m, _ = press(t, m, "enter")

	if m.Animation.Payout == "" {
		t.Fatal("Expected the check-in animation to carry its payout")
	}
	m.Animation.Frame = m.Animation.Frames() - 1
	if !strings.Contains(m.View(), m.Animation.Payout) {
		t.Errorf("Expected view to show payout %q", m.Animation.Payout)
	}
}
