package pet

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func assertStatsInRange(t *testing.T, c Companion) {
	t.Helper()
	stats := map[string]int{
		"happiness":   c.Happiness,
		"energy":      c.Energy,
		"hunger":      c.Hunger,
		"cleanliness": c.Cleanliness,
		"health":      c.Health,
	}
	for name, v := range stats {
		if v < MinStat || v > MaxStat {
			t.Errorf("%s = %d, out of [%d, %d]", name, v, MinStat, MaxStat)
		}
	}
}

func TestNewCompanion(t *testing.T) {
	c := New(testNow)

	if c.Name != DefaultName {
		t.Errorf("Expected name %q, got %q", DefaultName, c.Name)
	}
	if c.Happiness != 70 || c.Energy != 70 || c.Hunger != 70 || c.Cleanliness != 70 {
		t.Errorf("Expected needs at 70, got %+v", c)
	}
	if c.Health != MaxStat {
		t.Errorf("Expected full health, got %d", c.Health)
	}
	if c.Level != 1 || c.Experience != 0 {
		t.Errorf("Expected level 1 with 0 XP, got level %d XP %d", c.Level, c.Experience)
	}
	if c.Skin != SkinDefault || c.Accessory != AccessoryNone {
		t.Errorf("Expected default cosmetics, got %s/%s", c.Skin, c.Accessory)
	}
	if !c.CreatedAt.Equal(testNow) {
		t.Errorf("Expected CreatedAt %v, got %v", testNow, c.CreatedAt)
	}
}

func TestFeed(t *testing.T) {
	tests := []struct {
		food          Food
		wantHunger    int
		wantHappiness int
	}{
		{Snack, 85, 73},
		{Meal, 100, 78},
		{Treat, 100, 90},
	}

	for _, tt := range tests {
		t.Run(string(tt.food), func(t *testing.T) {
			c := New(testNow)
			c.Feed(tt.food, testNow)

			if c.Hunger != tt.wantHunger {
				t.Errorf("Expected hunger %d, got %d", tt.wantHunger, c.Hunger)
			}
			if c.Happiness != tt.wantHappiness {
				t.Errorf("Expected happiness %d, got %d", tt.wantHappiness, c.Happiness)
			}
			if c.LastFed == nil || !c.LastFed.Equal(testNow) {
				t.Errorf("Expected LastFed to be stamped, got %v", c.LastFed)
			}
		})
	}
}

func TestPlay(t *testing.T) {
	tests := []struct {
		game          Game
		wantHappiness int
		wantEnergy    int
	}{
		{Ball, 90, 55},
		{Puzzle, 95, 62},
		{Dance, 100, 50},
	}

	for _, tt := range tests {
		t.Run(string(tt.game), func(t *testing.T) {
			c := New(testNow)
			if !c.CanPlay(tt.game) {
				t.Fatalf("Expected enough energy for %s", tt.game)
			}
			c.Play(tt.game, testNow)

			if c.Happiness != tt.wantHappiness {
				t.Errorf("Expected happiness %d, got %d", tt.wantHappiness, c.Happiness)
			}
			if c.Energy != tt.wantEnergy {
				t.Errorf("Expected energy %d, got %d", tt.wantEnergy, c.Energy)
			}
		})
	}
}

func TestCanPlayRequiresEnergy(t *testing.T) {
	c := New(testNow)
	c.Energy = 14

	if c.CanPlay(Ball) {
		t.Error("Expected ball (needs 15 energy) to be refused at 14")
	}
	if !c.CanPlay(Puzzle) {
		t.Error("Expected puzzle (needs 8 energy) to be allowed at 14")
	}

	c.Energy = 15
	if !c.CanPlay(Ball) {
		t.Error("Expected ball to be allowed at exactly 15 energy")
	}
}

func TestClean(t *testing.T) {
	c := New(testNow)
	c.Cleanliness = 12
	c.Health = 98
	c.Clean(testNow)

	if c.Cleanliness != MaxStat {
		t.Errorf("Expected cleanliness %d, got %d", MaxStat, c.Cleanliness)
	}
	if c.Happiness != 80 {
		t.Errorf("Expected happiness 80, got %d", c.Happiness)
	}
	if c.Health != MaxStat {
		t.Errorf("Expected health clamped to %d, got %d", MaxStat, c.Health)
	}
}

func TestStatsStayInRangeUnderRepeatedCare(t *testing.T) {
	c := New(testNow)
	actions := []func(){
		func() { c.Feed(Treat, testNow) },
		func() { c.Play(Dance, testNow) },
		func() { c.Clean(testNow) },
		func() { c.Play(Ball, testNow) },
		func() { c.Feed(Snack, testNow) },
		func() { c.Decay() },
	}

	for i := 0; i < 200; i++ {
		actions[i%len(actions)]()
		assertStatsInRange(t, c)
	}
}

func TestSleepAndWake(t *testing.T) {
	tests := []struct {
		name       string
		slept      time.Duration
		energy     int
		health     int
		wantGain   int
		wantEnergy int
		wantHealth int
	}{
		{"ten minutes", 10 * time.Minute, 40, 80, 20, 60, 85},
		{"partial minute floors", 90 * time.Second, 40, 80, 3, 43, 80},
		{"long sleep caps gain", 8 * time.Hour, 10, 50, 100, 100, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testNow)
			c.Energy = tt.energy
			c.Health = tt.health

			c.Sleep(testNow)
			if !c.Sleeping {
				t.Fatal("Expected companion to be sleeping")
			}

			gain := c.Wake(testNow.Add(tt.slept))
			if gain != tt.wantGain {
				t.Errorf("Expected energy gain %d, got %d", tt.wantGain, gain)
			}
			if c.Sleeping {
				t.Error("Expected companion to be awake")
			}
			if c.Energy != tt.wantEnergy {
				t.Errorf("Expected energy %d, got %d", tt.wantEnergy, c.Energy)
			}
			if c.Health != tt.wantHealth {
				t.Errorf("Expected health %d, got %d", tt.wantHealth, c.Health)
			}
		})
	}
}

func TestWakeWhileAwake(t *testing.T) {
	c := New(testNow)
	c.Energy = 40
	c.Health = 80
	c.Sleep(testNow)
	c.Wake(testNow.Add(10 * time.Minute))

	// A second wake hours later must not pay for the old sleep again
	if gain := c.Wake(testNow.Add(5 * time.Hour)); gain != 0 {
		t.Errorf("Expected no energy gain, got %d", gain)
	}
	if c.Energy != 60 || c.Health != 85 {
		t.Errorf("Expected energy 60 and health 85, got %d and %d", c.Energy, c.Health)
	}
}

func TestWakeWithoutSleepIsNoOp(t *testing.T) {
	c := New(testNow)
	c.Sleeping = true
	before := c

	if gain := c.Wake(testNow); gain != 0 {
		t.Errorf("Expected no energy gain, got %d", gain)
	}
	if c.Sleeping {
		t.Error("Expected sleeping flag cleared")
	}
	if c.Energy != before.Energy || c.Health != before.Health {
		t.Error("Expected stats unchanged")
	}
}

func TestDecay(t *testing.T) {
	tests := []struct {
		name        string
		hunger      int
		cleanliness int
		wantHealth  int
	}{
		{"healthy needs", 70, 70, 100},
		{"starving hurts health", 19, 70, 98},
		{"dirty hurts health", 70, 5, 98},
		{"decay crossing threshold does not hurt yet", 21, 70, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testNow)
			c.Hunger = tt.hunger
			c.Cleanliness = tt.cleanliness

			if !c.Decay() {
				t.Fatal("Expected decay to apply while awake")
			}
			if c.Hunger != tt.hunger-2 {
				t.Errorf("Expected hunger %d, got %d", tt.hunger-2, c.Hunger)
			}
			if c.Cleanliness != tt.cleanliness-1 {
				t.Errorf("Expected cleanliness %d, got %d", tt.cleanliness-1, c.Cleanliness)
			}
			if c.Happiness != 69 {
				t.Errorf("Expected happiness 69, got %d", c.Happiness)
			}
			if c.Health != tt.wantHealth {
				t.Errorf("Expected health %d, got %d", tt.wantHealth, c.Health)
			}
		})
	}
}

func TestDecaySkippedWhileSleeping(t *testing.T) {
	c := New(testNow)
	c.Sleep(testNow)
	before := c

	if c.Decay() {
		t.Error("Expected decay to be skipped while sleeping")
	}
	if c.Hunger != before.Hunger || c.Cleanliness != before.Cleanliness || c.Happiness != before.Happiness {
		t.Error("Expected stats unchanged while sleeping")
	}
}

func TestDecayClampsAtZero(t *testing.T) {
	c := New(testNow)
	c.Hunger, c.Cleanliness, c.Happiness, c.Health = 1, 0, 0, 1

	c.Decay()
	assertStatsInRange(t, c)
	if c.Hunger != 0 || c.Health != 0 {
		t.Errorf("Expected hunger and health at 0, got %d and %d", c.Hunger, c.Health)
	}
}

func TestAddExperience(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		exp       int
		add       int
		wantLevel int
		wantExp   int
		wantCoins []int
	}{
		{"no level up", 1, 0, 15, 1, 15, nil},
		{"single level up carries remainder", 1, 95, 10, 2, 5, []int{10}},
		{"exact threshold", 1, 90, 10, 2, 0, []int{10}},
		{"one threshold, remainder below next", 1, 80, 150, 2, 130, []int{10}},
		{"two thresholds in one grant", 1, 80, 350, 3, 130, []int{10, 20}},
		{"higher level threshold", 4, 390, 20, 5, 10, []int{40}},
		{"zero amount ignored", 1, 50, 0, 1, 50, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testNow)
			c.Level = tt.level
			c.Experience = tt.exp

			ups := c.AddExperience(tt.add)

			if c.Level != tt.wantLevel {
				t.Errorf("Expected level %d, got %d", tt.wantLevel, c.Level)
			}
			if c.Experience != tt.wantExp {
				t.Errorf("Expected experience %d, got %d", tt.wantExp, c.Experience)
			}
			if len(ups) != len(tt.wantCoins) {
				t.Fatalf("Expected %d level ups, got %d", len(tt.wantCoins), len(ups))
			}
			for i, up := range ups {
				if up.Coins != tt.wantCoins[i] {
					t.Errorf("Level up %d: expected %d coins, got %d", i, tt.wantCoins[i], up.Coins)
				}
				if up.To != up.From+1 {
					t.Errorf("Level up %d: expected single step, got %d -> %d", i, up.From, up.To)
				}
			}
		})
	}
}

func TestMood(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(c *Companion)
		expected Mood
	}{
		{"sleeping wins", func(c *Companion) { c.Sleeping = true; c.Health = 10 }, MoodSleeping},
		{"low health is sick", func(c *Companion) { c.Health = 29 }, MoodSick},
		{"average 80 thrives", func(c *Companion) { c.Happiness, c.Energy, c.Hunger, c.Cleanliness = 80, 80, 80, 80 }, MoodThriving},
		{"default stats are happy", func(c *Companion) {}, MoodHappy},
		{"average 40 is content", func(c *Companion) { c.Happiness, c.Energy, c.Hunger, c.Cleanliness = 40, 40, 40, 40 }, MoodContent},
		{"average 20 is tired", func(c *Companion) { c.Happiness, c.Energy, c.Hunger, c.Cleanliness = 20, 20, 20, 20 }, MoodTired},
		{"below 20 is sad", func(c *Companion) { c.Happiness, c.Energy, c.Hunger, c.Cleanliness = 19, 19, 19, 20 }, MoodSad},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testNow)
			tt.setup(&c)
			if got := c.Mood(); got != tt.expected {
				t.Errorf("Expected mood %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCosmetics(t *testing.T) {
	c := New(testNow)

	if c.SetSkin(SkinGolden, false) {
		t.Error("Expected locked skin to be refused")
	}
	if c.Skin != SkinDefault {
		t.Errorf("Expected skin unchanged, got %s", c.Skin)
	}
	if !c.SetSkin(SkinGolden, true) || c.Skin != SkinGolden {
		t.Errorf("Expected golden skin equipped, got %s", c.Skin)
	}

	if c.SetAccessory(AccessoryCrown, false) {
		t.Error("Expected locked accessory to be refused")
	}
	if !c.SetAccessory(AccessoryHat, true) || c.Accessory != AccessoryHat {
		t.Errorf("Expected hat equipped, got %s", c.Accessory)
	}
}

func TestEnumValidity(t *testing.T) {
	if Food("cake").Valid() || Game("chess").Valid() || Skin("plaid").Valid() || Accessory("cape").Valid() {
		t.Error("Expected unknown values to be invalid")
	}
	for _, f := range FoodOrder {
		if !f.Valid() {
			t.Errorf("Expected %s to be valid", f)
		}
	}
	for _, g := range GameOrder {
		if !g.Valid() {
			t.Errorf("Expected %s to be valid", g)
		}
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(c *Companion)
		wantEmoji string
		wantLabel string
	}{
		{"default", func(c *Companion) {}, StatusEmojiHappy, "Happy"},
		{"sleeping", func(c *Companion) { c.Sleeping = true }, StatusEmojiSleeping, "Sleeping"},
		{"sick", func(c *Companion) { c.Health = 10 }, StatusEmojiSick, "Sick"},
		{"hungry", func(c *Companion) { c.Hunger = 5 }, StatusEmojiHungry, "(hungry)"},
		{"dirty", func(c *Companion) { c.Cleanliness = 3; c.Hunger = 10 }, StatusEmojiDirty, "(needs a bath)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testNow)
			tt.setup(&c)
			if status := GetStatus(c); !strings.Contains(status, tt.wantEmoji) {
				t.Errorf("Expected status to contain %q, got %q", tt.wantEmoji, status)
			}
			if label := GetStatusWithLabel(c); !strings.Contains(label, tt.wantLabel) {
				t.Errorf("Expected label to contain %q, got %q", tt.wantLabel, label)
			}
		})
	}
}
