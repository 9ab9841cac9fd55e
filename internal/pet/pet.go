package pet

import (
	"log"
	"math"
	"time"
)

// Companion is the user's virtual pet. The five stats always stay within
// [MinStat, MaxStat].
type Companion struct {
	Name        string     `json:"name"`
	Happiness   int        `json:"happiness"`
	Energy      int        `json:"energy"`
	Hunger      int        `json:"hunger"` // 100 = full, 0 = starving
	Cleanliness int        `json:"cleanliness"`
	Health      int        `json:"health"`
	Level       int        `json:"level"`
	Experience  int        `json:"experience"`
	Skin        Skin       `json:"skin"`
	Accessory   Accessory  `json:"accessory"`
	LastFed     *time.Time `json:"last_fed,omitempty"`
	LastPlayed  *time.Time `json:"last_played,omitempty"`
	LastCleaned *time.Time `json:"last_cleaned,omitempty"`
	LastSlept   *time.Time `json:"last_slept,omitempty"`
	Sleeping    bool       `json:"sleeping"`
	CreatedAt   time.Time  `json:"created_at"`
}

// LevelUp records one level gained and the coins it earns.
type LevelUp struct {
	From  int
	To    int
	Coins int
}

// New creates a companion with default stats.
func New(now time.Time) Companion {
	c := Companion{
		Name:        DefaultName,
		Happiness:   DefaultStat,
		Energy:      DefaultStat,
		Hunger:      DefaultStat,
		Cleanliness: DefaultStat,
		Health:      MaxStat,
		Level:       1,
		Skin:        SkinDefault,
		Accessory:   AccessoryNone,
		CreatedAt:   now,
	}
	log.Printf("Created new companion: %s", c.Name)
	return c
}

// Rename changes the companion's name.
func (c *Companion) Rename(name string) {
	c.Name = name
}

// Feed applies a food tier. The caller is responsible for charging its cost.
func (c *Companion) Feed(food Food, now time.Time) {
	stats := Foods[food]
	c.Hunger = clamp(c.Hunger + stats.Hunger)
	c.Happiness = clamp(c.Happiness + stats.Happiness)
	c.LastFed = stamp(now)
	log.Printf("Fed companion (%s). Hunger is now %d, Happiness is now %d", food, c.Hunger, c.Happiness)
}

// CanPlay reports whether the companion has the energy for game.
func (c *Companion) CanPlay(game Game) bool {
	return c.Energy >= Games[game].EnergyLoss
}

// Play applies a play activity. The caller is responsible for charging its
// cost, checking CanPlay and granting its experience.
func (c *Companion) Play(game Game, now time.Time) {
	stats := Games[game]
	c.Happiness = clamp(c.Happiness + stats.Happiness)
	c.Energy = clamp(c.Energy - stats.EnergyLoss)
	c.LastPlayed = stamp(now)
	log.Printf("Played %s with companion. Happiness is now %d, Energy is now %d", game, c.Happiness, c.Energy)
}

// Clean resets cleanliness and perks the companion up.
func (c *Companion) Clean(now time.Time) {
	c.Cleanliness = MaxStat
	c.Happiness = clamp(c.Happiness + CleanHappinessGain)
	c.Health = clamp(c.Health + CleanHealthGain)
	c.LastCleaned = stamp(now)
	log.Printf("Cleaned companion. Happiness is now %d, Health is now %d", c.Happiness, c.Health)
}

// Boost is the small lift the companion gets from each mood check-in.
func (c *Companion) Boost() {
	c.Happiness = clamp(c.Happiness + CheckInHappinessBoost)
	c.Energy = clamp(c.Energy + CheckInEnergyBoost)
}

// Sleep puts the companion to bed.
func (c *Companion) Sleep(now time.Time) {
	c.Sleeping = true
	c.LastSlept = stamp(now)
	log.Printf("Companion is now sleeping")
}

// Wake ends a sleep, restoring energy in proportion to the minutes slept,
// and returns the energy gained. Waking an awake companion does nothing,
// and one with no recorded bedtime just has its flag cleared.
func (c *Companion) Wake(now time.Time) int {
	if !c.Sleeping {
		return 0
	}
	if c.LastSlept == nil {
		c.Sleeping = false
		return 0
	}

	minutes := now.Sub(*c.LastSlept).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	gain := int(math.Min(MaxSleepEnergyGain, math.Floor(minutes*SleepEnergyPerMinute)))

	c.Sleeping = false
	c.Energy = clamp(c.Energy + gain)
	c.Health = clamp(c.Health + gain/SleepHealthDivisor)
	log.Printf("Companion woke up after %.1f minutes (Energy: %d, Health: %d)", minutes, c.Energy, c.Health)
	return gain
}

// Decay applies one tick of need decay. Nothing happens while sleeping.
func (c *Companion) Decay() bool {
	if c.Sleeping {
		return false
	}

	neglected := c.Hunger < LowStatThreshold || c.Cleanliness < LowStatThreshold

	c.Hunger = clamp(c.Hunger - HungerDecayRate)
	c.Cleanliness = clamp(c.Cleanliness - CleanlinessDecayRate)
	c.Happiness = clamp(c.Happiness - HappinessDecayRate)
	if neglected {
		c.Health = clamp(c.Health - NeglectHealthLoss)
	}
	return true
}

// NextLevelAt returns the experience needed to leave the current level.
func (c *Companion) NextLevelAt() int {
	return c.Level * ExperiencePerLevel
}

// AddExperience grants experience and levels up as many times as it
// overflows, carrying the remainder each time.
func (c *Companion) AddExperience(amount int) []LevelUp {
	if amount <= 0 {
		return nil
	}
	c.Experience += amount

	var ups []LevelUp
	for c.Experience >= c.NextLevelAt() {
		threshold := c.NextLevelAt()
		c.Experience -= threshold
		ups = append(ups, LevelUp{
			From:  c.Level,
			To:    c.Level + 1,
			Coins: LevelUpCoinsPerLevel * c.Level,
		})
		c.Level++
		log.Printf("Companion reached level %d", c.Level)
	}
	return ups
}

// Mood derives the companion's overall mood from its stats.
func (c *Companion) Mood() Mood {
	if c.Sleeping {
		return MoodSleeping
	}
	if c.Health < SickHealthThreshold {
		return MoodSick
	}

	avg := float64(c.Happiness+c.Energy+c.Hunger+c.Cleanliness) / 4
	switch {
	case avg >= 80:
		return MoodThriving
	case avg >= 60:
		return MoodHappy
	case avg >= 40:
		return MoodContent
	case avg >= 20:
		return MoodTired
	default:
		return MoodSad
	}
}

// SetSkin equips skin if it has been unlocked.
func (c *Companion) SetSkin(skin Skin, unlocked bool) bool {
	if !unlocked {
		return false
	}
	c.Skin = skin
	return true
}

// SetAccessory equips accessory if it has been unlocked.
func (c *Companion) SetAccessory(accessory Accessory, unlocked bool) bool {
	if !unlocked {
		return false
	}
	c.Accessory = accessory
	return true
}

// Clone returns a copy that shares no timestamps with c.
func (c Companion) Clone() Companion {
	c.LastFed = copyTime(c.LastFed)
	c.LastPlayed = copyTime(c.LastPlayed)
	c.LastCleaned = copyTime(c.LastCleaned)
	c.LastSlept = copyTime(c.LastSlept)
	return c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	return stamp(*t)
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

func stamp(t time.Time) *time.Time {
	return &t
}
