package engine

import (
	"log"
	"time"

	"wellmind/internal/journal"
	"wellmind/internal/pet"
	"wellmind/internal/planner"
	"wellmind/internal/predict"
	"wellmind/internal/rewards"
	"wellmind/internal/settings"
)

// Profile is the local user created at onboarding.
type Profile struct {
	ID                  string    `json:"id,omitempty"`
	Name                string    `json:"name,omitempty"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at,omitempty"`
}

// State is everything the engine owns. Callers only ever see copies.
type State struct {
	Profile    Profile
	Journal    journal.Journal
	Prediction *predict.Prediction
	Companion  pet.Companion
	Rewards    rewards.Ledger
	Plan       *planner.Plan
	Settings   settings.Settings
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	c := State{
		Profile:   s.Profile,
		Journal:   s.Journal.Clone(),
		Companion: s.Companion.Clone(),
		Rewards:   s.Rewards.Clone(),
		Settings:  s.Settings,
	}
	if s.Prediction != nil {
		p := *s.Prediction
		c.Prediction = &p
	}
	if s.Plan != nil {
		p := s.Plan.Clone()
		c.Plan = &p
	}
	return c
}

func (s *State) facts() rewards.Facts {
	return rewards.Facts{
		EntryCount:         s.Journal.Count(),
		Streak:             s.Journal.Streak.Current,
		TotalEarned:        s.Rewards.TotalEarned,
		CompanionHappiness: s.Companion.Happiness,
		CompanionLevel:     s.Companion.Level,
		BreathingSessions:  s.Rewards.BreathingSessions,
	}
}

// awardBadges unlocks every badge whose rule holds, repeating until a pass
// unlocks nothing. Each unlock pays a bonus that can satisfy further rules.
func (s *State) awardBadges() []rewards.Badge {
	var unlocked []rewards.Badge
	for {
		pending := s.Rewards.Pending(s.facts())
		if len(pending) == 0 {
			return unlocked
		}
		for _, b := range pending {
			if s.Rewards.UnlockBadge(b) {
				unlocked = append(unlocked, b)
			}
		}
	}
}

// credit adds coins and re-evaluates badges.
func (s *State) credit(n int) {
	s.Rewards.AddCoins(n)
	s.awardBadges()
}

// grantExperience feeds experience to the companion, pays out every level
// gained and re-evaluates badges.
func (s *State) grantExperience(n int) []pet.LevelUp {
	ups := s.Companion.AddExperience(n)
	for _, up := range ups {
		s.Rewards.AddCoins(up.Coins)
	}
	s.awardBadges()
	return ups
}

func (s *State) refreshPrediction(now time.Time) {
	s.Prediction = predict.Predict(s.Journal.Entries, now)
	if s.Prediction != nil {
		log.Printf("Predicted %s for tomorrow (%d%% confidence)", s.Prediction.Mood, s.Prediction.Confidence)
	}
}

// checkIn carries one mood check-in through the pipeline.
type checkIn struct {
	ID       string
	Emotion  journal.Emotion
	Note     string
	Triggers []string
	Now      time.Time

	Entry journal.Entry
}

// step is one named stage of the check-in pipeline.
type step struct {
	Name  string
	Apply func(*State, *checkIn)
}

// checkInPipeline is the ordered list of state transitions a mood check-in
// performs.
var checkInPipeline = []step{
	{"append-entry", func(s *State, c *checkIn) {
		c.Entry = s.Journal.Append(c.ID, c.Emotion, c.Note, c.Triggers, c.Now)
	}},
	{"update-streak", func(s *State, c *checkIn) {
		s.Journal.UpdateStreak(c.Now)
	}},
	{"check-in-coins", func(s *State, c *checkIn) {
		s.credit(rewards.CheckInCoins)
	}},
	{"companion-boost", func(s *State, c *checkIn) {
		s.Companion.Boost()
	}},
	{"companion-experience", func(s *State, c *checkIn) {
		s.grantExperience(CheckInExperience)
	}},
	{"award-badges", func(s *State, c *checkIn) {
		s.awardBadges()
	}},
	{"refresh-prediction", func(s *State, c *checkIn) {
		s.refreshPrediction(c.Now)
	}},
}

func runCheckIn(s *State, c *checkIn) {
	for _, st := range checkInPipeline {
		st.Apply(s, c)
	}
}
