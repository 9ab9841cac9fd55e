// Package engine owns the wellness state and is the only way to change it.
// Every action runs to completion under one lock, then writes the documents
// it touched through to the store.
package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"wellmind/internal/clock"
	"wellmind/internal/journal"
	"wellmind/internal/pet"
	"wellmind/internal/planner"
	"wellmind/internal/predict"
	"wellmind/internal/rewards"
	"wellmind/internal/settings"
	"wellmind/internal/storage"
)

// ErrInvalidArgument marks a malformed request: an unknown enum value, task
// id, or a negative amount. State is never changed when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// Document keys.
const (
	KeyJournal   = "wellmind-journal"
	KeyCompanion = "wellmind-companion"
	KeyPlan      = "wellmind-plan"
	KeySettings  = "wellmind-settings"
)

const (
	CheckInExperience = 15
	TaskExperience    = 10
)

type journalDoc struct {
	Journal    journal.Journal     `json:"journal"`
	Prediction *predict.Prediction `json:"prediction,omitempty"`
}

type companionDoc struct {
	Companion pet.Companion  `json:"companion"`
	Rewards   rewards.Ledger `json:"rewards"`
}

type planDoc struct {
	Plan *planner.Plan `json:"plan"`
}

type settingsDoc struct {
	Profile  Profile           `json:"profile"`
	Settings settings.Settings `json:"settings"`
}

// Engine serializes every action against a single State.
type Engine struct {
	mu    sync.Mutex
	store storage.Store
	clock clock.Clock
	rng   clock.RNG
	state State
}

// New loads persisted state from store, falling back to first-launch
// defaults for missing documents.
func New(store storage.Store, clk clock.Clock, rng clock.RNG) (*Engine, error) {
	e := &Engine{store: store, clock: clk, rng: rng}
	now := clk.Now()

	jd := journalDoc{Journal: journal.Journal{Entries: []journal.Entry{}}}
	if _, err := store.Load(KeyJournal, &jd); err != nil {
		return nil, err
	}

	var cd companionDoc
	found, err := store.Load(KeyCompanion, &cd)
	if err != nil {
		return nil, err
	}
	if !found {
		cd = companionDoc{Companion: pet.New(now), Rewards: rewards.NewLedger()}
	}

	var pd planDoc
	if _, err := store.Load(KeyPlan, &pd); err != nil {
		return nil, err
	}

	sd := settingsDoc{Settings: settings.Default()}
	if _, err := store.Load(KeySettings, &sd); err != nil {
		return nil, err
	}

	e.state = State{
		Profile:    sd.Profile,
		Journal:    jd.Journal,
		Prediction: jd.Prediction,
		Companion:  cd.Companion,
		Rewards:    cd.Rewards,
		Plan:       pd.Plan,
		Settings:   sd.Settings,
	}
	log.Printf("Loaded state: %d entries, %d coins, companion %s level %d",
		e.state.Journal.Count(), e.state.Rewards.Coins, e.state.Companion.Name, e.state.Companion.Level)
	return e, nil
}

func (e *Engine) document(key string) any {
	s := &e.state
	switch key {
	case KeyJournal:
		return journalDoc{Journal: s.Journal, Prediction: s.Prediction}
	case KeyCompanion:
		return companionDoc{Companion: s.Companion, Rewards: s.Rewards}
	case KeyPlan:
		return planDoc{Plan: s.Plan}
	case KeySettings:
		return settingsDoc{Profile: s.Profile, Settings: s.Settings}
	}
	panic("engine: unknown document " + key)
}

// commit writes the named documents through to the store. The in-memory
// state stays updated even when a write fails.
func (e *Engine) commit(keys ...string) error {
	var errs []error
	for _, key := range keys {
		if err := e.store.Save(key, e.document(key)); err != nil {
			log.Printf("Error saving %s: %v", key, err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// RecordMood records a check-in and runs its cascade: streak, check-in
// coins, companion boost and experience, badges and the prediction.
func (e *Engine) RecordMood(emotion journal.Emotion, note string, triggers []string) (journal.Entry, error) {
	if !emotion.Valid() {
		return journal.Entry{}, invalid("emotion %q", emotion)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c := &checkIn{
		ID:       uuid.NewString(),
		Emotion:  emotion,
		Note:     note,
		Triggers: triggers,
		Now:      e.clock.Now(),
	}
	runCheckIn(&e.state, c)
	return c.Entry, e.commit(KeyJournal, KeyCompanion)
}

// History returns the entries of the last days days, most recent first.
func (e *Engine) History(days int) []journal.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()
	j := e.state.Journal.Clone()
	return j.History(e.clock.Now(), days)
}

// TodaysMood returns today's most recent check-in.
func (e *Engine) TodaysMood() (journal.Entry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	entry, ok := e.state.Journal.Today(e.clock.Now())
	if ok {
		entry.Triggers = append([]string(nil), entry.Triggers...)
	}
	return entry, ok
}

// FeedCompanion spends the food's cost and feeds the companion. It reports
// false, changing nothing, when coins are short.
func (e *Engine) FeedCompanion(food pet.Food) (bool, error) {
	if !food.Valid() {
		return false, invalid("food %q", food)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if !s.Rewards.SpendCoins(pet.Foods[food].Cost) {
		return false, nil
	}
	s.Companion.Feed(food, e.clock.Now())
	s.grantExperience(pet.CareExperience)
	return true, e.commit(KeyCompanion)
}

// PlayWithCompanion plays game. It reports false, changing nothing, when
// coins or companion energy are short.
func (e *Engine) PlayWithCompanion(game pet.Game) (bool, error) {
	if !game.Valid() {
		return false, invalid("game %q", game)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	stats := pet.Games[game]
	if !s.Companion.CanPlay(game) || s.Rewards.Coins < stats.Cost {
		return false, nil
	}
	s.Rewards.SpendCoins(stats.Cost)
	s.Companion.Play(game, e.clock.Now())
	s.grantExperience(stats.Experience)
	return true, e.commit(KeyCompanion)
}

// CleanCompanion cleans the companion for a flat fee.
func (e *Engine) CleanCompanion() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if !s.Rewards.SpendCoins(pet.CleanCost) {
		return false, nil
	}
	s.Companion.Clean(e.clock.Now())
	s.grantExperience(pet.CareExperience)
	return true, e.commit(KeyCompanion)
}

// SleepCompanion puts the companion to bed.
func (e *Engine) SleepCompanion() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Companion.Sleep(e.clock.Now())
	return e.commit(KeyCompanion)
}

// WakeCompanion wakes the companion and returns the energy it regained.
func (e *Engine) WakeCompanion() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	gain := e.state.Companion.Wake(e.clock.Now())
	return gain, e.commit(KeyCompanion)
}

// Decay applies one periodic tick of need decay. It reports false while
// the companion sleeps.
func (e *Engine) Decay() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Companion.Decay() {
		return false, nil
	}
	return true, e.commit(KeyCompanion)
}

// CompanionMood derives the companion's mood from its current stats.
func (e *Engine) CompanionMood() pet.Mood {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Companion.Mood()
}

// RenameCompanion gives the companion a new name.
func (e *Engine) RenameCompanion(name string) error {
	if name == "" {
		return invalid("empty companion name")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Companion.Rename(name)
	log.Printf("Renamed companion to %s", name)
	return e.commit(KeyCompanion)
}

// SetSkin equips an unlocked skin.
func (e *Engine) SetSkin(skin pet.Skin) (bool, error) {
	if !skin.Valid() {
		return false, invalid("skin %q", skin)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if !s.Companion.SetSkin(skin, s.Rewards.OwnsSkin(skin)) {
		return false, nil
	}
	return true, e.commit(KeyCompanion)
}

// SetAccessory equips an unlocked accessory.
func (e *Engine) SetAccessory(accessory pet.Accessory) (bool, error) {
	if !accessory.Valid() {
		return false, invalid("accessory %q", accessory)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if !s.Companion.SetAccessory(accessory, s.Rewards.OwnsAccessory(accessory)) {
		return false, nil
	}
	return true, e.commit(KeyCompanion)
}

// AddCoins credits n coins.
func (e *Engine) AddCoins(n int) error {
	if n < 0 {
		return invalid("negative coin amount %d", n)
	}
	if n == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.credit(n)
	return e.commit(KeyCompanion)
}

// SpendCoins debits n coins. It reports false when the balance is short.
func (e *Engine) SpendCoins(n int) (bool, error) {
	if n < 0 {
		return false, invalid("negative coin amount %d", n)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Rewards.SpendCoins(n) {
		return false, nil
	}
	return true, e.commit(KeyCompanion)
}

// CanClaimDailyBonus reports whether today's bonus is still available.
func (e *Engine) CanClaimDailyBonus() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Rewards.CanClaimDailyBonus(e.clock.Now())
}

// ClaimDailyBonus returns the coins awarded, zero when already claimed today.
func (e *Engine) ClaimDailyBonus() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	coins := e.state.Rewards.ClaimDailyBonus(e.clock.Now())
	if coins == 0 {
		return 0, nil
	}
	e.state.awardBadges()
	return coins, e.commit(KeyCompanion)
}

// PurchaseItem unlocks a cosmetic for price coins. It reports false when
// the item is already owned or coins are short.
func (e *Engine) PurchaseItem(kind rewards.ItemKind, item string, price int) (bool, error) {
	if !rewards.ValidItem(kind, item) {
		return false, invalid("%s %q", kind, item)
	}
	if price < 0 {
		return false, invalid("negative price %d", price)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Rewards.Purchase(kind, item, price) {
		return false, nil
	}
	return true, e.commit(KeyCompanion)
}

// UnlockBadge awards b. It reports false when b was already held.
func (e *Engine) UnlockBadge(b rewards.Badge) (bool, error) {
	if !b.Valid() {
		return false, invalid("badge %q", b)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.Rewards.UnlockBadge(b) {
		return false, nil
	}
	e.state.awardBadges()
	return true, e.commit(KeyCompanion)
}

// CompleteBreathingExercise counts a finished breathing exercise and
// returns the running total.
func (e *Engine) CompleteBreathingExercise() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.state.Rewards.RecordBreathingSession()
	e.state.Companion.Boost()
	e.state.awardBadges()
	return n, e.commit(KeyCompanion)
}

// GenerateWeeklyPlan replaces the current plan with a fresh week.
func (e *Engine) GenerateWeeklyPlan() (planner.Plan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plan := planner.Generate(e.state.Journal.Entries, e.clock.Now(), e.rng, uuid.NewString)
	e.state.Plan = &plan
	return plan.Clone(), e.commit(KeyPlan)
}

// CompleteTask marks a plan task done and pays its reward. It reports false
// for a task already completed.
func (e *Engine) CompleteTask(id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if s.Plan == nil {
		return false, invalid("task %q: no plan", id)
	}
	done, err := s.Plan.Complete(id)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if !done {
		return false, nil
	}
	s.credit(rewards.TaskCoins)
	s.grantExperience(TaskExperience)
	return true, e.commit(KeyPlan, KeyCompanion)
}

// RefreshPrediction recomputes tomorrow's prediction. It is nil until
// enough entries exist.
func (e *Engine) RefreshPrediction() (*predict.Prediction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.refreshPrediction(e.clock.Now())
	var out *predict.Prediction
	if e.state.Prediction != nil {
		p := *e.state.Prediction
		out = &p
	}
	return out, e.commit(KeyJournal)
}

// CompleteOnboarding creates the profile and pays the welcome bonus. It
// reports false when onboarding already happened.
func (e *Engine) CompleteOnboarding(name string) (bool, error) {
	if name == "" {
		return false, invalid("empty user name")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s := &e.state
	if s.Profile.OnboardingCompleted {
		return false, nil
	}
	s.Profile = Profile{
		ID:                  uuid.NewString(),
		Name:                name,
		OnboardingCompleted: true,
		CreatedAt:           e.clock.Now(),
	}
	log.Printf("Completed onboarding for %s", name)
	s.credit(rewards.OnboardingCoins)
	return true, e.commit(KeySettings, KeyCompanion)
}

// Settings returns the current preferences.
func (e *Engine) Settings() settings.Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Settings
}

// UpdateNotifications applies a partial notification change.
func (e *Engine) UpdateNotifications(p settings.NotificationsPatch) (settings.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.Settings.ApplyNotifications(p); err != nil {
		return e.state.Settings, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return e.state.Settings, e.commit(KeySettings)
}

// UpdatePrivacy applies a partial privacy change.
func (e *Engine) UpdatePrivacy(p settings.PrivacyPatch) (settings.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.Settings.ApplyPrivacy(p); err != nil {
		return e.state.Settings, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return e.state.Settings, e.commit(KeySettings)
}

// ResetSettings restores the default preferences.
func (e *Engine) ResetSettings() (settings.Settings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Settings.Reset()
	return e.state.Settings, e.commit(KeySettings)
}
