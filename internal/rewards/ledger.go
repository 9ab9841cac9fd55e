// Package rewards owns the calm-coin economy, badges and cosmetic unlocks.
package rewards

import (
	"log"
	"slices"
	"time"

	"wellmind/internal/pet"
)

const (
	BadgeBonus      = 25
	DailyBonus      = 15
	CheckInCoins    = 10
	TaskCoins       = 8
	OnboardingCoins = 50
)

// Ledger holds the coin balance and everything coins can buy. Coins never
// exceed TotalEarned, and TotalEarned never decreases.
type Ledger struct {
	Coins               int             `json:"coins"`
	TotalEarned         int             `json:"total_earned"`
	Badges              []Badge         `json:"badges"`
	DailyBonusClaimed   *time.Time      `json:"daily_bonus_claimed,omitempty"`
	UnlockedSkins       []pet.Skin      `json:"unlocked_skins"`
	UnlockedAccessories []pet.Accessory `json:"unlocked_accessories"`
	BreathingSessions   int             `json:"breathing_sessions"`
}

// NewLedger returns an empty ledger with the default cosmetics unlocked.
func NewLedger() Ledger {
	return Ledger{
		Badges:              []Badge{},
		UnlockedSkins:       []pet.Skin{pet.SkinDefault},
		UnlockedAccessories: []pet.Accessory{pet.AccessoryNone},
	}
}

// AddCoins credits n coins. Non-positive amounts are ignored.
func (l *Ledger) AddCoins(n int) {
	if n <= 0 {
		return
	}
	l.Coins += n
	l.TotalEarned += n
	log.Printf("Earned %d coins (balance %d, lifetime %d)", n, l.Coins, l.TotalEarned)
}

// SpendCoins debits n coins, refusing when the balance is too low.
func (l *Ledger) SpendCoins(n int) bool {
	if n < 0 || l.Coins < n {
		return false
	}
	l.Coins -= n
	return true
}

// HasBadge reports whether b has been unlocked.
func (l *Ledger) HasBadge(b Badge) bool {
	return slices.Contains(l.Badges, b)
}

// UnlockBadge awards b and its coin bonus. It reports false if b was
// already held.
func (l *Ledger) UnlockBadge(b Badge) bool {
	if l.HasBadge(b) {
		return false
	}
	l.Badges = append(l.Badges, b)
	log.Printf("Unlocked badge %s", b)
	l.AddCoins(BadgeBonus)
	return true
}

// CanClaimDailyBonus reports whether no bonus was claimed on now's date.
func (l *Ledger) CanClaimDailyBonus(now time.Time) bool {
	if l.DailyBonusClaimed == nil {
		return true
	}
	last := l.DailyBonusClaimed.In(now.Location())
	ly, lm, ld := last.Date()
	ny, nm, nd := now.Date()
	return ly != ny || lm != nm || ld != nd
}

// ClaimDailyBonus credits the daily bonus once per calendar day and
// returns the coins awarded.
func (l *Ledger) ClaimDailyBonus(now time.Time) int {
	if !l.CanClaimDailyBonus(now) {
		return 0
	}
	claimed := now
	l.DailyBonusClaimed = &claimed
	l.AddCoins(DailyBonus)
	return DailyBonus
}

// OwnsSkin reports whether skin is unlocked.
func (l *Ledger) OwnsSkin(skin pet.Skin) bool {
	return slices.Contains(l.UnlockedSkins, skin)
}

// OwnsAccessory reports whether accessory is unlocked.
func (l *Ledger) OwnsAccessory(accessory pet.Accessory) bool {
	return slices.Contains(l.UnlockedAccessories, accessory)
}

// Purchase unlocks item of kind for price. It fails when the item is
// already owned or the balance is too low. kind and item must be valid.
func (l *Ledger) Purchase(kind ItemKind, item string, price int) bool {
	switch kind {
	case KindSkin:
		skin := pet.Skin(item)
		if l.OwnsSkin(skin) || !l.SpendCoins(price) {
			return false
		}
		l.UnlockedSkins = append(l.UnlockedSkins, skin)
	case KindAccessory:
		accessory := pet.Accessory(item)
		if l.OwnsAccessory(accessory) || !l.SpendCoins(price) {
			return false
		}
		l.UnlockedAccessories = append(l.UnlockedAccessories, accessory)
	default:
		return false
	}
	log.Printf("Purchased %s %s for %d coins", kind, item, price)
	return true
}

// RecordBreathingSession counts one completed breathing exercise.
func (l *Ledger) RecordBreathingSession() int {
	l.BreathingSessions++
	log.Printf("Completed breathing exercise #%d", l.BreathingSessions)
	return l.BreathingSessions
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	l.Badges = slices.Clone(l.Badges)
	l.UnlockedSkins = slices.Clone(l.UnlockedSkins)
	l.UnlockedAccessories = slices.Clone(l.UnlockedAccessories)
	if l.DailyBonusClaimed != nil {
		t := *l.DailyBonusClaimed
		l.DailyBonusClaimed = &t
	}
	return l
}
