package rewards

// Badge identifies a permanent achievement.
type Badge string

const (
	FirstCheckIn    Badge = "first_checkin"
	Streak3         Badge = "streak_3"
	Streak7         Badge = "streak_7"
	Streak30        Badge = "streak_30"
	BreathingMaster Badge = "breathing_master"
	JournalStarter  Badge = "journal_starter"
	MoodTracker     Badge = "mood_tracker"
	CalmExplorer    Badge = "calm_explorer"
	PetLover        Badge = "pet_lover"
	CoinCollector   Badge = "coin_collector"
	PetLevel5       Badge = "pet_level_5"
	PetLevel10      Badge = "pet_level_10"
)

// BadgeInfo is the display metadata for a badge.
type BadgeInfo struct {
	ID          Badge
	Name        string
	Description string
	Icon        string
}

// Catalog lists every badge in display order.
var Catalog = []BadgeInfo{
	{FirstCheckIn, "First Step", "Complete your first mood check-in", "🌱"},
	{Streak3, "On a Roll", "Check in 3 days in a row", "🔥"},
	{Streak7, "Week Warrior", "Check in 7 days in a row", "⭐"},
	{Streak30, "Monthly Master", "Check in 30 days in a row", "🏆"},
	{BreathingMaster, "Breathing Master", "Complete 10 breathing exercises", "🌬️"},
	{JournalStarter, "Journal Starter", "Write your first journal entry", "📝"},
	{MoodTracker, "Mood Tracker", "Log 10 mood entries", "📊"},
	{CalmExplorer, "Calm Explorer", "Try every mindfulness exercise", "🧘"},
	{PetLover, "Pet Lover", "Get your companion to 90% happiness", "💖"},
	{CoinCollector, "Coin Collector", "Earn 100 calm coins", "🪙"},
	{PetLevel5, "Growing Up", "Raise your companion to level 5", "🐣"},
	{PetLevel10, "Best Friends", "Raise your companion to level 10", "👑"},
}

// Valid reports whether b is a known badge.
func (b Badge) Valid() bool {
	_, ok := Info(b)
	return ok
}

// Info returns the display metadata for b.
func Info(b Badge) (BadgeInfo, bool) {
	for _, info := range Catalog {
		if info.ID == b {
			return info, true
		}
	}
	return BadgeInfo{}, false
}

// Facts is the slice of engine state the badge rules look at.
type Facts struct {
	EntryCount         int
	Streak             int
	TotalEarned        int
	CompanionHappiness int
	CompanionLevel     int
	BreathingSessions  int
}

// Rule awards Badge once Met holds.
type Rule struct {
	Badge Badge
	Met   func(Facts) bool
}

// Rules are the automatically evaluated badges. The rest of the catalog is
// awarded explicitly by the features that own them.
var Rules = []Rule{
	{FirstCheckIn, func(f Facts) bool { return f.EntryCount >= 1 }},
	{Streak3, func(f Facts) bool { return f.Streak >= 3 }},
	{Streak7, func(f Facts) bool { return f.Streak >= 7 }},
	{Streak30, func(f Facts) bool { return f.Streak >= 30 }},
	{MoodTracker, func(f Facts) bool { return f.EntryCount >= 10 }},
	{BreathingMaster, func(f Facts) bool { return f.BreathingSessions >= 10 }},
	{CoinCollector, func(f Facts) bool { return f.TotalEarned >= 100 }},
	{PetLover, func(f Facts) bool { return f.CompanionHappiness >= 90 }},
	{PetLevel5, func(f Facts) bool { return f.CompanionLevel >= 5 }},
	{PetLevel10, func(f Facts) bool { return f.CompanionLevel >= 10 }},
}

// Pending returns the badges whose rules hold for f and are not yet held.
func (l *Ledger) Pending(f Facts) []Badge {
	var out []Badge
	for _, r := range Rules {
		if !l.HasBadge(r.Badge) && r.Met(f) {
			out = append(out, r.Badge)
		}
	}
	return out
}
