// Package journal records mood check-ins and derives streaks from them.
package journal

import (
	"log"
	"time"
)

// Emotion is the mood a user reports at check-in.
type Emotion string

const (
	Happy     Emotion = "happy"
	Neutral   Emotion = "neutral"
	Sad       Emotion = "sad"
	Anxious   Emotion = "anxious"
	Stressed  Emotion = "stressed"
	Exhausted Emotion = "exhausted"
	Numb      Emotion = "numb"
)

// Emotions lists every valid emotion in display order.
var Emotions = []Emotion{Happy, Neutral, Sad, Anxious, Stressed, Exhausted, Numb}

// Valid reports whether e is one of the known emotions.
func (e Emotion) Valid() bool {
	switch e {
	case Happy, Neutral, Sad, Anxious, Stressed, Exhausted, Numb:
		return true
	}
	return false
}

// Negative reports whether e counts as a difficult mood.
func (e Emotion) Negative() bool {
	switch e {
	case Sad, Anxious, Stressed, Exhausted:
		return true
	}
	return false
}

// Emoji returns the icon shown next to the emotion.
func (e Emotion) Emoji() string {
	switch e {
	case Happy:
		return "😊"
	case Neutral:
		return "😐"
	case Sad:
		return "😢"
	case Anxious:
		return "😰"
	case Stressed:
		return "😣"
	case Exhausted:
		return "😩"
	case Numb:
		return "😶"
	default:
		return "❓"
	}
}

// Entry is a single immutable mood check-in.
type Entry struct {
	ID        string    `json:"id"`
	Emotion   Emotion   `json:"emotion"`
	Note      string    `json:"note,omitempty"`
	Triggers  []string  `json:"triggers,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Streak tracks consecutive check-in days. Current is zero exactly when
// LastCheckIn is nil.
type Streak struct {
	Current     int        `json:"current_streak"`
	LastCheckIn *time.Time `json:"last_check_in,omitempty"`
}

// Journal holds entries most recent first, plus the streak they produce.
type Journal struct {
	Entries []Entry `json:"entries"`
	Streak  Streak  `json:"streak"`
}

// Record prepends a new entry stamped at now and updates the streak.
func (j *Journal) Record(id string, emotion Emotion, note string, triggers []string, now time.Time) Entry {
	entry := j.Append(id, emotion, note, triggers, now)
	j.UpdateStreak(now)
	return entry
}

// Append prepends a new entry stamped at now without touching the streak.
func (j *Journal) Append(id string, emotion Emotion, note string, triggers []string, now time.Time) Entry {
	entry := Entry{
		ID:        id,
		Emotion:   emotion,
		Note:      note,
		Triggers:  dedupe(triggers),
		Timestamp: now,
	}
	j.Entries = append([]Entry{entry}, j.Entries...)
	log.Printf("Recorded %s check-in (%d entries)", emotion, len(j.Entries))
	return entry
}

// UpdateStreak applies a check-in at now to the streak. The day difference
// is measured against the previous check-in, which is then replaced by now.
func (j *Journal) UpdateStreak(now time.Time) {
	s := &j.Streak
	switch {
	case s.LastCheckIn == nil:
		s.Current = 1
	default:
		if now.Before(*s.LastCheckIn) {
			// The clock went backwards; keep the streak and the later stamp
			return
		}
		days := int(now.Sub(*s.LastCheckIn) / (24 * time.Hour))
		switch {
		case days == 0:
			// same day, already counted
		case days == 1:
			s.Current++
		default:
			s.Current = 1
		}
	}
	stamp := now
	s.LastCheckIn = &stamp
}

// History returns entries recorded within the last days days, most recent
// first. A non-positive days means one week.
func (j *Journal) History(now time.Time, days int) []Entry {
	if days <= 0 {
		days = 7
	}
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	var out []Entry
	for _, e := range j.Entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Today returns the most recent entry made on now's calendar date.
func (j *Journal) Today(now time.Time) (Entry, bool) {
	for _, e := range j.Entries {
		if SameDay(e.Timestamp, now) {
			return e, true
		}
	}
	return Entry{}, false
}

// Recent returns up to n of the most recent entries.
func (j *Journal) Recent(n int) []Entry {
	if n > len(j.Entries) {
		n = len(j.Entries)
	}
	return j.Entries[:n]
}

// Count returns the number of recorded entries.
func (j *Journal) Count() int {
	return len(j.Entries)
}

// Clone returns a deep copy of the journal.
func (j Journal) Clone() Journal {
	entries := make([]Entry, len(j.Entries))
	for i, e := range j.Entries {
		e.Triggers = append([]string(nil), e.Triggers...)
		entries[i] = e
	}
	j.Entries = entries
	if j.Streak.LastCheckIn != nil {
		t := *j.Streak.LastCheckIn
		j.Streak.LastCheckIn = &t
	}
	return j
}

// SameDay reports whether a and b fall on the same calendar date in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay strips the time of day from t.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func dedupe(triggers []string) []string {
	if len(triggers) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(triggers))
	out := make([]string, 0, len(triggers))
	for _, t := range triggers {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
