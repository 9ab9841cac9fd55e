// Package predict makes a heuristic guess at tomorrow's mood from recent
// check-ins. It is a convenience, not a statistical model.
package predict

import (
	"fmt"
	"time"

	"wellmind/internal/journal"
)

const (
	MinEntries        = 3
	Window            = 7
	MinSameDayEntries = 2
	PatternBoost      = 10
	MaxPatternConf    = 85
)

// Scores maps each emotion to its numeric value for averaging.
var Scores = map[journal.Emotion]int{
	journal.Happy:     5,
	journal.Neutral:   3,
	journal.Sad:       1,
	journal.Anxious:   2,
	journal.Stressed:  2,
	journal.Exhausted: 1,
	journal.Numb:      1,
}

// Prediction is tomorrow's expected mood band.
type Prediction struct {
	Mood         journal.Emotion `json:"predicted_mood"`
	Confidence   int             `json:"confidence"`
	Reason       string          `json:"reason"`
	Suggestion   string          `json:"suggestion"`
	PredictedFor time.Time       `json:"predicted_for"`
	GeneratedAt  time.Time       `json:"generated_at"`
}

type band struct {
	min        float64
	mood       journal.Emotion
	confidence int
	reason     string
	suggestion string
}

var bands = []band{
	{4, journal.Happy, 75, "Your recent mood has been positive!", "Keep up the good habits that are working for you."},
	{3, journal.Neutral, 65, "Your mood has been stable lately.", "Try a breathing exercise to maintain balance."},
	{2, journal.Anxious, 70, "We noticed some stress patterns in your recent entries.", "Consider a mindfulness session before bed tonight."},
	{0, journal.Stressed, 60, "Your recent entries suggest elevated stress levels.", "Take extra care of yourself. A breathing exercise might help."},
}

// WeightedScore averages the scores of the most recent entries, weighting
// the newest highest. entries must be most recent first.
func WeightedScore(entries []journal.Entry) float64 {
	if len(entries) > Window {
		entries = entries[:Window]
	}
	var sum, total int
	for i, e := range entries {
		weight := len(entries) - i
		sum += Scores[e.Emotion] * weight
		total += weight
	}
	if total == 0 {
		return 0
	}
	return float64(sum) / float64(total)
}

// Predict returns tomorrow's prediction, or nil with fewer than
// MinEntries entries. entries must be most recent first.
func Predict(entries []journal.Entry, now time.Time) *Prediction {
	if len(entries) < MinEntries {
		return nil
	}

	score := WeightedScore(entries)
	var b band
	for _, candidate := range bands {
		if score >= candidate.min {
			b = candidate
			break
		}
	}

	tomorrow := journal.StartOfDay(now).AddDate(0, 0, 1)
	p := &Prediction{
		Mood:         b.mood,
		Confidence:   b.confidence,
		Reason:       b.reason,
		Suggestion:   b.suggestion,
		PredictedFor: tomorrow,
		GeneratedAt:  now,
	}

	if difficultWeekday(entries, tomorrow.Weekday(), now.Location()) {
		p.Confidence = min(MaxPatternConf, p.Confidence+PatternBoost)
		p.Reason = fmt.Sprintf("%ss tend to be challenging for you based on your history.", tomorrow.Weekday())
	}
	return p
}

// difficultWeekday reports whether most of the entries logged on day were
// negative, given at least MinSameDayEntries of them.
func difficultWeekday(entries []journal.Entry, day time.Weekday, loc *time.Location) bool {
	var sameDay, negative int
	for _, e := range entries {
		if e.Timestamp.In(loc).Weekday() != day {
			continue
		}
		sameDay++
		if e.Emotion.Negative() {
			negative++
		}
	}
	return sameDay >= MinSameDayEntries && negative*2 > sameDay
}
