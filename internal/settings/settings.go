// Package settings holds the user's notification and privacy preferences.
package settings

import (
	"fmt"
	"log"
	"time"
)

const (
	DefaultReminderTime      = "09:00"
	DefaultDataRetentionDays = 365
	MaxDataRetentionDays     = 3650
)

// Notifications controls which reminders the user receives.
type Notifications struct {
	DailyReminder        bool   `json:"daily_reminder"`
	ReminderTime         string `json:"reminder_time"` // HH:MM, 24-hour
	MoodCheckReminder    bool   `json:"mood_check_reminder"`
	StreakReminder       bool   `json:"streak_reminder"`
	WeeklyReport         bool   `json:"weekly_report"`
	MotivationalMessages bool   `json:"motivational_messages"`
}

// Privacy controls what the user shares.
type Privacy struct {
	ShareAnonymousData    bool `json:"share_anonymous_data"`
	ShowProfileInPeerChat bool `json:"show_profile_in_peer_chat"`
	AllowDirectMessages   bool `json:"allow_direct_messages"`
	DataRetentionDays     int  `json:"data_retention_days"`
}

// Settings is the persisted preferences document.
type Settings struct {
	Notifications Notifications `json:"notifications"`
	Privacy       Privacy       `json:"privacy"`
}

// Default returns the out-of-the-box preferences.
func Default() Settings {
	return Settings{
		Notifications: Notifications{
			DailyReminder:        true,
			ReminderTime:         DefaultReminderTime,
			MoodCheckReminder:    true,
			StreakReminder:       true,
			WeeklyReport:         true,
			MotivationalMessages: true,
		},
		Privacy: Privacy{
			ShareAnonymousData:    false,
			ShowProfileInPeerChat: true,
			AllowDirectMessages:   true,
			DataRetentionDays:     DefaultDataRetentionDays,
		},
	}
}

// NotificationsPatch changes only the non-nil fields.
type NotificationsPatch struct {
	DailyReminder        *bool
	ReminderTime         *string
	MoodCheckReminder    *bool
	StreakReminder       *bool
	WeeklyReport         *bool
	MotivationalMessages *bool
}

// PrivacyPatch changes only the non-nil fields.
type PrivacyPatch struct {
	ShareAnonymousData    *bool
	ShowProfileInPeerChat *bool
	AllowDirectMessages   *bool
	DataRetentionDays     *int
}

// ApplyNotifications validates and applies p. Nothing changes on error.
func (s *Settings) ApplyNotifications(p NotificationsPatch) error {
	n := s.Notifications
	if p.ReminderTime != nil {
		if _, err := time.Parse("15:04", *p.ReminderTime); err != nil {
			return fmt.Errorf("reminder time %q: want HH:MM", *p.ReminderTime)
		}
		n.ReminderTime = *p.ReminderTime
	}
	setBool(&n.DailyReminder, p.DailyReminder)
	setBool(&n.MoodCheckReminder, p.MoodCheckReminder)
	setBool(&n.StreakReminder, p.StreakReminder)
	setBool(&n.WeeklyReport, p.WeeklyReport)
	setBool(&n.MotivationalMessages, p.MotivationalMessages)

	s.Notifications = n
	log.Printf("Updated notification settings: %+v", n)
	return nil
}

// ApplyPrivacy validates and applies p. Nothing changes on error.
func (s *Settings) ApplyPrivacy(p PrivacyPatch) error {
	v := s.Privacy
	if p.DataRetentionDays != nil {
		days := *p.DataRetentionDays
		if days < 1 || days > MaxDataRetentionDays {
			return fmt.Errorf("data retention %d days: want 1..%d", days, MaxDataRetentionDays)
		}
		v.DataRetentionDays = days
	}
	setBool(&v.ShareAnonymousData, p.ShareAnonymousData)
	setBool(&v.ShowProfileInPeerChat, p.ShowProfileInPeerChat)
	setBool(&v.AllowDirectMessages, p.AllowDirectMessages)

	s.Privacy = v
	log.Printf("Updated privacy settings: %+v", v)
	return nil
}

// Reset restores the defaults.
func (s *Settings) Reset() {
	*s = Default()
	log.Printf("Reset settings to defaults")
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
