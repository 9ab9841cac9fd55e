package pet

// Status emojis
const (
	StatusEmojiThriving = "🤩"
	StatusEmojiHappy    = "😸"
	StatusEmojiContent  = "🙂"
	StatusEmojiTired    = "😾"
	StatusEmojiSad      = "😿"
	StatusEmojiSick     = "🤢"
	StatusEmojiSleeping = "😴"
	StatusEmojiHungry   = "🙀"
	StatusEmojiDirty    = "🧼"
)

// GetStatus returns the status emoji(s) for the companion: its mood plus
// the most pressing need, if any.
func GetStatus(c Companion) string {
	var mood string
	switch c.Mood() {
	case MoodThriving:
		mood = StatusEmojiThriving
	case MoodHappy:
		mood = StatusEmojiHappy
	case MoodContent:
		mood = StatusEmojiContent
	case MoodTired:
		mood = StatusEmojiTired
	case MoodSick:
		mood = StatusEmojiSick
	case MoodSleeping:
		mood = StatusEmojiSleeping
	default:
		mood = StatusEmojiSad
	}

	if need := GetNeedEmoji(c); need != "" {
		return mood + need
	}
	return mood
}

// GetNeedEmoji returns an icon for the lowest need once it drops below
// LowStatThreshold.
func GetNeedEmoji(c Companion) string {
	lowest := LowStatThreshold
	need := ""
	if c.Hunger < lowest {
		lowest = c.Hunger
		need = StatusEmojiHungry
	}
	if c.Cleanliness < lowest {
		need = StatusEmojiDirty
	}
	return need
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(c Companion) string {
	status := GetStatus(c)

	var label string
	switch c.Mood() {
	case MoodThriving:
		label = "Thriving"
	case MoodHappy:
		label = "Happy"
	case MoodContent:
		label = "Content"
	case MoodTired:
		label = "Tired"
	case MoodSick:
		label = "Sick"
	case MoodSleeping:
		label = "Sleeping"
	default:
		label = "Sad"
	}

	switch GetNeedEmoji(c) {
	case StatusEmojiHungry:
		label += " (hungry)"
	case StatusEmojiDirty:
		label += " (needs a bath)"
	}
	return status + " " + label
}
