package ui

import (
	"fmt"
	"strings"
	"time"

	"wellmind/internal/engine"
)

// AnimationType is the action being played back.
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimFeed
	AnimPlay
	AnimSleep
	AnimClean
	AnimCheckIn
)

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 200 * time.Millisecond

// petMark stands in for the companion inside a scene.
const petMark = "@"

// Animation is a short playback of an action, ending on what it earned.
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
	Companion string // emoji drawn wherever a scene has petMark
	Payout    string // shown under the last frame
}

var scenes = map[AnimationType][]string{
	AnimFeed: {
		`
   🍖
     \
      @`,
		`
   🍖→@`,
		`
     @
   *nom*`,
	},
	AnimPlay: {
		`
  🎾        @`,
		`
     🎾     @`,
		`
        🎾  @
              *boing*`,
		`
  🎾        @
              *catch!*`,
	},
	AnimSleep: {
		`
     @`,
		`
     😪
      z`,
		`
     😴
    z
     z
      z`,
	},
	AnimClean: {
		`
  🧼       @`,
		`
     🧼    @
      o`,
		`
       🫧  @
     o  O`,
		`
           @
        ✨ 🫧 ✨`,
	},
	AnimCheckIn: {
		`
     📝`,
		`
     📝 ✓`,
		`
     @ 💬`,
	},
}

// Frames returns how many frames the animation plays.
func (a Animation) Frames() int {
	return len(scenes[a.Type])
}

// Done reports whether every frame has been shown.
func (a Animation) Done() bool {
	return a.Frame >= a.Frames()
}

// View draws the current frame, holding on the last one once done.
func (a Animation) View() string {
	frames := scenes[a.Type]
	if len(frames) == 0 {
		return ""
	}

	last := len(frames) - 1
	i := min(a.Frame, last)
	frame := strings.ReplaceAll(frames[i], petMark, a.Companion)
	if i == last && a.Payout != "" {
		frame += "\n\n   ✨ " + a.Payout + " ✨"
	}
	return frame
}

// Payout describes the coins and experience an action moved between two
// snapshots. A level gained replaces the experience figure.
func Payout(before, after engine.State) string {
	var parts []string
	if d := after.Rewards.Coins - before.Rewards.Coins; d != 0 {
		parts = append(parts, fmt.Sprintf("%+d 🪙", d))
	}

	switch {
	case after.Companion.Level > before.Companion.Level:
		parts = append(parts, fmt.Sprintf("level %d!", after.Companion.Level))
	case after.Companion.Experience > before.Companion.Experience:
		parts = append(parts, fmt.Sprintf("+%d xp", after.Companion.Experience-before.Companion.Experience))
	}
	return strings.Join(parts, "  ")
}
