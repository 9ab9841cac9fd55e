package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"wellmind/internal/breathe"
	"wellmind/internal/clock"
	"wellmind/internal/engine"
	"wellmind/internal/journal"
	"wellmind/internal/pet"
	"wellmind/internal/rewards"
)

// Screen is the view the user is on.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenEmotion
	ScreenFood
	ScreenGame
	ScreenShop
	ScreenPlan
	ScreenBreathe
)

// Main menu entries
const (
	MenuCheckIn = iota
	MenuFeed
	MenuPlay
	MenuClean
	MenuSleep
	MenuBreathe
	MenuBonus
	MenuPlan
	MenuShop
	MenuQuit
)

const messageDuration = 3 * time.Second

// Model represents the app state
type Model struct {
	Engine         *engine.Engine
	Clock          clock.Clock
	State          engine.State
	Screen         Screen
	Choice         int
	PickerChoice   int
	Quitting       bool
	Message        string
	MessageExpires time.Time
	Animation      Animation
	DecayInterval  time.Duration
	Breathe        breathe.Model
	Width          int
	Height         int
}

type decayMsg time.Time
type animTickMsg struct {
	started time.Time
}

// NewModel creates a model driving e.
func NewModel(e *engine.Engine, clk clock.Clock, decayInterval time.Duration) Model {
	return Model{
		Engine:        e,
		Clock:         clk,
		State:         e.Snapshot(),
		DecayInterval: decayInterval,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return decayTick(m.DecayInterval)
}

func decayTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return decayMsg(t)
	})
}

func animTick(start time.Time) tea.Cmd {
	return tea.Tick(AnimationFrameDuration, func(t time.Time) tea.Msg {
		return animTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		if m.Screen == ScreenBreathe {
			return m.updateBreathe(msg)
		}
		return m, nil

	case decayMsg:
		if _, err := m.Engine.Decay(); err != nil {
			m.showError(err)
		}
		m.refresh()
		return m, decayTick(m.DecayInterval)

	case animTickMsg:
		// Drop ticks that belong to an older animation
		if m.Animation.Type == AnimNone || !m.Animation.StartTime.Equal(msg.started) {
			return m, nil
		}

		m.Animation.Frame++
		if m.Animation.Done() {
			m.Animation = Animation{}
			return m, nil
		}
		return m, animTick(m.Animation.StartTime)

	case breathe.DoneMsg:
		m.Screen = ScreenMain
		if msg.Completed {
			m.track(func() error {
				n, err := m.Engine.CompleteBreathingExercise()
				m.setMessage(fmt.Sprintf("🌬️ Breathing exercise #%d complete", n))
				return err
			})
		} else {
			m.setMessage("Breathing exercise stopped")
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Screen == ScreenBreathe {
			return m.updateBreathe(msg)
		}

		// While an animation is playing, ignore inputs except quit keys
		if m.Animation.Type != AnimNone {
			if msg.String() == "q" {
				m.Quitting = true
				return m, tea.Quit
			}
			return m, nil
		}

		if m.Screen != ScreenMain {
			return m.updatePicker(msg)
		}
		return m.updateMain(msg)
	}

	if m.Screen == ScreenBreathe {
		return m.updateBreathe(msg)
	}
	return m, nil
}

func (m Model) updateBreathe(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.Breathe.Update(msg)
	m.Breathe = updated.(breathe.Model)
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < MenuQuit {
			m.Choice++
		}
	case "enter", " ":
		return m.selectMain()
	}
	return m, nil
}

func (m Model) selectMain() (tea.Model, tea.Cmd) {
	switch m.Choice {
	case MenuCheckIn:
		m.openPicker(ScreenEmotion)
	case MenuFeed:
		m.openPicker(ScreenFood)
	case MenuPlay:
		m.openPicker(ScreenGame)
	case MenuShop:
		m.openPicker(ScreenShop)
	case MenuPlan:
		if m.State.Plan == nil {
			m.generatePlan()
		}
		m.openPicker(ScreenPlan)
	case MenuClean:
		if m.clean() {
			return m, animTick(m.Animation.StartTime)
		}
	case MenuSleep:
		if m.toggleSleep() {
			return m, animTick(m.Animation.StartTime)
		}
	case MenuBreathe:
		m.Screen = ScreenBreathe
		m.Breathe = breathe.New(m.State.Companion)
		m.Breathe.TermWidth, m.Breathe.TermHeight = m.Width, m.Height
		return m, m.Breathe.Init()
	case MenuBonus:
		m.claimBonus()
	case MenuQuit:
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) openPicker(s Screen) {
	m.Screen = s
	m.PickerChoice = 0
}

// PickerOptions returns the labels of the current picker.
func (m Model) PickerOptions() []string {
	var opts []string
	switch m.Screen {
	case ScreenEmotion:
		for _, e := range journal.Emotions {
			opts = append(opts, fmt.Sprintf("%s %s", e.Emoji(), e))
		}
	case ScreenFood:
		for _, f := range pet.FoodOrder {
			opts = append(opts, fmt.Sprintf("%-6s %2d 🪙  +%d hunger", f, pet.Foods[f].Cost, pet.Foods[f].Hunger))
		}
	case ScreenGame:
		for _, g := range pet.GameOrder {
			s := pet.Games[g]
			opts = append(opts, fmt.Sprintf("%-6s %2d 🪙  -%d energy", g, s.Cost, s.EnergyLoss))
		}
	case ScreenShop:
		for _, item := range rewards.Shop {
			opts = append(opts, fmt.Sprintf("%s %-14s %s", item.Icon, item.Name, m.shopStatus(item)))
		}
	case ScreenPlan:
		if m.State.Plan != nil {
			for _, t := range m.State.Plan.Tasks {
				check := "[ ]"
				if t.Completed {
					check = "[x]"
				}
				opts = append(opts, fmt.Sprintf("%s %-9s %s", check, t.Day, t.Title))
			}
		}
	}
	return opts
}

func (m Model) shopStatus(item rewards.ShopItem) string {
	switch {
	case item.Kind == rewards.KindSkin && m.State.Companion.Skin == pet.Skin(item.Value),
		item.Kind == rewards.KindAccessory && m.State.Companion.Accessory == pet.Accessory(item.Value):
		return "equipped"
	case m.owns(item):
		return "owned"
	}
	return fmt.Sprintf("%d 🪙", item.Price)
}

func (m Model) owns(item rewards.ShopItem) bool {
	if item.Kind == rewards.KindSkin {
		return m.State.Rewards.OwnsSkin(pet.Skin(item.Value))
	}
	return m.State.Rewards.OwnsAccessory(pet.Accessory(item.Value))
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.PickerOptions())
	switch msg.String() {
	case "q":
		m.Quitting = true
		return m, tea.Quit
	case "esc", "backspace":
		m.Screen = ScreenMain
	case "up", "k":
		if m.PickerChoice > 0 {
			m.PickerChoice--
		}
	case "down", "j":
		if m.PickerChoice < n-1 {
			m.PickerChoice++
		}
	case "g":
		if m.Screen == ScreenPlan {
			m.generatePlan()
			m.PickerChoice = 0
		}
	case "enter", " ":
		if n == 0 {
			return m, nil
		}
		return m.selectPicker()
	}
	return m, nil
}

func (m Model) selectPicker() (tea.Model, tea.Cmd) {
	i := m.PickerChoice
	switch m.Screen {
	case ScreenEmotion:
		m.Screen = ScreenMain
		if m.checkIn(journal.Emotions[i]) {
			return m, animTick(m.Animation.StartTime)
		}
	case ScreenFood:
		m.Screen = ScreenMain
		if m.feed(pet.FoodOrder[i]) {
			return m, animTick(m.Animation.StartTime)
		}
	case ScreenGame:
		m.Screen = ScreenMain
		if m.play(pet.GameOrder[i]) {
			return m, animTick(m.Animation.StartTime)
		}
	case ScreenShop:
		m.shop(rewards.Shop[i])
	case ScreenPlan:
		m.completeTask(m.State.Plan.Tasks[i].ID)
	}
	return m, nil
}

// track runs an engine action, then refreshes the snapshot and announces
// any badges it unlocked.
func (m *Model) track(action func() error) error {
	before := len(m.State.Rewards.Badges)
	err := action()
	m.refresh()
	if err != nil {
		m.showError(err)
		return err
	}
	for _, b := range m.State.Rewards.Badges[min(before, len(m.State.Rewards.Badges)):] {
		if info, ok := rewards.Info(b); ok {
			m.setMessage(fmt.Sprintf("%s New badge: %s (+%d coins)", info.Icon, info.Name, rewards.BadgeBonus))
		}
	}
	return nil
}

func (m *Model) refresh() {
	m.State = m.Engine.Snapshot()
}

func (m *Model) showError(err error) {
	log.Printf("Error: %v", err)
	m.setMessage("⚠️ " + err.Error())
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.Clock.Now().Add(messageDuration)
}

// startAnimation plays animType, closing on what the action changed since
// before.
func (m *Model) startAnimation(animType AnimationType, before engine.State) {
	m.Animation = Animation{
		Type:      animType,
		StartTime: m.Clock.Now(),
		Companion: companionEmoji(m.State.Companion),
		Payout:    Payout(before, m.State),
	}
}

func (m *Model) checkIn(e journal.Emotion) bool {
	before := m.State
	err := m.track(func() error {
		_, err := m.Engine.RecordMood(e, "", nil)
		m.setMessage(fmt.Sprintf("%s Checked in feeling %s", e.Emoji(), e))
		return err
	})
	if err != nil {
		return false
	}
	m.startAnimation(AnimCheckIn, before)
	return true
}

func (m *Model) feed(food pet.Food) bool {
	before := m.State
	var ok bool
	err := m.track(func() error {
		var err error
		ok, err = m.Engine.FeedCompanion(food)
		return err
	})
	if err != nil {
		return false
	}
	if !ok {
		m.setMessage("🪙 Not enough coins!")
		return false
	}
	m.setMessage("🍖 Yum!")
	m.startAnimation(AnimFeed, before)
	return true
}

func (m *Model) play(game pet.Game) bool {
	if m.State.Companion.Sleeping {
		m.setMessage("😴 Shh... sleeping")
		return false
	}
	before := m.State
	var ok bool
	err := m.track(func() error {
		var err error
		ok, err = m.Engine.PlayWithCompanion(game)
		return err
	})
	if err != nil {
		return false
	}
	if !ok {
		if !m.State.Companion.CanPlay(game) {
			m.setMessage("😴 Too tired to play...")
		} else {
			m.setMessage("🪙 Not enough coins!")
		}
		return false
	}
	m.setMessage("🎾 Wheee!")
	m.startAnimation(AnimPlay, before)
	return true
}

func (m *Model) clean() bool {
	before := m.State
	var ok bool
	err := m.track(func() error {
		var err error
		ok, err = m.Engine.CleanCompanion()
		return err
	})
	if err != nil {
		return false
	}
	if !ok {
		m.setMessage(fmt.Sprintf("🪙 Cleaning costs %d coins", pet.CleanCost))
		return false
	}
	m.setMessage("🛁 Squeaky clean!")
	m.startAnimation(AnimClean, before)
	return true
}

func (m *Model) toggleSleep() bool {
	if m.State.Companion.Sleeping {
		m.track(func() error {
			gain, err := m.Engine.WakeCompanion()
			m.setMessage(fmt.Sprintf("☀️ Good morning! +%d energy", gain))
			return err
		})
		return false
	}
	before := m.State
	if err := m.track(m.Engine.SleepCompanion); err != nil {
		return false
	}
	m.setMessage("🌙 Sweet dreams!")
	m.startAnimation(AnimSleep, before)
	return true
}

func (m *Model) claimBonus() {
	m.track(func() error {
		coins, err := m.Engine.ClaimDailyBonus()
		if coins == 0 {
			m.setMessage("🎁 Already claimed today")
		} else {
			m.setMessage(fmt.Sprintf("🎁 Daily bonus: +%d coins", coins))
		}
		return err
	})
}

func (m *Model) generatePlan() {
	m.track(func() error {
		_, err := m.Engine.GenerateWeeklyPlan()
		m.setMessage("🗓️ New weekly plan ready")
		return err
	})
}

func (m *Model) completeTask(id string) {
	m.track(func() error {
		done, err := m.Engine.CompleteTask(id)
		if done {
			m.setMessage(fmt.Sprintf("✅ Task done: +%d coins", rewards.TaskCoins))
		}
		return err
	})
}

func (m *Model) shop(item rewards.ShopItem) {
	if m.owns(item) {
		m.track(func() error {
			var err error
			if item.Kind == rewards.KindSkin {
				_, err = m.Engine.SetSkin(pet.Skin(item.Value))
			} else {
				_, err = m.Engine.SetAccessory(pet.Accessory(item.Value))
			}
			m.setMessage(fmt.Sprintf("%s Equipped %s", item.Icon, item.Name))
			return err
		})
		return
	}

	m.track(func() error {
		bought, err := m.Engine.PurchaseItem(item.Kind, item.Value, item.Price)
		if bought {
			m.setMessage(fmt.Sprintf("%s Bought %s", item.Icon, item.Name))
		} else {
			m.setMessage(fmt.Sprintf("🪙 %s costs %d coins", item.Name, item.Price))
		}
		return err
	})
}
