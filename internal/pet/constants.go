package pet

// Companion constants
const (
	DefaultName         = "Buddy"
	MaxStat             = 100
	MinStat             = 0
	DefaultStat         = 70
	LowStatThreshold    = 20 // Hunger/cleanliness below this hurts health on decay
	SickHealthThreshold = 30

	// Decay per tick
	HungerDecayRate      = 2
	CleanlinessDecayRate = 1
	HappinessDecayRate   = 1
	NeglectHealthLoss    = 2

	// Cleaning
	CleanCost          = 5
	CleanHappinessGain = 10
	CleanHealthGain    = 5
	CareExperience     = 5 // Experience for feeding or cleaning

	// Check-in boost
	CheckInHappinessBoost = 5
	CheckInEnergyBoost    = 3

	// Sleep
	SleepEnergyPerMinute = 2
	MaxSleepEnergyGain   = 100
	SleepHealthDivisor   = 4

	// Leveling
	ExperiencePerLevel   = 100 // Threshold is level × this
	LevelUpCoinsPerLevel = 10
)

// Food is a feeding tier.
type Food string

const (
	Snack Food = "snack"
	Meal  Food = "meal"
	Treat Food = "treat"
)

// FoodStats describes the cost and effect of a food tier.
type FoodStats struct {
	Cost      int
	Hunger    int
	Happiness int
}

// Foods is the feeding table.
var Foods = map[Food]FoodStats{
	Snack: {Cost: 3, Hunger: 15, Happiness: 3},
	Meal:  {Cost: 8, Hunger: 35, Happiness: 8},
	Treat: {Cost: 15, Hunger: 50, Happiness: 20},
}

// FoodOrder lists food tiers for menus.
var FoodOrder = []Food{Snack, Meal, Treat}

// Valid reports whether f is a known food tier.
func (f Food) Valid() bool {
	_, ok := Foods[f]
	return ok
}

// Game is a play activity.
type Game string

const (
	Ball   Game = "ball"
	Puzzle Game = "puzzle"
	Dance  Game = "dance"
)

// GameStats describes the cost and effect of a play activity.
type GameStats struct {
	Cost       int
	Happiness  int
	EnergyLoss int
	Experience int
}

// Games is the play table.
var Games = map[Game]GameStats{
	Ball:   {Cost: 3, Happiness: 20, EnergyLoss: 15, Experience: 8},
	Puzzle: {Cost: 5, Happiness: 25, EnergyLoss: 8, Experience: 15},
	Dance:  {Cost: 8, Happiness: 35, EnergyLoss: 20, Experience: 12},
}

// GameOrder lists play activities for menus.
var GameOrder = []Game{Ball, Puzzle, Dance}

// Valid reports whether g is a known play activity.
func (g Game) Valid() bool {
	_, ok := Games[g]
	return ok
}

// Skin is a cosmetic body style.
type Skin string

const (
	SkinDefault Skin = "default"
	SkinGolden  Skin = "golden"
	SkinRainbow Skin = "rainbow"
	SkinNinja   Skin = "ninja"
	SkinAngel   Skin = "angel"
	SkinDevil   Skin = "devil"
)

// Valid reports whether s is a known skin.
func (s Skin) Valid() bool {
	switch s {
	case SkinDefault, SkinGolden, SkinRainbow, SkinNinja, SkinAngel, SkinDevil:
		return true
	}
	return false
}

// Accessory is a cosmetic worn item.
type Accessory string

const (
	AccessoryNone    Accessory = "none"
	AccessoryHat     Accessory = "hat"
	AccessoryGlasses Accessory = "glasses"
	AccessoryBowtie  Accessory = "bowtie"
	AccessoryCrown   Accessory = "crown"
	AccessoryScarf   Accessory = "scarf"
)

// Valid reports whether a is a known accessory.
func (a Accessory) Valid() bool {
	switch a {
	case AccessoryNone, AccessoryHat, AccessoryGlasses, AccessoryBowtie, AccessoryCrown, AccessoryScarf:
		return true
	}
	return false
}

// Mood is the companion's derived overall state.
type Mood string

const (
	MoodThriving Mood = "thriving"
	MoodHappy    Mood = "happy"
	MoodContent  Mood = "content"
	MoodTired    Mood = "tired"
	MoodSad      Mood = "sad"
	MoodSick     Mood = "sick"
	MoodSleeping Mood = "sleeping"
)
