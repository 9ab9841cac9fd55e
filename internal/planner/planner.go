// Package planner builds a rolling seven-day plan of wellness tasks biased
// by the user's recent moods.
package planner

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"wellmind/internal/clock"
	"wellmind/internal/journal"
)

// ErrUnknownTask is returned for task ids that are not in the plan.
var ErrUnknownTask = errors.New("unknown task")

// TaskType is the kind of wellness activity a task asks for.
type TaskType string

const (
	Breathing   TaskType = "breathing"
	Journal     TaskType = "journal"
	Affirmation TaskType = "affirmation"
	Exercise    TaskType = "exercise"
	Social      TaskType = "social"
	Rest        TaskType = "rest"
)

// DefaultOrder is the task priority when no mood dominates.
var DefaultOrder = []TaskType{Breathing, Journal, Affirmation, Exercise, Social, Rest}

const (
	DaysPerPlan     = 7
	MinTasksPerDay  = 2
	MaxTasksPerDay  = 3
	MoodTrendWindow = 7
)

type template struct {
	Title       string
	Description string
}

var templates = map[TaskType][2]template{
	Breathing: {
		{"3-Minute Deep Breathing", "Take slow, deep breaths to calm your mind"},
		{"Box Breathing Exercise", "4-4-4-4 breathing pattern for focus"},
	},
	Journal: {
		{"Gratitude Journal", "Write 3 things you're grateful for"},
		{"Emotion Reflection", "Describe how you're feeling today"},
	},
	Affirmation: {
		{"Morning Affirmations", "Start your day with positive self-talk"},
		{"Self-Compassion Practice", "Speak kindly to yourself today"},
	},
	Exercise: {
		{"10-Minute Walk", "A short walk to clear your mind"},
		{"Gentle Stretching", "Release tension from your body"},
	},
	Social: {
		{"Reach Out to Someone", "Send a message to a friend or family"},
		{"Share Your Day", "Tell someone about something good that happened"},
	},
	Rest: {
		{"Screen-Free Break", "15 minutes away from devices"},
		{"Power Nap", "Rest your eyes for 20 minutes"},
	},
}

// Task is one activity scheduled for a weekday.
type Task struct {
	ID          string   `json:"id"`
	Day         string   `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        TaskType `json:"type"`
	Completed   bool     `json:"completed"`
}

// Plan is a generated week of tasks.
type Plan struct {
	ID          string    `json:"id"`
	WeekStart   time.Time `json:"week_start"`
	Tasks       []Task    `json:"tasks"`
	GeneratedAt time.Time `json:"generated_at"`
}

// IDFunc produces unique identifiers.
type IDFunc func() string

// DominantMood returns the most frequent emotion among the most recent
// entries. Ties go to the emotion encountered first.
func DominantMood(entries []journal.Entry) (journal.Emotion, bool) {
	if len(entries) > MoodTrendWindow {
		entries = entries[:MoodTrendWindow]
	}

	counts := make(map[journal.Emotion]int)
	var order []journal.Emotion
	for _, e := range entries {
		if counts[e.Emotion] == 0 {
			order = append(order, e.Emotion)
		}
		counts[e.Emotion]++
	}

	var dominant journal.Emotion
	best := 0
	for _, emotion := range order {
		if counts[emotion] > best {
			best = counts[emotion]
			dominant = emotion
		}
	}
	return dominant, best > 0
}

// Priority returns the task type order for a dominant mood.
func Priority(mood journal.Emotion) []TaskType {
	var first []TaskType
	switch mood {
	case journal.Anxious, journal.Stressed:
		first = []TaskType{Breathing, Rest, Exercise}
	case journal.Sad, journal.Exhausted:
		first = []TaskType{Social, Affirmation, Journal}
	default:
		return append([]TaskType(nil), DefaultOrder...)
	}

	order := append([]TaskType(nil), first...)
	for _, t := range DefaultOrder {
		if !slices.Contains(first, t) {
			order = append(order, t)
		}
	}
	return order
}

// Generate builds a fresh plan covering today and the following six days.
// entries must be most recent first.
func Generate(entries []journal.Entry, now time.Time, rng clock.RNG, newID IDFunc) Plan {
	mood, _ := DominantMood(entries)
	priority := Priority(mood)

	start := journal.StartOfDay(now)
	var tasks []Task
	for i := 0; i < DaysPerPlan; i++ {
		day := start.AddDate(0, 0, i).Weekday().String()
		tasks = append(tasks, tasksForDay(day, priority, rng, newID)...)
	}

	log.Printf("Generated weekly plan with %d tasks (dominant mood: %q)", len(tasks), mood)
	return Plan{
		ID:          newID(),
		WeekStart:   start,
		Tasks:       tasks,
		GeneratedAt: now,
	}
}

func tasksForDay(day string, priority []TaskType, rng clock.RNG, newID IDFunc) []Task {
	count := MinTasksPerDay + rng.Intn(MaxTasksPerDay-MinTasksPerDay+1)

	used := make(map[TaskType]bool)
	tasks := make([]Task, 0, count)
	for i := 0; i < count; i++ {
		taskType := priority[i%len(priority)]
		if len(used) < len(priority) {
			for step := 1; used[taskType]; step++ {
				taskType = priority[(i+step)%len(priority)]
			}
		}
		used[taskType] = true

		tmpl := templates[taskType][rng.Intn(len(templates[taskType]))]
		tasks = append(tasks, Task{
			ID:          newID(),
			Day:         day,
			Title:       tmpl.Title,
			Description: tmpl.Description,
			Type:        taskType,
		})
	}
	return tasks
}

// Complete marks the task done. It reports false when the task was
// already completed and fails for ids not in the plan.
func (p *Plan) Complete(id string) (bool, error) {
	for i := range p.Tasks {
		if p.Tasks[i].ID != id {
			continue
		}
		if p.Tasks[i].Completed {
			return false, nil
		}
		p.Tasks[i].Completed = true
		log.Printf("Completed task %q", p.Tasks[i].Title)
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownTask, id)
}

// Progress returns the number of completed tasks and the total.
func (p *Plan) Progress() (done, total int) {
	for _, t := range p.Tasks {
		if t.Completed {
			done++
		}
	}
	return done, len(p.Tasks)
}

// TasksFor returns the tasks scheduled for a weekday name.
func (p *Plan) TasksFor(day string) []Task {
	var out []Task
	for _, t := range p.Tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	p.Tasks = append([]Task(nil), p.Tasks...)
	return p
}
