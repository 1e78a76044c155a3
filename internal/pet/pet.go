package pet

import (
	"fmt"

	"vpet/internal/anim"
)

// Mood is the pet's discrete emotional state, derived from happiness
type Mood int

const (
	MoodNormal Mood = iota
	MoodHappy
	MoodUnhappy
	// MoodSleep is never derived from attributes; it only exists as a
	// projection target for the Sleeping animation.
	MoodSleep
)

// String returns the mood name
func (m Mood) String() string {
	switch m {
	case MoodNormal:
		return "Normal"
	case MoodHappy:
		return "Happy"
	case MoodUnhappy:
		return "Unhappy"
	case MoodSleep:
		return "Sleep"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}

// moodAnimations projects each mood onto the animation that shows it
var moodAnimations = map[Mood]anim.Category{
	MoodHappy:   anim.Happy,
	MoodUnhappy: anim.Sad,
	MoodSleep:   anim.Sleeping,
	MoodNormal:  anim.Idle,
}

// AnimationFor returns the animation category shown for a mood
func AnimationFor(m Mood) anim.Category {
	if c, ok := moodAnimations[m]; ok {
		return c
	}
	return anim.Idle
}

// Attributes is the pet's state. Listeners receive it by value.
type Attributes struct {
	Name      string
	Health    float64
	Happiness float64
	Hunger    float64
	Thirst    float64
	Mood      Mood
	Animation anim.Category
}

// NewAttributes returns the starting attributes of a new pet
func NewAttributes() Attributes {
	return Attributes{
		Name:      DefaultPetName,
		Health:    InitialHealth,
		Happiness: InitialHappiness,
		Hunger:    InitialHunger,
		Thirst:    InitialThirst,
		Mood:      MoodNormal,
		Animation: anim.Idle,
	}
}

// clamped returns a copy with every stat forced into [MinStat, MaxStat]
func (a Attributes) clamped() Attributes {
	a.Health = clampStat(a.Health)
	a.Happiness = clampStat(a.Happiness)
	a.Hunger = clampStat(a.Hunger)
	a.Thirst = clampStat(a.Thirst)
	return a
}

// Position is a point in host coordinates
type Position struct {
	X, Y float64
}

func (p Position) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Size is a width and height in host coordinates
type Size struct {
	Width, Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

func clampStat(v float64) float64 {
	return max(MinStat, min(v, MaxStat))
}
