package pet

// Rules holds the tunable numbers of the simulation
type Rules struct {
	NeedDecayRate       float64 // hunger/thirst lost per second
	HappinessDecayRate  float64 // happiness lost per second while a need is low
	HappinessGrowthRate float64 // happiness gained per second while both needs are high

	LowNeedThreshold  float64
	HighNeedThreshold float64

	UnhappyThreshold float64
	HappyThreshold   float64

	FeedHungerIncrease    float64
	FeedHappinessIncrease float64
	WaterThirstIncrease   float64
	WaterHappinessBonus   float64
	PetHappinessIncrease  float64
}

// DefaultRules returns the standard simulation rules
func DefaultRules() Rules {
	return Rules{
		NeedDecayRate:         NeedDecayRate,
		HappinessDecayRate:    HappinessDecayRate,
		HappinessGrowthRate:   HappinessGrowthRate,
		LowNeedThreshold:      LowNeedThreshold,
		HighNeedThreshold:     HighNeedThreshold,
		UnhappyThreshold:      UnhappyThreshold,
		HappyThreshold:        HappyThreshold,
		FeedHungerIncrease:    FeedHungerIncrease,
		FeedHappinessIncrease: FeedHappinessIncrease,
		WaterThirstIncrease:   WaterThirstIncrease,
		WaterHappinessBonus:   WaterHappinessBonus,
		PetHappinessIncrease:  PetHappinessIncrease,
	}
}

// MoodFor derives the mood from happiness. Both thresholds are exclusive.
func (r Rules) MoodFor(happiness float64) Mood {
	switch {
	case happiness < r.UnhappyThreshold:
		return MoodUnhappy
	case happiness > r.HappyThreshold:
		return MoodHappy
	default:
		return MoodNormal
	}
}

// decay applies deltaSeconds of need decay and happiness drift to a
func (r Rules) decay(a Attributes, deltaSeconds float64) Attributes {
	a.Hunger = max(MinStat, a.Hunger-r.NeedDecayRate*deltaSeconds)
	a.Thirst = max(MinStat, a.Thirst-r.NeedDecayRate*deltaSeconds)

	if a.Hunger < r.LowNeedThreshold || a.Thirst < r.LowNeedThreshold {
		a.Happiness = max(MinStat, a.Happiness-r.HappinessDecayRate*deltaSeconds)
	} else if a.Hunger > r.HighNeedThreshold && a.Thirst > r.HighNeedThreshold {
		a.Happiness = min(MaxStat, a.Happiness+r.HappinessGrowthRate*deltaSeconds)
	}

	a.Mood = r.MoodFor(a.Happiness)
	return a.clamped()
}
