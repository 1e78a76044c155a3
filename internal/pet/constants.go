package pet

// Game constants
const (
	DefaultPetName = "VPet"
	MaxStat        = 100.0
	MinStat        = 0.0

	// Starting attributes
	InitialHealth    = 100.0
	InitialHappiness = 50.0
	InitialHunger    = 50.0
	InitialThirst    = 50.0

	// Stat change rates (per second)
	NeedDecayRate       = 1.0 // hunger and thirst
	HappinessDecayRate  = 1.0 // while a need is low
	HappinessGrowthRate = 0.5 // while both needs are high

	// Need thresholds for happiness drift
	LowNeedThreshold  = 20.0
	HighNeedThreshold = 80.0

	// Mood thresholds on happiness
	UnhappyThreshold = 30.0 // below is Unhappy
	HappyThreshold   = 70.0 // above is Happy

	// Action effects
	FeedHungerIncrease    = 25.0
	FeedHappinessIncrease = 5.0
	WaterThirstIncrease   = 25.0
	WaterHappinessBonus   = 5.0
	PetHappinessIncrease  = 10.0

	// Default on-screen size of the pet
	DefaultWidth  = 250.0
	DefaultHeight = 250.0

	// Status emojis
	StatusEmojiNormal   = "🙂"
	StatusEmojiHappy    = "😸"
	StatusEmojiSad      = "😿"
	StatusEmojiSleeping = "😴"
	StatusEmojiHungry   = "🍖"
	StatusEmojiThirsty  = "💧"
)
