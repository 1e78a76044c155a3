package pet

// GetStatus returns the status emoji(s) for the pet: its mood, followed by
// the most pressing need if one is below the low threshold.
func GetStatus(a Attributes) string {
	return moodEmoji(a.Mood) + GetWantEmoji(a)
}

// GetStatusWithLabel returns status with a text label for the UI
func GetStatusWithLabel(a Attributes) string {
	status := GetStatus(a)

	switch want := GetWantEmoji(a); {
	case want == StatusEmojiHungry:
		return status + " Hungry"
	case want == StatusEmojiThirsty:
		return status + " Thirsty"
	}

	switch a.Mood {
	case MoodHappy:
		return status + " Happy"
	case MoodUnhappy:
		return status + " Sad"
	case MoodSleep:
		return status + " Sleeping"
	default:
		return status + " Content"
	}
}

// GetWantEmoji returns an icon for the lowest need under LowNeedThreshold
func GetWantEmoji(a Attributes) string {
	if a.Hunger >= LowNeedThreshold && a.Thirst >= LowNeedThreshold {
		return ""
	}
	if a.Hunger <= a.Thirst {
		return StatusEmojiHungry
	}
	return StatusEmojiThirsty
}

func moodEmoji(m Mood) string {
	switch m {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodUnhappy:
		return StatusEmojiSad
	case MoodSleep:
		return StatusEmojiSleeping
	default:
		return StatusEmojiNormal
	}
}
