package anim

import (
	"fmt"
	"strings"
	"time"
)

// builtin describes the two-frame sequences the engine starts with
var builtin = []struct {
	category Category
	duration time.Duration
}{
	{Idle, 1000 * time.Millisecond},
	{Happy, 500 * time.Millisecond},
	{Sad, 800 * time.Millisecond},
	{Eating, 300 * time.Millisecond},
	{Sleeping, 1500 * time.Millisecond},
	{Walking, 250 * time.Millisecond},
	{Petted, 400 * time.Millisecond},
	{Dragged, 200 * time.Millisecond},
}

// DefaultSet builds placeholder sequences for every category, so categories
// without an asset directory are still playable.
func DefaultSet() Set {
	set := make(Set, len(builtin))
	for _, b := range builtin {
		name := strings.ToLower(b.category.String())
		seq := NewSequence(b.category, name)
		seq.AddFrame(fmt.Sprintf("%s_1.png", name), b.duration)
		seq.AddFrame(fmt.Sprintf("%s_2.png", name), b.duration)
		set[b.category] = seq
	}
	return set
}

// PlaceholderSet is the last resort: a single long Idle frame
func PlaceholderSet() Set {
	seq := NewSequence(Idle, "fallback")
	seq.AddFrame(PlaceholderImage, PlaceholderDuration)
	return Set{Idle: seq}
}
