package anim

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFrameDuration is used when a frame's duration is missing or unusable
const DefaultFrameDuration = 125 * time.Millisecond

// Frame is one image of an animation and how long it stays on screen
type Frame struct {
	ImagePath string
	Duration  time.Duration
}

// Sequence is an ordered list of frames for one category.
// It is filled with AddFrame while being built and only read afterwards.
type Sequence struct {
	id       string
	category Category
	name     string
	frames   []Frame
	looping  bool
}

// NewSequence creates an empty looping sequence
func NewSequence(category Category, name string) *Sequence {
	return &Sequence{
		id:       uuid.NewString(),
		category: category,
		name:     name,
		looping:  true,
	}
}

// SetLooping sets whether playback wraps around after the last frame
func (s *Sequence) SetLooping(looping bool) *Sequence {
	s.looping = looping
	return s
}

// AddFrame appends a frame. Non-positive durations become DefaultFrameDuration.
func (s *Sequence) AddFrame(imagePath string, duration time.Duration) *Sequence {
	if duration <= 0 {
		duration = DefaultFrameDuration
	}
	s.frames = append(s.frames, Frame{ImagePath: imagePath, Duration: duration})
	return s
}

// ID is the unique identity of this sequence
func (s *Sequence) ID() string { return s.id }

// Category returns the category the sequence was built for
func (s *Sequence) Category() Category { return s.category }

// Name returns the display name
func (s *Sequence) Name() string { return s.name }

// Looping reports whether playback wraps around
func (s *Sequence) Looping() bool { return s.looping }

// FrameCount returns the number of frames
func (s *Sequence) FrameCount() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// FrameAt returns the frame at i modulo the frame count.
// ok is false when the sequence has no frames.
func (s *Sequence) FrameAt(i int) (Frame, bool) {
	n := s.FrameCount()
	if n == 0 {
		return Frame{}, false
	}
	i %= n
	if i < 0 {
		i += n
	}
	return s.frames[i], true
}

// Frames returns a copy of the frames
func (s *Sequence) Frames() []Frame {
	if s == nil {
		return nil
	}
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}

// TotalDuration is the time one pass over all frames takes
func (s *Sequence) TotalDuration() time.Duration {
	var total time.Duration
	for _, f := range s.Frames() {
		total += f.Duration
	}
	return total
}

// Valid reports whether the sequence can be registered and played
func (s *Sequence) Valid() bool {
	return s.FrameCount() > 0
}
