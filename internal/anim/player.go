package anim

import (
	"time"

	"vpet/internal/clock"
)

// PlayerListener receives playback notifications.
// Calls happen synchronously inside Play and Tick, in subscription order.
type PlayerListener interface {
	SequenceChanged(seq *Sequence)
	FrameChanged(frame Frame)
}

// Player steps through the frames of the active sequence
type Player struct {
	clock     clock.Clock
	listeners []PlayerListener

	current   *Sequence
	index     int
	lastFrame time.Time
}

// NewPlayer creates an idle player. A nil clock uses the system clock.
func NewPlayer(c clock.Clock) *Player {
	if c == nil {
		c = clock.System{}
	}
	return &Player{clock: c}
}

// Subscribe registers l for sequence and frame notifications
func (p *Player) Subscribe(l PlayerListener) {
	if l != nil {
		p.listeners = append(p.listeners, l)
	}
}

// Play switches to seq and restarts at its first frame.
// Playing the sequence that is already active does nothing, so repeated requests
// for the same category don't restart it. Unplayable sequences are ignored.
func (p *Player) Play(seq *Sequence) {
	p.PlayAt(seq, p.clock.Now())
}

// PlayAt is Play with the first frame stamped at now, for callers that drive
// Tick from their own timebase.
func (p *Player) PlayAt(seq *Sequence, now time.Time) {
	if seq == p.current || !seq.Valid() {
		return
	}

	p.current = seq
	p.index = 0
	p.lastFrame = now

	p.emitSequence(seq)
	if frame, ok := p.CurrentFrame(); ok {
		p.emitFrame(frame)
	}
}

// Stop drops the active sequence without notifying anyone
func (p *Player) Stop() {
	p.current = nil
	p.index = 0
	p.lastFrame = time.Time{}
}

// Tick advances at most one frame once the current frame's duration has
// elapsed since the last frame change. A now earlier than the last change
// (clock stepped back, or a different timebase) restarts the current frame at now.
func (p *Player) Tick(now time.Time) {
	frame, ok := p.CurrentFrame()
	if !ok {
		return
	}

	if now.Before(p.lastFrame) {
		p.lastFrame = now
		return
	}
	if now.Sub(p.lastFrame) < frame.Duration {
		return
	}

	p.index++
	if p.index >= p.current.FrameCount() {
		if !p.current.Looping() {
			// Rest on the last frame
			p.index = p.current.FrameCount() - 1
			return
		}
		p.index = 0
	}

	p.lastFrame = now
	if frame, ok := p.CurrentFrame(); ok {
		p.emitFrame(frame)
	}
}

// Sequence returns the active sequence, nil when idle
func (p *Player) Sequence() *Sequence { return p.current }

// FrameIndex returns the cursor position within the active sequence
func (p *Player) FrameIndex() int { return p.index }

// Playing reports whether a sequence is active
func (p *Player) Playing() bool { return p.current != nil }

// CurrentFrame returns the frame under the cursor
func (p *Player) CurrentFrame() (Frame, bool) {
	if p.current == nil {
		return Frame{}, false
	}
	return p.current.FrameAt(p.index)
}

// Finished reports whether a non-looping sequence has shown its last frame
// for that frame's full duration.
func (p *Player) Finished(now time.Time) bool {
	if p.current == nil || p.current.Looping() {
		return false
	}
	if p.index < p.current.FrameCount()-1 {
		return false
	}
	frame, _ := p.CurrentFrame()
	return now.Sub(p.lastFrame) >= frame.Duration
}

func (p *Player) emitSequence(seq *Sequence) {
	for _, l := range p.listeners {
		l.SequenceChanged(seq)
	}
}

func (p *Player) emitFrame(frame Frame) {
	for _, l := range p.listeners {
		l.FrameChanged(frame)
	}
}
