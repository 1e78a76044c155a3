package pet

import "vpet/internal/anim"

// Listener receives every notification the engine produces.
// All calls are synchronous and made on the goroutine that called the engine,
// in the order listeners subscribed. A slow listener stalls the caller.
type Listener interface {
	anim.PlayerListener
	PetDataChanged(attrs Attributes)
	PositionChanged(pos Position)
}

// ListenerFuncs adapts optional functions to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	OnPetData  func(Attributes)
	OnPosition func(Position)
	OnFrame    func(anim.Frame)
	OnSequence func(*anim.Sequence)
}

// PetDataChanged implements Listener
func (f ListenerFuncs) PetDataChanged(attrs Attributes) {
	if f.OnPetData != nil {
		f.OnPetData(attrs)
	}
}

// PositionChanged implements Listener
func (f ListenerFuncs) PositionChanged(pos Position) {
	if f.OnPosition != nil {
		f.OnPosition(pos)
	}
}

// FrameChanged implements anim.PlayerListener
func (f ListenerFuncs) FrameChanged(frame anim.Frame) {
	if f.OnFrame != nil {
		f.OnFrame(frame)
	}
}

// SequenceChanged implements anim.PlayerListener
func (f ListenerFuncs) SequenceChanged(seq *anim.Sequence) {
	if f.OnSequence != nil {
		f.OnSequence(seq)
	}
}

// Subscribe registers l for pet, position and playback notifications
func (e *Engine) Subscribe(l Listener) {
	if l == nil {
		return
	}
	e.listeners = append(e.listeners, l)
	e.player.Subscribe(l)
}

func (e *Engine) emitPetData() {
	snapshot := e.attrs
	for _, l := range e.listeners {
		l.PetDataChanged(snapshot)
	}
}

func (e *Engine) emitPosition() {
	for _, l := range e.listeners {
		l.PositionChanged(e.position)
	}
}
