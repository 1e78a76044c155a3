package drag

import (
	"vpet/internal/pet"
)

// minVisibleRows keeps a usable play area on tiny terminals
const minVisibleRows = 6

// Mover is the part of the engine a drag needs
type Mover interface {
	Position() pet.Position
	MoveTo(pos pet.Position)
}

// Tracker turns pointer press/move/release into clamped pet positions,
// measured in terminal cells.
type Tracker struct {
	target Mover

	// Sprite footprint used for hit testing and clamping
	SpriteWidth  int
	SpriteHeight int

	termWidth  int
	termHeight int

	active       bool
	grabX, grabY float64
}

// NewTracker creates a tracker moving target
func NewTracker(target Mover, spriteWidth, spriteHeight int) *Tracker {
	return &Tracker{
		target:       target,
		SpriteWidth:  max(spriteWidth, 1),
		SpriteHeight: max(spriteHeight, 1),
	}
}

// Resize sets the terminal size and pulls the pet back inside it
func (t *Tracker) Resize(width, height int) {
	t.termWidth = width
	t.termHeight = height
	t.clamp()
}

// Begin starts a drag if (x, y) is on the pet. The grab offset is kept so
// the pet does not jump to the pointer.
func (t *Tracker) Begin(x, y int) bool {
	if !t.Hit(x, y) {
		return false
	}
	pos := t.target.Position()
	t.active = true
	t.grabX = float64(x) - pos.X
	t.grabY = float64(y) - pos.Y
	return true
}

// Move drags the pet to follow the pointer
func (t *Tracker) Move(x, y int) {
	if !t.active {
		return
	}
	t.moveTo(pet.Position{X: float64(x) - t.grabX, Y: float64(y) - t.grabY})
}

// End releases the pet where it is
func (t *Tracker) End() {
	t.active = false
	t.grabX, t.grabY = 0, 0
}

// Active reports whether a drag is in progress
func (t *Tracker) Active() bool { return t.active }

// Nudge moves the pet by (dx, dy) cells, for keyboard control
func (t *Tracker) Nudge(dx, dy int) {
	pos := t.target.Position()
	t.moveTo(pet.Position{X: pos.X + float64(dx), Y: pos.Y + float64(dy)})
}

// Hit reports whether (x, y) falls on the pet's sprite
func (t *Tracker) Hit(x, y int) bool {
	pos := t.target.Position()
	fx, fy := float64(x), float64(y)
	return fx >= pos.X && fx < pos.X+float64(t.SpriteWidth) &&
		fy >= pos.Y && fy < pos.Y+float64(t.SpriteHeight)
}

func (t *Tracker) moveTo(pos pet.Position) {
	clamped := t.bounded(pos)
	if clamped == t.target.Position() {
		return
	}
	t.target.MoveTo(clamped)
}

func (t *Tracker) clamp() {
	t.moveTo(t.target.Position())
}

// bounded forces pos into the visible area. Before the first Resize the
// area is unknown and only negative coordinates are rejected.
func (t *Tracker) bounded(pos pet.Position) pet.Position {
	pos.X = max(pos.X, 0)
	pos.Y = max(pos.Y, 0)
	if t.termWidth <= 0 || t.termHeight <= 0 {
		return pos
	}
	pos.X = min(pos.X, float64(t.maxX()))
	pos.Y = min(pos.Y, float64(t.maxY()))
	return pos
}

func (t *Tracker) visibleRows() int {
	if t.termHeight <= 0 {
		return 0
	}
	return max(t.termHeight, minVisibleRows)
}

func (t *Tracker) maxX() int {
	return max(t.termWidth-t.SpriteWidth, 0)
}

func (t *Tracker) maxY() int {
	return max(t.visibleRows()-t.SpriteHeight, 0)
}
