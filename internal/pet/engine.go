package pet

import (
	"log"
	"time"

	"vpet/internal/anim"
	"vpet/internal/clock"
)

// Engine owns the pet's attributes and its animations. It is driven by an
// outer timebase calling Tick; it never blocks or starts goroutines.
type Engine struct {
	rules  Rules
	clock  clock.Clock
	player *anim.Player

	attrs      Attributes
	animations anim.Set
	lastUpdate time.Time

	position Position
	size     Size

	listeners []Listener
}

// Options configures a new engine. Zero values select the defaults.
type Options struct {
	Clock      clock.Clock
	Rules      *Rules
	Attributes *Attributes
	Size       Size
}

// NewEngine creates a pet with the built-in animation set, playing Idle
func NewEngine(opts Options) *Engine {
	c := opts.Clock
	if c == nil {
		c = clock.System{}
	}
	rules := DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	attrs := NewAttributes()
	if opts.Attributes != nil {
		attrs = opts.Attributes.clamped()
	}
	size := opts.Size
	if size.Width <= 0 || size.Height <= 0 {
		size = Size{Width: DefaultWidth, Height: DefaultHeight}
	}

	e := &Engine{
		rules:      rules,
		clock:      c,
		player:     anim.NewPlayer(c),
		attrs:      attrs,
		animations: anim.DefaultSet(),
		lastUpdate: c.Now(),
		size:       size,
	}
	e.attrs.Mood = rules.MoodFor(e.attrs.Happiness)
	e.PlayAnimation(e.attrs.Animation)
	return e
}

// Tick advances the simulation to now
func (e *Engine) Tick(now time.Time) {
	delta := now.Sub(e.lastUpdate).Seconds()
	if delta < 0 {
		// Clock stepped backwards
		delta = 0
	}
	e.lastUpdate = now

	e.attrs = e.rules.decay(e.attrs, delta)
	e.emitPetData()

	if target := AnimationFor(e.attrs.Mood); target != e.attrs.Animation {
		e.playAt(target, now)
	}

	e.player.Tick(now)
}

// Update ticks the engine at its own clock's current time
func (e *Engine) Update() {
	e.Tick(e.clock.Now())
}

// Feed satisfies hunger and shows the Eating animation until the next
// tick picks the mood animation again.
func (e *Engine) Feed() {
	e.attrs.Hunger = clampStat(e.attrs.Hunger + e.rules.FeedHungerIncrease)
	e.attrs.Happiness = clampStat(e.attrs.Happiness + e.rules.FeedHappinessIncrease)
	e.PlayAnimation(anim.Eating)
	e.emitPetData()
}

// GiveWater satisfies thirst. It does not change the animation.
func (e *Engine) GiveWater() {
	e.attrs.Thirst = clampStat(e.attrs.Thirst + e.rules.WaterThirstIncrease)
	e.attrs.Happiness = clampStat(e.attrs.Happiness + e.rules.WaterHappinessBonus)
	e.emitPetData()
}

// OnPetted raises happiness and shows the Petted animation until the next tick
func (e *Engine) OnPetted() {
	e.attrs.Happiness = clampStat(e.attrs.Happiness + e.rules.PetHappinessIncrease)
	e.PlayAnimation(anim.Petted)
	e.emitPetData()
}

// MoveTo places the pet at pos
func (e *Engine) MoveTo(pos Position) {
	e.position = pos
	e.emitPosition()
}

// PlayAnimation switches to the sequence registered for c.
// Categories without a sequence are ignored.
func (e *Engine) PlayAnimation(c anim.Category) {
	e.playAt(c, e.clock.Now())
}

// playAt starts c with its first frame stamped at now
func (e *Engine) playAt(c anim.Category, now time.Time) bool {
	seq, ok := e.animations.Get(c)
	if !ok {
		return false
	}
	e.player.PlayAt(seq, now)
	e.attrs.Animation = c
	e.emitPetData()
	return true
}

// LoadAnimations replaces the animation set. Unplayable sequences are
// dropped; an empty result installs the placeholder set. When the active
// category is gone the player moves to a registered one.
func (e *Engine) LoadAnimations(set anim.Set) {
	valid := set.Valid()
	if len(valid) == 0 {
		log.Printf("No playable animations supplied, using placeholder")
		valid = anim.PlaceholderSet()
	}
	e.animations = valid
	log.Printf("Loaded animations: %v", valid.Categories())

	// Keep the active category if it survived, otherwise fall back to the
	// mood's animation, then to the first registered one
	candidates := append([]anim.Category{e.attrs.Animation, AnimationFor(e.attrs.Mood)}, valid.Categories()...)
	for _, c := range candidates {
		if e.playAt(c, e.clock.Now()) {
			return
		}
	}
}

// LoadAssets loads animations from basePath on top of the built-in set.
// When basePath cannot be scanned at all, only Idle is replaced by the
// placeholder frame.
func (e *Engine) LoadAssets(basePath string, loader *anim.Loader) {
	if loader == nil {
		loader = anim.NewLoader()
	}

	set, err := loader.LoadAll(basePath)
	if err != nil {
		log.Printf("Error loading animations: %v. Using placeholder.", err)
		e.LoadAnimations(anim.DefaultSet().Merge(anim.PlaceholderSet()))
		return
	}
	e.LoadAnimations(anim.DefaultSet().Merge(set))
}

// Snapshot returns a copy of the current attributes
func (e *Engine) Snapshot() Attributes { return e.attrs }

// Rules returns the rules the engine runs with
func (e *Engine) Rules() Rules { return e.rules }

// Position returns where the pet is
func (e *Engine) Position() Position { return e.position }

// Size returns the pet's on-screen size
func (e *Engine) Size() Size { return e.size }

// SetSize changes the pet's on-screen size
func (e *Engine) SetSize(s Size) { e.size = s }

// Player exposes the animation player, mostly for reading the cursor
func (e *Engine) Player() *anim.Player { return e.player }

// Animations returns a copy of the registered animation set
func (e *Engine) Animations() anim.Set { return e.animations.Valid() }
