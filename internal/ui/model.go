package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"vpet/internal/anim"
	"vpet/internal/clock"
	"vpet/internal/drag"
	"vpet/internal/pet"
)

const (
	// DefaultTickInterval drives the engine at 20 Hz
	DefaultTickInterval = 50 * time.Millisecond

	messageDuration = 3 * time.Second
	panelRows       = 11
	minPlayRows     = 6
)

// display is what the engine last told us. Listener callbacks write it,
// so it lives behind a pointer shared by every copy of Model.
type display struct {
	attrs    pet.Attributes
	position pet.Position
	frame    anim.Frame
	sequence *anim.Sequence
}

// Model hosts a pet engine in the terminal
type Model struct {
	engine   *pet.Engine
	tracker  *drag.Tracker
	clock    clock.Clock
	interval time.Duration
	shown    *display

	Message        string
	MessageExpires time.Time
	Quitting       bool

	width  int
	height int
}

type tickMsg time.Time

// NewModel wraps engine. A nil clock uses the system clock; a non-positive
// interval uses DefaultTickInterval.
func NewModel(engine *pet.Engine, c clock.Clock, interval time.Duration) Model {
	if c == nil {
		c = clock.System{}
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}

	shown := &display{
		attrs:    engine.Snapshot(),
		position: engine.Position(),
		sequence: engine.Player().Sequence(),
	}
	if frame, ok := engine.Player().CurrentFrame(); ok {
		shown.frame = frame
	}

	engine.Subscribe(pet.ListenerFuncs{
		OnPetData:  func(a pet.Attributes) { shown.attrs = a },
		OnPosition: func(p pet.Position) { shown.position = p },
		OnFrame:    func(f anim.Frame) { shown.frame = f },
		OnSequence: func(s *anim.Sequence) {
			shown.sequence = s
			log.Printf("Playing %s (%s, %d frames)", s.Name(), s.Category(), s.FrameCount())
		},
	})

	w, h := SpriteSize()
	return Model{
		engine:   engine,
		tracker:  drag.NewTracker(engine, w, h),
		clock:    c,
		interval: interval,
		shown:    shown,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.Quitting = true
			return m, tea.Quit
		case "f":
			m.engine.Feed()
			m.setMessage("🍖 Yum!")
		case "w":
			m.engine.GiveWater()
			m.setMessage("💧 Gulp!")
		case "p":
			m.engine.OnPetted()
			m.setMessage("💕 Purr...")
		case "up", "k":
			m.tracker.Nudge(0, -1)
		case "down", "j":
			m.tracker.Nudge(0, 1)
		case "left", "h":
			m.tracker.Nudge(-1, 0)
		case "right", "l":
			m.tracker.Nudge(1, 0)
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tracker.Resize(m.width, m.playRows())
		return m, nil

	case tickMsg:
		m.engine.Tick(time.Time(msg))
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.tracker.Begin(msg.X, msg.Y)
		case tea.MouseButtonRight:
			if m.tracker.Hit(msg.X, msg.Y) {
				m.engine.OnPetted()
				m.setMessage("💕 Purr...")
			}
		}
	case tea.MouseActionMotion:
		m.tracker.Move(msg.X, msg.Y)
	case tea.MouseActionRelease:
		m.tracker.End()
	}
}

func (m *Model) setMessage(msg string) {
	m.Message = msg
	m.MessageExpires = m.clock.Now().Add(messageDuration)
}

// Dragging reports whether the pet is held by the pointer
func (m Model) Dragging() bool { return m.tracker.Active() }

func (m Model) playRows() int {
	return max(m.height-panelRows, minPlayRows)
}
