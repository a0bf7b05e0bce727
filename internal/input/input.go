package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Action represents a logical action, not a physical key
type Action int

// Action constants using iota
const (
	ActionToggleInventory Action = iota
	ActionQuit
	ActionToggleProfiling
	ActionCount // Sentinel value for array sizing
)

// Key is a physical key code as reported by the windowing layer
type Key int

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota - 1
	ButtonLeft
	ButtonRight
	ButtonMiddle
	buttonCount
)

// EventType classifies a pointer event
type EventType int

const (
	// EventMove is a cursor move with no button held. The controller also
	// uses it as the idle per-frame event.
	EventMove EventType = iota
	EventPress
	EventRelease
	// EventDrag is a cursor move while a button is held
	EventDrag
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventDrag:
		return "drag"
	}
	return "unknown"
}

// Event is one pointer event in screen pixels
type Event struct {
	Type   EventType
	Button Button
	Pos    mgl32.Vec2
}

// Manager turns raw key, button and cursor callbacks into logical actions
// and a queue of pointer events for the frame.
type Manager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[Key][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool

	cursor  mgl32.Vec2
	buttons [buttonCount]bool
	events  []Event
}

// NewManager creates a Manager with no key bindings
func NewManager() *Manager {
	return &Manager{
		keyToActions: make(map[Key][]Action),
	}
}

// BindKey binds a physical key to a logical action
func (m *Manager) BindKey(key Key, action Action) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	m.keyToActions[key] = append(m.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (m *Manager) UnbindKey(key Key) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.keyToActions, key)
}

// HandleKeyEvent processes a key press or release
func (m *Manager) HandleKeyEvent(key Key, pressed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, act := range m.keyToActions[key] {
		// Detect edges immediately when event arrives
		if pressed && !m.currentState[act] {
			m.justPressed[act] = true
		}
		if !pressed && m.currentState[act] {
			m.justReleased[act] = true
		}
		m.currentState[act] = pressed
	}
}

// HandleButtonEvent queues a press or release at the current cursor
// position. Repeated presses of a held button are ignored.
func (m *Manager) HandleButtonEvent(button Button, pressed bool) {
	if button < 0 || button >= buttonCount {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.buttons[button] == pressed {
		return
	}
	m.buttons[button] = pressed

	typ := EventRelease
	if pressed {
		typ = EventPress
	}
	m.events = append(m.events, Event{Type: typ, Button: button, Pos: m.cursor})
}

// HandleCursorPos queues a move, or a drag when a button is held. The
// lowest held button wins when several are down.
func (m *Manager) HandleCursorPos(x, y float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cursor = mgl32.Vec2{float32(x), float32(y)}

	ev := Event{Type: EventMove, Button: ButtonNone, Pos: m.cursor}
	for b := ButtonLeft; b < buttonCount; b++ {
		if m.buttons[b] {
			ev.Type = EventDrag
			ev.Button = b
			break
		}
	}
	m.events = append(m.events, ev)
}

// Cursor returns the last known cursor position
func (m *Manager) Cursor() mgl32.Vec2 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cursor
}

// Drain returns the queued pointer events in arrival order and empties
// the queue. When nothing happened it returns a single move at the
// current cursor so hover state is refreshed every frame.
func (m *Manager) Drain() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.events) == 0 {
		return []Event{{Type: EventMove, Button: ButtonNone, Pos: m.cursor}}
	}
	out := m.events
	m.events = nil
	return out
}

// PostUpdate must be called at the end of each frame to reset edge flags
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.justReleased[action]
}
