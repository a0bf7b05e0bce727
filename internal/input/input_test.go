package input

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointerEventQueue(t *testing.T) {
	m := NewManager()

	m.HandleCursorPos(10, 20)
	m.HandleButtonEvent(ButtonLeft, true)
	m.HandleButtonEvent(ButtonLeft, true) // held, ignored
	m.HandleCursorPos(30, 40)
	m.HandleButtonEvent(ButtonLeft, false)

	events := m.Drain()
	require.Len(t, events, 4)
	assert.Equal(t, Event{Type: EventMove, Button: ButtonNone, Pos: mgl32.Vec2{10, 20}}, events[0])
	assert.Equal(t, Event{Type: EventPress, Button: ButtonLeft, Pos: mgl32.Vec2{10, 20}}, events[1])
	assert.Equal(t, Event{Type: EventDrag, Button: ButtonLeft, Pos: mgl32.Vec2{30, 40}}, events[2])
	assert.Equal(t, Event{Type: EventRelease, Button: ButtonLeft, Pos: mgl32.Vec2{30, 40}}, events[3])

	// Empty frame yields an idle move at the cursor
	idle := m.Drain()
	require.Len(t, idle, 1)
	assert.Equal(t, EventMove, idle[0].Type)
	assert.Equal(t, mgl32.Vec2{30, 40}, idle[0].Pos)
}

func TestDragUsesHeldButton(t *testing.T) {
	m := NewManager()
	m.HandleButtonEvent(ButtonRight, true)
	m.HandleCursorPos(5, 5)

	events := m.Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventDrag, events[1].Type)
	assert.Equal(t, ButtonRight, events[1].Button)
}

func TestInvalidButtonIgnored(t *testing.T) {
	m := NewManager()
	m.HandleButtonEvent(ButtonNone, true)
	m.HandleButtonEvent(Button(7), true)

	events := m.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventMove, events[0].Type)
}

func TestActionEdges(t *testing.T) {
	const keyI Key = 73
	m := NewManager()
	m.BindKey(keyI, ActionToggleInventory)

	m.HandleKeyEvent(keyI, true)
	assert.True(t, m.JustPressed(ActionToggleInventory))
	assert.True(t, m.IsActive(ActionToggleInventory))

	m.PostUpdate()
	assert.False(t, m.JustPressed(ActionToggleInventory))
	assert.True(t, m.IsActive(ActionToggleInventory))

	m.HandleKeyEvent(keyI, false)
	assert.True(t, m.JustReleased(ActionToggleInventory))
	assert.False(t, m.IsActive(ActionToggleInventory))

	m.UnbindKey(keyI)
	m.PostUpdate()
	m.HandleKeyEvent(keyI, true)
	assert.False(t, m.JustPressed(ActionToggleInventory))
	assert.False(t, m.IsActive(ActionCount))
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "drag", EventDrag.String())
	assert.Equal(t, "unknown", EventType(42).String())
}
