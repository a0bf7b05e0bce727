package hud

import "gridinv/internal/input"

// Screen is what the host loop drives each frame
type Screen interface {
	// Handle applies one pointer event
	Handle(ev input.Event) Result
	// View returns the read-only snapshot to draw
	View() View
	// GetHoveredSlot returns the currently hovered slot index or -1
	GetHoveredSlot() int
	// IsActive returns whether this screen is currently active and should be rendered/processed
	IsActive() bool
}

// NullScreen is a null object pattern implementation of Screen interface
type NullScreen struct{}

// Handle implements Screen
func (s *NullScreen) Handle(ev input.Event) Result {
	return none()
}

// View implements Screen
func (s *NullScreen) View() View {
	return View{}
}

// GetHoveredSlot implements Screen
func (s *NullScreen) GetHoveredSlot() int {
	return -1
}

// IsActive implements Screen
func (s *NullScreen) IsActive() bool {
	return false
}
