package hud

import (
	"gridinv/internal/config"
	"gridinv/internal/ui/layout"
)

// Fixed sizes of the popups, in pixels.
const (
	TooltipWidth     = 200
	TooltipHeight    = 150
	MenuWidth        = 80
	MenuButtonHeight = 20
)

// View is a read-only snapshot of everything the renderer draws in one
// frame. A zero View (Visible false) draws nothing.
type View struct {
	Visible bool
	State   State
	Hovered int

	Panel layout.Rect
	// Cells holds every grid cell, occupied or not, for the empty boxes
	Cells []layout.Rect
	// Slots holds the occupied slots. The dragged slot, if any, is last
	// and its rect follows the pointer.
	Slots []SlotView

	Tooltip *TooltipView
	Menu    *MenuView

	PanelStyle   *config.Style
	TooltipStyle *config.Style
}

// SlotView is one occupied slot
type SlotView struct {
	Index     int
	Rect      layout.Rect
	ItemID    string
	Name      string
	Image     string
	Tooltip   string
	Stackable bool
	// Count is the stack size for stackable items, 0 otherwise
	Count   int
	Dragged bool
}

// TooltipView is the hover box
type TooltipView struct {
	Rect layout.Rect
	Text string
}

// MenuView is the right-click options menu
type MenuView struct {
	Slot    int
	Rect    layout.Rect
	Buttons []ButtonView
}

// ButtonView is one menu entry
type ButtonView struct {
	Label   string
	Rect    layout.Rect
	Hovered bool
}
