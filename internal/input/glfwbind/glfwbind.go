// Package glfwbind feeds GLFW window callbacks into an input.Manager.
package glfwbind

import (
	"gridinv/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// BindDefaults installs the default key bindings: I toggles the
// inventory, F3 shows frame timings, Escape quits.
func BindDefaults(im *input.Manager) {
	im.BindKey(input.Key(glfw.KeyI), input.ActionToggleInventory)
	im.BindKey(input.Key(glfw.KeyTab), input.ActionToggleInventory)
	im.BindKey(input.Key(glfw.KeyF3), input.ActionToggleProfiling)
	im.BindKey(input.Key(glfw.KeyEscape), input.ActionQuit)
}

// Attach sets the key, mouse button and cursor callbacks on window.
// This should be called once during initialization
func Attach(window *glfw.Window, im *input.Manager) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		im.HandleKeyEvent(input.Key(key), action == glfw.Press)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := mapButton(button)
		if b == input.ButtonNone {
			return
		}
		im.HandleButtonEvent(b, action == glfw.Press)
	})

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		im.HandleCursorPos(xpos, ypos)
	})

	// Seed the cursor so the first frame hovers correctly
	x, y := window.GetCursorPos()
	im.HandleCursorPos(x, y)
}

func mapButton(button glfw.MouseButton) input.Button {
	switch button {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft
	case glfw.MouseButtonRight:
		return input.ButtonRight
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle
	}
	return input.ButtonNone
}
