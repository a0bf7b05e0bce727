package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// SetupWindowHandlers wires resize, focus and refresh callbacks. Input
// callbacks are installed by glfwbind.Attach.
func SetupWindowHandlers(app *App) {
	window := app.window

	// UI layout uses window (logical) coordinates, so the viewport
	// follows the framebuffer while projections follow the window size
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		winW, winH := w.GetSize()
		app.renderer.UpdateViewport(winW, winH)
	})

	// Losing focus mid-drag would strand the release event elsewhere
	window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused {
			app.report(app.controller.Cancel())
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
