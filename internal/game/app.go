// Package game runs the windowed inventory demo: it pumps GLFW events
// through the input manager into the controller and renders the view.
package game

import (
	"context"
	"log/slog"
	"time"

	"gridinv/internal/graphics/renderables/overlay"
	renderer "gridinv/internal/graphics/renderer"
	"gridinv/internal/hud"
	"gridinv/internal/input"
	"gridinv/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is the processing time above which a frame is logged
const slowFrame = 16 * time.Millisecond

// App owns the main loop
type App struct {
	window       *glfw.Window
	inputManager *input.Manager
	controller   *hud.Controller
	renderer     *renderer.Renderer
	overlay      *overlay.Overlay
	stats        *profiling.FrameStats
	fpsLimiter   *FPSLimiter
	logger       *slog.Logger

	lastTime time.Time
}

// NewApp assembles the loop. The overlay must be one of r's renderables
// and read from stats.
func NewApp(window *glfw.Window, im *input.Manager, ctrl *hud.Controller, r *renderer.Renderer, ov *overlay.Overlay, stats *profiling.FrameStats, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		window:       window,
		inputManager: im,
		controller:   ctrl,
		renderer:     r,
		overlay:      ov,
		stats:        stats,
		fpsLimiter:   NewFPSLimiter(),
		logger:       logger,
		lastTime:     time.Now(),
	}
}

// Run loops until the window closes or ctx is cancelled
func (a *App) Run(ctx context.Context) {
	for !a.window.ShouldClose() {
		select {
		case <-ctx.Done():
			a.logger.Info("stopping", "reason", context.Cause(ctx))
			return
		default:
		}
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	glfw.PollEvents()

	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionToggleProfiling) {
		a.overlay.Toggle()
	}
	if a.inputManager.JustPressed(input.ActionToggleInventory) {
		a.controller.Toggle()
		a.logger.Debug("inventory toggled", "visible", a.controller.Visible())
	}

	for _, ev := range a.inputManager.Drain() {
		a.report(a.controller.Active().Handle(ev))
	}

	a.renderer.Render(a.controller.View(), dt)
	a.window.SwapBuffers()

	processing := time.Since(startTick)
	a.stats.Record(processing, time.Now())
	if processing > slowFrame {
		a.logger.Warn("slow frame", "duration", processing, "top", profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(!a.controller.Visible())
}

// report logs every result that changed something
func (a *App) report(res hud.Result) {
	if res.Kind == hud.ResultNone {
		return
	}
	a.logger.Debug("inventory event",
		"kind", res.Kind.String(),
		"slot", res.Slot,
		"target", res.Target,
		"item", res.ItemID,
		"ok", res.OK,
	)
}

// RefreshRender repaints during window resizes
func (a *App) RefreshRender() {
	a.renderer.Render(a.controller.View(), 0)
	a.window.SwapBuffers()
}
