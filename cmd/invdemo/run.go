package main

import (
	"fmt"
	"log/slog"

	"gridinv/internal/assets"
	"gridinv/internal/game"
	"gridinv/internal/graphics/renderables/inventory"
	"gridinv/internal/graphics/renderables/overlay"
	renderer "gridinv/internal/graphics/renderer"
	"gridinv/internal/input"
	"gridinv/internal/input/glfwbind"
	"gridinv/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the inventory in a window",
	Long: `Open an OpenGL window with the inventory grid.
I or Tab toggles the inventory, F3 shows frame timings, Escape quits.`,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	sc, err := loadScene(logger)
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := game.SetupWindow(sc.cfg.Window)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer window.Destroy()

	im := input.NewManager()
	glfwbind.BindDefaults(im)
	glfwbind.Attach(window, im)

	stats := &profiling.FrameStats{}
	ov := overlay.New(stats)
	invRenderer := inventory.New(assets.NewIconStore(sc.cfg.Assets.IconsDir), sc.cfg.Assets.Font, sc.cfg.Assets.FontSize, logger)

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height, invRenderer, ov)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	defer r.Dispose()

	app := game.NewApp(window, im, sc.ctrl, r, ov, stats, logger)
	game.SetupWindowHandlers(app)

	logger.Info("inventory ready", "items", sc.inv.Len(), "capacity", sc.inv.Capacity())
	app.Run(cmd.Context())
	return nil
}
