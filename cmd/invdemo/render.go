package main

import (
	"fmt"
	"log/slog"
	"os"

	"gridinv/internal/assets"
	"gridinv/internal/graphics/softraster"
	"gridinv/internal/script"

	"github.com/spf13/cobra"
)

var (
	scriptPath string
	outputPath string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Replay a pointer script and write a PNG",
	Long: `Replay a YAML pointer-event script against the inventory without a window
and write the final frame to a PNG file.`,
	RunE: renderScript,
}

func init() {
	renderCmd.Flags().StringVar(&scriptPath, "script", "", "YAML event script (required)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "inventory.png", "PNG output path")
	_ = renderCmd.MarkFlagRequired("script")
}

func renderScript(cmd *cobra.Command, args []string) error {
	logger := slog.Default()

	sc, err := loadScene(logger)
	if err != nil {
		return err
	}

	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}
	results := s.Replay(sc.ctrl, logger)

	img := softraster.New(assets.NewIconStore(sc.cfg.Assets.IconsDir), logger).Render(sc.ctrl.View(), s.Width, s.Height)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := softraster.WritePNG(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Info("rendered", "output", outputPath, "steps", len(s.Steps), "changes", len(results), "items", sc.inv.Len())
	return nil
}
