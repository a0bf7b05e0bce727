// Package main is the inventory demo: an OpenGL window or a headless
// renderer over the same controller.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

// GLFW and GL calls must stay on the main thread
func init() { runtime.LockOSThread() }

var (
	configPath  string
	catalogPath string
	logLevel    string
	sequential  bool
)

var rootCmd = &cobra.Command{
	Use:   "invdemo",
	Short: "Drag-and-drop inventory grid demo",
	Long:  `invdemo shows an inventory grid with dragging, stacking, tooltips and an options menu.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(logLevel)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (built-in defaults when empty)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "YAML item catalog (built-in sample scene when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&sequential, "sequential-ids", false, "number items 0,1,2... instead of UUIDs")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(renderCmd)
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closer.Exit(1)
	}
	// Runs the bound cleanups and exits
	closer.Close()
}
