package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Config holds all demo and inventory configuration
type Config struct {
	Inventory InventoryConfig `yaml:"inventory"`
	Window    WindowConfig    `yaml:"window"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// InventoryConfig describes the grid, its capacity and feature toggles
type InventoryConfig struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	MaxItems   int     `yaml:"max_items"`
	SlotWidth  float32 `yaml:"slot_width"`
	SlotHeight float32 `yaml:"slot_height"`
	OriginX    float32 `yaml:"origin_x"`
	OriginY    float32 `yaml:"origin_y"`
	// Inset and Gap default to 5px when omitted
	Inset *float32 `yaml:"inset"`
	Gap   *float32 `yaml:"gap"`

	Visible  bool `yaml:"visible"`
	Tooltips bool `yaml:"tooltips"`
	Dragging bool `yaml:"dragging"`
	Options  bool `yaml:"options"`

	// Optional style overrides; nil keeps the built-in look
	PanelStyle   *Style `yaml:"panel_style"`
	TooltipStyle *Style `yaml:"tooltip_style"`
}

// Style overrides the colors of a box. Colors are RGBA in [0,1].
type Style struct {
	Background mgl32.Vec4 `yaml:"background"`
	Border     mgl32.Vec4 `yaml:"border"`
	Text       mgl32.Vec4 `yaml:"text"`
}

// WindowConfig holds demo window settings
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	FPSLimit int    `yaml:"fps_limit"`
}

// AssetsConfig locates item icons and the label font
type AssetsConfig struct {
	// IconsDir holds <image>.png files named after Item.Image
	IconsDir string `yaml:"icons_dir"`
	// Font is a TrueType/OpenType file; empty uses the built-in bitmap face
	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`
}

// Default returns the configuration of the sample scene: a 4x5 grid of
// 50px slots with every feature enabled.
func Default() Config {
	return Config{
		Inventory: InventoryConfig{
			Rows:       4,
			Cols:       5,
			MaxItems:   20,
			SlotWidth:  50,
			SlotHeight: 50,
			OriginX:    20,
			OriginY:    20,
			Visible:    true,
			Tooltips:   true,
			Dragging:   true,
			Options:    true,
		},
		Window: WindowConfig{
			Width:    900,
			Height:   600,
			Title:    "gridinv",
			FPSLimit: 60,
		},
		Assets: AssetsConfig{
			IconsDir: "assets/icons",
			FontSize: 14,
		},
	}
}

// Load reads configuration from a YAML file. Keys missing from the file
// keep their Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the grid can display every slot the inventory
// may hold.
func (c Config) Validate() error {
	inv := c.Inventory
	var errs []error
	if inv.Rows <= 0 || inv.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid must have positive rows and cols, got %dx%d", inv.Rows, inv.Cols))
	}
	if inv.MaxItems <= 0 {
		errs = append(errs, fmt.Errorf("max_items must be positive, got %d", inv.MaxItems))
	}
	if inv.MaxItems > inv.Rows*inv.Cols {
		errs = append(errs, fmt.Errorf("max_items %d exceeds grid cells %d", inv.MaxItems, inv.Rows*inv.Cols))
	}
	if inv.SlotWidth <= 0 || inv.SlotHeight <= 0 {
		errs = append(errs, fmt.Errorf("slot size must be positive, got %vx%v", inv.SlotWidth, inv.SlotHeight))
	}
	if inv.Inset != nil && *inv.Inset < 0 {
		errs = append(errs, errors.New("inset must not be negative"))
	}
	if inv.Gap != nil && *inv.Gap < 0 {
		errs = append(errs, errors.New("gap must not be negative"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Assets.Font != "" && c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font_size must be positive, got %d", c.Assets.FontSize))
	}
	return errors.Join(errs...)
}
