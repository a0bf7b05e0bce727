// Package script replays recorded pointer sessions against a
// controller. The demo's render command uses it to produce screenshots
// without a window.
package script

import (
	"fmt"
	"log/slog"
	"os"

	"gridinv/internal/hud"
	"gridinv/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// StepToggle flips inventory visibility instead of sending a pointer event
const StepToggle = "toggle"

// Step is one scripted event. Type is move, press, release, drag or
// toggle; Button is left, right or middle.
type Step struct {
	Type   string  `yaml:"type"`
	Button string  `yaml:"button,omitempty"`
	X      float32 `yaml:"x"`
	Y      float32 `yaml:"y"`
}

// Script is a canvas size plus the steps to replay
type Script struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Steps  []Step `yaml:"steps"`
}

var eventTypes = map[string]input.EventType{
	"move":    input.EventMove,
	"press":   input.EventPress,
	"release": input.EventRelease,
	"drag":    input.EventDrag,
}

var buttons = map[string]input.Button{
	"":       input.ButtonNone,
	"left":   input.ButtonLeft,
	"right":  input.ButtonRight,
	"middle": input.ButtonMiddle,
}

// Load reads and validates a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("script canvas must be positive, got %dx%d", s.Width, s.Height)
	}
	for i, step := range s.Steps {
		if step.Type == StepToggle {
			continue
		}
		if _, err := step.Event(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return &s, nil
}

// Event converts the step to a pointer event
func (s Step) Event() (input.Event, error) {
	t, ok := eventTypes[s.Type]
	if !ok {
		return input.Event{}, fmt.Errorf("unknown event type %q", s.Type)
	}
	b, ok := buttons[s.Button]
	if !ok {
		return input.Event{}, fmt.Errorf("unknown button %q", s.Button)
	}
	if (t == input.EventPress || t == input.EventRelease) && b == input.ButtonNone {
		return input.Event{}, fmt.Errorf("%s needs a button", s.Type)
	}
	if t == input.EventDrag && b == input.ButtonNone {
		b = input.ButtonLeft
	}
	return input.Event{Type: t, Button: b, Pos: mgl32.Vec2{s.X, s.Y}}, nil
}

// Replay feeds every step to ctrl in order and returns the results that
// changed something.
func (s *Script) Replay(ctrl *hud.Controller, logger *slog.Logger) []hud.Result {
	if logger == nil {
		logger = slog.Default()
	}
	var out []hud.Result
	for i, step := range s.Steps {
		if step.Type == StepToggle {
			ctrl.Toggle()
			logger.Debug("toggled inventory", "step", i, "visible", ctrl.Visible())
			continue
		}
		// Parse already validated every step
		ev, _ := step.Event()
		res := ctrl.Active().Handle(ev)
		if res.Kind == hud.ResultNone {
			continue
		}
		logger.Debug("step applied", "step", i, "kind", res.Kind.String(), "slot", res.Slot, "target", res.Target)
		out = append(out, res)
	}
	return out
}
