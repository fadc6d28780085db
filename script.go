package arcana

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in an input script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level YAML structure for an input script.
type script struct {
	Steps []ScriptStep `yaml:"steps"`
	// Exit stops the game loop once every step has run.
	Exit bool `yaml:"exit"`
}

var scriptActions = map[string]bool{
	"screenshot": true,
	"click":      true,
	"drag":       true,
	"hover":      true,
	"wait":       true,
}

// ScriptRunner sequences injected input events and screenshots across frames
// for automated visual checks. Attach to a Scene via SetScript.
type ScriptRunner struct {
	steps     []ScriptStep
	exit      bool
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a YAML input script:
//
//	exit: true
//	steps:
//	  - {action: screenshot, label: initial}
//	  - {action: drag, from_x: 200, from_y: 150, to_x: 200, to_y: 700, frames: 20}
//	  - {action: wait, frames: 30}
//	  - {action: click, x: 520, y: 150}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps, exit: sc.Exit}, nil
}

// SetScript attaches a ScriptRunner to the scene. The runner's step method
// is called from Scene.Update before input is processed each frame.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// ExitWhenDone reports whether the game loop should stop after the last step.
func (r *ScriptRunner) ExitWhenDone() bool {
	return r.exit
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
