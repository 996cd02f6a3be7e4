package canvas

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/phanxgames/moodboard"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
	Key     string  `json:"key,omitempty"`
	Kind    string  `json:"kind,omitempty"`
	Content string  `json:"content,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected input, item commands and screenshots
// across frames for automated runs. Attach to a Canvas with SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses and validates a JSON input script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads a script from disk.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "click", "drag", "wait", "screenshot":
		return nil
	case "key":
		_, err := parseKey(st.Key)
		return err
	case "add":
		kind, err := moodboard.ParseItemKind(st.Kind)
		if err != nil {
			return err
		}
		if kind == moodboard.ItemSwatch {
			_, err = moodboard.ParseHexColor(st.Content)
		}
		return err
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// SetScript attaches a runner. Its step method runs at the start of every
// Update, before input is read.
func (c *Canvas) SetScript(r *ScriptRunner) {
	c.runner = r
}

// Done reports whether every step has been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(c *Canvas) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if c.Pending() {
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
		c.Screenshot(st.Label)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "key":
		k, _ := parseKey(st.Key)
		c.InjectKey(k)
	case "add":
		kind, _ := moodboard.ParseItemKind(st.Kind)
		if !c.Send(moodboard.AddItemEvent{Kind: kind, Content: st.Content}) {
			c.log.Warnf("script: add dropped, command queue full")
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !c.Pending() {
		r.done = true
	}
}
