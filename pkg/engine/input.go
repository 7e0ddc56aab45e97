package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input keeps a per-frame snapshot of keyboard state so the simulation
// can ask for edge transitions (just pressed, just released) as well as
// held keys.
type Input struct {
	poll func() []ebiten.Key
	down map[ebiten.Key]bool
	prev map[ebiten.Key]bool
}

// NewInput creates an input snapshot polled from ebitengine.
func NewInput() *Input {
	return NewInputWithPoll(func() []ebiten.Key {
		return inpututil.AppendPressedKeys(nil)
	})
}

// NewInputWithPoll allows tests (and headless runs) to substitute the
// key source. A nil poll reports no keys.
func NewInputWithPoll(poll func() []ebiten.Key) *Input {
	return &Input{
		poll: poll,
		down: make(map[ebiten.Key]bool),
		prev: make(map[ebiten.Key]bool),
	}
}

// Update takes a fresh snapshot. Call once per frame before the
// simulation ticks.
func (in *Input) Update() {
	in.prev = in.down
	in.down = make(map[ebiten.Key]bool)
	if in.poll == nil {
		return
	}
	for _, key := range in.poll() {
		in.down[key] = true
	}
}

// IsDown reports whether key is held in the current snapshot.
func (in *Input) IsDown(key ebiten.Key) bool {
	return in.down[key]
}

// JustPressed reports whether key went down this frame.
func (in *Input) JustPressed(key ebiten.Key) bool {
	return in.down[key] && !in.prev[key]
}

// JustReleased reports whether key went up this frame.
func (in *Input) JustReleased(key ebiten.Key) bool {
	return !in.down[key] && in.prev[key]
}
