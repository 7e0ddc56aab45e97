package engine

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ianmurfinxyz/snake/pkg/logger"
)

// ErrTerminated is returned when the game loop is terminated.
var ErrTerminated = errors.New("engine terminated")

const (
	// WindowWidth and WindowHeight are the logical screen dimensions.
	WindowWidth  = 600
	WindowHeight = 600

	// maxTicksPerFrame bounds how far the simulation catches up after a
	// stalled frame; any further backlog carries over to later frames.
	maxTicksPerFrame = 5

	// minFramePeriod paces the headless loop.
	minFramePeriod = 10 * time.Millisecond
)

// Game drives a fixed-tick simulation from ebitengine's frame loop.
// Frames arrive at whatever rate the display runs; the metronome turns
// elapsed time into ticks so the simulation speed stays constant.
type Game struct {
	clock            *Clock
	metronome        *Metronome
	input            *Input
	sim              Simulation
	renderer         Renderer
	ticksAccumulated int64
	headless         bool
	timeout          time.Duration
	terminated       atomic.Bool
}

// NewGame creates a game running sim at tickRate ticks per second and
// drawing frames with renderer.
func NewGame(sim Simulation, renderer Renderer, tickRate int) *Game {
	return &Game{
		clock:     NewClock(),
		metronome: NewMetronome(0, time.Second/time.Duration(tickRate)),
		input:     NewInput(),
		sim:       sim,
		renderer:  renderer,
	}
}

// SetHeadless enables or disables headless mode. Headless runs skip
// rendering and do not poll the keyboard.
func (g *Game) SetHeadless(enabled bool) {
	g.headless = enabled
	if enabled {
		g.input = NewInputWithPoll(nil)
		logger.Get().Info("headless mode enabled")
	}
}

// SetTimeout stops the game after the given run time.
// A timeout of 0 means no timeout.
func (g *Game) SetTimeout(timeout time.Duration) {
	g.timeout = timeout
	if timeout > 0 {
		logger.Get().Info("timeout set", "timeout", timeout)
	}
}

// Terminate requests that the game loop stop.
func (g *Game) Terminate() {
	if !g.terminated.Swap(true) {
		logger.Get().Info("termination requested")
	}
}

// IsTerminated reports whether termination has been requested.
func (g *Game) IsTerminated() bool {
	return g.terminated.Load()
}

// checkTermination reports whether the loop should stop this frame.
func (g *Game) checkTermination() bool {
	if g.terminated.Load() {
		return true
	}
	if g.sim.Done() {
		logger.Get().Info("simulation finished")
		return true
	}
	if g.timeout > 0 && g.clock.Elapsed() >= g.timeout {
		logger.Get().Info("timeout exceeded", "elapsed", g.clock.Elapsed())
		return true
	}
	return false
}

// Update advances the simulation. Part of the ebiten.Game interface.
func (g *Game) Update() error {
	g.input.Update()
	if g.input.JustPressed(ebiten.KeyEscape) {
		g.Terminate()
	}
	g.sim.HandleInput(g.input)

	g.clock.Update()
	g.ticksAccumulated += g.metronome.DoTicks(g.clock.Elapsed())

	ticksDoneThisFrame := 0
	for g.ticksAccumulated > 0 && ticksDoneThisFrame < maxTicksPerFrame {
		ticksDoneThisFrame++
		g.ticksAccumulated--
		g.sim.Tick(g.metronome.TickPeriodSeconds())
	}

	if g.checkTermination() {
		return ErrTerminated
	}
	return nil
}

// Draw renders the current frame. Part of the ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.headless {
		return
	}
	g.renderer.RenderFrame(screen)
}

// Layout reports the logical screen size. Part of the ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

// RunHeadless drives the simulation without a window until it finishes,
// is terminated, or the timeout expires.
func (g *Game) RunHeadless() error {
	g.SetHeadless(true)
	logger.Get().Info("headless run started", "tick_period", g.metronome.TickPeriod())
	for {
		if err := g.Update(); err != nil {
			if errors.Is(err, ErrTerminated) {
				logger.Get().Info("headless run finished", "ticks", g.metronome.TotalTicks())
				return nil
			}
			return err
		}
		time.Sleep(minFramePeriod)
	}
}
