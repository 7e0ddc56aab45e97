// Package snake implements the game rules on a fixed grid. The
// simulation is deterministic for a given seed and input sequence,
// which keeps headless runs reproducible.
package snake

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ianmurfinxyz/snake/pkg/engine"
	"github.com/ianmurfinxyz/snake/pkg/logger"
)

const (
	// GridWidth and GridHeight are the playfield size in cells.
	GridWidth  = 30
	GridHeight = 30

	// CellSize is the pixel size of one cell. The grid fills the window.
	CellSize = 20

	initialLength = 3
)

// Direction is a compass heading on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Point is a cell position, origin top-left.
type Point struct {
	X, Y int
}

// State is the game phase.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// Game holds the snake, the apple and the score. It implements
// engine.Simulation, advancing one cell per tick.
type Game struct {
	body       []Point // head first
	dir        Direction
	pendingDir Direction
	apple      Point
	score      int
	highScore  int
	state      State
	rng        *rand.Rand
}

// New creates a game seeded from the current time.
func New() *Game {
	return NewWithSeed(uint64(time.Now().UnixNano()))
}

// NewWithSeed creates a game with a deterministic apple sequence.
func NewWithSeed(seed uint64) *Game {
	g := &Game{rng: rand.New(rand.NewPCG(seed, seed))}
	g.reset()
	return g
}

func (g *Game) reset() {
	startX := GridWidth / 2
	startY := GridHeight / 2
	g.body = g.body[:0]
	for i := 0; i < initialLength; i++ {
		g.body = append(g.body, Point{startX - i, startY})
	}
	g.dir = DirRight
	g.pendingDir = DirRight
	g.score = 0
	g.state = StatePlaying
	g.spawnApple()
}

// spawnApple places the apple on a random cell not covered by the snake.
func (g *Game) spawnApple() {
	for {
		p := Point{g.rng.IntN(GridWidth), g.rng.IntN(GridHeight)}
		if !g.occupies(p) {
			g.apple = p
			return
		}
	}
}

func (g *Game) occupies(p Point) bool {
	for _, b := range g.body {
		if b == p {
			return true
		}
	}
	return false
}

// HandleInput reads the per-frame key snapshot. Reversing into the
// neck is ignored; any other arrow key queues a turn for the next tick.
func (g *Game) HandleInput(input *engine.Input) {
	if g.state == StateGameOver {
		if input.JustPressed(ebiten.KeySpace) {
			logger.Get().Info("game restarted", "high_score", g.highScore)
			g.reset()
		}
		return
	}

	keys := []struct {
		key ebiten.Key
		dir Direction
	}{
		{ebiten.KeyArrowUp, DirUp},
		{ebiten.KeyArrowDown, DirDown},
		{ebiten.KeyArrowLeft, DirLeft},
		{ebiten.KeyArrowRight, DirRight},
	}
	for _, k := range keys {
		if input.JustPressed(k.key) && k.dir != g.dir.opposite() {
			g.pendingDir = k.dir
		}
	}
}

// Tick advances the snake one cell.
func (g *Game) Tick(dt float64) {
	if g.state != StatePlaying {
		return
	}

	g.dir = g.pendingDir
	dx, dy := g.dir.delta()
	head := g.body[0]
	newHead := Point{head.X + dx, head.Y + dy}

	if newHead.X < 0 || newHead.X >= GridWidth || newHead.Y < 0 || newHead.Y >= GridHeight {
		g.gameOver("wall")
		return
	}

	eating := newHead == g.apple
	if !eating {
		// The tail cell frees up this tick, so it is not a collision.
		g.body = g.body[:len(g.body)-1]
	}
	if g.occupies(newHead) {
		g.gameOver("self")
		return
	}

	g.body = append([]Point{newHead}, g.body...)
	if eating {
		g.score++
		logger.Get().Debug("apple eaten", "score", g.score, "length", len(g.body))
		g.spawnApple()
	}
}

func (g *Game) gameOver(cause string) {
	g.state = StateGameOver
	if g.score > g.highScore {
		g.highScore = g.score
	}
	logger.Get().Info("game over", "cause", cause, "score", g.score, "high_score", g.highScore)
}

// Done reports whether the simulation has finished. The game waits for
// a restart instead of ending, so this is always false; headless runs
// stop on timeout.
func (g *Game) Done() bool {
	return false
}

// Head returns the head cell.
func (g *Game) Head() Point {
	return g.body[0]
}

// Body returns the snake cells, head first. The slice is shared; do
// not mutate it.
func (g *Game) Body() []Point {
	return g.body
}

// Apple returns the apple cell.
func (g *Game) Apple() Point {
	return g.apple
}

// Score returns the apples eaten this round.
func (g *Game) Score() int {
	return g.score
}

// HighScore returns the best score across rounds.
func (g *Game) HighScore() int {
	return g.highScore
}

// State returns the current game phase.
func (g *Game) State() State {
	return g.state
}
