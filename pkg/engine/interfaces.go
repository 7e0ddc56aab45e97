package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ianmurfinxyz/snake/pkg/bmp"
)

// AssetLoader abstracts asset file access for testing.
// This interface allows mock implementations to be injected during tests.
type AssetLoader interface {
	// ReadFile reads the named asset file
	ReadFile(name string) ([]byte, error)
}

// ImageDecoder abstracts BMP decoding for testing.
// The name identifies the asset, which lets caching decoders key on it.
type ImageDecoder interface {
	// Decode decodes a BMP image from the provided byte data
	Decode(name string, data []byte) (*bmp.Image, error)
}

// Renderer abstracts rendering operations for testing.
// This interface allows headless testing without Ebitengine initialization.
type Renderer interface {
	// RenderFrame renders the complete frame to the screen
	RenderFrame(screen *ebiten.Image)
}

// Simulation is the game logic driven by the fixed-tick loop.
type Simulation interface {
	// HandleInput reads the per-frame input snapshot
	HandleInput(input *Input)

	// Tick advances the simulation by dt seconds
	Tick(dt float64)

	// Done reports whether the simulation has finished
	Done() bool
}
