package snake

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ianmurfinxyz/snake/pkg/engine"
	"github.com/ianmurfinxyz/snake/pkg/logger"
)

// Sprite asset file names looked up in the asset directory.
const (
	headSpriteName  = "head.bmp"
	bodySpriteName  = "body.bmp"
	appleSpriteName = "apple.bmp"
)

var (
	backgroundColor = color.RGBA{0x10, 0x18, 0x10, 0xFF}
	headColor       = color.RGBA{0x60, 0xD0, 0x60, 0xFF}
	bodyColor       = color.RGBA{0x30, 0x90, 0x30, 0xFF}
	appleColor      = color.RGBA{0xD0, 0x30, 0x30, 0xFF}
)

// Renderer draws the game with BMP sprites when available, falling
// back to flat colored tiles for any sprite that fails to load.
type Renderer struct {
	game  *Game
	head  *ebiten.Image
	body  *ebiten.Image
	apple *ebiten.Image
}

// NewRenderer creates a renderer for game. The loader and decoder may
// be nil, in which case all tiles are flat colors.
func NewRenderer(game *Game, loader engine.AssetLoader, decoder engine.ImageDecoder) *Renderer {
	r := &Renderer{game: game}
	if loader != nil && decoder != nil {
		r.head = loadSprite(loader, decoder, headSpriteName)
		r.body = loadSprite(loader, decoder, bodySpriteName)
		r.apple = loadSprite(loader, decoder, appleSpriteName)
	}
	return r
}

// loadSprite reads and decodes one BMP asset. A missing or broken
// asset logs a warning and yields nil.
func loadSprite(loader engine.AssetLoader, decoder engine.ImageDecoder, name string) *ebiten.Image {
	data, err := loader.ReadFile(name)
	if err != nil {
		logger.Get().Warn("sprite not loaded", "asset", name, "error", err)
		return nil
	}
	img, err := decoder.Decode(name, data)
	if err != nil {
		logger.Get().Warn("sprite not decoded", "asset", name, "error", err)
		return nil
	}
	logger.Get().Debug("sprite loaded", "asset", name, "width", img.Width, "height", img.Height)
	return ebiten.NewImageFromImage(img.ToRGBA())
}

// RenderFrame draws the complete frame. Part of engine.Renderer.
func (r *Renderer) RenderFrame(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	r.drawCell(screen, r.game.Apple(), r.apple, appleColor)
	body := r.game.Body()
	for i := len(body) - 1; i >= 1; i-- {
		r.drawCell(screen, body[i], r.body, bodyColor)
	}
	r.drawCell(screen, r.game.Head(), r.head, headColor)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("score: %d  high: %d", r.game.Score(), r.game.HighScore()))
	if r.game.State() == StateGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press space", engine.WindowWidth/2-70, engine.WindowHeight/2)
	}
}

// drawCell draws sprite at cell p, scaled to the cell size, or a flat
// tile when sprite is nil.
func (r *Renderer) drawCell(screen *ebiten.Image, p Point, sprite *ebiten.Image, fallback color.RGBA) {
	x := float64(p.X * CellSize)
	y := float64(p.Y * CellSize)

	if sprite == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), CellSize, CellSize, fallback, true)
		return
	}

	bounds := sprite.Bounds()
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(CellSize/float64(bounds.Dx()), CellSize/float64(bounds.Dy()))
	opts.GeoM.Translate(x, y)
	screen.DrawImage(sprite, opts)
}
