// Package app wires the configuration, assets, engine and game
// together and runs the main loop.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ianmurfinxyz/snake/pkg/cli"
	"github.com/ianmurfinxyz/snake/pkg/engine"
	"github.com/ianmurfinxyz/snake/pkg/imagecache"
	"github.com/ianmurfinxyz/snake/pkg/logger"
	"github.com/ianmurfinxyz/snake/pkg/snake"
)

// Application manages the main application logic.
type Application struct {
	config   *cli.Config
	log      *slog.Logger
	assetFS  fs.FS
	assetDir string
	cache    *imagecache.Cache
}

// New creates an Application loading assets from the directory named
// on the command line.
func New() *Application {
	return &Application{}
}

// NewWithAssets creates an Application loading assets from dir inside
// fsys, typically an embed.FS.
func NewWithAssets(fsys fs.FS, dir string) *Application {
	return &Application{assetFS: fsys, assetDir: dir}
}

// Run executes the application.
func (app *Application) Run(args []string) error {
	// 1. Parse the command line
	if err := app.parseArgs(args); err != nil {
		return fmt.Errorf("failed to parse args: %w", err)
	}

	if app.config.ShowHelp {
		cli.PrintHelp()
		return nil
	}

	// 2. Initialize the logger
	if err := app.initLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.log.Info("application started",
		"headless", app.config.Headless,
		"tick_rate", app.config.TickRate)

	// 3. Wire the asset pipeline
	loader, decoder, err := app.assetPipeline()
	if err != nil {
		return fmt.Errorf("failed to set up assets: %w", err)
	}
	if app.cache != nil {
		defer app.cache.Close()
	}

	// 4. Build the game and the engine loop
	game := snake.New()
	renderer := snake.NewRenderer(game, loader, decoder)
	loop := engine.NewGame(game, renderer, app.config.TickRate)
	loop.SetTimeout(app.config.Timeout)

	// 5. Run
	if app.config.Headless {
		if err := loop.RunHeadless(); err != nil {
			return fmt.Errorf("headless run failed: %w", err)
		}
	} else {
		ebiten.SetWindowSize(engine.WindowWidth, engine.WindowHeight)
		ebiten.SetWindowTitle("snake")
		if err := ebiten.RunGame(loop); err != nil && !errors.Is(err, engine.ErrTerminated) {
			return fmt.Errorf("game loop failed: %w", err)
		}
	}

	app.log.Info("application terminated normally", "high_score", game.HighScore())
	return nil
}

// parseArgs parses the command line arguments.
func (app *Application) parseArgs(args []string) error {
	config, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}
	app.config = config
	return nil
}

// initLogger initializes the logger.
func (app *Application) initLogger() error {
	if err := logger.Init(app.config.LogLevel); err != nil {
		return err
	}
	app.log = logger.Get()
	return nil
}

// assetPipeline builds the asset loader and decoder. Both are nil when
// no asset source is configured, in which case the renderer falls back
// to flat tiles.
func (app *Application) assetPipeline() (engine.AssetLoader, engine.ImageDecoder, error) {
	var loader engine.AssetLoader
	switch {
	case app.assetFS != nil:
		loader = engine.NewFSAssetLoader(app.assetFS, app.assetDir)
		app.log.Info("using embedded assets", "dir", app.assetDir)
	case app.config.AssetDir != "":
		loader = engine.NewFilesystemAssetLoader(app.config.AssetDir)
		app.log.Info("using asset directory", "dir", app.config.AssetDir)
	default:
		app.log.Info("no asset source configured, using flat tiles")
		return nil, nil, nil
	}

	var decoder engine.ImageDecoder = engine.NewBMPImageDecoder()
	if app.config.CacheDir != "" {
		cache, err := imagecache.New(app.config.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		app.cache = cache
		decoder = engine.NewCachingDecoder(cache, decoder)
		app.log.Info("image cache enabled", "dir", app.config.CacheDir)
	}
	return loader, decoder, nil
}
