package main

import (
	"flag"
	"log"

	"github.com/automoto/gravityman/assets"
	"github.com/automoto/gravityman/config"
	"github.com/automoto/gravityman/fonts"
	"github.com/automoto/gravityman/game"
	"github.com/automoto/gravityman/scenes"
	"github.com/automoto/gravityman/shared/leveldata"
	"github.com/automoto/gravityman/sound"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"
)

type Game struct {
	scene scenes.Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(config.World.Width), int(config.World.Height)
}

func main() {
	levelsPath := flag.String("levels", "", "Level pack: a .yaml file, a .tmx file, or a directory of .tmx maps")
	generated := flag.Int("generated", 0, "Number of generated levels appended to the sequence")
	bundled := flag.Bool("bundled", false, "Play the bundled Tiled maps instead of the built-in levels")
	skipSplash := flag.Bool("skip-splash", false, "Start playing immediately")
	mute := flag.Bool("mute", false, "Start with sound muted")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, config.HUD.FontSize); err != nil {
		logger.Fatal("load font", zap.Error(err))
	}

	opts := []game.Option{game.WithLogger(logger), game.WithGenerated(*generated)}
	switch {
	case *levelsPath != "":
		levels, err := leveldata.LoadPath(*levelsPath)
		if err != nil {
			logger.Fatal("load levels", zap.String("path", *levelsPath), zap.Error(err))
		}
		opts = append(opts, game.WithLevels(levels))
	case *bundled:
		levels, err := assets.Levels()
		if err != nil {
			logger.Fatal("load bundled levels", zap.Error(err))
		}
		opts = append(opts, game.WithLevels(levels))
	}

	session, err := game.New(opts...)
	if err != nil {
		logger.Fatal("create session", zap.Error(err))
	}
	if *skipSplash {
		session.RequestStart()
	}

	sfx := sound.NewPlayer(logger)
	sfx.SetMuted(*mute)

	scene, err := scenes.NewGameScene(session, sfx, logger)
	if err != nil {
		logger.Fatal("create scene", zap.Error(err))
	}

	scale := config.World.Scale
	ebiten.SetWindowSize(int(config.World.Width)*scale, int(config.World.Height)*scale)
	ebiten.SetWindowTitle("Gravity-Man")
	ebiten.SetTPS(config.Tick.Rate)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
