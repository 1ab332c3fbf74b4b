package scenes

import (
	"github.com/automoto/gravityman/game"
	"github.com/automoto/gravityman/input"
	"github.com/automoto/gravityman/render"
	"github.com/automoto/gravityman/sound"
	"github.com/automoto/gravityman/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// GameScene runs one session: input feeds commands, the session ticks once
// per ebitengine update, and the snapshot is drawn.
type GameScene struct {
	session *game.Session
	input   *input.Handler
	sound   *sound.Player
	overlay *ui.Overlay
	logger  *zap.Logger

	snap game.Snapshot
}

func NewGameScene(session *game.Session, sfx *sound.Player, logger *zap.Logger) (*GameScene, error) {
	overlay, err := ui.NewOverlay()
	if err != nil {
		return nil, err
	}
	gs := &GameScene{
		session: session,
		input:   input.NewHandler(),
		sound:   sfx,
		overlay: overlay,
		logger:  logger,
	}
	gs.snap = session.Snapshot()
	return gs, nil
}

func (gs *GameScene) Update() error {
	gs.input.Update(gs.session)
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && gs.sound != nil {
		gs.sound.SetMuted(!gs.sound.Muted())
		gs.logger.Info("sound toggled", zap.Bool("muted", gs.sound.Muted()))
	}

	gs.session.Tick()

	events := gs.session.DrainEvents()
	if gs.sound != nil {
		gs.sound.PlayEvents(events)
	}

	gs.snap = gs.session.Snapshot()
	gs.overlay.SetMode(gs.snap.Mode, gs.snap.LevelName)
	gs.overlay.Update()
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	render.Draw(screen, gs.snap)
	gs.overlay.Draw(screen)
}
