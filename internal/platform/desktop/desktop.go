// Package desktop runs the crossing game in a native window through Ebitengine.
// The window uses the reference canvas, so sprite positions are drawn in
// pixels exactly as the simulation reports them.
package desktop

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-crossing/internal/core"
	"github.com/vovakirdan/star-crossing/internal/games/crossing"
	"github.com/vovakirdan/star-crossing/internal/storage"
)

const (
	laneTop     = 50 // first lane starts below the HUD strip
	spriteInset = 69 // sprite origin to the top of its lane
	bodyPad     = 12
)

var (
	waterColor  = color.RGBA{0x3b, 0x7d, 0xd8, 0xff}
	stoneColor  = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	grassColor  = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	bugColor    = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	eyeColor    = color.RGBA{0x21, 0x21, 0x21, 0xff}
	playerColor = color.RGBA{0x26, 0xc6, 0xda, 0xff}
	starColor   = color.RGBA{0xff, 0xd5, 0x4f, 0xff}
)

// directional keys, handled on release so a held key moves one cell.
var moveKeys = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
}

// App is an ebiten.Game driving one crossing game.
type App struct {
	game    *crossing.Game
	store   storage.Backend
	player  string
	logger  *log.Logger
	runtime core.RuntimeConfig
	frame   core.InputFrame
	width   int
	height  int
}

// NewApp wires a game to its score store. store may be nil.
func NewApp(game *crossing.Game, store storage.Backend, runtime core.RuntimeConfig, player string, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	if store != nil {
		game.UseHighScores(storage.HighScoresFor(store, game.ID()))
	}
	game.Reset(runtime)

	cfg := game.World().Config()
	return &App{
		game:    game,
		store:   store,
		player:  player,
		logger:  logger,
		runtime: runtime,
		frame:   core.NewInputFrame(),
		width:   cfg.Canvas.Width,
		height:  cfg.Canvas.Height,
	}
}

// Update polls the keyboard and advances the simulation by one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		a.endRun(a.game.State().Score)
		return ebiten.Termination
	}

	for k, action := range moveKeys {
		if inpututil.IsKeyJustReleased(k) {
			a.game.HandleAction(action)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.endRun(a.game.State().Score)
		a.frame.Set(core.ActionRestart)
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	result := a.game.Step(a.frame, a.runtime.ClampDelta(dt))
	for _, e := range result.Events {
		if e.Kind == core.EventCollision {
			a.endRun(e.Score)
		}
	}
	a.frame.Clear()
	return nil
}

func (a *App) endRun(score int) {
	if a.store == nil || score <= 0 {
		return
	}
	if _, err := a.store.SaveScore(storage.NewRunRecord(a.game.ID(), a.player, score)); err != nil {
		a.logger.Warn("could not save run", "score", score, "err", err)
	}
}

// Draw paints lanes, sprites and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	world := a.game.World()
	grid := world.Grid()
	traffic := world.Config().Enemies.TrafficRows

	for row := 1; row <= grid.Rows; row++ {
		c := grassColor
		switch {
		case row == 1:
			c = waterColor
		case traffic.Contains(row):
			c = stoneColor
		}
		y := float32(laneTop) + float32(row-1)*float32(grid.TileHeight)
		vector.DrawFilledRect(screen, 0, y, float32(a.width), float32(grid.TileHeight), c, false)
	}

	for _, s := range world.Sprites() {
		a.drawSprite(screen, grid, s)
	}

	state := a.game.State()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", state.Score), 8, 8)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Highscore: %d", state.HighScore), a.width-110, 8)
	ebitenutil.DebugPrintAt(screen, "arrows/WASD move  P pause  R restart  Q quit", 8, a.height-20)
	if state.Paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED", a.width/2-18, a.height/2)
	}
}

func (a *App) drawSprite(screen *ebiten.Image, grid crossing.Grid, s crossing.Sprite) {
	x := float32(s.X) + bodyPad
	y := float32(s.Y) + spriteInset + bodyPad
	w := float32(grid.TileWidth) - 2*bodyPad
	h := float32(grid.TileHeight) - 2*bodyPad

	switch s.ID {
	case crossing.SpriteBug, crossing.SpriteBugReverse:
		vector.DrawFilledRect(screen, x, y+h/4, w, h/2, bugColor, false)
		eyeX := x + w - 14
		if s.ID == crossing.SpriteBugReverse {
			eyeX = x + 6
		}
		vector.DrawFilledRect(screen, eyeX, y+h/4+6, 8, 8, eyeColor, false)
	case crossing.SpritePlayer:
		vector.DrawFilledRect(screen, x+w/4, y, w/2, h, playerColor, false)
	case crossing.SpriteStar:
		vector.DrawFilledRect(screen, x+w/3, y+h/4, w/3, h/2, starColor, false)
		vector.DrawFilledRect(screen, x+w/4, y+h/3, w/2, h/3, starColor, false)
	}
}

// Layout keeps the reference canvas and lets Ebitengine scale the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// Run opens the window and blocks until it is closed.
func Run(app *App, tps int) error {
	if tps > 0 {
		ebiten.SetTPS(tps)
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(app.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
