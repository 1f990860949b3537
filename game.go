package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trophydash/common"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/ecs/render"
	"github.com/milk9111/trophydash/prefabs"
	"github.com/milk9111/trophydash/session"
)

type Game struct {
	frames int
	debug  bool
	paused bool

	session *session.Session
	canvas  *render.Canvas
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
}

func NewGame(s *session.Session, watcher *prefabs.Watcher, debug bool) *Game {
	g := &Game{
		debug:   debug,
		session: s,
		canvas:  render.NewCanvas(),
		watcher: watcher,
	}
	g.pauseUI = NewPauseUI(g)
	return g
}

func (g *Game) Update() error {
	g.frames++
	g.drainWatcher()

	if g.session.ExitRequested() {
		return ebiten.Termination
	}

	if g.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = false
			return nil
		}
		g.pauseUI.Update()
		return nil
	}

	switch g.session.Mode() {
	case component.ModeMenu:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if err := g.session.HandleClick(float64(x), float64(y)); err != nil {
				return err
			}
		}
	case component.ModePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = true
			return nil
		}
	}

	g.session.Update(pollInput())

	if g.session.ExitRequested() {
		return ebiten.Termination
	}
	return nil
}

// pollInput reads the held movement keys.
func pollInput() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Jump:  ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Info("prefab changed, applies on next start", "path", path)
			if strings.EqualFold(filepath.Ext(path), ".tengo") {
				g.session.ReloadScripts()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

// resume is called by the pause overlay.
func (g *Game) resume() {
	g.paused = false
}

// quitToMenu abandons the paused run.
func (g *Game) quitToMenu() {
	g.paused = false
	g.session.ReturnToMenu()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Begin(screen)
	g.session.Draw(g.canvas)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Mode: %s", g.frames, ebiten.ActualFPS(), g.session.Mode()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
