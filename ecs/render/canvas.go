package render

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas draws atlas frames onto the current ebiten screen.
type Canvas struct {
	screen  *ebiten.Image
	missing map[string]bool
}

func NewCanvas() *Canvas {
	return &Canvas{missing: make(map[string]bool)}
}

// Begin targets screen for the following draw calls.
func (c *Canvas) Begin(screen *ebiten.Image) {
	if c == nil {
		return
	}
	c.screen = screen
}

func (c *Canvas) Clear() {
	if c == nil || c.screen == nil {
		return
	}
	c.screen.Fill(color.Black)
}

// DrawImage draws the frame key centered on (x, y).
func (c *Canvas) DrawImage(key string, x, y, scaleX, scaleY float64) {
	if c == nil || c.screen == nil {
		return
	}
	img := GetImage(key)
	if img == nil {
		if !c.missing[key] {
			c.missing[key] = true
			log.Warn("image not in atlas", "key", key)
		}
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scaleX, scaleY)
	op.GeoM.Translate(x, y)
	c.screen.DrawImage(img, op)
}
