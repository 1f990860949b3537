package system

import (
	"testing"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

type drawCall struct {
	key    string
	x, y   float64
	sx, sy float64
}

type recordingCanvas struct {
	draws []drawCall
}

func (c *recordingCanvas) Clear() { c.draws = nil }

func (c *recordingCanvas) DrawImage(key string, x, y, sx, sy float64) {
	c.draws = append(c.draws, drawCall{key: key, x: x, y: y, sx: sx, sy: sy})
}

func addDrawable(t *testing.T, w *ecs.World, image string, layer int, mode *component.Mode, scale float64) {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: 1, Y: 2, ScaleX: scale, ScaleY: scale})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{Image: image})
	mustAdd(t, w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer})
	if mode != nil {
		mustAdd(t, w, e, component.ViewComponent.Kind(), &component.View{Mode: *mode})
	}
}

func TestRenderFiltersByModeAndSortsByLayer(t *testing.T) {
	menu, playing := component.ModeMenu, component.ModePlaying
	w := ecs.NewWorld()
	state := &component.GameState{Mode: component.ModeMenu}
	addState(t, w, state)
	addDrawable(t, w, "enemy", 4, &playing, 1)
	addDrawable(t, w, "button", 2, &menu, 1)
	addDrawable(t, w, "hero", 2, &playing, 0.7)
	addDrawable(t, w, "menu_bg", 0, &menu, 1)
	addDrawable(t, w, "overlay", 9, nil, 0)
	addDrawable(t, w, "bg", 0, &playing, 1)

	tests := []struct {
		mode component.Mode
		want []string
	}{
		{mode: component.ModeMenu, want: []string{"menu_bg", "button", "overlay"}},
		{mode: component.ModePlaying, want: []string{"bg", "hero", "enemy", "overlay"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			state.Mode = tt.mode
			c := &recordingCanvas{}
			NewRenderSystem().Draw(w, c)

			got := make([]string, 0, len(c.draws))
			for _, d := range c.draws {
				got = append(got, d.key)
				if d.key == "overlay" && (d.sx != 1 || d.sy != 1) {
					t.Fatalf("unset scale drawn as (%v, %v), want 1", d.sx, d.sy)
				}
				if d.key == "hero" && d.sx != 0.7 {
					t.Fatalf("hero scale = %v, want 0.7", d.sx)
				}
			}
			if !equalStrings(got, tt.want) {
				t.Fatalf("draws = %v, want %v", got, tt.want)
			}
		})
	}
}
