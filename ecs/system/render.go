package system

import (
	"sort"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
)

// RenderSystem draws the sprites belonging to the current mode's view.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, c Canvas) {
	if r == nil || w == nil || c == nil {
		return
	}
	mode := component.ModeMenu
	if state := GameState(w); state != nil {
		mode = state.Mode
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	visible := entities[:0]
	for _, e := range entities {
		if view, ok := ecs.Get(w, e, component.ViewComponent.Kind()); ok && view.Mode != mode {
			continue
		}
		visible = append(visible, e)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return layerOf(w, visible[i]) < layerOf(w, visible[j])
	})

	for _, e := range visible {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Image == "" {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		c.DrawImage(s.Image, t.X, t.Y, sx, sy)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
