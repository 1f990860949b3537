package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/trophydash/ecs"
	"github.com/milk9111/trophydash/ecs/component"
	"github.com/milk9111/trophydash/prefabs"
)

const (
	PlatformPrefab = "platform.yaml"
	GroundPrefab   = "ground.yaml"
)

// NewPlatform builds a static obstacle of the given size centered on (x, y).
// The image is scaled uniformly to fit inside the box.
func NewPlatform(w *ecs.World, prefab string, x, y, width, height float64) (ecs.Entity, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("platform: size %vx%v must be positive", width, height)
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	sprite, err := prefabs.DecodeComponentSpec[spriteSpec](spec.Components["sprite"])
	if err != nil {
		return 0, fmt.Errorf("platform: decode sprite spec: %w", err)
	}

	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform: set transform: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{Width: width, Height: height}); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("platform: add body: %w", err)
	}

	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	scale := FitScale(width, height, sprite.Width, sprite.Height)
	t.ScaleX, t.ScaleY = scale, scale
	return e, nil
}

// FitScale is the largest uniform scale that fits an imgW x imgH image into a
// w x h box. An image of unknown size is drawn unscaled.
func FitScale(w, h, imgW, imgH float64) float64 {
	if imgW <= 0 || imgH <= 0 {
		return 1
	}
	return math.Min(w/imgW, h/imgH)
}
