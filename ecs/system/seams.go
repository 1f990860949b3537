package system

import "github.com/milk9111/trophydash/ecs/component"

// Canvas is the render surface the RenderSystem draws onto. Images are
// addressed by atlas frame identifier and drawn centered on (x, y).
type Canvas interface {
	Clear()
	DrawImage(key string, x, y, scaleX, scaleY float64)
}

// Mixer plays music and sound-effect cues. Calls are fire-and-forget.
type Mixer interface {
	PlaySound(name string)
	PlayMusic(track string)
	StopMusic()
}

// InputSource supplies the held-key state for the current frame.
type InputSource interface {
	Poll() component.Input
}
