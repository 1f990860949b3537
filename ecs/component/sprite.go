package component

// Sprite names the image drawn at the entity's Transform. Image is an atlas
// frame identifier such as "hero_idle_1"; the renderer resolves it.
type Sprite struct {
	Image string
}

var SpriteComponent = NewComponent[Sprite]()
