package component

type MenuAction string

const (
	MenuActionStart MenuAction = "start"
	MenuActionMusic MenuAction = "music"
	MenuActionSound MenuAction = "sound"
	MenuActionExit  MenuAction = "exit"
)

// MenuButton is a clickable menu control. Toggle buttons swap their sprite
// between IconOn and IconOff; plain buttons leave both empty.
type MenuButton struct {
	Action  MenuAction
	Width   float64
	Height  float64
	IconOn  string
	IconOff string
}

var MenuButtonComponent = NewComponent[MenuButton]()

// Icon returns the sprite for the given toggle state.
func (b *MenuButton) Icon(on bool) string {
	if b == nil {
		return ""
	}
	if on {
		return b.IconOn
	}
	return b.IconOff
}
