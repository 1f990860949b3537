package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus raw component specs keyed by
// component name. Each entry is decoded by the matching entity builder.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	ScaleX float64 `yaml:"scale_x"`
	ScaleY float64 `yaml:"scale_y"`
}

// SpriteComponentSpec names the initial frame. Width and Height give the
// image's native size so builders can fit it to a collision box.
type SpriteComponentSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type ViewComponentSpec struct {
	Mode string `yaml:"mode"`
}

type BodyComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerComponentSpec struct {
	MoveSpeed    float64 `yaml:"move_speed"`
	JumpStrength float64 `yaml:"jump_strength"`
	Gravity      float64 `yaml:"gravity"`
	RespawnX     float64 `yaml:"respawn_x"`
	RespawnY     float64 `yaml:"respawn_y"`
}

type PatrolComponentSpec struct {
	Speed  float64 `yaml:"speed"`
	Script string  `yaml:"script"`
}

type AnimationComponentSpec struct {
	Cadence float64             `yaml:"cadence"`
	Current string              `yaml:"current"`
	States  map[string][]string `yaml:"states"`
}

type MenuButtonComponentSpec struct {
	Action  string  `yaml:"action"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	IconOn  string  `yaml:"icon_on"`
	IconOff string  `yaml:"icon_off"`
}

type PersistentComponentSpec struct {
	ID           string `yaml:"id"`
	KeepOnReload bool   `yaml:"keep_on_reload"`
}

type MusicPlayerComponentSpec struct {
	Track string `yaml:"track"`
}
