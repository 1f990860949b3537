package component

// Player holds the Character's movement tuning and ground contact. OnGround
// is only ever set by platform resolution.
type Player struct {
	MoveSpeed    float64
	JumpStrength float64
	Gravity      float64
	OnGround     bool

	RespawnX float64
	RespawnY float64
}

var PlayerComponent = NewComponent[Player]()
