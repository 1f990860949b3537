package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type PatrollerTag struct{}

var PatrollerTagComponent = NewComponent[PatrollerTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()
