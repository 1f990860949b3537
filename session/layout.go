package session

import "github.com/milk9111/trophydash/ecs/entity"

type point struct {
	X, Y float64
}

type obstacleSpawn struct {
	Prefab        string
	X, Y          float64
	Width, Height float64
}

type patrollerSpawn struct {
	X, Y       float64
	Start, End float64
}

type buttonSpawn struct {
	Prefab string
	X, Y   float64
}

// The single level. The goal sits 10px lower after a rebuild than at launch.
var (
	characterSpawn = point{X: 50, Y: 500}

	goalSpawnAtLaunch = point{X: 770, Y: 120 - 36}
	goalSpawnOnReset  = point{X: 770, Y: 120 - 26}

	// The ground comes first; obstacles are resolved in this order.
	obstacleSpawns = []obstacleSpawn{
		{Prefab: entity.GroundPrefab, X: 400, Y: 550, Width: 800, Height: 50},
		{Prefab: entity.PlatformPrefab, X: 210, Y: 450, Width: 160, Height: 20},
		{Prefab: entity.PlatformPrefab, X: 380, Y: 340, Width: 160, Height: 20},
		{Prefab: entity.PlatformPrefab, X: 550, Y: 230, Width: 160, Height: 20},
		{Prefab: entity.PlatformPrefab, X: 770, Y: 120, Width: 160, Height: 20},
	}

	patrollerSpawns = []patrollerSpawn{
		{X: 300, Y: 500, Start: 0, End: 800},
		{X: 500, Y: 500, Start: 0, End: 800},
		{X: 210, Y: 450 - 26, Start: 130, End: 290},
		{X: 380, Y: 340 - 26, Start: 300, End: 460},
		{X: 550, Y: 230 - 26, Start: 470, End: 630},
		{X: 490, Y: 230 - 26, Start: 470, End: 630},
	}

	buttonSpawns = []buttonSpawn{
		{Prefab: entity.StartButtonPrefab, X: 400, Y: 300 - 75},
		{Prefab: entity.MusicButtonPrefab, X: 50, Y: 35},
		{Prefab: entity.SoundButtonPrefab, X: 125, Y: 35},
		{Prefab: entity.ExitButtonPrefab, X: 400, Y: 300 + 75},
	}

	backdropPrefabs = []string{
		entity.BackgroundPrefab,
		entity.MenuBackgroundPrefab,
		entity.ControlsPrefab,
	}
)
