package component

// Persistent marks entities that survive a level rebuild (menu controls,
// backdrops, the game state and the music player).
type Persistent struct {
	ID           string
	KeepOnReload bool
}

var PersistentComponent = NewComponent[Persistent]()
