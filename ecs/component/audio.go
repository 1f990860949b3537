package component

// SoundRequest is a one-shot request to play a sound effect cue. Emitters
// check GameState.SoundOn before creating one.
type SoundRequest struct {
	Name string
}

var SoundRequestComponent = NewComponent[SoundRequest]()
