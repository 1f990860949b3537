package component

// MusicRequest is a one-shot request for global music playback. An empty
// Track stops the current song; a non-empty Track (re)starts it from the
// beginning.
type MusicRequest struct {
	Track string
}

var MusicRequestComponent = NewComponent[MusicRequest]()
