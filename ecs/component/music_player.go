package component

// MusicPlayer stores global music playback state on a dedicated ECS entity.
// The music system mutates this component; no playback state is kept on the
// system. Track is the song the session plays when music is enabled.
type MusicPlayer struct {
	Track        string
	CurrentTrack string
	Playing      bool
	Starts       int
}

var MusicPlayerComponent = NewComponent[MusicPlayer]()
