package component

type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Outcome records how the last run ended. It is informational only: both
// outcomes return to the same menu.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// GameState is the session-wide mode and audio flags. The session owns the
// value and registers the same pointer on a persistent entity so systems can
// reach it through the world.
type GameState struct {
	Mode          Mode
	MusicOn       bool
	SoundOn       bool
	Outcome       Outcome
	ExitRequested bool
}

var GameStateComponent = NewComponent[GameState]()
