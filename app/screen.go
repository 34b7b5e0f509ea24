package app

// Screen is the UI mode the controller is in. It decides which keys mean
// something and what the presenter draws.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenAddingDeck
	ScreenViewingDeck
	ScreenEditingCard
	ScreenLearningMode
	ScreenEditingPair
	ScreenExiting
)

// Screens lists every screen; dispatch tables are checked against it.
var Screens = []Screen{
	ScreenMain,
	ScreenAddingDeck,
	ScreenViewingDeck,
	ScreenEditingCard,
	ScreenLearningMode,
	ScreenEditingPair,
	ScreenExiting,
}

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "Main"
	case ScreenAddingDeck:
		return "AddingDeck"
	case ScreenViewingDeck:
		return "ViewingDeck"
	case ScreenEditingCard:
		return "EditingCard"
	case ScreenLearningMode:
		return "LearningMode"
	case ScreenEditingPair:
		return "EditingPair"
	case ScreenExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// PairField is the half of a key/value pair receiving keystrokes.
type PairField int

const (
	PairNone PairField = iota
	PairKey
	PairValue
)
