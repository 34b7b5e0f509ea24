package data

import (
	"time"
)

// Outcome is the learner's own assessment of how well a card was recalled.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeEasy
	OutcomeCorrect
	OutcomeIncorrect
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEasy:
		return "easy"
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "none"
	}
}

// CardFace names one half of a card. FaceNone is used when no face is
// being edited or shown.
type CardFace int

const (
	FaceNone CardFace = iota
	FaceFront
	FaceBack
)

func (f CardFace) String() string {
	switch f {
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	default:
		return "none"
	}
}

type Card struct {
	Front     string  `json:"front"`
	Back      string  `json:"back"`
	LastGuess Outcome `json:"lastGuess"`
}

type Deck struct {
	Name            string    `json:"name"`
	Cards           []Card    `json:"cards"`
	DateLastLearned time.Time `json:"dateLastLearned"`
}

func NewCard(front string, back string) Card {
	return Card{Front: front, Back: back, LastGuess: OutcomeNone}
}

func NewDeck(name string, created time.Time) Deck {
	return Deck{Name: name, Cards: []Card{}, DateLastLearned: created}
}
