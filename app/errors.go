package app

import "errors"

var (
	ErrNoDeckSelected = errors.New("no deck selected")
	ErrNoCards        = errors.New("no cards in deck")
	ErrNoCardLearning = errors.New("no card is being learned")
	ErrInvalidOutcome = errors.New("outcome must be easy, correct or incorrect")
)
