package controller

import (
	"okcard/app"
	"okcard/data"
	"okcard/logger"
)

func (c *Controller) onMain(s *app.State, k Key) Signal {
	switch {
	case k.Is('a'):
		s.CurrentScreen = app.ScreenAddingDeck
		s.AddingDeck = true
	case k.Is('e'):
		s.CurrentScreen = app.ScreenEditingPair
		s.CurrentlyEditing = app.PairKey
	case k.Is('q'):
		s.CurrentScreen = app.ScreenExiting
	case k.Is('j'):
		s.SelectedDeck = moveDown(s.SelectedDeck, len(s.Decks))
	case k.Is('k'):
		s.SelectedDeck = moveUp(s.SelectedDeck, len(s.Decks))
	case k.Code == KeyEnter:
		if _, ok := s.CurrentDeck(); ok {
			s.DisplayDecks = false
			s.CurrentScreen = app.ScreenViewingDeck
		}
	}
	return Continue
}

func (c *Controller) onViewingDeck(s *app.State, k Key) Signal {
	deck, ok := s.CurrentDeck()
	if !ok {
		// Nothing to view; fall back to the deck list.
		s.DisplayDecks = true
		s.SelectedCard = app.None
		s.CurrentScreen = app.ScreenMain
		return Continue
	}

	switch {
	case k.Is('q'):
		s.DisplayDecks = true
		s.SelectedCard = app.None
		s.CurrentScreen = app.ScreenMain
	case k.Is('j'):
		s.SelectedCard = moveDown(s.SelectedCard, len(deck.Cards))
	case k.Is('k'):
		s.SelectedCard = moveUp(s.SelectedCard, len(deck.Cards))
	case k.Is('a'):
		s.CardEditingFace = data.FaceFront
		s.CurrentScreen = app.ScreenEditingCard
	case k.Is('s'):
		if len(deck.Cards) == 0 {
			logger.Debug.Printf("refusing learning mode: deck %q has no cards", deck.Name)
			return Continue
		}
		if err := s.PickRandomCardToLearn(c.rng); err != nil {
			logger.Debug.Printf("could not start learning: %s", err)
			return Continue
		}
		s.SelectedCard = app.None
		s.CurrentScreen = app.ScreenLearningMode
	}
	return Continue
}

func (c *Controller) onLearningMode(s *app.State, k Key) Signal {
	switch {
	case k.Code == KeySpace || k.Code == KeyEnter:
		if s.FaceShowing == data.FaceFront {
			s.FaceShowing = data.FaceBack
		}
	case k.Is('h'):
		c.grade(s, data.OutcomeIncorrect)
	case k.Is('j'):
		c.grade(s, data.OutcomeCorrect)
	case k.Is('k'):
		c.grade(s, data.OutcomeEasy)
	case k.Is('q'):
		s.SelectedCard = app.None
		s.CardLearning = app.None
		s.FaceShowing = data.FaceNone
		s.CurrentScreen = app.ScreenViewingDeck
	}
	return Continue
}

// grade records the outcome for the card on show and draws the next one.
// It only acts once the back has been revealed.
func (c *Controller) grade(s *app.State, outcome data.Outcome) {
	if s.FaceShowing != data.FaceBack {
		return
	}
	if err := s.RecordGuess(outcome); err != nil {
		logger.Debug.Printf("could not record guess: %s", err)
		return
	}

	deck, _ := s.CurrentDeck()
	card, _ := s.LearningCard()
	c.notify(*deck, *card, outcome)

	if err := s.PickRandomCardToLearn(c.rng); err != nil {
		logger.Debug.Printf("could not draw next card: %s", err)
	}
}

func (c *Controller) onAddingDeck(s *app.State, k Key) Signal {
	switch k.Code {
	case KeyEnter:
		if s.NameInput != "" {
			s.AddDeck(s.NameInput)
			s.NameInput = ""
			s.AddingDeck = false
			s.CurrentScreen = app.ScreenMain
		}
	case KeyBackspace:
		s.NameInput = app.PopLast(s.NameInput)
	case KeyEsc:
		s.NameInput = ""
		s.AddingDeck = false
		s.CurrentScreen = app.ScreenMain
	default:
		if r, ok := k.Text(); ok {
			s.NameInput += string(r)
		}
	}
	return Continue
}

func (c *Controller) onEditingCard(s *app.State, k Key) Signal {
	switch k.Code {
	case KeyEnter:
		switch s.CardEditingFace {
		case data.FaceFront:
			s.CardEditingFace = data.FaceBack
		case data.FaceBack:
			if s.FrontInput == "" || s.BackInput == "" {
				return Continue
			}
			s.AddCard(s.FrontInput, s.BackInput)
			s.FrontInput = ""
			s.BackInput = ""
			s.CardEditingFace = data.FaceNone
			s.CurrentScreen = app.ScreenViewingDeck
		}
	case KeyBackspace:
		switch s.CardEditingFace {
		case data.FaceFront:
			s.FrontInput = app.PopLast(s.FrontInput)
		case data.FaceBack:
			s.BackInput = app.PopLast(s.BackInput)
		}
	case KeyTab:
		s.ToggleCardEditingFace()
	case KeyEsc:
		s.FrontInput = ""
		s.BackInput = ""
		s.CardEditingFace = data.FaceNone
		s.CurrentScreen = app.ScreenViewingDeck
	default:
		r, ok := k.Text()
		if !ok {
			break
		}
		switch s.CardEditingFace {
		case data.FaceFront:
			s.FrontInput += string(r)
		case data.FaceBack:
			s.BackInput += string(r)
		}
	}
	return Continue
}

func (c *Controller) onEditingPair(s *app.State, k Key) Signal {
	switch k.Code {
	case KeyEnter:
		switch s.CurrentlyEditing {
		case app.PairKey:
			s.CurrentlyEditing = app.PairValue
		case app.PairValue:
			if s.KeyInput == "" {
				return Continue
			}
			s.SaveKeyValue()
			s.CurrentScreen = app.ScreenMain
		}
	case KeyBackspace:
		switch s.CurrentlyEditing {
		case app.PairKey:
			s.KeyInput = app.PopLast(s.KeyInput)
		case app.PairValue:
			s.ValueInput = app.PopLast(s.ValueInput)
		}
	case KeyTab:
		s.ToggleEditing()
	case KeyEsc:
		s.KeyInput = ""
		s.ValueInput = ""
		s.CurrentlyEditing = app.PairNone
		s.CurrentScreen = app.ScreenMain
	default:
		r, ok := k.Text()
		if !ok {
			break
		}
		switch s.CurrentlyEditing {
		case app.PairKey:
			s.KeyInput += string(r)
		case app.PairValue:
			s.ValueInput += string(r)
		}
	}
	return Continue
}

func (c *Controller) onExiting(s *app.State, k Key) Signal {
	switch {
	case k.Is('y'):
		return ExitDump
	case k.Is('n'), k.Is('q'):
		return ExitNoDump
	}
	return Continue
}
