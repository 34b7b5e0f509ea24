package app

import (
	"encoding/json"
	"fmt"

	"okcard/data"
)

// AddDeck appends an empty deck. The name is not checked here; the
// controller refuses empty names before calling.
func (s *State) AddDeck(name string) {
	s.Decks = append(s.Decks, data.NewDeck(name, s.now()))
	s.Revalidate()
}

// AddCard appends a card to the selected deck. Without a selected deck it
// does nothing.
func (s *State) AddCard(front string, back string) {
	deck, ok := s.CurrentDeck()
	if !ok {
		return
	}
	deck.Cards = append(deck.Cards, data.NewCard(front, back))
	s.Revalidate()
}

// PickRandomCardToLearn draws a card uniformly from the selected deck and
// shows its front. Draws are independent, so repeats happen.
func (s *State) PickRandomCardToLearn(rng RandomSource) error {
	deck, ok := s.CurrentDeck()
	if !ok {
		return ErrNoDeckSelected
	}
	if len(deck.Cards) == 0 {
		return fmt.Errorf("deck %q: %w", deck.Name, ErrNoCards)
	}

	s.CardLearning = Some(rng.Intn(len(deck.Cards)))
	s.FaceShowing = data.FaceFront
	return nil
}

func (s *State) ToggleCardEditingFace() {
	switch s.CardEditingFace {
	case data.FaceFront:
		s.CardEditingFace = data.FaceBack
	case data.FaceBack:
		s.CardEditingFace = data.FaceFront
	default:
		s.CardEditingFace = data.FaceFront
	}
}

// RecordGuess stores the outcome on the card being learned.
func (s *State) RecordGuess(outcome data.Outcome) error {
	if outcome == data.OutcomeNone {
		return ErrInvalidOutcome
	}
	card, ok := s.LearningCard()
	if !ok {
		return ErrNoCardLearning
	}
	card.LastGuess = outcome
	return nil
}

// SaveKeyValue stores the key/value buffers in Pairs, overwriting any
// earlier value for the key, and clears the editor.
func (s *State) SaveKeyValue() {
	s.Pairs[s.KeyInput] = s.ValueInput

	s.KeyInput = ""
	s.ValueInput = ""
	s.CurrentlyEditing = PairNone
}

func (s *State) ToggleEditing() {
	switch s.CurrentlyEditing {
	case PairKey:
		s.CurrentlyEditing = PairValue
	case PairValue:
		s.CurrentlyEditing = PairKey
	default:
		s.CurrentlyEditing = PairKey
	}
}

// DumpPairs serializes Pairs as a flat JSON object with sorted keys.
func (s *State) DumpPairs() ([]byte, error) {
	out, err := json.Marshal(s.Pairs)
	if err != nil {
		return nil, fmt.Errorf("could not serialize buffer: %w", err)
	}
	return out, nil
}
