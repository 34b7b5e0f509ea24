// Package app holds the in-memory model of okcard: the decks, the selection
// and editing buffers, and the state of the current learning round.
//
// Only the controller mutates a State. The presenter reads it between
// key presses and never writes back.
package app

import (
	"time"
	"unicode/utf8"

	"okcard/data"
)

type State struct {
	Decks []data.Deck

	// SelectedDeck indexes Decks. SelectedCard indexes the selected deck's
	// cards and is None whenever SelectedDeck is None.
	SelectedDeck Index
	SelectedCard Index

	CurrentScreen Screen

	NameInput  string
	FrontInput string
	BackInput  string

	// CardEditingFace is FaceNone unless a card is being written.
	CardEditingFace data.CardFace

	// AddingDeck mirrors CurrentScreen == ScreenAddingDeck.
	AddingDeck bool

	// DisplayDecks picks the deck list over the card list for the shared
	// list region.
	DisplayDecks bool

	CardLearning Index
	FaceShowing  data.CardFace

	KeyInput         string
	ValueInput       string
	CurrentlyEditing PairField
	Pairs            map[string]string

	now func() time.Time
}

func New() *State {
	return NewWithClock(time.Now)
}

func NewWithClock(now func() time.Time) *State {
	return &State{
		Decks:         []data.Deck{},
		CurrentScreen: ScreenMain,
		DisplayDecks:  true,
		Pairs:         map[string]string{},
		now:           now,
	}
}

// CurrentDeck returns the selected deck.
func (s *State) CurrentDeck() (*data.Deck, bool) {
	i, ok := s.SelectedDeck.Get()
	if !ok || i >= len(s.Decks) {
		return nil, false
	}
	return &s.Decks[i], true
}

// LearningCard returns the card drawn for the active learning round.
func (s *State) LearningCard() (*data.Card, bool) {
	deck, ok := s.CurrentDeck()
	if !ok {
		return nil, false
	}
	i, ok := s.CardLearning.Get()
	if !ok || i >= len(deck.Cards) {
		return nil, false
	}
	return &deck.Cards[i], true
}

// Revalidate drops any index that no longer fits its owning slice.
func (s *State) Revalidate() {
	s.SelectedDeck = s.SelectedDeck.within(len(s.Decks))

	deck, ok := s.CurrentDeck()
	if !ok {
		s.SelectedCard = None
		s.CardLearning = None
		return
	}
	s.SelectedCard = s.SelectedCard.within(len(deck.Cards))
	s.CardLearning = s.CardLearning.within(len(deck.Cards))
}

// PopLast removes the last character of a text buffer.
func PopLast(text string) string {
	if text == "" {
		return text
	}
	_, size := utf8.DecodeLastRuneInString(text)
	return text[:len(text)-size]
}
