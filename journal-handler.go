package main

import (
	"time"

	data "okcard/data"
	"okcard/logger"
)

// JournalHandler writes every graded learning round to the review journal.
type JournalHandler struct {
	Journal   data.Journal
	SessionId string
	now       func() time.Time
}

func NewJournalHandler(journal data.Journal, sessionId string) *JournalHandler {
	return &JournalHandler{Journal: journal, SessionId: sessionId, now: time.Now}
}

func (h *JournalHandler) GuessRecorded(deck data.Deck, card data.Card, outcome data.Outcome) {
	entry := data.ReviewEntry{
		SessionId: h.SessionId,
		DeckName:  deck.Name,
		Front:     card.Front,
		Back:      card.Back,
		Outcome:   outcome,
		Created:   h.now(),
	}

	// The session goes on even when the journal is unreachable.
	_, err := h.Journal.Record(entry)
	if err != nil {
		logger.Debug.Printf("Error while trying to save review: %s", err)
	}
}
