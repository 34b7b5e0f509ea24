// Package controller turns key presses into changes of the app.State. Each
// screen owns a transition function; keys a screen does not know are
// ignored.
package controller

import (
	"okcard/app"
	"okcard/data"
	"okcard/logger"
)

// Signal tells the event loop whether to keep going.
type Signal int

const (
	Continue Signal = iota
	ExitDump
	ExitNoDump
)

func (s Signal) Done() bool {
	return s != Continue
}

// GuessObserver is told about every graded learning round.
type GuessObserver interface {
	GuessRecorded(deck data.Deck, card data.Card, outcome data.Outcome)
}

type transition func(s *app.State, k Key) Signal

type Controller struct {
	rng       app.RandomSource
	observers []GuessObserver
	table     map[app.Screen]transition
}

func New(rng app.RandomSource, observers ...GuessObserver) *Controller {
	c := &Controller{rng: rng, observers: observers}
	c.table = map[app.Screen]transition{
		app.ScreenMain:         c.onMain,
		app.ScreenAddingDeck:   c.onAddingDeck,
		app.ScreenViewingDeck:  c.onViewingDeck,
		app.ScreenEditingCard:  c.onEditingCard,
		app.ScreenLearningMode: c.onLearningMode,
		app.ScreenEditingPair:  c.onEditingPair,
		app.ScreenExiting:      c.onExiting,
	}
	return c
}

// Handles reports whether the screen has a transition function.
func (c *Controller) Handles(screen app.Screen) bool {
	_, ok := c.table[screen]
	return ok
}

// Dispatch applies one key event to the state. Release events never reach
// a screen.
func (c *Controller) Dispatch(s *app.State, k Key) Signal {
	if k.Kind == KindRelease {
		return Continue
	}

	step, ok := c.table[s.CurrentScreen]
	if !ok {
		logger.Debug.Printf("no transitions for screen %d", s.CurrentScreen)
		return Continue
	}

	before := s.CurrentScreen
	signal := step(s, k)
	if s.CurrentScreen != before {
		logger.Debug.Printf("screen %s -> %s on %s", before, s.CurrentScreen, k)
	}
	return signal
}

func (c *Controller) notify(deck data.Deck, card data.Card, outcome data.Outcome) {
	for _, o := range c.observers {
		o.GuessRecorded(deck, card, outcome)
	}
}

func moveDown(i app.Index, n int) app.Index {
	if n == 0 {
		return app.None
	}
	v, ok := i.Get()
	if !ok {
		return app.Some(0)
	}
	if v < n-1 {
		return app.Some(v + 1)
	}
	return app.Some(n - 1)
}

func moveUp(i app.Index, n int) app.Index {
	if n == 0 {
		return app.None
	}
	v, ok := i.Get()
	if !ok {
		return app.Some(0)
	}
	if v > 0 {
		return app.Some(v - 1)
	}
	return app.Some(0)
}
