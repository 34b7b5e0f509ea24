package tui

import (
	"okcard/app"
	"okcard/controller"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// toKeys converts a terminal key message into controller keys. Pasted text
// arrives as one message and becomes one key per character.
func toKeys(msg tea.KeyMsg) []controller.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return []controller.Key{controller.Press(controller.KeyEnter)}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []controller.Key{controller.Press(controller.KeyBackspace)}
	case tea.KeyEsc:
		return []controller.Key{controller.Press(controller.KeyEsc)}
	case tea.KeyTab:
		return []controller.Key{controller.Press(controller.KeyTab)}
	case tea.KeySpace:
		return []controller.Key{controller.Press(controller.KeySpace)}
	case tea.KeyRunes:
		if msg.Alt {
			return []controller.Key{controller.Press(controller.KeyOther)}
		}
		keys := make([]controller.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if r == ' ' {
				keys = append(keys, controller.Press(controller.KeySpace))
				continue
			}
			keys = append(keys, controller.Char(r))
		}
		return keys
	}
	return []controller.Key{controller.Press(controller.KeyOther)}
}

func binding(keys string, desc string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, desc))
}

var (
	editingHelp = []key.Binding{
		binding("esc", "cancel"),
		binding("tab", "switch field"),
		binding("enter", "next / complete"),
	}

	screenHelp = map[app.Screen][]key.Binding{
		app.ScreenMain: {
			binding("q", "quit"),
			binding("a", "add deck"),
			binding("e", "edit buffer"),
			binding("j/k", "move"),
			binding("enter", "open deck"),
		},
		app.ScreenAddingDeck: {
			binding("esc", "cancel"),
			binding("enter", "complete"),
		},
		app.ScreenViewingDeck: {
			binding("q", "back"),
			binding("a", "add card"),
			binding("s", "learn"),
			binding("j/k", "move"),
		},
		app.ScreenEditingCard: editingHelp,
		app.ScreenLearningMode: {
			binding("q", "back"),
			binding("enter", "reveal"),
			binding("h", "incorrect"),
			binding("j", "correct"),
			binding("k", "easy"),
		},
		app.ScreenEditingPair: editingHelp,
		app.ScreenExiting: {
			binding("y", "dump buffer"),
			binding("n/q", "quit"),
		},
	}
)
