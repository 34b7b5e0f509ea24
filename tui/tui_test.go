package tui

import (
	"bytes"
	"testing"

	"okcard/app"
	"okcard/controller"
	"okcard/data"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

type firstCard struct{}

func (firstCard) Intn(n int) int { return 0 }

func newTestModel() *model {
	state := app.New()
	return newModel(TUIConfig{
		State:      state,
		Controller: controller.New(firstCard{}),
		Theme:      "notty",
	})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func send(m *model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestToKeys(t *testing.T) {
	assert.Equal(t, []controller.Key{controller.Press(controller.KeyEnter)}, toKeys(keyType(tea.KeyEnter)))
	assert.Equal(t, []controller.Key{controller.Press(controller.KeySpace)}, toKeys(keyType(tea.KeySpace)))
	assert.Equal(t, []controller.Key{controller.Press(controller.KeyEsc)}, toKeys(keyType(tea.KeyEsc)))
	assert.Equal(t, []controller.Key{controller.Press(controller.KeyBackspace)}, toKeys(keyType(tea.KeyBackspace)))
	assert.Equal(t, []controller.Key{controller.Press(controller.KeyBackspace)}, toKeys(keyType(tea.KeyCtrlH)))
	assert.Equal(t, []controller.Key{controller.Press(controller.KeyOther)}, toKeys(keyType(tea.KeyUp)))
	assert.Equal(t,
		[]controller.Key{controller.Char('a'), controller.Press(controller.KeySpace), controller.Char('b')},
		toKeys(runes("a b")))
	assert.Equal(t,
		[]controller.Key{controller.Press(controller.KeyOther)},
		toKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j"), Alt: true}))
}

func TestAddDeckThroughTerminalKeys(t *testing.T) {
	m := newTestModel()

	assert.Contains(t, m.View(), "Press (a) to add a deck")

	send(m, runes("a"), runes("Biology"))
	assert.Contains(t, m.View(), "Name: Biology")

	send(m, keyType(tea.KeyEnter))
	require.Len(t, m.state.Decks, 1)
	assert.Equal(t, app.ScreenMain, m.state.CurrentScreen)
	assert.Contains(t, m.View(), "Biology")
	assert.Contains(t, m.View(), "Decks:")
}

func TestLearningView(t *testing.T) {
	m := newTestModel()
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m.state.AddDeck("Biology")
	send(m, runes("j"), keyType(tea.KeyEnter))
	m.state.AddCard("What is a cell?", "The smallest unit of life")

	assert.Contains(t, m.View(), "Cards for deck Biology")

	send(m, runes("s"))
	require.Equal(t, app.ScreenLearningMode, m.state.CurrentScreen)
	view := m.View()
	assert.Contains(t, view, "What is a cell?")
	assert.Contains(t, view, "reveal the back")
	assert.NotContains(t, view, "smallest unit")

	send(m, keyType(tea.KeySpace))
	view = m.View()
	assert.Contains(t, view, "smallest unit of life")
	assert.Contains(t, view, "(k) easy")

	send(m, runes("k"))
	assert.Equal(t, data.OutcomeEasy, m.state.Decks[0].Cards[0].LastGuess)

	send(m, runes("q"))
	assert.Contains(t, m.View(), "[easy]")
}

func TestExitWithDump(t *testing.T) {
	m := newTestModel()

	cmd := send(m, runes("q"))
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "output the buffer as json")

	cmd = send(m, runes("y"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, controller.ExitDump, m.signal)
	assert.Equal(t, "", m.View())
}

func TestExitWithoutDump(t *testing.T) {
	m := newTestModel()

	cmd := send(m, runes("q"), runes("n"))

	assert.True(t, isQuit(cmd))
	assert.Equal(t, controller.ExitNoDump, m.signal)
}

func TestCtrlCQuitsWithoutDump(t *testing.T) {
	m := newTestModel()
	send(m, runes("a"))

	cmd := send(m, keyType(tea.KeyCtrlC))

	assert.True(t, isQuit(cmd))
	assert.Equal(t, controller.ExitNoDump, m.signal)
}

func TestListKeepsSelectionVisible(t *testing.T) {
	m := newTestModel()
	for i := 0; i < 30; i++ {
		m.state.AddDeck("deck")
	}
	send(m, tea.WindowSizeMsg{Width: 80, Height: 12})
	require.Equal(t, 3, m.list.Height)

	for i := 0; i < 10; i++ {
		send(m, runes("j"))
	}

	selected, ok := m.state.SelectedDeck.Get()
	require.True(t, ok)
	assert.Equal(t, 9, selected)
	assert.LessOrEqual(t, m.list.YOffset, selected)
	assert.Greater(t, m.list.YOffset+m.list.Height, selected)

	for i := 0; i < 10; i++ {
		send(m, runes("k"))
	}
	assert.Equal(t, 0, m.list.YOffset)
}

func TestFooterShowsScreenHints(t *testing.T) {
	m := newTestModel()

	view := m.View()
	assert.Contains(t, view, "Showing Decks")
	assert.Contains(t, view, "add deck")

	send(m, runes("e"))
	view = m.View()
	assert.Contains(t, view, "Editing Buffer")
	assert.Contains(t, view, "switch field")
}

func TestBackspaceFromCtrlH(t *testing.T) {
	m := newTestModel()

	send(m, runes("a"), runes("Bio"), keyType(tea.KeyCtrlH))

	assert.Equal(t, "Bi", m.state.NameInput)
}

func TestLearningFooterListsGrades(t *testing.T) {
	m := newTestModel()
	m.state.AddDeck("Biology")
	send(m, runes("j"), keyType(tea.KeyEnter))
	m.state.AddCard("Q", "A")
	send(m, runes("s"))

	footer := m.footer()
	assert.Contains(t, footer, "incorrect")
	assert.Contains(t, footer, "correct")
	assert.Contains(t, footer, "easy")
}

func TestCardRendererNoColor(t *testing.T) {
	r := &cardRenderer{theme: "dark", noColor: true}

	out := r.render("The smallest unit of **life**", 60)

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "The smallest unit of")
	assert.Contains(t, out, "life")
}

func TestNoColorReachesCardRenderer(t *testing.T) {
	m := newModel(TUIConfig{
		State:      app.New(),
		Controller: controller.New(firstCard{}),
		Theme:      "dark",
		NoColor:    true,
	})
	m.state.AddDeck("Biology")
	send(m, tea.WindowSizeMsg{Width: 80, Height: 24}, runes("j"), keyType(tea.KeyEnter))
	m.state.AddCard("What is a cell?", "The smallest unit of life")
	send(m, runes("s"), keyType(tea.KeySpace))

	assert.True(t, m.cards.noColor)
	assert.NotContains(t, m.cards.render("The smallest unit of life", 60), "\x1b[")
}

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	assert.Equal(t, termenv.Ascii, colorProfile(&buf, true))
	assert.Equal(t, termenv.Ascii, colorProfile(&buf, false))

	t.Setenv("CLICOLOR_FORCE", "1")
	assert.Equal(t, termenv.ANSI, colorProfile(&buf, false))
	assert.Equal(t, termenv.Ascii, colorProfile(&buf, true))
}
