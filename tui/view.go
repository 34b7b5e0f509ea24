package tui

import (
	"fmt"
	"strings"

	"okcard/app"
	"okcard/data"
	"okcard/logger"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func (m *model) View() string {
	if m.signal.Done() {
		return ""
	}

	s := m.state
	if s.CurrentScreen == app.ScreenExiting {
		return m.exitView()
	}

	var b strings.Builder

	header := headerStyle
	if m.width > 2 {
		header = header.Width(m.width - 2)
	}
	b.WriteString(header.Render("OK-CARD"))
	b.WriteString("\n")

	switch s.CurrentScreen {
	case app.ScreenAddingDeck:
		b.WriteString(m.addingDeckView())
	case app.ScreenEditingCard:
		b.WriteString(m.editingCardView())
	case app.ScreenEditingPair:
		b.WriteString(m.editingPairView())
	case app.ScreenLearningMode:
		b.WriteString(m.learningView())
	default:
		b.WriteString(listTitleStyle.Render(m.listTitle()))
		b.WriteString("\n")
		b.WriteString(m.listRegion())
	}

	b.WriteString("\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m *model) listTitle() string {
	s := m.state
	if s.DisplayDecks {
		if len(s.Decks) == 0 {
			return "Press (a) to add a deck"
		}
		return "Decks:"
	}

	deck, ok := s.CurrentDeck()
	if !ok {
		return ""
	}
	if len(deck.Cards) == 0 {
		return fmt.Sprintf("Press (a) to add a card to deck %s", deck.Name)
	}
	return fmt.Sprintf("Cards for deck %s", deck.Name)
}

// listLines renders the deck or card list and reports the selected line,
// or -1 without a selection.
func (m *model) listLines() ([]string, int) {
	s := m.state
	selected := -1

	if s.DisplayDecks {
		lines := make([]string, 0, len(s.Decks))
		for i, deck := range s.Decks {
			line := fmt.Sprintf("- %d - %s - %d cards", i+1, deck.Name, len(deck.Cards))
			line += dimStyle.Render(fmt.Sprintf(" [last learned %s]", deck.DateLastLearned.Format("2006-01-02")))
			style := itemStyle
			if s.SelectedDeck.Is(i) {
				line = "> " + line
				style = selectedItemStyle
				selected = i
			}
			lines = append(lines, style.Render(line))
		}
		return lines, selected
	}

	deck, ok := s.CurrentDeck()
	if !ok {
		return nil, selected
	}
	lines := make([]string, 0, len(deck.Cards))
	for i, card := range deck.Cards {
		line := fmt.Sprintf("%d - %s", i+1, card.Front)
		if card.LastGuess != data.OutcomeNone {
			line += dimStyle.Render(fmt.Sprintf(" [%s]", card.LastGuess))
		}
		style := itemStyle
		if s.SelectedCard.Is(i) {
			line = "> " + line
			style = selectedItemStyle
			selected = i
		}
		lines = append(lines, style.Render(line))
	}
	return lines, selected
}

func (m *model) listRegion() string {
	// Before the first window size message there is no viewport height.
	if m.list.Height <= 0 {
		lines, _ := m.listLines()
		return joinLines(lines)
	}
	return m.list.View()
}

func (m *model) addingDeckView() string {
	field := activeFieldStyle.Render("Name: " + m.state.NameInput)
	return popupStyle.Render("Enter name of new deck:\n" + field)
}

func (m *model) editingCardView() string {
	s := m.state
	front, back := fieldStyle, fieldStyle
	switch s.CardEditingFace {
	case data.FaceFront:
		front = activeFieldStyle
	case data.FaceBack:
		back = activeFieldStyle
	}

	title := "Enter card information"
	if deck, ok := s.CurrentDeck(); ok {
		title = fmt.Sprintf("Enter card information for deck %s", deck.Name)
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		front.Render("Card front: "+s.FrontInput),
		back.Render("Card back: "+s.BackInput),
	))
}

func (m *model) editingPairView() string {
	s := m.state
	keyField, valueField := fieldStyle, fieldStyle
	switch s.CurrentlyEditing {
	case app.PairKey:
		keyField = activeFieldStyle
	case app.PairValue:
		valueField = activeFieldStyle
	}
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Enter a new key-value pair",
		keyField.Render("Key: "+s.KeyInput),
		valueField.Render("Value: "+s.ValueInput),
	))
}

func (m *model) learningView() string {
	s := m.state
	card, ok := s.LearningCard()
	if !ok {
		return errorStyle.Render("No card to learn. Press (q) to go back")
	}

	width := m.width - 4
	if width < 20 {
		width = 60
	}

	var b strings.Builder
	b.WriteString(cardFrontStyle.Width(width).Render(card.Front))
	b.WriteString("\n\n")

	switch s.FaceShowing {
	case data.FaceFront:
		b.WriteString(helpStyle.Render("press (ENTER) to reveal the back of the card"))
	case data.FaceBack:
		b.WriteString(fieldStyle.Render(m.cards.render(card.Back, width-4)))
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			incorrectStyle.Render("(h) incorrect"), "   ",
			correctStyle.Render("(j) correct"), "   ",
			easyStyle.Render("(k) easy"),
		))
	}
	return b.String()
}

func (m *model) exitView() string {
	prompt := errorStyle.Render("Would you like to output the buffer as json? (y/n)")
	body := popupStyle.Render("Y/N\n" + prompt)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	return body
}

func (m *model) footer() string {
	var mode string
	switch m.state.CurrentScreen {
	case app.ScreenMain:
		mode = "Showing Decks"
	case app.ScreenAddingDeck:
		mode = "Adding Deck"
	case app.ScreenViewingDeck:
		mode = "Viewing Deck"
	case app.ScreenEditingCard:
		mode = "Editing Card " + m.state.CardEditingFace.String()
	case app.ScreenLearningMode:
		mode = "Learning Mode"
	case app.ScreenEditingPair:
		mode = "Editing Buffer"
	case app.ScreenExiting:
		mode = "Exiting"
	}

	hints := m.help.ShortHelpView(screenHelp[m.state.CurrentScreen])
	return lipgloss.JoinHorizontal(lipgloss.Top,
		footerStyle.Render(listTitleStyle.Render(mode)),
		footerStyle.Render(helpStyle.Render(hints)),
	)
}

// cardRenderer renders card text as markdown, rebuilding the glamour
// renderer only when the wrap width changes.
type cardRenderer struct {
	theme    string
	noColor  bool
	width    int
	renderer *glamour.TermRenderer
}

func (c *cardRenderer) render(text string, width int) string {
	if c.renderer == nil || c.width != width {
		options := []glamour.TermRendererOption{
			glamour.WithStandardStyle(c.theme),
			glamour.WithWordWrap(width),
		}
		if c.noColor {
			options = []glamour.TermRendererOption{
				glamour.WithStandardStyle("notty"),
				glamour.WithColorProfile(termenv.Ascii),
				glamour.WithWordWrap(width),
			}
		}
		r, err := glamour.NewTermRenderer(options...)
		if err != nil {
			logger.Debug.Printf("could not build card renderer: %s", err)
			return text
		}
		c.renderer = r
		c.width = width
	}

	out, err := c.renderer.Render(text)
	if err != nil {
		logger.Debug.Printf("could not render card: %s", err)
		return text
	}
	// glamour still emits empty SGR sequences under the Ascii profile.
	if c.noColor {
		out = ansi.Strip(out)
	}
	return strings.Trim(out, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
