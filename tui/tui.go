package tui

import (
	"io"
	"os"

	"okcard/app"
	"okcard/controller"
	"okcard/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type TUIConfig struct {
	State      *app.State
	Controller *controller.Controller
	// Theme is a glamour style name for card text.
	Theme string
	// Output receives the drawn frames; stdout stays free for the dump.
	Output io.Writer
	// NoColor draws every frame and card as plain text.
	NoColor bool
}

// Run starts the TUI application and blocks until the user leaves it. The
// returned signal says whether the buffer should be dumped.
func Run(config TUIConfig) (controller.Signal, error) {
	options := []tea.ProgramOption{tea.WithAltScreen()}
	if config.Output != nil {
		options = append(options, tea.WithOutput(config.Output))
	}

	// Styles are bound to the default renderer, which probes stdout. The
	// frames go to Output, so its profile is the one that matters.
	lipgloss.SetColorProfile(colorProfile(config.Output, config.NoColor))

	p := tea.NewProgram(newModel(config), options...)
	final, err := p.Run()
	if err != nil {
		return controller.ExitNoDump, err
	}

	m, ok := final.(*model)
	if !ok || !m.signal.Done() {
		return controller.ExitNoDump, nil
	}
	return m.signal, nil
}

// colorProfile picks the profile for a frame writer. A nil writer means
// stdout.
func colorProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	if w == nil {
		w = os.Stdout
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

type model struct {
	state  *app.State
	ctrl   *controller.Controller
	help   help.Model
	list   viewport.Model
	cards  *cardRenderer
	width  int
	height int
	signal controller.Signal
}

func newModel(config TUIConfig) *model {
	theme := config.Theme
	if theme == "" {
		theme = "dark"
	}
	return &model{
		state: config.State,
		ctrl:  config.Controller,
		help:  help.New(),
		list:  viewport.New(0, 0),
		cards: &cardRenderer{theme: theme, noColor: config.NoColor},
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			logger.Debug.Println("interrupted")
			m.signal = controller.ExitNoDump
			return m, tea.Quit
		}

		for _, k := range toKeys(msg) {
			if signal := m.ctrl.Dispatch(m.state, k); signal.Done() {
				m.signal = signal
				return m, tea.Quit
			}
		}
		m.syncList()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.list.Width = msg.Width
		m.list.Height = listHeight(msg.Height)
		m.syncList()
	}

	return m, nil
}

// listHeight leaves room for the header, list title and footer.
func listHeight(height int) int {
	h := height - 9
	if h < 3 {
		return 3
	}
	return h
}

// syncList refreshes the list region and keeps the selection in view.
func (m *model) syncList() {
	lines, selected := m.listLines()
	m.list.SetContent(joinLines(lines))

	if selected < 0 || m.list.Height <= 0 {
		return
	}
	if selected < m.list.YOffset {
		m.list.SetYOffset(selected)
	} else if selected >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(selected - m.list.Height + 1)
	}
}
