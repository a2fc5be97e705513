package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/tatianab/treasure-hunter/internal/command"
	"github.com/tatianab/treasure-hunter/internal/engine"
)

// NewGameFunc starts a session for a named Hunter in the given mode.
type NewGameFunc func(name string, mode engine.Mode) (*engine.Game, error)

type sessionState int

const (
	stateInputName sessionState = iota
	stateInputMode
	statePlaying
	stateOver
	stateError
)

type model struct {
	state     sessionState
	newGame   NewGameFunc
	game      *engine.Game
	name      string
	textInput textinput.Model
	viewport  viewport.Model
	err       error
	gameLog   string
	width     int
	height    int
	busy      bool
	// status is rendered from the game between turns, never while a turn runs.
	status string
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7D7")).
			Bold(true)

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	endStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)
)

func NewModel(newGame NewGameFunc) model {
	ti := textinput.New()
	ti.Placeholder = "What's your name, Hunter?"
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40

	return model{
		state:     stateInputName,
		newGame:   newGame,
		textInput: ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

type turnProcessedMsg struct {
	turn engine.Turn
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			switch m.state {
			case stateInputName:
				name := strings.ToLower(strings.TrimSpace(m.textInput.Value()))
				if name == "" {
					name = "hunter"
				}
				m.name = name
				m.state = stateInputMode
				m.textInput.Reset()
				m.textInput.Placeholder = "(E)asy, (N)ormal, or (H)ard mode?"
				return m, nil

			case stateInputMode:
				mode, err := engine.ParseMode(m.textInput.Value())
				if err != nil {
					m.textInput.Reset()
					m.textInput.Placeholder = "Pick (E)asy, (N)ormal, or (H)ard."
					return m, nil
				}
				game, err := m.newGame(m.name, mode)
				if err != nil {
					m.err = err
					m.state = stateError
					return m, nil
				}
				return m.startGame(game), nil

			case statePlaying:
				if m.busy {
					return m, nil
				}
				line := m.textInput.Value()
				if strings.TrimSpace(line) == "" {
					return m, nil
				}
				m.textInput.Reset()

				if line == "/quit" {
					return m, tea.Quit
				}
				if line == "/restart" {
					return m.restart(), nil
				}

				styledAction := userStyle.Width(m.logWidth()).Render("> " + line)
				m.gameLog += "\n\n" + styledAction + "\n\n"
				m.viewport.SetContent(m.renderLog())
				m.viewport.GotoBottom()
				m.busy = true
				return m, m.processTurn(command.Parse(line))

			case stateOver:
				return m.restart(), nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = m.logWidth()
		m.viewport.Height = msg.Height - 6
		if m.state == statePlaying || m.state == stateOver {
			m.viewport.SetContent(m.renderLog())
			if !m.busy {
				m.status = m.renderState()
			}
		}

	case turnProcessedMsg:
		m.busy = false
		m.gameLog += gameStyle.Width(m.logWidth()).Render(msg.turn.Message) + "\n\n"
		m.status = m.renderState()
		if msg.turn.Over {
			m.state = stateOver
			m.gameLog += endStyle.Render("The hunt is over. Press Enter to play again or Esc to quit.") + "\n"
		}
		m.viewport.SetContent(m.renderLog())
		m.viewport.GotoBottom()
		return m, nil
	}

	if m.state == stateInputName || m.state == stateInputMode || m.state == statePlaying {
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) startGame(game *engine.Game) model {
	m.game = game
	m.state = statePlaying
	header := brandStyle.Render("TREASURE HUNTER")
	intro := gameStyle.Width(m.logWidth()).Render("Going hunting for the big treasure, eh?\n\n" + game.News())
	m.gameLog = header + "\n\n" + intro + "\n\n" + helpStyle.Render(command.Help()) + "\n\n"
	if m.viewport.Width == 0 {
		m.viewport = viewport.New(m.logWidth(), m.height-6)
	}
	m.viewport.SetContent(m.renderLog())
	m.status = m.renderState()
	m.textInput.Placeholder = "What's your next move?"
	m.textInput.Reset()
	return m
}

func (m model) restart() model {
	m.state = stateInputName
	m.game = nil
	m.gameLog = ""
	m.status = ""
	m.busy = false
	m.textInput.Reset()
	m.textInput.Placeholder = "What's your name, Hunter?"
	return m
}

func (m model) logWidth() int {
	return int(float64(m.width) * 0.75)
}

func (m model) View() string {
	var s string

	switch m.state {
	case stateInputName:
		s = fmt.Sprintf(
			"Welcome to %s!\n\n%s\n\n%s",
			brandStyle.Render("TREASURE HUNTER"),
			"Going hunting for the big treasure, eh?",
			m.textInput.View(),
		)

	case stateInputMode:
		s = fmt.Sprintf(
			"Welcome, %s.\n\n%s\n\n%s",
			m.name,
			"Choose how hard the road will be: (E)asy, (N)ormal, (H)ard or (S)amurai.",
			m.textInput.View(),
		)

	case statePlaying, stateOver:
		mainView := lipgloss.JoinHorizontal(lipgloss.Top,
			m.viewport.View(),
			m.status,
		)

		help := helpStyle.Render("Commands: h, d, b <item>, s <item>, m, l, x, ? for the menu, /restart, /quit.")
		input := m.textInput.View()
		if m.busy {
			input = helpStyle.Render("...")
		}

		s = lipgloss.JoinVertical(lipgloss.Left,
			mainView,
			"\n"+input,
			"\n"+help,
		)

	case stateError:
		s = fmt.Sprintf("\n  Error: %v\n\nPress Esc to quit.", m.err)
	}

	return "\n" + s + "\n"
}

func (m model) renderState() string {
	if m.game == nil {
		return ""
	}

	hunter := m.game.Hunter()
	town := m.game.Town()

	// Hunter
	hunterTitle := titleStyle.Render("HUNTER") + "\n"
	stats := fmt.Sprintf("Name: %s\nGold: %s\n\n", hunter.Name(), goldStyle.Render(humanize.Comma(int64(hunter.Gold()))))

	// Kit
	kitTitle := titleStyle.Render("KIT") + "\n"
	kit := ""
	if len(hunter.Kit()) == 0 {
		kit = "(empty)\n"
	} else {
		for _, tool := range hunter.Kit() {
			kit += "- " + string(tool) + "\n"
		}
	}
	kit += "\n"

	// Treasures
	treasureTitle := titleStyle.Render("TREASURES") + "\n"
	treasures := ""
	if len(hunter.Treasures()) == 0 {
		treasures = "(none yet)\n"
	} else {
		for _, t := range hunter.Treasures() {
			treasures += "- " + string(t) + "\n"
		}
	}
	treasures += "\n"

	// Town
	townTitle := titleStyle.Render("TOWN") + "\n"
	townInfo := town.String() + "\n" + fmt.Sprintf("To leave you need: %s\n", town.Terrain().Needs)

	// News
	newsTitle := "\n" + titleStyle.Render("NEWS") + "\n"
	news := m.game.News() + "\n"

	content := hunterTitle + stats + kitTitle + kit + treasureTitle + treasures + townTitle + townInfo + newsTitle + news

	stateWidth := int(float64(m.width) * 0.23) // Leave some room for padding
	return stateStyle.Width(stateWidth).Height(m.viewport.Height).Render(content)
}

func (m model) renderLog() string {
	return m.gameLog
}

func (m model) processTurn(cmd command.Command) tea.Cmd {
	game := m.game
	return func() tea.Msg {
		return turnProcessedMsg{game.Do(context.Background(), cmd)}
	}
}

func Run(newGame NewGameFunc) error {
	p := tea.NewProgram(NewModel(newGame), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
