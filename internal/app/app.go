package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathquest/internal/journal"
	"github.com/abhisek/mathquest/internal/lessons"
	"github.com/abhisek/mathquest/internal/problemgen"
	"github.com/abhisek/mathquest/internal/router"
	"github.com/abhisek/mathquest/internal/screen"
	"github.com/abhisek/mathquest/internal/screens/daily"
	"github.com/abhisek/mathquest/internal/screens/home"
	"github.com/abhisek/mathquest/internal/screens/levels"
	"github.com/abhisek/mathquest/internal/screens/missions"
	"github.com/abhisek/mathquest/internal/screens/quiz"
	"github.com/abhisek/mathquest/internal/screens/welcome"
	"github.com/abhisek/mathquest/internal/session"
	"github.com/abhisek/mathquest/internal/store"
	"github.com/abhisek/mathquest/internal/ui/layout"
)

// Start selects the first screen shown after the menu is built.
type Start int

const (
	StartHome Start = iota
	StartLevels
	StartDaily
	StartMissions
)

// Options configures a TUI run.
type Options struct {
	// State is the session to play. A fresh one is created when nil.
	State *session.State

	// EventRepo journals play; nil disables the journal and history.
	EventRepo store.EventRepo

	// Tutor explains missed questions; nil hides the explain key.
	Tutor *lessons.Service

	// SessionID tags journal events.
	SessionID string

	Start   Start
	Date    string // StartDaily; empty means today
	Mission int    // StartMissions; 1-based, 0 keeps the cursor

	// Splash shows the welcome animation before the home menu.
	Splash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	state    *session.State
	recorder *journal.Recorder
	initCmd  tea.Cmd
	width    int
	height   int
}

// newAppModel builds the screen stack for opts. The home menu is always at
// the bottom so Esc from a start screen lands on it.
func newAppModel(opts Options) AppModel {
	if opts.State == nil {
		opts.State = session.New()
	}
	rec := journal.New(opts.EventRepo, opts.SessionID)

	deps := quiz.Deps{State: opts.State, Recorder: rec}
	if opts.Tutor != nil {
		deps.Tutor = opts.Tutor
	}

	homeScreen := home.New(deps, opts.EventRepo)
	m := AppModel{
		router:   router.New(homeScreen),
		state:    opts.State,
		recorder: rec,
	}

	var first screen.Screen
	switch opts.Start {
	case StartLevels:
		first = levels.New(deps)
	case StartDaily:
		first = daily.New(deps, opts.Date)
	case StartMissions:
		if opts.Mission > 0 {
			opts.State.MoveMission(opts.Mission - 1 - opts.State.MissionIndex())
		}
		first = missions.New(deps)
	default:
		if opts.Splash {
			m.router = router.New(welcome.New(func() screen.Screen { return homeScreen },
				"Sharpen your arithmetic, one quest at a time."))
			m.initCmd = m.router.Active().Init()
		}
	}
	if first != nil {
		m.initCmd = m.router.Push(first)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the framed active screen for the current terminal size.
func (m AppModel) render() string {
	if layout.TooSmall(m.width, m.height) {
		return layout.SizeWarning(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.Header(m.status(title), m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.Footer(footerHints, m.width)

	body := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	return layout.Frame(header, body, footer, m.width, m.height)
}

func (m AppModel) status(title string) layout.Status {
	return layout.Status{
		Screen:    title,
		Score:     m.state.CurrentScore(),
		Tier:      string(m.state.Tier()),
		DailyDone: m.state.DailySolved(problemgen.Today()),
	}
}

// Run starts the Bubble Tea program and returns the summary of the session
// once the player quits. Session start and end are journaled.
func Run(opts Options) (*session.Summary, error) {
	m := newAppModel(opts)
	ctx := context.Background()

	m.recorder.Start(ctx, m.state.CurrentScore())
	_, err := tea.NewProgram(m).Run()

	sum := session.BuildSummary(m.state)
	m.recorder.End(ctx, sum)
	if err != nil {
		return sum, fmt.Errorf("run program: %w", err)
	}
	return sum, nil
}
