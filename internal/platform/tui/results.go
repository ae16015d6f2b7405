package tui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result is one finished game.
type Result struct {
	Game     string
	Score    int
	Level    int
	Lines    int
	Finished time.Time
}

// Results keeps the finished games of one terminal session in memory.
// Nothing is written to disk.
type Results struct {
	mu      sync.Mutex
	entries []Result
}

// NewResults creates an empty result list.
func NewResults() *Results {
	return &Results{}
}

// Add records a finished game.
func (r *Results) Add(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, res)
}

// List returns all results, best score first. Ties keep the earlier game first.
func (r *Results) List() []Result {
	r.mu.Lock()
	out := slices.Clone(r.entries)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Result) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return out
}

// Best returns the highest-scoring result for a variant.
func (r *Results) Best(game string) (Result, bool) {
	for _, res := range r.List() {
		if res.Game == game {
			return res, true
		}
	}
	return Result{}, false
}

// Len returns the number of recorded results.
func (r *Results) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// ResultsModel shows the session's finished games in a table.
type ResultsModel struct {
	results   []Result
	table     table.Model
	help      help.Model
	keys      MenuKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewResultsModel creates the results screen for the given terminal size.
func NewResultsModel(results *Results, width, height int) ResultsModel {
	h := help.New()
	h.Width = width

	m := ResultsModel{
		results: results.List(),
		help:    h,
		keys:    DefaultMenuKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the table sized to the current terminal.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Variant", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Lines", Width: 6},
		{Title: "Finished", Width: 10},
	}

	rows := make([]table.Row, len(m.results))
	for i, r := range m.results {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Game,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Lines),
			r.Finished.Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the results screen.
func (m ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack, MenuActionResults:
			m.goingBack = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the results screen.
func (m ResultsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RESULTS"), m.width))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, empty.Render("No games finished yet.")))
	} else {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box.Render(m.table.View())))
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.ShortHelpView(m.backHelp())))
	return b.String()
}

func (m ResultsModel) backHelp() []key.Binding {
	return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Back, m.keys.Quit}
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ResultsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ResultsModel) IsQuitting() bool {
	return m.quitting
}
