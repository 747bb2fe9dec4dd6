package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

// Records layout constants
const (
	minWidthForSidebar = 80
	sidebarWidth       = 26
	maxRecords         = 100
)

// RecordsKeyMap defines the key bindings for the records screen.
type RecordsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RecordsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RecordsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Quit},
	}
}

// DefaultRecordsKeyMap returns default key bindings.
func DefaultRecordsKeyMap() RecordsKeyMap {
	return RecordsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev level"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RecordsModel shows the best times of the levels found in the store.
type RecordsModel struct {
	levels      []string
	cursor      int
	store       *storage.Store
	records     []storage.Result
	table       table.Model
	help        help.Model
	keys        RecordsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRecordsModel creates a records screen. When levelID is not empty the
// screen opens on that level.
func NewRecordsModel(store *storage.Store, levelID string, width, height int) RecordsModel {
	m := RecordsModel{
		store:       store,
		keys:        DefaultRecordsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	if store != nil {
		ids, err := store.LevelIDs()
		if err == nil {
			m.levels = ids
		}
	}
	if levelID != "" {
		found := false
		for i, id := range m.levels {
			if id == levelID {
				m.cursor = i
				found = true
				break
			}
		}
		if !found {
			m.levels = append(m.levels, levelID)
			m.cursor = len(m.levels) - 1
		}
	}

	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.loadRecords(m.levels[m.cursor])
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RecordsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Time", Width: 10},
		{Title: "Stars", Width: 6},
		{Title: "Lives", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)),
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

// loadRecords loads the best times of one level.
func (m *RecordsModel) loadRecords(levelID string) {
	m.records = nil
	if m.store != nil {
		if recs, err := m.store.BestTimes(levelID, maxRecords); err == nil {
			m.records = recs
		}
	}
	m.updateTableRows()
}

// RecordRows formats results as table rows, fastest first.
func RecordRows(results []storage.Result) []table.Row {
	rows := make([]table.Row, len(results))
	for i, r := range results {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			formatElapsed(r.Elapsed.Milliseconds()),
			fmt.Sprintf("%d", r.Stars),
			fmt.Sprintf("%d", r.Lives),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func (m *RecordsModel) updateTableRows() {
	m.table.SetRows(RecordRows(m.records))
	m.table.GotoTop()
}

// Init initializes the records model.
func (m RecordsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the records screen.
func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadRecords(m.levels[m.cursor])
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadRecords(m.levels[m.cursor])
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Level returns the level whose records are shown, or "" when none.
func (m RecordsModel) Level() string {
	if len(m.levels) == 0 {
		return ""
	}
	return m.levels[m.cursor]
}

// View renders the records screen.
func (m RecordsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "BEST TIMES"
	if lvl := m.Level(); lvl != "" {
		title = fmt.Sprintf("BEST TIMES - %s", lvl)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	tbl := panelStyle.Render(m.renderTableContent())
	if m.showSidebar && len(m.levels) > 1 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tbl))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tbl))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m RecordsModel) renderSidebar() string {
	style := panelStyle.Width(sidebarWidth)

	var sb strings.Builder
	sb.WriteString("Levels\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	for i, id := range m.levels {
		cursor := "  "
		line := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			line = line.Bold(true).Foreground(lipgloss.Color("229"))
		}
		name := id
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = "." + name[len(name)-maxLen+1:]
		}
		sb.WriteString("\n")
		sb.WriteString(line.Render(cursor + name))
	}
	return style.Render(sb.String())
}

func (m RecordsModel) renderTableContent() string {
	if len(m.records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No completed run yet.\nFinish the level to set a time!")
	}
	return m.table.View()
}

// formatElapsed renders a duration in milliseconds as m:ss.t.
func formatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%d:%02d.%d", ms/60000, ms/1000%60, ms%1000/100)
}

// RunRecords runs the records screen.
func RunRecords(store *storage.Store, levelID string, width, height int) error {
	p := tea.NewProgram(NewRecordsModel(store, levelID, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
