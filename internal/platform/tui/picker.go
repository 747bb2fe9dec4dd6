package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

// PickerKeyMap defines the key bindings of the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LevelPicker lets the player choose the level a serie starts from.
type LevelPicker struct {
	source   game.Source
	best     map[int]string
	cursor   int
	selected int
	keys     PickerKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewLevelPicker creates a picker over src. When store is not nil the best
// time of each level is shown next to it.
func NewLevelPicker(src game.Source, store *storage.Store, width, height int) LevelPicker {
	p := LevelPicker{
		source:   src,
		best:     make(map[int]string),
		selected: -1,
		keys:     DefaultPickerKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	if store != nil {
		for i, n := 0, src.Count(); i < n; i++ {
			times, err := store.BestTimes(src.LevelID(i), 1)
			if err == nil && len(times) > 0 {
				p.best[i] = formatElapsed(times[0].Elapsed.Milliseconds())
			}
		}
	}
	return p
}

// Init initializes the picker.
func (p LevelPicker) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (p LevelPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			p.quitting = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
		case key.Matches(msg, p.keys.Down):
			if p.cursor < p.source.Count()-1 {
				p.cursor++
			}
		case key.Matches(msg, p.keys.Select):
			p.selected = p.cursor
			return p, tea.Quit
		}

	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.help.Width = msg.Width
	}
	return p, nil
}

// visibleRange returns the window of level rows that fits the height.
func (p LevelPicker) visibleRange() (int, int) {
	rows := core.Max(p.height-8, 1)
	n := p.source.Count()
	if n <= rows {
		return 0, n
	}
	start := core.Clamp(p.cursor-rows/2, 0, n-rows)
	return start, start + rows
}

// View renders the picker.
func (p LevelPicker) View() string {
	if p.quitting || p.selected >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("M E M O R I S"), p.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s - choose a level", p.source.SerieName()), p.width))
	b.WriteString("\n\n")

	var list strings.Builder
	start, end := p.visibleRange()
	for i := start; i < end; i++ {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == p.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		line := fmt.Sprintf("%s%2d. %s", cursor, i+1, p.source.LevelID(i))
		if best, ok := p.best[i]; ok {
			line += "  " + best
		}
		list.WriteString(style.Render(line))
		if i < end-1 {
			list.WriteString("\n")
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(p.width, lipgloss.Center, panelStyle.Render(list.String())))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(p.help.View(p.keys)))
	return b.String()
}

// Selected returns the chosen level index, or -1 when none was chosen.
func (p LevelPicker) Selected() int {
	return p.selected
}

// IsQuitting returns true if the player left without choosing.
func (p LevelPicker) IsQuitting() bool {
	return p.quitting
}

// RunPicker shows the picker and returns the chosen level index, or -1.
func RunPicker(src game.Source, store *storage.Store, width, height int) (int, error) {
	prog := tea.NewProgram(NewLevelPicker(src, store, width, height), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return -1, err
	}
	p, ok := final.(LevelPicker)
	if !ok {
		return -1, nil
	}
	return p.Selected(), nil
}
