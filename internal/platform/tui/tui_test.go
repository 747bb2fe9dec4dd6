package tui

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/config"
	"github.com/vovakirdan/tui-memoris/internal/core"
	"github.com/vovakirdan/tui-memoris/internal/game"
	"github.com/vovakirdan/tui-memoris/internal/level"
	"github.com/vovakirdan/tui-memoris/internal/storage"
)

type memSource struct {
	levels []*level.Level
}

func (s *memSource) Count() int { return len(s.levels) }

func (s *memSource) Level(i int) (*level.Level, error) {
	return s.levels[i].Clone(), nil
}

func (s *memSource) LevelID(i int) string { return fmt.Sprintf("test/%d", i+1) }
func (s *memSource) SerieName() string    { return "test" }

// lineLevel is departure, star, arrival on the first row of floor 0.
func lineLevel(t *testing.T) *level.Level {
	t.Helper()
	lvl := level.New()
	lvl.Cell(level.IndexOf(0, 0, 0)).Type = level.CellDeparture
	lvl.Cell(level.IndexOf(0, 0, 1)).Type = level.CellStar
	lvl.Cell(level.IndexOf(0, 0, 2)).Type = level.CellArrival
	if err := lvl.Recount(); err != nil {
		t.Fatalf("Recount() error: %v", err)
	}
	return lvl
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestModel(t *testing.T, store *storage.Store, levels ...*level.Level) (Model, *core.ManualClock) {
	t.Helper()
	gameplay := config.GameplayConfig{WatchingTimeMs: 1000, Lives: 2, TimeBonusSec: 3}
	g, err := game.New(&memSource{levels: levels}, gameplay, audio.Nop{}, 0)
	if err != nil {
		t.Fatalf("game.New() error: %v", err)
	}
	clock := core.NewManualClock(0)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	return NewModel(g, store, cfg, true, nil).WithClock(clock), clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"k", runeKey('k'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"j", runeKey('j'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"h", runeKey('h'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"l", runeKey('l'), core.ActionRight},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapApply(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewInputFrame()

	if keys.Apply(runeKey('d'), &frame) {
		t.Error("Apply(d) reported quit")
	}
	if keys.Apply(runeKey('s'), &frame) {
		t.Error("Apply(s) reported quit")
	}
	moves := frame.Moves()
	if len(moves) != 2 || moves[0] != core.ActionRight || moves[1] != core.ActionDown {
		t.Errorf("Moves() = %v, expected [Right Down]", moves)
	}

	if !keys.Apply(runeKey('q'), &frame) {
		t.Error("Apply(q) did not report quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit was recorded in the frame")
	}
}

func TestShadeOf(t *testing.T) {
	tests := []struct {
		alpha uint8
		want  Shade
	}{
		{0, ShadeBlank},
		{84, ShadeBlank},
		{85, ShadeFaint},
		{169, ShadeFaint},
		{170, ShadeFull},
		{255, ShadeFull},
	}
	for _, tt := range tests {
		if got := ShadeOf(tt.alpha); got != tt.want {
			t.Errorf("ShadeOf(%d) = %v, expected %v", tt.alpha, got, tt.want)
		}
	}
}

func TestRenderScreenBlanksTransparentCells(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.DrawText(0, 0, "AB")
	s.SetCell(3, 0, core.ScreenCell{Rune: 'X', Color: core.ColorRed, Alpha: 10})

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") {
		t.Errorf("RenderScreen() = %q, expected it to contain %q", out, "AB")
	}
	if strings.Contains(out, "X") {
		t.Errorf("RenderScreen() = %q, transparent cell was drawn", out)
	}
}

func TestRenderScreenRows(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 1, "abc")

	out := RenderScreen(s)
	if !strings.Contains(out, "\n") || !strings.Contains(out, "abc") {
		t.Errorf("RenderScreen() = %q, expected two rows with %q", out, "abc")
	}
}

func TestModelTickDrivesGameFromClock(t *testing.T) {
	m, clock := newTestModel(t, nil, lineLevel(t))

	m = update(t, m, TickMsg(time.Now()))
	if m.State().Phase != "watching" {
		t.Fatalf("Phase = %q, expected watching", m.State().Phase)
	}

	clock.Advance(1000)
	m = update(t, m, TickMsg(time.Now()))
	if m.State().Phase != "playing" {
		t.Fatalf("Phase = %q, expected playing", m.State().Phase)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	clock.Advance(100)
	m = update(t, m, TickMsg(time.Now()))
	if m.State().Stars != 1 {
		t.Errorf("Stars = %d, expected 1", m.State().Stars)
	}
}

func TestModelSavesFinishedLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	m, clock := newTestModel(t, store, lineLevel(t))
	m = update(t, m, TickMsg(time.Now()))
	clock.Advance(1000)
	m = update(t, m, TickMsg(time.Now()))

	for i := 0; i < 2; i++ {
		m = update(t, m, runeKey('l'))
		clock.Advance(100)
		m = update(t, m, TickMsg(time.Now()))
	}
	if !m.State().LevelWon {
		t.Fatalf("State() = %+v, expected the level won", m.State())
	}

	// further frames must not store the result again
	clock.Advance(2000)
	m = update(t, m, TickMsg(time.Now()))
	if !m.State().Won {
		t.Fatalf("State() = %+v, expected the serie won", m.State())
	}

	best, err := store.BestTimes("test/1", 10)
	if err != nil {
		t.Fatalf("BestTimes() error: %v", err)
	}
	if len(best) != 1 {
		t.Fatalf("BestTimes() returned %d results, expected 1", len(best))
	}
	if best[0].Elapsed != 200*time.Millisecond {
		t.Errorf("Elapsed = %v, expected 200ms", best[0].Elapsed)
	}
	if best[0].Stars != 1 || best[0].Serie != "test" {
		t.Errorf("result = %+v, expected 1 star in serie test", best[0])
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil, lineLevel(t))
	m = update(t, m, runeKey('q'))
	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if m.View() != "" {
		t.Errorf("View() = %q after quit, expected empty", m.View())
	}
}

func TestModelResizeAndView(t *testing.T) {
	m, _ := newTestModel(t, nil, lineLevel(t))
	m = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("View() does not warn about a small window")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	if !strings.Contains(view, "Memorize!") {
		t.Error("View() does not show the watching prompt")
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() does not show the help line")
	}
}

func TestLevelPickerNavigation(t *testing.T) {
	src := &memSource{levels: []*level.Level{lineLevel(t), lineLevel(t), lineLevel(t)}}
	p := NewLevelPicker(src, nil, 80, 24)

	step := func(msg tea.Msg) {
		next, _ := p.Update(msg)
		p = next.(LevelPicker)
	}

	step(tea.KeyMsg{Type: tea.KeyUp})
	step(runeKey('j'))
	step(runeKey('j'))
	step(runeKey('j'))
	if !strings.Contains(p.View(), "test/3") {
		t.Error("View() does not list the levels")
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Selected() != 2 {
		t.Errorf("Selected() = %d, expected 2", p.Selected())
	}
	if p.IsQuitting() {
		t.Error("IsQuitting() = true after a selection")
	}
}

func TestLevelPickerQuit(t *testing.T) {
	src := &memSource{levels: []*level.Level{lineLevel(t)}}
	p := NewLevelPicker(src, nil, 80, 24)

	next, _ := p.Update(runeKey('q'))
	p = next.(LevelPicker)
	if !p.IsQuitting() {
		t.Error("IsQuitting() = false after q")
	}
	if p.Selected() != -1 {
		t.Errorf("Selected() = %d, expected -1", p.Selected())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "0:00.0"},
		{1250, "0:01.2"},
		{61_900, "1:01.9"},
		{-5, "0:00.0"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.ms); got != tt.want {
			t.Errorf("formatElapsed(%d) = %q, expected %q", tt.ms, got, tt.want)
		}
	}
}

func TestRecordsModelOpensOnLevel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	defer store.Close()

	for _, r := range []storage.Result{
		{LevelID: "a/1", Serie: "a", Won: true, Elapsed: 3 * time.Second, Stars: 1},
		{LevelID: "a/2", Serie: "a", Won: true, Elapsed: 2 * time.Second, Stars: 2},
		{LevelID: "a/2", Serie: "a", Won: true, Elapsed: time.Second, Stars: 2},
		{LevelID: "a/2", Serie: "a", Won: false, Elapsed: 500 * time.Millisecond},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() error: %v", err)
		}
	}

	m := NewRecordsModel(store, "a/2", 100, 30)
	if m.Level() != "a/2" {
		t.Errorf("Level() = %q, expected %q", m.Level(), "a/2")
	}
	rows := RecordRows(m.records)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, expected 2 won attempts", len(rows))
	}
	if rows[0][1] != "0:01.0" {
		t.Errorf("fastest time = %q, expected %q", rows[0][1], "0:01.0")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RecordsModel)
	if m.Level() != "a/1" {
		t.Errorf("Level() after tab = %q, expected %q", m.Level(), "a/1")
	}
}
