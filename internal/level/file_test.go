package level

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// levelText renders a level file: departure, star and arrival on the first
// three cells, walls everywhere else, sixteen symbols per line.
func levelText(minutes, seconds int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%d\n", minutes, seconds)
	for i := 0; i < CellsPerLevel; i++ {
		switch i {
		case 0:
			b.WriteByte('d')
		case 1:
			b.WriteByte('s')
		case 2:
			b.WriteByte('a')
		default:
			b.WriteByte('f')
		}
		if ColOf(i) == CellsPerLine-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestParse(t *testing.T) {
	l, err := Parse(strings.NewReader(levelText(1, 30)))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if l.Minutes() != 1 || l.Seconds() != 30 {
		t.Errorf("time = %d:%d, expected 1:30", l.Minutes(), l.Seconds())
	}
	if l.TimeLimit().Seconds() != 90 {
		t.Errorf("TimeLimit() = %v, expected 90s", l.TimeLimit())
	}
	if l.StarsAmount() != 1 {
		t.Errorf("StarsAmount() = %d, expected 1", l.StarsAmount())
	}
	if l.PlayableFloors() != 1 {
		t.Errorf("PlayableFloors() = %d, expected 1", l.PlayableFloors())
	}
	if l.PlayerCellIndex() != 0 || l.PlayerCellType() != CellDeparture {
		t.Errorf("player = %d (%v), expected 0 (departure)", l.PlayerCellIndex(), l.PlayerCellType())
	}
}

func TestParseErrors(t *testing.T) {
	valid := levelText(0, 0)

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing seconds", "1\n"},
		{"bad minutes", "one\n0\n" + valid[4:]},
		{"seconds out of range", "0\n75\n" + valid[4:]},
		{"truncated", valid[:len(valid)-20]},
		{"too long", valid + "f"},
		{"unknown symbol", strings.Replace(valid, "s", "x", 1)},
		{"no departure", strings.Replace(valid, "d", "e", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse() error = %v, expected ErrMalformed", err)
			}
			if l != nil {
				t.Error("Parse() returned a level on failure")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.level")
	if err := os.WriteFile(path, []byte(levelText(0, 45)), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if l.Seconds() != 45 {
		t.Errorf("Seconds() = %d, expected 45", l.Seconds())
	}
}

func TestLoadMissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "nope.level"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Load() error = %v, expected ErrUnreadable", err)
	}
	if errors.Is(err, ErrMalformed) {
		t.Error("Load() of a missing file reported ErrMalformed")
	}
	if l != nil {
		t.Error("Load() returned a level on failure")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	src := levelText(2, 5)
	l, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Format(&buf, l); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	if buf.String() != src {
		t.Error("Format() output differs from the parsed file")
	}
}
