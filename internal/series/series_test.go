package series

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-memoris/internal/level"
)

// writeLevel stores a minimal valid level in dir/name.
func writeLevel(t *testing.T, dir, name string) string {
	t.Helper()
	lvl := level.New()
	lvl.Cell(0).Type = level.CellDeparture
	lvl.Cell(1).Type = level.CellArrival
	if err := lvl.Recount(); err != nil {
		t.Fatalf("Recount() error: %v", err)
	}

	var buf bytes.Buffer
	if err := level.Format(&buf, lvl); err != nil {
		t.Fatalf("Format() error: %v", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

func TestLoadNaturalOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "basics")
	os.Mkdir(dir, 0o755)
	for _, name := range []string{"10.level", "2.level", "1.level", "notes.txt"} {
		writeLevel(t, dir, name)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Name != "basics" {
		t.Errorf("Name = %q, expected basics", s.Name)
	}

	expected := []string{"1.level", "2.level", "10.level"}
	paths := s.LevelPaths()
	if len(paths) != len(expected) {
		t.Fatalf("LevelPaths() = %v, expected %v", paths, expected)
	}
	for i, name := range expected {
		if filepath.Base(paths[i]) != name {
			t.Errorf("LevelPaths()[%d] = %s, expected %s", i, filepath.Base(paths[i]), name)
		}
	}
	if s.LevelID(2) != "basics/10" {
		t.Errorf("LevelID(2) = %q, expected basics/10", s.LevelID(2))
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "a.level")
	writeLevel(t, dir, "b.level")
	manifest := "name: Mirrors\nlevels:\n  - b.level\n  - a.level\n"
	os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0o644)

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Name != "Mirrors" {
		t.Errorf("Name = %q, expected Mirrors", s.Name)
	}
	if s.Count() != 2 || filepath.Base(s.LevelPaths()[0]) != "b.level" {
		t.Errorf("LevelPaths() = %v, expected manifest order", s.LevelPaths())
	}

	lvl, err := s.Level(0)
	if err != nil {
		t.Fatalf("Level(0) error: %v", err)
	}
	if lvl.PlayerCellType() != level.CellDeparture {
		t.Errorf("PlayerCellType() = %v, expected departure", lvl.PlayerCellType())
	}
	if _, err := s.Level(5); err == nil {
		t.Error("Level(5) returned nil error")
	}
}

func TestLoadErrors(t *testing.T) {
	empty := t.TempDir()
	if _, err := Load(empty); !errors.Is(err, ErrEmpty) {
		t.Errorf("Load(empty) error = %v, expected ErrEmpty", err)
	}

	broken := t.TempDir()
	os.WriteFile(filepath.Join(broken, ManifestFile), []byte("levels:\n  - missing.level\n"), 0o644)
	if _, err := Load(broken); err == nil {
		t.Error("Load() with a missing manifest level returned nil error")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := writeLevel(t, dir, "solo.level")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(file) error: %v", err)
	}
	if s.Count() != 1 || s.Name != "solo" {
		t.Errorf("Open(file) = %q with %d levels, expected solo with 1", s.Name, s.Count())
	}

	if _, err := Open(filepath.Join(dir, "nope")); !errors.Is(err, level.ErrUnreadable) {
		t.Errorf("Open(missing) error = %v, expected ErrUnreadable", err)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"serie10", "serie2", "empty"} {
		os.Mkdir(filepath.Join(root, name), 0o755)
	}
	writeLevel(t, filepath.Join(root, "serie10"), "1.level")
	writeLevel(t, filepath.Join(root, "serie2"), "1.level")

	l := Loader{Root: root}
	all, errs := l.LoadAll()
	if len(all) != 2 {
		t.Fatalf("LoadAll() returned %d series, expected 2", len(all))
	}
	if all[0].Name != "serie2" || all[1].Name != "serie10" {
		t.Errorf("LoadAll() order = %s, %s, expected serie2, serie10", all[0].Name, all[1].Name)
	}
	if len(errs) != 1 {
		t.Errorf("LoadAll() reported %d errors, expected 1", len(errs))
	}

	if _, err := l.Find("serie10"); err != nil {
		t.Errorf("Find(serie10) error: %v", err)
	}
	if _, err := l.Find("nothing"); err == nil {
		t.Error("Find(nothing) returned nil error")
	}
}
