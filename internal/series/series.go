// Package series loads ordered lists of levels from disk.
//
// A serie is a directory of *.level files. An optional serie.yaml manifest
// names the serie and fixes the level order; without it the files are played
// in natural order, so 2.level comes before 10.level.
package series

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juju/naturalsort"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-memoris/internal/level"
)

const (
	// ManifestFile is the optional serie description file.
	ManifestFile = "serie.yaml"
	// LevelExt is the extension of level files.
	LevelExt = ".level"
)

// ErrEmpty reports a serie without any level.
var ErrEmpty = errors.New("serie has no levels")

// Manifest is the content of serie.yaml.
type Manifest struct {
	Name   string   `yaml:"name"`
	Levels []string `yaml:"levels"`
}

// Serie is an ordered list of level files.
type Serie struct {
	Name   string
	Dir    string
	levels []string
}

// Load reads the serie stored in dir.
func Load(dir string) (*Serie, error) {
	s := &Serie{Name: filepath.Base(dir), Dir: dir}

	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	switch {
	case err == nil:
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("series: parse %s: %w", filepath.Join(dir, ManifestFile), err)
		}
		if m.Name != "" {
			s.Name = m.Name
		}
		for _, name := range m.Levels {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				return nil, fmt.Errorf("series: %s: level %s: %w", s.Name, name, err)
			}
			s.levels = append(s.levels, path)
		}
	case errors.Is(err, os.ErrNotExist):
		files, err := filepath.Glob(filepath.Join(dir, "*"+LevelExt))
		if err != nil {
			return nil, fmt.Errorf("series: list %s: %w", dir, err)
		}
		naturalsort.Sort(files)
		s.levels = files
	default:
		return nil, fmt.Errorf("series: read manifest: %w", err)
	}

	if len(s.levels) == 0 {
		return nil, fmt.Errorf("series: %s: %w", dir, ErrEmpty)
	}
	return s, nil
}

// Single wraps one level file as a serie of its own.
func Single(path string) (*Serie, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("series: %w: %s: %w", level.ErrUnreadable, path, err)
	}
	return &Serie{
		Name:   strings.TrimSuffix(filepath.Base(path), LevelExt),
		Dir:    filepath.Dir(path),
		levels: []string{path},
	}, nil
}

// Open loads path as a serie directory, or as a single level file.
func Open(path string) (*Serie, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("series: %w: %s: %w", level.ErrUnreadable, path, err)
	}
	if info.IsDir() {
		return Load(path)
	}
	return Single(path)
}

// LevelPaths returns the level files in play order.
func (s *Serie) LevelPaths() []string {
	out := make([]string, len(s.levels))
	copy(out, s.levels)
	return out
}

// Count returns the number of levels.
func (s *Serie) Count() int {
	return len(s.levels)
}

// Level loads the i-th level from disk.
func (s *Serie) Level(i int) (*level.Level, error) {
	if i < 0 || i >= len(s.levels) {
		return nil, fmt.Errorf("series: %s: level %d out of range", s.Name, i)
	}
	return level.Load(s.levels[i])
}

// LevelID returns the stable identifier used to store results:
// serie name and file name without extension.
func (s *Serie) LevelID(i int) string {
	base := strings.TrimSuffix(filepath.Base(s.levels[i]), LevelExt)
	return s.Name + "/" + base
}

// SerieName returns the display name of the serie.
func (s *Serie) SerieName() string {
	return s.Name
}

// Loader lists the series stored under a root directory.
type Loader struct {
	Root string
}

// LoadAll loads every serie directory directly under the root, in natural
// order. Directories that are not valid series are skipped and reported in
// the returned error list.
func (l Loader) LoadAll() ([]*Serie, []error) {
	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, []error{fmt.Errorf("series: read root %s: %w", l.Root, err)}
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	naturalsort.Sort(names)

	var series []*Serie
	var errs []error
	for _, name := range names {
		s, err := Load(filepath.Join(l.Root, name))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		series = append(series, s)
	}
	return series, errs
}

// Find loads the serie whose directory or manifest name is name.
func (l Loader) Find(name string) (*Serie, error) {
	if s, err := Load(filepath.Join(l.Root, name)); err == nil {
		return s, nil
	}
	all, _ := l.LoadAll()
	for _, s := range all {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("series: no serie %q under %s", name, l.Root)
}
