// Package registry maps trigger cells to the floor transforms they start.
// Transforms register themselves in init() functions, so the gameplay code
// can look them up by cell type without knowing every animation.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-memoris/internal/animation"
	"github.com/vovakirdan/tui-memoris/internal/audio"
	"github.com/vovakirdan/tui-memoris/internal/level"
)

// Factory creates a new transform. Sounds is the cue player of the game
// that triggers it.
type Factory func(sounds audio.Player) animation.Animation

// TransformInfo contains metadata about a registered transform.
type TransformInfo struct {
	Trigger level.CellType
	Name    string
}

type entry struct {
	name    string
	factory Factory
}

var (
	entries = make(map[level.CellType]entry)
	mu      sync.RWMutex
)

// Register binds a trigger cell type to a transform factory.
// Panics if the cell type already has a transform.
func Register(trigger level.CellType, name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[trigger]; exists {
		panic(fmt.Sprintf("registry: trigger %q already registered", trigger.Symbol()))
	}
	entries[trigger] = entry{name: name, factory: f}
}

// List returns every registered transform, sorted by trigger symbol.
func List() []TransformInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]TransformInfo, 0, len(entries))
	for t, e := range entries {
		result = append(result, TransformInfo{Trigger: t, Name: e.name})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Trigger < result[j].Trigger
	})

	return result
}

// Lookup returns the factory bound to a trigger cell type.
func Lookup(trigger level.CellType) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[trigger]
	return e.factory, ok
}

// Create instantiates the transform of a trigger cell type.
// Returns an error if nothing is registered for it.
func Create(trigger level.CellType, sounds audio.Player) (animation.Animation, error) {
	f, ok := Lookup(trigger)
	if !ok {
		return nil, fmt.Errorf("registry: no transform for cell %q", trigger.Symbol())
	}
	return f(sounds), nil
}

// Exists checks if a trigger cell type has a transform.
func Exists(trigger level.CellType) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[trigger]
	return ok
}
