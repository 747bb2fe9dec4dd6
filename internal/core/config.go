package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Frames per second driving the render loop
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase      string // Human readable phase name (watching, playing, ...)
	Level      int    // 1-based index of the level inside the serie
	Floor      int    // Floor the player stands on
	Stars      int    // Stars collected on the current level
	StarsTotal int    // Stars present on the current level
	Lives      int    // Remaining lives
	Remaining  int64  // Remaining milliseconds, -1 when the level has no limit
	Elapsed    int64  // Milliseconds spent playing the current level
	LevelWon   bool   // The current level was just completed
	Won        bool   // Every level of the serie is completed
	GameOver   bool   // Whether the game has ended (won or lost)
	Paused     bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
