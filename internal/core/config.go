package core

// RuntimeConfig is what the front end tells a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // 0 lets the front end pick one from the clock
}

// DefaultConfig is an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

// GameState is the summary a game exposes to the front end after each tick.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool // set together with GameOver when the maze was cleared
	Paused   bool
	Ticks    int // simulated ticks since the last Reset
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
