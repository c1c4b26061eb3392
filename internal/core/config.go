package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic generation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 30)
	Seed     string // Root galaxy seed ("" means the platform picks one)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     "",
	}
}

// GameState represents the current state of an exploration session.
type GameState struct {
	Discovered int  // Number of systems discovered this session
	InSystem   bool // Whether the ship is inside a star system
	Paused     bool // Whether the simulation is paused
}

// Discovery describes a star system visited for the first time this session.
// The platform layer persists these to the journal.
type Discovery struct {
	X, Y     int    // World coordinates of the star
	Name     string // Generated system name
	Class    string // Spectral class code (O, B, A, F, G, K, M)
	Planets  int    // Number of occupied planet slots
	Starbase bool   // Whether the system has a starbase
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Discovery is non-nil when this tick entered a system for the
	// first time in the session.
	Discovery *Discovery
}
