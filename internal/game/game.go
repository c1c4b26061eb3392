// Package game contains the exploration game logic, free of any terminal
// or transport dependency. The platform handles input mapping, timing,
// and presentation.
package game

import (
	"github.com/stardrift-dev/stardrift/internal/core"
)

// Game is the interface between the simulation and the platform layer.
// Implementations contain pure logic with no external dependencies
// (especially no Bubble Tea).
type Game interface {
	// Reset initializes or resets the game state.
	// The RuntimeConfig provides screen dimensions, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (move, warp, back).
	// Returns the result of this tick including any discovery event.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
