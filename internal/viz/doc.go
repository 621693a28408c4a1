// Package viz renders bouncing-body simulations in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view that ticks a simulation at the configured frame rate
//   - [Canvas]: Braille-based pixel canvas with a per-cell colour tag
//   - [Viewport]: arena to canvas mapping used for drawing and mouse hits
//   - Theme selection with 5 built-in color schemes, each with one colour
//     per body visual state
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Re-place bodies from the seed
//	Click - Cycle the colour of the body under the cursor
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// # Recording
//
// The live view records the canvas as a GIF animation with the G key,
// using the current theme's palette.
package viz
