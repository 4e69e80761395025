// Package viz renders a sorting session in the terminal and drives it.
//
// The package implements the controller loop with the Bubble Tea framework:
// a frame tick advances the session, key presses map to session commands,
// and each frame projects the session's bar geometry onto a [Canvas] of
// eighth-block cells.
//
// # Key Bindings
//
//	Space   - Start / pause / resume
//	Enter   - Resume
//	R       - Reset with a new sequence
//	A / D   - Ascending / descending
//	I B S H - Insertion, bubble, selection, heap sort
//	+ / -   - Steps per frame
//	T       - Cycle color themes
//	?       - Show help overlay
//	Q       - Quit
package viz
