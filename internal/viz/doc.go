// Package viz draws charts in the terminal.
//
//   - [Canvas]: Braille sub-pixel canvas (2x4 dots per cell)
//   - [Terminal]: one-shot scatter plot with legend and series plots
//   - [Viewer]: interactive Bubble Tea viewer
//
// # Viewer Keys
//
//	+/-        zoom in/out
//	arrows     pan (also h/j/k/l)
//	0          reset view
//	t          cycle theme
//	q, ctrl+c  quit
package viz
