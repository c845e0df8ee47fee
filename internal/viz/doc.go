// Package viz renders runs for the terminal.
//
//   - [Canvas]: Braille pixel canvas, one dot per cell, for printing a frame
//   - [ProgressBar]: the percentage bar shown while rendering a movie
//   - [ProgressModel]: Bubble Tea program that drives the bar from a worker
//
// Nothing here is interactive beyond Ctrl+C cancelling a long render.
package viz
