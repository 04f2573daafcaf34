// Package terminal hosts the simulation in a tcell screen.
//
// The field is rasterized into an RGBA frame and shown with upper half-block
// cells, two pixels per cell: foreground carries the top pixel, background the
// bottom one. Row 0 is reserved for the score line.
//
// Input:
//   - Space, Enter, Up, left click: start, flip gravity, restart
//   - m: toggle the letterboxed mobile layout
//   - d: toggle the metrics overlay
//   - q, Esc, Ctrl-C: quit
package terminal
