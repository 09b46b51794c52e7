// Package terminal draws the projection renderer's output into a tcell screen
// Every cell shows two stacked pixels using the upper half block glyph:
// the foreground is the top pixel and the background the bottom one
package terminal
