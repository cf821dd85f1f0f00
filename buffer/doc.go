// Package buffer implements the paragraph document behind the terminal
// surface: one row per paragraph, grapheme-accurate cursor, undo/redo and a
// record of the last effective change with its source.
//
// Coordinates are 0-based (Row, Col) where Col counts grapheme clusters.
package buffer
