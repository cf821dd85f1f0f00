// Package surface describes the editing-surface capability the richtext
// controller drives: a mountable widget that owns its document, reports edits
// and accepts wholesale HTML injection.
//
// Surfaces are single-goroutine objects. They are created, driven and released
// from the Bubble Tea update loop that hosts them.
package surface
