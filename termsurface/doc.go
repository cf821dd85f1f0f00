// Package termsurface is an editing surface for terminal product forms.
//
// It keeps paragraphs in a buffer.Buffer, renders them with a toolbar strip
// and placeholder, and reports every effective text change to its listener:
// key input as surface.SourceUser, SetHTML as surface.SourceAPI.
//
// The toolbar strip only advertises the configured features; formatting is
// not applied to the text.
package termsurface
