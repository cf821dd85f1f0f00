// Package content holds the document HTML helpers shared by the controller
// and the surfaces it drives.
//
// Content is an opaque HTML fragment string. The empty string and
// EmptyDocument describe the same document.
package content
