// Package richtext provides a Bubble Tea component that keeps a controlled
// HTML value in step with an editing surface.
//
// The host owns the value. It passes the initial value in Config, receives
// every user edit through Config.OnChange (the empty document is reported as
// ""), and feeds value changes back with Model.SetValue. Values that the host
// merely echoes back are recognised and not re-applied.
//
// Lifecycle:
//
//	Uninitialized --Mount--> Initializing --surface built--> Ready
//	      \                        \                           |
//	       `-------Unmount----------`--------Unmount-----------`--> Destroyed
//
// The surface is built after Config.InitDelay so its container can be
// attached and measured first. Destroyed is terminal; a new edit session
// needs a new Model.
//
// SetValue replaces the surface content wholesale. The cursor position is
// not preserved, so external updates after the initial load should be rare.
package richtext
