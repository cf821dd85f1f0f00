package termsurface

// Clipboard supplies text for the paste binding.
//
// Read errors are ignored; the paste simply does nothing.
type Clipboard interface {
	ReadText() (string, error)
}
