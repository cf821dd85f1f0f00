package surface

import (
	"fmt"
	"strings"
)

// HeaderLevel is a heading level offered by the toolbar. Normal text is always
// available and is not listed.
type HeaderLevel uint8

// Format is a set of toolbar features.
type Format uint16

const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatUnderline
	FormatStrike
	FormatOrderedList
	FormatBulletList
	FormatColor
	FormatBackground
	FormatAlign
	FormatLink
	FormatImage

	formatEnd
)

const (
	FormatInline = FormatBold | FormatItalic | FormatUnderline | FormatStrike
	FormatLists  = FormatOrderedList | FormatBulletList
)

var formatNames = []struct {
	f    Format
	name string
}{
	{FormatBold, "bold"},
	{FormatItalic, "italic"},
	{FormatUnderline, "underline"},
	{FormatStrike, "strike"},
	{FormatOrderedList, "ordered"},
	{FormatBulletList, "bullet"},
	{FormatColor, "color"},
	{FormatBackground, "background"},
	{FormatAlign, "align"},
	{FormatLink, "link"},
	{FormatImage, "image"},
}

// FormatNames lists every known format name in toolbar order.
func FormatNames() []string {
	out := make([]string, 0, len(formatNames))
	for _, fn := range formatNames {
		out = append(out, fn.name)
	}
	return out
}

// ParseFormat resolves a format name.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fn := range formatNames {
		if fn.name == name {
			return fn.f, nil
		}
	}
	return 0, fmt.Errorf("unknown toolbar format %q", name)
}

// Has reports whether every feature in x is enabled.
func (f Format) Has(x Format) bool { return x != 0 && f&x == x }

// Names returns the enabled feature names in toolbar order.
func (f Format) Names() []string {
	var out []string
	for _, fn := range formatNames {
		if f&fn.f != 0 {
			out = append(out, fn.name)
		}
	}
	return out
}

func (f Format) String() string {
	if f == 0 {
		return "none"
	}
	s := strings.Join(f.Names(), "|")
	if rest := f &^ (formatEnd - 1); rest != 0 {
		s += fmt.Sprintf("|%#x", uint16(rest))
	}
	return s
}

// Toolbar selects the features a surface offers. Which features are enabled
// differs per call site.
type Toolbar struct {
	Headers []HeaderLevel
	Formats Format
}

// FullToolbar is the product-description toolbar.
func FullToolbar() Toolbar {
	return Toolbar{
		Headers: []HeaderLevel{1, 2, 3},
		Formats: FormatInline | FormatLists | FormatColor | FormatBackground | FormatAlign | FormatLink,
	}
}

// BasicToolbar offers inline styles, lists and links only.
func BasicToolbar() Toolbar {
	return Toolbar{Formats: FormatBold | FormatItalic | FormatUnderline | FormatLists | FormatLink}
}

// Labels returns short labels for the enabled headers and formats, suitable
// for a toolbar strip.
func (t Toolbar) Labels() []string {
	out := make([]string, 0, len(t.Headers)+len(formatNames))
	for _, h := range t.Headers {
		out = append(out, fmt.Sprintf("H%d", h))
	}
	return append(out, t.Formats.Names()...)
}
