package content

// EmptyDocument is the markup an editing surface reports for a document with
// no text: a single paragraph holding a line break.
const EmptyDocument = "<p><br></p>"

// Equivalent reports whether a and b describe the same document for
// synchronization purposes.
//
// Comparison is byte equality plus the empty-document rule. No HTML-level
// normalisation is attempted.
func Equivalent(a, b string) bool {
	if a == b {
		return true
	}
	return (a == "" && b == EmptyDocument) || (a == EmptyDocument && b == "")
}

// Canonical returns "" for any content equivalent to the empty document and
// s unchanged otherwise.
func Canonical(s string) string {
	if Equivalent(s, "") {
		return ""
	}
	return s
}

// IsEmpty reports whether s is the empty document.
func IsEmpty(s string) bool { return Canonical(s) == "" }
