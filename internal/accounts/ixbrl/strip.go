package ixbrl

import "regexp"

var (
	headerBlock = regexp.MustCompile(`(?s)<ix:header>.*?</ix:header>\n?`)
	ixEnvelope  = regexp.MustCompile(`</?ix:[^>]*>`)
)

// Strip removes the machine-readable tagging from a composed document
// while retaining the visible text of every tagged value. The context
// declaration header carries no visible content and is removed whole;
// the remaining ix envelopes are unwrapped in place. Numeric values are
// never altered, only the tagging envelope is dropped.
func Strip(document string) string {
	out := headerBlock.ReplaceAllString(document, "")
	return ixEnvelope.ReplaceAllString(out, "")
}
