// Package sanitize strips terminal control sequences from text before it is
// shown on a terminal. Source lines come from arbitrary input and must not be
// able to move the cursor, retitle the window or change colours.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	// OSC: ESC ] ... terminated by BEL or ST (ESC \)
	oscRe = regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)
	csiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
)

// Line removes OSC and CSI sequences (SGR colours included) and every other
// control character except tab.
func Line(in string) string {
	if !needsWork(in) {
		return in
	}
	out := oscRe.ReplaceAllString(in, "")
	out = csiRe.ReplaceAllString(out, "")
	return strings.Map(func(r rune) rune {
		if r != '\t' && unicode.IsControl(r) {
			return -1
		}
		return r
	}, out)
}

func needsWork(s string) bool {
	for _, r := range s {
		if r != '\t' && unicode.IsControl(r) {
			return true
		}
	}
	return false
}
