// Package aliasing derives reusable vocabulary aliases from sentence-level
// corrections. A correction only becomes an alias when it is a single-word
// substitution: same word count, exactly one position changed. Insertions,
// deletions, and reorderings are deliberately not modeled; guessing an
// alignment for those would learn garbage, so they are dropped
package aliasing

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Alias maps a word the transcriber keeps producing to the word the user
// keeps correcting it to
type Alias struct {
	Spoken    string
	Canonical string
}

// Extract compares the original transcription against the user-accepted text
// and returns the single substituted word pair, if there is exactly one.
// Comparison is positional, not edit-distance based
func Extract(original, corrected string) (Alias, bool) {
	origWords := words(original)
	corrWords := words(corrected)

	if len(origWords) == 0 || len(origWords) != len(corrWords) {
		return Alias{}, false
	}

	var out Alias
	diffs := 0
	for i := range origWords {
		if origWords[i] == corrWords[i] {
			continue
		}
		diffs++
		if diffs > 1 {
			return Alias{}, false
		}
		out = Alias{Spoken: origWords[i], Canonical: corrWords[i]}
	}
	if diffs != 1 {
		return Alias{}, false
	}
	return out, true
}

// words NFC-normalizes s, drops invalid UTF-8, and splits on whitespace
func words(s string) []string {
	s = strings.ToValidUTF8(s, "")
	s = norm.NFC.String(s)
	return strings.Fields(s)
}
