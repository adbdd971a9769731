// Package spell defines the spelling collaborator the description rules call
// out to, plus a dictionary-backed implementation. The engine treats any
// Checker as an external service: an error return degrades to a "could not
// verify" warning on the affected entity and never aborts a batch.
package spell

import (
	"context"
	"strings"
	"unicode"
)

// Checker verifies free-text fields and returns the terms it cannot
// recognize. Implementations must be safe for concurrent use; the validators
// call them from parallel workers.
type Checker interface {
	Check(ctx context.Context, text string) ([]string, error)
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(ctx context.Context, text string) ([]string, error)

// Check calls f.
func (f CheckerFunc) Check(ctx context.Context, text string) ([]string, error) {
	return f(ctx, text)
}

// Noop is a Checker that accepts everything. Used when spelling checks are
// switched off.
type Noop struct{}

// Check always reports no findings.
func (Noop) Check(context.Context, string) ([]string, error) {
	return nil, nil
}

// Mode selects how aggressively the dictionary flags unknown words.
type Mode int

// Dictionary modes. Strict flags every unknown word; Lenient tolerates
// near-misses one edit away from a known word.
const (
	Strict Mode = iota
	Lenient
)

// String returns the configuration spelling of the mode.
func (m Mode) String() string {
	if m == Strict {
		return "strict"
	}
	return "lenient"
}

// ParseMode converts a configuration string to a Mode.
// Returns the mode and true if valid, or Lenient and false if not.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return Strict, true
	case "lenient":
		return Lenient, true
	default:
		return Lenient, false
	}
}

// Dictionary is a word-list Checker. It is immutable after construction.
type Dictionary struct {
	mode      Mode
	words     map[string]bool
	byInitial map[byte][]string
}

// NewDictionary builds a Checker over the given words (case-insensitive).
// Combine BaseWords with vocabulary terms and any deployment word list.
func NewDictionary(mode Mode, words ...string) *Dictionary {
	d := &Dictionary{
		mode:      mode,
		words:     make(map[string]bool, len(words)),
		byInitial: make(map[byte][]string),
	}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || d.words[w] {
			continue
		}
		d.words[w] = true
		d.byInitial[w[0]] = append(d.byInitial[w[0]], w)
	}
	return d
}

// Check splits text into words and returns the ones the dictionary rejects,
// deduplicated in first-seen order.
func (d *Dictionary) Check(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var flagged []string
	seen := make(map[string]bool)
	for _, w := range extractWords(text) {
		lower := strings.ToLower(w)
		if seen[lower] || d.accepts(w, lower) {
			continue
		}
		seen[lower] = true
		flagged = append(flagged, lower)
	}
	return flagged, nil
}

func (d *Dictionary) accepts(raw, lower string) bool {
	// Short runs and all-caps runs are abbreviations and acronyms (EDW,
	// NPI), not prose.
	if len(lower) < 3 {
		return true
	}
	if raw == strings.ToUpper(raw) && len(raw) <= 5 {
		return true
	}
	if d.words[lower] {
		return true
	}
	if d.words[singularOf(lower)] {
		return true
	}
	if d.mode == Lenient {
		for _, cand := range d.byInitial[lower[0]] {
			if withinOneEdit(lower, cand) {
				return true
			}
		}
	}
	return false
}

// singularOf strips a simple plural ending so "identifiers" matches a
// dictionary that lists "identifier".
func singularOf(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 3:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) > 2:
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && len(w) > 1:
		return w[:len(w)-1]
	default:
		return w
	}
}

// extractWords returns the letter runs of the text, skipping runs that mix
// with digits (codes like ICD10 are not words).
func extractWords(text string) []string {
	var words []string
	var cur strings.Builder
	hasDigit := false

	flush := func() {
		if cur.Len() > 0 && !hasDigit {
			words = append(words, cur.String())
		}
		cur.Reset()
		hasDigit = false
	}

	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			cur.WriteRune(r)
		case unicode.IsDigit(r):
			hasDigit = true
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return words
}

// withinOneEdit reports whether a and b differ by at most one insertion,
// deletion or substitution.
func withinOneEdit(a, b string) bool {
	if a == b {
		return true
	}
	la, lb := len(a), len(b)
	if la > lb {
		a, b, la, lb = b, a, lb, la
	}
	if lb-la > 1 {
		return false
	}

	i, j := 0, 0
	edited := false
	for i < la && j < lb {
		if a[i] == b[j] {
			i++
			j++
			continue
		}
		if edited {
			return false
		}
		edited = true
		if la == lb {
			i++
		}
		j++
	}
	return true
}
