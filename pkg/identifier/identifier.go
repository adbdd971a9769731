// Package identifier parses warehouse technical names and business (English)
// names into the segments the governance rules reason about.
//
// Technical names are underscore-delimited token chains. Tables assemble
// their concepts left to right ("Provider Location" -> T_PROVR_LOC_DIM),
// columns right to left ("Encounter Type Code" -> CDE_TYPE_ENC). The
// assembly direction is always passed in by the caller; nothing here guesses
// it from content.
//
// All functions are pure. Parsing never fails: an empty or malformed name
// yields an empty token list, and the malformed-record rules own that case.
package identifier

import (
	"strings"
	"unicode"
)

// Name is a parsed technical identifier.
type Name struct {
	// Raw is the identifier as it appeared in the record, surrounding
	// whitespace trimmed.
	Raw string
	// Tokens are the underscore-delimited segments, uppercased, empty
	// segments dropped.
	Tokens []string
}

// Parse splits a technical name into tokens.
func Parse(raw string) Name {
	trimmed := strings.TrimSpace(raw)
	n := Name{Raw: trimmed}
	for _, tok := range strings.Split(trimmed, "_") {
		if tok == "" {
			continue
		}
		n.Tokens = append(n.Tokens, strings.ToUpper(tok))
	}
	return n
}

// IsEmpty reports whether the name has no usable tokens.
func (n Name) IsEmpty() bool {
	return len(n.Tokens) == 0
}

// Concepts returns the tokens in business-phrase order for the given
// assembly direction: unchanged for LeftToRight, reversed for RightToLeft.
func (n Name) Concepts(dir Direction) []string {
	out := make([]string, len(n.Tokens))
	if dir == RightToLeft {
		for i, tok := range n.Tokens {
			out[len(n.Tokens)-1-i] = tok
		}
		return out
	}
	copy(out, n.Tokens)
	return out
}

// Tail returns the rightmost token for which skip returns false. Under both
// approved assembly directions the subject of a name sits at its right end
// (tables are head-final, columns grow their qualifying concepts rightward),
// so this is the segment singularity policy applies to.
func (n Name) Tail(skip func(tok string) bool) (string, bool) {
	for i := len(n.Tokens) - 1; i >= 0; i-- {
		if skip != nil && skip(n.Tokens[i]) {
			continue
		}
		return n.Tokens[i], true
	}
	return "", false
}

// IsNumeric reports whether a token is digits only, such as the positional
// suffixes in IDN_EDW_01 / IDN_EDW_02.
func IsNumeric(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SplitWords breaks an English name into its uppercased words. Words split
// on whitespace, hyphens and slashes; surrounding punctuation is dropped.
func SplitWords(english string) []string {
	fields := strings.FieldsFunc(english, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/'
	})

	var words []string
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w == "" {
			continue
		}
		words = append(words, strings.ToUpper(w))
	}
	return words
}

// stopwords are the connective words that carry no concept of their own.
// They appear in English names but never map to a technical-name segment,
// and they stay lowercase inside a title-cased English name.
var stopwords = map[string]bool{
	"IN":   true,
	"OF":   true,
	"THE":  true,
	"AND":  true,
	"TO":   true,
	"FOR":  true,
	"WITH": true,
	"AT":   true,
	"BY":   true,
	"FROM": true,
	"ON":   true,
	"OR":   true,
}

// IsStopword reports whether an English-name word is a connective stopword.
func IsStopword(word string) bool {
	return stopwords[strings.ToUpper(strings.TrimSpace(word))]
}

// Subsequence reports whether needles appear in haystack in the same
// relative order, not necessarily adjacent.
func Subsequence(needles, haystack []string) bool {
	i := 0
	for _, h := range haystack {
		if i == len(needles) {
			return true
		}
		if h == needles[i] {
			i++
		}
	}
	return i == len(needles)
}
