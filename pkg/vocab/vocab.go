// Package vocab holds the approved naming vocabulary: source-term
// abbreviations and classwords. A Store is immutable once built and safe for
// concurrent readers; lookups are exact, never fuzzy - inferring names is
// explicitly not this system's job.
package vocab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/dictlint/pkg/core"
)

// Entry maps a source term to its approved abbreviation, e.g.
// ENCOUNTER -> ENC, PROVIDER -> PROVR.
type Entry struct {
	Term         string `json:"term" yaml:"term"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
}

// Classword is an approved column-name prefix with the data types it is
// compatible with. Codes may span several tokens (IDN_EDW).
type Classword struct {
	Code      string          `json:"code" yaml:"code"`
	DataTypes []core.DataType `json:"data_types,omitempty" yaml:"data_types,omitempty"`
}

// Compatible reports whether the classword accepts the given data type.
// A classword with no declared types accepts everything.
func (c Classword) Compatible(dt core.DataType) bool {
	if len(c.DataTypes) == 0 {
		return true
	}
	for _, want := range c.DataTypes {
		if want == dt {
			return true
		}
	}
	return false
}

// Store is the read-only vocabulary the validators consult.
type Store struct {
	abbrByTerm map[string]string
	termByAbbr map[string]string
	classwords map[string]Classword
	// matchOrder holds classword codes as token sequences, longest first,
	// for prefix matching against technical names.
	matchOrder [][]string
}

// NewStore validates and indexes the vocabulary. Terms, abbreviations and
// classword codes are normalized (trimmed, uppercased). Invalid vocabulary
// is a caller configuration error and fails construction; it is the one
// error class reported before any validation begins.
func NewStore(entries []Entry, classwords []Classword) (*Store, error) {
	s := &Store{
		abbrByTerm: make(map[string]string, len(entries)),
		termByAbbr: make(map[string]string, len(entries)),
		classwords: make(map[string]Classword, len(classwords)),
	}

	for i, e := range entries {
		term := normalize(e.Term)
		abbr := normalize(e.Abbreviation)
		if term == "" {
			return nil, fmt.Errorf("vocabulary entry %d: empty term", i)
		}
		if abbr == "" {
			return nil, fmt.Errorf("vocabulary entry %d (%s): empty abbreviation", i, term)
		}
		if _, dup := s.abbrByTerm[term]; dup {
			return nil, fmt.Errorf("vocabulary entry %d: duplicate term %s", i, term)
		}
		s.abbrByTerm[term] = abbr
		if _, seen := s.termByAbbr[abbr]; !seen {
			s.termByAbbr[abbr] = term
		}
	}

	for i, cw := range classwords {
		code := normalize(cw.Code)
		if code == "" {
			return nil, fmt.Errorf("classword %d: empty code", i)
		}
		if _, dup := s.classwords[code]; dup {
			return nil, fmt.Errorf("classword %d: duplicate code %s", i, code)
		}
		s.classwords[code] = Classword{Code: code, DataTypes: append([]core.DataType(nil), cw.DataTypes...)}
	}

	for code := range s.classwords {
		s.matchOrder = append(s.matchOrder, strings.Split(code, "_"))
	}
	sort.Slice(s.matchOrder, func(i, j int) bool {
		if len(s.matchOrder[i]) != len(s.matchOrder[j]) {
			return len(s.matchOrder[i]) > len(s.matchOrder[j])
		}
		return strings.Join(s.matchOrder[i], "_") < strings.Join(s.matchOrder[j], "_")
	})

	return s, nil
}

// Abbreviation returns the approved abbreviation for a source term.
// Unknown terms return false, never an error.
func (s *Store) Abbreviation(term string) (string, bool) {
	abbr, ok := s.abbrByTerm[normalize(term)]
	return abbr, ok
}

// Term returns the source term behind an approved abbreviation.
func (s *Store) Term(abbr string) (string, bool) {
	term, ok := s.termByAbbr[normalize(abbr)]
	return term, ok
}

// IsTerm reports whether the token is a known source term.
func (s *Store) IsTerm(token string) bool {
	_, ok := s.abbrByTerm[normalize(token)]
	return ok
}

// IsAbbreviation reports whether the token is an approved abbreviation.
func (s *Store) IsAbbreviation(token string) bool {
	_, ok := s.termByAbbr[normalize(token)]
	return ok
}

// IsClassword reports whether the token is an approved classword code.
func (s *Store) IsClassword(token string) bool {
	_, ok := s.classwords[normalize(token)]
	return ok
}

// MatchClassword finds the approved classword leading a technical name,
// preferring the longest code (IDN_EDW_PROVR matches IDN_EDW before IDN).
func (s *Store) MatchClassword(name string) (Classword, bool) {
	tokens := strings.Split(strings.ToUpper(strings.TrimSpace(name)), "_")
	for _, code := range s.matchOrder {
		if len(code) > len(tokens) {
			continue
		}
		matched := true
		for i, part := range code {
			if tokens[i] != part {
				matched = false
				break
			}
		}
		if matched {
			return s.classwords[strings.Join(code, "_")], true
		}
	}
	return Classword{}, false
}

// Entries returns the abbreviation entries sorted by term.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.abbrByTerm))
	for term, abbr := range s.abbrByTerm {
		out = append(out, Entry{Term: term, Abbreviation: abbr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out
}

// Classwords returns the classwords sorted by code.
func (s *Store) Classwords() []Classword {
	out := make([]Classword, 0, len(s.classwords))
	for _, cw := range s.classwords {
		out = append(out, cw)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
