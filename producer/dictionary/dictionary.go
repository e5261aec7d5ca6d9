// Package dictionary is a reference match producer: it builds an
// Aho-Corasick automaton over a ranked word list and emits
// match.DictionaryMatch values for substrings of a password that appear in
// the list (at most one per start position; see List.Find).
//
// Producing candidate matches is explicitly out of scope for the
// guess-estimation core (see the module's design notes) — this package
// exists to demonstrate the producer collaborator role end to end and to
// give the module's one real domain dependency, the Aho-Corasick automaton
// used elsewhere in this lineage for large literal alternations, a genuine,
// exercised home. It intentionally does not attempt l33t-substitution
// discovery or reversed-word detection; those remain a fuller producer's
// job.
package dictionary

import (
	"fmt"
	"strings"

	"github.com/coregx/ahocorasick"

	"github.com/corezx/zxcguess/match"
)

// List is a ranked word list compiled into an automaton for fast
// multi-pattern scanning.
type List struct {
	automaton *ahocorasick.Automaton
	rank      map[string]int
}

// New compiles words into a List. Earlier entries are treated as more
// common and receive a lower (better) rank; duplicate words keep their
// first rank. Words are matched case-insensitively.
func New(words []string) (*List, error) {
	builder := ahocorasick.NewBuilder()
	rank := make(map[string]int, len(words))
	for i, w := range words {
		lw := strings.ToLower(w)
		if lw == "" {
			continue
		}
		if _, exists := rank[lw]; !exists {
			rank[lw] = i + 1
		}
		builder.AddPattern([]byte(lw))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("dictionary: building automaton: %w", err)
	}
	return &List{automaton: automaton, rank: rank}, nil
}

// Find returns match.DictionaryMatch values for substrings of password that
// appear in the list, scanning left to right. After each match, scanning
// resumes one byte past that match's start, so at most one match is
// returned per start position: when several listed words begin at the same
// position, only the one the automaton reports first is returned. Matches
// starting at different positions may overlap; the guess-estimation core's
// optimizer chooses which ones belong in the final cover.
func (l *List) Find(password string) []match.Match {
	lower := strings.ToLower(password)
	haystack := []byte(lower)

	var out []match.Match
	at := 0
	for at < len(haystack) {
		m := l.automaton.Find(haystack, at)
		if m == nil {
			break
		}
		word := lower[m.Start:m.End]
		out = append(out, &match.DictionaryMatch{
			Header: match.Header{
				I:     m.Start,
				J:     m.End - 1,
				Token: password[m.Start:m.End],
			},
			Rank: l.rank[word],
		})
		at = m.Start + 1
	}
	return out
}
