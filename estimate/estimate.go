// Package estimate implements the per-pattern guess estimators: the
// combinatorial model that maps a single recognized Match to the expected
// number of attempts an informed attacker needs to enumerate its variants.
package estimate

import (
	"math"
	"regexp"
	"strings"

	"github.com/corezx/zxcguess/combinatorics"
	"github.com/corezx/zxcguess/graph"
	"github.com/corezx/zxcguess/match"
)

// Tunable constants, fixed unless the module is rebuilt.
const (
	BruteforceCardinality        = 10
	MinSubmatchGuessesSingleChar = 10
	MinSubmatchGuessesMultiChar  = 50
	MinYearSpace                 = 20
)

var (
	startOnlyUpper = regexp.MustCompile(`^[A-Z][^A-Z]+$`)
	endOnlyUpper   = regexp.MustCompile(`^[^A-Z]+[A-Z]$`)
	allUpper       = regexp.MustCompile(`^[^a-z]+$`)
)

var regexCardinality = map[match.RegexName]int{
	match.RegexAlphaLower:   26,
	match.RegexAlphaUpper:   26,
	match.RegexAlpha:        52,
	match.RegexAlphanumeric: 62,
	match.RegexDigits:       10,
	match.RegexSymbols:      33,
}

// Guesses returns m's guess count, computing and memoizing it on first
// call. passwordLen is the length of the full password m was extracted
// from, needed to decide whether the submatch floor applies. referenceYear
// is "now" for the purposes of recent_year and date pricing (inject a fixed
// year in tests for determinism).
//
// A second call with the same Match returns the previously stored value
// without recomputing it.
func Guesses(m match.Match, passwordLen int, referenceYear int) float64 {
	h := m.Head()
	if h.Guesses != 0 {
		return h.Guesses
	}

	raw := rawGuesses(m, referenceYear)

	floor := 1.0
	if len(h.Token) < passwordLen {
		if len(h.Token) == 1 {
			floor = MinSubmatchGuessesSingleChar
		} else {
			floor = MinSubmatchGuessesMultiChar
		}
	}

	guesses := math.Max(raw, floor)
	h.Guesses = guesses
	h.GuessesLog10 = math.Log10(guesses)
	return guesses
}

func rawGuesses(m match.Match, referenceYear int) float64 {
	switch mm := m.(type) {
	case *match.BruteForceMatch:
		return bruteForceGuesses(mm)
	case *match.RepeatMatch:
		return mm.BaseGuesses * float64(mm.RepeatCount)
	case *match.SequenceMatch:
		return sequenceGuesses(mm)
	case *match.RegexMatch:
		return regexGuesses(mm, referenceYear)
	case *match.DateMatch:
		return dateGuesses(mm, referenceYear)
	case *match.SpatialMatch:
		return spatialGuesses(mm)
	case *match.DictionaryMatch:
		return dictionaryGuesses(mm)
	default:
		return 1
	}
}

// bruteForceGuesses prices a BruteForceMatch at cardinality^length,
// saturating on overflow, with its own floor one above the ordinary
// submatch floor so an equal-length submatch is never strictly dominated by
// brute force.
func bruteForceGuesses(m *match.BruteForceMatch) float64 {
	guesses := combinatorics.SaturatingPow10(len(m.Token))
	// The +1 floor is applied unconditionally here; Guesses() applies the
	// ordinary submatch floor afterward via math.Max, so the stricter of
	// the two always wins.
	floorPlusOne := float64(MinSubmatchGuessesMultiChar + 1)
	if len(m.Token) == 1 {
		floorPlusOne = float64(MinSubmatchGuessesSingleChar + 1)
	}
	return math.Max(guesses, floorPlusOne)
}

func sequenceGuesses(m *match.SequenceMatch) float64 {
	if m.Token == "" {
		return 1
	}
	first := rune(m.Token[0])
	base := sequenceBaseCardinality(first)
	if m.Ascending != nil && !*m.Ascending {
		base *= 2
	}
	return float64(base) * float64(len([]rune(m.Token)))
}

func sequenceBaseCardinality(first rune) int {
	switch first {
	case 'a', 'A', 'z', 'Z', '0', '1', '9':
		return 4
	default:
		if first >= '0' && first <= '9' {
			return 10
		}
		return 26
	}
}

func regexGuesses(m *match.RegexMatch, referenceYear int) float64 {
	if base, ok := regexCardinality[m.RegexName]; ok {
		return math.Pow(float64(base), float64(len([]rune(m.Token))))
	}
	if m.RegexName == match.RegexRecentYear {
		return math.Max(math.Abs(float64(m.Year-referenceYear)), MinYearSpace)
	}
	return 1
}

func dateGuesses(m *match.DateMatch, referenceYear int) float64 {
	yearSpace := math.Max(math.Abs(float64(m.Year-referenceYear)), MinYearSpace)
	guesses := yearSpace * 365
	if m.Separator != "" {
		guesses *= 4
	}
	return guesses
}

// spatialGuesses prices a walk over a keyboard adjacency graph: the sum,
// over every way to place the turn points along the token, of the number of
// starting positions times the average branching factor raised to the
// number of turns, then folds in the extra guesses needed for shift-key
// variations.
func spatialGuesses(m *match.SpatialMatch) float64 {
	g, ok := graph.Lookup(m.Graph)
	if !ok {
		return 1
	}
	qwerty := graph.QWERTY
	var startingPositions int
	switch m.Graph {
	case string(graph.QWERTYName), string(graph.DvorakName):
		startingPositions = len(qwerty)
	default:
		startingPositions = len(graph.Keypad)
	}
	avgDegree := combinatorics.AverageDegree(g)

	l := len([]rune(m.Token))
	guesses := 0.0
	for i := 2; i <= l; i++ {
		maxJ := m.Turns
		if i-1 < maxJ {
			maxJ = i - 1
		}
		for j := 1; j <= maxJ; j++ {
			guesses += float64(combinatorics.NChooseK(i-1, j-1)) * float64(startingPositions) * math.Pow(avgDegree, float64(j))
		}
	}

	if m.ShiftedCount > 0 {
		unshifted := l - m.ShiftedCount
		if unshifted == 0 {
			guesses *= 2
		} else {
			shiftVariants := 0.0
			maxI := m.ShiftedCount
			if unshifted < maxI {
				maxI = unshifted
			}
			for i := 1; i <= maxI; i++ {
				shiftVariants += float64(combinatorics.NChooseK(m.ShiftedCount+unshifted, i))
			}
			guesses *= shiftVariants
		}
	} else {
		guesses *= 2
	}
	return guesses
}

func dictionaryGuesses(m *match.DictionaryMatch) float64 {
	m.BaseGuesses = float64(m.Rank)
	m.UppercaseVariations = uppercaseVariations(m.Token)
	if m.L33t {
		m.L33tVariations = l33tVariations(m.Token, m.Sub)
	} else {
		m.L33tVariations = 1
	}
	guesses := m.BaseGuesses * m.UppercaseVariations * m.L33tVariations
	if m.Reversed {
		guesses *= 2
	}
	return guesses
}

// uppercaseVariations returns the number of ways an attacker would try
// capitalizing word, following the same cases the original guess-estimation
// model distinguishes: all-lowercase, a single recognizable capitalization
// pattern (start-only, end-only, or all-uppercase), or a free mix of
// upper/lowercase that must be enumerated combinatorially.
func uppercaseVariations(word string) float64 {
	if word == strings.ToLower(word) {
		return 1
	}
	if startOnlyUpper.MatchString(word) || endOnlyUpper.MatchString(word) || allUpper.MatchString(word) {
		return 2
	}
	upper, lower := 0, 0
	for _, r := range word {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
		case r >= 'a' && r <= 'z':
			lower++
		}
	}
	minUL := upper
	if lower < minUL {
		minUL = lower
	}
	total := 0.0
	for i := 1; i <= minUL; i++ {
		total += float64(combinatorics.NChooseK(upper+lower, i))
	}
	return total
}

// l33tVariations returns the number of ways an attacker would try l33t
// substitutions of token, given the substituted->original character map.
func l33tVariations(token string, sub map[rune]rune) float64 {
	if len(sub) == 0 {
		return 1
	}
	lower := strings.ToLower(token)
	variations := 1.0
	for substituted, original := range sub {
		s := strings.Count(lower, string(substituted))
		u := strings.Count(lower, string(original))
		if s == 0 || u == 0 {
			variations *= 2
			continue
		}
		minSU := s
		if u < minSU {
			minSU = u
		}
		total := 0.0
		for i := 1; i <= minSU; i++ {
			total += float64(combinatorics.NChooseK(u+s, i))
		}
		variations *= total
	}
	return variations
}
