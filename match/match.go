// Package match defines the recognized-substring record that flows between a
// password's match producers (dictionary lookup, spatial-walk detection, date
// parsing, ...) and the guess-estimation core.
//
// A Match is modeled as a tagged variant: one struct per pattern kind, each
// embedding the common Header and carrying only its own pattern-specific
// fields. This mirrors how the rest of this module separates concerns by
// concrete type rather than by a single struct with a grab-bag of optional
// attributes.
package match

import "fmt"

// Kind identifies which pattern variant a Match carries.
type Kind int

// The pattern kinds a Match can represent.
const (
	BruteForce Kind = iota
	Dictionary
	Spatial
	Repeat
	Sequence
	Regex
	Date
)

// String returns the lowercase name used in the original guess-estimation
// literature ("bruteforce", "dictionary", ...).
func (k Kind) String() string {
	switch k {
	case BruteForce:
		return "bruteforce"
	case Dictionary:
		return "dictionary"
	case Spatial:
		return "spatial"
	case Repeat:
		return "repeat"
	case Sequence:
		return "sequence"
	case Regex:
		return "regex"
	case Date:
		return "date"
	default:
		return "unknown"
	}
}

// Header is the common prefix every Match carries: the span it covers, the
// substring itself, and the output slots the estimator fills in for
// reporting. I and J are inclusive, 0-based character indices into the
// password; Token must equal password[I:J+1].
type Header struct {
	I, J  int
	Token string

	// Guesses and GuessesLog10 are written once by estimate.Guesses and
	// memoized: a second call on the same Match returns the stored value
	// unchanged.
	Guesses      float64
	GuessesLog10 float64
}

// Match is satisfied by every pattern-specific match type.
type Match interface {
	// Head returns the common header, for span comparisons and for the
	// estimator to write its output slots onto.
	Head() *Header
	// Kind reports which pattern variant this Match represents.
	Kind() Kind
}

// BruteForceMatch is synthesized by the optimizer to cover spans no producer
// explained; it carries no attributes beyond the header and must never be
// produced by a match producer (see optimal.MostGuessableMatchSequence).
type BruteForceMatch struct{ Header }

func (m *BruteForceMatch) Head() *Header { return &m.Header }
func (m *BruteForceMatch) Kind() Kind    { return BruteForce }

// NewBruteForce constructs a BruteForceMatch covering password[i:j+1].
func NewBruteForce(password string, i, j int) *BruteForceMatch {
	return &BruteForceMatch{Header{I: i, J: j, Token: password[i : j+1]}}
}

// DictionaryMatch is a substring recognized against a ranked word list,
// optionally reversed and/or recovered from an l33t substitution.
type DictionaryMatch struct {
	Header
	Rank     int
	Reversed bool
	L33t     bool
	// Sub maps a substituted character to the original it replaces, e.g.
	// '0' -> 'o'. Nil or empty when L33t is false.
	Sub map[rune]rune

	// BaseGuesses, UppercaseVariations, and L33tVariations are written by
	// the estimator for reporting; see estimate.Guesses.
	BaseGuesses         float64
	UppercaseVariations float64
	L33tVariations      float64
}

func (m *DictionaryMatch) Head() *Header { return &m.Header }
func (m *DictionaryMatch) Kind() Kind    { return Dictionary }

// SpatialMatch is a substring recognized as a walk over a keyboard adjacency
// graph (qwerty, dvorak, keypad, ...).
type SpatialMatch struct {
	Header
	Graph        string
	Turns        int
	ShiftedCount int
}

func (m *SpatialMatch) Head() *Header { return &m.Header }
func (m *SpatialMatch) Kind() Kind    { return Spatial }

// RepeatMatch is a substring formed of a repeated base pattern, e.g. "abcabc"
// or "aaaa". BaseGuesses is the guess count already computed for the
// repeating unit; BaseMatches holds the match(es) recognized within one
// repetition, kept for display only (never cyclic).
type RepeatMatch struct {
	Header
	BaseGuesses float64
	RepeatCount int
	BaseMatches []Match
}

func (m *RepeatMatch) Head() *Header { return &m.Header }
func (m *RepeatMatch) Kind() Kind    { return Repeat }

// SequenceMatch is a substring recognized as a run in a simple ordered
// alphabet (e.g. "abcd", "4321").
type SequenceMatch struct {
	Header
	// Ascending is nil when unknown/uninformative, else true/false.
	Ascending *bool
}

func (m *SequenceMatch) Head() *Header { return &m.Header }
func (m *SequenceMatch) Kind() Kind    { return Sequence }

// RegexName enumerates the character-class and structural regexes the core
// knows how to price.
type RegexName string

// The regex names the estimator recognizes.
const (
	RegexAlphaLower   RegexName = "alpha_lower"
	RegexAlphaUpper   RegexName = "alpha_upper"
	RegexAlpha        RegexName = "alpha"
	RegexAlphanumeric RegexName = "alphanumeric"
	RegexDigits       RegexName = "digits"
	RegexSymbols      RegexName = "symbols"
	RegexRecentYear   RegexName = "recent_year"
)

// RegexMatch is a substring recognized by a regex of a known named class.
type RegexMatch struct {
	Header
	RegexName RegexName
	// Year is only meaningful when RegexName == RegexRecentYear.
	Year int
}

func (m *RegexMatch) Head() *Header { return &m.Header }
func (m *RegexMatch) Kind() Kind    { return Regex }

// DateMatch is a substring recognized as a calendar date.
type DateMatch struct {
	Header
	Year int
	// Separator is empty when the date has no separator character.
	Separator string
}

func (m *DateMatch) Head() *Header { return &m.Header }
func (m *DateMatch) Kind() Kind    { return Date }

// ValidationError reports a Match that violates the invariants a producer
// must uphold (span bounds, token consistency, attribute/kind consistency).
type ValidationError struct {
	Kind   Kind
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s match: %s", e.Kind, e.Reason)
}

// Validate checks m against the password it was produced from. Producers are
// expected to call this (or rely on MostGuessableMatchSequence calling it)
// before handing matches to the core; the original reference implementation
// silently tolerated malformed input, but this module rejects it explicitly.
func Validate(m Match, password string) error {
	h := m.Head()
	n := len(password)
	if h.I < 0 || h.J < h.I || h.J >= n {
		return &ValidationError{m.Kind(), fmt.Sprintf("span [%d,%d] out of bounds for password of length %d", h.I, h.J, n)}
	}
	if h.Token != password[h.I:h.J+1] {
		return &ValidationError{m.Kind(), fmt.Sprintf("token %q does not match password[%d:%d]", h.Token, h.I, h.J+1)}
	}
	switch mm := m.(type) {
	case *DictionaryMatch:
		if mm.Rank <= 0 {
			return &ValidationError{Dictionary, "rank must be positive"}
		}
		if mm.L33t && mm.Sub == nil {
			return &ValidationError{Dictionary, "l33t set without a substitution map"}
		}
	case *SpatialMatch:
		if mm.Graph == "" {
			return &ValidationError{Spatial, "graph name is required"}
		}
		if mm.Turns < 1 {
			return &ValidationError{Spatial, "turns must be at least 1"}
		}
		if mm.ShiftedCount < 0 || mm.ShiftedCount > len(mm.Token) {
			return &ValidationError{Spatial, "shifted_count out of range"}
		}
	case *RepeatMatch:
		if mm.RepeatCount <= 0 {
			return &ValidationError{Repeat, "repeat_count must be positive"}
		}
	case *RegexMatch:
		switch mm.RegexName {
		case RegexAlphaLower, RegexAlphaUpper, RegexAlpha, RegexAlphanumeric, RegexDigits, RegexSymbols, RegexRecentYear:
		default:
			return &ValidationError{Regex, fmt.Sprintf("unknown regex_name %q", mm.RegexName)}
		}
	case *DateMatch:
		if mm.Year <= 0 {
			return &ValidationError{Date, "year must be positive"}
		}
	case *BruteForceMatch:
		// synthesized only by the optimizer; a producer handing one in is
		// still structurally valid, just unusual.
	}
	return nil
}
