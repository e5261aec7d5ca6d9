// Package zxcguess is the guess-estimation core of a zxcvbn-family
// password strength estimator.
//
// Given a password and a set of overlapping candidate matches — substrings
// recognized as dictionary words, keyboard walks, repeats, sequences,
// dates, or regex hits, typically produced by a separate match-producer
// collaborator such as the reference one in producer/dictionary — this
// package computes:
//
//  1. A per-match guess count: the expected number of attempts an informed
//     attacker must make to enumerate that match's variants (package
//     estimate).
//  2. The optimal non-overlapping cover of the password by matches that
//     minimizes total attacker work, including the combinatorial cost of
//     trying covers of different lengths and orderings (package optimal).
//
// The core is purely computational and single-threaded within one call: no
// I/O, no blocking, no shared mutable state beyond the read-only keyboard
// adjacency tables in package graph. It is reentrant and safe to call
// concurrently, provided each caller owns its own match slice (matches are
// mutated in place to record their guess counts for reporting).
//
// Basic usage:
//
//	matches := []match.Match{
//	    &match.DictionaryMatch{Header: match.Header{I: 0, J: 5, Token: "zxcvbn"}, Rank: 1},
//	}
//	result, err := zxcguess.MostGuessableMatchSequence("zxcvbn", matches, zxcguess.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Guesses) // 2 (1! * 1 guess + 10000^0)
package zxcguess

import (
	"errors"
	"time"

	"github.com/corezx/zxcguess/match"
	"github.com/corezx/zxcguess/optimal"
)

var errBruteForceFromProducer = errors.New("brute-force matches are synthesized by the optimizer and must not be supplied by a producer")

// Result is the outcome of MostGuessableMatchSequence.
type Result struct {
	Password     string
	Guesses      float64
	GuessesLog10 float64
	Sequence     []match.Match
}

// DefaultConfig returns a Config with ReferenceYear set from the wall clock
// and the additive term enabled.
func DefaultConfig() Config {
	return Config{ReferenceYear: time.Now().Year()}
}

// MostGuessableMatchSequence computes the optimal non-overlapping cover of
// password by matches and the corresponding total guess count.
//
// Every match is validated against password before scoring: a malformed
// span, a token that doesn't match the password, pattern-inconsistent
// attributes, or a producer-supplied brute-force match (the optimizer is
// the only allowed source of those) is rejected with a *MatchError wrapping
// ErrInvalidMatch, naming the offending match's index in matches.
//
// matches is mutated: each match's Guesses/GuessesLog10 (and, for
// dictionary matches, its reporting fields) are filled in as a side
// effect of scoring it, so callers can inspect them after the call even for
// matches that did not make the winning cover.
func MostGuessableMatchSequence(password string, matches []match.Match, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	for idx, m := range matches {
		if m.Kind() == match.BruteForce {
			return Result{}, &MatchError{idx, errBruteForceFromProducer}
		}
		if err := match.Validate(m, password); err != nil {
			return Result{}, &MatchError{idx, err}
		}
	}

	r := optimal.MostGuessableMatchSequence(password, matches, optimal.Options{
		ReferenceYear:   cfg.ReferenceYear,
		ExcludeAdditive: cfg.ExcludeAdditive,
	})
	return Result{
		Password:     r.Password,
		Guesses:      r.Guesses,
		GuessesLog10: r.GuessesLog10,
		Sequence:     r.Sequence,
	}, nil
}

// MustMostGuessableMatchSequence is like MostGuessableMatchSequence but
// panics if matches fail validation or cfg is invalid. Use it only when the
// caller already trusts its match producer and configuration, mirroring the
// Compile/MustCompile split common to matching libraries in this lineage.
func MustMostGuessableMatchSequence(password string, matches []match.Match, cfg Config) Result {
	r, err := MostGuessableMatchSequence(password, matches, cfg)
	if err != nil {
		panic(err)
	}
	return r
}

