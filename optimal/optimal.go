// Package optimal implements the dynamic-programming search for the
// non-overlapping cover of a password that minimizes total attacker work,
// walking prefixes of the password and filling gaps no producer match
// explains with synthesized brute-force matches.
package optimal

import (
	"math"
	"sort"

	"github.com/corezx/zxcguess/combinatorics"
	"github.com/corezx/zxcguess/estimate"
	"github.com/corezx/zxcguess/match"
)

// MinGuessesBeforeGrowingSequence is the additive term's base: the
// attacker-work model assumes an attacker tries every cover of length 1,
// then every cover of length 2, and so on, paying this many guesses before
// growing the sequence by one more match.
const MinGuessesBeforeGrowingSequence = 10000

// Options controls the search beyond the password and its candidate
// matches.
type Options struct {
	// ReferenceYear is "now" for pricing recent_year regex matches and
	// date matches. Inject a fixed value in tests for determinism.
	ReferenceYear int
	// ExcludeAdditive omits the MIN_GUESSES_BEFORE_GROWING_SEQUENCE^(l-1)
	// term from the attacker-work objective, leaving only l! * Π guesses.
	ExcludeAdditive bool
}

// Result is the outcome of MostGuessableMatchSequence: the password, its
// total estimated guesses, and the winning non-overlapping cover.
type Result struct {
	Password     string
	Guesses      float64
	GuessesLog10 float64
	Sequence     []match.Match
}

// entry is one (length, position) cell of the DP table.
type entry struct {
	terminal match.Match
	pi       float64
	g        float64
}

// table holds, for every prefix end index k, the surviving entries indexed
// by length-1. A nil element means that length is not (yet, or ever)
// achievable ending at k.
type table struct {
	rows [][]*entry
}

func newTable(n int) *table {
	return &table{rows: make([][]*entry, n)}
}

func (t *table) get(k, l int) *entry {
	if k < 0 || k >= len(t.rows) || l < 1 || l > len(t.rows[k]) {
		return nil
	}
	return t.rows[k][l-1]
}

func (t *table) set(k, l int, e *entry) {
	row := t.rows[k]
	for len(row) < l {
		row = append(row, nil)
	}
	row[l-1] = e
	t.rows[k] = row
}

// lengths returns the lengths with a surviving entry ending at k, in
// ascending order.
func (t *table) lengths(k int) []int {
	if k < 0 || k >= len(t.rows) {
		return nil
	}
	var out []int
	for i, e := range t.rows[k] {
		if e != nil {
			out = append(out, i+1)
		}
	}
	return out
}

// MostGuessableMatchSequence returns the minimum-attacker-work
// non-overlapping cover of password by matches, synthesizing brute-force
// matches to fill any gap no candidate match explains.
//
// matches is mutated: each surviving match's Guesses/GuessesLog10 (and, for
// dictionary matches, its reporting fields) are filled in by
// estimate.Guesses as a side effect of scoring it.
func MostGuessableMatchSequence(password string, matches []match.Match, opts Options) Result {
	n := len(password)
	if n == 0 {
		return Result{Password: password, Guesses: 1, GuessesLog10: 0}
	}

	byEnd := make([][]match.Match, n)
	for _, m := range matches {
		j := m.Head().J
		byEnd[j] = append(byEnd[j], m)
	}
	for j := range byEnd {
		sort.SliceStable(byEnd[j], func(a, b int) bool {
			return byEnd[j][a].Head().I < byEnd[j][b].Head().I
		})
	}

	t := newTable(n)

	update := func(m match.Match, l int) {
		k := m.Head().J
		var priorPi float64 = 1
		if l > 1 {
			prior := t.get(m.Head().I-1, l-1)
			if prior == nil {
				return
			}
			priorPi = prior.pi
		}
		piNew := estimate.Guesses(m, n, opts.ReferenceYear) * priorPi

		gNew := combinatorics.Factorial(l) * piNew
		if !opts.ExcludeAdditive {
			gNew += math.Pow(MinGuessesBeforeGrowingSequence, float64(l-1))
		}

		for _, lp := range t.lengths(k) {
			if lp > l {
				continue
			}
			if existing := t.get(k, lp); existing != nil && existing.g <= gNew {
				return
			}
		}
		t.set(k, l, &entry{terminal: m, pi: piNew, g: gNew})
	}

	bruteforceUpdate := func(k int) {
		full := match.NewBruteForce(password, 0, k)
		update(full, 1)

		for i := 1; i <= k; i++ {
			bf := match.NewBruteForce(password, i, k)
			for _, l := range t.lengths(i - 1) {
				prior := t.get(i-1, l)
				if prior == nil || prior.terminal.Kind() == match.BruteForce {
					continue
				}
				update(bf, l+1)
			}
		}
	}

	for k := 0; k < n; k++ {
		for _, m := range byEnd[k] {
			i := m.Head().I
			if i > 0 {
				for _, l := range t.lengths(i - 1) {
					update(m, l+1)
				}
			} else {
				update(m, 1)
			}
		}
		bruteforceUpdate(k)
	}

	lengths := t.lengths(n - 1)
	bestL := lengths[0]
	best := t.get(n-1, bestL)
	for _, l := range lengths[1:] {
		if e := t.get(n-1, l); e.g < best.g {
			best, bestL = e, l
		}
	}

	sequence := make([]match.Match, bestL)
	k := n - 1
	l := bestL
	for k >= 0 {
		e := t.get(k, l)
		sequence[l-1] = e.terminal
		k = e.terminal.Head().I - 1
		l--
	}

	return Result{
		Password:     password,
		Guesses:      best.g,
		GuessesLog10: math.Log10(best.g),
		Sequence:     sequence,
	}
}

