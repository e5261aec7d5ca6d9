// Package graph supplies the keyboard adjacency tables the spatial guess
// estimator needs: for each key, the list of keys physically adjacent to it.
//
// Loading these tables from persistent storage is explicitly out of scope
// for the guess-estimation core (see the module's design notes); this
// package instead ships a small, in-memory default for qwerty, dvorak, and
// a numeric keypad, built the same way the reference zxcvbn tooling derives
// them: lay the keyboard out as rows of keys, then connect each key to its
// immediate neighbors by grid position.
package graph

import "github.com/corezx/zxcguess/combinatorics"

// AdjacencyGraph maps a key to its neighbor list. A nil entry in the list
// marks a direction with no neighbor (e.g. a key on the keyboard's edge).
// This is the same shape combinatorics.Graph expects.
type AdjacencyGraph = combinatorics.Graph

// Name identifies one of the built-in adjacency graphs.
type Name string

// The graph names the estimator recognizes.
const (
	QWERTYName Name = "qwerty"
	DvorakName Name = "dvorak"
	KeypadName Name = "keypad"
)

// row is one horizontal line of keys on a slanted (typewriter-style)
// keyboard. Each element holds the unshifted and shifted character sharing
// that physical key ("" when the key has no shifted variant, e.g. letters
// reuse the same rune capitalized by the producer rather than by this
// table).
type row []keyPair

type keyPair struct {
	unshifted string
	shifted   string
}

// slantedPosition is a key's column position in half-key units, used to
// find diagonal neighbors on a keyboard where each row is offset from the
// one above it (the physical slant of a typewriter-style keyboard).
type slantedPosition struct {
	row, halfCol int
}

// buildSlanted constructs an adjacency graph for a typewriter-slanted
// keyboard. rowOffsets[i] gives row i's horizontal offset, in half-key
// units, relative to row 0. Consecutive rows must differ by an odd number
// of half-keys for the diagonal neighbor directions to line up correctly,
// matching the real physical stagger of a typewriter-style keyboard.
func buildSlanted(rows []row, rowOffsets []int) AdjacencyGraph {
	// Map every key's physical position, in half-key units, to its pair of
	// characters.
	type placed struct {
		pos  slantedPosition
		pair keyPair
	}
	var placedKeys []placed
	for r, line := range rows {
		col := rowOffsets[r]
		for _, pair := range line {
			placedKeys = append(placedKeys, placed{slantedPosition{r, col}, pair})
			col += 2
		}
	}

	posIndex := make(map[slantedPosition]keyPair, len(placedKeys))
	for _, p := range placedKeys {
		posIndex[p.pos] = p.pair
	}

	// Six neighbor directions on a slanted keyboard: same row left/right,
	// and up-left/up-right/down-left/down-right one half-key off.
	directions := []slantedPosition{
		{0, -2}, {0, 2},
		{-1, -1}, {-1, 1},
		{1, -1}, {1, 1},
	}

	g := make(AdjacencyGraph, len(placedKeys)*2)
	for _, p := range placedKeys {
		neighbors := make(combinatorics.Neighbors, len(directions))
		for i, d := range directions {
			np := slantedPosition{p.pos.row + d.row, p.pos.halfCol + d.halfCol}
			if np2, ok := posIndex[np]; ok {
				u := np2.unshifted
				neighbors[i] = &u
			}
		}
		u := p.pair.unshifted
		g[u] = neighbors
		if p.pair.shifted != "" {
			s := p.pair.shifted
			g[s] = neighbors
		}
	}
	return g
}

// buildGrid constructs an adjacency graph for an aligned grid keyboard (a
// numeric keypad), where every row starts at the same column and neighbors
// are the four orthogonally adjacent keys (up, down, left, right); diagonal
// keys are not neighbors.
func buildGrid(rows []row) AdjacencyGraph {
	type placed struct {
		r, c int
		pair keyPair
	}
	var placedKeys []placed
	for r, line := range rows {
		for c, pair := range line {
			placedKeys = append(placedKeys, placed{r, c, pair})
		}
	}
	type pos struct{ r, c int }
	posIndex := make(map[pos]keyPair, len(placedKeys))
	for _, p := range placedKeys {
		posIndex[pos{p.r, p.c}] = p.pair
	}

	directions := []pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

	g := make(AdjacencyGraph, len(placedKeys))
	for _, p := range placedKeys {
		neighbors := make(combinatorics.Neighbors, len(directions))
		for i, d := range directions {
			np := pos{p.r + d.r, p.c + d.c}
			if np2, ok := posIndex[pos{np.r, np.c}]; ok {
				u := np2.unshifted
				neighbors[i] = &u
			}
		}
		g[p.pair.unshifted] = neighbors
	}
	return g
}

func kp(unshifted, shifted string) keyPair { return keyPair{unshifted, shifted} }
func u(ch string) keyPair                  { return keyPair{unshifted: ch} }

// QWERTY is the default US qwerty keyboard adjacency graph.
var QWERTY = buildSlanted([]row{
	{kp("`", "~"), kp("1", "!"), kp("2", "@"), kp("3", "#"), kp("4", "$"), kp("5", "%"), kp("6", "^"), kp("7", "&"), kp("8", "*"), kp("9", "("), kp("0", ")"), kp("-", "_"), kp("=", "+")},
	{u("q"), u("w"), u("e"), u("r"), u("t"), u("y"), u("u"), u("i"), u("o"), u("p"), kp("[", "{"), kp("]", "}"), kp("\\", "|")},
	{u("a"), u("s"), u("d"), u("f"), u("g"), u("h"), u("j"), u("k"), u("l"), kp(";", ":"), kp("'", "\"")},
	{u("z"), u("x"), u("c"), u("v"), u("b"), u("n"), u("m"), kp(",", "<"), kp(".", ">"), kp("/", "?")},
}, []int{0, 1, 2, 3})

// Dvorak is the default dvorak keyboard adjacency graph.
var Dvorak = buildSlanted([]row{
	{kp("`", "~"), kp("1", "!"), kp("2", "@"), kp("3", "#"), kp("4", "$"), kp("5", "%"), kp("6", "^"), kp("7", "&"), kp("8", "*"), kp("9", "("), kp("0", ")"), kp("[", "{"), kp("]", "}")},
	{kp("'", "\""), kp(",", "<"), kp(".", ">"), u("p"), u("y"), u("f"), u("g"), u("c"), u("r"), u("l"), kp("/", "?"), kp("=", "+"), kp("\\", "|")},
	{u("a"), u("o"), u("e"), u("u"), u("i"), u("d"), u("h"), u("t"), u("n"), u("s"), kp("-", "_")},
	{kp(";", ":"), u("q"), u("j"), u("k"), u("x"), u("b"), u("m"), u("w"), u("v"), u("z")},
}, []int{0, 1, 2, 3})

// Keypad is the default numeric-keypad adjacency graph, laid out as an
// aligned 4-column grid.
var Keypad = buildGrid([]row{
	{u("/"), u("*"), u("-")},
	{u("7"), u("8"), u("9"), u("+")},
	{u("4"), u("5"), u("6")},
	{u("1"), u("2"), u("3")},
	{u("0"), u(".")},
})

// Table maps a graph name to its adjacency graph, the shape a spatial
// producer or the estimator looks a named graph up from.
var Table = map[Name]AdjacencyGraph{
	QWERTYName: QWERTY,
	DvorakName: Dvorak,
	KeypadName: Keypad,
}

// Lookup returns the named graph and whether it is known.
func Lookup(name string) (AdjacencyGraph, bool) {
	g, ok := Table[Name(name)]
	return g, ok
}
