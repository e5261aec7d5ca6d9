package graph

import "testing"

func TestQWERTYNeighbors(t *testing.T) {
	neighbors, ok := QWERTY["g"]
	if !ok {
		t.Fatal(`QWERTY["g"] missing`)
	}
	var got []string
	for _, n := range neighbors {
		if n != nil {
			got = append(got, *n)
		}
	}
	if len(got) == 0 {
		t.Error(`QWERTY["g"] has no neighbors, want several`)
	}
	// 'g' sits in the home row between 'f' and 'h'.
	foundF, foundH := false, false
	for _, c := range got {
		if c == "f" {
			foundF = true
		}
		if c == "h" {
			foundH = true
		}
	}
	if !foundF || !foundH {
		t.Errorf(`QWERTY["g"] neighbors = %v, want to include "f" and "h"`, got)
	}
}

func TestShiftedKeyShareNeighbors(t *testing.T) {
	unshifted, ok := QWERTY["1"]
	if !ok {
		t.Fatal(`QWERTY["1"] missing`)
	}
	shifted, ok := QWERTY["!"]
	if !ok {
		t.Fatal(`QWERTY["!"] missing`)
	}
	if len(shifted) != len(unshifted) {
		t.Fatalf(`QWERTY["!"] has %d neighbor slots, QWERTY["1"] has %d`, len(shifted), len(unshifted))
	}
	for i := range unshifted {
		a, b := unshifted[i], shifted[i]
		if (a == nil) != (b == nil) || (a != nil && *a != *b) {
			t.Errorf(`neighbor %d differs between QWERTY["1"] and QWERTY["!"]`, i)
		}
	}
}

func TestKeypadGrid(t *testing.T) {
	neighbors, ok := Keypad["5"]
	if !ok {
		t.Fatal(`Keypad["5"] missing`)
	}
	count := 0
	for _, n := range neighbors {
		if n != nil {
			count++
		}
	}
	if count == 0 {
		t.Error(`Keypad["5"] has no neighbors, want several`)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("qwerty"); !ok {
		t.Error(`Lookup("qwerty") not found`)
	}
	if _, ok := Lookup("nonexistent"); ok {
		t.Error(`Lookup("nonexistent") unexpectedly found`)
	}
}
