package dictionary

import (
	"testing"

	"github.com/corezx/zxcguess/match"
)

func TestFindLocatesWord(t *testing.T) {
	list, err := New([]string{"password", "letmein", "horse"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	matches := list.Find("myhorsepassword")
	var found []string
	for _, m := range matches {
		found = append(found, m.Head().Token)
	}

	wantAny := map[string]bool{"horse": false, "password": false}
	for _, tok := range found {
		if _, ok := wantAny[tok]; ok {
			wantAny[tok] = true
		}
	}
	for word, ok := range wantAny {
		if !ok {
			t.Errorf("Find() did not locate %q in matches %v", word, found)
		}
	}
}

func TestFindRankOrdersByListPosition(t *testing.T) {
	list, err := New([]string{"password", "letmein"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	matches := list.Find("password")
	if len(matches) != 1 {
		t.Fatalf("Find() returned %d matches, want 1", len(matches))
	}
	dm, ok := matches[0].(*match.DictionaryMatch)
	if !ok {
		t.Fatalf("match type = %T, want *match.DictionaryMatch", matches[0])
	}
	if dm.Rank != 1 {
		t.Errorf("Rank = %d, want 1", dm.Rank)
	}
}

func TestFindNoMatch(t *testing.T) {
	list, err := New([]string{"password"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if matches := list.Find("qzjxk"); len(matches) != 0 {
		t.Errorf("Find() = %v, want no matches", matches)
	}
}

func TestMatchesValidateAgainstSourcePassword(t *testing.T) {
	list, err := New([]string{"horse"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	password := "myhorsepower"
	for _, m := range list.Find(password) {
		if err := match.Validate(m, password); err != nil {
			t.Errorf("Validate() = %v for match %+v", err, m.Head())
		}
	}
}
