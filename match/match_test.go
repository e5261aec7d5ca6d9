package match

import "testing"

func TestValidateSpanBounds(t *testing.T) {
	password := "hello"
	m := &DictionaryMatch{Header: Header{I: 0, J: 10, Token: "hello"}, Rank: 1}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for out-of-bounds span")
	}
}

func TestValidateTokenMismatch(t *testing.T) {
	password := "hello"
	m := &DictionaryMatch{Header: Header{I: 0, J: 4, Token: "world"}, Rank: 1}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for token mismatch")
	}
}

func TestValidateDictionaryRank(t *testing.T) {
	password := "hello"
	m := &DictionaryMatch{Header: Header{I: 0, J: 4, Token: "hello"}, Rank: 0}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for non-positive rank")
	}
}

func TestValidateDictionaryL33tNeedsSub(t *testing.T) {
	password := "p4ss"
	m := &DictionaryMatch{Header: Header{I: 0, J: 3, Token: "p4ss"}, Rank: 1, L33t: true}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for l33t without a substitution map")
	}
}

func TestValidateSpatialRequiresTurns(t *testing.T) {
	password := "qwer"
	m := &SpatialMatch{Header: Header{I: 0, J: 3, Token: "qwer"}, Graph: "qwerty", Turns: 0}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for turns < 1")
	}
}

func TestValidateRegexUnknownName(t *testing.T) {
	password := "2000"
	m := &RegexMatch{Header: Header{I: 0, J: 3, Token: "2000"}, RegexName: "not_a_real_name"}
	if err := Validate(m, password); err == nil {
		t.Error("Validate() = nil, want error for unknown regex_name")
	}
}

func TestValidateAccepts(t *testing.T) {
	password := "zxcvbn"
	m := &DictionaryMatch{Header: Header{I: 0, J: 5, Token: "zxcvbn"}, Rank: 1}
	if err := Validate(m, password); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestNewBruteForce(t *testing.T) {
	m := NewBruteForce("password", 2, 4)
	if m.Token != "ssw" {
		t.Errorf("Token = %q, want %q", m.Token, "ssw")
	}
	if m.Kind() != BruteForce {
		t.Errorf("Kind() = %v, want BruteForce", m.Kind())
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		BruteForce: "bruteforce",
		Dictionary: "dictionary",
		Spatial:    "spatial",
		Repeat:     "repeat",
		Sequence:   "sequence",
		Regex:      "regex",
		Date:       "date",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
