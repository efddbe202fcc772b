package taglist

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "chess", want: "chess"},
		{name: "collapse punctuation", in: "a!!b", want: "a-b"},
		{name: "inner space", in: "rock climbing", want: "rock-climbing"},
		{name: "surrounding space", in: "  hiking  ", want: "hiking"},
		{name: "hyphen run", in: "sci--fi", want: "sci-fi"},
		{name: "mixed run", in: "d&d - 5e", want: "d-d-5e"},
		{name: "leading junk", in: "#music", want: "music"},
		{name: "leading hyphen", in: "-a", want: "a"},
		{name: "trailing hyphen", in: "a-", want: "a"},
		{name: "trailing junk", in: "c++", want: "c"},
		{name: "underscore kept", in: "snake_case", want: "snake_case"},
		{name: "case kept", in: "Go Lang", want: "Go-Lang"},
		{name: "only junk", in: " !? - ", want: ""},
		{name: "empty", in: "", want: ""},
		{name: "non ascii letters", in: "café crème", want: "caf-cr-me"},
		{name: "tabs", in: "board\tgames", want: "board-games"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_IdempotentAndAlphabet(t *testing.T) {
	allowed := regexp.MustCompile(`^[A-Za-z0-9_ -]*$`)
	inputs := []string{
		"", " ", "-", "--a--", "a!!b", "  x y  z ", "🙂 emoji", "100%", "e-mail",
		"under_score", "a - - b", "\n\tnewline\n", "ÅNGSTRÖM", "(parens)", "a,b",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
		if !allowed.MatchString(once) {
			t.Errorf("Normalize(%q) = %q contains disallowed characters", in, once)
		}
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "red,blue,green,", want: []string{"red", "blue", "green"}},
		{in: ",,,", want: nil},
		{in: "one", want: []string{"one"}},
		{in: " a b , !! ,c", want: []string{"a-b", "c"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Split(tt.in)); diff != "" {
			t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}
