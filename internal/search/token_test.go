package search

import "testing"

func TestTokenizeBasic(t *testing.T) {
	tests := []struct {
		in   string
		want []Token
	}{
		{"rust", []Token{{TokenWord, "rust"}}},
		{"rust programming", []Token{{TokenWord, "rust"}, {TokenWord, "programming"}}},
		{`"web dev"`, []Token{{TokenPhrase, "web dev"}}},
		{`'web dev'`, []Token{{TokenPhrase, "web dev"}}},
		{"#rust ", []Token{{TokenTag, "rust"}}},
		{"#rust more", []Token{{TokenTag, "rust"}, {TokenWord, "more"}}},
		{"a\tb\nc", []Token{{TokenWord, "a"}, {TokenWord, "b"}, {TokenWord, "c"}}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTokenizeQuoteFlushesPendingWord(t *testing.T) {
	got := Tokenize(`rust"web dev"`)
	want := []Token{{TokenWord, "rust"}, {TokenPhrase, "web dev"}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeQuoteFlushesPendingTag(t *testing.T) {
	// the tag is committed by the opening quote, no heuristic involved
	got := Tokenize(`#go"web dev"`)
	want := []Token{{TokenTag, "go"}, {TokenPhrase, "web dev"}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTokenizeMismatchedQuoteInsidePhrase(t *testing.T) {
	got := Tokenize(`"it's fine"`)
	if len(got) != 1 || got[0] != (Token{TokenPhrase, "it's fine"}) {
		t.Errorf("got %v", got)
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	got := Tokenize(`"half open`)
	if len(got) != 1 || got[0] != (Token{TokenPhrase, "half open"}) {
		t.Errorf("got %v", got)
	}
}

func TestTokenizeHashMidWord(t *testing.T) {
	// # only starts a tag on an empty buffer; mid-word it is literal
	got := Tokenize("c#")
	if len(got) != 1 || got[0] != (Token{TokenWord, "c#"}) {
		t.Errorf("got %v", got)
	}
}

func TestTokenizeEmptyTag(t *testing.T) {
	if got := Tokenize("# "); len(got) != 0 {
		t.Errorf("bare # should produce nothing, got %v", got)
	}
	if got := Tokenize("#"); len(got) != 0 {
		t.Errorf("bare # should produce nothing, got %v", got)
	}
}

func TestIsTagComplete(t *testing.T) {
	tests := []struct {
		fragment string
		input    string
		want     bool
	}{
		{"w", "#w", false},                 // too short
		{"we", "#we", false},               // lone tag, no terminator
		{"web", "#web", false},             // lone tag, still typing
		{"web", "#web ", true},             // terminated by space
		{"we", "#we ", true},               // short but terminated
		{"we", "rust #we", false},          // 2 chars after content
		{"web", "rust #web", true},         // 3 chars after content
		{"testing", "rust #testing", true}, // long tag after content
	}
	for _, tt := range tests {
		if got := isTagComplete(tt.fragment, tt.input); got != tt.want {
			t.Errorf("isTagComplete(%q, %q) = %v, want %v", tt.fragment, tt.input, got, tt.want)
		}
	}
}
