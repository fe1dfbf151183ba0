package search

import "testing"

func word(s string) Term   { return Term{Kind: TermWord, Text: s} }
func phrase(s string) Term { return Term{Kind: TermPhrase, Text: s} }

func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseEmpty(t *testing.T) {
	q := Parse("")
	if !q.IsEmpty() {
		t.Error("Parse(\"\") should be empty")
	}
	if q.Logic != LogicOr {
		t.Errorf("Parse(\"\") logic = %v, want LogicOr", q.Logic)
	}

	q = Parse("   \t ")
	if !q.IsEmpty() {
		t.Error("whitespace-only input should parse empty")
	}
}

func TestParseSingleWord(t *testing.T) {
	q := Parse("rust")
	if !termsEqual(q.Terms, []Term{word("rust")}) {
		t.Errorf("terms = %v, want [rust]", q.Terms)
	}
	if q.Logic != LogicOr {
		t.Errorf("logic = %v, want LogicOr", q.Logic)
	}
}

func TestParseMultipleWordsOr(t *testing.T) {
	q := Parse("rust programming")
	if len(q.Terms) != 2 {
		t.Fatalf("terms = %v, want 2", q.Terms)
	}
	if q.Logic != LogicOr {
		t.Errorf("logic = %v, want LogicOr", q.Logic)
	}
}

func TestParseAndLogic(t *testing.T) {
	for _, in := range []string{"rust AND programming", "rust and programming", "rust And programming"} {
		q := Parse(in)
		if !termsEqual(q.Terms, []Term{word("rust"), word("programming")}) {
			t.Errorf("Parse(%q) terms = %v", in, q.Terms)
		}
		if q.Logic != LogicAnd {
			t.Errorf("Parse(%q) logic = %v, want LogicAnd", in, q.Logic)
		}
	}
}

func TestParseOrKeyword(t *testing.T) {
	for _, in := range []string{"rust OR programming", "rust or programming"} {
		q := Parse(in)
		if !termsEqual(q.Terms, []Term{word("rust"), word("programming")}) {
			t.Errorf("Parse(%q) terms = %v", in, q.Terms)
		}
		if q.Logic != LogicOr {
			t.Errorf("Parse(%q) logic = %v, want LogicOr", in, q.Logic)
		}
	}
}

func TestParseQuotedPhrase(t *testing.T) {
	q := Parse(`"web development" rust`)
	if !termsEqual(q.Terms, []Term{phrase("web development"), word("rust")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestParseSingleQuotes(t *testing.T) {
	q := Parse(`'hello world' test`)
	if !termsEqual(q.Terms, []Term{phrase("hello world"), word("test")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestParseComplexQuery(t *testing.T) {
	q := Parse(`"best practices" AND rust performance`)
	if !termsEqual(q.Terms, []Term{phrase("best practices"), word("rust"), word("performance")}) {
		t.Errorf("terms = %v", q.Terms)
	}
	if q.Logic != LogicAnd {
		t.Errorf("logic = %v, want LogicAnd", q.Logic)
	}
}

func TestParseTagSyntax(t *testing.T) {
	q := Parse("#rust programming")
	if !stringsEqual(q.TagFilters, []string{"rust"}) {
		t.Errorf("tag filters = %v, want [rust]", q.TagFilters)
	}
	if !termsEqual(q.Terms, []Term{word("programming")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestParseMultipleTags(t *testing.T) {
	q := Parse("#rust #web development")
	if !stringsEqual(q.TagFilters, []string{"rust", "web"}) {
		t.Errorf("tag filters = %v, want [rust web]", q.TagFilters)
	}
	if !termsEqual(q.Terms, []Term{word("development")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestParseTagsWithQuotesAndAnd(t *testing.T) {
	q := Parse(`#rust AND "web development" #backend`)
	if !stringsEqual(q.TagFilters, []string{"rust", "backend"}) {
		t.Errorf("tag filters = %v", q.TagFilters)
	}
	if !termsEqual(q.Terms, []Term{phrase("web development")}) {
		t.Errorf("terms = %v", q.Terms)
	}
	if q.Logic != LogicAnd {
		t.Errorf("logic = %v, want LogicAnd", q.Logic)
	}
}

func TestParsePartialWordNotTag(t *testing.T) {
	// "web-" is a plain word, not an incomplete tag
	q := Parse("api and web-")
	if !termsEqual(q.Terms, []Term{word("api"), word("web-")}) {
		t.Errorf("terms = %v", q.Terms)
	}
	if q.Logic != LogicAnd {
		t.Errorf("logic = %v, want LogicAnd", q.Logic)
	}
}

func TestParseIncompleteTagDropped(t *testing.T) {
	// a short tag still being typed contributes nothing at all
	q := Parse("#we")
	if len(q.TagFilters) != 0 || len(q.Terms) != 0 {
		t.Errorf("Parse(\"#we\") = %+v, want empty", q)
	}

	// a trailing space commits it
	q = Parse("#web ")
	if !stringsEqual(q.TagFilters, []string{"web"}) {
		t.Errorf("tag filters = %v, want [web]", q.TagFilters)
	}
	if len(q.Terms) != 0 {
		t.Errorf("terms = %v, want none", q.Terms)
	}
}

func TestParseTagCompletionWithSpace(t *testing.T) {
	q := Parse("#rust #web ")
	if !stringsEqual(q.TagFilters, []string{"rust", "web"}) {
		t.Errorf("tag filters = %v", q.TagFilters)
	}
	if len(q.Terms) != 0 {
		t.Errorf("terms = %v, want none", q.Terms)
	}
}

func TestParseMixedCompleteIncompleteTags(t *testing.T) {
	q := Parse("#rust #we")
	if !stringsEqual(q.TagFilters, []string{"rust"}) {
		t.Errorf("tag filters = %v, want [rust]", q.TagFilters)
	}
	if len(q.Terms) != 0 {
		t.Errorf("terms = %v, want none", q.Terms)
	}
}

func TestParseShortTrailingTagAfterContent(t *testing.T) {
	// 3+ chars after other content reads as intentional
	q := Parse("rust #web")
	if !stringsEqual(q.TagFilters, []string{"web"}) {
		t.Errorf("tag filters = %v, want [web]", q.TagFilters)
	}
	// 2 chars after content still looks mid-keystroke
	q = Parse("rust #we")
	if len(q.TagFilters) != 0 {
		t.Errorf("tag filters = %v, want none", q.TagFilters)
	}
}

func TestParseUnterminatedQuote(t *testing.T) {
	q := Parse(`rust "web dev`)
	if !termsEqual(q.Terms, []Term{word("rust"), phrase("web dev")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestParseIsTotal(t *testing.T) {
	// none of these may panic, whatever the shape of the result
	inputs := []string{
		"", `"`, `''`, "#", "##", "# ", `#"`, `"#tag"`,
		"'", `"""`, "héllo wörld", "日本語 検索", "🙂 #🙂🙂",
		"and", "or", " and ", "AND OR and",
	}
	for _, in := range inputs {
		_ = Parse(in)
	}
}

func TestParseDropsConnectiveWords(t *testing.T) {
	q := Parse("and")
	if len(q.Terms) != 0 {
		t.Errorf("lone connective should not become a term, got %v", q.Terms)
	}
	q = Parse("rust and or programming")
	if !termsEqual(q.Terms, []Term{word("rust"), word("programming")}) {
		t.Errorf("terms = %v", q.Terms)
	}
}

func TestAddTagFilter(t *testing.T) {
	q := Parse("rust")
	q.AddTagFilter("  Web-Dev ")
	if !stringsEqual(q.TagFilters, []string{"Web-Dev"}) {
		t.Errorf("tag filters = %v", q.TagFilters)
	}
	q.AddTagFilter("   ")
	if len(q.TagFilters) != 1 {
		t.Errorf("blank filter should be ignored, got %v", q.TagFilters)
	}
	// duplicates are allowed
	q.AddTagFilter("Web-Dev")
	if len(q.TagFilters) != 2 {
		t.Errorf("duplicate filter should be kept, got %v", q.TagFilters)
	}
}
