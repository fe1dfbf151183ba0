// Package search parses free-text bookmark queries: space-separated
// terms OR-ed by default, an explicit "and"/"AND" switches to AND,
// quoted strings form exact phrases and #tag tokens become tag
// filters.
package search

import "strings"

type Logic int

const (
	LogicOr Logic = iota
	LogicAnd
)

type TermKind int

const (
	TermWord TermKind = iota
	TermPhrase
)

// Term is one unit of free-text input. Words match as wildcard
// substrings; phrases match literally, with pattern metacharacters
// taken as typed.
type Term struct {
	Kind TermKind
	Text string
}

func (t Term) String() string {
	if t.Kind == TermPhrase {
		return `"` + t.Text + `"`
	}
	return t.Text
}

// Query is the parsed form of a raw search string. Terms keep input
// order for display; order never affects matching. TagFilters are
// always AND-ed against each other, each matched by case-insensitive
// substring containment, regardless of Logic.
type Query struct {
	Terms      []Term
	TagFilters []string
	Logic      Logic
}

// Parse builds a Query from raw input. It is total: any string,
// including empty, lone quotes, a bare # or arbitrary Unicode,
// produces a valid query.
func Parse(input string) Query {
	q := Query{Logic: LogicOr}

	if strings.TrimSpace(input) == "" {
		return q
	}

	if strings.Contains(strings.ToLower(input), " and ") {
		q.Logic = LogicAnd
	}

	// tokenize the original input so terms keep their casing
	for _, tok := range Tokenize(input) {
		switch tok.Kind {
		case TokenWord:
			lower := strings.ToLower(tok.Text)
			if lower == "and" || lower == "or" {
				continue // connective keyword, not a term
			}
			q.Terms = append(q.Terms, Term{Kind: TermWord, Text: tok.Text})
		case TokenPhrase:
			q.Terms = append(q.Terms, Term{Kind: TermPhrase, Text: tok.Text})
		case TokenTag:
			q.TagFilters = append(q.TagFilters, tok.Text)
		}
	}

	return q
}

// AddTagFilter appends an already-finalized tag string, e.g. one
// selected from the tag list rather than typed. It bypasses the
// tokenizer and its completeness heuristic.
func (q *Query) AddTagFilter(tag string) {
	tag = strings.TrimSpace(tag)
	if tag != "" {
		q.TagFilters = append(q.TagFilters, tag)
	}
}

// IsEmpty reports whether the query constrains nothing.
func (q Query) IsEmpty() bool {
	return len(q.Terms) == 0 && len(q.TagFilters) == 0
}
