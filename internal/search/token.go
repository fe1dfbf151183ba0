package search

import "strings"

type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenPhrase
	TokenTag
)

// Token is the intermediate unit produced by the lexer before
// query assembly.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits a raw query string into words, quoted phrases and
// #tag tokens. It never fails; malformed input degrades rather than
// erroring (an unterminated quote is flushed as a phrase, an
// incomplete trailing tag is dropped).
func Tokenize(input string) []Token {
	var tokens []Token
	var buf strings.Builder
	inQuotes := false
	var quoteChar rune
	isTag := false

	flush := func(kind TokenKind) {
		if buf.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: kind, Text: strings.TrimSpace(buf.String())})
		buf.Reset()
	}

	for _, ch := range input {
		switch {
		case (ch == '"' || ch == '\'') && !inQuotes:
			// opening quote commits whatever was being built
			if isTag {
				flush(TokenTag)
			} else {
				flush(TokenWord)
			}
			isTag = false
			inQuotes = true
			quoteChar = ch
		case (ch == '"' || ch == '\'') && inQuotes && ch == quoteChar:
			flush(TokenPhrase)
			inQuotes = false
			quoteChar = 0
		case ch == '#' && !inQuotes && buf.Len() == 0:
			// the # itself is not stored
			isTag = true
		case (ch == ' ' || ch == '\t' || ch == '\n') && !inQuotes:
			if isTag {
				flush(TokenTag)
			} else {
				flush(TokenWord)
			}
			isTag = false
		default:
			buf.WriteRune(ch)
		}
	}

	switch {
	case buf.Len() == 0:
	case inQuotes:
		// unterminated quote, keep the remainder as a phrase
		flush(TokenPhrase)
	case isTag:
		// a tag still being typed must not commit as a filter,
		// and it is not a word either
		if isTagComplete(buf.String(), input) {
			flush(TokenTag)
		}
	default:
		flush(TokenWord)
	}

	return tokens
}

// isTagComplete decides whether a tag fragment sitting at the end of
// the input was intentionally finished or is mid-keystroke.
func isTagComplete(fragment, fullInput string) bool {
	if len(fragment) < 2 {
		return false
	}

	// trailing whitespace means the tag was already terminated
	if strings.TrimRight(fullInput, " \t\n") != fullInput {
		return true
	}

	// with other content before the tag, a 3+ char fragment reads as
	// intentional; a lone tag with no cursor disambiguation does not
	if pos := strings.LastIndex(fullInput, "#"); pos >= 0 {
		if strings.TrimSpace(fullInput[:pos]) != "" {
			return len(fragment) >= 3
		}
	}

	return false
}
