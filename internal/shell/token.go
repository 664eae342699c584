// Package shell lexes and classifies the command line and runs it
// through the system shell.
package shell

import (
	"strings"
	"unicode"
)

// TokenType identifies the syntactic role of a token for highlighting.
type TokenType int

const (
	// TokenCommand is the command name (first word, or the word after a
	// pipe, `&&`, `||` or `;`).
	TokenCommand TokenType = iota
	// TokenFlag is an option like -v or --color.
	TokenFlag
	// TokenPath is a word containing a path separator.
	TokenPath
	// TokenString is a quoted run, including the quotes.
	TokenString
	// TokenNumber is a numeric literal, optionally negative.
	TokenNumber
	// TokenOperator is one of |, ||, &, &&, >, >>, <, ;.
	TokenOperator
	// TokenWhitespace is a run of whitespace.
	TokenWhitespace
	// TokenText is any other word.
	TokenText
)

// Token is one span of the input line. Concatenating the Text of all
// tokens in order reproduces the input exactly.
type Token struct {
	Text string
	Type TokenType
}

// Tokenize splits a command line into typed spans with a single
// left-to-right scan. The expect-command flag starts set and travels
// through the scan: operators other than redirects set it, redirects
// clear it, and any word or string clears it.
func Tokenize(line string) []Token {
	var tokens []Token
	runes := []rune(line)
	expectCommand := true

	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			j := i
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			tokens = append(tokens, Token{Text: string(runes[i:j]), Type: TokenWhitespace})
			i = j
			continue
		}

		if op, n := scanOperator(runes[i:]); n > 0 {
			tokens = append(tokens, Token{Text: op, Type: TokenOperator})
			expectCommand = !isRedirect(op)
			i += n
			continue
		}

		if runes[i] == '"' || runes[i] == '\'' {
			quote := runes[i]
			j := i + 1
			for j < len(runes) {
				j++
				if runes[j-1] == quote {
					break
				}
			}
			tokens = append(tokens, Token{Text: string(runes[i:j]), Type: TokenString})
			expectCommand = false
			i = j
			continue
		}

		j := i
		for j < len(runes) && !isWordBoundary(runes[j]) {
			j++
		}
		word := string(runes[i:j])
		tokens = append(tokens, Token{Text: word, Type: classifyWord(word, expectCommand)})
		expectCommand = false
		i = j
	}

	return tokens
}

// scanOperator returns the operator at the head of rs and how many runes
// it consumed, or ("", 0). Two-rune operators win over their one-rune
// prefixes.
func scanOperator(rs []rune) (string, int) {
	switch rs[0] {
	case '|':
		if len(rs) > 1 && rs[1] == '|' {
			return "||", 2
		}
		return "|", 1
	case '&':
		if len(rs) > 1 && rs[1] == '&' {
			return "&&", 2
		}
		return "&", 1
	case '>':
		if len(rs) > 1 && rs[1] == '>' {
			return ">>", 2
		}
		return ">", 1
	case '<':
		return "<", 1
	case ';':
		return ";", 1
	}
	return "", 0
}

func isRedirect(op string) bool {
	return op == ">" || op == ">>" || op == "<"
}

func isWordBoundary(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '|', '&', '>', '<', ';', '"', '\'':
		return true
	}
	return false
}

func classifyWord(word string, expectCommand bool) TokenType {
	switch {
	case strings.HasPrefix(word, "--"):
		return TokenFlag
	case strings.HasPrefix(word, "-") && len(word) > 1:
		if isNumeric(word[1:]) {
			return TokenNumber
		}
		return TokenFlag
	case strings.Contains(word, "/"), strings.HasPrefix(word, "./"), strings.HasPrefix(word, "~/"):
		return TokenPath
	case isNumeric(word):
		return TokenNumber
	case expectCommand:
		return TokenCommand
	}
	return TokenText
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}
