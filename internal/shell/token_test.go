package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.Text)
	}
	return b.String()
}

func TestTokenizeSimpleCommand(t *testing.T) {
	tokens := Tokenize("git status")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: "git", Type: TokenCommand}, tokens[0])
	assert.Equal(t, TokenWhitespace, tokens[1].Type)
	assert.Equal(t, Token{Text: "status", Type: TokenText}, tokens[2])
}

func TestTokenizeFlags(t *testing.T) {
	tokens := Tokenize("ls -la --color")
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenCommand, tokens[0].Type)
	assert.Equal(t, Token{Text: "-la", Type: TokenFlag}, tokens[2])
	assert.Equal(t, Token{Text: "--color", Type: TokenFlag}, tokens[4])
}

func TestTokenizePath(t *testing.T) {
	tokens := Tokenize("cd ~/projects")
	require.Len(t, tokens, 3)
	assert.Equal(t, TokenCommand, tokens[0].Type)
	assert.Equal(t, Token{Text: "~/projects", Type: TokenPath}, tokens[2])
}

func TestTokenizeString(t *testing.T) {
	tokens := Tokenize(`echo "hello world"`)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: `"hello world"`, Type: TokenString}, tokens[2])
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens := Tokenize(`echo "oops`)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: `"oops`, Type: TokenString}, tokens[2])
}

func TestTokenizeNumber(t *testing.T) {
	tokens := Tokenize("sleep 5")
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Text: "5", Type: TokenNumber}, tokens[2])

	tokens = Tokenize("nice -19 cmd")
	assert.Equal(t, Token{Text: "-19", Type: TokenNumber}, tokens[2])
}

func TestTokenizePipeResetsCommand(t *testing.T) {
	tokens := Tokenize("ls | grep foo")
	require.Len(t, tokens, 7)
	assert.Equal(t, Token{Text: "|", Type: TokenOperator}, tokens[2])
	assert.Equal(t, Token{Text: "grep", Type: TokenCommand}, tokens[4])
	assert.Equal(t, Token{Text: "foo", Type: TokenText}, tokens[6])
}

func TestTokenizeAndChain(t *testing.T) {
	tokens := Tokenize("make && make install")
	assert.Equal(t, Token{Text: "&&", Type: TokenOperator}, tokens[2])
	assert.Equal(t, TokenCommand, tokens[4].Type)
}

func TestTokenizeRedirectDoesNotExpectCommand(t *testing.T) {
	tokens := Tokenize("echo test > file.txt")
	var redirect, file Token
	for _, tok := range tokens {
		switch tok.Text {
		case ">":
			redirect = tok
		case "file.txt":
			file = tok
		}
	}
	assert.Equal(t, TokenOperator, redirect.Type)
	// Redirects take a file argument, not a command.
	assert.Equal(t, TokenText, file.Type)
}

func TestTokenizeAppendBeforeSingle(t *testing.T) {
	tokens := Tokenize("cmd >> out")
	assert.Equal(t, Token{Text: ">>", Type: TokenOperator}, tokens[2])
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
}

func TestTokenizeRoundTrip(t *testing.T) {
	lines := []string{
		"git status",
		"  ls   -la\t--color ",
		`git commit -m "test message" --amend`,
		"echo 'unterminated",
		"a|b||c&&d;e>f>>g<h",
		"cd ~/projects && ./run.sh 3.14 -2",
		"über --naïve 世界/path",
		"",
		"   ",
	}
	for _, line := range lines {
		assert.Equal(t, line, joinTokens(Tokenize(line)), "round-trip of %q", line)
	}
}
