package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeWords(t *testing.T) {
	assert.Equal(t, []string{"echo", "hello", "world"}, Tokenize("echo  hello   world"))
}

func TestTokenizeSingleQuotes(t *testing.T) {
	assert.Equal(t, []string{"echo", "a b c"}, Tokenize("echo 'a b c'"))
}

func TestTokenizeDoubleQuoteEscapes(t *testing.T) {
	assert.Equal(t, []string{`say "hi"`}, Tokenize(`"say \"hi\""`))
}

func TestTokenizeDoubleQuoteBackslashKeptBeforeNonSpecialChar(t *testing.T) {
	// $ and ` have no special meaning here (no variable expansion or
	// command substitution), so the backslash in front of them survives.
	assert.Equal(t, []string{`\$`}, Tokenize(`"\$"`))
	assert.Equal(t, []string{"\\`"}, Tokenize("\"\\`\""))
}

func TestTokenizeAdjacentQuotesConcatenate(t *testing.T) {
	assert.Equal(t, []string{"foobar"}, Tokenize("'foo''bar'"))
}

func TestTokenizeUnterminatedQuoteNeverFails(t *testing.T) {
	// The last "'" reopens a quote that is never closed; per the
	// tokenizer's total-function contract, end of input closes it
	// implicitly instead of failing, swallowing the space along the way.
	assert.Equal(t, []string{"it's fine"}, Tokenize(`'it'\''s fine`))
}

func TestTokenizeTrailingBackslash(t *testing.T) {
	assert.Equal(t, []string{`foo\`}, Tokenize(`foo\`))
}

func TestTokenizeOperatorsAreOrdinaryCharactersWhenGlued(t *testing.T) {
	assert.Equal(t, []string{"a|b"}, Tokenize("a|b"))
	assert.Equal(t, []string{"a", "|", "b"}, Tokenize("a | b"))
}

func TestTokenizeEmptyLine(t *testing.T) {
	assert.Equal(t, []string{}, Tokenize(""))
}
