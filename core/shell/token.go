package shell

import "strings"

// tokenDelimiters are the characters that separate words, the classic sh
// word-splitting set including the bell character.
const tokenDelimiters = " \t\r\n\a"

// tokenListSize is the initial token list capacity; like the line buffer it
// doubles on overflow.
const tokenListSize = 16

// Tokenize splits line on runs of delimiter characters into non-empty
// tokens, order preserved. A delimiter-only line yields no tokens; leading
// and trailing delimiters produce no empty tokens.
func Tokenize(line string) []string {
	tokens := make([]string, 0, tokenListSize)

	start := -1
	for i := 0; i < len(line); i++ {
		if strings.IndexByte(tokenDelimiters, line[i]) >= 0 {
			if start >= 0 {
				tokens = appendToken(tokens, line[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, line[start:])
	}

	return tokens
}

func appendToken(tokens []string, token string) []string {
	if len(tokens) == cap(tokens) {
		grown := make([]string, len(tokens), 2*cap(tokens))
		copy(grown, tokens)
		tokens = grown
	}
	return append(tokens, token)
}
