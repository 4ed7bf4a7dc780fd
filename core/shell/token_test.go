package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := map[string]struct {
		line string
		want []string
	}{
		"simple":             {"ls -la", []string{"ls", "-la"}},
		"surrounding-space":  {"  ls   -la  ", []string{"ls", "-la"}},
		"tabs-and-cr":        {"\tgrep\r-v \t foo\t", []string{"grep", "-v", "foo"}},
		"bell-delimiter":     {"echo\ahi", []string{"echo", "hi"}},
		"empty":              {"", nil},
		"delimiters-only":    {" \t\r\n\a \t", nil},
		"single":             {"pwd", []string{"pwd"}},
		"collapsed-interior": {"a      b", []string{"a", "b"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got := Tokenize(tc.line)
			if len(tc.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTokenizeNeverEmitsEmptyTokens(t *testing.T) {
	for _, got := range Tokenize("  a  \t b \r\n c  ") {
		assert.NotEmpty(t, got)
	}
}

func TestTokenizeGrowth(t *testing.T) {
	// Token lists past the initial capacity stay ordered and complete.
	count := 5*tokenListSize + 3
	line := strings.TrimSpace(strings.Repeat("tok ", count))

	got := Tokenize(line)
	assert.Len(t, got, count)
	for _, tok := range got {
		assert.Equal(t, "tok", tok)
	}
}
