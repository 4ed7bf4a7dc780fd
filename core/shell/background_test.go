package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimBackground(t *testing.T) {
	cases := map[string]struct {
		line       string
		want       string
		background bool
	}{
		"with-marker":      {"sleep 5 &", "sleep 5 ", true},
		"no-space-marker":  {"sleep 5&", "sleep 5", true},
		"without-marker":   {"sleep 5", "sleep 5", false},
		"empty":            {"", "", false},
		"marker-only":      {"&", "", true},
		"marker-in-middle": {"a&b", "a&b", false},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, background := TrimBackground(tc.line)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.background, background)
		})
	}
}

// The marker is stripped before tokenization, so it never shows up as a
// token or in child argv.
func TestTrimBackgroundThenTokenize(t *testing.T) {
	line, background := TrimBackground("sleep 5 &")
	assert.True(t, background)
	assert.Equal(t, []string{"sleep", "5"}, Tokenize(line))

	line, background = TrimBackground("sleep 5")
	assert.False(t, background)
	assert.Equal(t, []string{"sleep", "5"}, Tokenize(line))
}
