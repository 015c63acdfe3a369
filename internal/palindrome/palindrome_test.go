package palindrome

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var predicateCases = []struct {
	input string
	want  bool
}{
	{"", true},
	{"a", true},
	{"aa", true},
	{"ab", false},
	{"aab", true},
	{"tactcoa", true},
	{"racecar", true},
	{"abcabc", true},
	{"abcabcd", true},
	{"abcabcde", false},
	{strings.Repeat("a", 300), true},
	{"\x00\xff\x00\xff\x80", true},
	{"\x00\xff\x80\x7f", false},
}

func TestCandidatesAgree(t *testing.T) {
	for _, c := range All() {
		for _, tc := range predicateCases {
			if got := c.Func([]byte(tc.input)); got != tc.want {
				t.Fatalf("%s(%q) = %v, want %v", c.Name, tc.input, got, tc.want)
			}
		}
	}
}

func TestCountArrayCounterWrap(t *testing.T) {
	// 257 copies of one byte wrap the uint8 counter to 1, which is still odd.
	input := make([]byte, 257)
	assert.True(t, CountArray(input))
	input = append(input, 1)
	assert.False(t, CountArray(input))
	assert.False(t, CountMap(input))
	assert.False(t, ParityBits(input))
}

func TestLookup(t *testing.T) {
	c, err := Lookup("bitset")
	require.NoError(t, err)
	assert.Equal(t, "bitset", c.Name)

	c, err = Lookup("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCandidate, c.Name)

	c, err = Lookup(" MAP ")
	require.NoError(t, err)
	assert.Equal(t, "map", c.Name)

	_, err = Lookup("trie")
	assert.ErrorIs(t, err, ErrUnknownCandidate)
}

func TestResolve(t *testing.T) {
	all, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"array", "bitset", "map"}, candidateNames(all))

	some, err := Resolve([]string{"map", "array", "map"})
	require.NoError(t, err)
	assert.Equal(t, []string{"map", "array"}, candidateNames(some))

	_, err = Resolve([]string{"array", "nope"})
	assert.ErrorIs(t, err, ErrUnknownCandidate)
}

func candidateNames(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
