package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func statesFromPluses(s string) []bool {
	out := make([]bool, len(s))
	for i, c := range s {
		out[i] = c == '+'
	}
	return out
}

func TestEventsCode(t *testing.T) {
	states := statesFromPluses("+++--+++---+++++")
	assert.Equal(t, "--B-F--B--F----", EventsCode(states))
}

func TestFindNoiseCodesCounts(t *testing.T) {
	code := "--B-F--B--F----"
	assert.Len(t, findNoiseCodes(code, 1), 1)
	assert.Len(t, findNoiseCodes(code, 0), 0)
	assert.Len(t, findNoiseCodes(code, 2), 2)

	m2 := findNoiseCodes(code, 2)
	assert.Equal(t, "B-F", code[m2[0][0]:m2[0][1]])
	assert.Equal(t, "B--F", code[m2[1][0]:m2[1][1]])
}

func TestRemoveFlipsInteriorOnly(t *testing.T) {
	states := statesFromPluses("+++--+++---+++++")
	flipped := Remove(states, 1)
	assert.Equal(t, "-------B--F----", EventsCode(states))
	assert.NotEmpty(t, flipped)
}
