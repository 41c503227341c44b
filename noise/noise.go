package noise

import (
	"fmt"
	"regexp"
	"sync"
)

// EventsCode renders a bonded/unbonded timeline as a length-(len(states)-1)
// event string: 'F' where the bond forms between consecutive frames, 'B'
// where it breaks, '-' where it stays the same.
func EventsCode(states []bool) string {
	if len(states) == 0 {
		return ""
	}
	buf := make([]byte, len(states)-1)
	for i := 0; i < len(states)-1; i++ {
		switch {
		case !states[i] && states[i+1]:
			buf[i] = 'F'
		case states[i] && !states[i+1]:
			buf[i] = 'B'
		default:
			buf[i] = '-'
		}
	}
	return string(buf)
}

var patternCache sync.Map // int -> [2]*regexp.Regexp

func noisePatterns(life int) (closeThenOpen, openThenClose *regexp.Regexp) {
	if cached, ok := patternCache.Load(life); ok {
		pair := cached.([2]*regexp.Regexp)
		return pair[0], pair[1]
	}
	closeThenOpen = regexp.MustCompile(fmt.Sprintf(`B-{0,%d}?F`, life))
	openThenClose = regexp.MustCompile(fmt.Sprintf(`F-{0,%d}?B`, life))
	patternCache.Store(life, [2]*regexp.Regexp{closeThenOpen, openThenClose})
	return closeThenOpen, openThenClose
}

// findNoiseCodes returns the non-overlapping match spans (as [start,end)
// byte offsets into code) of whichever of "B-{0,life}F" / "F-{0,life}B"
// matches more often; ties favour the B...F direction.
func findNoiseCodes(code string, life int) [][2]int {
	closeThenOpen, openThenClose := noisePatterns(life)
	bf := closeThenOpen.FindAllStringIndex(code, -1)
	fb := openThenClose.FindAllStringIndex(code, -1)

	var chosen [][]int
	if len(bf) < len(fb) {
		chosen = fb
	} else {
		chosen = bf
	}

	out := make([][2]int, len(chosen))
	for i, m := range chosen {
		out[i] = [2]int{m[0], m[1]}
	}
	return out
}

// Remove derives the event code of states, finds noise-event matches within
// life fill positions, and flips every state strictly inside a match (but
// outside the protective margins [life, len(states)-life)). It returns the
// indices actually flipped, leaving states mutated in place.
func Remove(states []bool, life int) []int {
	if len(states) == 0 {
		return nil
	}
	code := EventsCode(states)
	matches := findNoiseCodes(code, life)

	istart, iend := life, len(states)-life
	var flipped []int
	for _, m := range matches {
		start, end := m[0], m[1]
		for i := start + 1; i < end; i++ {
			if i >= istart && i < iend {
				states[i] = !states[i]
				flipped = append(flipped, i)
			}
		}
	}
	return flipped
}
