package cloak

import (
	"cmp"
	"slices"
	"strings"
)

// replacement swaps the runes in [start, end) for text.
type replacement struct {
	start int
	end   int
	text  string
}

// apply splices reps into src, working from the highest start offset down
// so no edit shifts another. A replacement that overlaps one already
// accepted is dropped. text is returned untouched when nothing applies.
func apply(text string, src []rune, reps []replacement) (string, int) {
	if len(reps) == 0 {
		return text, 0
	}

	slices.SortStableFunc(reps, func(a, b replacement) int {
		return cmp.Compare(b.start, a.start)
	})

	var accepted []replacement
	limit := len(src)
	for _, r := range reps {
		if r.start < 0 || r.end > limit || r.start > r.end {
			continue
		}
		accepted = append(accepted, r)
		limit = r.start
	}
	if len(accepted) == 0 {
		return text, 0
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for i := len(accepted) - 1; i >= 0; i-- {
		r := accepted[i]
		b.WriteString(string(src[pos:r.start]))
		b.WriteString(r.text)
		pos = r.end
	}
	b.WriteString(string(src[pos:]))
	return b.String(), len(accepted)
}
