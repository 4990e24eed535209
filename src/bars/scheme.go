package bars

import "strings"

// DetectScheme assigns a rhyme-scheme label to each line and returns the
// concatenated labels ("AABB", "ABAB", ...). Zero or one line is "A".
//
// Assignment is greedy and single-pass: each line takes the label of the
// first earlier line whose end word rhymes with its own, or the next
// unused letter. Because rhyming is not transitive the result depends on
// scan order; that quirk is part of the contract, not something to fix
// with transitive closure.
func (a *Analyzer) DetectScheme(lines []Line) string {
	if len(lines) <= 1 {
		return "A"
	}
	labels := make([]string, len(lines))
	next := 0
	for i := range lines {
		assigned := false
		for j := 0; j < i; j++ {
			if a.Rhymes(lines[i].EndWord(), lines[j].EndWord()) {
				labels[i] = labels[j]
				assigned = true
				break
			}
		}
		if !assigned {
			labels[i] = schemeLabel(next)
			next++
		}
	}
	return strings.Join(labels, "")
}

// schemeLabel turns 0-based n into A..Z, then AA, AB, ... once the
// alphabet runs out.
func schemeLabel(n int) string {
	label := ""
	n++
	for n > 0 {
		n--
		label = string(rune('A'+n%26)) + label
		n /= 26
	}
	return label
}
