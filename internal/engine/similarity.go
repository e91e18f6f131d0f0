package engine

import "strings"

// wordJaccard returns the Jaccard similarity of the word sets of a and b,
// case-insensitive and whitespace-tokenized. This is intentionally cheap —
// no embeddings needed for belief-content dedup.
func wordJaccard(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)

	shared := 0
	for w := range wa {
		if wb[w] {
			shared++
		}
	}

	union := len(wa) + len(wb) - shared
	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

func wordSet(s string) map[string]bool {
	fields := strings.Fields(strings.ToLower(s))
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	return m
}
