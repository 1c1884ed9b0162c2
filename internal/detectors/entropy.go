package detectors

import "math"

// Entropy returns the Shannon entropy of s in bits per symbol. It is
// attached to findings as a randomness signal for reviewers; the engine
// never drops or promotes a finding based on it. The empty string has zero
// entropy.
func Entropy(s string) float64 {
	if s == "" {
		return 0
	}
	count := map[rune]int{}
	n := 0
	for _, r := range s {
		count[r]++
		n++
	}
	h := 0.0
	for _, c := range count {
		p := float64(c) / float64(n)
		h += -p * math.Log2(p)
	}
	return h
}
