// Package kcount is for counting the k-mers of DNA sequences.
package kcount

import (
	"errors"
)

// ErrInvalidK is returned whenever k is less than one
var ErrInvalidK = errors.New("'k' must be a positive integer.")

// Counts are the occurrences of each k-mer within a sequence.
type Counts struct {
	// Kmers maps each k-mer (or canonical k-mer) to its number of occurrences
	Kmers map[string]int

	// Total is the number of valid windows, ie the sum of Kmers' values
	Total int
}

// CountKmers counts the k-mers of a DNA sequence.
//
// K-mers containing characters other than ATCG (in either case) are ignored.
// If canonicalKmers is set, each k-mer is counted under the smaller of itself
// and its reverse complement. If relativeFrequencies is set, each count is
// divided by the total number of valid k-mers.
//
// CountKmers("AAACTTTTTT", 3, false, false) returns
// {"AAA": 1, "AAC": 1, "ACT": 1, "CTT": 1, "TTT": 4}.
func CountKmers(sequence string, k int, relativeFrequencies, canonicalKmers bool) (map[string]float64, error) {
	counts, err := Count(sequence, k, canonicalKmers)
	if err != nil {
		return nil, err
	}

	if relativeFrequencies {
		return counts.Frequencies(), nil
	}
	return counts.Values(), nil
}

// Count returns the raw k-mer counts of a sequence along with the number of
// valid windows.
func Count(sequence string, k int, canonical bool) (*Counts, error) {
	it, err := Kmers(sequence, k)
	if err != nil {
		return nil, err
	}
	return aggregate(it, canonical), nil
}

// aggregate drains the iterator into a count table.
func aggregate(it *Iterator, canonical bool) *Counts {
	c := &Counts{Kmers: make(map[string]int)}

	for it.Next() {
		kmer := it.Kmer()

		key := kmer.Forward
		if canonical {
			key = kmer.Canonical()
		}

		c.Kmers[string(key)]++
		c.Total++
	}

	return c
}

// Values returns the counts as floats.
func (c *Counts) Values() map[string]float64 {
	values := make(map[string]float64, len(c.Kmers))
	for kmer, count := range c.Kmers {
		values[kmer] = float64(count)
	}
	return values
}

// Frequencies returns each k-mer's count divided by the total number of
// valid windows. It's empty if there were none.
func (c *Counts) Frequencies() map[string]float64 {
	freqs := make(map[string]float64, len(c.Kmers))
	if c.Total == 0 {
		return freqs
	}

	total := float64(c.Total)
	for kmer, count := range c.Kmers {
		freqs[kmer] = float64(count) / total
	}
	return freqs
}
