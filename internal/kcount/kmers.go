package kcount

import (
	"bytes"
)

// Kmer is a single valid window of a sequence, along with its mirrored
// window on the reverse complement strand.
type Kmer struct {
	// Pos is the 0-based start of the window in the forward sequence
	Pos int

	// Forward is the window as it appears in the (upper-cased) sequence
	Forward []byte

	// Reverse is the reverse complement of Forward
	Reverse []byte

	// RevIsCanonical is true when Reverse sorts before Forward. Palindromes
	// leave it false so the forward strand wins ties
	RevIsCanonical bool
}

// Canonical returns the lexicographically smaller of the two strands.
func (k Kmer) Canonical() []byte {
	if k.RevIsCanonical {
		return k.Reverse
	}
	return k.Forward
}

// Iterator walks the valid k-mers of a sequence and its reverse complement.
//
// Windows containing anything other than A, C, G or T are skipped. Each byte
// of the sequence is classified once per pass: the iterator remembers the
// last invalid byte it saw and jumps past it rather than re-checking the
// bytes that overlap the previous window.
type Iterator struct {
	seq     []byte
	revComp []byte
	k       int

	// pos is the start of the next window to consider
	pos int

	// scanned is how many bytes of seq have been classified
	scanned int

	// lastBad is the index of the last invalid byte in seq[:scanned]
	lastBad int

	cur Kmer
}

// Kmers returns an Iterator over the k-mers of sequence.
func Kmers(sequence string, k int) (*Iterator, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	seq := normalize(sequence)
	return newIterator(seq, reverseComplement(seq), k), nil
}

// newIterator expects seq to be normalized and revComp to be its reverse complement.
func newIterator(seq, revComp []byte, k int) *Iterator {
	it := &Iterator{seq: seq, revComp: revComp, k: k}
	it.Reset()
	return it
}

// Next advances to the next valid window. It returns false once the
// sequence is exhausted.
func (it *Iterator) Next() bool {
	n := len(it.seq)

	for it.pos+it.k <= n {
		start, end := it.pos, it.pos+it.k

		for ; it.scanned < end; it.scanned++ {
			if !valid[it.seq[it.scanned]] {
				it.lastBad = it.scanned
			}
		}

		if it.lastBad >= start {
			// no window overlapping lastBad can be valid
			it.pos = it.lastBad + 1
			continue
		}
		it.pos++

		fwd := it.seq[start:end]
		rev := it.revComp[n-end : n-start]
		it.cur = Kmer{
			Pos:            start,
			Forward:        fwd,
			Reverse:        rev,
			RevIsCanonical: bytes.Compare(fwd, rev) > 0,
		}
		return true
	}

	it.cur = Kmer{}
	return false
}

// Kmer returns the window found by the last call to Next.
func (it *Iterator) Kmer() Kmer {
	return it.cur
}

// Reset rewinds the iterator to the start of the sequence.
func (it *Iterator) Reset() {
	it.pos = 0
	it.scanned = 0
	it.lastBad = -1
	it.cur = Kmer{}
}
