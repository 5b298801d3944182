package kcount

// complement maps each base to its pair. Anything that isn't A, C, G or T
// (in either case) becomes an N so it can never pass as a valid base.
var complement [256]byte

// valid marks the bytes that may appear in a counted k-mer
var valid [256]bool

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	complement['A'], complement['T'] = 'T', 'A'
	complement['C'], complement['G'] = 'G', 'C'
	complement['a'], complement['t'] = 'T', 'A'
	complement['c'], complement['g'] = 'G', 'C'

	for _, b := range []byte("ACGT") {
		valid[b] = true
	}
}

// normalize returns an upper-cased copy of seq. Only ASCII letters change,
// so the length and every other byte are preserved.
func normalize(seq string) []byte {
	norm := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		norm[i] = c
	}
	return norm
}

// reverseComplement returns the reverse complement of a sequence
func reverseComplement(seq []byte) []byte {
	n := len(seq)
	revComp := make([]byte, n)
	for i, c := range seq {
		revComp[n-1-i] = complement[c]
	}
	return revComp
}
