package kcount

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"
)

// Output is the document written for a single counting run.
type Output struct {
	// K is the k-mer length
	K int `json:"k"`

	// Canonical is whether k-mers were merged with their reverse complements
	Canonical bool `json:"canonical"`

	// Relative is whether Kmers holds relative frequencies rather than counts
	Relative bool `json:"relative"`

	// Total is the number of valid k-mer windows in the sequence
	Total int `json:"total"`

	// Time, ex: "2018/01/01 20:41:00"
	Time string `json:"time"`

	// Kmers maps each k-mer to its count or relative frequency
	Kmers map[string]float64 `json:"kmers"`
}

// newOutput builds the output document from a set of counts.
func newOutput(counts *Counts, k int, canonical, relative bool) *Output {
	// same format as log.Println https://golang.org/pkg/log/#Println
	t := time.Now()
	stamp := fmt.Sprintf(
		"%d/%02d/%02d %02d:%02d:%02d",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(),
	)

	kmers := counts.Values()
	if relative {
		kmers = counts.Frequencies()
	}

	return &Output{
		K:         k,
		Canonical: canonical,
		Relative:  relative,
		Total:     counts.Total,
		Time:      stamp,
		Kmers:     kmers,
	}
}

// writeJSON writes the output as indented JSON. Map keys are sorted by encoding/json.
func writeJSON(w io.Writer, out *Output) error {
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %v", err)
	}

	if _, err = w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %v", err)
	}
	return nil
}

// writeTSV writes one row per k-mer, sorted by k-mer.
func writeTSV(w io.Writer, out *Output) error {
	kmers := make([]string, 0, len(out.Kmers))
	for kmer := range out.Kmers {
		kmers = append(kmers, kmer)
	}
	sort.Strings(kmers)

	header := "count"
	if out.Relative {
		header = "frequency"
	}

	writer := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(writer, "kmer\t%s\t\n", header)
	for _, kmer := range kmers {
		fmt.Fprintf(writer, "%s\t%v\t\n", kmer, out.Kmers[kmer])
	}
	return writer.Flush()
}

// writers maps each output format to the function that writes it
var writers = map[string]func(io.Writer, *Output) error{
	"json": writeJSON,
	"tsv":  writeTSV,
}
