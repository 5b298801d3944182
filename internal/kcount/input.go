package kcount

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/apcamargo/kcounter/config"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// CountCmd takes a cobra command (with its flags) and counts the k-mers
// of the sequence passed as its first argument.
func CountCmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}

	if err := Run(args[0], config.New(), os.Stdout); err != nil {
		stderr.Fatalln(err)
	}
}

// Run counts the k-mers of seq and writes them in the configured format,
// either to the configured output file or to stdout.
func Run(seq string, conf *config.Config, stdout io.Writer) error {
	start := time.Now()

	format := strings.ToLower(conf.Format)
	write, ok := writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q, expected json or tsv", conf.Format)
	}

	counts, err := Count(seq, conf.K, conf.Canonical)
	if err != nil {
		return err
	}
	out := newOutput(counts, conf.K, conf.Canonical, conf.Relative)

	w := stdout
	if conf.Out != "" {
		f, err := os.Create(conf.Out)
		if err != nil {
			return fmt.Errorf("failed to create output file %s: %v", conf.Out, err)
		}
		defer f.Close()
		w = f
	}

	if err = write(w, out); err != nil {
		return err
	}

	if conf.Verbose {
		stderr.Printf(
			"%d valid %d-mers, %d distinct, in %s\n",
			counts.Total, conf.K, len(counts.Kmers), time.Since(start),
		)
	}

	return nil
}
