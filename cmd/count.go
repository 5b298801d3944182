package cmd

import (
	"github.com/apcamargo/kcounter/config"
	"github.com/apcamargo/kcounter/internal/kcount"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// countCmd is for counting the k-mers of a sequence
var countCmd = &cobra.Command{
	Use:                        "count [sequence]",
	Short:                      "Count the k-mers of a DNA sequence",
	Run:                        kcount.CountCmd,
	SuggestionsMinimumDistance: 2,
	Example:                    "  kcounter count AAACTTTTTT -k 3 --canonical",
	Long: `Count the k-mers of a DNA sequence.

K-mers containing characters other than ATCG (in either case) are ignored.
With --canonical, each k-mer is counted under the lexicographically smaller
of itself and its reverse complement. With --relative, counts are divided by
the total number of valid k-mers.`,
	Aliases: []string{"kmers"},
}

// set flags
func init() {
	countCmd.Flags().IntP("k", "k", config.DefaultK, "length of the k-mers, must be positive")
	countCmd.Flags().BoolP("relative", "r", false, "report relative frequencies rather than counts")
	countCmd.Flags().BoolP("canonical", "c", false, "count the canonical representation of k-mers")
	countCmd.Flags().StringP("format", "f", config.DefaultFormat, "output format: json or tsv")
	countCmd.Flags().StringP("out", "o", "", "output file name (default stdout)")

	// Bind the parameters to viper
	viper.BindPFlag("k", countCmd.Flags().Lookup("k"))
	viper.BindPFlag("relative", countCmd.Flags().Lookup("relative"))
	viper.BindPFlag("canonical", countCmd.Flags().Lookup("canonical"))
	viper.BindPFlag("format", countCmd.Flags().Lookup("format"))
	viper.BindPFlag("out", countCmd.Flags().Lookup("out"))

	RootCmd.AddCommand(countCmd)
}
