package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scrapekit/internal/dataset"
)

var (
	splitParts   int
	splitRatio   float64
	splitOutputs []string
)

var splitCmd = &cobra.Command{
	Use:   "split [file]",
	Short: "Split a CSV file into parts or by ratio",
	Long: `Split a CSV dataset either into N roughly equal parts written next to
the input file, or into two files at a given row ratio.`,
	Args: cobra.ExactArgs(1),
	Run:  runSplitCommand,
}

func runSplitCommand(cmd *cobra.Command, args []string) {
	input := args[0]

	if cmd.Flags().Changed("ratio") {
		if len(splitOutputs) != 2 {
			fmt.Println("Please specify exactly two --out files when splitting by ratio")
			os.Exit(1)
		}
		if err := dataset.SplitByRatio(input, splitOutputs[0], splitOutputs[1], splitRatio); err != nil {
			fmt.Printf("Error splitting %s: %v\n", input, err)
			os.Exit(1)
		}
		fmt.Printf("Split %s into %s and %s\n", input, splitOutputs[0], splitOutputs[1])
		return
	}

	outputs, err := dataset.SplitIntoN(input, splitParts)
	if err != nil {
		fmt.Printf("Error splitting %s: %v\n", input, err)
		os.Exit(1)
	}

	fmt.Printf("Split %s into %d files\n", input, len(outputs))
	if verbose {
		for _, out := range outputs {
			fmt.Printf("  %s\n", out)
		}
	}
}

func init() {
	rootCmd.AddCommand(splitCmd)

	splitCmd.Flags().IntVarP(&splitParts, "parts", "n", 2,
		"Number of output files")
	splitCmd.Flags().Float64Var(&splitRatio, "ratio", 0.5,
		"Split ratio (0.0-1.0); requires two --out files")
	splitCmd.Flags().StringArrayVarP(&splitOutputs, "out", "o", nil,
		"Output files for ratio split (exactly two)")
}
