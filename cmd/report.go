package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/corpus"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/report"
	"github.com/jsphweid/midiprep/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <corpus-dir>",
	Short: "Prints corpus statistics",
	Long:  `Prints corpus statistics`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(printReport(args[0]))
	},
}

func printReport(root string) error {
	tracks, skips, err := corpus.Load(root)
	if err != nil {
		return err
	}

	stats, err := report.BuildStats(tracks)
	if err != nil {
		return err
	}
	bounds := report.AggregateStats(stats)

	fmt.Printf("retained files: %v\n", len(tracks))
	fmt.Printf("skipped files: %v\n", len(skips))
	for reason, count := range skipCounts(skips) {
		fmt.Printf("  %v: %v\n", reason, count)
	}
	fmt.Printf("tempo mean: %v\n", bounds.TempoMean)
	fmt.Printf("tempo std: %v\n", bounds.TempoStd)
	fmt.Printf("most frequent key: %v\n", bounds.MostFrequentKey)
	fmt.Printf("pitch bounds: [%v, %v]\n", bounds.LowPitch, bounds.HighPitch)

	fmt.Println("key frequencies:")
	for _, key := range util.SortedKeys(stats.KeyCounts) {
		fmt.Printf("  key %v: %v\n", key, stats.KeyCounts[key])
	}
	return nil
}

func skipCounts(skips []model.SkipRecord) map[model.SkipReason]int {
	res := make(map[model.SkipReason]int)
	for _, s := range skips {
		res[s.Reason]++
	}
	return res
}
