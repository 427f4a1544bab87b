package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midiprep",
	Short: "Midi corpus preprocessing",
	Long:  `Filters a midi corpus by signature counts, tempo and pitch range, and stacks the survivors into a piano roll matrix.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
