package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <matrix-file>",
	Short: "Inspects an exported matrix binary",
	Long:  `Inspects an exported matrix binary`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func inspect(path string) error {
	bin, err := util.ReadBinary[model.RollBinary](path)
	if err != nil {
		return fmt.Errorf("could not read matrix binary: %w", err)
	}
	if len(bin.Data) != bin.Rows*bin.Cols {
		return fmt.Errorf("matrix binary is malformed: %v values for shape (%v, %v)", len(bin.Data), bin.Rows, bin.Cols)
	}

	var active int
	for _, v := range bin.Data {
		if v != 0 {
			active++
		}
	}

	fmt.Printf("shape: (%v, %v)\n", bin.Rows, bin.Cols)
	fmt.Printf("active cells: %v of %v\n", active, len(bin.Data))
	return nil
}
