package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/jsphweid/midiprep/corpus"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/pianoroll"
	"github.com/jsphweid/midiprep/report"
	"github.com/jsphweid/midiprep/util"
)

var prepareOutDir string
var prepareVerbose bool

func init() {
	prepareCmd.Flags().StringVar(&prepareOutDir, "out", "", "directory to write the assembled matrix to as a gob binary")
	prepareCmd.Flags().BoolVar(&prepareVerbose, "verbose", false, "print a line for every skipped file")
	rootCmd.AddCommand(prepareCmd)
}

var prepareCmd = &cobra.Command{
	Use:   "prepare <corpus-dir>",
	Short: "Filters the corpus and prints the assembled matrix shape",
	Long:  `Filters the corpus and prints the assembled matrix shape`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(prepare(args[0]))
	},
}

func prepare(root string) error {
	m, err := runPipeline(root)
	if err != nil {
		return err
	}

	rows, cols := m.Dims()
	fmt.Printf("(%v, %v)\n", rows, cols)

	if prepareOutDir != "" {
		return exportMatrix(m, prepareOutDir)
	}
	return nil
}

func runPipeline(root string) (*mat.Dense, error) {
	tracks, skips, err := corpus.Load(root)
	if err != nil {
		return nil, err
	}
	if prepareVerbose {
		for _, s := range skips {
			fmt.Printf("Skipping %v because: %v (%v)\n", s.Path, s.Reason, s.Detail)
		}
	}

	bounds, err := report.Aggregate(tracks)
	if err != nil {
		return nil, err
	}

	admitted, err := pianoroll.Filter(tracks, bounds)
	if err != nil {
		return nil, err
	}

	return pianoroll.Assemble(admitted, bounds)
}

func exportMatrix(m *mat.Dense, dir string) error {
	rows, cols := m.Dims()
	bin := model.RollBinary{
		Rows: rows,
		Cols: cols,
		Data: m.RawMatrix().Data,
	}
	filename := filepath.Join(dir, uuid.New().String()+".dat")
	if err := util.CreateBinary(filename, bin); err != nil {
		return fmt.Errorf("could not write matrix binary: %w", err)
	}
	fmt.Printf("Wrote matrix to %v\n", filename)
	return nil
}
