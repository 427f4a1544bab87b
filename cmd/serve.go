package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/corpus"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/pianoroll"
	"github.com/jsphweid/midiprep/report"
	"github.com/jsphweid/midiprep/util"
)

var corpusReport model.ReportResponse

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve <corpus-dir>",
	Short: "Serves the corpus report over http",
	Long:  `Runs the pipeline once and serves the resulting report as json`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(serve(args[0]))
	},
}

func buildReport(root string) (model.ReportResponse, error) {
	var res model.ReportResponse

	tracks, skips, err := corpus.Load(root)
	if err != nil {
		return res, err
	}
	stats, err := report.BuildStats(tracks)
	if err != nil {
		return res, err
	}
	bounds := report.AggregateStats(stats)

	admitted, err := pianoroll.Filter(tracks, bounds)
	if err != nil {
		return res, err
	}
	m, err := pianoroll.Assemble(admitted, bounds)
	if err != nil {
		return res, err
	}
	rows, cols := m.Dims()

	res.TempoMean = bounds.TempoMean
	res.TempoStd = bounds.TempoStd
	res.MostFrequentKey = bounds.MostFrequentKey
	res.LowPitch = bounds.LowPitch
	res.HighPitch = bounds.HighPitch
	for _, key := range util.SortedKeys(stats.KeyCounts) {
		res.KeyCounts = append(res.KeyCounts, model.KeyCount{Key: key, Count: stats.KeyCounts[key]})
	}
	res.NumRetained = len(tracks)
	res.NumSkipped = len(skips)
	res.NumAdmitted = len(admitted)
	res.MatrixRows = rows
	res.MatrixCols = cols
	return res, nil
}

func handleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(corpusReport); err != nil {
		fmt.Printf("Could not encode report: %v\n", err)
	}
}

func serve(root string) error {
	r, err := buildReport(root)
	if err != nil {
		return err
	}
	corpusReport = r

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/report", handleReport).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(constants.ServeAddr, handler))
	return nil
}
