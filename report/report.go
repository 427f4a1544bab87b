// Package report computes corpus-wide statistics over retained tracks
// and derives the bounds the range filter selects against.
package report

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/track"
)

// BuildStats measures every track: estimated tempo, key number and
// min/max pitch. A zero-note track aborts the whole run with
// *track.EmptyTrackError rather than being skipped.
func BuildStats(tracks []model.ParsedTrack) (model.CorpusStats, error) {
	stats := model.CorpusStats{
		KeyCounts: make(map[int]int),
	}

	for _, t := range tracks {
		lo, hi, err := track.PitchRange(t)
		if err != nil {
			return stats, err
		}
		stats.Tempos = append(stats.Tempos, track.EstimateTempo(t))
		if stats.KeyCounts[t.KeyNumber] == 0 {
			stats.KeyOrder = append(stats.KeyOrder, t.KeyNumber)
		}
		stats.KeyCounts[t.KeyNumber]++
		stats.MinPitches = append(stats.MinPitches, float64(lo))
		stats.MaxPitches = append(stats.MaxPitches, float64(hi))
	}

	return stats, nil
}

// Aggregate reduces corpus stats to the filter bounds: tempo mean and
// population standard deviation, the most frequent key, and the integer
// pitch bounds (means of the per-track extremes, truncated).
func Aggregate(tracks []model.ParsedTrack) (model.AggregateBounds, error) {
	stats, err := BuildStats(tracks)
	if err != nil {
		return model.AggregateBounds{}, err
	}
	return AggregateStats(stats), nil
}

// AggregateStats is the pure reduction step over already-built stats.
func AggregateStats(stats model.CorpusStats) model.AggregateBounds {
	return model.AggregateBounds{
		TempoMean:       stat.Mean(stats.Tempos, nil),
		TempoStd:        stat.PopStdDev(stats.Tempos, nil),
		MostFrequentKey: MostFrequentKey(stats),
		LowPitch:        int(stat.Mean(stats.MinPitches, nil)),
		HighPitch:       int(stat.Mean(stats.MaxPitches, nil)),
	}
}

// MostFrequentKey sorts key numbers by descending count and returns the
// first. The sort is stable over first-encounter order, so ties resolve
// to whichever key appeared first in the corpus; that makes repeated
// runs on the same input agree, though the tie winner itself carries no
// musical meaning.
func MostFrequentKey(stats model.CorpusStats) int {
	if len(stats.KeyOrder) == 0 {
		return 0
	}
	keys := make([]int, len(stats.KeyOrder))
	copy(keys, stats.KeyOrder)
	sort.SliceStable(keys, func(i, j int) bool {
		return stats.KeyCounts[keys[i]] > stats.KeyCounts[keys[j]]
	})
	return keys[0]
}
