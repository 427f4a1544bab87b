// Package track derives per-file measurements (tempo estimate, pitch
// range) from an already-decoded midi file.
package track

import (
	"fmt"
	"math"
	"sort"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
)

// EmptyTrackError means a zero-note track reached analysis. The loader
// only guarantees signature counts, not note presence, so this can
// surface on real corpora and is fatal by design.
type EmptyTrackError struct {
	Path string
}

func (e *EmptyTrackError) Error() string {
	return fmt.Sprintf("track has no notes: %v", e.Path)
}

// onsetTolerance merges note starts closer than this (seconds) into one
// onset, so block chords count as a single attack.
const onsetTolerance = 0.01

// clusterWidth is the relative tolerance when grouping inter-onset
// intervals into tempo candidates.
const clusterWidth = 0.05

// PitchRange scans every note in every instrument track and returns the
// lowest and highest pitch.
func PitchRange(t model.ParsedTrack) (lo uint8, hi uint8, err error) {
	if len(t.Notes) == 0 {
		return 0, 0, &EmptyTrackError{Path: t.Path}
	}
	lo, hi = t.Notes[0].Pitch, t.Notes[0].Pitch
	for _, n := range t.Notes[1:] {
		if n.Pitch < lo {
			lo = n.Pitch
		}
		if n.Pitch > hi {
			hi = n.Pitch
		}
	}
	return lo, hi, nil
}

// Duration is the end time of the last-ending note, in seconds.
func Duration(t model.ParsedTrack) float64 {
	var end float64
	for _, n := range t.Notes {
		if n.End > end {
			end = n.End
		}
	}
	return end
}

// EstimateTempo derives a single scalar bpm estimate from note onset
// timing: inter-onset intervals are grouped into clusters, the most
// populated cluster is taken as the beat period, and the result is
// folded into a playable bpm range. Tracks with fewer than two distinct
// onsets fall back to the first declared tempo, or the midi default.
func EstimateTempo(t model.ParsedTrack) float64 {
	onsets := distinctOnsets(t.Notes)
	if len(onsets) < 2 {
		if len(t.DeclaredTempos) > 0 {
			return t.DeclaredTempos[0]
		}
		return constants.DefaultBPM
	}

	intervals := make([]float64, 0, len(onsets)-1)
	for i := 1; i < len(onsets); i++ {
		intervals = append(intervals, onsets[i]-onsets[i-1])
	}

	beat := dominantInterval(intervals)
	bpm := 60.0 / beat
	for bpm < 40 {
		bpm *= 2
	}
	for bpm > 250 {
		bpm /= 2
	}
	return bpm
}

func distinctOnsets(notes []model.Note) []float64 {
	starts := make([]float64, 0, len(notes))
	for _, n := range notes {
		starts = append(starts, n.Start)
	}
	sort.Float64s(starts)

	var onsets []float64
	for _, s := range starts {
		if len(onsets) == 0 || s-onsets[len(onsets)-1] > onsetTolerance {
			onsets = append(onsets, s)
		}
	}
	return onsets
}

type cluster struct {
	sum float64
	n   int
}

// dominantInterval greedily clusters intervals by relative proximity to
// the running cluster mean and returns the mean of the biggest cluster.
// Ties go to the cluster seen first, which keeps the estimate stable
// for a given input.
func dominantInterval(intervals []float64) float64 {
	sorted := make([]float64, len(intervals))
	copy(sorted, intervals)
	sort.Float64s(sorted)

	var clusters []cluster
	for _, iv := range sorted {
		placed := false
		for i := range clusters {
			mean := clusters[i].sum / float64(clusters[i].n)
			if math.Abs(iv-mean) <= clusterWidth*mean {
				clusters[i].sum += iv
				clusters[i].n++
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, cluster{sum: iv, n: 1})
		}
	}

	best := clusters[0]
	for _, c := range clusters[1:] {
		if c.n > best.n {
			best = c
		}
	}
	return best.sum / float64(best.n)
}
