// Package pianoroll narrows retained tracks to those near the corpus
// aggregates and stacks the survivors into one activation matrix.
package pianoroll

import (
	"gonum.org/v1/gonum/mat"

	"github.com/jsphweid/midiprep/constants"
	"github.com/jsphweid/midiprep/model"
	"github.com/jsphweid/midiprep/track"
)

// EmptyCorpusError means every track was filtered out; concatenating
// zero matrices is undefined, so assembly fails loudly instead of
// returning an empty result.
type EmptyCorpusError struct{}

func (e *EmptyCorpusError) Error() string {
	return "no tracks survived filtering, nothing to assemble"
}

// TempoInRange reports whether tempo lies strictly inside (mean-std,
// mean+std). Exact boundary values are excluded, and std == 0 makes the
// interval empty so nothing passes. Both behaviors are intentional.
func TempoInRange(tempo, mean, std float64) bool {
	return tempo > mean-std && tempo < mean+std
}

// PitchInRange reports whether [lo, hi] fits inside [low, high]
// inclusive. Exact boundary values are admitted.
func PitchInRange(lo, hi uint8, low, high int) bool {
	return int(lo) >= low && int(hi) <= high
}

// Filter re-derives each track's tempo estimate and pitch range (the
// same computations aggregation ran, deliberately not cached) and
// admits tracks inside both bounds, preserving input order.
func Filter(tracks []model.ParsedTrack, bounds model.AggregateBounds) ([]model.ParsedTrack, error) {
	var admitted []model.ParsedTrack
	for _, t := range tracks {
		lo, hi, err := track.PitchRange(t)
		if err != nil {
			return nil, err
		}
		tempo := track.EstimateTempo(t)
		if TempoInRange(tempo, bounds.TempoMean, bounds.TempoStd) &&
			PitchInRange(lo, hi, bounds.LowPitch, bounds.HighPitch) {
			admitted = append(admitted, t)
		}
	}
	return admitted, nil
}

// Roll renders one track as a 128 x frames velocity matrix sampled at
// constants.SampleRate. Overlapping notes on the same pitch accumulate.
func Roll(t model.ParsedTrack) *mat.Dense {
	frames := int(track.Duration(t) * constants.SampleRate)
	if frames == 0 {
		frames = 1
	}
	roll := mat.NewDense(constants.NumPitches, frames, nil)
	for _, n := range t.Notes {
		start := int(n.Start * constants.SampleRate)
		end := int(n.End * constants.SampleRate)
		if end > frames {
			end = frames
		}
		for c := start; c < end; c++ {
			p := int(n.Pitch)
			roll.Set(p, c, roll.At(p, c)+float64(n.Velocity))
		}
	}
	return roll
}

// Assemble renders every admitted track, slices the pitch axis to
// [LowPitch, HighPitch] inclusive, lays the slices end to end in time
// and returns the transpose: rows are time steps, columns are pitch
// channels.
func Assemble(admitted []model.ParsedTrack, bounds model.AggregateBounds) (*mat.Dense, error) {
	if len(admitted) == 0 {
		return nil, &EmptyCorpusError{}
	}

	channels := bounds.PitchChannels()
	var slices []mat.Matrix
	var totalFrames int
	for _, t := range admitted {
		roll := Roll(t)
		_, frames := roll.Dims()
		slices = append(slices, roll.Slice(bounds.LowPitch, bounds.HighPitch+1, 0, frames))
		totalFrames += frames
	}

	stacked := mat.NewDense(channels, totalFrames, nil)
	offset := 0
	for _, s := range slices {
		_, frames := s.Dims()
		stacked.Slice(0, channels, offset, offset+frames).(*mat.Dense).Copy(s)
		offset += frames
	}

	return mat.DenseCopyOf(stacked.T()), nil
}
