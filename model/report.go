package model

// SkipReason says why the loader dropped a file.
type SkipReason int

const (
	SkipParseFailed SkipReason = iota
	SkipKeySigCount
	SkipTimeSigCount
)

func (r SkipReason) String() string {
	switch r {
	case SkipParseFailed:
		return "parse failed"
	case SkipKeySigCount:
		return "key signature count != 1"
	case SkipTimeSigCount:
		return "time signature count != 1"
	default:
		return "unknown"
	}
}

// SkipRecord is one dropped file and the reason it was dropped.
type SkipRecord struct {
	Path   string
	Reason SkipReason
	Detail string
}

// CorpusStats holds the per-track measurements the aggregation is
// computed from. KeyOrder retains first-encounter order of key numbers
// so the most-frequent-key tie-break is stable across runs.
type CorpusStats struct {
	Tempos     []float64
	KeyCounts  map[int]int
	KeyOrder   []int
	MinPitches []float64
	MaxPitches []float64
}

// AggregateBounds is the corpus-wide snapshot the range filter works
// against. LowPitch and HighPitch are inclusive.
type AggregateBounds struct {
	TempoMean float64
	TempoStd  float64

	// MostFrequentKey is reported but does not participate in filtering.
	MostFrequentKey int

	LowPitch  int
	HighPitch int
}

// PitchChannels is the width of the assembled matrix.
func (b AggregateBounds) PitchChannels() int {
	return b.HighPitch - b.LowPitch + 1
}

// RollBinary is the gob export shape of an assembled matrix,
// row-major: Data[r*Cols+c].
type RollBinary struct {
	Rows int
	Cols int
	Data []float64
}
