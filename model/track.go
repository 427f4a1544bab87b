package model

// Note is a single note event with times in seconds.
type Note struct {
	Pitch    uint8
	Velocity uint8
	Start    float64
	End      float64
}

// ParsedTrack is one successfully decoded midi file. Notes are merged
// across all instrument tracks and ordered by start time.
type ParsedTrack struct {
	Path string

	Notes []Note

	// KeyNumber follows the 0-23 convention: 0-11 major keys (0 = C),
	// 12-23 minor keys (12 = c). Only meaningful when KeySigCount == 1.
	KeyNumber int

	KeySigCount  int
	TimeSigCount int

	// DeclaredTempos holds every tempo declaration in bpm, in order.
	// Files may declare any number of these and still be retained.
	DeclaredTempos []float64
}
