package constants

// SampleRate is the piano roll frame rate in frames per second.
const SampleRate = 100.0

// DefaultBPM is assumed when a track has too few onsets to estimate a
// tempo and declares none.
const DefaultBPM = 120.0

// NumPitches is the full midi pitch axis before range slicing.
const NumPitches = 128

// ServeAddr is where the serve subcommand listens.
const ServeAddr = ":8080"
