package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midiprep/model"
)

// ParseFile decodes one midi file into a model.ParsedTrack: note events
// in seconds, key/time signature declaration counts, declared tempos.
// Any failure to decode comes back as an error; callers decide whether
// to skip or abort.
func ParseFile(path string) (t model.ParsedTrack, e error) {
	// the smf reader can panic on malformed input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			e = fmt.Errorf("panic parsing midi file: %v", r)
		}
	}()

	dat, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("error reading midi file: %w", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return t, fmt.Errorf("error parsing midi file: %w", err)
	}

	return fromSMF(path, s)
}

func fromSMF(path string, s *smf.SMF) (model.ParsedTrack, error) {
	t := model.ParsedTrack{Path: path}

	if len(s.Tracks) == 0 {
		return t, errors.New("midi file has no tracks")
	}

	sawKeySig := false
	for _, events := range s.Tracks {
		var absTicks int64
		pending := make(map[uint8]model.Note)

		for _, event := range events {
			absTicks += int64(event.Delta)
			secs := float64(s.TimeAt(absTicks)) / 1e6

			var channel uint8
			var key uint8
			var velocity uint8
			var bpm float64
			var num, denom uint8
			var ksKey, ksNum uint8
			var ksMajor, ksFlat bool

			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				pending[key] = model.Note{
					Pitch:    key,
					Velocity: velocity,
					Start:    secs,
				}
			case event.Message.GetNoteEnd(&channel, &key):
				if n, ok := pending[key]; ok {
					n.End = secs
					if n.End > n.Start {
						t.Notes = append(t.Notes, n)
					}
					delete(pending, key)
				}
			case event.Message.GetMetaKeySig(&ksKey, &ksNum, &ksMajor, &ksFlat):
				t.KeySigCount++
				if !sawKeySig {
					t.KeyNumber = keyNumber(ksKey, ksMajor)
					sawKeySig = true
				}
			case event.Message.GetMetaMeter(&num, &denom):
				t.TimeSigCount++
			case event.Message.GetMetaTempo(&bpm):
				t.DeclaredTempos = append(t.DeclaredTempos, bpm)
			}
		}
	}

	sort.SliceStable(t.Notes, func(i, j int) bool {
		return t.Notes[i].Start < t.Notes[j].Start
	})
	return t, nil
}

// keyNumber maps a key signature to the 0-23 convention: pitch class of
// the tonic for major keys, pitch class + 12 for minor keys.
func keyNumber(tonic uint8, isMajor bool) int {
	n := int(tonic % 12)
	if !isMajor {
		n += 12
	}
	return n
}
