// Package corpus loads a directory tree of midi files, keeping only
// files that declare exactly one key signature and one time signature.
package corpus

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jsphweid/midiprep/midi"
	"github.com/jsphweid/midiprep/model"
)

// InvalidPathError means the corpus root is missing or not a directory.
// It is returned before any traversal happens.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("corpus path is not a directory: %v", e.Path)
}

// Load walks root recursively and attempts to decode every regular
// file. Files that fail to decode, or that declare a number of key or
// time signatures other than one, are dropped; each drop is returned as
// a SkipRecord so callers can report on it. Retained tracks come back
// in traversal order.
func Load(root string) ([]model.ParsedTrack, []model.SkipRecord, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil, &InvalidPathError{Path: root}
	}

	var tracks []model.ParsedTrack
	var skips []model.SkipRecord

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		t, ok, rec := loadOne(path)
		if ok {
			tracks = append(tracks, t)
		} else {
			skips = append(skips, rec)
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, nil, fmt.Errorf("error walking %v: %w", root, err)
	}

	return tracks, skips, nil
}

func loadOne(path string) (model.ParsedTrack, bool, model.SkipRecord) {
	t, err := midi.ParseFile(path)
	if err != nil {
		return t, false, model.SkipRecord{
			Path:   path,
			Reason: model.SkipParseFailed,
			Detail: err.Error(),
		}
	}
	if t.KeySigCount != 1 {
		return t, false, model.SkipRecord{
			Path:   path,
			Reason: model.SkipKeySigCount,
			Detail: fmt.Sprintf("found %v key signatures", t.KeySigCount),
		}
	}
	if t.TimeSigCount != 1 {
		return t, false, model.SkipRecord{
			Path:   path,
			Reason: model.SkipTimeSigCount,
			Detail: fmt.Sprintf("found %v time signatures", t.TimeSigCount),
		}
	}
	return t, true, model.SkipRecord{}
}
