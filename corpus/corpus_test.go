package corpus

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/midiprep/model"
)

func writeMidi(t *testing.T, path string, keySigs, timeSigs int, notes ...uint8) {
	t.Helper()

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	var tr smf.Track
	for i := 0; i < timeSigs; i++ {
		tr.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))
	}
	for i := 0; i < keySigs; i++ {
		tr.Add(0, smf.Message([]byte{0xFF, 0x59, 0x02, 0x00, 0x00}))
	}
	for _, n := range notes {
		tr.Add(0, gomidi.NoteOn(0, n, 100))
		tr.Add(480, gomidi.NoteOff(0, n))
	}
	tr.Close(0)
	assert.NoError(t, s.Add(tr))

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	assert.NoError(t, err)
	assert.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestLoadRetainsSingleSignatureFiles(t *testing.T) {
	dir := t.TempDir()
	writeMidi(t, filepath.Join(dir, "keep.mid"), 1, 1, 60, 64)
	writeMidi(t, filepath.Join(dir, "twokeys.mid"), 2, 1, 60)
	writeMidi(t, filepath.Join(dir, "twometers.mid"), 1, 2, 60)
	writeMidi(t, filepath.Join(dir, "nokey.mid"), 0, 1, 60)

	tracks, skips, err := Load(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tracks, 1)
	assert.Equal(filepath.Join(dir, "keep.mid"), tracks[0].Path)
	assert.Len(skips, 3)
}

func TestLoadSkipReasons(t *testing.T) {
	dir := t.TempDir()
	writeMidi(t, filepath.Join(dir, "a_twokeys.mid"), 2, 1, 60)
	writeMidi(t, filepath.Join(dir, "b_twometers.mid"), 1, 2, 60)
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "c_junk.mid"), []byte("garbage"), 0644))

	tracks, skips, err := Load(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(tracks)
	assert.Len(skips, 3)
	// WalkDir visits lexically, so the records line up with the prefixes
	assert.Equal(model.SkipKeySigCount, skips[0].Reason)
	assert.Equal(model.SkipTimeSigCount, skips[1].Reason)
	assert.Equal(model.SkipParseFailed, skips[2].Reason)
}

func TestLoadRecursesSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested", "deeper")
	assert.NoError(t, os.MkdirAll(sub, 0777))
	writeMidi(t, filepath.Join(sub, "keep.mid"), 1, 1, 60)

	tracks, _, err := Load(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tracks, 1)
}

func TestLoadEmptyDirectory(t *testing.T) {
	tracks, skips, err := Load(t.TempDir())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(tracks)
	assert.Empty(skips)
}

func TestLoadUnparseableOnlyDirectory(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "junk.mid"), []byte("nope"), 0644))

	tracks, skips, err := Load(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(tracks)
	assert.Len(skips, 1)
}

func TestLoadPathIsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.mid")
	writeMidi(t, path, 1, 1, 60)

	_, _, err := Load(path)

	var pathErr *InvalidPathError
	assert := assert.New(t)
	assert.Error(err)
	assert.True(errors.As(err, &pathErr))
	assert.Equal(path, pathErr.Path)
}

func TestLoadPathMissing(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	var pathErr *InvalidPathError
	assert := assert.New(t)
	assert.Error(err)
	assert.True(errors.As(err, &pathErr))
}

func TestLoadKeepsTraversalOrder(t *testing.T) {
	dir := t.TempDir()
	writeMidi(t, filepath.Join(dir, "01.mid"), 1, 1, 60)
	writeMidi(t, filepath.Join(dir, "02.mid"), 1, 1, 62)
	writeMidi(t, filepath.Join(dir, "03.mid"), 1, 1, 64)

	tracks, _, err := Load(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(tracks, 3)
	assert.Equal(filepath.Join(dir, "01.mid"), tracks[0].Path)
	assert.Equal(filepath.Join(dir, "02.mid"), tracks[1].Path)
	assert.Equal(filepath.Join(dir, "03.mid"), tracks[2].Path)
}
