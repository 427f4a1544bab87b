package util

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/midiprep/model"
)

func TestSortedKeys(t *testing.T) {
	m := map[int]int{5: 1, 0: 3, 2: 3}
	assert.Equal(t, []int{0, 2, 5}, SortedKeys(m))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roll.dat")
	in := model.RollBinary{
		Rows: 2,
		Cols: 3,
		Data: []float64{1, 2, 3, 4, 5, 6},
	}

	assert := assert.New(t)
	assert.NoError(CreateBinary(path, in))

	out, err := ReadBinary[model.RollBinary](path)
	assert.NoError(err)
	assert.Equal(in, out)
}

func TestReadBinaryMissingFile(t *testing.T) {
	_, err := ReadBinary[model.RollBinary](filepath.Join(t.TempDir(), "nope.dat"))
	assert.Error(t, err)
}
