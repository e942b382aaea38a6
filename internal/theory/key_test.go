package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeInMajorKey(t *testing.T) {
	c := PitchClass(0)
	cases := []struct {
		note   string
		degree int
	}{
		{"C", 1},
		{"D", 2},
		{"E", 3},
		{"F", 4},
		{"G", 5},
		{"A", 6},
		{"B", 7},
		{"Eb", 0}, // chromatic
		{"F#", 0},
	}
	for _, tc := range cases {
		pc, err := NoteToPitchClass(tc.note)
		require.NoError(t, err)
		assert.Equal(t, tc.degree, DegreeInMajorKey(pc, c), "note %s in C", tc.note)
	}
}

func TestRomanForDegree(t *testing.T) {
	assert.Equal(t, "V", RomanForDegree(5, QualityDominant))
	assert.Equal(t, "I", RomanForDegree(1, QualityMajor))
	assert.Equal(t, "ii", RomanForDegree(2, QualityMinor))
	assert.Equal(t, "iv", RomanForDegree(4, QualityMinor))
	assert.Equal(t, "N/A", RomanForDegree(0, QualityMajor))
	assert.Equal(t, "N/A", RomanForDegree(8, QualityMinor))
}

func TestModeForDegree(t *testing.T) {
	assert.Equal(t, "Ionian (major)", ModeForDegree(1))
	assert.Equal(t, "Mixolydian", ModeForDegree(5))
	assert.Equal(t, "Locrian", ModeForDegree(7))
	assert.Equal(t, "Non-diatonic", ModeForDegree(0))
	assert.Equal(t, "Non-diatonic", ModeForDegree(9))
}

func TestDetectTritoneSub(t *testing.T) {
	c := PitchClass(0)

	db7, err := ParseChordSymbol("Db7")
	require.NoError(t, err)
	assert.Equal(t, "Tritone substitution of V7", DetectTritoneSub(db7, c))

	// Same root, non-dominant quality: no flag.
	dbMaj, err := ParseChordSymbol("Dbmaj7")
	require.NoError(t, err)
	assert.Empty(t, DetectTritoneSub(dbMaj, c))

	// Dominant on a different root: no flag.
	g7, err := ParseChordSymbol("G7")
	require.NoError(t, err)
	assert.Empty(t, DetectTritoneSub(g7, c))
}

func TestDetectModalBorrowing(t *testing.T) {
	fm, err := ParseChordSymbol("Fm")
	require.NoError(t, err)
	assert.Equal(t, "Borrowed from parallel minor (iv)", DetectModalBorrowing(4, fm))

	fMaj, err := ParseChordSymbol("F")
	require.NoError(t, err)
	assert.Empty(t, DetectModalBorrowing(4, fMaj))

	dm, err := ParseChordSymbol("Dm")
	require.NoError(t, err)
	assert.Empty(t, DetectModalBorrowing(2, dm))
}
