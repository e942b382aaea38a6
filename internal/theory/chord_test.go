package theory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChordSymbol_Dominant(t *testing.T) {
	chord, err := ParseChordSymbol("G7")
	require.NoError(t, err)

	assert.Equal(t, "G7", chord.Symbol)
	assert.Equal(t, "G", chord.Root)
	assert.Equal(t, QualityDominant, chord.Quality)
	assert.Equal(t, []string{"7"}, chord.Extensions)
	assert.Empty(t, chord.Alterations)
}

func TestParseChordSymbol_Minor(t *testing.T) {
	for _, symbol := range []string{"Dm7", "Dmin7", "D-7"} {
		chord, err := ParseChordSymbol(symbol)
		require.NoError(t, err, "symbol %s", symbol)
		if symbol == "D-7" {
			// "-" is not a recognized minor marker; falls through to dominant
			assert.Equal(t, QualityDominant, chord.Quality, "symbol %s", symbol)
			continue
		}
		assert.Equal(t, QualityMinor, chord.Quality, "symbol %s", symbol)
		assert.Equal(t, "D", chord.Root)
	}
}

func TestParseChordSymbol_MajorSeventh(t *testing.T) {
	chord, err := ParseChordSymbol("Cmaj7")
	require.NoError(t, err)
	assert.Equal(t, QualityMajor, chord.Quality)

	tones := DeriveRequiredTones(chord)
	assert.Equal(t, []int{0, 4, 7, 11}, tones.Core)
	assert.Empty(t, tones.Extra)
}

func TestParseChordSymbol_FlatRoot(t *testing.T) {
	chord, err := ParseChordSymbol("Ebm7")
	require.NoError(t, err)
	assert.Equal(t, "Eb", chord.Root)
	assert.Equal(t, QualityMinor, chord.Quality)

	tones := DeriveRequiredTones(chord)
	assert.Equal(t, []int{0, 3, 7, 10}, tones.Core)
}

func TestParseChordSymbol_AlteredDominant(t *testing.T) {
	chord, err := ParseChordSymbol("D7b9b13")
	require.NoError(t, err)

	assert.Equal(t, "D", chord.Root)
	assert.Equal(t, QualityDominant, chord.Quality)
	assert.Contains(t, chord.Alterations, "b9")
	assert.Contains(t, chord.Alterations, "b13")

	tones := DeriveRequiredTones(chord)
	assert.Equal(t, []int{0, 4, 7, 10}, tones.Core)
	// 9 and 13 extension offsets plus the b9/b13 alterations
	assert.ElementsMatch(t, []int{2, 9, 1, 8}, tones.Extra)
}

func TestParseChordSymbol_Empty(t *testing.T) {
	_, err := ParseChordSymbol("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyChord))

	_, err = ParseChordSymbol("   ")
	assert.True(t, errors.Is(err, ErrEmptyChord))
}

func TestParseChordSymbol_BadRoot(t *testing.T) {
	_, err := ParseChordSymbol("H7")
	require.Error(t, err)

	var unknownNote *UnknownNoteError
	assert.True(t, errors.As(err, &unknownNote))
}

func TestDeriveRequiredTones_PlainTriads(t *testing.T) {
	cases := []struct {
		symbol string
		core   []int
	}{
		{"C", []int{0, 4, 7}},
		{"Am", []int{0, 3, 7}},
		{"G7", []int{0, 4, 7, 10}},
	}
	for _, tc := range cases {
		chord, err := ParseChordSymbol(tc.symbol)
		require.NoError(t, err, "symbol %s", tc.symbol)
		tones := DeriveRequiredTones(chord)
		assert.Equal(t, tc.core, tones.Core, "symbol %s", tc.symbol)
	}
}

func TestDeriveRequiredTones_Deduplicated(t *testing.T) {
	// #11 and b5 map to the same offset (6); it must appear once.
	chord, err := ParseChordSymbol("C7#11b5")
	require.NoError(t, err)

	tones := DeriveRequiredTones(chord)
	count := 0
	for _, off := range tones.Extra {
		if off == 6 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildTriad(t *testing.T) {
	c, err := NoteToPitchClass("C")
	require.NoError(t, err)

	major, err := BuildTriad(c, "major")
	require.NoError(t, err)
	assert.Equal(t, []PitchClass{0, 4, 7}, major)

	minor, err := BuildTriad(c, "minor")
	require.NoError(t, err)
	assert.Equal(t, []PitchClass{0, 3, 7}, minor)

	_, err = BuildTriad(c, "sus4")
	require.Error(t, err)
	var invalidQuality *InvalidQualityError
	assert.True(t, errors.As(err, &invalidQuality))
}

func TestBuildSeventhChord(t *testing.T) {
	g, err := NoteToPitchClass("G")
	require.NoError(t, err)

	dom, err := BuildSeventhChord(g, "dominant")
	require.NoError(t, err)
	// G B D F
	assert.Equal(t, []PitchClass{7, 11, 2, 5}, dom)

	_, err = BuildSeventhChord(g, "bogus")
	require.Error(t, err)
}

func TestNameTriad(t *testing.T) {
	assert.Equal(t, "major", NameTriad([3]PitchClass{0, 4, 7}))
	assert.Equal(t, "minor", NameTriad([3]PitchClass{9, 0, 4}))
	assert.Equal(t, "diminished", NameTriad([3]PitchClass{11, 2, 5}))
	assert.Equal(t, "augmented", NameTriad([3]PitchClass{0, 4, 8}))
	assert.Equal(t, UnknownChordName, NameTriad([3]PitchClass{0, 1, 2}))
}

func TestNameSeventhChord(t *testing.T) {
	assert.Equal(t, "dominant", NameSeventhChord([4]PitchClass{7, 11, 2, 5}))
	assert.Equal(t, "major", NameSeventhChord([4]PitchClass{0, 4, 7, 11}))
	assert.Equal(t, "minor", NameSeventhChord([4]PitchClass{2, 5, 9, 0}))
	assert.Equal(t, "half-diminished", NameSeventhChord([4]PitchClass{11, 2, 5, 9}))
	assert.Equal(t, UnknownChordName, NameSeventhChord([4]PitchClass{0, 1, 2, 3}))
}

func TestBuildAndNameRoundTrip(t *testing.T) {
	for quality := range seventhIntervals {
		pcs, err := BuildSeventhChord(3, quality)
		require.NoError(t, err)
		require.Len(t, pcs, 4)
		assert.Equal(t, quality, NameSeventhChord([4]PitchClass{pcs[0], pcs[1], pcs[2], pcs[3]}))
	}
}
