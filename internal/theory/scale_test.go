package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorScale(t *testing.T) {
	assert.Equal(t, []PitchClass{0, 2, 4, 5, 7, 9, 11}, MajorScale(0))
	assert.Equal(t, mustPCs(t, "G", "A", "B", "C", "D", "E", "F#"), MajorScale(7))
}

func TestMajorScaleOf(t *testing.T) {
	scale, err := MajorScaleOf("Eb")
	require.NoError(t, err)
	assert.Equal(t, mustPCs(t, "Eb", "F", "G", "Ab", "Bb", "C", "D"), scale)

	_, err = MajorScaleOf("X")
	assert.Error(t, err)
}

func TestMinorScaleVariants(t *testing.T) {
	a := PitchClass(9)

	assert.Equal(t, []PitchClass{9, 11, 0, 2, 4, 5, 7}, NaturalMinorScale(a))
	assert.Equal(t, []PitchClass{9, 11, 0, 2, 4, 5, 8}, HarmonicMinorScale(a))
	assert.Equal(t, []PitchClass{9, 11, 0, 2, 4, 6, 8}, MelodicMinorScale(a))
}

func TestScaleNames(t *testing.T) {
	names := ScaleNames(MajorScale(0))
	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, names)
}

func TestBuildScale_Empty(t *testing.T) {
	assert.Empty(t, BuildScale(0, nil))
}
