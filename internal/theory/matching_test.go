package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPCs(t *testing.T, names ...string) []PitchClass {
	t.Helper()
	pcs := make([]PitchClass, len(names))
	for i, name := range names {
		pc, err := NoteToPitchClass(name)
		require.NoError(t, err, "note %s", name)
		pcs[i] = pc
	}
	return pcs
}

func TestMelodyWeights(t *testing.T) {
	assert.Nil(t, melodyWeights(0))
	assert.Equal(t, []float64{1}, melodyWeights(1))

	w := melodyWeights(4)
	require.Len(t, w, 4)
	want := []float64{1.0, 0.75, 0.5, 0.25}
	for i := range want {
		assert.InDelta(t, want[i], w[i], 1e-9, "weight %d", i)
	}

	// Always decreasing, first weight 1, last weight 1/n.
	w = melodyWeights(7)
	assert.InDelta(t, 1.0, w[0], 1e-9)
	assert.InDelta(t, 1.0/7.0, w[6], 1e-9)
	for i := 1; i < len(w); i++ {
		assert.Less(t, w[i], w[i-1])
	}
}

func TestRankModes_MixolydianForDominant(t *testing.T) {
	chord, err := ParseChordSymbol("G7")
	require.NoError(t, err)
	root, err := chord.RootPitchClass()
	require.NoError(t, err)
	tones := DeriveRequiredTones(chord)

	melody := mustPCs(t, "F#", "A", "C", "D")
	ranked := RankModes(root, tones, melody)
	require.Len(t, ranked, 21)

	best := ranked[0]
	assert.Equal(t, "Mixolydian", best.Mode.Name)
	assert.Equal(t, FamilyMajor, best.Mode.Family)
	assert.Empty(t, best.MissingCore)
	assert.Empty(t, best.MissingExtra)

	// Core hits 4*4.0 plus melody hits on A, C, D (weights .75, .5, .25).
	assert.InDelta(t, 17.5, best.Score, 1e-9)
	assert.InDelta(t, 1.5, best.MelodyScore, 1e-9)
	assert.Equal(t, []bool{false, true, true, true}, best.MelodyHits)
}

func TestRankModes_TieBreakPrefersMajorFamily(t *testing.T) {
	chord, err := ParseChordSymbol("G7")
	require.NoError(t, err)
	root, err := chord.RootPitchClass()
	require.NoError(t, err)
	tones := DeriveRequiredTones(chord)

	// Empty melody: Mixolydian and Mixolydian b6 both contain the full
	// core; family order decides.
	ranked := RankModes(root, tones, nil)
	assert.Equal(t, "Mixolydian", ranked[0].Mode.Name)

	var mixoB6Rank int
	for i, r := range ranked {
		if r.Mode.Name == "Mixolydian b6" {
			mixoB6Rank = i
		}
	}
	assert.Greater(t, mixoB6Rank, 0)
	assert.InDelta(t, ranked[0].Score, ranked[mixoB6Rank].Score, 1e-9)
}

func TestRankModes_Deterministic(t *testing.T) {
	chord, err := ParseChordSymbol("Cmaj7")
	require.NoError(t, err)
	root, err := chord.RootPitchClass()
	require.NoError(t, err)
	tones := DeriveRequiredTones(chord)
	melody := mustPCs(t, "E", "G", "B")

	first := RankModes(root, tones, melody)
	second := RankModes(root, tones, melody)
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Mode.Name, second[i].Mode.Name, "rank %d", i)
		assert.Equal(t, first[i].Score, second[i].Score, "rank %d", i)
	}
}

func TestRankModes_MissingCorePenalized(t *testing.T) {
	chord, err := ParseChordSymbol("Cmaj7")
	require.NoError(t, err)
	root, err := chord.RootPitchClass()
	require.NoError(t, err)
	tones := DeriveRequiredTones(chord)

	ranked := RankModes(root, tones, nil)

	// Ionian and Lydian hold the full maj7 core; Phrygian misses the
	// natural third and major seventh and must rank below both.
	pos := make(map[string]int, len(ranked))
	for i, r := range ranked {
		pos[r.Mode.Name+"/"+string(r.Mode.Family)] = i
	}
	assert.Less(t, pos["Ionian (major)/major"], pos["Phrygian/major"])
	assert.Less(t, pos["Lydian/major"], pos["Phrygian/major"])
	assert.Equal(t, 0, pos["Ionian (major)/major"])
}

func TestScoreMode_MelodyScoreBounds(t *testing.T) {
	chord, err := ParseChordSymbol("C")
	require.NoError(t, err)
	root, err := chord.RootPitchClass()
	require.NoError(t, err)
	tones := DeriveRequiredTones(chord)

	melody := mustPCs(t, "C", "D", "E", "F", "G", "A", "B")
	for _, r := range RankModes(root, tones, melody) {
		assert.GreaterOrEqual(t, r.MelodyScore, 0.0)
		// Sum of all weights is (n+1)/2.
		assert.LessOrEqual(t, r.MelodyScore, 4.0+1e-9)
		assert.Len(t, r.MelodyHits, len(melody))
	}
}
