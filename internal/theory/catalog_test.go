package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeCatalog_Shape(t *testing.T) {
	catalog := ModeCatalog()
	require.Len(t, catalog, 21)

	perFamily := map[ModeFamily]int{}
	for _, m := range catalog {
		perFamily[m.Family]++
	}
	assert.Equal(t, 7, perFamily[FamilyMajor])
	assert.Equal(t, 7, perFamily[FamilyMelodicMinor])
	assert.Equal(t, 7, perFamily[FamilyHarmonicMinor])
}

func TestModeCatalog_IntervalInvariants(t *testing.T) {
	for _, m := range ModeCatalog() {
		require.Len(t, m.Intervals, 7, "mode %s", m.Name)
		assert.Equal(t, 0, m.Intervals[0], "mode %s must start at the root", m.Name)
		for i := 1; i < len(m.Intervals); i++ {
			assert.Greater(t, m.Intervals[i], m.Intervals[i-1], "mode %s intervals must ascend", m.Name)
		}
		assert.Less(t, m.Intervals[6], Semitones, "mode %s", m.Name)
	}
}

func TestModeCatalog_RanksFollowListingOrder(t *testing.T) {
	catalog := ModeCatalog()
	for i, m := range catalog {
		assert.Equal(t, i/7, m.FamilyRank, "mode %s", m.Name)
		assert.Equal(t, i%7, m.ModeRank, "mode %s", m.Name)
	}
}

func TestModeCatalog_KnownPatterns(t *testing.T) {
	byName := map[string][]int{}
	for _, m := range ModeCatalog() {
		byName[m.Name] = m.Intervals
	}

	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, byName["Ionian (major)"])
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 10}, byName["Mixolydian"])
	assert.Equal(t, []int{0, 1, 3, 4, 6, 8, 10}, byName["Altered (super locrian)"])
	assert.Equal(t, []int{0, 1, 4, 5, 7, 8, 10}, byName["Phrygian dominant"])
}

func TestModePitchClasses(t *testing.T) {
	var mixolydian ModeDefinition
	for _, m := range ModeCatalog() {
		if m.Name == "Mixolydian" && m.Family == FamilyMajor {
			mixolydian = m
		}
	}
	require.NotEmpty(t, mixolydian.Name)

	g := PitchClass(7)
	got := mixolydian.PitchClasses(g)
	assert.Equal(t, mustPCs(t, "G", "A", "B", "C", "D", "E", "F"), got)
}
