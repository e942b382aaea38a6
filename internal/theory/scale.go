package theory

// Interval patterns as cumulative semitone offsets from the tonic.
var (
	// MajorIntervals is the 7-note major scale pattern.
	MajorIntervals = []int{0, 2, 4, 5, 7, 9, 11}

	naturalMinorIntervals  = []int{0, 2, 3, 5, 7, 8, 10}
	harmonicMinorIntervals = []int{0, 2, 3, 5, 7, 8, 11}
	melodicMinorIntervals  = []int{0, 2, 3, 5, 7, 9, 11}
)

// BuildScale materializes an interval pattern from a root pitch class.
func BuildScale(root PitchClass, intervals []int) []PitchClass {
	pcs := make([]PitchClass, len(intervals))
	for i, iv := range intervals {
		pcs[i] = root.AddSemitones(iv)
	}
	return pcs
}

// MajorScale returns the 7 pitch classes of the major scale on tonic.
func MajorScale(tonic PitchClass) []PitchClass {
	return BuildScale(tonic, MajorIntervals)
}

// MajorScaleOf resolves a tonic note name and builds its major scale.
func MajorScaleOf(tonic string) ([]PitchClass, error) {
	pc, err := NoteToPitchClass(tonic)
	if err != nil {
		return nil, err
	}
	return MajorScale(pc), nil
}

// NaturalMinorScale returns the natural minor (Aeolian) scale on tonic.
func NaturalMinorScale(tonic PitchClass) []PitchClass {
	return BuildScale(tonic, naturalMinorIntervals)
}

// HarmonicMinorScale returns the harmonic minor scale on tonic.
func HarmonicMinorScale(tonic PitchClass) []PitchClass {
	return BuildScale(tonic, harmonicMinorIntervals)
}

// MelodicMinorScale returns the ascending melodic minor scale on tonic.
func MelodicMinorScale(tonic PitchClass) []PitchClass {
	return BuildScale(tonic, melodicMinorIntervals)
}

// ScaleNames renders a scale as note names.
func ScaleNames(pcs []PitchClass) []string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pc.Name()
	}
	return names
}
