package theory

// FunctionLabel is a heuristic functional role of a melody note relative
// to the current chord. A note may carry several labels.
type FunctionLabel string

const (
	LabelChordTone            FunctionLabel = "chord_tone"
	LabelGuideTone            FunctionLabel = "guide_tone"
	LabelScaleLine            FunctionLabel = "scale_line"
	LabelUpperNeighbor        FunctionLabel = "upper_neighbor"
	LabelLowerNeighbor        FunctionLabel = "lower_neighbor"
	LabelPassingTone          FunctionLabel = "passing_tone"
	LabelChromaticPassingTone FunctionLabel = "chromatic_passing_tone"
)

// chordToneOffsets selects the chord-tone set by quality: triad plus the
// seventh that quality implies. Guide tones are always the third and
// seventh.
func chordToneOffsets(quality ChordQuality) (chord []int, guide []int) {
	switch quality {
	case QualityMinor:
		return []int{0, 3, 7, 10}, []int{3, 10}
	case QualityDominant:
		return []int{0, 4, 7, 10}, []int{4, 10}
	default:
		return []int{0, 4, 7, 11}, []int{4, 11}
	}
}

func isStep(d int) bool {
	return d == 1 || d == 2 || d == 10 || d == 11
}

func isSemitoneStep(d int) bool {
	return d == 1 || d == 11
}

// ClassifyMelody labels each melody note with zero or more functional
// tags using only local 3-note windows. Chromatic vs. plain passing
// tones are distinguished by raw step size (either hop a semitone means
// chromatic); there is no persistent scale context here.
func ClassifyMelody(melody []PitchClass, root PitchClass, quality ChordQuality) [][]FunctionLabel {
	n := len(melody)
	labels := make([][]FunctionLabel, n)

	chordOffsets, guideOffsets := chordToneOffsets(quality)
	chordTones := make(map[PitchClass]bool, len(chordOffsets))
	for _, off := range chordOffsets {
		chordTones[root.AddSemitones(off)] = true
	}
	guideTones := make(map[PitchClass]bool, len(guideOffsets))
	for _, off := range guideOffsets {
		guideTones[root.AddSemitones(off)] = true
	}

	for i, pc := range melody {
		if guideTones[pc] {
			labels[i] = append(labels[i], LabelGuideTone)
		}
		if chordTones[pc] {
			labels[i] = append(labels[i], LabelChordTone)
		}
	}

	// Scale lines: both hops move by the same signed step.
	for i := 1; i < n-1; i++ {
		a, b, c := melody[i-1], melody[i], melody[i+1]
		d1 := IntervalBetween(a, b)
		d2 := IntervalBetween(b, c)
		if isStep(d1) && d2 == d1 {
			labels[i-1] = append(labels[i-1], LabelScaleLine)
			labels[i] = append(labels[i], LabelScaleLine)
			labels[i+1] = append(labels[i+1], LabelScaleLine)
		}
	}

	// Neighbors: depart a chord tone by a step and return to it.
	for i := 1; i < n-1; i++ {
		a, b, c := melody[i-1], melody[i], melody[i+1]
		if a != c || !chordTones[a] {
			continue
		}
		switch step := IntervalBetween(a, b); {
		case step == 1 || step == 2:
			labels[i] = append(labels[i], LabelUpperNeighbor)
		case step == 10 || step == 11:
			labels[i] = append(labels[i], LabelLowerNeighbor)
		}
	}

	// Passing tones: a non-chord tone bridging two chord tones by steps.
	for i := 1; i < n-1; i++ {
		a, b, c := melody[i-1], melody[i], melody[i+1]
		if !chordTones[a] || !chordTones[c] || chordTones[b] {
			continue
		}
		up := IntervalBetween(a, b)
		down := IntervalBetween(b, c)
		if !isStep(up) || !isStep(down) {
			continue
		}
		if isSemitoneStep(up) || isSemitoneStep(down) {
			labels[i] = append(labels[i], LabelChromaticPassingTone)
		} else {
			labels[i] = append(labels[i], LabelPassingTone)
		}
	}

	return labels
}
