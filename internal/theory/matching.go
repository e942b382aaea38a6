package theory

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Scoring weights. Missing a core tone is penalized far more heavily
// than missing an extension: triad/seventh identity is structural,
// extensions are color.
const (
	coreHitWeight    = 4.0
	coreMissPenalty  = 10.0
	extraHitWeight   = 1.5
	extraMissPenalty = 2.5
	maxAlternatives  = 5
)

// MatchResult scores one catalog mode against a chord's required tones
// and a melody. MelodyHits parallels the melody input.
type MatchResult struct {
	Mode         ModeDefinition `json:"mode"`
	Score        float64        `json:"score"`
	MissingCore  []PitchClass   `json:"missing_core"`
	MissingExtra []PitchClass   `json:"missing_extra"`
	MelodyScore  float64        `json:"melody_score"`
	MelodyHits   []bool         `json:"melody_hits"`
}

// melodyWeights builds the position-decay weight vector (n-i)/n: earlier
// notes count more, decaying linearly to 1/n at the last position.
func melodyWeights(n int) []float64 {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{1}
	}
	w := make([]float64, n)
	floats.Span(w, float64(n), 1)
	floats.Scale(1/float64(n), w)
	return w
}

func scoreMode(root PitchClass, tones RequiredTones, melody []PitchClass, mode ModeDefinition) MatchResult {
	inMode := make(map[PitchClass]bool, len(mode.Intervals))
	for _, pc := range mode.PitchClasses(root) {
		inMode[pc] = true
	}

	corePCs := BuildScale(root, tones.Core)
	extraPCs := BuildScale(root, tones.Extra)

	var missingCore, missingExtra []PitchClass
	for _, pc := range corePCs {
		if !inMode[pc] {
			missingCore = append(missingCore, pc)
		}
	}
	for _, pc := range extraPCs {
		if !inMode[pc] {
			missingExtra = append(missingExtra, pc)
		}
	}

	weights := melodyWeights(len(melody))
	hits := make([]bool, len(melody))
	melodyScore := 0.0
	for i, pc := range melody {
		if inMode[pc] {
			hits[i] = true
			melodyScore += weights[i]
		}
	}

	score := coreHitWeight*float64(len(corePCs)-len(missingCore)) -
		coreMissPenalty*float64(len(missingCore)) +
		extraHitWeight*float64(len(extraPCs)-len(missingExtra)) -
		extraMissPenalty*float64(len(missingExtra)) +
		melodyScore

	return MatchResult{
		Mode:         mode,
		Score:        score,
		MissingCore:  missingCore,
		MissingExtra: missingExtra,
		MelodyScore:  melodyScore,
		MelodyHits:   hits,
	}
}

// RankModes scores every catalog mode against the chord's required
// tones and the melody, best first. Ties break toward the major family,
// then toward earlier-listed modes within a family, so output is
// deterministic even for an empty melody.
func RankModes(root PitchClass, tones RequiredTones, melody []PitchClass) []MatchResult {
	catalog := ModeCatalog()
	ranked := make([]MatchResult, 0, len(catalog))
	for _, mode := range catalog {
		ranked = append(ranked, scoreMode(root, tones, melody, mode))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Mode.FamilyRank != b.Mode.FamilyRank {
			return a.Mode.FamilyRank < b.Mode.FamilyRank
		}
		return a.Mode.ModeRank < b.Mode.ModeRank
	})
	return ranked
}
