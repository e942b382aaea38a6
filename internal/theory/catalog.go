package theory

// ModeFamily groups the 21-mode catalog by parent scale.
type ModeFamily string

const (
	FamilyMajor         ModeFamily = "major"
	FamilyMelodicMinor  ModeFamily = "melodic_minor"
	FamilyHarmonicMinor ModeFamily = "harmonic_minor"
)

// ModeDefinition is one entry of the 21-mode catalog: a 7-note scale
// pattern rooted at offset 0, tagged with its family and the tie-break
// ranks used when scores tie exactly (smaller rank preferred).
type ModeDefinition struct {
	Family     ModeFamily `json:"family"`
	FamilyRank int        `json:"family_rank"`
	ModeRank   int        `json:"mode_rank"`
	Name       string     `json:"name"`
	Intervals  []int      `json:"intervals"`
}

// Catalog order matters: major family first, then melodic minor, then
// harmonic minor, each in degree order. The ranking tie-break leans on
// this ordering.
var modeCatalog = buildCatalog()

type namedPattern struct {
	name      string
	intervals []int
}

func buildCatalog() []ModeDefinition {
	families := []struct {
		family ModeFamily
		modes  []namedPattern
	}{
		{FamilyMajor, []namedPattern{
			{"Ionian (major)", []int{0, 2, 4, 5, 7, 9, 11}},
			{"Dorian", []int{0, 2, 3, 5, 7, 9, 10}},
			{"Phrygian", []int{0, 1, 3, 5, 7, 8, 10}},
			{"Lydian", []int{0, 2, 4, 6, 7, 9, 11}},
			{"Mixolydian", []int{0, 2, 4, 5, 7, 9, 10}},
			{"Aeolian (natural minor)", []int{0, 2, 3, 5, 7, 8, 10}},
			{"Locrian", []int{0, 1, 3, 5, 6, 8, 10}},
		}},
		{FamilyMelodicMinor, []namedPattern{
			{"Melodic minor", []int{0, 2, 3, 5, 7, 9, 11}},
			{"Dorian b2", []int{0, 1, 3, 5, 7, 9, 10}},
			{"Lydian augmented", []int{0, 2, 4, 6, 8, 9, 11}},
			{"Lydian dominant", []int{0, 2, 4, 6, 7, 9, 10}},
			{"Mixolydian b6", []int{0, 2, 4, 5, 7, 8, 10}},
			{"Locrian #2", []int{0, 2, 3, 5, 6, 8, 10}},
			{"Altered (super locrian)", []int{0, 1, 3, 4, 6, 8, 10}},
		}},
		{FamilyHarmonicMinor, []namedPattern{
			{"Harmonic minor", []int{0, 2, 3, 5, 7, 8, 11}},
			{"Locrian #6", []int{0, 1, 3, 5, 6, 9, 10}},
			{"Ionian #5", []int{0, 2, 4, 5, 8, 9, 11}},
			{"Dorian #4", []int{0, 2, 3, 6, 7, 9, 10}},
			{"Phrygian dominant", []int{0, 1, 4, 5, 7, 8, 10}},
			{"Lydian #2", []int{0, 3, 4, 6, 7, 9, 11}},
			{"Altered diminished", []int{0, 1, 3, 4, 6, 7, 9}},
		}},
	}

	catalog := make([]ModeDefinition, 0, 21)
	for familyRank, fam := range families {
		for modeRank, m := range fam.modes {
			catalog = append(catalog, ModeDefinition{
				Family:     fam.family,
				FamilyRank: familyRank,
				ModeRank:   modeRank,
				Name:       m.name,
				Intervals:  m.intervals,
			})
		}
	}
	return catalog
}

// ModeCatalog returns the fixed 21-entry mode catalog. The slice is
// shared and read-only; callers must not mutate it.
func ModeCatalog() []ModeDefinition {
	return modeCatalog
}

// PitchClasses materializes the mode on the given root.
func (m ModeDefinition) PitchClasses(root PitchClass) []PitchClass {
	return BuildScale(root, m.Intervals)
}
