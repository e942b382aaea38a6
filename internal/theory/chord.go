package theory

import "strings"

// ChordQuality classifies a chord symbol's basic quality.
type ChordQuality string

const (
	QualityMajor    ChordQuality = "major"
	QualityMinor    ChordQuality = "minor"
	QualityDominant ChordQuality = "dominant"
)

// Alteration and extension tokens are checked in a fixed order so parse
// results are deterministic.
var (
	alterationTokens = []string{"b9", "#9", "b13", "#11", "b5", "#5"}
	extensionTokens  = []string{"13", "11", "9", "7"} // longest first
)

// ChordDescriptor is the structured form of a chord symbol. Immutable
// once parsed.
type ChordDescriptor struct {
	Symbol      string       `json:"symbol"`
	Root        string       `json:"root"`
	Quality     ChordQuality `json:"quality"`
	Alterations []string     `json:"alterations"`
	Extensions  []string     `json:"extensions"`
}

// RequiredTones are the semitone offsets a chord demands from a mode:
// Core is the identity (triad plus seventh where implied), Extra the
// extension/alteration colors. Both are deduplicated, first-seen order.
type RequiredTones struct {
	Core  []int `json:"core"`
	Extra []int `json:"extra"`
}

// ParseChordSymbol parses a chord symbol like "G7", "Ebm7" or "D7b9b13"
// into a descriptor. This is a deliberate best-effort heuristic, not a
// grammar: quality and tokens are matched by substring containment with
// fixed precedence, so unusual symbol orderings may misclassify.
func ParseChordSymbol(symbol string) (*ChordDescriptor, error) {
	s := strings.TrimSpace(symbol)
	s = strings.ReplaceAll(s, "♭", "b")
	s = strings.ReplaceAll(s, "♯", "#")
	if s == "" {
		return nil, ErrEmptyChord
	}

	var root, rest string
	if len(s) >= 2 && (s[1] == 'b' || s[1] == '#') {
		root, rest = s[:2], s[2:]
	} else {
		root, rest = s[:1], s[1:]
	}
	root = NormalizeNote(root)
	if _, err := NoteToPitchClass(root); err != nil {
		return nil, err
	}

	r := strings.ToLower(rest)

	quality := QualityMajor
	explicitMajor := strings.Contains(r, "maj") || strings.Contains(r, "ma7") || strings.Contains(r, "∆")
	explicitMinor := !explicitMajor && (strings.HasPrefix(r, "m") || strings.Contains(r, "min"))
	switch {
	case explicitMajor:
		quality = QualityMajor
	case explicitMinor:
		quality = QualityMinor
	case strings.Contains(r, "7") || strings.Contains(r, "9") ||
		strings.Contains(r, "11") || strings.Contains(r, "13"):
		quality = QualityDominant
	}

	var alts []string
	for _, a := range alterationTokens {
		if strings.Contains(r, a) {
			alts = append(alts, a)
		}
	}

	var exts []string
	for _, e := range extensionTokens {
		if strings.Contains(r, e) {
			exts = append(exts, e)
		}
	}

	return &ChordDescriptor{
		Symbol:      symbol,
		Root:        root,
		Quality:     quality,
		Alterations: alts,
		Extensions:  exts,
	}, nil
}

// RootPitchClass resolves the parsed root to a pitch class.
func (c *ChordDescriptor) RootPitchClass() (PitchClass, error) {
	return NoteToPitchClass(c.Root)
}

func (c *ChordDescriptor) hasExtension(e string) bool {
	for _, x := range c.Extensions {
		if x == e {
			return true
		}
	}
	return false
}

func (c *ChordDescriptor) hasAlteration(a string) bool {
	for _, x := range c.Alterations {
		if x == a {
			return true
		}
	}
	return false
}

// DeriveRequiredTones maps the descriptor to semitone-offset sets per
// quality. Dominant always implies the flat seventh; major and minor
// sevenths require an explicit marker or extension in the symbol text.
func DeriveRequiredTones(c *ChordDescriptor) RequiredTones {
	lower := strings.ToLower(c.Symbol)

	var core []int
	switch c.Quality {
	case QualityMajor:
		core = []int{0, 4, 7}
		if c.hasExtension("7") || strings.Contains(lower, "maj7") || strings.Contains(lower, "ma7") {
			core = append(core, 11)
		}
	case QualityMinor:
		core = []int{0, 3, 7}
		if c.hasExtension("7") || strings.Contains(lower, "m7") {
			core = append(core, 10)
		}
	default: // dominant
		core = []int{0, 4, 7, 10}
	}

	var extra []int
	if c.hasExtension("9") {
		extra = append(extra, 2)
	}
	if c.hasExtension("11") {
		extra = append(extra, 5)
	}
	if c.hasExtension("13") {
		extra = append(extra, 9)
	}
	if c.hasAlteration("b9") {
		extra = append(extra, 1)
	}
	if c.hasAlteration("#9") {
		extra = append(extra, 3)
	}
	if c.hasAlteration("#11") {
		extra = append(extra, 6)
	}
	if c.hasAlteration("b13") {
		extra = append(extra, 8)
	}
	if c.hasAlteration("b5") {
		extra = append(extra, 6)
	}
	if c.hasAlteration("#5") {
		extra = append(extra, 8)
	}

	return RequiredTones{Core: uniqInts(core), Extra: uniqInts(extra)}
}

func uniqInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	out := xs[:0:0]
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

// Named chord construction by stacked-third intervals. The tuple tables
// mirror both directions so a built chord can be named back and an
// unfamiliar interval stack degrades to "unknown chord".

var triadIntervals = map[string][2]int{
	"major":      {4, 3},
	"minor":      {3, 4},
	"diminished": {3, 3},
	"augmented":  {4, 4},
}

var triadNames = map[[2]int]string{
	{4, 3}: "major",
	{3, 4}: "minor",
	{3, 3}: "diminished",
	{4, 4}: "augmented",
}

var seventhIntervals = map[string][3]int{
	"dominant":        {4, 3, 3},
	"major":           {4, 3, 4},
	"minor":           {3, 4, 3},
	"half-diminished": {3, 3, 4},
	"diminished":      {3, 3, 3},
	"minor-major":     {3, 4, 4},
	"augmented-major": {4, 4, 3},
}

var seventhNames = map[[3]int]string{
	{4, 3, 3}: "dominant",
	{4, 3, 4}: "major",
	{3, 4, 3}: "minor",
	{3, 3, 4}: "half-diminished",
	{3, 3, 3}: "diminished",
	{3, 4, 4}: "minor-major",
	{4, 4, 3}: "augmented-major",
}

// UnknownChordName is returned when an interval stack matches no entry.
const UnknownChordName = "unknown chord"

// BuildTriad stacks a named triad quality on the root.
func BuildTriad(root PitchClass, quality string) ([]PitchClass, error) {
	ivs, ok := triadIntervals[quality]
	if !ok {
		return nil, &InvalidQualityError{Quality: quality}
	}
	return stack(root, ivs[:]), nil
}

// BuildSeventhChord stacks a named seventh-chord quality on the root.
func BuildSeventhChord(root PitchClass, quality string) ([]PitchClass, error) {
	ivs, ok := seventhIntervals[quality]
	if !ok {
		return nil, &InvalidQualityError{Quality: quality}
	}
	return stack(root, ivs[:]), nil
}

// NameTriad names three stacked pitch classes by their successive
// intervals.
func NameTriad(pcs [3]PitchClass) string {
	key := [2]int{
		IntervalBetween(pcs[0], pcs[1]),
		IntervalBetween(pcs[1], pcs[2]),
	}
	if name, ok := triadNames[key]; ok {
		return name
	}
	return UnknownChordName
}

// NameSeventhChord names four stacked pitch classes by their successive
// intervals.
func NameSeventhChord(pcs [4]PitchClass) string {
	key := [3]int{
		IntervalBetween(pcs[0], pcs[1]),
		IntervalBetween(pcs[1], pcs[2]),
		IntervalBetween(pcs[2], pcs[3]),
	}
	if name, ok := seventhNames[key]; ok {
		return name
	}
	return UnknownChordName
}

func stack(root PitchClass, intervals []int) []PitchClass {
	pcs := make([]PitchClass, 0, len(intervals)+1)
	pcs = append(pcs, root)
	cur := root
	for _, iv := range intervals {
		cur = cur.AddSemitones(iv)
		pcs = append(pcs, cur)
	}
	return pcs
}
