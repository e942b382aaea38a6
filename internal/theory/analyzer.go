package theory

import (
	"github.com/Conceptual-Machines/harmonia-api/internal/logger"
)

// AnalysisResult aggregates everything one analysis call produces.
// Produced fresh per call; the only shared state behind it is the
// read-only mode catalog.
type AnalysisResult struct {
	GlobalKey      string            `json:"global_key"`
	Chord          *ChordDescriptor  `json:"chord"`
	RequiredTones  RequiredTones     `json:"required_tones"`
	DegreeInKey    int               `json:"degree_in_key"`
	Roman          string            `json:"roman"`
	KeyMode        string            `json:"key_mode"`
	TritoneSub     string            `json:"tritone_sub,omitempty"`
	ModalBorrowing string            `json:"modal_borrowing,omitempty"`
	Best           MatchResult       `json:"best"`
	Alternatives   []MatchResult     `json:"alternatives"`
	MelodyNotes    []string          `json:"melody_notes"`
	MelodyDegrees  []string          `json:"melody_degrees"`
	Functions      [][]FunctionLabel `json:"functions"`
}

// Analyzer runs chord/melody analysis against the 21-mode catalog. The
// zero value is not usable; construct with NewAnalyzer. DefaultKey is
// used when a call passes an empty global key.
type Analyzer struct {
	defaultKey string
}

// NewAnalyzer returns an analyzer with the given default global major
// key (e.g. "C" or "G").
func NewAnalyzer(defaultKey string) *Analyzer {
	if defaultKey == "" {
		defaultKey = "C"
	}
	return &Analyzer{defaultKey: defaultKey}
}

// DefaultKey reports the analyzer's fallback global key.
func (a *Analyzer) DefaultKey() string {
	return a.defaultKey
}

// Analyze parses the chord symbol, resolves key context, scores the
// 21-mode catalog against the chord's required tones and the melody,
// and classifies each melody note. It is a pure function of its inputs
// plus the static catalog: identical inputs yield identical results.
// Any unrecognized note aborts the whole call; no partial result is
// ever returned.
func (a *Analyzer) Analyze(chordSymbol string, melodyNotes []string, globalKey string) (*AnalysisResult, error) {
	if globalKey == "" {
		globalKey = a.defaultKey
	}

	chord, err := ParseChordSymbol(chordSymbol)
	if err != nil {
		return nil, err
	}
	rootPC, err := chord.RootPitchClass()
	if err != nil {
		return nil, err
	}
	keyPC, err := NoteToPitchClass(globalKey)
	if err != nil {
		return nil, err
	}

	melodyPCs := make([]PitchClass, len(melodyNotes))
	normalized := make([]string, len(melodyNotes))
	for i, name := range melodyNotes {
		pc, err := NoteToPitchClass(name)
		if err != nil {
			return nil, err
		}
		melodyPCs[i] = pc
		normalized[i] = NormalizeNote(name)
	}

	degree := DegreeInMajorKey(rootPC, keyPC)
	roman := RomanForDegree(degree, chord.Quality)
	tones := DeriveRequiredTones(chord)

	logger.Debugf(3, "parsed chord", logger.Fields{
		"symbol":  chord.Symbol,
		"root":    chord.Root,
		"quality": string(chord.Quality),
		"degree":  degree,
		"roman":   roman,
	})
	logger.Debugf(4, "required tones", logger.Fields{
		"root_pc": int(rootPC),
		"core":    tones.Core,
		"extra":   tones.Extra,
	})

	ranked := RankModes(rootPC, tones, melodyPCs)
	best := ranked[0]
	alternatives := ranked[1:]
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}

	for k := 0; k < len(ranked) && k < 10; k++ {
		logger.Debugf(5, "mode rank", logger.Fields{
			"rank":          k + 1,
			"mode":          ranked[k].Mode.Name,
			"family":        string(ranked[k].Mode.Family),
			"score":         ranked[k].Score,
			"missing_core":  len(ranked[k].MissingCore),
			"missing_extra": len(ranked[k].MissingExtra),
		})
	}

	degrees := make([]string, len(melodyPCs))
	for i, pc := range melodyPCs {
		degrees[i] = DegreeLabel(pc, rootPC)
	}

	return &AnalysisResult{
		GlobalKey:      NormalizeNote(globalKey),
		Chord:          chord,
		RequiredTones:  tones,
		DegreeInKey:    degree,
		Roman:          roman,
		KeyMode:        ModeForDegree(degree),
		TritoneSub:     DetectTritoneSub(chord, keyPC),
		ModalBorrowing: DetectModalBorrowing(degree, chord),
		Best:           best,
		Alternatives:   alternatives,
		MelodyNotes:    normalized,
		MelodyDegrees:  degrees,
		Functions:      ClassifyMelody(melodyPCs, rootPC, chord.Quality),
	}, nil
}
