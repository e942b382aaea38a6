package theory

import "strings"

// PitchClass is a note identity modulo octave, 0..11 (C = 0).
type PitchClass int

// Semitones is the number of pitch classes in the chromatic scale.
const Semitones = 12

// noteToPC maps normalized note names to pitch classes. Enharmonic
// spellings collapse onto the same class, including the double
// enharmonics B#/C, Cb/B, E#/F and Fb/E.
var noteToPC = map[string]PitchClass{
	"C": 0, "B#": 0,
	"C#": 1, "Db": 1,
	"D":  2,
	"D#": 3, "Eb": 3,
	"E": 4, "Fb": 4,
	"F": 5, "E#": 5,
	"F#": 6, "Gb": 6,
	"G":  7,
	"G#": 8, "Ab": 8,
	"A":  9,
	"A#": 10, "Bb": 10,
	"B": 11, "Cb": 11,
}

// pcToName renders pitch classes with the customary sharp-biased
// spelling (Eb, Ab and Bb keep their flat names).
var pcToName = [Semitones]string{
	"C", "C#", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B",
}

// degreeLabels maps a semitone offset from a chord root to its
// scale-degree label.
var degreeLabels = [Semitones]string{
	"1", "b2", "2", "b3", "3", "4", "b5", "5", "#5", "6", "b7", "7",
}

// NormalizeNote trims whitespace, maps unicode accidentals to ASCII and
// upper-cases the letter while preserving the accidental's case.
// Normalizing an already-normalized name is a no-op.
func NormalizeNote(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "♭", "b")
	s = strings.ReplaceAll(s, "♯", "#")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// NoteToPitchClass resolves a note name to its pitch class. The name is
// normalized before lookup. Unrecognized names yield UnknownNoteError.
func NoteToPitchClass(name string) (PitchClass, error) {
	n := NormalizeNote(name)
	pc, ok := noteToPC[n]
	if !ok {
		return 0, &UnknownNoteError{Name: n}
	}
	return pc, nil
}

// Name returns the sharp-biased spelling of the pitch class.
func (pc PitchClass) Name() string {
	return pcToName[((pc%Semitones)+Semitones)%Semitones]
}

// AddSemitones moves the pitch class up by n semitones (n may be
// negative), wrapping modulo 12.
func (pc PitchClass) AddSemitones(n int) PitchClass {
	v := (int(pc) + n) % Semitones
	if v < 0 {
		v += Semitones
	}
	return PitchClass(v)
}

// IntervalBetween returns the ascending semitone distance from pc to
// other, in 0..11.
func IntervalBetween(pc, other PitchClass) int {
	d := (int(other) - int(pc)) % Semitones
	if d < 0 {
		d += Semitones
	}
	return d
}

// DegreeLabel labels a pitch class relative to a chord root ("1", "b3",
// "#5", "b7", ...).
func DegreeLabel(pc, root PitchClass) string {
	return degreeLabels[IntervalBetween(root, pc)]
}
