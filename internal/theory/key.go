package theory

var romanNumerals = [8]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}

var churchModeNames = [8]string{
	"Non-diatonic",
	"Ionian (major)",
	"Dorian",
	"Phrygian",
	"Lydian",
	"Mixolydian",
	"Aeolian (natural minor)",
	"Locrian",
}

// DegreeInMajorKey returns the 1-based scale degree of root within the
// globalKey major scale, or 0 when the root is not diatonic.
func DegreeInMajorKey(root PitchClass, globalKey PitchClass) int {
	for i, pc := range MajorScale(globalKey) {
		if pc == root {
			return i + 1
		}
	}
	return 0
}

// RomanForDegree renders a scale degree as a roman numeral, lower-cased
// for minor quality. Dominant renders upper-case like major; secondary
// dominant function is not distinguished here.
func RomanForDegree(degree int, quality ChordQuality) string {
	if degree < 1 || degree > 7 {
		return "N/A"
	}
	base := romanNumerals[degree]
	if quality == QualityMinor {
		return toLowerRoman(base)
	}
	return base
}

func toLowerRoman(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] += 'a' - 'A'
	}
	return string(b)
}

// ModeForDegree names the church mode associated with a diatonic degree.
func ModeForDegree(degree int) string {
	if degree < 1 || degree > 7 {
		return churchModeNames[0]
	}
	return churchModeNames[degree]
}

// DetectTritoneSub flags the conservative tritone-substitution case: a
// dominant chord rooted a semitone above the key tonic (bII7).
func DetectTritoneSub(chord *ChordDescriptor, globalKey PitchClass) string {
	if chord.Quality != QualityDominant {
		return ""
	}
	root, err := chord.RootPitchClass()
	if err != nil {
		return ""
	}
	if root == globalKey.AddSemitones(1) {
		return "Tritone substitution of V7"
	}
	return ""
}

// DetectModalBorrowing flags the minor iv chord in a major key.
func DetectModalBorrowing(degree int, chord *ChordDescriptor) string {
	if degree == 4 && chord.Quality == QualityMinor {
		return "Borrowed from parallel minor (iv)"
	}
	return ""
}
