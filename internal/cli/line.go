// Package cli parses interactive analyzer input lines and renders
// analysis results as human-readable text.
package cli

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/harmonia-api/internal/theory"
)

// MalformedInputError reports an input line that does not follow the
// "<chord>: note1, note2, ..." shape.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Reason)
}

// ParseLine splits an input line of the form "<chord>: n1, n2 ..." into
// the chord symbol and the melody note tokens. Notes may be separated
// by commas or bare whitespace. Chord and melody segments must both be
// non-empty.
func ParseLine(line string) (chord string, notes []string, err error) {
	if !strings.Contains(line, ":") {
		return "", nil, &MalformedInputError{
			Reason: `input must contain ':' like  D7b9b13: F#, A, C, Eb, Bb`,
		}
	}

	parts := strings.SplitN(line, ":", 2)
	chord = strings.TrimSpace(parts[0])
	if chord == "" {
		return "", nil, &MalformedInputError{Reason: "missing chord before ':'"}
	}

	melodyRaw := strings.TrimSpace(parts[1])
	if melodyRaw == "" {
		return "", nil, &MalformedInputError{Reason: "missing melody notes after ':'"}
	}

	var tokens []string
	if strings.Contains(melodyRaw, ",") {
		tokens = strings.Split(melodyRaw, ",")
	} else {
		tokens = strings.Fields(melodyRaw)
	}

	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t != "" {
			notes = append(notes, t)
		}
	}
	if len(notes) == 0 {
		return "", nil, &MalformedInputError{Reason: "no valid note names parsed"}
	}

	return chord, notes, nil
}

// Render formats an analysis result the way the interactive analyzer
// prints it: chord summary, key context, best mode, alternatives and
// per-note labels.
func Render(w *strings.Builder, r *theory.AnalysisResult) {
	fmt.Fprintln(w, "====================================")
	fmt.Fprintf(w, "Chord: %s (root %s, quality %s)\n", r.Chord.Symbol, r.Chord.Root, r.Chord.Quality)
	fmt.Fprintf(w, "Global key: %s major\n", r.GlobalKey)
	fmt.Fprintf(w, "Roman numeral (by root in global key): %s (degree %d)\n", r.Roman, r.DegreeInKey)
	if r.TritoneSub != "" {
		fmt.Fprintf(w, "Note: %s\n", r.TritoneSub)
	}
	if r.ModalBorrowing != "" {
		fmt.Fprintf(w, "Note: %s\n", r.ModalBorrowing)
	}

	fmt.Fprintln(w, "\nBest mode match (rooted on chord root):")
	fmt.Fprintf(w, "  %s :: %s\n", r.Best.Mode.Family, r.Best.Mode.Name)
	fmt.Fprintf(w, "  score=%.3f (melody_score=%.3f)\n", r.Best.Score, r.Best.MelodyScore)
	if len(r.Best.MissingCore) > 0 {
		fmt.Fprintf(w, "  WARNING missing core chord tones: %s\n", pcNames(r.Best.MissingCore))
	}
	if len(r.Best.MissingExtra) > 0 {
		fmt.Fprintf(w, "  missing extension/alteration tones: %s\n", pcNames(r.Best.MissingExtra))
	}

	fmt.Fprintln(w, "\nAlternatives:")
	for _, a := range r.Alternatives {
		fmt.Fprintf(w, "  - %s :: %s  score=%.3f  melody_score=%.3f  missing_core=%d missing_extra=%d\n",
			a.Mode.Family, a.Mode.Name, a.Score, a.MelodyScore,
			len(a.MissingCore), len(a.MissingExtra))
	}

	fmt.Fprintln(w, "\nMelody numeral labels (relative to chord root):")
	for i, note := range r.MelodyNotes {
		fmt.Fprintf(w, "  [%d] %-3s -> %s\n", i, note, r.MelodyDegrees[i])
	}

	fmt.Fprintln(w, "\nPer-note function tags:")
	for i, labels := range r.Functions {
		if len(labels) == 0 {
			continue
		}
		fmt.Fprintf(w, "  index %d, note %s: %s\n", i, r.MelodyNotes[i], joinLabels(labels))
	}
	fmt.Fprintln(w, "====================================")
}

func pcNames(pcs []theory.PitchClass) string {
	names := make([]string, len(pcs))
	for i, pc := range pcs {
		names[i] = pc.Name()
	}
	return strings.Join(names, ", ")
}

func joinLabels(labels []theory.FunctionLabel) string {
	seen := make(map[theory.FunctionLabel]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, string(l))
		}
	}
	return strings.Join(out, ", ")
}
