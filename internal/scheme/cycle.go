// Package scheme finds and rewrites the active color-scheme reference in a
// YAML terminal configuration.
//
// The active scheme is selected by a single line of the form
//
//	colors: *dracula
//
// where "dracula" names an anchor declared elsewhere in the same file.
// [Cycle] advances that line to the next declared anchor, wrapping after the
// last one, and leaves every other line untouched.
package scheme

import (
	"fmt"
	"regexp"
)

// DefaultKey is the field marker that selects the active color scheme.
const DefaultKey = "colors"

// Reference is the line currently selecting a color scheme.
type Reference struct {
	// Line is the zero-based index into the document's lines.
	Line int

	// Anchor is the anchor name the line refers to.
	Anchor string
}

// Direction selects which neighbour [Step] moves to.
type Direction int

const (
	// Forward moves to the next anchor.
	Forward Direction = 1

	// Backward moves to the previous anchor.
	Backward Direction = -1
)

// ReferencePattern returns the pattern matching a reference line for key.
// For [DefaultKey] this is `colors: \*(\S+)`.
func ReferencePattern(key string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(key) + `: \*(\S+)`)
}

// ReferenceLine formats the reference line selecting anchor.
func ReferenceLine(key, anchor string) string {
	return fmt.Sprintf("%s: *%s", key, anchor)
}

// FindActiveReference scans lines for pattern and returns the last match.
//
// The last match in file order wins, so commented-out or stale reference lines
// above the real one are ignored. Within a single line the last capture wins.
// Returns [ErrNoActiveScheme] if no line matches.
func FindActiveReference(lines []string, pattern *regexp.Regexp) (Reference, error) {
	ref, count := scanReferences(lines, pattern)
	if count == 0 {
		return Reference{}, ErrNoActiveScheme
	}

	return ref, nil
}

// scanReferences returns the last matching reference and how many lines matched.
func scanReferences(lines []string, pattern *regexp.Regexp) (Reference, int) {
	var (
		ref   Reference
		count int
	)

	for i, line := range lines {
		matches := pattern.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		last := matches[len(matches)-1]
		ref = Reference{Line: i, Anchor: last[1]}
		count++
	}

	return ref, count
}

// NextAnchor returns the anchor following current in anchors, wrapping to the
// first after the last.
//
// Only the first occurrence of current is considered. A one-element list
// yields current itself. Returns [ErrAnchorNotInCatalog] if current is absent.
func NextAnchor(anchors []string, current string) (string, error) {
	return Step(anchors, current, Forward)
}

// PrevAnchor returns the anchor preceding current, wrapping to the last
// before the first. See [NextAnchor].
func PrevAnchor(anchors []string, current string) (string, error) {
	return Step(anchors, current, Backward)
}

// Step moves one position from the first occurrence of current in dir,
// treating anchors as circular.
func Step(anchors []string, current string, dir Direction) (string, error) {
	idx := indexOf(anchors, current)
	if idx < 0 {
		return "", &AnchorNotInCatalogError{Anchor: current}
	}

	n := len(anchors)
	next := ((idx+int(dir))%n + n) % n

	return anchors[next], nil
}

// Contains reports whether name is declared in anchors.
func Contains(anchors []string, name string) bool {
	return indexOf(anchors, name) >= 0
}

func indexOf(anchors []string, name string) int {
	for i, a := range anchors {
		if a == name {
			return i
		}
	}

	return -1
}

// ApplySubstitution returns a copy of lines with the line at ref.Line replaced
// by a reference to newAnchor under key. lines itself is not modified.
//
// Panics if ref.Line is out of range; references come from
// [FindActiveReference] on the same lines.
func ApplySubstitution(lines []string, ref Reference, key, newAnchor string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	out[ref.Line] = ReferenceLine(key, newAnchor)

	return out
}
