package scheme

import (
	"regexp"
)

// State is what a document currently selects: its anchors in discovery order
// and the active reference.
type State struct {
	Anchors []string
	Active  Reference

	// ReferenceCount is how many lines matched the reference pattern.
	// Only the last one is Active.
	ReferenceCount int

	// Duplicates lists anchor names declared more than once, in first-seen order.
	Duplicates []string
}

// Change is a computed, not yet persisted, rewrite of a document.
type Change struct {
	State

	// From and To are the anchors selected before and after.
	From string
	To   string

	// Lines is the full document with the reference line replaced.
	Lines []string
}

// Cycler runs the parse, locate, advance and substitute stages against a
// document. The zero value is not usable; use [NewCycler].
type Cycler struct {
	key     string
	pattern *regexp.Regexp
}

// NewCycler returns a Cycler matching reference lines for key. An empty key
// means [DefaultKey].
func NewCycler(key string) *Cycler {
	if key == "" {
		key = DefaultKey
	}

	return &Cycler{key: key, pattern: ReferencePattern(key)}
}

// Key returns the field marker this Cycler rewrites.
func (c *Cycler) Key() string {
	return c.key
}

// Inspect parses doc and locates its active reference.
//
// Errors: [ErrMalformedDocument] if the text does not parse, and
// [ErrNoActiveScheme] if no line matches.
func (c *Cycler) Inspect(doc Document) (State, error) {
	anchors, err := ExtractAnchors(doc.Text)
	if err != nil {
		return State{}, err
	}

	ref, count := scanReferences(doc.Lines, c.pattern)
	if count == 0 {
		return State{}, ErrNoActiveScheme
	}

	return State{
		Anchors:        anchors,
		Active:         ref,
		ReferenceCount: count,
		Duplicates:     duplicates(anchors),
	}, nil
}

// Cycle moves the active reference one anchor in dir.
//
// Besides the [Cycler.Inspect] errors, it returns [*AnchorNotInCatalogError]
// carrying the reference line when the active anchor is not declared.
func (c *Cycler) Cycle(doc Document, dir Direction) (Change, error) {
	state, err := c.Inspect(doc)
	if err != nil {
		return Change{}, err
	}

	next, err := Step(state.Anchors, state.Active.Anchor, dir)
	if err != nil {
		return Change{}, &AnchorNotInCatalogError{
			Anchor: state.Active.Anchor,
			Line:   doc.Lines[state.Active.Line],
		}
	}

	return c.change(doc, state, next), nil
}

// Select points the active reference at anchor. Both the current and the
// requested anchor must be declared.
func (c *Cycler) Select(doc Document, anchor string) (Change, error) {
	state, err := c.Inspect(doc)
	if err != nil {
		return Change{}, err
	}

	if !Contains(state.Anchors, state.Active.Anchor) {
		return Change{}, &AnchorNotInCatalogError{
			Anchor: state.Active.Anchor,
			Line:   doc.Lines[state.Active.Line],
		}
	}

	if !Contains(state.Anchors, anchor) {
		return Change{}, &AnchorNotInCatalogError{Anchor: anchor}
	}

	return c.change(doc, state, anchor), nil
}

func (c *Cycler) change(doc Document, state State, next string) Change {
	return Change{
		State: state,
		From:  state.Active.Anchor,
		To:    next,
		Lines: ApplySubstitution(doc.Lines, state.Active, c.key, next),
	}
}

func duplicates(anchors []string) []string {
	seen := make(map[string]int, len(anchors))

	var dups []string

	for _, a := range anchors {
		seen[a]++
		if seen[a] == 2 {
			dups = append(dups, a)
		}
	}

	return dups
}
