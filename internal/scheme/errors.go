package scheme

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cycling pipeline. Each stage fails with exactly one
// of these kinds; use [errors.Is] to tell them apart.
var (
	ErrMalformedDocument  = errors.New("malformed document")
	ErrNoActiveScheme     = errors.New("could not find set color scheme inside config")
	ErrAnchorNotInCatalog = errors.New("anchor not found")
)

// MalformedDocumentError carries a YAML parser failure.
//
// The message is the parser's message verbatim. The error matches
// [ErrMalformedDocument] with [errors.Is] and unwraps to the parser error.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	if e == nil || e.Err == nil {
		return ErrMalformedDocument.Error()
	}

	return e.Err.Error()
}

// Unwrap returns the parser error.
func (e *MalformedDocumentError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Is reports whether target is [ErrMalformedDocument].
func (*MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// AnchorNotInCatalogError reports a reference to an anchor that the document
// does not declare.
//
// Use [errors.As] to get the offending line:
//
//	var nErr *scheme.AnchorNotInCatalogError
//	if errors.As(err, &nErr) {
//	    fmt.Println(nErr.Line)
//	}
type AnchorNotInCatalogError struct {
	// Anchor is the name the reference line points to.
	Anchor string

	// Line is the full content of the reference line. Empty when the lookup
	// did not originate from a document line.
	Line string
}

func (e *AnchorNotInCatalogError) Error() string {
	if e.Line == "" {
		return fmt.Sprintf("%s: `%s`", ErrAnchorNotInCatalog, e.Anchor)
	}

	return fmt.Sprintf("%s: `%s` (line %q)", ErrAnchorNotInCatalog, e.Anchor, e.Line)
}

// Is reports whether target is [ErrAnchorNotInCatalog].
func (*AnchorNotInCatalogError) Is(target error) bool {
	return target == ErrAnchorNotInCatalog
}
