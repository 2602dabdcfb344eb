package scheme

import (
	"errors"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// discoveredAnchor is an anchor declaration seen during the walk, tagged with
// the order the walk reached it.
type discoveredAnchor struct {
	name  string
	index int
}

// ExtractAnchors parses text as YAML and returns every declared anchor name in
// discovery order.
//
// Multiple YAML documents are allowed; anchors from later documents follow the
// earlier ones. A name declared more than once appears once per declaration.
// Aliases are not followed, so no node is visited twice.
//
// Returns an empty slice (not an error) when text has no anchors. Parse
// failures are returned as [*MalformedDocumentError].
func ExtractAnchors(text string) ([]string, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))

	var found []discoveredAnchor

	for {
		var doc yaml.Node

		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &MalformedDocumentError{Err: err}
		}

		found = collectAnchors(&doc, found)
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].index < found[j].index
	})

	names := make([]string, 0, len(found))
	for _, a := range found {
		names = append(names, a.name)
	}

	return names, nil
}

// collectAnchors walks node in pre-order. Mapping content alternates key and
// value, so keys are visited before their values.
func collectAnchors(node *yaml.Node, found []discoveredAnchor) []discoveredAnchor {
	if node == nil || node.Kind == yaml.AliasNode {
		return found
	}

	if node.Anchor != "" {
		found = append(found, discoveredAnchor{name: node.Anchor, index: len(found)})
	}

	for _, child := range node.Content {
		found = collectAnchors(child, found)
	}

	return found
}
