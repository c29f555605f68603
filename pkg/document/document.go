// Package document loads one hierarchical XML document into a nested map
// and provides the navigation primitives the import engine relies on.
package document

import (
	"fmt"
	"strings"
)

// PathError reports a required path segment missing from the parsed document.
type PathError struct {
	Path    []string
	Segment string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("document: missing element %q at path %s", e.Segment, strings.Join(e.Path, "."))
}

// Document is a parsed hierarchical document. Attributes carry an "@" prefix
// and element text lives under the "#text" key, matching the upstream
// UniProt XML conventions.
type Document struct {
	root map[string]interface{}
}

// New wraps an already-parsed nested map.
func New(root map[string]interface{}) *Document {
	return &Document{root: root}
}

// Path walks the given segments from the document root. Every segment is
// required; a missing or non-map intermediate yields a *PathError.
func (d *Document) Path(segments ...string) (interface{}, error) {
	var current interface{} = d.root
	for i, seg := range segments {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, &PathError{Path: segments[:i], Segment: seg}
		}
		next, ok := m[seg]
		if !ok {
			return nil, &PathError{Path: segments[:i], Segment: seg}
		}
		current = next
	}
	return current, nil
}

// Entry resolves the fixed uniprot→entry sub-tree every sub-importer
// navigates from, then descends the optional extra segments.
func (d *Document) Entry(segments ...string) (interface{}, error) {
	return d.Path(append([]string{"uniprot", "entry"}, segments...)...)
}

// Elements normalizes the singular-vs-sequence ambiguity of repeated XML
// elements into an ordered slice of maps. A scalar text value is wrapped as
// {"#text": value} so callers never special-case shape. A shape that is
// neither a map, a sequence, nor a scalar is rejected.
func Elements(v interface{}) ([]map[string]interface{}, error) {
	switch val := v.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{val}, nil
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(val))
		for _, item := range val {
			elems, err := Elements(item)
			if err != nil {
				return nil, err
			}
			out = append(out, elems...)
		}
		return out, nil
	case string, bool, float64, int, int64:
		return []map[string]interface{}{{"#text": fmt.Sprintf("%v", val)}}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("document: unexpected element shape %T", v)
	}
}

// Field resolves a dotted path inside one element, e.g.
// "location.position.@position" or "citation.@type". It returns the string
// value and whether the full path was present. Absent or non-scalar leaves
// report false rather than an error.
func Field(elem map[string]interface{}, path string) (string, bool) {
	var current interface{} = elem
	for _, seg := range strings.Split(path, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return "", false
		}
		current, ok = m[seg]
		if !ok {
			return "", false
		}
	}
	switch v := current.(type) {
	case string:
		return v, true
	case bool, float64, int, int64:
		return fmt.Sprintf("%v", v), true
	default:
		return "", false
	}
}

// Text returns the element's text content: the "#text" key when present,
// otherwise empty. Attributes-only elements report false.
func Text(elem map[string]interface{}) (string, bool) {
	return Field(elem, "#text")
}
