package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportFullName merges the recommended full name as a FullName node with a
// HAS_FULL_NAME edge when it matches the configured rules. The fullName
// element is plain text in most entries; Elements wraps it so the rule
// layer sees the usual {"#text": ...} shape.
func (e *Engine) ImportFullName(doc *document.Document, r graph.Runner) error {
	v, err := doc.Entry("protein", "recommendedName", "fullName")
	if err != nil {
		return err
	}
	elems, err := document.Elements(v)
	if err != nil {
		return err
	}

	for _, elem := range elems {
		if !e.spec.FullName.Match(elem) {
			continue
		}
		name, ok := document.Text(elem)
		if !ok {
			continue
		}
		node := graph.NodeSpec{
			Label: graph.LabelFullName,
			Props: map[string]interface{}{"name": name},
		}
		if err := e.merge(r, e.rootRel(graph.RelHasFullName), node); err != nil {
			return err
		}
	}
	return nil
}
