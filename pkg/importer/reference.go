package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportReferences merges one Reference node plus a HAS_REFERENCE edge per
// qualifying citation, then cascades into the reference's author list with
// the reference's own key properties as the anchor.
func (e *Engine) ImportReferences(doc *document.Document, r graph.Runner) error {
	v, err := doc.Entry("reference")
	if err != nil {
		return err
	}
	elems, err := document.Elements(v)
	if err != nil {
		return err
	}

	for _, elem := range elems {
		if !e.spec.References.Match(elem) {
			continue
		}

		// Absent citation fields import as empty strings; the reference
		// itself is still worth a node.
		id, _ := document.Field(elem, "@key")
		category, _ := document.Field(elem, "citation.@type")
		name, _ := document.Field(elem, "citation.@name")

		node := graph.NodeSpec{
			Label: graph.LabelReference,
			Props: map[string]interface{}{"id": id, "category": category, "name": name},
		}
		if err := e.merge(r, e.rootRel(graph.RelHasReference), node); err != nil {
			return err
		}

		if err := e.ImportAuthors(elem, node, r); err != nil {
			return err
		}
	}
	return nil
}

// ImportAuthors merges one Author node plus a HAS_AUTHOR edge per person in
// the reference's author list, anchored on the given reference node. A
// reference without an author list is a no-op.
func (e *Engine) ImportAuthors(reference map[string]interface{}, anchor graph.NodeSpec, r graph.Runner) error {
	citation, ok := reference["citation"].(map[string]interface{})
	if !ok {
		return nil
	}
	authorList, ok := citation["authorList"].(map[string]interface{})
	if !ok {
		return nil
	}
	persons, err := document.Elements(authorList["person"])
	if err != nil {
		return err
	}

	rel := graph.RelSpec{
		Type:        graph.RelHasAuthor,
		AnchorLabel: anchor.Label,
		AnchorProps: anchor.Props,
	}
	for _, person := range persons {
		name, ok := document.Field(person, "@name")
		if !ok {
			continue
		}
		node := graph.NodeSpec{
			Label: graph.LabelAuthor,
			Props: map[string]interface{}{"name": name},
		}
		if err := e.merge(r, rel, node); err != nil {
			return err
		}
	}
	return nil
}
