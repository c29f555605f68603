package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportFeatures merges one Feature node plus a HAS_FEATURE edge for every
// feature element matching the configured rules. The positional filter is
// expressed as a rule condition on the nested location.position.@position
// field.
func (e *Engine) ImportFeatures(doc *document.Document, r graph.Runner) error {
	v, err := doc.Entry("feature")
	if err != nil {
		return err
	}
	elems, err := document.Elements(v)
	if err != nil {
		return err
	}

	for _, elem := range elems {
		if !e.spec.Features.Match(elem) {
			continue
		}
		name, ok := document.Field(elem, "@description")
		if !ok {
			continue
		}
		category, ok := document.Field(elem, "@type")
		if !ok {
			continue
		}
		node := graph.NodeSpec{
			Label: graph.LabelFeature,
			Props: map[string]interface{}{"name": name, "category": category},
		}
		if err := e.merge(r, e.rootRel(graph.RelHasFeature), node); err != nil {
			return err
		}
	}
	return nil
}
