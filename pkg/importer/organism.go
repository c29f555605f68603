package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportOrganisms merges one Organism node plus an IN_CLASSIFICATION edge
// for every organism name element matching the configured rules. The
// external taxonomy id comes from the import spec.
func (e *Engine) ImportOrganisms(doc *document.Document, r graph.Runner) error {
	v, err := doc.Entry("organism", "name")
	if err != nil {
		return err
	}
	elems, err := document.Elements(v)
	if err != nil {
		return err
	}

	for _, elem := range elems {
		if !e.spec.Organisms.Match(elem) {
			continue
		}
		name, ok := document.Text(elem)
		if !ok {
			continue
		}
		node := graph.NodeSpec{
			Label: graph.LabelOrganism,
			Props: map[string]interface{}{
				"name":        name,
				"external_id": e.spec.OrganismExternalID,
			},
		}
		if err := e.merge(r, e.rootRel(graph.RelInClassification), node); err != nil {
			return err
		}
	}
	return nil
}
