package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportGenes merges one Gene node plus a FROM_GENE edge for every gene
// name element matching the configured rules.
func (e *Engine) ImportGenes(doc *document.Document, r graph.Runner) error {
	v, err := doc.Entry("gene", "name")
	if err != nil {
		return err
	}
	elems, err := document.Elements(v)
	if err != nil {
		return err
	}

	for _, elem := range elems {
		if !e.spec.Genes.Match(elem) {
			continue
		}
		name, ok := document.Text(elem)
		if !ok {
			continue
		}
		node := graph.NodeSpec{
			Label: graph.LabelGene,
			Props: map[string]interface{}{"name": name},
		}
		if err := e.merge(r, e.rootRel(graph.RelFromGene), node); err != nil {
			return err
		}
	}
	return nil
}
