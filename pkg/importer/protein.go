package importer

import (
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
)

// ImportProtein merges the root protein node every other sub-importer
// anchors its relationships on.
func (e *Engine) ImportProtein(doc *document.Document, r graph.Runner) error {
	return graph.MergeNode(r, e.rootNode())
}
