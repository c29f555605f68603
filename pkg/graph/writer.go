package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/pixaflow/protograph/pkg/graph/metrics"
)

// anchorParamPrefix keeps anchor parameters from colliding with node
// parameters of the same name in one statement.
const anchorParamPrefix = "anchor_"

// MergeNode issues an upsert for the node: MERGE matches on the full set of
// key properties and creates the node only when no match exists, so
// re-running an import does not duplicate nodes.
func MergeNode(r Runner, node NodeSpec) error {
	cypher := fmt.Sprintf("MERGE (n:%s %s)", node.Label, propPattern(node.Props, ""))
	if err := r.Run(cypher, node.Props); err != nil {
		return errors.Wrapf(err, "failed to merge %s node", node.Label)
	}
	metrics.NodesMerged.WithLabelValues(node.Label).Inc()
	return nil
}

// Relate issues the relationship statement: both endpoints are matched by
// their key properties, then the relationship is merged. When either
// endpoint is absent the MATCH binds zero rows and the statement is a
// silent no-op; that contract is deliberate and callers rely on it.
func Relate(r Runner, rel RelSpec, node NodeSpec) error {
	cypher := fmt.Sprintf(
		"MATCH (a:%s %s)\nMATCH (n:%s %s)\nMERGE (a)-[:%s]->(n)",
		rel.AnchorLabel, propPattern(rel.AnchorProps, anchorParamPrefix),
		node.Label, propPattern(node.Props, ""),
		rel.Type,
	)
	params := make(map[string]interface{}, len(rel.AnchorProps)+len(node.Props))
	for k, v := range node.Props {
		params[k] = v
	}
	for k, v := range rel.AnchorProps {
		params[anchorParamPrefix+k] = v
	}
	if err := r.Run(cypher, params); err != nil {
		return errors.Wrapf(err, "failed to merge %s relationship", rel.Type)
	}
	metrics.RelationshipsMerged.WithLabelValues(rel.Type).Inc()
	return nil
}

// propPattern renders a Cypher property pattern like
// {id: $id, name: $name} with deterministic key order.
func propPattern(props map[string]interface{}, paramPrefix string) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: $%s%s", k, paramPrefix, k))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
