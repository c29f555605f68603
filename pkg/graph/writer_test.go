package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRunner struct {
	cyphers []string
	params  []map[string]interface{}
	err     error
}

func (r *recordingRunner) Run(cypher string, params map[string]interface{}) error {
	if r.err != nil {
		return r.err
	}
	r.cyphers = append(r.cyphers, cypher)
	r.params = append(r.params, params)
	return nil
}

func TestMergeNode(t *testing.T) {
	runner := &recordingRunner{}
	node := NodeSpec{
		Label: LabelFeature,
		Props: map[string]interface{}{"name": "Phosphoserine", "category": "modified residue"},
	}

	require.NoError(t, MergeNode(runner, node))
	require.Len(t, runner.cyphers, 1)

	// Property order in the pattern is deterministic.
	assert.Equal(t, "MERGE (n:Feature {category: $category, name: $name})", runner.cyphers[0])
	assert.Equal(t, node.Props, runner.params[0])
}

func TestRelate(t *testing.T) {
	runner := &recordingRunner{}
	rel := RelSpec{
		Type:        RelHasFeature,
		AnchorLabel: "Protein",
		AnchorProps: map[string]interface{}{"id_protein": "Q9Y261"},
	}
	node := NodeSpec{
		Label: LabelFeature,
		Props: map[string]interface{}{"name": "Phosphoserine", "category": "modified residue"},
	}

	require.NoError(t, Relate(runner, rel, node))
	require.Len(t, runner.cyphers, 1)

	want := "MATCH (a:Protein {id_protein: $anchor_id_protein})\n" +
		"MATCH (n:Feature {category: $category, name: $name})\n" +
		"MERGE (a)-[:HAS_FEATURE]->(n)"
	assert.Equal(t, want, runner.cyphers[0])
	assert.Equal(t, map[string]interface{}{
		"anchor_id_protein": "Q9Y261",
		"name":              "Phosphoserine",
		"category":          "modified residue",
	}, runner.params[0])
}

func TestRelateAnchorParamDoesNotCollide(t *testing.T) {
	runner := &recordingRunner{}
	rel := RelSpec{
		Type:        RelHasAuthor,
		AnchorLabel: LabelReference,
		AnchorProps: map[string]interface{}{"name": "Genomics"},
	}
	node := NodeSpec{
		Label: LabelAuthor,
		Props: map[string]interface{}{"name": "Smith A."},
	}

	require.NoError(t, Relate(runner, rel, node))
	assert.Equal(t, map[string]interface{}{
		"anchor_name": "Genomics",
		"name":        "Smith A.",
	}, runner.params[0])
}

func TestWriteErrorsPropagate(t *testing.T) {
	runner := &recordingRunner{err: fmt.Errorf("connection reset")}
	node := NodeSpec{Label: LabelGene, Props: map[string]interface{}{"name": "FOXA2"}}

	err := MergeNode(runner, node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to merge Gene node")

	err = Relate(runner, RelSpec{Type: RelFromGene, AnchorLabel: "Protein", AnchorProps: map[string]interface{}{"id_protein": "Q9Y261"}}, node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to merge FROM_GENE relationship")
}
