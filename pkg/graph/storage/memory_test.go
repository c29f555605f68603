package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixaflow/protograph/pkg/graph"
)

func TestMemoryStoreMergeSemantics(t *testing.T) {
	store := NewMemoryStore()
	session, err := store.Session(context.Background())
	require.NoError(t, err)
	defer session.Close()

	node := graph.NodeSpec{Label: graph.LabelGene, Props: map[string]interface{}{"name": "FOXA2"}}

	err = session.WriteTx(context.Background(), func(r graph.Runner) error {
		if err := graph.MergeNode(r, node); err != nil {
			return err
		}
		return graph.MergeNode(r, node)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.NodeCount(graph.LabelGene))
}

func TestMemoryStoreRelationshipNoOpOnMissingAnchor(t *testing.T) {
	store := NewMemoryStore()
	session, err := store.Session(context.Background())
	require.NoError(t, err)
	defer session.Close()

	node := graph.NodeSpec{Label: graph.LabelGene, Props: map[string]interface{}{"name": "FOXA2"}}
	rel := graph.RelSpec{
		Type:        graph.RelFromGene,
		AnchorLabel: "Protein",
		AnchorProps: map[string]interface{}{"id_protein": "Q9Y261"},
	}

	err = session.WriteTx(context.Background(), func(r graph.Runner) error {
		if err := graph.MergeNode(r, node); err != nil {
			return err
		}
		// Anchor never merged: the statement must bind nothing and succeed.
		return graph.Relate(r, rel, node)
	})
	require.NoError(t, err)
	assert.Equal(t, 0, store.EdgeCount(graph.RelFromGene))

	// Once the anchor exists the same statement materializes the edge.
	err = session.WriteTx(context.Background(), func(r graph.Runner) error {
		if err := graph.MergeNode(r, graph.NodeSpec{Label: "Protein", Props: rel.AnchorProps}); err != nil {
			return err
		}
		return graph.Relate(r, rel, node)
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.EdgeCount(graph.RelFromGene))
}

func TestMemoryStoreRejectsUnknownStatement(t *testing.T) {
	store := NewMemoryStore()
	session, err := store.Session(context.Background())
	require.NoError(t, err)
	defer session.Close()

	err = session.WriteTx(context.Background(), func(r graph.Runner) error {
		return r.Run("MATCH (n) DETACH DELETE n", nil)
	})
	assert.Error(t, err)
}
