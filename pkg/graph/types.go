// Package graph defines the property-graph write surface used by the
// import engine: node/relationship specs, the opaque session abstraction,
// and the Cypher statement writer.
package graph

import "context"

// Relationship types produced by the importer.
const (
	RelFromGene         = "FROM_GENE"
	RelHasFeature       = "HAS_FEATURE"
	RelHasReference     = "HAS_REFERENCE"
	RelHasAuthor        = "HAS_AUTHOR"
	RelHasFullName      = "HAS_FULL_NAME"
	RelInClassification = "IN_CLASSIFICATION"
)

// Node labels produced by the importer. The root label is configurable and
// lives in the import spec instead.
const (
	LabelGene      = "Gene"
	LabelFeature   = "Feature"
	LabelReference = "Reference"
	LabelAuthor    = "Author"
	LabelFullName  = "FullName"
	LabelOrganism  = "Organism"
)

// NodeSpec describes one node to merge: a label and its key properties.
type NodeSpec struct {
	Label string
	Props map[string]interface{}
}

// RelSpec describes one relationship to merge, anchored on an existing node
// matched by label and key properties.
type RelSpec struct {
	Type        string
	AnchorLabel string
	AnchorProps map[string]interface{}
}

// Runner executes one parameterized write statement. Implementations are
// expected to run inside a write transaction.
type Runner interface {
	Run(cypher string, params map[string]interface{}) error
}

// Session is a scoped connection to the graph store. One session is shared
// across a whole import run; each import step executes in its own write
// transaction.
type Session interface {
	WriteTx(ctx context.Context, work func(Runner) error) error
	Close() error
}

// Store owns the connection lifecycle and hands out sessions.
type Store interface {
	Session(ctx context.Context) (Session, error)
	Close() error
}
