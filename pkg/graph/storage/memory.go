package storage

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pixaflow/protograph/pkg/graph"
)

var (
	mergeNodePattern   = regexp.MustCompile(`^MERGE \(n:(\w+) `)
	matchAnchorPattern = regexp.MustCompile(`^MATCH \(a:(\w+) `)
	matchNodePattern   = regexp.MustCompile(`\nMATCH \(n:(\w+) `)
	mergeRelPattern    = regexp.MustCompile(`\nMERGE \(a\)-\[:(\w+)\]->\(n\)$`)
)

// MemoryStore is an in-memory graph.Store with the same merge semantics the
// Neo4j backend provides: nodes dedupe on label plus key properties, and a
// relationship statement whose endpoints are absent is a silent no-op. It
// interprets the two statement shapes the writer emits, which makes it a
// faithful dry-run target and the backend the engine tests run against.
type MemoryStore struct {
	mutex sync.RWMutex
	nodes map[string]graph.NodeSpec
	edges map[string]string // edge key -> relationship type
}

// NewMemoryStore creates an empty in-memory graph.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes: make(map[string]graph.NodeSpec),
		edges: make(map[string]string),
	}
}

// Session implements graph.Store. The store itself is the session; closing
// is a no-op.
func (m *MemoryStore) Session(ctx context.Context) (graph.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memorySession{store: m}, nil
}

// Close implements graph.Store.
func (m *MemoryStore) Close() error { return nil }

// NodeCount reports the number of distinct nodes with the given label.
func (m *MemoryStore) NodeCount(label string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	count := 0
	for _, node := range m.nodes {
		if node.Label == label {
			count++
		}
	}
	return count
}

// EdgeCount reports the number of distinct edges of the given type.
func (m *MemoryStore) EdgeCount(relType string) int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	count := 0
	for _, t := range m.edges {
		if t == relType {
			count++
		}
	}
	return count
}

// HasNode reports whether a node with exactly these key properties exists.
func (m *MemoryStore) HasNode(label string, props map[string]interface{}) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.nodes[nodeKey(label, props)]
	return ok
}

// HasEdge reports whether the given relationship exists between the two
// exact nodes.
func (m *MemoryStore) HasEdge(relType string, anchorLabel string, anchorProps map[string]interface{}, nodeLabel string, nodeProps map[string]interface{}) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	key := edgeKey(nodeKey(anchorLabel, anchorProps), relType, nodeKey(nodeLabel, nodeProps))
	_, ok := m.edges[key]
	return ok
}

// Totals reports overall node and edge counts.
func (m *MemoryStore) Totals() (nodes, edges int) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.nodes), len(m.edges)
}

type memorySession struct {
	store *MemoryStore
}

func (s *memorySession) WriteTx(ctx context.Context, work func(graph.Runner) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return work(s)
}

func (s *memorySession) Close() error { return nil }

// Run interprets one writer statement against the in-memory graph.
func (s *memorySession) Run(cypher string, params map[string]interface{}) error {
	if m := mergeNodePattern.FindStringSubmatch(cypher); m != nil {
		s.store.mergeNode(graph.NodeSpec{Label: m[1], Props: params})
		return nil
	}

	anchor := matchAnchorPattern.FindStringSubmatch(cypher)
	node := matchNodePattern.FindStringSubmatch(cypher)
	rel := mergeRelPattern.FindStringSubmatch(cypher)
	if anchor == nil || node == nil || rel == nil {
		return fmt.Errorf("memory store: unsupported statement: %s", cypher)
	}

	anchorProps := make(map[string]interface{})
	nodeProps := make(map[string]interface{})
	for k, v := range params {
		if trimmed, ok := strings.CutPrefix(k, "anchor_"); ok {
			anchorProps[trimmed] = v
		} else {
			nodeProps[k] = v
		}
	}
	s.store.mergeEdge(rel[1], anchor[1], anchorProps, node[1], nodeProps)
	return nil
}

func (m *MemoryStore) mergeNode(node graph.NodeSpec) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.nodes[nodeKey(node.Label, node.Props)] = node
}

// mergeEdge inserts the edge only when both endpoints already exist,
// mirroring the zero-row MATCH behavior of the Cypher statement.
func (m *MemoryStore) mergeEdge(relType, anchorLabel string, anchorProps map[string]interface{}, nodeLabel string, nodeProps map[string]interface{}) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	from := nodeKey(anchorLabel, anchorProps)
	to := nodeKey(nodeLabel, nodeProps)
	if _, ok := m.nodes[from]; !ok {
		return
	}
	if _, ok := m.nodes[to]; !ok {
		return
	}
	m.edges[edgeKey(from, relType, to)] = relType
}

func nodeKey(label string, props map[string]interface{}) string {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString(label)
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%v", k, props[k])
	}
	return b.String()
}

func edgeKey(from, relType, to string) string {
	return from + "-[" + relType + "]->" + to
}
