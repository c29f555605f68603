package importer

import (
	"fmt"

	"github.com/pixaflow/protograph/pkg/document"
)

// Condition is one exact-match check against a dotted field path inside an
// element, e.g. {field: "location.position.@position", equals: "307"}.
// An absent field is a non-match, never an error.
type Condition struct {
	Field  string `yaml:"field"`
	Equals string `yaml:"equals"`
}

// Rule matches when all of its conditions match.
type Rule struct {
	All []Condition `yaml:"all"`
}

// RuleSet matches when any of its rules match. An empty RuleSet matches
// every element, which is how unfiltered sub-importers are configured.
type RuleSet struct {
	Any []Rule `yaml:"any"`
}

// Match applies the rule set to one normalized element.
func (rs RuleSet) Match(elem map[string]interface{}) bool {
	if len(rs.Any) == 0 {
		return true
	}
	for _, rule := range rs.Any {
		if rule.matches(elem) {
			return true
		}
	}
	return false
}

func (r Rule) matches(elem map[string]interface{}) bool {
	for _, cond := range r.All {
		value, ok := document.Field(elem, cond.Field)
		if !ok || value != cond.Equals {
			return false
		}
	}
	return true
}

// RootSpec identifies the anchor node for the whole run.
type RootSpec struct {
	Label string `yaml:"label"`
	Key   string `yaml:"key"`
	ID    string `yaml:"id"`
}

// Spec is the declarative import configuration: the root anchor plus the
// selection rules per entity type. The zero value imports nothing useful;
// DefaultSpec reproduces the reference filters.
type Spec struct {
	Root               RootSpec `yaml:"root"`
	Genes              RuleSet  `yaml:"genes"`
	Features           RuleSet  `yaml:"features"`
	References         RuleSet  `yaml:"references"`
	FullName           RuleSet  `yaml:"full_name"`
	Organisms          RuleSet  `yaml:"organisms"`
	OrganismExternalID string   `yaml:"organism_external_id"`
}

// Validate checks the parts of the spec every run depends on.
func (s Spec) Validate() error {
	if s.Root.Label == "" {
		return fmt.Errorf("import: root.label is required")
	}
	if s.Root.Key == "" {
		return fmt.Errorf("import: root.key is required")
	}
	if s.Root.ID == "" {
		return fmt.Errorf("import: root.id is required")
	}
	return nil
}

// DefaultSpec returns the import configuration for the FOXA2 protein entry
// Q9Y261, matching the filters the pipeline historically applied.
func DefaultSpec() Spec {
	return Spec{
		Root: RootSpec{Label: "Protein", Key: "id_protein", ID: "Q9Y261"},
		Genes: RuleSet{Any: []Rule{
			{All: []Condition{
				{Field: "@type", Equals: "synonym"},
				{Field: "#text", Equals: "HNF3B"},
			}},
			{All: []Condition{
				{Field: "@type", Equals: "primary"},
				{Field: "#text", Equals: "FOXA2"},
			}},
		}},
		Features: RuleSet{Any: []Rule{
			{All: []Condition{
				{Field: "location.position.@position", Equals: "307"},
				{Field: "@description", Equals: "Phosphoserine"},
				{Field: "@type", Equals: "modified residue"},
			}},
		}},
		References: RuleSet{},
		FullName: RuleSet{Any: []Rule{
			{All: []Condition{
				{Field: "#text", Equals: "Hepatocyte nuclear factor 3-beta"},
			}},
		}},
		Organisms: RuleSet{Any: []Rule{
			{All: []Condition{
				{Field: "#text", Equals: "Homo sapiens"},
			}},
		}},
		OrganismExternalID: "9606",
	}
}
