package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuleSetMatch(t *testing.T) {
	genes := DefaultSpec().Genes

	tests := []struct {
		name string
		elem map[string]interface{}
		want bool
	}{
		{
			"synonym HNF3B",
			map[string]interface{}{"@type": "synonym", "#text": "HNF3B"},
			true,
		},
		{
			"primary FOXA2",
			map[string]interface{}{"@type": "primary", "#text": "FOXA2"},
			true,
		},
		{
			"synonym with wrong text",
			map[string]interface{}{"@type": "synonym", "#text": "TCF3B"},
			false,
		},
		{
			"right text with wrong discriminator",
			map[string]interface{}{"@type": "synonym", "#text": "FOXA2"},
			false,
		},
		{
			"missing discriminator",
			map[string]interface{}{"#text": "HNF3B"},
			false,
		},
		{
			"empty element",
			map[string]interface{}{},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, genes.Match(tt.elem))
		})
	}
}

func TestRuleSetNestedFieldAbsenceIsNonMatch(t *testing.T) {
	features := DefaultSpec().Features

	// No location sub-tree at all: must not match, must not panic.
	elem := map[string]interface{}{
		"@type":        "modified residue",
		"@description": "Phosphoserine",
	}
	assert.False(t, features.Match(elem))

	// Range location instead of a position: same.
	elem["location"] = map[string]interface{}{
		"begin": map[string]interface{}{"@position": "307"},
		"end":   map[string]interface{}{"@position": "310"},
	}
	assert.False(t, features.Match(elem))
}

func TestEmptyRuleSetMatchesEverything(t *testing.T) {
	var refs RuleSet
	assert.True(t, refs.Match(map[string]interface{}{}))
	assert.True(t, refs.Match(map[string]interface{}{"@key": "15"}))
}

func TestSpecValidate(t *testing.T) {
	assert.NoError(t, DefaultSpec().Validate())

	spec := DefaultSpec()
	spec.Root.ID = ""
	assert.Error(t, spec.Validate())

	spec = DefaultSpec()
	spec.Root.Label = ""
	assert.Error(t, spec.Validate())

	spec = DefaultSpec()
	spec.Root.Key = ""
	assert.Error(t, spec.Validate())
}
