package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadFromFile(t *testing.T) {
	const yaml = `
document:
  path: /data/P35869.xml
graph:
  uri: bolt://graph:7687
  database: proteins
import:
  root:
    label: Protein
    key: id_protein
    id: P35869
  genes:
    any:
      - all:
          - field: "@type"
            equals: primary
          - field: "#text"
            equals: AHR
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/data/P35869.xml", cfg.Document.Path)
	assert.Equal(t, "bolt://graph:7687", cfg.Graph.URI)
	assert.Equal(t, "proteins", cfg.Graph.Database)
	assert.Equal(t, "P35869", cfg.Import.Root.ID)

	// Unset sections keep their defaults.
	assert.Equal(t, "*/5 * * * *", cfg.Schedule.Cron)
	assert.Equal(t, "neo4j", cfg.Graph.Username)

	require.Len(t, cfg.Import.Genes.Any, 1)
	assert.True(t, cfg.Import.Genes.Match(map[string]interface{}{"@type": "primary", "#text": "AHR"}))
	assert.False(t, cfg.Import.Genes.Match(map[string]interface{}{"@type": "synonym", "#text": "AHR"}))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing document path", func(c *Config) { c.Document.Path = "" }},
		{"missing graph uri", func(c *Config) { c.Graph.URI = "" }},
		{"missing database", func(c *Config) { c.Graph.Database = "" }},
		{"missing cron", func(c *Config) { c.Schedule.Cron = "" }},
		{"missing root id", func(c *Config) { c.Import.Root.ID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "bolt://other:7687")
	t.Setenv("NEO4J_PASSWORD", "secret")
	t.Setenv("DOCUMENT_PATH", "/data/other.xml")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "bolt://other:7687", cfg.Graph.URI)
	assert.Equal(t, "secret", cfg.Graph.Password)
	assert.Equal(t, "/data/other.xml", cfg.Document.Path)
	// Untouched without the env var set.
	assert.Equal(t, "neo4j", cfg.Graph.Username)
}
