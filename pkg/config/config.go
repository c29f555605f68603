// Package config provides configuration loading for the import pipeline.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pixaflow/protograph/pkg/importer"
)

// Config is the complete pipeline configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Graph    GraphConfig    `yaml:"graph"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Import   importer.Spec  `yaml:"import"`
}

// DocumentConfig locates the document to import.
type DocumentConfig struct {
	// Path is the XML file holding the entry to import
	Path string `yaml:"path"`
}

// GraphConfig configures the Neo4j connection.
type GraphConfig struct {
	// URI is the bolt address of the Neo4j server
	URI string `yaml:"uri"`
	// Username and Password authenticate the connection; the password is
	// usually supplied via the NEO4J_PASSWORD environment variable instead
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	// Database is the target database name
	Database string `yaml:"database"`
}

// ScheduleConfig configures the periodic trigger.
type ScheduleConfig struct {
	// Cron is a standard five-field cron expression
	Cron string `yaml:"cron"`
	// RetryDelay is how long to wait before the single retry of a failed run
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics (empty disables the listener)
	Addr string `yaml:"addr"`
}

// DefaultConfig returns a Config reproducing the reference pipeline: the
// Q9Y261 entry, a local Neo4j, a five-minute schedule with one retry after
// five minutes.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Path: "./data/Q9Y261.xml",
		},
		Graph: GraphConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
			Database: "pixaflow",
		},
		Schedule: ScheduleConfig{
			Cron:       "*/5 * * * *",
			RetryDelay: 5 * time.Minute,
		},
		Metrics: MetricsConfig{
			Addr: ":2112",
		},
		Import: importer.DefaultSpec(),
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Document.Path == "" {
		return fmt.Errorf("document.path is required")
	}
	if c.Graph.URI == "" {
		return fmt.Errorf("graph.uri is required")
	}
	if c.Graph.Database == "" {
		return fmt.Errorf("graph.database is required")
	}
	if c.Schedule.Cron == "" {
		return fmt.Errorf("schedule.cron is required")
	}
	return c.Import.Validate()
}

// LoadFromFile loads configuration from a YAML file on top of the defaults,
// then applies environment overrides.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.ApplyEnv()
	return config, nil
}

// ApplyEnv overrides connection settings from the environment, so
// credentials never need to live in the config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("NEO4J_URI"); v != "" {
		c.Graph.URI = v
	}
	if v := os.Getenv("NEO4J_USERNAME"); v != "" {
		c.Graph.Username = v
	}
	if v := os.Getenv("NEO4J_PASSWORD"); v != "" {
		c.Graph.Password = v
	}
	if v := os.Getenv("DOCUMENT_PATH"); v != "" {
		c.Document.Path = v
	}
}
