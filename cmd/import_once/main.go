// Command import_once runs the import pipeline a single time, outside the
// scheduler. With -dry-run the statements execute against an in-memory
// graph and the resulting counts are printed instead of touching Neo4j.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/pixaflow/protograph/pkg/config"
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph"
	"github.com/pixaflow/protograph/pkg/graph/storage"
	"github.com/pixaflow/protograph/pkg/importer"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	configFile := flag.String("config", "", "Path to YAML config file")
	dryRun := flag.Bool("dry-run", false, "Import into an in-memory graph and print counts")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("Warning: Error loading env file %s: %v\n", *envFile, err)
	}

	cfg := config.DefaultConfig()
	if *configFile != "" {
		loaded, err := config.LoadFromFile(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	} else {
		cfg.ApplyEnv()
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	var store graph.Store
	var memory *storage.MemoryStore
	if *dryRun {
		memory = storage.NewMemoryStore()
		store = memory
	} else {
		neo, err := storage.NewNeo4jStore(cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password, cfg.Graph.Database)
		if err != nil {
			log.Fatalf("Failed to connect to Neo4j: %v", err)
		}
		store = neo
	}
	defer store.Close()

	engine := importer.NewEngine(document.NewFileStore(cfg.Document.Path), store, cfg.Import)
	if err := engine.Run(context.Background()); err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	if memory != nil {
		nodes, edges := memory.Totals()
		fmt.Printf("dry run: %d nodes, %d relationships\n", nodes, edges)
	}
}
