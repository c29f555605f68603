package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pixaflow/protograph/pkg/config"
	"github.com/pixaflow/protograph/pkg/document"
	"github.com/pixaflow/protograph/pkg/graph/storage"
	"github.com/pixaflow/protograph/pkg/importer"
	"github.com/pixaflow/protograph/pkg/scheduler"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	configFile := flag.String("config", "", "Path to YAML config file")
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

	store, err := storage.NewNeo4jStore(cfg.Graph.URI, cfg.Graph.Username, cfg.Graph.Password, cfg.Graph.Database)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer store.Close()

	engine := importer.NewEngine(document.NewFileStore(cfg.Document.Path), store, cfg.Import)

	sched := scheduler.New(cfg.Schedule.Cron, cfg.Schedule.RetryDelay, engine.Run)
	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	if cfg.Metrics.Addr != "" {
		go func() {
			http.Handle("/metrics", promhttp.Handler())
			log.Printf("Serving metrics on %s", cfg.Metrics.Addr)
			if err := http.ListenAndServe(cfg.Metrics.Addr, nil); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Printf("Received signal %v, shutting down...", sig)
	sched.Stop()
}
