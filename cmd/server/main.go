package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Varshith07827/AI-PII-Detector/internal/server"
	"github.com/Varshith07827/AI-PII-Detector/pkg/config"
)

func main() {
	var (
		configFile     = flag.String("config", "", "Path to configuration file (YAML or JSON)")
		listenAddr     = flag.String("listen-addr", "", "Listen address, e.g. :8080")
		logLevel       = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		logFormat      = flag.String("log-format", "", "Log format (json, text)")
		historyEnabled = flag.Bool("history", false, "Enable the scan-history store")
		historyPath    = flag.String("history-path", "", "Path to the scan-history database")
		nerPreference  = flag.String("ner", "", "Comma-separated NER provider preference list")
		version        = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *version {
		fmt.Printf("pii-detector server v%s\n", server.Version)
		os.Exit(0)
	}

	cfg := server.DefaultConfig()
	loader := config.NewLoader("PIISCAN")
	if err := loader.LoadFromFile(*configFile, cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags and env override file values.
	cfg.ListenAddr = firstNonEmpty(*listenAddr, loader.EnvString("LISTEN_ADDR", cfg.ListenAddr))
	cfg.LogLevel = firstNonEmpty(*logLevel, loader.EnvString("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = firstNonEmpty(*logFormat, loader.EnvString("LOG_FORMAT", cfg.LogFormat))
	if *historyEnabled {
		cfg.HistoryEnabled = true
	} else {
		cfg.HistoryEnabled = loader.EnvBool("HISTORY", cfg.HistoryEnabled)
	}
	cfg.HistoryPath = firstNonEmpty(*historyPath, loader.EnvString("HISTORY_PATH", cfg.HistoryPath))
	if *nerPreference != "" {
		cfg.NERPreference = strings.Split(*nerPreference, ",")
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
