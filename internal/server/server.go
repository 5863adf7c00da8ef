// Package server assembles the HTTP front end around the detection service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Varshith07827/AI-PII-Detector/internal/server/handlers"
	"github.com/Varshith07827/AI-PII-Detector/internal/server/response"
	"github.com/Varshith07827/AI-PII-Detector/internal/store"
	"github.com/Varshith07827/AI-PII-Detector/pkg/logger"
	"github.com/Varshith07827/AI-PII-Detector/pkg/ner"
	"github.com/Varshith07827/AI-PII-Detector/pkg/pii"
)

// Version is reported by /health.
const Version = "1.0.0"

// Server owns the HTTP listener and the service dependencies behind it.
type Server struct {
	config  *Config
	log     *logger.Logger
	history *store.Store
	httpSrv *http.Server
}

// New wires the detection service, optional NER provider, and optional scan
// history into a runnable server.
func New(config *Config) (*Server, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	format := logger.JSONFormat
	if config.LogFormat == "text" {
		format = logger.TextFormat
	}
	log := logger.New(&logger.Config{
		Level:   logger.ParseLevel(config.LogLevel),
		Format:  format,
		Service: "pii-detector",
	})

	provider := ner.Resolve(config.NERPreference)
	if provider == nil {
		log.Info("no NER provider available, hybrid mode degrades to regex-only")
	} else {
		log.Info("NER provider resolved: %s", provider.Name())
	}

	var history *store.Store
	if config.HistoryEnabled {
		var err error
		history, err = store.New(config.HistoryPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open scan history: %w", err)
		}
		log.Info("scan history enabled at %s", config.HistoryPath)
	}

	api := &handlers.API{
		Service:        pii.NewService(provider, config.Service),
		History:        history,
		Log:            log,
		MaxUploadBytes: config.MaxUploadBytes,
		Version:        Version,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", api.HandleHealth)
	mux.HandleFunc("GET /api/patterns", api.HandlePatterns)
	mux.HandleFunc("GET /api/scans", api.HandleScans)
	mux.HandleFunc("POST /api/detect", api.HandleDetect)
	mux.HandleFunc("POST /api/mask", api.HandleMask)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.WriteNotFound(w, logger.RequestIDFromContext(r.Context()), "endpoint not found")
	})

	srv := &Server{
		config:  config,
		log:     log,
		history: history,
		httpSrv: &http.Server{
			Addr:         config.ListenAddr,
			Handler:      requestIDMiddleware(loggingMiddleware(log, mux)),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}
	return srv, nil
}

// Handler exposes the composed handler chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("listening on %s", s.config.ListenAddr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes the history store.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.httpSrv.Shutdown(ctx)
	if s.history != nil {
		if closeErr := s.history.Close(); err == nil {
			err = closeErr
		}
	}
	return err
}
