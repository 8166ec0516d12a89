// Package server wires the conversational HTTP surface: chat routing, report
// generation, report listings and artifact downloads.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/analysis"
	"github.com/sahilvr03/GIS-AGENT/internal/config"
	"github.com/sahilvr03/GIS-AGENT/internal/llm"
	"github.com/sahilvr03/GIS-AGENT/internal/logger"
	"github.com/sahilvr03/GIS-AGENT/internal/mocks"
	"github.com/sahilvr03/GIS-AGENT/internal/reports"
	"github.com/sahilvr03/GIS-AGENT/internal/satellite"
	"github.com/sahilvr03/GIS-AGENT/internal/storage"
	"github.com/sahilvr03/GIS-AGENT/internal/weather"
)

// Server is the main application server.
type Server struct {
	Config         *config.Config
	Analyzer       *analysis.Analyzer
	LLM            *llm.Client
	Synthesizer    *reports.Synthesizer
	Advisories     *advisory.Fetcher
	Storage        storage.Client
	DeploymentMode storage.DeploymentMode

	log      *logger.Logger
	mu       sync.RWMutex
	sessions map[string][]llm.Message
}

// NewServer creates a server instance. With MockupMode enabled the satellite
// and weather adapters are replaced by deterministic mocks so the full chat
// and report pipeline works without external credentials.
func NewServer(cfg *config.Config, deploymentMode storage.DeploymentMode) (*Server, error) {
	ctx := context.Background()
	log := logger.GetGlobalLogger().WithComponent("server")

	var sat satellite.Client
	var wx weather.Provider
	if cfg.MockupMode {
		log.Info("mockup mode enabled, using deterministic satellite and weather data")
		sat = mocks.NewSatelliteClient()
		wx = mocks.NewWeatherProvider()
	} else {
		sat = satellite.NewSentinelHubClient(cfg.SentinelClientID, cfg.SentinelClientSecret)
		wx = weather.NewClient(cfg.WeatherAPIKey)
	}

	store, err := storage.NewClient(ctx, deploymentMode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	llmClient := llm.NewClient(cfg.GeminiAPIKey, cfg.LLMBaseURL, cfg.LLMModel)
	chartsDir := filepath.Join(os.TempDir(), "farmbot-charts")

	return &Server{
		Config:         cfg,
		Analyzer:       analysis.New(sat, wx),
		LLM:            llmClient,
		Synthesizer:    reports.NewSynthesizer(chartsDir, llmClient),
		Advisories:     advisory.NewFetcher(cfg.AdvisoryFeedURL),
		Storage:        store,
		DeploymentMode: deploymentMode,
		log:            log,
		sessions:       make(map[string][]llm.Message),
	}, nil
}

// SetupRoutes configures HTTP routes for the server.
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/chat", s.HandleChat)
	mux.HandleFunc("/chat/stream", s.HandleChatStream)
	mux.HandleFunc("/reports", s.HandleListReports)
	mux.HandleFunc("/advisories", s.HandleAdvisories)
	mux.HandleFunc("/files/", s.HandleFileProxy)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}

// history returns a copy of the session's conversation history.
func (s *Server) history(sessionID string) []llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h := s.sessions[sessionID]
	out := make([]llm.Message, len(h))
	copy(out, h)
	return out
}

// appendHistory records one user/assistant exchange for the session.
func (s *Server) appendHistory(sessionID, userMessage, reply string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID],
		llm.Message{Role: "user", Content: userMessage},
		llm.Message{Role: "assistant", Content: reply},
	)
}
