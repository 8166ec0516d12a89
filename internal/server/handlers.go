package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sahilvr03/GIS-AGENT/internal/advisory"
	"github.com/sahilvr03/GIS-AGENT/internal/geo"
	"github.com/sahilvr03/GIS-AGENT/internal/intent"
	"github.com/sahilvr03/GIS-AGENT/internal/models"
	"github.com/sahilvr03/GIS-AGENT/internal/reports"
	"github.com/sahilvr03/GIS-AGENT/internal/storage"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse is the reply to POST /chat.
type ChatResponse struct {
	Reply      string `json:"reply"`
	ReplyHTML  string `json:"reply_html,omitempty"`
	ReportPath string `json:"report_path,omitempty"`
}

var (
	schemeKeywords  = []string{"scheme", "sarkari", "package", "پیکیج", "سرکاری"}
	islamicKeywords = []string{"islamic", "islami", "اسلامی"}
	weatherKeywords = []string{"weather", "mausam", "موسم"}
)

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HandleHealth provides the health check endpoint.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks": map[string]string{
			"storage": "ok",
			"config":  "ok",
		},
	}
	writeJSON(w, http.StatusOK, health)
}

// HandleRoot serves a short service description.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service": "FarmBot GIS agent",
		"welcome": welcomeMessage,
		"endpoints": []string{
			"/health", "/chat", "/chat/stream", "/reports", "/advisories", "/files/",
		},
	})
}

// HandleChat routes one conversation turn. Keyword routes (schemes, Islamic
// farming, weather) answer directly; messages carrying coordinates run the
// analysis pipeline and return the report path; everything else goes to the
// chat model with the session history.
func (s *Server) HandleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "Message is required", http.StatusBadRequest)
		return
	}

	resp := s.routeMessage(r, req)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) routeMessage(r *http.Request, req ChatRequest) ChatResponse {
	parsed := intent.Parse(req.Message)

	switch {
	case containsAny(req.Message, schemeKeywords):
		return textResponse(schemeReply(req.Message, parsed.Language))

	case containsAny(req.Message, islamicKeywords):
		return textResponse(islamicReply(parsed.Language))

	case containsAny(req.Message, weatherKeywords):
		return textResponse(s.weatherAnswer(r, parsed))

	case len(parsed.Coordinates) > 0:
		return s.analysisAnswer(r, parsed)

	default:
		reply, err := s.LLM.Chat(r.Context(), s.history(req.SessionID), req.Message)
		if err != nil {
			s.log.Errorf("chat completion failed: %v", err)
			return textResponse(analysisFailedMessage(parsed.Language))
		}
		s.appendHistory(req.SessionID, req.Message, reply)
		return textResponse(reply)
	}
}

func textResponse(reply string) ChatResponse {
	return ChatResponse{
		Reply:     reply,
		ReplyHTML: reports.MarkdownToHTML(reply),
	}
}

// weatherAnswer serves a current-conditions query for the first coordinate
// pair in the message.
func (s *Server) weatherAnswer(r *http.Request, parsed *models.ParsedIntent) string {
	if len(parsed.Coordinates) == 0 {
		return weatherLocationPrompt(parsed.Language)
	}

	c := parsed.Coordinates[0]
	report, err := s.Analyzer.CurrentWeather(r.Context(), c.Lat, c.Lon)
	if err != nil {
		s.log.Warnf("weather query failed for %s: %v", c, err)
		return weatherFailedMessage(parsed.Language)
	}
	return weatherReply(report, parsed.Language)
}

// analysisAnswer runs the analysis pipeline, stores the PDF report, and
// returns the bilingual summary with the download path.
func (s *Server) analysisAnswer(r *http.Request, parsed *models.ParsedIntent) ChatResponse {
	first := parsed.Coordinates[0]
	if !geo.ValidateCoordinates(first.Lat, first.Lon) {
		return textResponse(outOfRegionMessage(parsed.Language))
	}

	ctx := r.Context()
	batch, err := s.Analyzer.Analyze(ctx, parsed.Coordinates, parsed.DateRange, parsed.AnalysisType, parsed.OtherInstructions)
	if err != nil {
		s.log.Errorf("analysis failed: %v", err)
		return textResponse(analysisFailedMessage(parsed.Language))
	}

	pdfData, err := s.Synthesizer.GeneratePDF(batch, parsed)
	if err != nil {
		s.log.Errorf("report generation failed: %v", err)
		return textResponse(analysisFailedMessage(parsed.Language))
	}

	storedPath, err := s.Storage.StoreFile(ctx, pdfData, "farm_report.pdf", batch.GeneratedAt)
	if err != nil {
		s.log.Errorf("report storage failed: %v", err)
		return textResponse(analysisFailedMessage(parsed.Language))
	}
	s.storeHTMLReport(ctx, batch, parsed)

	reportPath := "/files/" + storedPath
	reply := reports.ChatSummary(batch, parsed.Language, reportPath)
	return ChatResponse{
		Reply:      reply,
		ReplyHTML:  reports.MarkdownToHTML(reply),
		ReportPath: reportPath,
	}
}

// storeHTMLReport renders and stores the HTML companion of the PDF report,
// folding recent agromet bulletins into the page and the advisory prompt.
// Failures are logged, not surfaced; the PDF is the primary deliverable.
func (s *Server) storeHTMLReport(ctx context.Context, batch *models.AnalysisBatch, parsed *models.ParsedIntent) {
	var bulletins []advisory.Advisory
	if s.Advisories != nil {
		var err error
		bulletins, err = s.Advisories.Latest(ctx, 5)
		if err != nil {
			s.log.Warnf("bulletin fetch for report failed: %v", err)
			bulletins = nil
		}
	}

	page, err := s.Synthesizer.GenerateHTML(ctx, batch, parsed, bulletins)
	if err != nil {
		s.log.Warnf("HTML report generation failed: %v", err)
		return
	}
	if _, err := s.Storage.StoreFile(ctx, []byte(page), "farm_report.html", batch.GeneratedAt); err != nil {
		s.log.Warnf("HTML report storage failed: %v", err)
	}
}

// HandleChatStream streams a free-form chat reply as server-sent events.
// Keyword and analysis routes are not streamed; clients use /chat for those.
func (s *Server) HandleChatStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	reply, err := s.LLM.ChatStream(r.Context(), s.history(req.SessionID), req.Message, func(token string) {
		fmt.Fprintf(w, "data: %s\n\n", strings.ReplaceAll(token, "\n", "\ndata: "))
		flusher.Flush()
	})
	if err != nil {
		fmt.Fprintf(w, "event: error\ndata: %s\n\n", err.Error())
		flusher.Flush()
		return
	}

	s.appendHistory(req.SessionID, req.Message, reply)
	fmt.Fprint(w, "event: done\ndata: \n\n")
	flusher.Flush()
}

// HandleListReports lists stored report documents, newest first.
func (s *Server) HandleListReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	paths, err := s.Storage.ListReports(r.Context(), 20)
	if err != nil {
		s.log.Errorf("listing reports failed: %v", err)
		http.Error(w, "Failed to list reports", http.StatusInternalServerError)
		return
	}

	type entry struct {
		Path string `json:"path"`
		URL  string `json:"url"`
	}
	entries := make([]entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, entry{Path: p, URL: "/files/" + p})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reports": entries})
}

// HandleAdvisories returns recent agromet bulletins.
func (s *Server) HandleAdvisories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items, err := s.Advisories.Latest(r.Context(), 10)
	if err != nil {
		s.log.Warnf("advisory fetch failed: %v", err)
		http.Error(w, "Failed to fetch advisories", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"advisories": items})
}

// HandleFileProxy serves stored report artifacts.
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" || strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
