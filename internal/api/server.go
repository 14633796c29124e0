// internal/api/server.go

// Package api exposes the analysis pipeline over JSON HTTP. The transport
// stays thin: request validation, dispatch to the services, sanitized errors.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"conversation-intelligence/internal/analytics"
	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/logger"
	"conversation-intelligence/internal/engines/intent"
	"conversation-intelligence/internal/nlp"
	"conversation-intelligence/internal/objection"
	"conversation-intelligence/internal/recommend"
)

// maxBodyBytes bounds request bodies; transcripts are small.
const maxBodyBytes = 1 << 20

// Server holds the wired services behind the HTTP surface. The analytics
// service is optional; without it conversation rows are not recorded.
type Server struct {
	nlp       *nlp.Service
	intent    *intent.Engine
	recommend *recommend.Service
	objection *objection.Service
	analytics *analytics.Service
	errors    *errors.ErrorHandler
	logger    logger.Logger
}

func NewServer(
	nlpService *nlp.Service,
	intentEngine *intent.Engine,
	recommendService *recommend.Service,
	objectionService *objection.Service,
	analyticsService *analytics.Service,
	log logger.Logger,
) *Server {
	return &Server{
		nlp:       nlpService,
		intent:    intentEngine,
		recommend: recommendService,
		objection: objectionService,
		analytics: analyticsService,
		errors:    errors.NewErrorHandler(log),
		logger:    log.WithFields(map[string]interface{}{"component": "api"}),
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/analyze-message", s.handleAnalyzeMessage)
	mux.HandleFunc("POST /api/v1/analyze-conversation", s.handleAnalyzeConversation)
	mux.HandleFunc("GET /api/v1/conversations/{conversationId}/analysis", s.handleGetAnalysis)
	mux.HandleFunc("DELETE /api/v1/conversations/{conversationId}/analysis", s.handleClearAnalysis)
	mux.HandleFunc("GET /api/v1/conversations/{conversationId}/insights", s.handleGetInsights)
	mux.HandleFunc("GET /api/v1/conversations/{conversationId}/recommendations", s.handleGetRecommendations)
	mux.HandleFunc("POST /api/v1/conversations/{conversationId}/outcome", s.handleRecordOutcome)
	mux.HandleFunc("POST /api/v1/objection", s.handleObjection)

	mux.HandleFunc("GET /healthz", s.handleHealthz)

	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readBody drains the request body with a size bound.
func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewInvalidInputError("unreadable request body")
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
