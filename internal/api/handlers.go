// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"conversation-intelligence/internal/common/errors"
	"conversation-intelligence/internal/common/validation"
	"conversation-intelligence/internal/models"
	"conversation-intelligence/internal/objection"
)

type analyzeMessageRequest struct {
	Text           string `json:"text"`
	ConversationID string `json:"conversationId"`
}

func (s *Server) handleAnalyzeMessage(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.errors.WriteError(w, err)
		return
	}
	if !s.validate(w, body, validation.AnalyzeMessageSchema) {
		return
	}

	var req analyzeMessageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errors.WriteError(w, errors.NewInvalidInputError(err.Error()))
		return
	}

	writeJSON(w, http.StatusOK, s.nlp.AnalyzeMessage(req.Text, req.ConversationID))
}

type analyzeConversationRequest struct {
	ConversationID string           `json:"conversationId"`
	Industry       string           `json:"industry"`
	Messages       []models.Message `json:"messages"`
}

func (s *Server) handleAnalyzeConversation(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.errors.WriteError(w, err)
		return
	}
	if !s.validate(w, body, validation.AnalyzeConversationSchema) {
		return
	}

	var req analyzeConversationRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errors.WriteError(w, errors.NewInvalidInputError(err.Error()))
		return
	}
	if req.ConversationID == "" {
		req.ConversationID = uuid.New().String()
	}
	if req.Industry == "" {
		req.Industry = s.intent.Industry()
	}

	analysis := s.nlp.AnalyzeConversation(r.Context(), req.Messages, req.ConversationID)

	// Analytics persistence is best effort; an unavailable store never fails
	// the analysis response.
	if s.analytics != nil {
		if err := s.analytics.RecordConversation(r.Context(), req.ConversationID,
			req.Industry, req.Messages, analysis); err != nil {
			s.logger.Warn("conversation record skipped", map[string]interface{}{
				"conversationId": req.ConversationID,
				"error":          err.Error(),
			})
		}
	}

	writeJSON(w, http.StatusOK, analysis)
}

func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("conversationId")
	writeJSON(w, http.StatusOK, s.nlp.GetConversationAnalysis(r.Context(), id))
}

func (s *Server) handleClearAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("conversationId")
	s.nlp.ClearConversationAnalysis(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetInsights(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("conversationId")
	insights := s.nlp.GetConversationInsights(r.Context(), id)

	if s.analytics != nil && insights.HasInsights {
		if err := s.analytics.PublishInsights(r.Context(), insights); err != nil {
			s.logger.Warn("insights publish skipped", map[string]interface{}{
				"conversationId": id,
				"error":          err.Error(),
			})
		}
	}

	writeJSON(w, http.StatusOK, insights)
}

func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("conversationId")
	insights := s.nlp.GetConversationInsights(r.Context(), id)
	writeJSON(w, http.StatusOK, s.recommend.Recommend(insights))
}

type outcomeRequest struct {
	Converted bool             `json:"converted"`
	Messages  []models.Message `json:"messages"`
}

type outcomeResponse struct {
	ConversationID string `json:"conversationId"`
	Outcome        string `json:"outcome"`
	ModelUpdated   bool   `json:"modelUpdated"`
}

func (s *Server) handleRecordOutcome(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("conversationId")

	body, err := readBody(r)
	if err != nil {
		s.errors.WriteError(w, err)
		return
	}
	if !s.validate(w, body, validation.OutcomeSchema) {
		return
	}

	var req outcomeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errors.WriteError(w, errors.NewInvalidInputError(err.Error()))
		return
	}

	msgs := req.Messages
	if len(msgs) == 0 && s.analytics != nil {
		if record, err := s.analytics.GetConversation(r.Context(), id); err == nil {
			msgs = record.Messages
		}
	}

	updated := s.intent.UpdateModelFromConversation(r.Context(), id, msgs, req.Converted)

	outcome := analyticsOutcome(req.Converted)
	if s.analytics != nil {
		if err := s.analytics.RecordOutcome(r.Context(), id, req.Converted); err != nil {
			s.logger.Warn("outcome record skipped", map[string]interface{}{
				"conversationId": id,
				"error":          err.Error(),
			})
		}
	}

	writeJSON(w, http.StatusOK, outcomeResponse{
		ConversationID: id,
		Outcome:        outcome,
		ModelUpdated:   updated,
	})
}

type objectionRequest struct {
	Text        string `json:"text"`
	CurrentTier string `json:"currentTier"`
}

type objectionResponse struct {
	objection.Response
	TierAdjustment *objection.TierAdjustment `json:"tierAdjustment,omitempty"`
}

func (s *Server) handleObjection(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		s.errors.WriteError(w, err)
		return
	}
	if !s.validate(w, body, validation.ObjectionSchema) {
		return
	}

	var req objectionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errors.WriteError(w, errors.NewInvalidInputError(err.Error()))
		return
	}

	resp := objectionResponse{Response: s.objection.Respond(req.Text)}

	if resp.HasObjection && req.CurrentTier != "" {
		adjustment, err := s.objection.SuggestTierAdjustment(req.CurrentTier, resp.ObjectionType)
		if err != nil {
			s.errors.WriteError(w, err)
			return
		}
		resp.TierAdjustment = &adjustment
	}

	writeJSON(w, http.StatusOK, resp)
}

// validate checks the body against a schema and writes the 400 on failure.
func (s *Server) validate(w http.ResponseWriter, body []byte, schema string) bool {
	result, err := validation.ValidateJSON(body, schema)
	if err != nil {
		s.errors.WriteError(w, errors.NewInvalidInputError(err.Error()))
		return false
	}
	if !result.Valid {
		s.errors.WriteError(w, errors.NewInvalidInputError(result.ErrorSummary()))
		return false
	}
	return true
}

func analyticsOutcome(converted bool) string {
	if converted {
		return "converted"
	}
	return "lost"
}
