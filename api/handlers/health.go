package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/prediction"
)

// Health exported for testing purposes
type Health struct {
	Service *prediction.Service
}

// assessmentHistoryResponse wraps a user's past assessments.
type assessmentHistoryResponse struct {
	Assessments []models.RiskAssessment `json:"assessments"`
}

// AssessHandler validates a health submission, runs the risk assessment
// and returns the stored result.
func (h Health) AssessHandler(w http.ResponseWriter, r *http.Request) {
	var submission models.HealthSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if errs := models.ValidateHealthSubmission(submission); len(errs) > 0 {
		zap.S().Warnw("invalid health data", "details", errs)
		w.WriteHeader(http.StatusBadRequest)
		b, _ := json.Marshal(map[string]interface{}{
			"error":   "Invalid data",
			"details": errs,
		})
		w.Write(b)
		return
	}

	assessment, err := h.Service.Assess(submission)
	if err != nil {
		if errors.Is(err, prediction.ErrModelUnavailable) {
			config.ErrorStatus("assessment unavailable", http.StatusServiceUnavailable, w, err)
			return
		}
		config.ErrorStatus("assessment failed", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(assessment)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HistoryHandler returns a user's past assessments in call order. An
// unseen user id yields an empty list, not an error.
func (h Health) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	history := h.Service.History(userID)
	if history == nil {
		history = []models.RiskAssessment{}
	}

	b, err := json.Marshal(assessmentHistoryResponse{Assessments: history})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ValidateHandler runs submission validation without storing anything.
func (h Health) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var submission models.HealthSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	errs := models.ValidateHealthSubmission(submission)
	resp := models.ValidationResponse{Valid: len(errs) == 0, Errors: errs}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
