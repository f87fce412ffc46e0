package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/models"
	"github.com/vitalsign/health-risk-api/prediction"
)

// Recommendation exported for testing purposes
type Recommendation struct {
	Service *prediction.Service
}

type precautionsRequest struct {
	RiskDiseases []string `json:"risk_diseases"`
	Age          int      `json:"age"`
	Lifestyle    string   `json:"lifestyle"`
	Conditions   []string `json:"conditions"`
	Urgency      string   `json:"urgency"`
}

type precautionsResponse struct {
	Precautions models.PrecautionPlan `json:"precautions"`
	Urgency     string                `json:"urgency"`
}

// PrecautionsHandler returns a personalized precaution plan.
func (rec Recommendation) PrecautionsHandler(w http.ResponseWriter, r *http.Request) {
	var req precautionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if req.Urgency == "" {
		req.Urgency = "normal"
	}

	plan := rec.Service.Precautions(req.RiskDiseases, req.Age, req.Lifestyle, req.Conditions)

	b, err := json.Marshal(precautionsResponse{Precautions: plan, Urgency: req.Urgency})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LifestyleHandler returns the static lifestyle improvement tips.
func (rec Recommendation) LifestyleHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(map[string]map[string][]string{"tips": rec.Service.LifestyleTips()})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
