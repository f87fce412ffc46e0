package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/config"
	"github.com/vitalsign/health-risk-api/hospitals"
	"github.com/vitalsign/health-risk-api/models"
)

// Hospital exported for testing purposes
type Hospital struct {
	Directory *hospitals.Directory
}

type nearbyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKM  *float64 `json:"radius_km"`
	Specialty string   `json:"specialty"`
	Urgency   string   `json:"urgency"`
}

type nearbyResponse struct {
	Hospitals []models.RankedHospital `json:"hospitals"`
	Count     int                     `json:"count"`
	Location  locationResponse        `json:"location"`
}

type locationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type emergencyRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Count     int      `json:"count"`
}

// NearbyHandler finds hospitals within a radius of the caller's
// location, ranked by the urgency policy.
func (h Hospital) NearbyHandler(w http.ResponseWriter, r *http.Request) {
	var req nearbyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		config.ErrorStatus("missing location coordinates", http.StatusBadRequest, w,
			fmt.Errorf("latitude and longitude are required"))
		return
	}

	radius := float64(hospitals.DefaultRadiusKM)
	if req.RadiusKM != nil {
		radius = *req.RadiusKM
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = "medium"
	}

	found := h.Directory.Search(*req.Latitude, *req.Longitude, radius, req.Specialty, urgency)
	if found == nil {
		found = []models.RankedHospital{}
	}
	zap.S().Infow("hospitals found", "count", len(found))

	b, err := json.Marshal(nearbyResponse{
		Hospitals: found,
		Count:     len(found),
		Location:  locationResponse{Latitude: *req.Latitude, Longitude: *req.Longitude},
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// EmergencyHandler returns the nearest hospitals offering emergency
// care, with no radius bound.
func (h Hospital) EmergencyHandler(w http.ResponseWriter, r *http.Request) {
	var req emergencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		config.ErrorStatus("missing location coordinates", http.StatusBadRequest, w,
			fmt.Errorf("latitude and longitude are required"))
		return
	}

	found := h.Directory.Emergency(*req.Latitude, *req.Longitude, req.Count)
	if found == nil {
		found = []models.RankedHospital{}
	}

	b, err := json.Marshal(map[string][]models.RankedHospital{"emergency_hospitals": found})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// HospitalByIDHandler returns a hospital by ID
func (h Hospital) HospitalByIDHandler(w http.ResponseWriter, r *http.Request) {
	hospitalID := mux.Vars(r)["hospital_id"]

	id, err := strconv.Atoi(hospitalID)
	if err != nil {
		config.ErrorStatus("invalid hospital id", http.StatusBadRequest, w, err)
		return
	}

	hospital, ok := h.Directory.Get(id)
	if !ok {
		config.ErrorStatus("hospital not found", http.StatusNotFound, w,
			fmt.Errorf("no hospital with id %d", id))
		return
	}

	b, err := json.Marshal(hospital)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
