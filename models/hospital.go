package models

import "strings"

// Hospital is a static reference record in the hospital directory.
// Specialty membership is matched case-insensitively.
type Hospital struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	Specialties []string `json:"specialties"`
	HasICU      bool     `json:"has_icu"`
	Rating      float64  `json:"rating"`
}

// HasSpecialty reports whether the hospital offers the given specialty,
// ignoring case.
func (h Hospital) HasSpecialty(specialty string) bool {
	for _, s := range h.Specialties {
		if strings.EqualFold(s, specialty) {
			return true
		}
	}
	return false
}

// RankedHospital is a Hospital plus the great-circle distance from the
// query point. Produced transiently per search, never persisted.
type RankedHospital struct {
	Hospital
	DistanceKM float64 `json:"distance_km"`
}
