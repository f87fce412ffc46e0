package hospitals

import (
	"sort"

	"go.uber.org/zap"

	"github.com/vitalsign/health-risk-api/models"
)

// Search result and emergency-search defaults.
const (
	MaxSearchResults       = 10
	DefaultRadiusKM        = 15
	DefaultEmergencyCount  = 5
	emergencySpecialtyName = "Emergency"
)

// UrgencyHigh switches the ranking policy to ICU-first.
const UrgencyHigh = "high"

// Search finds hospitals within radiusKM of the query point, optionally
// filtered to a specialty (case-insensitive exact match), ranked by the
// urgency policy and truncated to MaxSearchResults.
//
// The base ordering is ascending distance with descending rating as the
// tie-break. With urgency "high" a second pass overrides that ordering:
// hospitals with an ICU come first, ascending distance within each
// group. No match is never an error; the result is simply empty.
func (d *Directory) Search(lat, lon, radiusKM float64, specialty, urgency string) []models.RankedHospital {
	var nearby []models.RankedHospital
	for _, h := range d.hospitals {
		distance := Haversine(lat, lon, h.Latitude, h.Longitude)
		if distance > radiusKM {
			continue
		}
		if specialty != "" && !h.HasSpecialty(specialty) {
			continue
		}
		nearby = append(nearby, models.RankedHospital{
			Hospital:   h,
			DistanceKM: roundKM(distance),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].DistanceKM != nearby[j].DistanceKM {
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		}
		return nearby[i].Rating > nearby[j].Rating
	})

	if urgency == UrgencyHigh {
		sort.SliceStable(nearby, func(i, j int) bool {
			if nearby[i].HasICU != nearby[j].HasICU {
				return nearby[i].HasICU
			}
			return nearby[i].DistanceKM < nearby[j].DistanceKM
		})
	}

	if len(nearby) > MaxSearchResults {
		nearby = nearby[:MaxSearchResults]
	}

	zap.S().Debugw("hospital search completed",
		"latitude", lat,
		"longitude", lon,
		"radiusKm", radiusKM,
		"specialty", specialty,
		"urgency", urgency,
		"found", len(nearby),
	)
	return nearby
}

// Emergency finds the count nearest hospitals offering emergency care,
// sorted purely by ascending distance with no radius bound. Specialty
// membership is matched case-insensitively, the same policy as Search.
func (d *Directory) Emergency(lat, lon float64, count int) []models.RankedHospital {
	if count <= 0 {
		count = DefaultEmergencyCount
	}

	var results []models.RankedHospital
	for _, h := range d.hospitals {
		if !h.HasSpecialty(emergencySpecialtyName) {
			continue
		}
		results = append(results, models.RankedHospital{
			Hospital:   h,
			DistanceKM: roundKM(Haversine(lat, lon, h.Latitude, h.Longitude)),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKM < results[j].DistanceKM
	})

	if len(results) > count {
		results = results[:count]
	}
	return results
}
