package hospitals

import "github.com/vitalsign/health-risk-api/models"

// Directory is the static in-memory hospital collection. Records are
// read-only after construction, so no locking is needed.
type Directory struct {
	hospitals []models.Hospital
}

// NewDirectory returns a directory seeded with the bundled sample
// hospital records. A production deployment would load these from a
// real provider feed.
func NewDirectory() *Directory {
	return NewDirectoryWith(sampleHospitals())
}

// NewDirectoryWith returns a directory over the given records.
func NewDirectoryWith(records []models.Hospital) *Directory {
	hs := make([]models.Hospital, len(records))
	copy(hs, records)
	return &Directory{hospitals: hs}
}

// All returns every hospital record.
func (d *Directory) All() []models.Hospital {
	out := make([]models.Hospital, len(d.hospitals))
	copy(out, d.hospitals)
	return out
}

// Get returns the hospital with the given id. A missing id is a normal
// empty result, not an error.
func (d *Directory) Get(id int) (models.Hospital, bool) {
	for _, h := range d.hospitals {
		if h.ID == id {
			return h, true
		}
	}
	return models.Hospital{}, false
}

func sampleHospitals() []models.Hospital {
	return []models.Hospital{
		{
			ID:          1,
			Name:        "Central Medical Hospital",
			Latitude:    40.7128,
			Longitude:   -74.0060,
			Address:     "123 Main St, New York, NY",
			Phone:       "+1-212-555-1234",
			Specialties: []string{"Cardiology", "Neurology", "Emergency"},
			HasICU:      true,
			Rating:      4.8,
		},
		{
			ID:          2,
			Name:        "City Health Center",
			Latitude:    40.7185,
			Longitude:   -74.0060,
			Address:     "456 Park Ave, New York, NY",
			Phone:       "+1-212-555-5678",
			Specialties: []string{"General Practice", "Cardiology"},
			HasICU:      false,
			Rating:      4.5,
		},
		{
			ID:          3,
			Name:        "Emergency Care Clinic",
			Latitude:    40.7050,
			Longitude:   -74.0080,
			Address:     "789 Broadway, New York, NY",
			Phone:       "+1-212-555-9999",
			Specialties: []string{"Emergency", "Trauma", "Cardiology"},
			HasICU:      true,
			Rating:      4.6,
		},
	}
}
