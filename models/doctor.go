package models

// Doctor is the read-only projection of a doctor as served by the upstream
// API. It is immutable for the lifetime of a wizard session.
type Doctor struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ConsultationFee *float64 `json:"consultationFee,omitempty"`
	ClinicName      string   `json:"clinicName"`
	Location        Location `json:"location"`
}

// Location describes where a doctor practices.
type Location struct {
	City string `json:"city"`
}

// DoctorSummary is the listing row returned by the upstream doctor search.
type DoctorSummary struct {
	ID              string   `json:"_id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	ConsultationFee *float64 `json:"consultationFee,omitempty"`
	ClinicName      string   `json:"clinicName"`
	Location        Location `json:"location"`
	AverageRating   float64  `json:"averageRating,omitempty"`
}
