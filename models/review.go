package models

import "time"

// Review is a patient review of a doctor, owned by the upstream API.
type Review struct {
	ID        string    `json:"_id"`
	DoctorID  string    `json:"doctorId"`
	PatientID string    `json:"patientId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ReviewInput is the payload for posting a new review.
type ReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
