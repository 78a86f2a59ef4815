package model

import (
	"time"

	"github.com/google/uuid"
)

// Mapping assigns a doctor to a patient. Duplicate assignments of the
// same pair are allowed, and the doctor id is not validated against the
// doctors table at creation.
type Mapping struct {
	ID        uuid.UUID `json:"id" db:"id"`
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	DoctorID  uuid.UUID `json:"doctor_id" db:"doctor_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// MappingDetail is a mapping joined with the records it references,
// returned by the global listing. Doctor is nil for mappings whose
// doctor id never resolved.
type MappingDetail struct {
	Mapping
	Patient Patient `json:"patient"`
	Doctor  *Doctor `json:"doctor"`
}

// PatientMapping is a mapping joined with its doctor, returned by the
// per-patient listing.
type PatientMapping struct {
	Mapping
	Doctor *Doctor `json:"doctor"`
}

// CreateMappingRequest represents assignment parameters
type CreateMappingRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	DoctorID  string `json:"doctor_id" binding:"required"`
}
