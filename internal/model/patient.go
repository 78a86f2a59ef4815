package model

import "github.com/google/uuid"

// Patient is owned by the user who created it. Every read, update and
// delete is scoped to the owner; a patient owned by someone else is
// indistinguishable from a missing one.
type Patient struct {
	Base
	Name   string    `json:"name" db:"name"`
	UserID uuid.UUID `json:"user_id" db:"user_id"`
}

// CreatePatientRequest represents patient creation parameters
type CreatePatientRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdatePatientRequest represents patient update parameters. An omitted
// or empty name keeps the stored value.
type UpdatePatientRequest struct {
	Name string `json:"name"`
}
