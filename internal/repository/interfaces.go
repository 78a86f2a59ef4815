package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/model"
)

// Sentinel errors returned by repositories. Services translate these
// into the API error taxonomy.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// PatientRepository scopes every per-record operation to the owning
// user; there is no unscoped read path.
type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Patient, error)
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DoctorRepository interface {
	Create(ctx context.Context, doctor *model.Doctor) error
	List(ctx context.Context) ([]*model.Doctor, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	Update(ctx context.Context, doctor *model.Doctor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type MappingRepository interface {
	Create(ctx context.Context, mapping *model.Mapping) error
	ListDetailed(ctx context.Context) ([]*model.MappingDetail, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientMapping, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Mapping, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPatient(ctx context.Context, patientID uuid.UUID) error
	DeleteByDoctor(ctx context.Context, doctorID uuid.UUID) error
}
