package mapping

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type MappingService interface {
	CreateMapping(ctx context.Context, callerID, patientID, doctorID uuid.UUID) (*model.Mapping, error)
	ListMappings(ctx context.Context) ([]*model.MappingDetail, error)
	ListPatientMappings(ctx context.Context, patientID uuid.UUID) ([]*model.PatientMapping, error)
	DeleteMapping(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo        repository.MappingRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.MappingRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
	}
}

// CreateMapping assigns a doctor to one of the caller's patients. The
// patient must belong to the caller; the doctor id is not checked
// against the doctors table, so an unknown doctor id produces an
// orphaned mapping. The ownership read and the insert are two separate
// store calls, not a transaction.
func (s *Service) CreateMapping(ctx context.Context, callerID, patientID, doctorID uuid.UUID) (*model.Mapping, error) {
	if _, err := s.patientRepo.GetForOwner(ctx, patientID, callerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient")
		}
		return nil, fmt.Errorf("failed to check patient ownership: %w", err)
	}

	mapping := &model.Mapping{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
	}

	if err := s.repo.Create(ctx, mapping); err != nil {
		return nil, fmt.Errorf("failed to create mapping: %w", err)
	}
	return mapping, nil
}

func (s *Service) ListMappings(ctx context.Context) ([]*model.MappingDetail, error) {
	mappings, err := s.repo.ListDetailed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}
	return mappings, nil
}

// ListPatientMappings does not verify that the patient belongs to the
// caller; any authenticated caller can read any patient's assignments.
func (s *Service) ListPatientMappings(ctx context.Context, patientID uuid.UUID) ([]*model.PatientMapping, error) {
	mappings, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patient mappings: %w", err)
	}
	return mappings, nil
}

func (s *Service) DeleteMapping(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound("mapping")
		}
		return fmt.Errorf("failed to get mapping: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}
