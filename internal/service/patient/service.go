package patient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

type PatientService interface {
	CreatePatient(ctx context.Context, ownerID uuid.UUID, req *model.CreatePatientRequest) (*model.Patient, error)
	ListPatients(ctx context.Context, ownerID uuid.UUID) ([]*model.Patient, error)
	GetPatient(ctx context.Context, id, ownerID uuid.UUID) (*model.Patient, error)
	UpdatePatient(ctx context.Context, id, ownerID uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id, ownerID uuid.UUID) error
}

type Service struct {
	repo        repository.PatientRepository
	mappingRepo repository.MappingRepository
}

func NewService(repo repository.PatientRepository, mappingRepo repository.MappingRepository) *Service {
	return &Service{
		repo:        repo,
		mappingRepo: mappingRepo,
	}
}

func (s *Service) CreatePatient(ctx context.Context, ownerID uuid.UUID, req *model.CreatePatientRequest) (*model.Patient, error) {
	patient := &model.Patient{
		Base:   model.Base{ID: uuid.New()},
		Name:   req.Name,
		UserID: ownerID,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context, ownerID uuid.UUID) ([]*model.Patient, error) {
	patients, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) GetPatient(ctx context.Context, id, ownerID uuid.UUID) (*model.Patient, error) {
	patient, err := s.repo.GetForOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("patient")
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

// UpdatePatient keeps the stored name when the request name is empty,
// so an empty-string update is indistinguishable from no change.
func (s *Service) UpdatePatient(ctx context.Context, id, ownerID uuid.UUID, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.GetPatient(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		patient.Name = req.Name
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return patient, nil
}

// DeletePatient removes the patient and any mappings referencing it.
func (s *Service) DeletePatient(ctx context.Context, id, ownerID uuid.UUID) error {
	if _, err := s.GetPatient(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.mappingRepo.DeleteByPatient(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient mappings: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}
