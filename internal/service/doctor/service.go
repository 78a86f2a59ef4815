package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

const (
	listCacheKey = "doctors:list"
	listCacheTTL = 30 * time.Second
)

type DoctorService interface {
	CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	ListDoctors(ctx context.Context) ([]*model.Doctor, error)
	GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	DeleteDoctor(ctx context.Context, id uuid.UUID) error
}

// Service manages the global doctor directory. The listing is public
// and read-heavy, so it is cached in-process and invalidated on every
// mutation.
type Service struct {
	repo        repository.DoctorRepository
	mappingRepo repository.MappingRepository
	cache       *gocache.Cache
}

func NewService(repo repository.DoctorRepository, mappingRepo repository.MappingRepository) *Service {
	return &Service{
		repo:        repo,
		mappingRepo: mappingRepo,
		cache:       gocache.New(listCacheTTL, 2*listCacheTTL),
	}
}

func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	doctor := &model.Doctor{
		Base:       model.Base{ID: uuid.New()},
		Name:       req.Name,
		Speciality: req.Speciality,
	}

	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	s.cache.Delete(listCacheKey)
	return doctor, nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*model.Doctor, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.Doctor), nil
	}

	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	s.cache.Set(listCacheKey, doctors, gocache.DefaultExpiration)
	return doctors, nil
}

func (s *Service) GetDoctor(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NotFound("doctor")
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return doctor, nil
}

// UpdateDoctor keeps stored values for empty request fields, matching
// the patient update behavior.
func (s *Service) UpdateDoctor(ctx context.Context, id uuid.UUID, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	doctor, err := s.GetDoctor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		doctor.Name = req.Name
	}
	if req.Speciality != "" {
		speciality := req.Speciality
		doctor.Speciality = &speciality
	}

	if err := s.repo.Update(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	s.cache.Delete(listCacheKey)
	return doctor, nil
}

// DeleteDoctor removes the doctor and any mappings referencing it.
func (s *Service) DeleteDoctor(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetDoctor(ctx, id); err != nil {
		return err
	}

	if err := s.mappingRepo.DeleteByDoctor(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor mappings: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	s.cache.Delete(listCacheKey)
	return nil
}
