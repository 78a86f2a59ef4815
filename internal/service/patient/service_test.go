package patient

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
	apperrors "github.com/jwalitptl/healthrecord-api/pkg/errors"
)

var (
	_ repository.PatientRepository = (*mockPatientRepository)(nil)
	_ repository.MappingRepository = (*mockMappingRepository)(nil)
)

type mockPatientRepository struct {
	CreateFunc      func(ctx context.Context, patient *model.Patient) error
	ListByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]*model.Patient, error)
	GetForOwnerFunc func(ctx context.Context, id, ownerID uuid.UUID) (*model.Patient, error)
	UpdateFunc      func(ctx context.Context, patient *model.Patient) error
	DeleteFunc      func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *model.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Patient, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockPatientRepository) GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*model.Patient, error) {
	if m.GetForOwnerFunc != nil {
		return m.GetForOwnerFunc(ctx, id, ownerID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, patient)
	}
	return nil
}

func (m *mockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockMappingRepository struct {
	DeleteByPatientFunc func(ctx context.Context, patientID uuid.UUID) error
}

func (m *mockMappingRepository) Create(ctx context.Context, mapping *model.Mapping) error {
	return nil
}

func (m *mockMappingRepository) ListDetailed(ctx context.Context) ([]*model.MappingDetail, error) {
	return nil, nil
}

func (m *mockMappingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientMapping, error) {
	return nil, nil
}

func (m *mockMappingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Mapping, error) {
	return nil, repository.ErrNotFound
}

func (m *mockMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (m *mockMappingRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	if m.DeleteByPatientFunc != nil {
		return m.DeleteByPatientFunc(ctx, patientID)
	}
	return nil
}

func (m *mockMappingRepository) DeleteByDoctor(ctx context.Context, doctorID uuid.UUID) error {
	return nil
}

func ownedPatient(id, ownerID uuid.UUID, name string) *model.Patient {
	return &model.Patient{
		Base:   model.Base{ID: id},
		Name:   name,
		UserID: ownerID,
	}
}

func TestCreatePatientSetsOwner(t *testing.T) {
	ownerID := uuid.New()
	var created *model.Patient
	repo := &mockPatientRepository{
		CreateFunc: func(ctx context.Context, patient *model.Patient) error {
			created = patient
			return nil
		},
	}
	svc := NewService(repo, &mockMappingRepository{})

	got, err := svc.CreatePatient(context.Background(), ownerID, &model.CreatePatientRequest{Name: "John"})
	require.NoError(t, err)

	assert.Equal(t, "John", got.Name)
	assert.Equal(t, ownerID, got.UserID)
	assert.Equal(t, created, got)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

// A patient owned by someone else must surface exactly like a missing
// one.
func TestGetPatientForeignOwnerNotFound(t *testing.T) {
	ownerID := uuid.New()
	patientID := uuid.New()
	repo := &mockPatientRepository{
		GetForOwnerFunc: func(ctx context.Context, id, owner uuid.UUID) (*model.Patient, error) {
			if owner == ownerID {
				return ownedPatient(id, owner, "John"), nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewService(repo, &mockMappingRepository{})

	_, err := svc.GetPatient(context.Background(), patientID, uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.FromError(err).Code)

	got, err := svc.GetPatient(context.Background(), patientID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "John", got.Name)
}

// An empty-string name keeps the stored value; only non-empty values
// overwrite. Counter-intuitive, but it is the documented contract.
func TestUpdatePatientEmptyNameKeepsValue(t *testing.T) {
	ownerID := uuid.New()
	patientID := uuid.New()
	repo := &mockPatientRepository{
		GetForOwnerFunc: func(ctx context.Context, id, owner uuid.UUID) (*model.Patient, error) {
			return ownedPatient(id, owner, "John"), nil
		},
	}
	svc := NewService(repo, &mockMappingRepository{})

	updated, err := svc.UpdatePatient(context.Background(), patientID, ownerID, &model.UpdatePatientRequest{Name: ""})
	require.NoError(t, err)
	assert.Equal(t, "John", updated.Name)

	updated, err = svc.UpdatePatient(context.Background(), patientID, ownerID, &model.UpdatePatientRequest{Name: "Jane"})
	require.NoError(t, err)
	assert.Equal(t, "Jane", updated.Name)
}

func TestUpdatePatientForeignOwnerNotFound(t *testing.T) {
	repo := &mockPatientRepository{}
	svc := NewService(repo, &mockMappingRepository{})

	_, err := svc.UpdatePatient(context.Background(), uuid.New(), uuid.New(), &model.UpdatePatientRequest{Name: "Jane"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.FromError(err).Code)
}

func TestDeletePatientCascadesMappings(t *testing.T) {
	ownerID := uuid.New()
	patientID := uuid.New()
	var cascaded, deleted bool

	repo := &mockPatientRepository{
		GetForOwnerFunc: func(ctx context.Context, id, owner uuid.UUID) (*model.Patient, error) {
			return ownedPatient(id, owner, "John"), nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	mappingRepo := &mockMappingRepository{
		DeleteByPatientFunc: func(ctx context.Context, id uuid.UUID) error {
			cascaded = true
			assert.Equal(t, patientID, id)
			return nil
		},
	}
	svc := NewService(repo, mappingRepo)

	require.NoError(t, svc.DeletePatient(context.Background(), patientID, ownerID))
	assert.True(t, cascaded)
	assert.True(t, deleted)
}

func TestDeletePatientForeignOwnerNotFound(t *testing.T) {
	svc := NewService(&mockPatientRepository{}, &mockMappingRepository{})

	err := svc.DeletePatient(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrNotFound, apperrors.FromError(err).Code)
}
