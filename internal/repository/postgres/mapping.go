package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/healthrecord-api/internal/model"
	"github.com/jwalitptl/healthrecord-api/internal/repository"
)

type mappingRepository struct {
	db *sqlx.DB
}

func NewMappingRepository(db *sqlx.DB) repository.MappingRepository {
	return &mappingRepository{db: db}
}

func (r *mappingRepository) Create(ctx context.Context, mapping *model.Mapping) error {
	query := `
		INSERT INTO mappings (id, patient_id, doctor_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	mapping.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		mapping.ID,
		mapping.PatientID,
		mapping.DoctorID,
		mapping.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create mapping: %w", err)
	}
	return nil
}

// detailRow flattens the joined columns. Doctor columns are nullable
// because a mapping can reference a doctor id that was never created.
type detailRow struct {
	model.Mapping
	PatientName      string         `db:"patient_name"`
	PatientUserID    uuid.UUID      `db:"patient_user_id"`
	PatientCreatedAt time.Time      `db:"patient_created_at"`
	PatientUpdatedAt time.Time      `db:"patient_updated_at"`
	DoctorName       sql.NullString `db:"doctor_name"`
	DoctorSpeciality sql.NullString `db:"doctor_speciality"`
	DoctorCreatedAt  sql.NullTime   `db:"doctor_created_at"`
	DoctorUpdatedAt  sql.NullTime   `db:"doctor_updated_at"`
}

func (row *detailRow) doctor() *model.Doctor {
	if !row.DoctorName.Valid {
		return nil
	}
	doctor := &model.Doctor{
		Base: model.Base{
			ID:        row.DoctorID,
			CreatedAt: row.DoctorCreatedAt.Time,
			UpdatedAt: row.DoctorUpdatedAt.Time,
		},
		Name: row.DoctorName.String,
	}
	if row.DoctorSpeciality.Valid {
		speciality := row.DoctorSpeciality.String
		doctor.Speciality = &speciality
	}
	return doctor
}

func (r *mappingRepository) ListDetailed(ctx context.Context) ([]*model.MappingDetail, error) {
	query := `
		SELECT m.id, m.patient_id, m.doctor_id, m.created_at,
		       p.name AS patient_name, p.user_id AS patient_user_id,
		       p.created_at AS patient_created_at, p.updated_at AS patient_updated_at,
		       d.name AS doctor_name, d.speciality AS doctor_speciality,
		       d.created_at AS doctor_created_at, d.updated_at AS doctor_updated_at
		FROM mappings m
		JOIN patients p ON p.id = m.patient_id
		LEFT JOIN doctors d ON d.id = m.doctor_id
		ORDER BY m.created_at
	`
	rows := []*detailRow{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list mappings: %w", err)
	}

	details := make([]*model.MappingDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, &model.MappingDetail{
			Mapping: row.Mapping,
			Patient: model.Patient{
				Base: model.Base{
					ID:        row.PatientID,
					CreatedAt: row.PatientCreatedAt,
					UpdatedAt: row.PatientUpdatedAt,
				},
				Name:   row.PatientName,
				UserID: row.PatientUserID,
			},
			Doctor: row.doctor(),
		})
	}
	return details, nil
}

type patientMappingRow struct {
	model.Mapping
	DoctorName       sql.NullString `db:"doctor_name"`
	DoctorSpeciality sql.NullString `db:"doctor_speciality"`
	DoctorCreatedAt  sql.NullTime   `db:"doctor_created_at"`
	DoctorUpdatedAt  sql.NullTime   `db:"doctor_updated_at"`
}

func (r *mappingRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientMapping, error) {
	query := `
		SELECT m.id, m.patient_id, m.doctor_id, m.created_at,
		       d.name AS doctor_name, d.speciality AS doctor_speciality,
		       d.created_at AS doctor_created_at, d.updated_at AS doctor_updated_at
		FROM mappings m
		LEFT JOIN doctors d ON d.id = m.doctor_id
		WHERE m.patient_id = $1
		ORDER BY m.created_at
	`
	rows := []*patientMappingRow{}
	if err := r.db.SelectContext(ctx, &rows, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list mappings for patient: %w", err)
	}

	mappings := make([]*model.PatientMapping, 0, len(rows))
	for _, row := range rows {
		detail := detailRow{
			Mapping:          row.Mapping,
			DoctorName:       row.DoctorName,
			DoctorSpeciality: row.DoctorSpeciality,
			DoctorCreatedAt:  row.DoctorCreatedAt,
			DoctorUpdatedAt:  row.DoctorUpdatedAt,
		}
		mappings = append(mappings, &model.PatientMapping{
			Mapping: row.Mapping,
			Doctor:  detail.doctor(),
		})
	}
	return mappings, nil
}

func (r *mappingRepository) Get(ctx context.Context, id uuid.UUID) (*model.Mapping, error) {
	query := `SELECT * FROM mappings WHERE id = $1`
	var mapping model.Mapping
	err := r.db.GetContext(ctx, &mapping, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mapping: %w", err)
	}
	return &mapping, nil
}

func (r *mappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM mappings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete mapping: %w", err)
	}
	return nil
}

func (r *mappingRepository) DeleteByPatient(ctx context.Context, patientID uuid.UUID) error {
	query := `DELETE FROM mappings WHERE patient_id = $1`
	_, err := r.db.ExecContext(ctx, query, patientID)
	if err != nil {
		return fmt.Errorf("failed to delete mappings for patient: %w", err)
	}
	return nil
}

func (r *mappingRepository) DeleteByDoctor(ctx context.Context, doctorID uuid.UUID) error {
	query := `DELETE FROM mappings WHERE doctor_id = $1`
	_, err := r.db.ExecContext(ctx, query, doctorID)
	if err != nil {
		return fmt.Errorf("failed to delete mappings for doctor: %w", err)
	}
	return nil
}
