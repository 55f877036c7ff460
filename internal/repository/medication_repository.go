package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"qrupay/internal/database"
	"qrupay/internal/domain/medication"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const medicationColumns = `id, user_id, name, COALESCE(dosage, ''), frequency,
	times, start_date, end_date, COALESCE(notes, ''), created_at`

type PostgresMedicationRepository struct {
	db database.DB
}

func NewPostgresMedicationRepository(db database.DB) *PostgresMedicationRepository {
	return &PostgresMedicationRepository{db: db}
}

func (r *PostgresMedicationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]medication.Medication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+medicationColumns+` FROM medications
		 WHERE user_id = $1
		 ORDER BY start_date DESC, created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMedications(rows)
}

func (r *PostgresMedicationRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (medication.Medication, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+medicationColumns+` FROM medications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return scanMedication(row)
}

func (r *PostgresMedicationRepository) Create(ctx context.Context, m medication.Medication) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO medications (id, user_id, name, dosage, frequency, times, start_date, end_date, notes, created_at)
		 VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, NULLIF($9, ''), $10)`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Times, m.StartDate, m.EndDate, m.Notes, m.CreatedAt,
	)
	return err
}

func (r *PostgresMedicationRepository) Update(ctx context.Context, m medication.Medication) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE medications SET
			name = $3, dosage = NULLIF($4, ''), frequency = $5, times = $6,
			start_date = $7, end_date = $8, notes = NULLIF($9, '')
		 WHERE id = $1 AND user_id = $2`,
		m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.Times, m.StartDate, m.EndDate, m.Notes,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return medication.ErrNotFound
	}
	return nil
}

func (r *PostgresMedicationRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	affected, err := r.db.Exec(ctx,
		`DELETE FROM medications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return medication.ErrNotFound
	}
	return nil
}

func (r *PostgresMedicationRepository) ListActive(ctx context.Context, day time.Time) ([]medication.Medication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+medicationColumns+` FROM medications
		 WHERE start_date <= $1 AND (end_date IS NULL OR end_date >= $1)`,
		day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectMedications(rows)
}

func collectMedications(rows database.Rows) ([]medication.Medication, error) {
	out := make([]medication.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanMedication(row database.Row) (medication.Medication, error) {
	var m medication.Medication
	err := row.Scan(
		&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency,
		&m.Times, &m.StartDate, &m.EndDate, &m.Notes, &m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return medication.Medication{}, medication.ErrNotFound
		}
		return medication.Medication{}, err
	}
	return m, nil
}
