package repository

import (
	"context"
	"database/sql"
	"errors"

	"qrupay/internal/database"
	"qrupay/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Optional text fields are stored as NULL when blank (NULLIF on write,
// COALESCE on read) so the public view can treat absence uniformly.
const profileColumns = `id, user_id,
	COALESCE(blood_group, ''), COALESCE(allergies, ''), COALESCE(chronic_conditions, ''),
	COALESCE(medications, ''), emergency_contact_name, emergency_contact_phone,
	COALESCE(emergency_contact_relation, ''), COALESCE(additional_notes, ''),
	COALESCE(gender, ''), age, weight, COALESCE(address, ''),
	is_public, created_at, updated_at`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.MedicalProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM medical_profiles WHERE user_id = $1`,
		userID,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) GetPublicByID(ctx context.Context, id uuid.UUID) (profile.MedicalProfile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM medical_profiles WHERE id = $1 AND is_public = TRUE`,
		id,
	)
	return scanProfile(row)
}

// Upsert keys on the owning user. A content write never touches
// is_public; visibility is toggled only through SetVisibility.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, p profile.MedicalProfile) (profile.MedicalProfile, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO medical_profiles (
			id, user_id, blood_group, allergies, chronic_conditions, medications,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relation,
			additional_notes, gender, age, weight, address
		) VALUES (
			$1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''),
			$7, $8, NULLIF($9, ''), NULLIF($10, ''), NULLIF($11, ''), $12, $13, NULLIF($14, '')
		)
		ON CONFLICT (user_id) DO UPDATE SET
			blood_group = EXCLUDED.blood_group,
			allergies = EXCLUDED.allergies,
			chronic_conditions = EXCLUDED.chronic_conditions,
			medications = EXCLUDED.medications,
			emergency_contact_name = EXCLUDED.emergency_contact_name,
			emergency_contact_phone = EXCLUDED.emergency_contact_phone,
			emergency_contact_relation = EXCLUDED.emergency_contact_relation,
			additional_notes = EXCLUDED.additional_notes,
			gender = EXCLUDED.gender,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			address = EXCLUDED.address,
			updated_at = NOW()
		RETURNING `+profileColumns,
		p.ID, p.UserID, p.BloodGroup, p.Allergies, p.ChronicConditions, p.Medications,
		p.EmergencyContactName, p.EmergencyContactPhone, p.EmergencyContactRelation,
		p.AdditionalNotes, p.Gender, p.Age, p.Weight, p.Address,
	)
	return scanProfile(row)
}

func (r *PostgresProfileRepository) SetVisibility(ctx context.Context, userID uuid.UUID, public bool) (profile.MedicalProfile, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE medical_profiles SET is_public = $2, updated_at = NOW()
		 WHERE user_id = $1
		 RETURNING `+profileColumns,
		userID, public,
	)
	return scanProfile(row)
}

func scanProfile(row database.Row) (profile.MedicalProfile, error) {
	var p profile.MedicalProfile
	err := row.Scan(
		&p.ID, &p.UserID,
		&p.BloodGroup, &p.Allergies, &p.ChronicConditions,
		&p.Medications, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.EmergencyContactRelation, &p.AdditionalNotes,
		&p.Gender, &p.Age, &p.Weight, &p.Address,
		&p.IsPublic, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return profile.MedicalProfile{}, profile.ErrNotFound
		}
		return profile.MedicalProfile{}, err
	}
	return p, nil
}
