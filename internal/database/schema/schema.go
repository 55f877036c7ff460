package schema

import (
	"context"
	"fmt"

	"qrupay/internal/database"
)

var expected = map[string][]string{
	"users": {"id", "email", "password_hash", "created_at", "updated_at"},
	"medical_profiles": {
		"id", "user_id", "blood_group", "allergies", "chronic_conditions",
		"medications", "emergency_contact_name", "emergency_contact_phone",
		"emergency_contact_relation", "additional_notes", "gender", "age",
		"weight", "address", "is_public", "created_at", "updated_at",
	},
	"medications": {
		"id", "user_id", "name", "dosage", "frequency", "times",
		"start_date", "end_date", "notes", "created_at",
	},
}

// Verify fails fast on schema drift so a half-migrated database is
// caught at startup instead of as scattered query errors.
func Verify(ctx context.Context, db database.DB) error {
	for table, columns := range expected {
		if err := ensureTableColumns(ctx, db, table, columns...); err != nil {
			return err
		}
	}
	return nil
}

func ensureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, col := range columns {
		if _, ok := existing[col]; !ok {
			return fmt.Errorf("schema mismatch: missing column %s.%s", table, col)
		}
	}
	return nil
}
