package database

import (
	"database/sql"
	"fmt"
	"math/rand"
)

const maxCodeAttempts = 25

// GenerateRepresentativeCode produces a unique REP-NNNNN code by rejection
// sampling against the existing representatives.
func GenerateRepresentativeCode(db *sql.DB) (string, error) {
	return generateUniqueCode(db, "REP", "representatives")
}

// GenerateTeacherCode produces a unique DOC-NNNNN code for teacher passengers.
func GenerateTeacherCode(db *sql.DB) (string, error) {
	return generateUniqueCode(db, "DOC", "passengers")
}

func generateUniqueCode(db *sql.DB, prefix, table string) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := fmt.Sprintf("%s-%05d", prefix, 10000+rand.Intn(90000))

		var exists bool
		query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE code = $1)`, table)
		if err := db.QueryRow(query, code).Scan(&exists); err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique %s code after %d attempts", prefix, maxCodeAttempts)
}
