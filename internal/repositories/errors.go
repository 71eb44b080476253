package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"tokobaju/internal/apperrors"
)

// translateError maps driver-level failures onto the shared taxonomy.
// Record-not-found becomes ErrNotFound and unique-constraint violations
// become ConflictError with the constraint detail; everything else passes
// through for the service layer to log and reclassify.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		detail := pgErr.Detail
		if detail == "" {
			detail = pgErr.Message
		}
		return apperrors.NewConflict(detail)
	}
	// SQLite wording, hit when tests run against the in-memory driver.
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return apperrors.NewConflict(err.Error())
	}
	return err
}
