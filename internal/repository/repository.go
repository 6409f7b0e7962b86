package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apierrors "github.com/yukikurage/demodb/internal/errors"
)

// Translate maps GORM and driver errors onto the store errors. Errors the
// store does not classify are returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, apierrors.ErrNotFound),
		errors.Is(err, apierrors.ErrDuplicate),
		errors.Is(err, apierrors.ErrForeignKey),
		errors.Is(err, apierrors.ErrConflict),
		errors.Is(err, apierrors.ErrInvalid):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", apierrors.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", apierrors.ErrForeignKey, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", apierrors.ErrInvalid, err)
	}

	// Fallback for drivers whose codes GORM does not translate
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "Duplicate entry"),
		strings.Contains(msg, "duplicate key value"):
		return fmt.Errorf("%w: %v", apierrors.ErrDuplicate, err)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "a foreign key constraint fails"),
		strings.Contains(msg, "violates foreign key constraint"):
		return fmt.Errorf("%w: %v", apierrors.ErrForeignKey, err)
	case strings.Contains(msg, "CHECK constraint failed"),
		strings.Contains(msg, "violates check constraint"),
		strings.Contains(msg, "Check constraint"):
		return fmt.Errorf("%w: %v", apierrors.ErrInvalid, err)
	}

	return err
}
