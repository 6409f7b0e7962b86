package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apierrors "github.com/yukikurage/demodb/internal/errors"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, apierrors.ErrNotFound},
		{"wrapped not found", fmt.Errorf("find: %w", gorm.ErrRecordNotFound), apierrors.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, apierrors.ErrDuplicate},
		{"foreign key", gorm.ErrForeignKeyViolated, apierrors.ErrForeignKey},
		{"check", gorm.ErrCheckConstraintViolated, apierrors.ErrInvalid},
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email"), apierrors.ErrDuplicate},
		{"mysql duplicate", errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.idx_users_email'"), apierrors.ErrDuplicate},
		{"postgres fk", errors.New(`ERROR: insert or update on table "tickets" violates foreign key constraint "fk_projects_tickets"`), apierrors.ErrForeignKey},
		{"sqlite fk", errors.New("FOREIGN KEY constraint failed"), apierrors.ErrForeignKey},
		{"sqlite check", errors.New("CHECK constraint failed: chk_users_updated_at"), apierrors.ErrInvalid},
		{"store error passes through", apierrors.ErrConflict, apierrors.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, Translate(tc.in), tc.want)
		})
	}

	assert.NoError(t, Translate(nil))

	other := errors.New("connection refused")
	assert.Same(t, other, Translate(other))
}
