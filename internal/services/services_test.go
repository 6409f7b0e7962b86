package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apierrors "github.com/yukikurage/demodb/internal/errors"
)

func TestCleanOptional(t *testing.T) {
	blank := "   "
	padded := "  text "

	assert.Nil(t, CleanOptional(nil))
	assert.Nil(t, CleanOptional(&blank))
	assert.Equal(t, "text", *CleanOptional(&padded))
}

func TestOptionalID(t *testing.T) {
	zero, id := uint64(0), uint64(7)

	assert.Nil(t, OptionalID(nil))
	assert.Nil(t, OptionalID(&zero))
	assert.Equal(t, uint64(7), *OptionalID(&id))
}

func TestUTC(t *testing.T) {
	local := time.Date(2025, 3, 1, 9, 30, 0, 123456789, time.FixedZone("JST", 9*3600))

	got := UTC(&local)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local.Truncate(time.Millisecond)))
	assert.Nil(t, UTC(&time.Time{}))
}

func TestRoundHours(t *testing.T) {
	assert.Equal(t, 2.35, RoundHours(2.3456, 2))
	assert.Equal(t, 2.3, RoundHours(2.3456, 1))
	assert.Equal(t, 8.0, RoundHours(7.96, 1))
}

func TestCheckRange(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)
	after := start.AddDate(0, 0, 1)

	assert.NoError(t, CheckRange("start_date", &start, "end_date", nil))
	assert.NoError(t, CheckRange("start_date", &start, "end_date", &after))
	assert.NoError(t, CheckRange("start_date", &start, "end_date", &start))

	err := CheckRange("start_date", &start, "end_date", &before)
	assert.ErrorIs(t, err, apierrors.ErrInvalid)
	assert.ErrorContains(t, err, "end_date must not be before start_date")
}
