// Package services holds the input helpers shared by the per-schema services.
package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	apierrors "github.com/yukikurage/demodb/internal/errors"
)

// Clean trims surrounding whitespace.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// CleanOptional trims s and maps blank text to nil.
func CleanOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// OptionalID maps a zero id to nil.
func OptionalID(id *uint64) *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// UTC converts an optional time to UTC at millisecond precision.
func UTC(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UTC().Truncate(time.Millisecond)
	return &v
}

// RoundHours rounds hours to the given number of decimal places.
func RoundHours(hours float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(hours*scale) / scale
}

// CheckRange fails with ErrInvalid when both bounds are set and end is
// before start.
func CheckRange(startField string, start *time.Time, endField string, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return fmt.Errorf("%w: %s must not be before %s", apierrors.ErrInvalid, endField, startField)
	}
	return nil
}
