package service

import (
	"errors"

	"github.com/spec-kit/restaurant-service/internal/persistence"
	apperrors "github.com/spec-kit/restaurant-service/pkg/util/errorutil"
)

// mapStoreError turns backend sentinels into client errors; anything else is
// left for the boundary to report as an internal error.
func mapStoreError(err error, id string) error {
	if errors.Is(err, persistence.ErrInvalidID) {
		return apperrors.NewValidationError("invalid id", map[string]any{"id": id})
	}
	return err
}

// optionalDocument maps a lookup miss to a nil document.
func optionalDocument[T any](doc T, err error, id string) (T, error) {
	var zero T
	if errors.Is(err, persistence.ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, mapStoreError(err, id)
	}
	return doc, nil
}
