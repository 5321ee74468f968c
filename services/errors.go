package services

import (
	"errors"
	"strings"

	"github.com/blogem/welfare-admin/apperrors"
	"github.com/blogem/welfare-admin/repositories"
)

// storeError translates a repository error about entity into an apperrors type.
func storeError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return apperrors.NewNotFound(entity + " not found")
	case errors.Is(err, repositories.ErrConflict):
		return apperrors.NewConflict(entity + " already exists")
	case errors.Is(err, repositories.ErrCorrupt):
		return apperrors.NewIntegrity("stored "+entity+" is corrupt", err)
	default:
		return apperrors.New(apperrors.ErrInternal, "failed to access "+entity, err)
	}
}

func validationError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return apperrors.NewInvalidRequest("validation failed: " + strings.Join(errs, ", "))
}
