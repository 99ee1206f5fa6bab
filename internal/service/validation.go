package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/spec-kit/warehouse-service/internal/repository"
	apperrors "github.com/spec-kit/warehouse-service/pkg/util"
)

// validateRequiredStrings rejects blank mandatory fields. Field names are
// sorted so the error message is stable.
func validateRequiredStrings(fields map[string]string) error {
	missing := []string{}
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return apperrors.NewValidationError(strings.Join(missing, ", ")+" required", map[string]any{"fields": missing})
}

func validateNonNegative(name string, value float64) error {
	if value < 0 {
		return apperrors.NewValidationError(name+" must not be negative", map[string]any{name: value})
	}
	return nil
}

func mapRepoError(err error, resource string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(resource, nil)
	}
	return apperrors.NewInternalError(err)
}
