package commands

import (
	"strings"

	"parcelhub/internal/core/domain/model/kernel"
	"parcelhub/internal/pkg/errs"
)

// parseID reads a required identifier from client input.
func parseID(field, raw string) (kernel.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(field)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(field, err)
	}
	return id, nil
}
