package services

import (
	"errors"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
)

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrDuplicateDate) ||
		errors.Is(err, apperrors.ErrOverwriteRequired) ||
		errors.Is(err, apperrors.ErrEmptyPeriod) ||
		errors.Is(err, apperrors.ErrUnauthorized)
}
