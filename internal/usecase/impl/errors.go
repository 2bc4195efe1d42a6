package impl

import (
	domainerrors "cakeshop/internal/domain/errors"
	"cakeshop/internal/errors"

	"github.com/google/uuid"
)

// persistenceError passes application errors through and reports anything else
// from the storage layer as a retry-safe persistence failure.
func persistenceError(err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}
