package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SemykinG/DigitalTwin-DigiSalama/internal/models"
	appErrors "github.com/SemykinG/DigitalTwin-DigiSalama/pkg/errors"
)

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func loadVehicle(ctx context.Context, vehicles vehicleFinder, id int64) (*models.Vehicle, error) {
	vehicle, err := vehicles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("vehicle with ID: '%d' not found", id))
		}
		return nil, internalError(err, "failed to load vehicle")
	}
	return vehicle, nil
}
