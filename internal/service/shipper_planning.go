package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/target/rmsgas-api/internal/core"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
)

// ShipperPlanningServiceOptions groups dependencies for ShipperPlanningService.
type ShipperPlanningServiceOptions struct {
	Repo core.ShipperPlanningRepository
}

// ShipperPlanningService exposes shipper planning listing and bulk maintenance.
type ShipperPlanningService struct {
	repo core.ShipperPlanningRepository
}

// NewShipperPlanningService constructs a new ShipperPlanningService.
func NewShipperPlanningService(opts ShipperPlanningServiceOptions) (*ShipperPlanningService, error) {
	if opts.Repo == nil {
		return nil, errors.New("ShipperPlanningRepository is required")
	}
	return &ShipperPlanningService{repo: opts.Repo}, nil
}

// List returns planning rows matching filter ordered by delivery date.
func (s *ShipperPlanningService) List(
	ctx context.Context,
	filter model.ShipperPlanningFilter,
) ([]*model.ShipperPlanning, error) {
	return s.repo.List(ctx, filter)
}

// BulkCreate inserts every input row in one transaction.
func (s *ShipperPlanningService) BulkCreate(
	ctx context.Context,
	inputs []model.ShipperPlanningInput,
) (*model.BulkInsertResult, error) {
	if err := model.ValidateBulkPlanning(inputs); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	rows := make([]*model.ShipperPlanning, 0, len(inputs))
	for i := range inputs {
		row, err := inputs[i].ToPlanning()
		if err != nil {
			return nil, apperrors.Validationf("record %d: %v", i, err)
		}
		rows = append(rows, row)
	}

	n, err := s.repo.BulkCreate(ctx, rows)
	if err != nil {
		return nil, err
	}
	return &model.BulkInsertResult{
		Success:  true,
		Message:  fmt.Sprintf("%d records inserted successfully", n),
		Inserted: n,
	}, nil
}

// BulkDelete removes the rows matching criteria.
func (s *ShipperPlanningService) BulkDelete(
	ctx context.Context,
	criteria model.ShipperPlanningDeleteCriteria,
) (*model.BulkDeleteResult, error) {
	n, err := s.repo.BulkDelete(ctx, criteria)
	if err != nil {
		return nil, err
	}
	return &model.BulkDeleteResult{
		Success: true,
		Message: fmt.Sprintf("%d records deleted successfully", n),
		Deleted: n,
	}, nil
}
