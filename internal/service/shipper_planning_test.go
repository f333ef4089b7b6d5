package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/target/rmsgas-api/internal/domain/model"
	apperrors "github.com/target/rmsgas-api/internal/errors"
	"github.com/target/rmsgas-api/internal/mocks"
	"github.com/target/rmsgas-api/internal/testutil"
	"go.uber.org/mock/gomock"
)

func newShipperPlanningService(t *testing.T) (*ShipperPlanningService, *mocks.MockShipperPlanningRepository) {
	t.Helper()
	repo := mocks.NewMockShipperPlanningRepository(gomock.NewController(t))
	svc, err := NewShipperPlanningService(ShipperPlanningServiceOptions{Repo: repo})
	require.NoError(t, err)
	return svc, repo
}

func TestShipperPlanningService_BulkCreate(t *testing.T) {
	svc, repo := newShipperPlanningService(t)

	repo.EXPECT().BulkCreate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*model.ShipperPlanning) (int64, error) {
			require.Len(t, rows, 2)
			require.NotNil(t, rows[0].DeliveryDate)
			assert.Equal(t, testutil.Date("2024-05-01"), *rows[0].DeliveryDate)
			assert.Nil(t, rows[1].DeliveryDate)
			return int64(len(rows)), nil
		})

	res, err := svc.BulkCreate(context.Background(), []model.ShipperPlanningInput{
		{PortfolioID: testutil.StringPtr("P1"), DeliveryDate: testutil.StringPtr("2024-05-01")},
		{Shipper: testutil.StringPtr("ACME")},
	})
	require.NoError(t, err)
	assert.Equal(t, &model.BulkInsertResult{Success: true, Message: "2 records inserted successfully", Inserted: 2}, res)
}

func TestShipperPlanningService_BulkCreateValidation(t *testing.T) {
	svc, _ := newShipperPlanningService(t)

	_, err := svc.BulkCreate(context.Background(), nil)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.BulkCreate(context.Background(), []model.ShipperPlanningInput{
		{DeliveryDate: testutil.StringPtr("05/01/2024")},
	})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "record 0")
}

func TestShipperPlanningService_BulkDelete(t *testing.T) {
	svc, repo := newShipperPlanningService(t)
	criteria := model.ShipperPlanningDeleteCriteria{Shippers: []string{"ACME"}}
	repo.EXPECT().BulkDelete(gomock.Any(), criteria).Return(int64(4), nil)

	res, err := svc.BulkDelete(context.Background(), criteria)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Deleted)
	assert.Equal(t, "4 records deleted successfully", res.Message)
}
