package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/mocks"
	"github.com/craftora/admin-api/internal/ports"
	"github.com/craftora/admin-api/internal/service"
)

func newAnalyticsService(t *testing.T) (*service.AnalyticsService, *mocks.MockDashboardGateway, *mocks.MockOrderGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	dashboard := mocks.NewMockDashboardGateway(ctrl)
	orders := mocks.NewMockOrderGateway(ctrl)
	svc := service.NewAnalyticsService(service.AnalyticsServiceOptions{
		Dashboard: dashboard,
		Orders:    orders,
	})
	return svc, dashboard, orders
}

func TestOverviewFansOut(t *testing.T) {
	svc, dashboard, orders := newAnalyticsService(t)

	overview := &model.DashboardOverview{}
	stats := &model.OrderStats{TotalOrders: 7}
	recent := []model.Order{{ID: "o-1"}, {ID: "o-2"}}

	dashboard.EXPECT().DashboardOverview(gomock.Any()).Return(overview, nil)
	orders.EXPECT().
		OrderStats(gomock.Any(), ports.OrderStatsQuery{StartDate: "2025-06-01", EndDate: "2025-06-30"}).
		Return(stats, nil)
	orders.EXPECT().RecentOrders(gomock.Any(), 5).Return(recent, nil)

	result, err := svc.Overview(context.Background(), service.OverviewQuery{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
		Recent:    5,
	})
	require.NoError(t, err)
	assert.Same(t, overview, result.Overview)
	assert.Same(t, stats, result.OrderStats)
	assert.Equal(t, recent, result.RecentOrders)
}

func TestOverviewPropagatesFirstError(t *testing.T) {
	svc, dashboard, orders := newAnalyticsService(t)

	dashboard.EXPECT().DashboardOverview(gomock.Any()).
		Return(nil, apperrors.Unauthorized("token rejected"))
	orders.EXPECT().OrderStats(gomock.Any(), gomock.Any()).
		Return(&model.OrderStats{}, nil).AnyTimes()
	orders.EXPECT().RecentOrders(gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	result, err := svc.Overview(context.Background(), service.OverviewQuery{Recent: 10})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.CodeOf(err))
}
