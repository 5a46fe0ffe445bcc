package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/craftora/admin-api/internal/domain/model"
	"github.com/craftora/admin-api/internal/ports"
)

// AnalyticsServiceOptions groups dependencies for AnalyticsService.
type AnalyticsServiceOptions struct {
	Dashboard ports.DashboardGateway
	Orders    ports.OrderGateway
}

// AnalyticsService assembles the analytics screen from several upstream
// aggregates. The fan-out stays inside one request cycle; nothing outlives
// the caller.
type AnalyticsService struct {
	dashboard ports.DashboardGateway
	orders    ports.OrderGateway
}

// NewAnalyticsService constructs a new AnalyticsService.
func NewAnalyticsService(opts AnalyticsServiceOptions) *AnalyticsService {
	return &AnalyticsService{
		dashboard: opts.Dashboard,
		orders:    opts.Orders,
	}
}

// AnalyticsOverview is the combined analytics payload.
type AnalyticsOverview struct {
	Overview     *model.DashboardOverview `json:"overview"`
	OrderStats   *model.OrderStats        `json:"orderStats"`
	RecentOrders []model.Order            `json:"recentOrders"`
}

// OverviewQuery bounds the order statistics portion of the aggregate.
type OverviewQuery struct {
	StartDate string
	EndDate   string
	Recent    int
}

// Overview fetches the dashboard overview, order stats, and recent orders
// concurrently. The first failure cancels the remaining calls and is
// surfaced unchanged, keeping the error taxonomy intact.
func (s *AnalyticsService) Overview(ctx context.Context, q OverviewQuery) (*AnalyticsOverview, error) {
	result := &AnalyticsOverview{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview, err := s.dashboard.DashboardOverview(gctx)
		if err != nil {
			return err
		}
		result.Overview = overview
		return nil
	})

	g.Go(func() error {
		stats, err := s.orders.OrderStats(gctx, ports.OrderStatsQuery{
			StartDate: q.StartDate,
			EndDate:   q.EndDate,
		})
		if err != nil {
			return err
		}
		result.OrderStats = stats
		return nil
	})

	g.Go(func() error {
		orders, err := s.orders.RecentOrders(gctx, q.Recent)
		if err != nil {
			return err
		}
		result.RecentOrders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
