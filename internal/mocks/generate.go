// Package mocks provides mock implementations for testing the admin gateway.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the gateway port interfaces. The generated files are committed so tests run
// without a codegen step.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	orders := mocks.NewMockOrderGateway(ctrl)
//	orders.EXPECT().RecentOrders(gomock.Any(), 10).Return(fixture, nil)
package mocks

// Generate mock for OrderGateway interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=order_gateway_mock.go github.com/craftora/admin-api/internal/ports OrderGateway

// Generate mock for DashboardGateway interface from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=dashboard_gateway_mock.go github.com/craftora/admin-api/internal/ports DashboardGateway
