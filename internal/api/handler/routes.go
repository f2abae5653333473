package handler

import (
	"net/http"

	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/api/handler/router"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/internal/usecases/dashboarding"
	"github.com/Raquetazo00/segundo-parcial-laboratorio4/pkg/metrics"
)

func Healthcheck(source string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(source),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.DashboardService) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: DashboardPage(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/export",
			Method:  http.MethodGet,
			Handler: ExportDashboard(service),
		},
		{
			Path:    "/v1/branches",
			Method:  http.MethodGet,
			Handler: ListBranches(service),
		},
		{
			Path:    "/v1/products/chart",
			Method:  http.MethodGet,
			Handler: GetProductChart(service),
		},
	}
}
