package handler

import (
	"net/http"

	"github.com/vfg2006/bakery-dashboard/internal/api/handler/router"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboard(generator reporting.Generator, renderers Renderers) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: GetDashboard(generator, renderers),
		},
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetReport(generator, renderers),
		},
		{
			Path:    "/v1/report/sections/:id/chart",
			Method:  http.MethodGet,
			Handler: GetSectionChart(generator, renderers),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
