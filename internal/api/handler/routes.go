package handler

import (
	"net/http"

	"github.com/vfg2006/sales-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/catalog"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/enriching"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/meeting"
	"github.com/vfg2006/sales-dashboard-api/internal/usecases/profiling"
	"github.com/vfg2006/sales-dashboard-api/pkg/middleware"
)

// Caminhos liberados do AuthMiddleware
var PublicPaths = []string{"/healthcheck", "/v1/services/"}

func Healthcheck(deps map[string]Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(deps),
		},
	}
}

func Services(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServices(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodGet,
			Handler: GetService(service),
		},
	}
}

func Session() []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Meetings(service meeting.MeetingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meetings",
			Method:      http.MethodGet,
			Handler:     ListMeetings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meetings/:id",
			Method:      http.MethodGet,
			Handler:     GetMeeting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/stats",
			Method:      http.MethodGet,
			Handler:     GetDashboardStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Settings(service profiling.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings",
			Method:      http.MethodGet,
			Handler:     GetSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings",
			Method:      http.MethodDelete,
			Handler:     DiscardSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/channels/:channel/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleChannel(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/questions/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleQuestion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/load",
			Method:      http.MethodPost,
			Handler:     LoadICP(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/enabled",
			Method:      http.MethodPut,
			Handler:     SetICPEnabled(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/detail/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleICPDetail(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/employee-sizes/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleEmployeeSize(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/founded-years/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleFoundedYear(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/icp/save",
			Method:      http.MethodPost,
			Handler:     SaveICP(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Enrichment(service enriching.EnrichmentService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/enrichment/fields",
			Method:      http.MethodGet,
			Handler:     ListEnrichmentFields(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/enrichment",
			Method:      http.MethodPost,
			Handler:     SubmitEnrichment(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
