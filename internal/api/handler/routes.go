package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-bot/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-bot/internal/api/handler/router"
	"github.com/vfg2006/kpi-bot/internal/session"
)

func Healthcheck(conn *postgres.Connection) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func Sessions(sessions *session.Store) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sessions/stats",
			Method:  http.MethodGet,
			Handler: SessionStatsHandler(sessions),
		},
	}
}
