package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/kpi-bot/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-bot/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type healthcheckResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

// HealthcheckHandler responde o estado do processo e da conexão com o
// banco do relatório
func HealthcheckHandler(conn *postgres.Connection) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthcheckResponse{
			Status:   "ok",
			Database: "ok",
			Time:     time.Now().Format(time.RFC3339),
		}

		status := http.StatusOK
		if err := conn.Ping(r.Context()); err != nil {
			log.L.WithError(err).Warn("Healthcheck: banco indisponível")
			response.Status = "degraded"
			response.Database = "unavailable"
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.L.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
