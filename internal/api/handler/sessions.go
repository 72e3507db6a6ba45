package handler

import (
	"net/http"

	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/pkg/log"
)

type sessionStatsResponse struct {
	ActiveSessions int `json:"active_sessions"`
}

// SessionStatsHandler expõe a contagem de sessões de conversa ativas
func SessionStatsHandler(sessions *session.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := sessionStatsResponse{
			ActiveSessions: sessions.Len(),
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.L.WithError(err).Warn("Erro ao responder estatísticas de sessão")
		}
	})
}
