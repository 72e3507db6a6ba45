package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/kpi-bot/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-bot/internal/api/handler"
	"github.com/vfg2006/kpi-bot/internal/api/handler/router"
	"github.com/vfg2006/kpi-bot/internal/config"
	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/pkg/log"
	"github.com/vfg2006/kpi-bot/pkg/middleware"
)

// Server é a superfície HTTP de operação do bot: healthcheck e
// estatísticas de sessão. Nenhuma rota de produto vive aqui.
type Server struct {
	httpServer *http.Server
}

func New(
	cfg *config.Config,
	conn *postgres.Connection,
	sessions *session.Store,
) *Server {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(conn)...),
		router.WithRoutes(handler.Sessions(sessions)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Ops.Host, cfg.Ops.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run sobe o servidor e aguarda o cancelamento do contexto para
// desligar graciosamente
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor de operação iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.Info("Desligando o servidor de operação")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor de operação")
		return err
	}

	log.L.Info("Servidor de operação desligado com sucesso")
	return nil
}
