package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/kpi-bot/infrastructure/database/postgres"
	"github.com/vfg2006/kpi-bot/infrastructure/repository"
	"github.com/vfg2006/kpi-bot/internal/api"
	"github.com/vfg2006/kpi-bot/internal/bot"
	"github.com/vfg2006/kpi-bot/internal/config"
	"github.com/vfg2006/kpi-bot/internal/scheduler"
	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancela o contexto no primeiro sinal de término
	go func() {
		done := make(chan os.Signal, 1)
		signal.Notify(done, os.Interrupt, syscall.SIGTERM)
		<-done
		logrus.Info("Sinal de interrupção recebido")
		cancel()
	}()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	kpiRepo := repository.NewKPIReportRepository(pgConn)
	reporter := reporting.NewService(kpiRepo)
	sessions := session.NewStore()

	cleanupService := scheduler.NewSessionCleanupService(sessions, cfg)
	if err := cleanupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de sessões")
	} else {
		logrus.Info("Agendador de limpeza de sessões iniciado com sucesso")
	}

	opsServer := api.New(cfg, pgConn, sessions)
	go func() {
		if err := opsServer.Run(ctx); err != nil {
			logrus.WithError(err).Error("Erro no servidor de operação")
			cancel()
		}
	}()

	kpiBot, err := bot.New(cfg, reporter, sessions)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := kpiBot.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco da view de relatório
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
