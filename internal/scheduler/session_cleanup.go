package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/kpi-bot/internal/config"
	"github.com/vfg2006/kpi-bot/internal/session"
	"github.com/vfg2006/kpi-bot/pkg/log"
)

// SessionCleanupConfig representa a configuração do agendador de
// limpeza de sessões ociosas
type SessionCleanupConfig struct {
	CronSchedule string
	IdleTTL      time.Duration
	Enabled      bool
}

// SessionCleanupService remove periodicamente sessões de conversa sem
// atividade. As sessões vivem só em memória; a limpeza impede que o
// mapa cresça sem limite em processos de vida longa.
type SessionCleanupService struct {
	scheduler       *gocron.Scheduler
	config          SessionCleanupConfig
	sessions        *session.Store
	cleanupRunning  bool
	cleanupMutex    sync.Mutex
	lastCleanupAt   time.Time
	lastPurgedCount int
}

func NewSessionCleanupService(
	sessions *session.Store,
	appConfig *config.Config,
) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: appConfig.SessionCleanup.CronSchedule,
		IdleTTL:      appConfig.SessionCleanup.IdleTTL,
		Enabled:      appConfig.SessionCleanup.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"idle_ttl":      cleanupConfig.IdleTTL.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		sessions:  sessions,
	}
}

// Start agenda a limpeza e para o agendador quando o contexto é cancelado
func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Limpeza de sessões desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.cleanupSessions()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// cleanupSessions executa uma rodada de limpeza, ignorando disparos
// sobrepostos
func (s *SessionCleanupService) cleanupSessions() {
	s.cleanupMutex.Lock()
	if s.cleanupRunning {
		s.cleanupMutex.Unlock()
		log.L.Info("Limpeza de sessões já em andamento, ignorando")
		return
	}
	s.cleanupRunning = true
	s.cleanupMutex.Unlock()

	defer func() {
		s.cleanupMutex.Lock()
		s.cleanupRunning = false
		s.cleanupMutex.Unlock()
	}()

	purged := s.sessions.PurgeIdle(s.config.IdleTTL)

	s.cleanupMutex.Lock()
	s.lastCleanupAt = time.Now()
	s.lastPurgedCount = purged
	s.cleanupMutex.Unlock()

	if purged > 0 {
		log.L.WithFields(log.Fields{
			"purged_sessions": purged,
			"active_sessions": s.sessions.Len(),
		}).Info("Sessões ociosas removidas")
	}
}
