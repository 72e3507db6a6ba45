package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kpi-bot/internal/session"
)

func TestSessionCleanupService_cleanupSessions(t *testing.T) {
	store := session.NewStore()
	store.Set(1, session.Session{Phone: "79331234567"})
	store.Set(2, session.Session{Phone: "79337654321"})

	// TTL zero: toda sessão gravada antes da rodada conta como ociosa
	time.Sleep(time.Millisecond)

	service := &SessionCleanupService{
		sessions: store,
		config: SessionCleanupConfig{
			IdleTTL: 0,
			Enabled: true,
		},
	}

	service.cleanupSessions()

	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 2, service.lastPurgedCount)
	assert.False(t, service.lastCleanupAt.IsZero())
}

func TestSessionCleanupService_cleanupSessionsKeepsActive(t *testing.T) {
	store := session.NewStore()
	store.Set(1, session.Session{Phone: "79331234567"})

	service := &SessionCleanupService{
		sessions: store,
		config: SessionCleanupConfig{
			IdleTTL: time.Hour,
			Enabled: true,
		},
	}

	service.cleanupSessions()

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 0, service.lastPurgedCount)
}
