package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_SetGetClear(t *testing.T) {
	store := NewStore()

	_, ok := store.Get(42)
	assert.False(t, ok)

	store.Set(42, Session{Phone: "79331234567"})

	sess, ok := store.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "79331234567", sess.Phone)
	assert.True(t, sess.HasPhone())
	assert.False(t, sess.UpdatedAt.IsZero())

	// Selecionar o ano não pode apagar o telefone
	sess.SelectedYear = 2023
	store.Set(42, sess)

	sess, _ = store.Get(42)
	assert.Equal(t, "79331234567", sess.Phone)
	assert.Equal(t, 2023, sess.SelectedYear)

	store.Clear(42)
	_, ok = store.Get(42)
	assert.False(t, ok)
}

func TestStore_Len(t *testing.T) {
	store := NewStore()
	assert.Equal(t, 0, store.Len())

	store.Set(1, Session{Phone: "111"})
	store.Set(2, Session{Phone: "222"})
	store.Set(1, Session{Phone: "333"}) // sobrescreve, não duplica

	assert.Equal(t, 2, store.Len())
}

func TestStore_PurgeIdle(t *testing.T) {
	store := NewStore()

	store.Set(1, Session{Phone: "111"})
	store.Set(2, Session{Phone: "222"})

	// Com TTL grande nada expira
	assert.Equal(t, 0, store.PurgeIdle(time.Hour))
	assert.Equal(t, 2, store.Len())

	// Envelhece uma das sessões diretamente no mapa
	store.mu.Lock()
	sess := store.entries[1]
	sess.UpdatedAt = time.Now().Add(-2 * time.Hour)
	store.entries[1] = sess
	store.mu.Unlock()

	assert.Equal(t, 1, store.PurgeIdle(time.Hour))
	assert.Equal(t, 1, store.Len())

	_, ok := store.Get(1)
	assert.False(t, ok)
	_, ok = store.Get(2)
	assert.True(t, ok)
}

func TestStore_WithLockSerializesSameUser(t *testing.T) {
	store := NewStore()

	const iterations = 200
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.WithLock(7, func() {
				counter++
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, iterations, counter)
}
