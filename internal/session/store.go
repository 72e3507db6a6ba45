package session

import (
	"sync"
	"time"
)

// Session guarda o estado de conversa de um usuário do chat: o telefone
// compartilhado e o ano selecionado para consulta de KPI. O ano só tem
// significado quando o telefone já foi definido.
type Session struct {
	Phone        string
	SelectedYear int
	UpdatedAt    time.Time
}

// HasPhone indica se o usuário já se identificou compartilhando o contato
func (s Session) HasPhone() bool {
	return s.Phone != ""
}

const lockStripes = 64

// Store mantém as sessões de todos os usuários em memória. Nada é
// persistido: reiniciar o processo descarta todas as sessões.
//
// Além do mapa protegido por RWMutex, o Store mantém um conjunto fixo de
// locks por faixa de usuário (striping) para serializar eventos
// concorrentes do mesmo usuário — dois toques rápidos no mesmo botão não
// podem intercalar leituras e escritas da mesma sessão.
type Store struct {
	mu      sync.RWMutex
	entries map[int64]Session

	stripes [lockStripes]sync.Mutex
}

func NewStore() *Store {
	return &Store{
		entries: make(map[int64]Session),
	}
}

// Get retorna a sessão do usuário e se ela existe
func (s *Store) Get(userID int64) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.entries[userID]
	return sess, ok
}

// Set grava a sessão do usuário, carimbando o horário da atualização
func (s *Store) Set(userID int64, sess Session) {
	sess.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = sess
}

// Clear remove a sessão do usuário (comando de reinício)
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
}

// Len retorna o número de sessões ativas
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// PurgeIdle remove sessões sem atividade há mais tempo que o TTL e
// retorna quantas foram removidas
func (s *Store) PurgeIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	for userID, sess := range s.entries {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.entries, userID)
			purged++
		}
	}

	return purged
}

// WithLock executa fn segurando o lock da faixa do usuário. Eventos do
// mesmo usuário ficam serializados; usuários de faixas diferentes seguem
// em paralelo.
func (s *Store) WithLock(userID int64, fn func()) {
	stripe := &s.stripes[uint64(userID)%lockStripes]
	stripe.Lock()
	defer stripe.Unlock()

	fn()
}
