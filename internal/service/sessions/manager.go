package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LittleLemon-Booking/internal/service/bookingform"
)

// Deps зависимости, общие для всех сессий
type Deps struct {
	Machine   *bookingform.Machine
	Engine    AvailabilityEngine
	Submitter BookingSubmitter
	Store     RecordStore
	Metrics   Metrics // может быть nil
	Clock     Clock
	Logger    Logger
}

// Manager реестр сессий формы бронирования
type Manager struct {
	deps *Deps
	ttl  time.Duration

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager создает реестр. ttl = 0 отключает вытеснение неактивных сессий.
func NewManager(deps *Deps, ttl time.Duration) *Manager {
	return &Manager{
		deps:     deps,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Create открывает новую сессию
func (m *Manager) Create() *Session {
	id := uuid.NewString()
	s := newSession(id, m.deps, m.deps.Clock.Now())

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	if m.deps.Metrics != nil {
		m.deps.Metrics.SessionOpened()
	}
	m.deps.Logger.Info("Create: session %s opened", id)

	return s
}

// Get возвращает сессию и отмечает её активность
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	s.touch(m.deps.Clock.Now())
	return s, nil
}

// GetOrCreate возвращает существующую сессию или открывает новую.
// Второе значение true, если сессия создана.
func (m *Manager) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if s, err := m.Get(id); err == nil {
			return s, false
		}
	}
	return m.Create(), true
}

// Len количество открытых сессий
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep закрывает сессии, неактивные дольше ttl. Возвращает число закрытых.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}

	deadline := m.deps.Clock.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	closed := 0
	for id, s := range m.sessions {
		if s.idleSince().Before(deadline) {
			delete(m.sessions, id)
			closed++
			if m.deps.Metrics != nil {
				m.deps.Metrics.SessionClosed()
			}
		}
	}

	if closed > 0 {
		m.deps.Logger.Info("Sweep: closed %d idle sessions", closed)
	}
	return closed
}

// RunJanitor периодически вызывает Sweep до отмены контекста
func (m *Manager) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.deps.Logger.Info("RunJanitor: stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}
