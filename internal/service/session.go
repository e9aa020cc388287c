package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"activity-board/internal/metrics"
	"activity-board/internal/model"
)

// Session — состояние доски одного посетителя: последний загруженный каталог,
// признак неудачной загрузки, значения формы и баннер.
type Session struct {
	ID     string
	Banner *Banner

	mu         sync.Mutex
	catalog    model.Catalog
	loaded     bool
	loadFailed bool
	form       model.SignupForm
	lastSeen   time.Time
}

func (s *Session) setCatalog(c model.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
	s.loaded = true
	s.loadFailed = false
}

// hasCatalog сообщает, получала ли сессия каталог хотя бы раз.
func (s *Session) hasCatalog() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Session) markLoadFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFailed = true
}

func (s *Session) setForm(f model.SignupForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form = f
}

// ResetForm очищает значения формы записи.
func (s *Session) ResetForm() {
	s.setForm(model.SignupForm{})
}

// View собирает снимок для рендера.
func (s *Session) View() model.BoardView {
	s.mu.Lock()
	v := model.BoardView{
		Activities: s.catalog,
		LoadFailed: s.loadFailed,
		Form:       s.form,
	}
	s.mu.Unlock()

	v.Banner = s.Banner.Snapshot()
	return v
}

// SessionStore хранит сессии в памяти и удаляет простаивающие.
type SessionStore struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	ttl         time.Duration
	bannerDelay time.Duration
	now         func() time.Time
}

// NewSessionStore создаёт хранилище. ttl <= 0 отключает удаление по простою.
func NewSessionStore(ttl, bannerDelay time.Duration) *SessionStore {
	return &SessionStore{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		bannerDelay: bannerDelay,
		now:         time.Now,
	}
}

// Get возвращает сессию по id. Для пустого или неизвестного id создаётся новая
// сессия с новым id; created сообщает об этом вызывающему (чтобы выставить cookie).
func (st *SessionStore) Get(id string) (sess *Session, created bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	now := st.now()
	if s, ok := st.sessions[id]; ok && id != "" {
		s.mu.Lock()
		s.lastSeen = now
		s.mu.Unlock()
		return s, false
	}

	s := &Session{
		ID:       uuid.NewString(),
		Banner:   NewBanner(st.bannerDelay),
		catalog:  model.Catalog{},
		lastSeen: now,
	}
	st.sessions[s.ID] = s
	metrics.ActiveSessions.Set(float64(len(st.sessions)))
	return s, true
}

// Len возвращает число сессий.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep удаляет сессии, простаивающие дольше ttl, и возвращает их число.
func (st *SessionStore) Sweep() int {
	if st.ttl <= 0 {
		return 0
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	cutoff := st.now().Add(-st.ttl)
	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if !idle {
			continue
		}
		s.Banner.Stop()
		delete(st.sessions, id)
		removed++
	}
	metrics.ActiveSessions.Set(float64(len(st.sessions)))
	return removed
}

// Run периодически вызывает Sweep до отмены контекста.
func (st *SessionStore) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 || st.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
