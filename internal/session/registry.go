package session

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/manpower-erp-api/internal/store"
	appErrors "github.com/noah-isme/manpower-erp-api/pkg/errors"
)

// Session owns one independent record store and cart.
type Session struct {
	ID        string
	Records   *store.RecordStore
	Cart      *store.Cart
	CreatedAt time.Time

	lastSeen time.Time
}

// Hook is invoked for every newly created session, before it is handed out.
type Hook func(*Session)

// Config bounds the registry.
type Config struct {
	IdleTTL     time.Duration
	MaxSessions int
}

// Registry maps session ids to their stores.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	cfg      Config
	hooks    []Hook
	endHooks []Hook
	storeOps []store.Option
	logger   *zap.Logger
	now      func() time.Time
}

// NewRegistry constructs an empty registry. storeOpts apply to every store it creates.
func NewRegistry(cfg Config, logger *zap.Logger, storeOpts ...store.Option) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = 2 * time.Hour
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		cfg:      cfg,
		storeOps: storeOpts,
		logger:   logger,
		now:      time.Now,
	}
}

// OnCreate registers a hook run for each new session.
func (r *Registry) OnCreate(h Hook) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.hooks = append(r.hooks, h)
	r.mu.Unlock()
}

// OnEnd registers a hook run after a session is ended, expired or evicted.
func (r *Registry) OnEnd(h Hook) {
	if h == nil {
		return
	}
	r.mu.Lock()
	r.endHooks = append(r.endHooks, h)
	r.mu.Unlock()
}

// Create starts a new session with a freshly seeded store.
func (r *Registry) Create() *Session {
	now := r.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Records:   store.NewRecordStore(r.storeOps...),
		Cart:      store.NewCart(),
		CreatedAt: now.UTC(),
		lastSeen:  now,
	}

	r.mu.Lock()
	dropped := r.sweepLocked(now)
	r.sessions[sess.ID] = sess
	hooks := append([]Hook(nil), r.hooks...)
	endHooks := append([]Hook(nil), r.endHooks...)
	r.mu.Unlock()

	runHooks(endHooks, dropped...)
	runHooks(hooks, sess)
	r.logger.Debug("session created", zap.String("session_id", sess.ID))
	return sess
}

// Get returns an existing session and refreshes its idle timer.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return nil, appErrors.NotFoundf("session %s not found", id)
	}
	now := r.now()
	if now.Sub(sess.lastSeen) > r.cfg.IdleTTL {
		delete(r.sessions, id)
		endHooks := append([]Hook(nil), r.endHooks...)
		r.mu.Unlock()
		runHooks(endHooks, sess)
		return nil, appErrors.NotFoundf("session %s expired", id)
	}
	sess.lastSeen = now
	r.mu.Unlock()
	return sess, nil
}

// Resolve returns the session for id, creating a new one when id is empty or unknown.
// The bool reports whether a session was created.
func (r *Registry) Resolve(id string) (*Session, bool) {
	if id != "" {
		if sess, err := r.Get(id); err == nil {
			return sess, false
		}
	}
	return r.Create(), true
}

// End discards a session and its data.
func (r *Registry) End(id string) error {
	r.mu.Lock()
	sess, ok := r.sessions[id]
	if !ok {
		r.mu.Unlock()
		return appErrors.NotFoundf("session %s not found", id)
	}
	delete(r.sessions, id)
	endHooks := append([]Hook(nil), r.endHooks...)
	r.mu.Unlock()

	runHooks(endHooks, sess)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// sweepLocked drops idle sessions and, if still at capacity, the least recently seen ones.
// It returns the removed sessions.
func (r *Registry) sweepLocked(now time.Time) []*Session {
	var dropped []*Session
	for id, sess := range r.sessions {
		if now.Sub(sess.lastSeen) > r.cfg.IdleTTL {
			delete(r.sessions, id)
			dropped = append(dropped, sess)
		}
	}
	overflow := len(r.sessions) - r.cfg.MaxSessions + 1
	if overflow <= 0 {
		return dropped
	}
	ordered := make([]*Session, 0, len(r.sessions))
	for _, sess := range r.sessions {
		ordered = append(ordered, sess)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].lastSeen.Before(ordered[j].lastSeen)
	})
	for _, sess := range ordered[:overflow] {
		delete(r.sessions, sess.ID)
		dropped = append(dropped, sess)
		r.logger.Info("session evicted", zap.String("session_id", sess.ID))
	}
	return dropped
}

func runHooks(hooks []Hook, sessions ...*Session) {
	for _, sess := range sessions {
		for _, h := range hooks {
			h(sess)
		}
	}
}
