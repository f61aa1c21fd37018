package form

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// SessionGauge receives the number of open form sessions.
type SessionGauge interface {
	SetFormSessions(n int)
}

// PathRecorder is a Navigator that remembers the last requested path.
type PathRecorder struct {
	mu   sync.Mutex
	path string
}

func (p *PathRecorder) Navigate(path string) {
	p.mu.Lock()
	p.path = path
	p.mu.Unlock()
}

// Take returns the pending path and clears it.
func (p *PathRecorder) Take() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	path := p.path
	p.path = ""
	return path, path != ""
}

// Session is a form controller kept between requests.
type Session struct {
	ID         string
	Controller *Controller

	nav      *PathRecorder
	lastSeen time.Time
}

// TakeNavigation returns the path the controller navigated to since the last call.
func (s *Session) TakeNavigation() (string, bool) {
	return s.nav.Take()
}

// Registry holds open form sessions by id and evicts idle ones.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	gauge    SessionGauge
	logger   *zap.Logger
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

func WithGauge(g SessionGauge) RegistryOption {
	return func(r *Registry) { r.gauge = g }
}

func WithRegistryLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates a registry that drops sessions idle for longer than ttl.
// A non-positive ttl keeps sessions until they are closed.
func NewRegistry(ttl time.Duration, opts ...RegistryOption) *Registry {
	r := &Registry{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open starts a controller for employeeID (empty for add) and stores it.
// The session's navigator replaces deps.Navigator.
func (r *Registry) Open(employeeID string, deps Dependencies) *Session {
	nav := &PathRecorder{}
	deps.Navigator = nav

	s := &Session{
		ID:         uuid.NewString(),
		Controller: New(employeeID, deps),
		nav:        nav,
	}

	r.mu.Lock()
	s.lastSeen = r.now()
	r.sessions[s.ID] = s
	n := len(r.sessions)
	r.mu.Unlock()

	r.report(n)
	r.logger.Debug("form session opened",
		zap.String("form_id", s.ID), zap.String("mode", s.Controller.Mode().String()))
	return s
}

// Get returns the session and marks it as used.
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, apperrors.NewNotFound("form session", map[string]any{"formId": id})
	}
	s.lastSeen = r.now()
	return s, nil
}

// Close forgets the session. Unknown ids are ignored.
func (r *Registry) Close(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	n := len(r.sessions)
	r.mu.Unlock()
	r.report(n)
}

// Len returns the number of open sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes idle sessions and returns how many were evicted.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	r.mu.Lock()
	cutoff := r.now().Add(-r.ttl)
	evicted := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			evicted++
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if evicted > 0 {
		r.logger.Info("evicted idle form sessions", zap.Int("evicted", evicted), zap.Int("open", n))
		r.report(n)
	}
	return evicted
}

func (r *Registry) report(n int) {
	if r.gauge != nil {
		r.gauge.SetFormSessions(n)
	}
}
