// Package store is the single in-memory source of truth for employee records.
package store

import (
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// State is a snapshot of the store. It is a copy; mutating it has no effect on the store.
type State struct {
	Employees []domain.Employee
}

// Listener is called with the current state on subscription and after every successful mutation.
// Listeners run synchronously and must not call mutating store methods.
type Listener func(State)

// MutationRecorder receives one observation per mutation attempt.
type MutationRecorder interface {
	ObserveMutation(operation, result string)
	SetEmployees(n int)
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger sets the logger used for rejected mutations.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec MutationRecorder) Option {
	return func(s *Store) {
		s.recorder = rec
	}
}

// WithCaseInsensitiveEmails makes the uniqueness check ignore letter case.
func WithCaseInsensitiveEmails() Option {
	return func(s *Store) {
		s.sameEmail = strings.EqualFold
	}
}

// WithNextID overrides the first id handed out by AddEmployee.
func WithNextID(next int) Option {
	return func(s *Store) {
		s.nextID = next
	}
}

type subscription struct {
	id       uint64
	listener Listener
}

// Store owns the employee collection and its observers.
type Store struct {
	mu        sync.RWMutex
	employees []domain.Employee
	nextID    int
	sameEmail func(a, b string) bool

	subMu     sync.Mutex
	subs      []subscription
	nextSubID uint64

	// notifyMu keeps notifications in mutation order.
	notifyMu sync.Mutex

	logger   *zap.Logger
	recorder MutationRecorder
}

// New builds a store holding a copy of seed. Unless WithNextID is given, ids continue
// after the highest numeric id in the seed.
func New(seed []domain.Employee, opts ...Option) *Store {
	s := &Store{
		employees: append([]domain.Employee(nil), seed...),
		nextID:    nextIDAfter(seed),
		sameEmail: func(a, b string) bool { return a == b },
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.recorder != nil {
		s.recorder.SetEmployees(len(s.employees))
	}
	return s
}

func nextIDAfter(seed []domain.Employee) int {
	highest := 0
	for _, e := range seed {
		if n, err := strconv.Atoi(e.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// Subscribe registers l, calls it with the current state and returns a function
// that deregisters it.
func (s *Store) Subscribe(l Listener) func() {
	s.notifyMu.Lock()
	s.subMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.subs = append(s.subs, subscription{id: id, listener: l})
	s.subMu.Unlock()

	l(s.GetState())
	s.notifyMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *Store) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// GetState returns a snapshot of the current state.
func (s *Store) GetState() State {
	return State{Employees: s.GetEmployees()}
}

// GetEmployees returns a copy of the collection in insertion order.
func (s *Store) GetEmployees() []domain.Employee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Employee(nil), s.employees...)
}

// AddEmployee appends a new employee with the next sequential id.
func (s *Store) AddEmployee(data domain.EmployeeData) (domain.Employee, error) {
	const op = "add"

	if data.Email == "" {
		s.logger.Error("cannot add employee without email")
		s.record(op, false)
		return domain.Employee{}, apperrors.NewValidationError("employee data with an email is required", nil)
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if s.emailTakenLocked(data.Email, "") {
		s.mu.Unlock()
		s.logger.Warn("employee email already exists", zap.String("email", data.Email))
		s.record(op, false)
		return domain.Employee{}, duplicateEmail(data.Email)
	}

	created := data.WithID(strconv.Itoa(s.nextID))
	s.nextID++
	s.employees = append(s.employees, created)
	s.mu.Unlock()

	s.record(op, true)
	s.notifyLocked()
	return created, nil
}

// UpdateEmployee merges patch into the employee with the given id, keeping its
// id and its position in the collection.
func (s *Store) UpdateEmployee(id string, patch domain.EmployeePatch) (domain.Employee, error) {
	const op = "update"

	if patch.Email != nil && *patch.Email == "" {
		s.logger.Warn("cannot clear employee email", zap.String("id", id))
		s.record(op, false)
		return domain.Employee{}, apperrors.NewValidationError("employee email cannot be empty", map[string]any{"id": id})
	}

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if patch.Email != nil && s.emailTakenLocked(*patch.Email, id) {
		s.mu.Unlock()
		s.logger.Warn("another employee already uses this email",
			zap.String("id", id), zap.String("email", *patch.Email))
		s.record(op, false)
		return domain.Employee{}, duplicateEmail(*patch.Email)
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn("update of unknown employee", zap.String("id", id))
		s.record(op, false)
		return domain.Employee{}, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	updated := patch.Apply(s.employees[idx])
	updated.ID = id
	next := append([]domain.Employee(nil), s.employees...)
	next[idx] = updated
	s.employees = next
	s.mu.Unlock()

	s.record(op, true)
	s.notifyLocked()
	return updated, nil
}

// DeleteEmployee removes the employee with the given id.
func (s *Store) DeleteEmployee(id string) (domain.Employee, error) {
	const op = "delete"

	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		s.logger.Warn("delete of unknown employee", zap.String("id", id))
		s.record(op, false)
		return domain.Employee{}, apperrors.NewNotFound("employee", map[string]any{"id": id})
	}

	removed := s.employees[idx]
	next := make([]domain.Employee, 0, len(s.employees)-1)
	next = append(next, s.employees[:idx]...)
	next = append(next, s.employees[idx+1:]...)
	s.employees = next
	s.mu.Unlock()

	s.record(op, true)
	s.notifyLocked()
	return removed, nil
}

func (s *Store) emailTakenLocked(email, exceptID string) bool {
	for _, e := range s.employees {
		if e.ID != exceptID && s.sameEmail(e.Email, email) {
			return true
		}
	}
	return false
}

func (s *Store) indexLocked(id string) int {
	for i, e := range s.employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// notifyLocked delivers the current state to every listener. Callers hold notifyMu.
func (s *Store) notifyLocked() {
	s.subMu.Lock()
	subs := append([]subscription(nil), s.subs...)
	s.subMu.Unlock()

	state := s.GetState()
	if s.recorder != nil {
		s.recorder.SetEmployees(len(state.Employees))
	}
	for _, sub := range subs {
		// Each listener gets its own copy.
		sub.listener(State{Employees: append([]domain.Employee(nil), state.Employees...)})
	}
}

func (s *Store) record(operation string, ok bool) {
	if s.recorder == nil {
		return
	}
	result := "success"
	if !ok {
		result = "rejected"
	}
	s.recorder.ObserveMutation(operation, result)
}

func duplicateEmail(email string) error {
	return apperrors.NewConflict("employee with email "+email+" already exists", map[string]any{"email": email})
}
