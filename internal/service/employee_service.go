package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/domain"
	apperrors "github.com/spec-kit/employee-portal/pkg/util"
)

// EmployeeStore is the store surface the service works against.
type EmployeeStore interface {
	GetEmployees() []domain.Employee
	AddEmployee(data domain.EmployeeData) (domain.Employee, error)
	UpdateEmployee(id string, patch domain.EmployeePatch) (domain.Employee, error)
	DeleteEmployee(id string) (domain.Employee, error)
}

// EmployeeService exposes listing and mutations to the HTTP layer.
type EmployeeService struct {
	store  EmployeeStore
	logger *zap.Logger
}

// EmployeeListFilters define listing parameters. A zero Limit returns every match.
type EmployeeListFilters struct {
	Query  string
	Limit  int
	Offset int
}

// NewEmployeeService constructs the service.
func NewEmployeeService(store EmployeeStore, logger *zap.Logger) *EmployeeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{store: store, logger: logger}
}

// ListEmployees filters by a case-insensitive match on full name or email and
// returns the requested page along with the number of matches.
func (s *EmployeeService) ListEmployees(ctx context.Context, filters EmployeeListFilters) ([]domain.Employee, int) {
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	matches := make([]domain.Employee, 0)
	for _, e := range s.store.GetEmployees() {
		if query == "" ||
			strings.Contains(strings.ToLower(e.FullName()), query) ||
			strings.Contains(strings.ToLower(e.Email), query) {
			matches = append(matches, e)
		}
	}

	total := len(matches)
	if filters.Offset > 0 {
		if filters.Offset >= total {
			return []domain.Employee{}, total
		}
		matches = matches[filters.Offset:]
	}
	if filters.Limit > 0 && len(matches) > filters.Limit {
		matches = matches[:filters.Limit]
	}
	return matches, total
}

// GetEmployeeByID fetches one employee.
func (s *EmployeeService) GetEmployeeByID(ctx context.Context, id string) (domain.Employee, error) {
	for _, e := range s.store.GetEmployees() {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Employee{}, apperrors.NewNotFound("employee", map[string]any{"id": id})
}

// CreateEmployee adds a new employee.
func (s *EmployeeService) CreateEmployee(ctx context.Context, data domain.EmployeeData) (domain.Employee, error) {
	created, err := s.store.AddEmployee(data)
	if err != nil {
		return domain.Employee{}, err
	}
	s.logger.Info("employee created", zap.String("id", created.ID))
	return created, nil
}

// UpdateEmployee merges patch into the employee.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, patch domain.EmployeePatch) (domain.Employee, error) {
	updated, err := s.store.UpdateEmployee(id, patch)
	if err != nil {
		return domain.Employee{}, err
	}
	s.logger.Info("employee updated", zap.String("id", id))
	return updated, nil
}

// DeleteEmployee removes one employee.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) (domain.Employee, error) {
	removed, err := s.store.DeleteEmployee(id)
	if err != nil {
		return domain.Employee{}, err
	}
	s.logger.Info("employee deleted", zap.String("id", id))
	return removed, nil
}

// DeleteEmployees removes every listed employee. Ids that no longer exist are
// skipped; any other failure stops the batch.
func (s *EmployeeService) DeleteEmployees(ctx context.Context, ids []string) ([]domain.Employee, error) {
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("at least one employee must be selected", nil)
	}

	removed := make([]domain.Employee, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		e, err := s.store.DeleteEmployee(id)
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			continue
		}
		if err != nil {
			return removed, err
		}
		removed = append(removed, e)
	}
	s.logger.Info("employees deleted", zap.Int("requested", len(ids)), zap.Int("deleted", len(removed)))
	return removed, nil
}
