package dto

import "github.com/spec-kit/employee-portal/internal/domain"

// EmployeeCreateRequest payload.
type EmployeeCreateRequest struct {
	FirstName        string `json:"firstName" validate:"required,not_blank"`
	LastName         string `json:"lastName" validate:"required,not_blank"`
	DateOfEmployment string `json:"dateOfEmployment" validate:"required,employee_date"`
	DateOfBirth      string `json:"dateOfBirth" validate:"required,employee_date,not_future"`
	PhoneNumber      string `json:"phoneNumber" validate:"required,employee_phone"`
	Email            string `json:"email" validate:"required,employee_email"`
	Department       string `json:"department" validate:"required,department"`
	Position         string `json:"position" validate:"required,position"`
}

// Data converts the request into store input.
func (r EmployeeCreateRequest) Data() domain.EmployeeData {
	return domain.EmployeeData{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		DateOfEmployment: r.DateOfEmployment,
		DateOfBirth:      r.DateOfBirth,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
		Department:       domain.Department(r.Department),
		Position:         domain.Position(r.Position),
	}
}

// EmployeeUpdateRequest payload. Omitted fields are left unchanged.
type EmployeeUpdateRequest struct {
	FirstName        *string `json:"firstName" validate:"omitnil,not_blank"`
	LastName         *string `json:"lastName" validate:"omitnil,not_blank"`
	DateOfEmployment *string `json:"dateOfEmployment" validate:"omitnil,employee_date"`
	DateOfBirth      *string `json:"dateOfBirth" validate:"omitnil,employee_date,not_future"`
	PhoneNumber      *string `json:"phoneNumber" validate:"omitnil,employee_phone"`
	Email            *string `json:"email" validate:"omitnil,employee_email"`
	Department       *string `json:"department" validate:"omitnil,department"`
	Position         *string `json:"position" validate:"omitnil,position"`
}

// Patch converts the request into a store patch.
func (r EmployeeUpdateRequest) Patch() domain.EmployeePatch {
	patch := domain.EmployeePatch{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		DateOfEmployment: r.DateOfEmployment,
		DateOfBirth:      r.DateOfBirth,
		PhoneNumber:      r.PhoneNumber,
		Email:            r.Email,
	}
	if r.Department != nil {
		d := domain.Department(*r.Department)
		patch.Department = &d
	}
	if r.Position != nil {
		p := domain.Position(*r.Position)
		patch.Position = &p
	}
	return patch
}

// EmployeeResponse is the JSON shape of an employee.
type EmployeeResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfEmployment string `json:"dateOfEmployment"`
	DateOfBirth      string `json:"dateOfBirth"`
	PhoneNumber      string `json:"phoneNumber"`
	Email            string `json:"email"`
	Department       string `json:"department"`
	Position         string `json:"position"`
}

// ListMeta describes a page of results.
type ListMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// LanguageRequest payload for switching languages.
type LanguageRequest struct {
	Lang     string `json:"lang" form:"lang"`
	Redirect string `json:"redirect" form:"redirect"`
}
