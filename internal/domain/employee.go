package domain

// Employee models a staff record held by the employee store.
type Employee struct {
	ID               string     `json:"id"`
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// EmployeeData is an employee record without its store-assigned identifier.
type EmployeeData struct {
	FirstName        string     `json:"firstName"`
	LastName         string     `json:"lastName"`
	DateOfEmployment string     `json:"dateOfEmployment"`
	DateOfBirth      string     `json:"dateOfBirth"`
	PhoneNumber      string     `json:"phoneNumber"`
	Email            string     `json:"email"`
	Department       Department `json:"department"`
	Position         Position   `json:"position"`
}

// EmployeePatch carries the fields to merge into an existing employee. Nil fields are kept.
type EmployeePatch struct {
	FirstName        *string
	LastName         *string
	DateOfEmployment *string
	DateOfBirth      *string
	PhoneNumber      *string
	Email            *string
	Department       *Department
	Position         *Position
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// Data strips the identifier.
func (e Employee) Data() EmployeeData {
	return EmployeeData{
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		DateOfEmployment: e.DateOfEmployment,
		DateOfBirth:      e.DateOfBirth,
		PhoneNumber:      e.PhoneNumber,
		Email:            e.Email,
		Department:       e.Department,
		Position:         e.Position,
	}
}

// WithID builds an employee from the data and the given identifier.
func (d EmployeeData) WithID(id string) Employee {
	return Employee{
		ID:               id,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		DateOfEmployment: d.DateOfEmployment,
		DateOfBirth:      d.DateOfBirth,
		PhoneNumber:      d.PhoneNumber,
		Email:            d.Email,
		Department:       d.Department,
		Position:         d.Position,
	}
}

// Patch returns a patch replacing every field with the values of d.
func (d EmployeeData) Patch() EmployeePatch {
	return EmployeePatch{
		FirstName:        &d.FirstName,
		LastName:         &d.LastName,
		DateOfEmployment: &d.DateOfEmployment,
		DateOfBirth:      &d.DateOfBirth,
		PhoneNumber:      &d.PhoneNumber,
		Email:            &d.Email,
		Department:       &d.Department,
		Position:         &d.Position,
	}
}

// Apply merges the patch into e. The identifier is never touched.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.FirstName != nil {
		e.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		e.LastName = *p.LastName
	}
	if p.DateOfEmployment != nil {
		e.DateOfEmployment = *p.DateOfEmployment
	}
	if p.DateOfBirth != nil {
		e.DateOfBirth = *p.DateOfBirth
	}
	if p.PhoneNumber != nil {
		e.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Department != nil {
		e.Department = *p.Department
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	return e
}
