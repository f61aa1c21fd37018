package domain

// Department is the organizational unit an employee belongs to.
type Department string

const (
	DepartmentTech      Department = "Tech"
	DepartmentAnalytics Department = "Analytics"
)

// DefaultDepartments is the set exposed by the employee form unless configured otherwise.
var DefaultDepartments = []Department{DepartmentTech, DepartmentAnalytics}

// Position is the seniority level of an employee.
type Position string

const (
	PositionJunior Position = "Junior"
	PositionMedior Position = "Medior"
	PositionSenior Position = "Senior"
)

// DefaultPositions is ordered from the lowest to the highest level.
var DefaultPositions = []Position{PositionJunior, PositionMedior, PositionSenior}

// Catalog is the closed set of departments and positions a form exposes.
type Catalog struct {
	Departments []Department
	Positions   []Position
}

// DefaultCatalog returns the built-in departments and positions.
func DefaultCatalog() Catalog {
	return Catalog{
		Departments: append([]Department(nil), DefaultDepartments...),
		Positions:   append([]Position(nil), DefaultPositions...),
	}
}

// HasDepartment reports whether d is part of the catalog.
func (c Catalog) HasDepartment(d Department) bool {
	for _, known := range c.Departments {
		if known == d {
			return true
		}
	}
	return false
}

// HasPosition reports whether p is part of the catalog.
func (c Catalog) HasPosition(p Position) bool {
	for _, known := range c.Positions {
		if known == p {
			return true
		}
	}
	return false
}

// DefaultDepartment is the first enumerated department.
func (c Catalog) DefaultDepartment() Department {
	if len(c.Departments) == 0 {
		return ""
	}
	return c.Departments[0]
}

// DefaultPosition is the lowest enumerated position.
func (c Catalog) DefaultPosition() Position {
	if len(c.Positions) == 0 {
		return ""
	}
	return c.Positions[0]
}
