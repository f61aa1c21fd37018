package store

import "github.com/spec-kit/employee-portal/internal/domain"

// SeedEmployees returns the dataset the portal starts with.
func SeedEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: "1", FirstName: "Alexander", LastName: "Rodriguez", DateOfEmployment: "2023-01-15", DateOfBirth: "1987-03-12", PhoneNumber: "+1-415-234-5678", Email: "alexander.rodriguez@example.com", Department: domain.DepartmentTech, Position: domain.PositionSenior},
		{ID: "2", FirstName: "Emma", LastName: "Thompson", DateOfEmployment: "2022-08-01", DateOfBirth: "1994-09-28", PhoneNumber: "212-567-8901", Email: "emma.thompson@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionMedior},
		{ID: "3", FirstName: "Liam", LastName: "Anderson", DateOfEmployment: "2023-03-10", DateOfBirth: "1995-12-03", PhoneNumber: "310-789-1234", Email: "liam.anderson@example.com", Department: domain.DepartmentTech, Position: domain.PositionJunior},
		{ID: "4", FirstName: "Isabella", LastName: "Martinez", DateOfEmployment: "2021-11-20", DateOfBirth: "1986-05-18", PhoneNumber: "+1-303-456-7890", Email: "isabella.martinez@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionSenior},
		{ID: "5", FirstName: "Noah", LastName: "Kim", DateOfEmployment: "2023-05-01", DateOfBirth: "1992-01-07", PhoneNumber: "206-345-6789", Email: "noah.kim@example.com", Department: domain.DepartmentTech, Position: domain.PositionMedior},
		{ID: "6", FirstName: "Amara", LastName: "Patel", DateOfEmployment: "2022-02-18", DateOfBirth: "1996-08-14", PhoneNumber: "404-678-9012", Email: "amara.patel@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionJunior},
		{ID: "7", FirstName: "Lucas", LastName: "Johnson", DateOfEmployment: "2023-07-01", DateOfBirth: "1984-10-22", PhoneNumber: "+1-512-123-4567", Email: "lucas.johnson@example.com", Department: domain.DepartmentTech, Position: domain.PositionSenior},
		{ID: "8", FirstName: "Zara", LastName: "Williams", DateOfEmployment: "2022-10-05", DateOfBirth: "1993-06-09", PhoneNumber: "305-234-5678", Email: "zara.williams@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionMedior},
		{ID: "9", FirstName: "Ethan", LastName: "Taylor", DateOfEmployment: "2023-09-15", DateOfBirth: "1997-02-26", PhoneNumber: "602-890-1234", Email: "ethan.taylor@example.com", Department: domain.DepartmentTech, Position: domain.PositionJunior},
		{ID: "10", FirstName: "Aria", LastName: "Singh", DateOfEmployment: "2021-06-01", DateOfBirth: "1985-11-15", PhoneNumber: "+1-617-345-6789", Email: "aria.singh@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionSenior},
		{ID: "11", FirstName: "Sebastian", LastName: "Mueller", DateOfEmployment: "2023-11-12", DateOfBirth: "1988-07-31", PhoneNumber: "720-456-7890", Email: "sebastian.mueller@example.com", Department: domain.DepartmentTech, Position: domain.PositionSenior},
		{ID: "12", FirstName: "Maya", LastName: "Chen", DateOfEmployment: "2022-04-22", DateOfBirth: "1991-04-13", PhoneNumber: "503-567-8901", Email: "maya.chen@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionMedior},
		{ID: "13", FirstName: "Oliver", LastName: "Dubois", DateOfEmployment: "2024-01-08", DateOfBirth: "1990-12-05", PhoneNumber: "+1-702-789-0123", Email: "oliver.dubois@example.com", Department: domain.DepartmentTech, Position: domain.PositionJunior},
		{ID: "14", FirstName: "Luna", LastName: "Rossi", DateOfEmployment: "2023-12-05", DateOfBirth: "1989-03-20", PhoneNumber: "407-123-4567", Email: "luna.rossi@example.com", Department: domain.DepartmentAnalytics, Position: domain.PositionSenior},
	}
}
