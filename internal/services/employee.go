package services

import (
	"fmt"

	"github.com/kylefourie/swiftpay-gobackend/internal/auth"
	"github.com/kylefourie/swiftpay-gobackend/internal/models"
)

type employeeAccount struct {
	fullName      string
	accountNumber string
	password      string
}

// The operator set is fixed at build time and independent of the customer
// store. Matches the records cmd/seed writes.
var employeeAccounts = []employeeAccount{
	{fullName: "John Doe", accountNumber: "12345", password: "Employee1Pass#"},
	{fullName: "Jane Smith", accountNumber: "67890", password: "Employee2Pass#"},
}

// EmployeeService authenticates staff against an in-process table. The
// password hashes are computed once at construction; nothing here touches
// storage.
type EmployeeService struct {
	employees []models.Employee
}

func NewEmployeeService() (*EmployeeService, error) {
	employees := make([]models.Employee, 0, len(employeeAccounts))
	for _, acc := range employeeAccounts {
		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash employee password: %v", err)
		}
		employees = append(employees, models.Employee{
			FullName:      acc.fullName,
			AccountNumber: acc.accountNumber,
			PasswordHash:  hash,
		})
	}
	return &EmployeeService{employees: employees}, nil
}

// Authenticate matches an operator account number and password. Unknown
// account yields ErrNotFound, wrong password ErrBadCredentials.
func (s *EmployeeService) Authenticate(accountNumber, password string) (*models.Employee, error) {
	for i := range s.employees {
		if s.employees[i].AccountNumber != accountNumber {
			continue
		}
		if !auth.CheckPassword(password, s.employees[i].PasswordHash) {
			return nil, ErrBadCredentials
		}
		return &s.employees[i], nil
	}
	return nil, ErrNotFound
}
