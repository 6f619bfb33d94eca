package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

func validDepartment(d employee.Department) bool {
	switch d {
	case employee.DepartmentHumanResources, employee.DepartmentInformationTechnology,
		employee.DepartmentFinance, employee.DepartmentOperations,
		employee.DepartmentMarketing, employee.DepartmentSales,
		employee.DepartmentResearchDevelopment, employee.DepartmentQualityAssurance,
		employee.DepartmentAdministration, employee.DepartmentLegal:
		return true
	}
	return false
}

func validRole(r employee.Role) bool {
	switch r {
	case employee.RoleSuperAdmin, employee.RoleAdmin, employee.RoleHRManager,
		employee.RoleHRExecutive, employee.RoleCEO, employee.RoleDepartmentHead,
		employee.RoleTeamLead, employee.RoleProjectManager, employee.RoleSeniorDeveloper,
		employee.RoleJuniorDeveloper, employee.RoleQAEngineer, employee.RoleAccountant,
		employee.RolePayrollSpecialist, employee.RoleIntern, employee.RoleContractor:
		return true
	}
	return false
}

func validStatus(s employee.Status) bool {
	switch s {
	case employee.StatusActive, employee.StatusOnLeave, employee.StatusProbation,
		employee.StatusNoticePeriod, employee.StatusSuspended, employee.StatusTerminated,
		employee.StatusResigned, employee.StatusRetired:
		return true
	}
	return false
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	department := employee.Department(req.Department)
	if !validDepartment(department) {
		return employee.EmployeeResponse{}, employee.ErrInvalidDepartment
	}
	role := employee.Role(req.Role)
	if !validRole(role) {
		return employee.EmployeeResponse{}, employee.ErrInvalidRole
	}

	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of joining: %w", err)
	}
	var dateOfBirth *time.Time
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		dateOfBirth = &dob
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
	}

	emp := employee.Employee{
		EmployeeCode:  req.EmployeeCode,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		PasswordHash:  string(hash),
		PhoneNumber:   req.PhoneNumber,
		DateOfBirth:   dateOfBirth,
		Gender:        req.Gender,
		Address:       req.Address,
		DateOfJoining: dateOfJoining,
		Department:    department,
		Designation:   req.Designation,
		Role:          role,
		Status:        employee.StatusActive,
		Salary:        salary,
		ManagerID:     req.ManagerID,

		EmergencyContactName:     req.EmergencyContactName,
		EmergencyContactPhone:    req.EmergencyContactPhone,
		EmergencyContactRelation: req.EmergencyContactRelation,

		BankName:          req.BankName,
		BankAccountNumber: req.BankAccountNumber,
	}

	// Uniqueness checks and the insert share a transaction; the unique
	// constraints on email and employee code back them up.
	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		if _, err := s.EmployeeRepository.GetByEmail(ctx, req.Email); err == nil {
			return employee.ErrEmailExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		if _, err := s.EmployeeRepository.GetByCode(ctx, req.EmployeeCode); err == nil {
			return employee.ErrEmployeeCodeExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}

		created, err = s.EmployeeRepository.Create(ctx, emp)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Employee created",
		"employee_id", created.ID, "employee_code", created.EmployeeCode, "department", created.Department)

	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetByCode implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByCode(ctx context.Context, code string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByCode(ctx, code)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListEmployeeFilter) (employee.ListEmployeeResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	return employee.ListEmployeeResponse{
		Employees:  toResponses(employees),
		TotalItems: total,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.Department != nil {
		department := employee.Department(*req.Department)
		if !validDepartment(department) {
			return employee.EmployeeResponse{}, employee.ErrInvalidDepartment
		}
		emp.Department = department
	}
	if req.Designation != nil {
		emp.Designation = req.Designation
	}
	if req.Role != nil {
		role := employee.Role(*req.Role)
		if !validRole(role) {
			return employee.EmployeeResponse{}, employee.ErrInvalidRole
		}
		emp.Role = role
	}
	if req.Status != nil {
		status := employee.Status(*req.Status)
		if !validStatus(status) {
			return employee.EmployeeResponse{}, employee.ErrInvalidStatus
		}
		emp.Status = status
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to parse salary: %w", err)
		}
		emp.Salary = salary
	}
	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.EmployeeResponse{}, employee.ErrManagerNotFound
			}
			return employee.EmployeeResponse{}, err
		}
		emp.ManagerID = req.ManagerID
	}
	if req.EmergencyContactName != nil {
		emp.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		emp.EmergencyContactPhone = req.EmergencyContactPhone
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = req.BankAccountNumber
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("Employee deleted", "employee_id", id)
	return nil
}

// Subordinates implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Subordinates(ctx context.Context, managerID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, managerID); err != nil {
		return nil, err
	}

	subordinates, err := s.EmployeeRepository.ListByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	return toResponses(subordinates), nil
}

func toResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses
}
