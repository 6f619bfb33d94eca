package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	EmployeeCode  string
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string
	PhoneNumber   *string
	DateOfBirth   *time.Time
	Gender        *string
	Address       *string
	DateOfJoining time.Time
	Department    Department
	Designation   *string
	Role          Role
	Status        Status
	Salary        decimal.Decimal
	ManagerID     *string

	EmergencyContactName     *string
	EmergencyContactPhone    *string
	EmergencyContactRelation *string

	BankName          *string
	BankAccountNumber *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	ManagerName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Department string

const (
	DepartmentHumanResources        Department = "human_resources"
	DepartmentInformationTechnology Department = "information_technology"
	DepartmentFinance               Department = "finance"
	DepartmentOperations            Department = "operations"
	DepartmentMarketing             Department = "marketing"
	DepartmentSales                 Department = "sales"
	DepartmentResearchDevelopment   Department = "research_development"
	DepartmentQualityAssurance      Department = "quality_assurance"
	DepartmentAdministration        Department = "administration"
	DepartmentLegal                 Department = "legal"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusOnLeave      Status = "on_leave"
	StatusProbation    Status = "probation"
	StatusNoticePeriod Status = "notice_period"
	StatusSuspended    Status = "suspended"
	StatusTerminated   Status = "terminated"
	StatusResigned     Status = "resigned"
	StatusRetired      Status = "retired"
)

// CanLogin reports whether the lifecycle state still permits operations.
func (s Status) CanLogin() bool {
	return s == StatusActive || s == StatusOnLeave || s == StatusProbation || s == StatusNoticePeriod
}

// IsActive reports whether the employee counts as part of the workforce.
func (s Status) IsActive() bool {
	return s == StatusActive || s == StatusOnLeave || s == StatusProbation
}

type Role string

const (
	RoleSuperAdmin        Role = "super_admin"
	RoleAdmin             Role = "admin"
	RoleHRManager         Role = "hr_manager"
	RoleHRExecutive       Role = "hr_executive"
	RoleCEO               Role = "ceo"
	RoleDepartmentHead    Role = "department_head"
	RoleTeamLead          Role = "team_lead"
	RoleProjectManager    Role = "project_manager"
	RoleSeniorDeveloper   Role = "senior_developer"
	RoleJuniorDeveloper   Role = "junior_developer"
	RoleQAEngineer        Role = "qa_engineer"
	RoleAccountant        Role = "accountant"
	RolePayrollSpecialist Role = "payroll_specialist"
	RoleIntern            Role = "intern"
	RoleContractor        Role = "contractor"
)
