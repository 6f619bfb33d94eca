package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/workzen/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeCode  string  `json:"employee_code"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	Address       *string `json:"address,omitempty"`
	DateOfJoining string  `json:"date_of_joining"`
	Department    string  `json:"department"`
	Designation   *string `json:"designation,omitempty"`
	Role          string  `json:"role"`
	Salary        string  `json:"salary"`
	ManagerID     *string `json:"manager_id,omitempty"`

	EmergencyContactName     *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone    *string `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelation *string `json:"emergency_contact_relation,omitempty"`

	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 8 characters"})
	}
	if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_of_joining", Message: "date_of_joining must be YYYY-MM-DD"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role is required"})
	}
	if _, err := decimal.NewFromString(r.Salary); err != nil {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a decimal number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries patch semantics: only non-nil fields are
// applied.
type UpdateEmployeeRequest struct {
	ID          string  `json:"-"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
	Department  *string `json:"department,omitempty"`
	Designation *string `json:"designation,omitempty"`
	Role        *string `json:"role,omitempty"`
	Status      *string `json:"status,omitempty"`
	Salary      *string `json:"salary,omitempty"`
	ManagerID   *string `json:"manager_id,omitempty"`

	EmergencyContactName  *string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string `json:"emergency_contact_phone,omitempty"`

	BankName          *string `json:"bank_name,omitempty"`
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Salary != nil {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	EmployeeCode  string          `json:"employee_code"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	PhoneNumber   *string         `json:"phone_number,omitempty"`
	DateOfJoining string          `json:"date_of_joining"`
	Department    Department      `json:"department"`
	Designation   *string         `json:"designation,omitempty"`
	Role          Role            `json:"role"`
	Status        Status          `json:"status"`
	Salary        decimal.Decimal `json:"salary"`
	ManagerID     *string         `json:"manager_id,omitempty"`
	ManagerName   *string         `json:"manager_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		EmployeeCode:  e.EmployeeCode,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		FullName:      e.FullName(),
		Email:         e.Email,
		PhoneNumber:   e.PhoneNumber,
		DateOfJoining: e.DateOfJoining.Format("2006-01-02"),
		Department:    e.Department,
		Designation:   e.Designation,
		Role:          e.Role,
		Status:        e.Status,
		Salary:        e.Salary,
		ManagerID:     e.ManagerID,
		ManagerName:   e.ManagerName,
		CreatedAt:     e.CreatedAt,
	}
}

type ListEmployeeFilter struct {
	Department *Department
	Status     *Status
	Search     string
	Limit      int
	Offset     int
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}
