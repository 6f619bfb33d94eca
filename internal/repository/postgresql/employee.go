package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.last_name, e.email, e.password_hash,
	e.phone_number, e.date_of_birth, e.gender, e.address, e.date_of_joining,
	e.department, e.designation, e.role, e.status, e.salary, e.manager_id,
	e.emergency_contact_name, e.emergency_contact_phone, e.emergency_contact_relation,
	e.bank_name, e.bank_account_number, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row, withManager bool) (employee.Employee, error) {
	var emp employee.Employee
	dest := []any{
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PasswordHash,
		&emp.PhoneNumber, &emp.DateOfBirth, &emp.Gender, &emp.Address, &emp.DateOfJoining,
		&emp.Department, &emp.Designation, &emp.Role, &emp.Status, &emp.Salary, &emp.ManagerID,
		&emp.EmergencyContactName, &emp.EmergencyContactPhone, &emp.EmergencyContactRelation,
		&emp.BankName, &emp.BankAccountNumber, &emp.CreatedAt, &emp.UpdatedAt,
	}
	if withManager {
		dest = append(dest, &emp.ManagerName)
	}
	return emp, row.Scan(dest...)
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.New().String()

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, password_hash,
			phone_number, date_of_birth, gender, address, date_of_joining,
			department, designation, role, status, salary, manager_id,
			emergency_contact_name, emergency_contact_phone, emergency_contact_relation,
			bank_name, bank_account_number
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash,
		emp.PhoneNumber, emp.DateOfBirth, emp.Gender, emp.Address, emp.DateOfJoining,
		emp.Department, emp.Designation, emp.Role, emp.Status, emp.Salary, emp.ManagerID,
		emp.EmergencyContactName, emp.EmergencyContactPhone, emp.EmergencyContactRelation,
		emp.BankName, emp.BankAccountNumber,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `,
			   CASE WHEN m.id IS NULL THEN NULL ELSE m.first_name || ' ' || m.last_name END
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.id = $1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return emp, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.email = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, email), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return emp, nil
}

// GetByCode implements employee.EmployeeRepository.
func (r *employeeRepository) GetByCode(ctx context.Context, code string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.employee_code = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, code), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.ListEmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE conditions
	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("e.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+employeeColumns+`
		FROM employees e
		WHERE %s
		ORDER BY e.employee_code ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows, false)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, email = $4, password_hash = $5,
			phone_number = $6, date_of_birth = $7, gender = $8, address = $9,
			date_of_joining = $10, department = $11, designation = $12, role = $13,
			status = $14, salary = $15, manager_id = $16,
			emergency_contact_name = $17, emergency_contact_phone = $18,
			emergency_contact_relation = $19, bank_name = $20, bank_account_number = $21,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PasswordHash,
		emp.PhoneNumber, emp.DateOfBirth, emp.Gender, emp.Address,
		emp.DateOfJoining, emp.Department, emp.Designation, emp.Role,
		emp.Status, emp.Salary, emp.ManagerID,
		emp.EmergencyContactName, emp.EmergencyContactPhone,
		emp.EmergencyContactRelation, emp.BankName, emp.BankAccountNumber,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.ErrEmailExists
			}
			return employee.ErrEmployeeCodeExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListByManager implements employee.EmployeeRepository.
func (r *employeeRepository) ListByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.manager_id = $1
		ORDER BY e.employee_code ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by manager: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, rows.Err()
}
