package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/workzen/hrms-backend-go/internal/domain/leave"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.total_days,
	l.reason, l.status, l.is_half_day, l.approved_by, l.approval_date,
	l.approval_remarks, l.created_at, l.updated_at
`

func scanLeave(row pgx.Row, withNames bool) (leave.LeaveApplication, error) {
	var app leave.LeaveApplication
	dest := []any{
		&app.ID, &app.EmployeeID, &app.LeaveType, &app.StartDate, &app.EndDate, &app.TotalDays,
		&app.Reason, &app.Status, &app.IsHalfDay, &app.ApprovedBy, &app.ApprovalDate,
		&app.ApprovalRemarks, &app.CreatedAt, &app.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &app.EmployeeName, &app.ApproverName)
	}
	return app, row.Scan(dest...)
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, app leave.LeaveApplication) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	app.ID = uuid.New().String()

	query := `
		INSERT INTO leave_applications (
			id, employee_id, leave_type, start_date, end_date, total_days,
			reason, status, is_half_day
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.EmployeeID, app.LeaveType, app.StartDate, app.EndDate, app.TotalDays,
		app.Reason, app.Status, app.IsHalfDay,
	).Scan(&app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return leave.LeaveApplication{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return app, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
			   e.first_name || ' ' || e.last_name,
			   CASE WHEN ap.id IS NULL THEN NULL ELSE ap.first_name || ' ' || ap.last_name END
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN employees ap ON ap.id = l.approved_by
		WHERE l.id = $1
	`

	app, err := scanLeave(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveApplication{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveApplication{}, fmt.Errorf("failed to get leave application by id: %w", err)
	}

	return app, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, app leave.LeaveApplication) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications SET
			status = $2, approved_by = $3, approval_date = $4, approval_remarks = $5,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		app.ID, app.Status, app.ApprovedBy, app.ApprovalDate, app.ApprovalRemarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_applications l
		WHERE l.employee_id = $1
		ORDER BY l.start_date DESC
	`

	return r.list(ctx, q, query, employeeID)
}

// ListByStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByStatus(ctx context.Context, status leave.Status) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
			   e.first_name || ' ' || e.last_name,
			   CASE WHEN ap.id IS NULL THEN NULL ELSE ap.first_name || ' ' || ap.last_name END
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		LEFT JOIN employees ap ON ap.id = l.approved_by
		WHERE l.status = $1
		ORDER BY l.created_at ASC
	`

	rows, err := q.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications by status: %w", err)
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanLeave(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

// ListPendingForApprover implements leave.LeaveRepository.
func (r *leaveRepository) ListPendingForApprover(ctx context.Context, approverID string) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `,
			   e.first_name || ' ' || e.last_name,
			   NULL
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'pending'
		  AND e.manager_id = $1
		ORDER BY l.created_at ASC
	`

	rows, err := q.Query(ctx, query, approverID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave applications: %w", err)
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanLeave(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}

// ListOverlapping implements leave.LeaveRepository.
func (r *leaveRepository) ListOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_applications l
		WHERE l.employee_id = $1
		  AND l.status IN ('pending', 'approved')
		  AND l.start_date <= $3
		  AND $2 <= l.end_date
		ORDER BY l.start_date ASC
	`

	return r.list(ctx, q, query, employeeID, start, end)
}

// SumApprovedDays implements leave.LeaveRepository.
func (r *leaveRepository) SumApprovedDays(ctx context.Context, employeeID string, leaveType leave.Type, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(total_days), 0)
		FROM leave_applications
		WHERE employee_id = $1
		  AND leave_type = $2
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $3
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, leaveType, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}

	return total, nil
}

func (r *leaveRepository) list(ctx context.Context, q database.Querier, query string, args ...any) ([]leave.LeaveApplication, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var apps []leave.LeaveApplication
	for rows.Next() {
		app, err := scanLeave(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, rows.Err()
}
