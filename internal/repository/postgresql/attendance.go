package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/workzen/hrms-backend-go/internal/domain/attendance"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in_time, a.check_out_time,
	a.status, a.work_hours, a.overtime_hours, a.is_late, a.late_minutes,
	a.location, a.remarks, a.created_at, a.updated_at
`

func scanAttendance(row pgx.Row, withEmployee bool) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []any{
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckInTime, &att.CheckOutTime,
		&att.Status, &att.WorkHours, &att.OvertimeHours, &att.IsLate, &att.LateMinutes,
		&att.Location, &att.Remarks, &att.CreatedAt, &att.UpdatedAt,
	}
	if withEmployee {
		dest = append(dest, &att.EmployeeName, &att.EmployeeCode)
	}
	return att, row.Scan(dest...)
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	att.ID = uuid.New().String()

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in_time, check_out_time,
			status, work_hours, overtime_hours, is_late, late_minutes,
			location, remarks
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.EmployeeID, att.Date, att.CheckInTime, att.CheckOutTime,
		att.Status, att.WorkHours, att.OvertimeHours, att.IsLate, att.LateMinutes,
		att.Location, att.Remarks,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for the day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			check_in_time = $2, check_out_time = $3, status = $4,
			work_hours = $5, overtime_hours = $6, is_late = $7, late_minutes = $8,
			location = $9, remarks = $10, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.CheckInTime, att.CheckOutTime, att.Status,
		att.WorkHours, att.OvertimeHours, att.IsLate, att.LateMinutes,
		att.Location, att.Remarks,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		  AND a.date BETWEEN $2 AND $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, false)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `,
			   e.first_name || ' ' || e.last_name, e.employee_code
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.employee_code ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// CountByStatus implements attendance.AttendanceRepository.
func (r *attendanceRepository) CountByStatus(ctx context.Context, employeeID string, from, to time.Time, status attendance.Status) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND status = $4
	`

	var count int
	if err := q.QueryRow(ctx, query, employeeID, from, to, status).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attendances by status: %w", err)
	}

	return count, nil
}

// SumOvertimeHours implements attendance.AttendanceRepository.
func (r *attendanceRepository) SumOvertimeHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(overtime_hours), 0)
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
	`

	var total float64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum overtime hours: %w", err)
	}

	return total, nil
}

// AvgWorkHours implements attendance.AttendanceRepository.
func (r *attendanceRepository) AvgWorkHours(ctx context.Context, employeeID string, from, to time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(work_hours), 0)
		FROM attendances
		WHERE employee_id = $1
		  AND date BETWEEN $2 AND $3
		  AND work_hours IS NOT NULL
	`

	var avg float64
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to average work hours: %w", err)
	}

	return avg, nil
}
