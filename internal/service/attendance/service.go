package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/workzen/hrms-backend-go/internal/domain/attendance"
	"github.com/workzen/hrms-backend-go/internal/domain/employee"
	"github.com/workzen/hrms-backend-go/internal/pkg/database"
	"github.com/workzen/hrms-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository

	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		now:                  time.Now,
	}
}

// dateOf truncates a timestamp to its calendar day.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !emp.Status.CanLogin() {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotOperative
	}

	now := s.now()
	today := dateOf(now)

	late, lateMinutes := attendance.Lateness(now)

	status := attendance.StatusPresent
	if late {
		status = attendance.StatusLate
	}

	// The existence check and the write share a transaction; the unique
	// (employee, date) constraint backs the check. A record without a
	// check-in time, such as one entered manually in advance, takes the
	// check-in instead of blocking it.
	var created attendance.Attendance
	err = postgresql.WithTransaction(ctx, s.db, func(ctx context.Context) error {
		existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
		if err != nil {
			return err
		}
		if existing != nil && existing.CheckInTime != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		if existing != nil {
			existing.CheckInTime = &now
			existing.Status = status
			existing.IsLate = late
			existing.LateMinutes = nil
			if late {
				existing.LateMinutes = &lateMinutes
			}
			if req.Location != nil {
				existing.Location = req.Location
			}

			if err := s.AttendanceRepository.Update(ctx, *existing); err != nil {
				return err
			}
			created = *existing
			return nil
		}

		record := attendance.Attendance{
			EmployeeID:  emp.ID,
			Date:        today,
			CheckInTime: &now,
			Status:      status,
			IsLate:      late,
			Location:    req.Location,
		}
		if late {
			record.LateMinutes = &lateMinutes
		}

		created, err = s.AttendanceRepository.Create(ctx, record)
		return err
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, dateOf(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckInTime == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOutTime = &now
	attendance.Recalculate(record)

	if err := s.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(*record), nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	existing, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrDuplicateRecord
	}

	// A record without a check-in stamp is an absence until one arrives.
	record := attendance.Attendance{
		EmployeeID:   emp.ID,
		Date:         date,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Status:       attendance.StatusAbsent,
		Location:     req.Location,
		Remarks:      req.Remarks,
	}

	if req.CheckInTime != nil {
		late, lateMinutes := attendance.Lateness(*req.CheckInTime)
		record.IsLate = late
		record.Status = attendance.StatusPresent
		if late {
			record.LateMinutes = &lateMinutes
			record.Status = attendance.StatusLate
		}
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.IsLate != nil {
		record.IsLate = *req.IsLate
	}
	if req.LateMinutes != nil {
		record.LateMinutes = req.LateMinutes
	}

	attendance.Recalculate(&record)

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(created), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckInTime != nil {
		record.CheckInTime = req.CheckInTime
		late, lateMinutes := attendance.Lateness(*req.CheckInTime)
		record.IsLate = late
		record.LateMinutes = nil
		if late {
			record.LateMinutes = &lateMinutes
		}
	}
	if req.CheckOutTime != nil {
		record.CheckOutTime = req.CheckOutTime
	}
	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.Location != nil {
		record.Location = req.Location
	}
	if req.Remarks != nil {
		record.Remarks = req.Remarks
	}

	attendance.Recalculate(&record)

	if err := s.AttendanceRepository.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(record), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID, from, to string) ([]attendance.AttendanceResponse, error) {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from date: %w", err)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to date: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	records, err := s.AttendanceRepository.ListByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Monthly implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Monthly(ctx context.Context, employeeID string, year, month int) ([]attendance.AttendanceResponse, error) {
	from, to := monthBounds(year, month)

	records, err := s.AttendanceRepository.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	return toResponses(records), nil
}

// Summary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, year, month int) (attendance.MonthSummary, error) {
	from, to := monthBounds(year, month)

	daysPresent, err := s.AttendanceRepository.CountByStatus(ctx, employeeID, from, to, attendance.StatusPresent)
	if err != nil {
		return attendance.MonthSummary{}, err
	}
	daysOnLeave, err := s.AttendanceRepository.CountByStatus(ctx, employeeID, from, to, attendance.StatusOnLeave)
	if err != nil {
		return attendance.MonthSummary{}, err
	}
	avgWorkHours, err := s.AttendanceRepository.AvgWorkHours(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthSummary{}, err
	}
	overtimeHours, err := s.AttendanceRepository.SumOvertimeHours(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthSummary{}, err
	}

	return attendance.MonthSummary{
		EmployeeID:    employeeID,
		DaysPresent:   daysPresent,
		DaysOnLeave:   daysOnLeave,
		AvgWorkHours:  avgWorkHours,
		OvertimeHours: overtimeHours,
	}, nil
}

func monthBounds(year, month int) (from, to time.Time) {
	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, -1)
	return from, to
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses
}
