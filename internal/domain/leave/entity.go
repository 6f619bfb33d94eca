package leave

import "time"

type LeaveApplication struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  int
	Reason     string
	Status     Status
	IsHalfDay  bool

	ApprovedBy      *string
	ApprovalDate    *time.Time
	ApprovalRemarks *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	ApproverName *string
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

type Type string

const (
	TypeCasual      Type = "casual"
	TypeSick        Type = "sick"
	TypeEarned      Type = "earned"
	TypeMaternity   Type = "maternity"
	TypePaternity   Type = "paternity"
	TypeEmergency   Type = "emergency"
	TypeBereavement Type = "bereavement"
	TypeStudy       Type = "study"
	TypeSabbatical  Type = "sabbatical"
	TypeUnpaid      Type = "unpaid"
)

// defaultAnnualDays is the static per-type quota metadata. The ledger does
// not enforce the cap; callers combine this with UsedDays.
var defaultAnnualDays = map[Type]int{
	TypeCasual:      12,
	TypeSick:        12,
	TypeEarned:      21,
	TypeMaternity:   90,
	TypePaternity:   15,
	TypeEmergency:   5,
	TypeBereavement: 7,
	TypeStudy:       30,
	TypeSabbatical:  365,
	TypeUnpaid:      0,
}

func (t Type) Valid() bool {
	_, ok := defaultAnnualDays[t]
	return ok
}

// DefaultAnnualDays returns the default yearly allowance for the type.
func (t Type) DefaultAnnualDays() int {
	return defaultAnnualDays[t]
}

// AllTypes lists every leave type in a stable order.
func AllTypes() []Type {
	return []Type{
		TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity,
		TypeEmergency, TypeBereavement, TypeStudy, TypeSabbatical, TypeUnpaid,
	}
}
