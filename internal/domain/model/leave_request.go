package model

import (
	"errors"
	"strings"
	"time"
)

// LeaveType categorizes a staff leave request.
type LeaveType string

const (
	LeaveVacation    LeaveType = "vacation"
	LeaveSick        LeaveType = "sick"
	LeaveMaternity   LeaveType = "maternity"
	LeavePaternity   LeaveType = "paternity"
	LeaveBereavement LeaveType = "bereavement"
	LeaveOther       LeaveType = "other"
)

// Valid reports whether the leave type is supported.
func (t LeaveType) Valid() bool {
	switch t {
	case LeaveVacation, LeaveSick, LeaveMaternity, LeavePaternity, LeaveBereavement, LeaveOther:
		return true
	default:
		return false
	}
}

// ParseLeaveType normalizes a leave type string and reports whether it is supported.
func ParseLeaveType(value string) (LeaveType, bool) {
	t := LeaveType(strings.ToLower(strings.TrimSpace(value)))
	if t.Valid() {
		return t, true
	}
	return "", false
}

// LeaveStatus tracks a leave request through approval.
type LeaveStatus string

const (
	LeavePending   LeaveStatus = "pending"
	LeaveApproved  LeaveStatus = "approved"
	LeaveRejected  LeaveStatus = "rejected"
	LeaveCancelled LeaveStatus = "cancelled"
)

// Valid reports whether the leave status is supported.
func (s LeaveStatus) Valid() bool {
	switch s {
	case LeavePending, LeaveApproved, LeaveRejected, LeaveCancelled:
		return true
	default:
		return false
	}
}

// LeaveRequest is a staff member's request for time off.
// EmployeeName is denormalized from profiles on read.
type LeaveRequest struct {
	ID           string      `json:"id"                     db:"id"`
	EmployeeID   string      `json:"employee_id"            db:"employee_id"`
	EmployeeName string      `json:"employee_name"          db:"employee_name"`
	StartDate    time.Time   `json:"start_date"             db:"start_date"`
	EndDate      time.Time   `json:"end_date"               db:"end_date"`
	Type         LeaveType   `json:"type"                   db:"type"`
	Reason       string      `json:"reason"                 db:"reason"`
	Status       LeaveStatus `json:"status"                 db:"status"`
	DecidedBy    *string     `json:"decided_by,omitempty"   db:"decided_by"`
	DecidedAt    *time.Time  `json:"decided_at,omitempty"   db:"decided_at"`
	Notes        *string     `json:"notes,omitempty"        db:"notes"`
	CreatedAt    time.Time   `json:"created_at"             db:"created_at"`
}

// DurationDays returns the inclusive number of calendar days covered.
func (l LeaveRequest) DurationDays() int {
	start := calendarDay(l.StartDate)
	end := calendarDay(l.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// calendarDay normalizes to midnight UTC of the timestamp's own calendar
// date, so time-of-day and zone offsets never shift the day arithmetic.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateLeaveRequest represents parameters to file a leave request.
// EmployeeID is taken from the authenticated principal.
type CreateLeaveRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Type      LeaveType `json:"type"`
	Reason    string    `json:"reason"`
}

// Validate validates CreateLeaveRequest.
func (r *CreateLeaveRequest) Validate() error {
	if r.StartDate.IsZero() || r.EndDate.IsZero() {
		return errors.New("start_date and end_date are required")
	}
	if r.EndDate.Before(r.StartDate) {
		return errors.New("end_date cannot be before start_date")
	}
	if !r.Type.Valid() {
		return errors.New("type must be one of: vacation, sick, maternity, paternity, bereavement, other")
	}
	if strings.TrimSpace(r.Reason) == "" {
		return errors.New("reason is required and cannot be empty")
	}
	return nil
}

// LeaveDecision represents an approve/reject decision on a pending request.
type LeaveDecision struct {
	Approve bool    `json:"approve"`
	Notes   *string `json:"notes,omitempty"`
}

// LeaveDecisionAudit captures who decided a leave request and any notes,
// recorded alongside the status transition.
type LeaveDecisionAudit struct {
	DecidedBy string
	Notes     *string
}

// LeaveRequestsListOptions controls paging and filtering for listing leave requests.
type LeaveRequestsListOptions struct {
	Limit      int
	Offset     int
	EmployeeID *string
	Status     *LeaveStatus
	Type       *LeaveType
}
