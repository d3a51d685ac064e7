package request

import (
	"time"

	"github.com/kintai-app/kintai-backend-go/internal/domain/attendance"
)

// Status is the approval state of a schedule request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Request is an employee's vacation or schedule-change request for one
// date, awaiting an admin decision.
type Request struct {
	ID              string
	EmployeeName    string
	Date            time.Time
	RequestedType   attendance.WorkType
	Reason          *string
	Status          Status
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
