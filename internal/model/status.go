package model

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending       Status = "pending"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
	StatusReturned      Status = "returned"
	StatusReturnPending Status = "return-pending"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReturned, StatusReturnPending:
		return true
	}
	return false
}

// OnApprove resolves the admin-approve transition. Approving a pending borrow
// request activates the loan; approving a pending return closes it.
func (s Status) OnApprove() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusApproved, true
	case StatusReturnPending:
		return StatusReturned, true
	}
	return s, false
}

// OnReject resolves the admin-reject transition. A rejected borrow request is
// terminal; a rejected return request puts the record back to approved, the
// loan stays open. "rejected" therefore always means a denied borrow request.
func (s Status) OnReject() (Status, bool) {
	switch s {
	case StatusPending:
		return StatusRejected, true
	case StatusReturnPending:
		return StatusApproved, true
	}
	return s, false
}

// CanRequestReturn reports whether a student may submit a return request.
func (s Status) CanRequestReturn() bool {
	return s == StatusApproved
}

type NotificationType string

const (
	NotificationBorrowRequest NotificationType = "borrow-request"
	NotificationReturnRequest NotificationType = "return-request"
)

func NewBorrowNotification(l LendingRecord, now time.Time) Notification {
	return Notification{
		Title:      "New Borrow Request",
		Message:    fmt.Sprintf("Student %s requested to borrow %s (%s)", l.RollNumber, l.ComponentName, units(l.Quantity)),
		Type:       NotificationBorrowRequest,
		LendingUid: l.LendingUid,
		Date:       now,
	}
}

func NewReturnNotification(l LendingRecord, now time.Time) Notification {
	return Notification{
		Title:      "New Return Request",
		Message:    fmt.Sprintf("Student %s requested to return %s (%s)", l.RollNumber, l.ComponentName, units(l.Quantity)),
		Type:       NotificationReturnRequest,
		LendingUid: l.LendingUid,
		Date:       now,
	}
}

func units(n int) string {
	if n == 1 {
		return "1 unit"
	}
	return fmt.Sprintf("%d units", n)
}
