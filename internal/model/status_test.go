package model_test

import (
	"testing"
	"time"

	"github.com/eslib/lending-service/internal/model"
	"github.com/stretchr/testify/require"
)

func TestStatusOnApprove(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		from model.Status
		want model.Status
		ok   bool
	}{
		{model.StatusPending, model.StatusApproved, true},
		{model.StatusReturnPending, model.StatusReturned, true},
		{model.StatusApproved, model.StatusApproved, false},
		{model.StatusRejected, model.StatusRejected, false},
		{model.StatusReturned, model.StatusReturned, false},
	}
	for _, tt := range tests {
		got, ok := tt.from.OnApprove()
		require.Equal(t, tt.ok, ok, string(tt.from))
		require.Equal(t, tt.want, got, string(tt.from))
	}
}

func TestStatusOnReject(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		from model.Status
		want model.Status
		ok   bool
	}{
		{model.StatusPending, model.StatusRejected, true},
		// denying a return request keeps the loan open
		{model.StatusReturnPending, model.StatusApproved, true},
		{model.StatusApproved, model.StatusApproved, false},
		{model.StatusRejected, model.StatusRejected, false},
		{model.StatusReturned, model.StatusReturned, false},
	}
	for _, tt := range tests {
		got, ok := tt.from.OnReject()
		require.Equal(t, tt.ok, ok, string(tt.from))
		require.Equal(t, tt.want, got, string(tt.from))
	}
}

func TestStatusCanRequestReturn(t *testing.T) {
	t.Parallel()
	require.True(t, model.StatusApproved.CanRequestReturn())
	for _, s := range []model.Status{model.StatusPending, model.StatusRejected, model.StatusReturned, model.StatusReturnPending} {
		require.False(t, s.CanRequestReturn(), string(s))
	}
}

func TestNewBorrowNotification(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 4, 8, 10, 30, 0, 0, time.UTC)
	l := model.LendingRecord{
		LendingUid:    "6",
		RollNumber:    "22CSA52",
		ComponentName: "Arduino Uno",
		Quantity:      1,
	}
	n := model.NewBorrowNotification(l, now)
	require.Equal(t, "New Borrow Request", n.Title)
	require.Equal(t, "Student 22CSA52 requested to borrow Arduino Uno (1 unit)", n.Message)
	require.Equal(t, model.NotificationBorrowRequest, n.Type)
	require.Equal(t, "6", n.LendingUid)
	require.Equal(t, now, n.Date)
	require.False(t, n.Read)
}

func TestNewReturnNotificationPlural(t *testing.T) {
	t.Parallel()
	l := model.LendingRecord{
		LendingUid:    "2",
		RollNumber:    "22CSA52",
		ComponentName: "Breadboard",
		Quantity:      2,
	}
	n := model.NewReturnNotification(l, time.Now())
	require.Equal(t, "New Return Request", n.Title)
	require.Equal(t, "Student 22CSA52 requested to return Breadboard (2 units)", n.Message)
	require.Equal(t, model.NotificationReturnRequest, n.Type)
}
