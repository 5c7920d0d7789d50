package model

import (
	"time"
)

type Component struct {
	ID                int        `json:"-" db:"id"`
	ComponentUid      string     `json:"id" db:"component_uid"`
	Name              string     `json:"name" db:"name"`
	TotalQuantity     int        `json:"totalQuantity" db:"total_quantity"`
	AvailableQuantity int        `json:"availableQuantity" db:"available_quantity"`
	Description       string     `json:"description,omitempty" db:"description"`
	ExpectedRestock   *time.Time `json:"expectedRestock,omitempty" db:"expected_restock"`
	ImageURL          string     `json:"imageUrl,omitempty" db:"image_url"`
}

type LendingRecord struct {
	ID            int        `json:"-" db:"id"`
	LendingUid    string     `json:"id" db:"lending_uid"`
	RollNumber    string     `json:"rollNumber" db:"roll_number"`
	ComponentUid  string     `json:"componentId" db:"component_uid"`
	ComponentName string     `json:"componentName" db:"component_name"`
	Quantity      int        `json:"quantity" db:"quantity"`
	BorrowDate    time.Time  `json:"borrowDate" db:"borrow_date"`
	ReturnDate    *time.Time `json:"returnDate" db:"return_date"`
	Purpose       string     `json:"purpose,omitempty" db:"purpose"`
	Status        Status     `json:"status" db:"status"`
}

type Notification struct {
	ID              int              `json:"-" db:"id"`
	NotificationUid string           `json:"id" db:"notification_uid"`
	Title           string           `json:"title" db:"title"`
	Message         string           `json:"message" db:"message"`
	Type            NotificationType `json:"type" db:"type"`
	LendingUid      string           `json:"lendingId" db:"lending_uid"`
	Date            time.Time        `json:"date" db:"date"`
	Read            bool             `json:"read" db:"read"`
}

type CreateComponentRequest struct {
	Name              string     `json:"name" validate:"required"`
	TotalQuantity     int        `json:"totalQuantity" validate:"min=0"`
	AvailableQuantity int        `json:"availableQuantity" validate:"min=0,ltefield=TotalQuantity"`
	Description       string     `json:"description"`
	ExpectedRestock   *time.Time `json:"expectedRestock"`
	ImageURL          string     `json:"imageUrl"`
}

type CreateBorrowRequest struct {
	RollNumber  string `json:"rollNumber" validate:"required,rollnum"`
	ComponentID string `json:"componentId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	Purpose     string `json:"purpose" validate:"required"`
}

type LendingFilter struct {
	RollNumber string
	Status     Status
	Unreturned bool
}

type NotificationFilter string

const (
	NotificationsAll    NotificationFilter = "all"
	NotificationsUnread NotificationFilter = "unread"
	NotificationsBorrow NotificationFilter = "borrow"
	NotificationsReturn NotificationFilter = "return"
)

func (f NotificationFilter) Valid() bool {
	switch f {
	case NotificationsAll, NotificationsUnread, NotificationsBorrow, NotificationsReturn:
		return true
	}
	return false
}

type DashboardStats struct {
	TotalQuantity      int     `json:"totalQuantity" db:"total_quantity"`
	AvailableQuantity  int     `json:"availableQuantity" db:"available_quantity"`
	Borrowed           int     `json:"borrowed" db:"-"`
	BorrowedPercentage float64 `json:"borrowedPercentage" db:"-"`
}

type ActivityStat struct {
	EventType string `json:"eventType" db:"event_type"`
	Count     int    `json:"count" db:"count"`
}
