package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationKind identifies a templated email notification.
type NotificationKind string

const (
	NotificationDeliverySchedule NotificationKind = "delivery_schedule"
	NotificationOverdueAlert     NotificationKind = "overdue_alert"
	NotificationCustomsClearance NotificationKind = "customs_clearance"
	NotificationCustomerSchedule NotificationKind = "customer_schedule"
)

// Valid reports whether k is a supported kind.
func (k NotificationKind) Valid() bool {
	switch k {
	case NotificationDeliverySchedule, NotificationOverdueAlert, NotificationCustomsClearance, NotificationCustomerSchedule:
		return true
	}
	return false
}

// SendStatus is the outcome of one recipient's send.
type SendStatus string

const (
	SendStatusSent    SendStatus = "sent"
	SendStatusFailed  SendStatus = "failed"
	SendStatusSkipped SendStatus = "skipped"
)

// Recipient is a person a notification can be addressed to.
type Recipient struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Company           string `json:"company,omitempty"`
	ManagerName       string `json:"manager_name,omitempty"`
	ManagerEmail      string `json:"manager_email,omitempty"`
	ActiveDeliveries  int    `json:"active_deliveries"`
	OverdueDeliveries int    `json:"overdue_deliveries"`
	DueToday          int    `json:"due_today"`
}

// NotificationLog records one send attempt.
type NotificationLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Kind        string    `gorm:"type:varchar(50);not null;index" json:"kind"`
	Recipient   string    `gorm:"type:varchar(200);not null" json:"recipient"`
	Email       string    `gorm:"type:varchar(320)" json:"email"`
	CC          string    `gorm:"type:text" json:"cc,omitempty"`
	Subject     string    `gorm:"type:varchar(500)" json:"subject"`
	Status      string    `gorm:"type:varchar(20);not null;index" json:"status"`
	Deliveries  int       `json:"deliveries"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	Attachments string    `gorm:"type:text" json:"attachments,omitempty"`
	CreatedAt   time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`
}

// TableName overrides the gorm default
func (NotificationLog) TableName() string {
	return "notification_logs"
}

// BeforeCreate assigns an ID when none is set
func (n *NotificationLog) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
