package samples

import "time"

// Status is free-running: any transition is allowed, including moving a
// delivered request back to in processing.
type Status string

const (
	StatusInProcessing Status = "in processing"
	StatusDelivered    Status = "delivered"
	StatusRejected     Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProcessing, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

// SampleRequest tracks an external company's request for a physical sample.
type SampleRequest struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	CompanyName string    `gorm:"not null"`
	Country     string    `gorm:"not null"`
	RequestDate time.Time `gorm:"type:date;not null"`
	Status      Status    `gorm:"type:text;not null;default:'in processing'"`
	Notes       *string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

type CreateSampleRequestInput struct {
	CompanyName string
	Country     string
	RequestDate time.Time
	Status      Status
	Notes       *string
}

type UpdateSampleRequestInput struct {
	CompanyName *string
	Country     *string
	RequestDate *time.Time
	Status      *Status
	Notes       *string
}
