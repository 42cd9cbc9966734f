package models

import "gorm.io/gorm"

type InquiryStatus string

const (
	InquiryNew     InquiryStatus = "new"
	InquiryHandled InquiryStatus = "handled"
)

// Inquiry is a message sent through the public contact form.
type Inquiry struct {
	gorm.Model
	Name    string        `gorm:"size:255;not null"`
	Email   string        `gorm:"size:255;not null"`
	Message string        `gorm:"type:text;not null"`
	Status  InquiryStatus `gorm:"type:varchar(20);not null;default:'new'"`

	HandledByID *uint
	HandledBy   *User
}
