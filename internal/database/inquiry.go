package database

import (
	"errors"
	"fmt"
	"time"

	"luxe-studio/internal/models"

	"gorm.io/gorm"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

func CreateInquiry(inq *models.Inquiry) error {
	if inq.Status == "" {
		inq.Status = models.InquiryNew
	}
	return DB.Create(inq).Error
}

// ListInquiries returns the newest inquiries first; an empty status means
// every status.
func ListInquiries(status models.InquiryStatus, limit int) ([]models.Inquiry, error) {
	q := DB.Preload("HandledBy").Order("created_at desc").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []models.Inquiry
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

// MarkInquiryHandled closes an inquiry and records who did it. Marking an
// already handled inquiry again is a no-op.
func MarkInquiryHandled(id, userID uint) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var inq models.Inquiry
		if err := tx.First(&inq, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInquiryNotFound
			}
			return err
		}
		if inq.Status == models.InquiryHandled {
			return nil
		}

		err := tx.Model(&inq).Updates(map[string]any{
			"status":        models.InquiryHandled,
			"handled_by_id": userID,
		}).Error
		if err != nil {
			return fmt.Errorf("update inquiry %d: %w", inq.ID, err)
		}

		return recordAudit(tx, userID, "inquiry", inq.ID, "handled",
			fmt.Sprintf("Inquiry from %s handled at %s", inq.Email, time.Now().Format(time.RFC3339)))
	})
}
