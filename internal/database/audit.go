package database

import (
	"fmt"

	"luxe-studio/internal/models"

	"gorm.io/gorm"
)

// recordAudit пишет запись журнала в той же транзакции, что и само изменение
func recordAudit(tx *gorm.DB, userID uint, entity string, entityID uint, action, details string) error {
	entry := models.AuditLog{
		UserID:   userID,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("write audit log: %w", err)
	}
	return nil
}

func ListAuditLogs(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := DB.
		Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}
