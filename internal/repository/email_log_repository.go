package repository

import (
	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"gorm.io/gorm"
)

type EmailLogRepository struct {
	db *gorm.DB
}

func NewEmailLogRepository(db *gorm.DB) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

func (r *EmailLogRepository) Create(log *models.EmailLog) (*models.EmailLog, error) {
	result := r.db.Create(log)
	if result.Error != nil {
		return nil, result.Error
	}
	return log, nil
}

func (r *EmailLogRepository) UpdateStatus(id uint, status, messageID, errMsg string) error {
	return r.db.Model(&models.EmailLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"message_id": messageID,
			"error":      errMsg,
		}).Error
}

func (r *EmailLogRepository) GetEventLogs(eventID uint) ([]models.EmailLog, error) {
	var logs []models.EmailLog
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&logs).Error
	return logs, err
}
