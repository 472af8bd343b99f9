package repository

import (
	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"gorm.io/gorm"
)

type RegistrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(reg *models.Registration) (*models.Registration, error) {
	result := r.db.Create(reg)
	if result.Error != nil {
		return nil, result.Error
	}
	return reg, nil
}

func (r *RegistrationRepository) GetByID(id uint) (*models.Registration, error) {
	var reg models.Registration
	err := r.db.First(&reg, id).Error
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepository) GetEventRegistrations(eventID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := r.db.Where("event_id = ?", eventID).Order("created_at asc").Find(&regs).Error
	return regs, err
}

// EmailExists aynı etkinlik için mükerrer kaydı yakalar.
func (r *RegistrationRepository) EmailExists(eventID uint, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).
		Where("event_id = ? AND email = ?", eventID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *RegistrationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Registration{}, id).Error
}

func (r *RegistrationRepository) CountByEvent(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Registration{}).Where("event_id = ?", eventID).Count(&count).Error
	return count, err
}
