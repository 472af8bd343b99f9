package repository

import (
	"errors"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"gorm.io/gorm"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) GetEventSections(eventID uint) ([]models.PageSection, error) {
	var sections []models.PageSection
	err := r.db.Where("event_id = ?", eventID).Order("position asc").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) GetByKey(eventID uint, key string) (*models.PageSection, error) {
	var section models.PageSection
	err := r.db.Where("event_id = ? AND key = ?", eventID, key).First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

// Upsert aynı (event, key) çifti için varsa günceller, yoksa oluşturur.
func (r *SectionRepository) Upsert(section *models.PageSection) (*models.PageSection, error) {
	existing, err := r.GetByKey(section.EventID, section.Key)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err := r.db.Create(section).Error; err != nil {
			return nil, err
		}
		return section, nil
	}

	existing.Position = section.Position
	existing.IsVisible = section.IsVisible
	existing.Settings = section.Settings
	if err := r.db.Save(existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *SectionRepository) Delete(eventID uint, key string) error {
	return r.db.Where("event_id = ? AND key = ?", eventID, key).Delete(&models.PageSection{}).Error
}
