package repository

import (
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"gorm.io/gorm"
)

type CheckInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) *CheckInRepository {
	return &CheckInRepository{db: db}
}

func (r *CheckInRepository) Create(rec *models.CheckInRecord) (*models.CheckInRecord, error) {
	result := r.db.Create(rec)
	if result.Error != nil {
		return nil, result.Error
	}
	return rec, nil
}

// GetByPayload kaydı serileştirilmiş payload'ın birebir eşleşmesiyle bulur;
// yalnızca geçerli kayıtlar taranır.
func (r *CheckInRepository) GetByPayload(qrData string) (*models.CheckInRecord, error) {
	var rec models.CheckInRecord
	err := r.db.Where("qr_code_data = ? AND is_valid = ?", qrData, true).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetValidByRegistration bir kayıt sahibinin yaşayan check-in kaydını döner.
func (r *CheckInRepository) GetValidByRegistration(registrationID uint) (*models.CheckInRecord, error) {
	var rec models.CheckInRecord
	err := r.db.Where("registration_id = ? AND is_valid = ?", registrationID, true).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// MarkCheckedIn tek koşullu UPDATE ile giriş zamanını yazar. İki cihaz aynı
// kodu aynı anda okutsa bile yalnızca biri satırı etkiler; sıfır satır
// "zaten girmiş" anlamına gelir.
func (r *CheckInRepository) MarkCheckedIn(qrData, staff string, now time.Time) (int64, error) {
	result := r.db.Model(&models.CheckInRecord{}).
		Where("qr_code_data = ? AND is_valid = ? AND check_in_time IS NULL", qrData, true).
		Updates(map[string]interface{}{
			"check_in_time": now,
			"check_in_by":   staff,
		})
	return result.RowsAffected, result.Error
}

// MarkCheckedOut girişi yapılmış ve henüz çıkmamış kaydı koşullu günceller.
func (r *CheckInRepository) MarkCheckedOut(qrData, staff string, now time.Time) (int64, error) {
	result := r.db.Model(&models.CheckInRecord{}).
		Where("qr_code_data = ? AND is_valid = ? AND check_in_time IS NOT NULL AND check_out_time IS NULL", qrData, true).
		Updates(map[string]interface{}{
			"check_out_time": now,
			"check_out_by":   staff,
		})
	return result.RowsAffected, result.Error
}

// Invalidate kaydı kalıcı olarak emekliye ayırır; her durumdan çağrılabilir.
func (r *CheckInRepository) Invalidate(id uint) error {
	return r.db.Model(&models.CheckInRecord{}).
		Where("id = ?", id).
		Update("is_valid", false).Error
}

func (r *CheckInRepository) GetEventRecords(eventID uint) ([]models.CheckInRecord, error) {
	var recs []models.CheckInRecord
	err := r.db.Where("event_id = ?", eventID).Order("created_at desc").Find(&recs).Error
	return recs, err
}

// Stats etkinlik kayıtları üzerinde talep anında hesaplanan özet.
func (r *CheckInRepository) Stats(eventID uint) (*models.CheckInStats, error) {
	var stats models.CheckInStats
	base := r.db.Model(&models.CheckInRecord{}).Where("event_id = ? AND is_valid = ?", eventID, true)

	if err := base.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("check_in_time IS NOT NULL").Count(&stats.CheckedIn).Error; err != nil {
		return nil, err
	}
	if err := base.Session(&gorm.Session{}).Where("check_out_time IS NOT NULL").Count(&stats.CheckedOut).Error; err != nil {
		return nil, err
	}
	stats.Present = stats.CheckedIn - stats.CheckedOut
	return &stats, nil
}
