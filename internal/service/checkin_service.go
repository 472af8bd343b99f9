package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/qrcode"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CheckInStore durum makinesinin ihtiyaç duyduğu dar veri erişim yüzeyi.
// Üretimde GORM repository'si, testlerde bellek içi sahte uygulanır.
type CheckInStore interface {
	Create(rec *models.CheckInRecord) (*models.CheckInRecord, error)
	GetByPayload(qrData string) (*models.CheckInRecord, error)
	GetValidByRegistration(registrationID uint) (*models.CheckInRecord, error)
	MarkCheckedIn(qrData, staff string, now time.Time) (int64, error)
	MarkCheckedOut(qrData, staff string, now time.Time) (int64, error)
	Invalidate(id uint) error
	GetEventRecords(eventID uint) ([]models.CheckInRecord, error)
	Stats(eventID uint) (*models.CheckInStats, error)
}

// CheckInService kapı tarafındaki giriş/çıkış makinesi. Geçişler tek
// koşullu UPDATE ile yapılır; iki cihazın aynı kodu aynı anda okutması
// yalnızca birine başarı döner.
type CheckInService struct {
	store  CheckInStore
	logger *zap.Logger
	now    func() time.Time
}

func NewCheckInService(store CheckInStore, logger *zap.Logger) *CheckInService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckInService{store: store, logger: logger, now: time.Now}
}

// EnsureRecord kayıt sahibi için taranabilir kaydı oluşturur; payload'ın
// serileştirilmiş hali aynen arama anahtarı olur. Aynı kayıt için ikinci
// çağrı yaşayan kaydı döner, yeni anahtar üretmez.
func (s *CheckInService) EnsureRecord(reg *models.Registration) (*models.CheckInRecord, string, error) {
	if existing, err := s.store.GetValidByRegistration(reg.ID); err == nil {
		return existing, existing.QRCodeData, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	payload := qrcode.NewPayload(reg.ID, reg.EventID, reg.Email, reg.FullName)
	data, err := qrcode.EncodePayload(payload)
	if err != nil {
		return nil, "", err
	}

	rec := &models.CheckInRecord{
		RegistrationID: reg.ID,
		EventID:        reg.EventID,
		QRCodeData:     data,
		IsValid:        true,
	}
	created, err := s.store.Create(rec)
	if err != nil {
		return nil, "", fmt.Errorf("check-in kaydı oluşturulamadı: %w", err)
	}
	return created, data, nil
}

// CheckIn okutulan ham veriyi çözer ve girişi işler. Etkinlik uyuşmazlığı
// veri tabanına gitmeden reddedilir.
func (s *CheckInService) CheckIn(raw string, eventID uint, staff string) (*models.CheckInRecord, error) {
	payload, err := qrcode.DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	if payload.EventID != eventID {
		return nil, ErrCrossEvent
	}

	affected, err := s.store.MarkCheckedIn(raw, staff, s.now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Satır etkilenmediyse kayıt ya yok ya da zaten girmiş durumda.
		rec, err := s.store.GetByPayload(raw)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		if rec.CheckInTime != nil {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, ErrInvalidated
	}

	rec, err := s.store.GetByPayload(raw)
	if err != nil {
		return nil, err
	}
	s.logger.Info("giriş yapıldı",
		zap.Uint("registration_id", rec.RegistrationID),
		zap.Uint("event_id", rec.EventID),
		zap.String("staff", staff))
	return rec, nil
}

// CheckOut girişin aynasıdır; girilmemiş kod çıkamaz, çıkan tekrar çıkamaz.
func (s *CheckInService) CheckOut(raw string, eventID uint, staff string) (*models.CheckInRecord, error) {
	payload, err := qrcode.DecodePayload(raw)
	if err != nil {
		return nil, err
	}
	if payload.EventID != eventID {
		return nil, ErrCrossEvent
	}

	affected, err := s.store.MarkCheckedOut(raw, staff, s.now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		rec, err := s.store.GetByPayload(raw)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		switch {
		case rec.CheckInTime == nil:
			return nil, ErrNotCheckedIn
		case rec.CheckOutTime != nil:
			return nil, ErrAlreadyCheckedOut
		default:
			return nil, ErrInvalidated
		}
	}

	rec, err := s.store.GetByPayload(raw)
	if err != nil {
		return nil, err
	}
	s.logger.Info("çıkış yapıldı",
		zap.Uint("registration_id", rec.RegistrationID),
		zap.Uint("event_id", rec.EventID),
		zap.String("staff", staff))
	return rec, nil
}

// Invalidate kaydı her durumdan kalıcı olarak emekliye ayırır.
func (s *CheckInService) Invalidate(id uint) error {
	return s.store.Invalidate(id)
}

func (s *CheckInService) EventRecords(eventID uint) ([]models.CheckInRecord, error) {
	return s.store.GetEventRecords(eventID)
}

func (s *CheckInService) Stats(eventID uint) (*models.CheckInStats, error) {
	return s.store.Stats(eventID)
}
