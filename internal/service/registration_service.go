package service

import (
	"errors"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/ratelimit"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegistrationStore kayıt akışının veri erişim yüzeyi.
type RegistrationStore interface {
	Create(reg *models.Registration) (*models.Registration, error)
	GetByID(id uint) (*models.Registration, error)
	GetEventRegistrations(eventID uint) ([]models.Registration, error)
	EmailExists(eventID uint, email string) (bool, error)
	Delete(id uint) error
}

// EventLookup etkinlik okuma yüzeyi; EventService tarafından sağlanır.
type EventLookup interface {
	GetEvent(id uint) (*models.Event, error)
	GetEventByURL(url string) (*models.Event, error)
}

// ConfirmationMailer kayıt onay e-postası gönderimi.
type ConfirmationMailer interface {
	SendRegistrationConfirmation(to, fullName, eventTitle string) (string, error)
}

type RegistrationService struct {
	store    RegistrationStore
	events   EventLookup
	mailer   ConfirmationMailer
	emailLog EmailLogStore
	limiter  *ratelimit.Limiter
	logger   *zap.Logger
}

func NewRegistrationService(
	store RegistrationStore,
	events EventLookup,
	mailer ConfirmationMailer,
	emailLog EmailLogStore,
	limiter *ratelimit.Limiter,
	logger *zap.Logger,
) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		store:    store,
		events:   events,
		mailer:   mailer,
		emailLog: emailLog,
		limiter:  limiter,
		logger:   logger,
	}
}

// Register form girdisini etkinliğe bağlar. Sıra: oran sınırı → etkinlik →
// mükerrer e-posta → kayıt. Onay e-postası kayıttan sonra en iyi gayretle
// gönderilir, başarısızlığı kaydı geri almaz.
func (s *RegistrationService) Register(eventURL string, req models.RegistrationRequest, clientIP string) (*models.Registration, error) {
	if !s.limiter.Allow("registration:" + clientIP) {
		return nil, ErrRateLimited
	}

	event, err := s.events.GetEventByURL(eventURL)
	if err != nil {
		return nil, err
	}
	if !event.IsPublished {
		return nil, ErrNotFound
	}

	exists, err := s.store.EmailExists(event.ID, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	reg := &models.Registration{
		EventID:     event.ID,
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       utils.NormalizePhone(req.Phone),
		Institution: req.Institution,
		Position:    req.Position,
	}
	created, err := s.store.Create(reg)
	if err != nil {
		return nil, err
	}

	go s.sendConfirmation(created, event)

	return created, nil
}

func (s *RegistrationService) sendConfirmation(reg *models.Registration, event *models.Event) {
	log := &models.EmailLog{
		EventID:        event.ID,
		RegistrationID: reg.ID,
		To:             reg.Email,
		Subject:        event.Title + " - Kaydınız Alındı",
		Status:         models.EmailStatusQueued,
	}
	log, lErr := s.emailLog.Create(log)
	if lErr != nil {
		s.logger.Error("e-posta kaydı açılamadı", zap.Error(lErr))
		return
	}

	msgID, err := s.mailer.SendRegistrationConfirmation(reg.Email, reg.FullName, event.Title)
	if err != nil {
		_ = s.emailLog.UpdateStatus(log.ID, models.EmailStatusFailed, "", err.Error())
		return
	}
	_ = s.emailLog.UpdateStatus(log.ID, models.EmailStatusSent, msgID, "")
}

func (s *RegistrationService) GetRegistration(id uint) (*models.Registration, error) {
	reg, err := s.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) GetEventRegistrations(eventID uint) ([]models.Registration, error) {
	return s.store.GetEventRegistrations(eventID)
}

func (s *RegistrationService) DeleteRegistration(id uint) error {
	if _, err := s.GetRegistration(id); err != nil {
		return err
	}
	return s.store.Delete(id)
}

// ExportCSV katılımcı listesini BOM'lu, her alanı tırnaklı CSV olarak üretir.
func (s *RegistrationService) ExportCSV(eventID uint) ([]byte, error) {
	regs, err := s.store.GetEventRegistrations(eventID)
	if err != nil {
		return nil, err
	}

	header := []string{"Ad Soyad", "E-posta", "Telefon", "Kurum", "Görev", "Kayıt Tarihi"}
	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			r.FullName,
			r.Email,
			r.Phone,
			r.Institution,
			r.Position,
			r.CreatedAt.Format("02.01.2006 15:04"),
		})
	}
	return utils.BuildQuotedCSV(header, rows), nil
}
