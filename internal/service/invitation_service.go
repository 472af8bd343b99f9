package service

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/email"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/poster"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/storage"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InvitationService struct {
	composer     *poster.Composer
	events       EventLookup
	regService   *RegistrationService
	checkin      *CheckInService
	storage      storage.StorageService
	mailer       InvitationMailer
	emailLog     EmailLogStore
	eventBaseURL string
	logger       *zap.Logger
}

// EmailLogStore giden e-postaların durum kaydı için dar yüzey.
type EmailLogStore interface {
	Create(log *models.EmailLog) (*models.EmailLog, error)
	UpdateStatus(id uint, status, messageID, errMsg string) error
}

// InvitationMailer kişisel davetiye e-postası gönderimi.
type InvitationMailer interface {
	SendInvitationEmail(to string, data email.InvitationData) (string, error)
}

func NewInvitationService(
	composer *poster.Composer,
	events EventLookup,
	regService *RegistrationService,
	checkin *CheckInService,
	store storage.StorageService,
	mailer InvitationMailer,
	emailLog EmailLogStore,
	eventBaseURL string,
	logger *zap.Logger,
) *InvitationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvitationService{
		composer:     composer,
		events:       events,
		regService:   regService,
		checkin:      checkin,
		storage:      store,
		mailer:       mailer,
		emailLog:     emailLog,
		eventBaseURL: eventBaseURL,
		logger:       logger,
	}
}

// Generate etkinlik afişini verilen parametrelerle üretir. Upload istenirse
// çıktı R2'ye yazılıp URL döner, aksi halde baytlar olduğu gibi verilir.
func (s *InvitationService) Generate(eventID uint, req models.InvitationRequest, background image.Image) (*models.InvitationResult, error) {
	event, err := s.events.GetEvent(eventID)
	if err != nil {
		return nil, err
	}

	composeReq := poster.Request{
		Template:          poster.Template(req.Template),
		Size:              req.Size,
		Width:             req.Width,
		Height:            req.Height,
		Event:             eventInfo(event),
		Style:             req.Style,
		CustomTitle:       req.CustomTitle,
		CustomSubtitle:    req.CustomSubtitle,
		CustomFooter:      req.CustomFooter,
		Background:        background,
		BackgroundOpacity: req.BackgroundOpacity,
		Seed:              req.Seed,
	}
	if req.IncludeQR {
		composeReq.QRContent = s.eventBaseURL + event.URL
	}

	img, err := s.composer.Compose(composeReq)
	if err != nil {
		return nil, err
	}

	data, contentType, ext, err := encode(img, req.Format)
	if err != nil {
		return nil, err
	}

	if !req.Upload {
		return &models.InvitationResult{Bytes: data, ContentType: contentType}, nil
	}

	key := fmt.Sprintf("posters/%s.%s", uuid.New().String(), ext)
	url, err := s.storage.Upload(key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("afiş yüklenemedi: %w", err)
	}
	return &models.InvitationResult{URL: url, ContentType: contentType}, nil
}

// Personalized kayıt sahibi için QR gömülü davetiye üretir, R2'ye yükler ve
// e-posta ile gönderir. Taranabilir kayıt burada garanti edilir.
func (s *InvitationService) Personalized(registrationID uint) (*models.PersonalizedResult, error) {
	reg, err := s.regService.GetRegistration(registrationID)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetEvent(reg.EventID)
	if err != nil {
		return nil, err
	}

	_, payload, err := s.checkin.EnsureRecord(reg)
	if err != nil {
		return nil, err
	}

	img, err := s.composer.ComposePersonalized(eventInfo(event), reg.FullName, payload)
	if err != nil {
		return nil, err
	}
	data, contentType, ext, err := encode(img, "png")
	if err != nil {
		return nil, err
	}

	key := invitationKey(reg.FullName, ext)
	posterURL, err := s.storage.Upload(key, bytes.NewReader(data), contentType)
	if err != nil {
		return nil, fmt.Errorf("davetiye yüklenemedi: %w", err)
	}

	result := &models.PersonalizedResult{
		RegistrationID: reg.ID,
		PosterURL:      posterURL,
	}

	dateLine, timeLine := poster.FormatEventDate(event.Date)
	log, lErr := s.emailLog.Create(&models.EmailLog{
		EventID:        event.ID,
		RegistrationID: reg.ID,
		To:             reg.Email,
		Subject:        event.Title + " - Davetiyeniz",
		Status:         models.EmailStatusQueued,
	})
	if lErr != nil {
		s.logger.Error("e-posta kaydı açılamadı", zap.Error(lErr))
		result.EmailStatus = models.EmailStatusFailed
		return result, nil
	}

	msgID, sErr := s.mailer.SendInvitationEmail(reg.Email, email.InvitationData{
		FullName:   reg.FullName,
		EventTitle: event.Title,
		EventDate:  dateLine,
		EventTime:  timeLine,
		Location:   event.Location,
		PosterURL:  posterURL,
	})
	if sErr != nil {
		// Davetiye üretildi ve yüklendi; gönderim hatası yalnızca durum
		// kaydına işlenir.
		_ = s.emailLog.UpdateStatus(log.ID, models.EmailStatusFailed, "", sErr.Error())
		result.EmailStatus = models.EmailStatusFailed
		return result, nil
	}

	_ = s.emailLog.UpdateStatus(log.ID, models.EmailStatusSent, msgID, "")
	result.EmailStatus = models.EmailStatusSent
	return result, nil
}

func eventInfo(e *models.Event) poster.EventInfo {
	return poster.EventInfo{
		Title:          e.Title,
		Subtitle:       e.Subtitle,
		Tagline:        e.Tagline,
		Date:           e.Date,
		Location:       e.Location,
		LocationDetail: e.LocationDetail,
		Address:        e.Address,
	}
}

func invitationKey(name, ext string) string {
	return fmt.Sprintf("invitation-%s-%d.%s", utils.Slugify(name), time.Now().Unix(), ext)
}

func encode(img image.Image, format string) (data []byte, contentType, ext string, err error) {
	switch format {
	case "jpeg", "jpg":
		data, err = poster.EncodeJPEG(img)
		return data, "image/jpeg", "jpg", err
	default:
		data, err = poster.EncodePNG(img)
		return data, "image/png", "png", err
	}
}
