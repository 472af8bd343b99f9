package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/repository"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/cache"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const eventCacheTTL = 5 * time.Minute

type EventService struct {
	eventRepo *repository.EventRepository
	cache     cache.Store
	logger    *zap.Logger
}

func NewEventService(eventRepo *repository.EventRepository, store cache.Store, logger *zap.Logger) *EventService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventService{eventRepo: eventRepo, cache: store, logger: logger}
}

func (s *EventService) CreateEvent(req models.EventRequest) (*models.Event, error) {
	url, err := s.generateUniqueURL()
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		Title:          req.Title,
		Subtitle:       req.Subtitle,
		Tagline:        req.Tagline,
		Date:           req.Date,
		Location:       req.Location,
		LocationDetail: req.LocationDetail,
		Address:        req.Address,
		URL:            url,
		IsPublished:    req.IsPublished,
	}
	return s.eventRepo.Create(event)
}

// generateUniqueURL kısa ve tahmin edilemez etkinlik kodu üretir; çakışma
// pratikte beklenmez ama yine de denetlenir.
func (s *EventService) generateUniqueURL() (string, error) {
	for i := 0; i < 5; i++ {
		url := utils.GenerateRandomString(8)
		exists, err := s.eventRepo.URLExists(url)
		if err != nil {
			return "", err
		}
		if !exists {
			return url, nil
		}
	}
	return "", fmt.Errorf("benzersiz etkinlik kodu üretilemedi")
}

func (s *EventService) GetEvent(id uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

// GetEventByURL landing sayfasının okuma yoludur: başarılı okuma önbelleğe
// yazılır, veri deposu hata verirse önbellekteki kopya servis edilir;
// ikisi de yoksa kayıp kayıt muamelesi görür.
func (s *EventService) GetEventByURL(url string) (*models.Event, error) {
	cacheKey := "event:url:" + url

	event, err := s.eventRepo.GetByURL(url)
	if err == nil {
		if b, mErr := json.Marshal(event); mErr == nil {
			s.cache.Set(cacheKey, b, eventCacheTTL)
		}
		return event, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}

	if b, ok := s.cache.Get(cacheKey); ok {
		s.logger.Warn("etkinlik önbellekten servis edildi", zap.String("url", url), zap.Error(err))
		var cached models.Event
		if uErr := json.Unmarshal(b, &cached); uErr == nil {
			return &cached, nil
		}
	}
	return nil, ErrNotFound
}

func (s *EventService) GetAllEvents() ([]models.Event, error) {
	return s.eventRepo.GetAll()
}

func (s *EventService) UpdateEvent(id uint, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Subtitle != nil {
		event.Subtitle = *req.Subtitle
	}
	if req.Tagline != nil {
		event.Tagline = *req.Tagline
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.LocationDetail != nil {
		event.LocationDetail = *req.LocationDetail
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}

	if err := s.eventRepo.Update(event); err != nil {
		return nil, err
	}
	s.cache.Delete("event:url:" + event.URL)
	return event, nil
}

func (s *EventService) DeleteEvent(id uint) error {
	event, err := s.GetEvent(id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(id); err != nil {
		return err
	}
	s.cache.Delete("event:url:" + event.URL)
	return nil
}
