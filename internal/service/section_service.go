package service

import (
	"encoding/json"
	"sort"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/internal/repository"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/styles"
)

type SectionService struct {
	sectionRepo *repository.SectionRepository
}

func NewSectionService(sectionRepo *repository.SectionRepository) *SectionService {
	return &SectionService{sectionRepo: sectionRepo}
}

func (s *SectionService) GetEventSections(eventID uint) ([]models.PageSection, error) {
	return s.sectionRepo.GetEventSections(eventID)
}

// SaveSection bölüm ayarlarını JSON'a serileştirip (event, key) üzerine yazar.
func (s *SectionService) SaveSection(eventID uint, req models.PageSectionRequest) (*models.PageSection, error) {
	raw, err := json.Marshal(req.Settings)
	if err != nil {
		return nil, err
	}
	return s.sectionRepo.Upsert(&models.PageSection{
		EventID:   eventID,
		Key:       req.Key,
		Position:  req.Position,
		IsVisible: req.IsVisible,
		Settings:  string(raw),
	})
}

func (s *SectionService) DeleteSection(eventID uint, key string) error {
	return s.sectionRepo.Delete(eventID, key)
}

// LandingSections landing sayfası için görünür bölümleri türetilmiş
// stilleriyle döner. Bozuk ayar kaydı varsayılanlara düşer, sayfa asla
// bundan kırılmaz.
func (s *SectionService) LandingSections(eventID uint) ([]models.SectionView, error) {
	sections, err := s.sectionRepo.GetEventSections(eventID)
	if err != nil {
		return nil, err
	}

	views := make([]models.SectionView, 0, len(sections))
	for _, sec := range sections {
		if !sec.IsVisible {
			continue
		}
		settings := sec.ParseSettings()
		views = append(views, models.SectionView{
			Key:        sec.Key,
			Position:   sec.Position,
			IsVisible:  sec.IsVisible,
			Settings:   settings,
			Styles:     styles.InlineStyles(settings),
			ClassNames: styles.ClassNames(settings),
		})
	}

	sort.SliceStable(views, func(i, j int) bool { return views[i].Position < views[j].Position })
	return views, nil
}
