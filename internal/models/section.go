package models

import (
	"encoding/json"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/pkg/styles"
)

// PageSection etkinlik sayfasındaki bir bölümün görünürlük ve stil kaydı.
// Settings JSON olarak saklanır; bozuk veya boş içerik varsayılan ayarlara
// düşer, sayfa render'ı hiçbir zaman bundan kırılmaz.
type PageSection struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	EventID   uint      `json:"event_id" gorm:"index;not null;uniqueIndex:idx_event_section"`
	Key       string    `json:"key" gorm:"not null;uniqueIndex:idx_event_section"` // hero, about, speakers...
	Position  int       `json:"position" gorm:"default:0"`
	IsVisible bool      `json:"is_visible" gorm:"default:true"`
	Settings  string    `json:"settings" gorm:"type:jsonb;default:'{}'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ParseSettings saklanan JSON'u çözer; hata durumunda sıfır ayarlar döner.
func (s *PageSection) ParseSettings() styles.Settings {
	var out styles.Settings
	if s.Settings == "" {
		return out
	}
	_ = json.Unmarshal([]byte(s.Settings), &out)
	return out
}

type PageSectionRequest struct {
	Key       string          `json:"key" validate:"required,max=50"`
	Position  int             `json:"position"`
	IsVisible bool            `json:"is_visible"`
	Settings  styles.Settings `json:"settings"`
}

// SectionView landing sayfasına dönen, türetilmiş stillerle zenginleşmiş hal.
type SectionView struct {
	Key        string            `json:"key"`
	Position   int               `json:"position"`
	IsVisible  bool              `json:"is_visible"`
	Settings   styles.Settings   `json:"settings"`
	Styles     map[string]string `json:"styles"`
	ClassNames string            `json:"class_names"`
}
