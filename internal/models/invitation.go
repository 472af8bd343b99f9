package models

import (
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/poster"
)

// InvitationRequest gelişmiş afiş üretim parametreleri. Arka plan görseli
// multipart dosyadan ayrıca okunur, gövdede taşınmaz.
type InvitationRequest struct {
	Template          string       `json:"template"`
	Size              string       `json:"size"`
	Width             int          `json:"width"`
	Height            int          `json:"height"`
	Style             poster.Style `json:"style"`
	CustomTitle       string       `json:"custom_title" validate:"max=200"`
	CustomSubtitle    string       `json:"custom_subtitle" validate:"max=200"`
	CustomFooter      string       `json:"custom_footer" validate:"max=300"`
	BackgroundOpacity float64      `json:"background_opacity"`
	Seed              int64        `json:"seed"`
	Format            string       `json:"format"` // png (varsayılan) veya jpeg
	IncludeQR         bool         `json:"include_qr"`
	Upload            bool         `json:"upload"`
}

// InvitationResult üretim çıktısının meta verisi. Bytes yalnızca Upload
// istenmediğinde doludur.
type InvitationResult struct {
	URL         string `json:"url,omitempty"`
	ContentType string `json:"-"`
	Bytes       []byte `json:"-"`
}

// PersonalizedResult kişisel davetiye üretiminin özeti.
type PersonalizedResult struct {
	RegistrationID uint   `json:"registration_id"`
	PosterURL      string `json:"poster_url"`
	EmailStatus    string `json:"email_status"`
}
