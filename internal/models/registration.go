package models

import (
	"time"
)

type Registration struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	EventID     uint      `json:"event_id" gorm:"not null;uniqueIndex:idx_event_email"`
	FullName    string    `json:"full_name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null;uniqueIndex:idx_event_email"`
	Phone       string    `json:"phone" gorm:"not null"` // Normalize edilmiş halde saklanır
	Institution string    `json:"institution"`
	Position    string    `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RegistrationRequest kayıt formu girdisi. Tüm alanlar birlikte doğrulanır;
// çağıran bütün alan hatalarını tek seferde gösterebilir.
type RegistrationRequest struct {
	FullName    string `json:"full_name" validate:"required,min=2,max=100,person_name"`
	Email       string `json:"email" validate:"required,email,max=255,plain_email"`
	Phone       string `json:"phone" validate:"required,turkish_phone"`
	Institution string `json:"institution" validate:"required,min=2,max=200"`
	Position    string `json:"position" validate:"required,min=2,max=100"`
}
