package models

import (
	"time"
)

const (
	EmailStatusQueued = "queued"
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog giden e-postanın durum kaydı. Yeniden deneme makinesi yok;
// yalnızca durum işaretlenir.
type EmailLog struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	EventID        uint      `json:"event_id" gorm:"index"`
	RegistrationID uint      `json:"registration_id" gorm:"index"`
	To             string    `json:"to" gorm:"not null"`
	Subject        string    `json:"subject"`
	Status         string    `json:"status" gorm:"default:queued"`
	MessageID      string    `json:"message_id"`
	Error          string    `json:"error"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
