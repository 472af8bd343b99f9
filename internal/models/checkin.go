package models

import (
	"time"
)

// CheckInRecord bir kayıt sahibinin etkinlik giriş/çıkış durumu. Arama
// anahtarı QRCodeData'nın birebir kendisidir; zaman damgaları bir kez
// yazılır, yalnızca IsValid=false ile kayıt emekliye ayrılır.
type CheckInRecord struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	RegistrationID uint       `json:"registration_id" gorm:"index;not null"`
	EventID        uint       `json:"event_id" gorm:"index;not null"`
	CheckInTime    *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime   *time.Time `json:"check_out_time,omitempty"`
	CheckInBy      string     `json:"check_in_by,omitempty"`
	CheckOutBy     string     `json:"check_out_by,omitempty"`
	QRCodeData     string     `json:"qr_code_data" gorm:"uniqueIndex;not null"`
	IsValid        bool       `json:"is_valid" gorm:"default:true"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ScanRequest kapıdaki personelin okuttuğu ham veri.
type ScanRequest struct {
	QRData string `json:"qr_data" validate:"required"`
	Staff  string `json:"staff" validate:"required,max=100"`
}

type CheckInStats struct {
	Total      int64 `json:"total"`
	CheckedIn  int64 `json:"checked_in"`
	CheckedOut int64 `json:"checked_out"`
	Present    int64 `json:"present"`
}
