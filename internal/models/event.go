package models

import (
	"time"
)

type Event struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"not null"`
	Subtitle       string    `json:"subtitle"`
	Tagline        string    `json:"tagline"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`       // Etkinlik lokasyonu
	LocationDetail string    `json:"location_detail"` // Salon / kat bilgisi
	Address        string    `json:"address"`
	URL            string    `json:"url" gorm:"unique;not null"`
	IsPublished    bool      `json:"is_published" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title          string    `json:"title" validate:"required,min=2,max=200"`
	Subtitle       string    `json:"subtitle" validate:"max=200"`
	Tagline        string    `json:"tagline" validate:"max=300"`
	Date           time.Time `json:"date" validate:"required"`
	Location       string    `json:"location" validate:"required,max=200"`
	LocationDetail string    `json:"location_detail" validate:"max=200"`
	Address        string    `json:"address" validate:"max=300"`
	IsPublished    bool      `json:"is_published"`
}

type UpdateEventRequest struct {
	Title          *string    `json:"title"`
	Subtitle       *string    `json:"subtitle"`
	Tagline        *string    `json:"tagline"`
	Date           *time.Time `json:"date"`
	Location       *string    `json:"location"`
	LocationDetail *string    `json:"location_detail"`
	Address        *string    `json:"address"`
	IsPublished    *bool      `json:"is_published"`
}
