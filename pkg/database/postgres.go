package database

import (
	"log"
	"os"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	pkgBcrypt "github.com/bcilak/invitation-maker-magic-sub000/pkg/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase() *gorm.DB {
	// Doğrudan DATABASE_URL'i kullan
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

// RunMigrations şemayı günceller ve env'den ilk yönetici hesabını ekler.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Event{},
		&models.Registration{},
		&models.CheckInRecord{},
		&models.PageSection{},
		&models.EmailLog{},
	)
	if err != nil {
		return err
	}

	return seedAdmin(db)
}

// seedAdmin ADMIN_EMAIL/ADMIN_PASSWORD tanımlıysa ve hesap yoksa oluşturur.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.AdminUser{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := pkgBcrypt.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.AdminUser{
		FullName: "Yönetici",
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	return db.Create(&admin).Error
}
