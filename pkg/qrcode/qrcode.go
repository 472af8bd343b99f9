package qrcode

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/skip2/go-qrcode"
)

// ErrInvalidPayload okutulan veri çözümlenemediğinde döner; çağıran taraf
// bunu taramanın reddi olarak ele alır, asla panic'e çevirmez.
var ErrInvalidPayload = errors.New("qrcode: geçersiz payload")

// Payload check-in kimliği. Serileştirilmiş hali kaydın arama anahtarı
// olarak aynen saklanır; timestamp kimliğin parçasıdır, iki farklı anda
// üretilen payload'lar ayrı kayıtlardır.
type Payload struct {
	RegistrationID uint   `json:"registrationId"`
	EventID        uint   `json:"eventId"`
	Email          string `json:"email"`
	FullName       string `json:"fullName"`
	Timestamp      int64  `json:"timestamp"`
}

// NewPayload şimdiki zamana damgalı payload oluşturur.
func NewPayload(registrationID, eventID uint, email, fullName string) Payload {
	return Payload{
		RegistrationID: registrationID,
		EventID:        eventID,
		Email:          email,
		FullName:       fullName,
		Timestamp:      time.Now().UnixMilli(),
	}
}

// EncodePayload payload'ı kanonik JSON string'e çevirir. Sürüm alanı yok;
// saklanan anahtar birebir bu çıktıdır.
func EncodePayload(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("payload kodlanamadı: %w", err)
	}
	return string(b), nil
}

// DecodePayload okutulan string'i çözer. Bozuk JSON veya eksik kimlik
// alanları ErrInvalidPayload olarak döner.
func DecodePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if p.RegistrationID == 0 || p.EventID == 0 {
		return Payload{}, fmt.Errorf("%w: kimlik alanları eksik", ErrInvalidPayload)
	}
	return p, nil
}

// QRService, QR kod oluşturma işlemlerini sağlayan servis
type QRService struct {
	baseURL string // Temel URL (örn: "https://davetix.app/e/")
}

// NewQRService, yeni bir QRService oluşturur
func NewQRService(baseURL string) *QRService {
	return &QRService{
		baseURL: baseURL,
	}
}

// GenerateEventQR, verilen etkinlik URL kodu için PNG formatında QR kod bayt dizisi oluşturur
func (s *QRService) GenerateEventQR(eventURLCode string, size int) ([]byte, error) {
	// Tam URL'i oluştur
	fullURL := fmt.Sprintf("%s%s", s.baseURL, eventURLCode)

	png, err := qrcode.Encode(fullURL, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}

	return png, nil
}

// GeneratePNG serbest içerik için PNG formatında QR üretir.
func GeneratePNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code PNG: %w", err)
	}
	return png, nil
}

// GenerateImage bindirme için ham bitmap döner.
func GenerateImage(content string, size int) (image.Image, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qr.Image(size), nil
}
