package service

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/email"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/poster"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/ratelimit"
	"gorm.io/gorm"
)

type fakeEventLookup struct {
	event models.Event
}

func (f *fakeEventLookup) GetEvent(id uint) (*models.Event, error) {
	if id != f.event.ID {
		return nil, ErrNotFound
	}
	cp := f.event
	return &cp, nil
}

func (f *fakeEventLookup) GetEventByURL(url string) (*models.Event, error) {
	if url != f.event.URL {
		return nil, ErrNotFound
	}
	cp := f.event
	return &cp, nil
}

type fakeRegStore struct {
	nextID uint
	regs   map[uint]*models.Registration
}

func newFakeRegStore() *fakeRegStore {
	return &fakeRegStore{nextID: 1, regs: map[uint]*models.Registration{}}
}

func (f *fakeRegStore) Create(reg *models.Registration) (*models.Registration, error) {
	reg.ID = f.nextID
	reg.CreatedAt = time.Now()
	f.nextID++
	f.regs[reg.ID] = reg
	return reg, nil
}

func (f *fakeRegStore) GetByID(id uint) (*models.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *reg
	return &cp, nil
}

func (f *fakeRegStore) GetEventRegistrations(eventID uint) ([]models.Registration, error) {
	var out []models.Registration
	for _, r := range f.regs {
		if r.EventID == eventID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRegStore) EmailExists(eventID uint, email string) (bool, error) {
	for _, r := range f.regs {
		if r.EventID == eventID && r.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRegStore) Delete(id uint) error {
	delete(f.regs, id)
	return nil
}

// Onay e-postası ayrı goroutine'den gönderildiği için sahteler kilitli.
type fakeMailer struct {
	mu            sync.Mutex
	confirmations []string
	invitations   []email.InvitationData
}

func (f *fakeMailer) SendRegistrationConfirmation(to, fullName, eventTitle string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, to)
	return "msg-conf", nil
}

func (f *fakeMailer) SendInvitationEmail(to string, data email.InvitationData) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invitations = append(f.invitations, data)
	return "msg-inv", nil
}

func (f *fakeMailer) sentInvitations() []email.InvitationData {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]email.InvitationData, len(f.invitations))
	copy(out, f.invitations)
	return out
}

type fakeEmailLog struct {
	mu     sync.Mutex
	nextID uint
	logs   map[uint]*models.EmailLog
}

func newFakeEmailLog() *fakeEmailLog {
	return &fakeEmailLog{nextID: 1, logs: map[uint]*models.EmailLog{}}
}

func (f *fakeEmailLog) Create(log *models.EmailLog) (*models.EmailLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log.ID = f.nextID
	f.nextID++
	f.logs[log.ID] = log
	return log, nil
}

func (f *fakeEmailLog) UpdateStatus(id uint, status, messageID, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	log.Status = status
	log.MessageID = messageID
	log.Error = errMsg
	return nil
}

type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) Upload(key string, reader io.Reader, contentType string) (string, error) {
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example/" + key, nil
}

func (f *fakeUploader) Delete(key string) error { return nil }

func (f *fakeUploader) GetPublicURL(key string) string { return "https://cdn.example/" + key }

// Kayıttan kapı taramasına uzanan akışın tamamı veri deposu olmadan,
// sahte işbirlikçilerle çalıştırılır.
func TestRegistrationToScanFlow(t *testing.T) {
	events := &fakeEventLookup{event: models.Event{
		ID:          7,
		Title:       "Ulusal Nöroloji Kongresi",
		Date:        time.Date(2026, time.October, 3, 9, 0, 0, 0, time.Local),
		Location:    "Haliç Kongre Merkezi",
		URL:         "abc12345",
		IsPublished: true,
	}}
	regStore := newFakeRegStore()
	checkinStore := newFakeStore()
	mailer := &fakeMailer{}
	emailLog := newFakeEmailLog()
	uploader := &fakeUploader{}
	limiter := ratelimit.New(time.Minute, 10)

	regSvc := NewRegistrationService(regStore, events, mailer, emailLog, limiter, nil)
	checkinSvc := NewCheckInService(checkinStore, nil)
	invSvc := NewInvitationService(
		poster.NewComposer(nil), events, regSvc, checkinSvc,
		uploader, mailer, emailLog, "https://davetix.app/e/", nil,
	)

	form := models.RegistrationRequest{
		FullName:    "Gül Çelik",
		Email:       "gul@example.com",
		Phone:       "0555 123 45 67",
		Institution: "Şehir Hastanesi",
		Position:    "Uzman Doktor",
	}

	// Kayıt
	reg, err := regSvc.Register("abc12345", form, "10.0.0.1")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if reg.Phone != "05551234567" {
		t.Fatalf("telefon normalize edilmedi: %q", reg.Phone)
	}

	// Aynı e-posta ikinci kez reddedilir
	if _, err := regSvc.Register("abc12345", form, "10.0.0.2"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("mükerrer kayıt = %v, want ErrDuplicateEmail", err)
	}

	// Kişisel davetiye: kayıt oluşturulur, afiş yüklenir, e-posta gider
	result, err := invSvc.Personalized(reg.ID)
	if err != nil {
		t.Fatalf("Personalized: %v", err)
	}
	if result.PosterURL == "" || result.EmailStatus != models.EmailStatusSent {
		t.Fatalf("davetiye sonucu eksik: %+v", result)
	}
	if sent := mailer.sentInvitations(); len(sent) != 1 || sent[0].PosterURL != result.PosterURL {
		t.Fatalf("davetiye e-postası gönderilmedi: %+v", sent)
	}

	rec, err := checkinStore.GetValidByRegistration(reg.ID)
	if err != nil {
		t.Fatalf("check-in kaydı oluşmadı: %v", err)
	}
	if rec.CheckInTime != nil || rec.CheckOutTime != nil || !rec.IsValid {
		t.Fatalf("taze kayıt temiz olmalı: %+v", rec)
	}

	// Kapıda giriş
	scanned, err := checkinSvc.CheckIn(rec.QRCodeData, 7, "kapı-1")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if scanned.CheckInTime == nil {
		t.Fatal("giriş zamanı yazılmadı")
	}

	// İkinci tarama reddedilir
	if _, err := checkinSvc.CheckIn(rec.QRCodeData, 7, "kapı-1"); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("ikinci giriş = %v, want ErrAlreadyCheckedIn", err)
	}

	// Çıkış
	out, err := checkinSvc.CheckOut(rec.QRCodeData, 7, "kapı-1")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if out.CheckOutTime == nil {
		t.Fatal("çıkış zamanı yazılmadı")
	}
}

func TestRegisterHonorsRateLimit(t *testing.T) {
	events := &fakeEventLookup{event: models.Event{ID: 7, Title: "Etkinlik", URL: "abc12345", IsPublished: true}}
	limiter := ratelimit.New(time.Minute, 2)
	regSvc := NewRegistrationService(newFakeRegStore(), events, &fakeMailer{}, newFakeEmailLog(), limiter, nil)

	form := models.RegistrationRequest{
		FullName:    "Ali Veli",
		Email:       "ali@example.com",
		Phone:       "5551234567",
		Institution: "Kurum",
		Position:    "Görev",
	}

	for i := 0; i < 2; i++ {
		form.Email = string(rune('a'+i)) + "@example.com"
		if _, err := regSvc.Register("abc12345", form, "10.0.0.9"); err != nil {
			t.Fatalf("deneme %d: %v", i+1, err)
		}
	}
	form.Email = "c@example.com"
	if _, err := regSvc.Register("abc12345", form, "10.0.0.9"); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("üçüncü deneme = %v, want ErrRateLimited", err)
	}
}

func TestRegisterUnpublishedEventHidden(t *testing.T) {
	events := &fakeEventLookup{event: models.Event{ID: 7, Title: "Taslak", URL: "abc12345", IsPublished: false}}
	regSvc := NewRegistrationService(newFakeRegStore(), events, &fakeMailer{}, newFakeEmailLog(), ratelimit.New(time.Minute, 10), nil)

	form := models.RegistrationRequest{
		FullName: "Ali Veli", Email: "ali@example.com", Phone: "5551234567",
		Institution: "Kurum", Position: "Görev",
	}
	if _, err := regSvc.Register("abc12345", form, "10.0.0.1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("yayınlanmamış etkinlik = %v, want ErrNotFound", err)
	}
}
