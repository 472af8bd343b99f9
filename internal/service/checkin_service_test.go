package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bcilak/invitation-maker-magic-sub000/internal/models"
	"github.com/bcilak/invitation-maker-magic-sub000/pkg/qrcode"
	"gorm.io/gorm"
)

// fakeCheckInStore koşullu güncelleme semantiğini bellek içinde taklit eder.
type fakeCheckInStore struct {
	nextID  uint
	records map[string]*models.CheckInRecord
}

func newFakeStore() *fakeCheckInStore {
	return &fakeCheckInStore{nextID: 1, records: map[string]*models.CheckInRecord{}}
}

func (f *fakeCheckInStore) Create(rec *models.CheckInRecord) (*models.CheckInRecord, error) {
	rec.ID = f.nextID
	f.nextID++
	f.records[rec.QRCodeData] = rec
	return rec, nil
}

func (f *fakeCheckInStore) GetByPayload(qrData string) (*models.CheckInRecord, error) {
	rec, ok := f.records[qrData]
	if !ok || !rec.IsValid {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *rec
	return &cp, nil
}

func (f *fakeCheckInStore) GetValidByRegistration(registrationID uint) (*models.CheckInRecord, error) {
	for _, rec := range f.records {
		if rec.RegistrationID == registrationID && rec.IsValid {
			cp := *rec
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCheckInStore) MarkCheckedIn(qrData, staff string, now time.Time) (int64, error) {
	rec, ok := f.records[qrData]
	if !ok || !rec.IsValid || rec.CheckInTime != nil {
		return 0, nil
	}
	rec.CheckInTime = &now
	rec.CheckInBy = staff
	return 1, nil
}

func (f *fakeCheckInStore) MarkCheckedOut(qrData, staff string, now time.Time) (int64, error) {
	rec, ok := f.records[qrData]
	if !ok || !rec.IsValid || rec.CheckInTime == nil || rec.CheckOutTime != nil {
		return 0, nil
	}
	rec.CheckOutTime = &now
	rec.CheckOutBy = staff
	return 1, nil
}

func (f *fakeCheckInStore) Invalidate(id uint) error {
	for _, rec := range f.records {
		if rec.ID == id {
			rec.IsValid = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeCheckInStore) GetEventRecords(eventID uint) ([]models.CheckInRecord, error) {
	var out []models.CheckInRecord
	for _, rec := range f.records {
		if rec.EventID == eventID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeCheckInStore) Stats(eventID uint) (*models.CheckInStats, error) {
	stats := &models.CheckInStats{}
	for _, rec := range f.records {
		if rec.EventID != eventID || !rec.IsValid {
			continue
		}
		stats.Total++
		if rec.CheckInTime != nil {
			stats.CheckedIn++
		}
		if rec.CheckOutTime != nil {
			stats.CheckedOut++
		}
	}
	stats.Present = stats.CheckedIn - stats.CheckedOut
	return stats, nil
}

func newTestService(t *testing.T) (*CheckInService, *fakeCheckInStore, string) {
	t.Helper()
	store := newFakeStore()
	svc := NewCheckInService(store, nil)

	reg := &models.Registration{ID: 42, EventID: 7, Email: "gul@example.com", FullName: "Gül Çelik"}
	_, payload, err := svc.EnsureRecord(reg)
	if err != nil {
		t.Fatalf("EnsureRecord: %v", err)
	}
	return svc, store, payload
}

func TestEnsureRecordIsIdempotentPerRegistration(t *testing.T) {
	svc, store, payload := newTestService(t)

	reg := &models.Registration{ID: 42, EventID: 7, Email: "gul@example.com", FullName: "Gül Çelik"}
	_, second, err := svc.EnsureRecord(reg)
	if err != nil {
		t.Fatalf("EnsureRecord tekrar: %v", err)
	}
	if second != payload {
		t.Fatal("aynı kayıt için ikinci çağrı yeni anahtar üretmemeli")
	}
	if len(store.records) != 1 {
		t.Fatalf("kayıt sayısı %d, want 1", len(store.records))
	}
}

func TestCheckInHappyPathThenDuplicate(t *testing.T) {
	svc, _, payload := newTestService(t)

	rec, err := svc.CheckIn(payload, 7, "kapı-1")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if rec.CheckInTime == nil || rec.CheckInBy != "kapı-1" {
		t.Fatalf("giriş işlenmedi: %+v", rec)
	}

	if _, err := svc.CheckIn(payload, 7, "kapı-2"); !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("ikinci giriş = %v, want ErrAlreadyCheckedIn", err)
	}
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	svc, _, payload := newTestService(t)

	if _, err := svc.CheckOut(payload, 7, "kapı-1"); !errors.Is(err, ErrNotCheckedIn) {
		t.Fatalf("girişsiz çıkış = %v, want ErrNotCheckedIn", err)
	}

	if _, err := svc.CheckIn(payload, 7, "kapı-1"); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	rec, err := svc.CheckOut(payload, 7, "kapı-1")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if rec.CheckOutTime == nil {
		t.Fatal("çıkış zamanı yazılmadı")
	}

	if _, err := svc.CheckOut(payload, 7, "kapı-1"); !errors.Is(err, ErrAlreadyCheckedOut) {
		t.Fatalf("ikinci çıkış = %v, want ErrAlreadyCheckedOut", err)
	}
}

func TestCrossEventRejectedBeforeLookup(t *testing.T) {
	svc, store, payload := newTestService(t)

	recordCount := len(store.records)
	if _, err := svc.CheckIn(payload, 99, "kapı-1"); !errors.Is(err, ErrCrossEvent) {
		t.Fatalf("yanlış etkinlik = %v, want ErrCrossEvent", err)
	}
	if len(store.records) != recordCount {
		t.Fatal("reddedilen tarama veri deposuna dokunmamalı")
	}
	// Kayıt hâlâ temiz, doğru etkinlikte giriş yapabilmeli
	if _, err := svc.CheckIn(payload, 7, "kapı-1"); err != nil {
		t.Fatalf("doğru etkinlikte giriş: %v", err)
	}
}

func TestMalformedPayloadRejected(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, raw := range []string{"", "çöp veri", "{"} {
		if _, err := svc.CheckIn(raw, 7, "kapı-1"); !errors.Is(err, qrcode.ErrInvalidPayload) {
			t.Fatalf("CheckIn(%q) = %v, want ErrInvalidPayload", raw, err)
		}
	}
}

func TestUnknownPayloadIsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	unknown, err := qrcode.EncodePayload(qrcode.NewPayload(1000, 7, "x@y.co", "Bilinmeyen"))
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	if _, err := svc.CheckIn(unknown, 7, "kapı-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("bilinmeyen kod = %v, want ErrNotFound", err)
	}
}

func TestInvalidatedRecordCannotScan(t *testing.T) {
	svc, store, payload := newTestService(t)

	rec := store.records[payload]
	if err := svc.Invalidate(rec.ID); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	if _, err := svc.CheckIn(payload, 7, "kapı-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("iptal edilen kod = %v, want ErrNotFound", err)
	}
}

func TestStatsReduction(t *testing.T) {
	store := newFakeStore()
	svc := NewCheckInService(store, nil)

	var payloads []string
	for i := uint(1); i <= 4; i++ {
		reg := &models.Registration{ID: i, EventID: 7, Email: "k@e.co", FullName: "Katılımcı"}
		_, p, err := svc.EnsureRecord(reg)
		if err != nil {
			t.Fatalf("EnsureRecord: %v", err)
		}
		payloads = append(payloads, p)
	}

	// 3 giriş, 1 çıkış
	for _, p := range payloads[:3] {
		if _, err := svc.CheckIn(p, 7, "kapı-1"); err != nil {
			t.Fatalf("CheckIn: %v", err)
		}
	}
	if _, err := svc.CheckOut(payloads[0], 7, "kapı-1"); err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	stats, err := svc.Stats(7)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 4 || stats.CheckedIn != 3 || stats.CheckedOut != 1 || stats.Present != 2 {
		t.Fatalf("Stats = %+v", stats)
	}
}
