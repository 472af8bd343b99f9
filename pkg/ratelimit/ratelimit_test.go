package ratelimit

import (
	"testing"
	"time"
)

func TestAllowExactlyMaxInWindow(t *testing.T) {
	l := New(time.Minute, 3)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	l.SetNow(func() time.Time { return now })

	for i := 0; i < 3; i++ {
		if !l.Allow("registration:1.2.3.4") {
			t.Fatalf("deneme %d pencere içinde kabul edilmeliydi", i+1)
		}
	}
	if l.Allow("registration:1.2.3.4") {
		t.Fatal("dördüncü deneme reddedilmeliydi")
	}
}

func TestRejectedAttemptIsNotRecorded(t *testing.T) {
	l := New(time.Minute, 2)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	l.SetNow(func() time.Time { return now })

	l.Allow("k")
	l.Allow("k")
	// Reddedilen denemeler pencereyi uzatmamalı
	for i := 0; i < 10; i++ {
		if l.Allow("k") {
			t.Fatal("pencere doluyken kabul edildi")
		}
	}

	// İlk kayıt düştüğü anda tekrar yer açılır
	now = now.Add(time.Minute + time.Second)
	if !l.Allow("k") {
		t.Fatal("pencere boşaldıktan sonra kabul edilmeliydi")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(time.Minute, 1)
	now := time.Now()
	l.SetNow(func() time.Time { return now })

	if !l.Allow("registration:a") {
		t.Fatal("ilk anahtar kabul edilmeliydi")
	}
	if !l.Allow("login:a") {
		t.Fatal("farklı eylem anahtarı bağımsız sayılmalı")
	}
	if l.Allow("registration:a") {
		t.Fatal("aynı anahtar sınırı aşmamalı")
	}
}

func TestRetryAfter(t *testing.T) {
	l := New(time.Minute, 1)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	l.SetNow(func() time.Time { return now })

	if d := l.RetryAfter("k"); d != 0 {
		t.Fatalf("boş pencere için RetryAfter = %v, want 0", d)
	}

	l.Allow("k")
	now = now.Add(20 * time.Second)
	if d := l.RetryAfter("k"); d != 40*time.Second {
		t.Fatalf("RetryAfter = %v, want 40s", d)
	}
}

func TestDefaultsApplied(t *testing.T) {
	l := New(0, 0)
	if l.window != DefaultWindow || l.max != DefaultMax {
		t.Fatalf("varsayılanlar uygulanmadı: window=%v max=%d", l.window, l.max)
	}
}
