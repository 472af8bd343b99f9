package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultWindow = time.Minute
	DefaultMax    = 3
)

// Limiter eylem başına kayan pencereli deneme sayacı. Anahtar, eylem türünü
// ve özneyi birlikte taşır (örn. "registration:1.2.3.4"); pencereler
// birbirinden bağımsızdır.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time

	// Testlerde zamanı oynatabilmek için
	now func() time.Time
}

func New(window time.Duration, max int) *Limiter {
	if window <= 0 {
		window = DefaultWindow
	}
	if max <= 0 {
		max = DefaultMax
	}
	return &Limiter{
		window: window,
		max:    max,
		hits:   map[string][]time.Time{},
		now:    time.Now,
	}
}

// Allow pencereyi budar, sayar ve sınır altındaysa bu denemeyi kaydedip
// true döner. Sınıra ulaşılmışsa deneme kaydedilmez; en eski kayıt
// pencereden düşene kadar false dönmeye devam eder.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.prune(key, now)
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	l.hits[key] = append(kept, now)
	return true
}

// RetryAfter en eski kaydın pencereden düşmesine kalan süre; pencere dolu
// değilse sıfır döner.
func (l *Limiter) RetryAfter(key string) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	kept := l.prune(key, now)
	l.hits[key] = kept
	if len(kept) < l.max {
		return 0
	}
	return kept[0].Add(l.window).Sub(now)
}

func (l *Limiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	var kept []time.Time
	for _, t := range l.hits[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if kept == nil {
		delete(l.hits, key)
	}
	return kept
}

// SetNow test kancası.
func (l *Limiter) SetNow(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}
