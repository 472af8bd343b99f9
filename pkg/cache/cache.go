package cache

import (
	"sync"
	"time"
)

// Store uygulamaya enjekte edilen anahtar-değer önbelleği. Veri deposu
// erişilemediğinde okuma yolları buradan beslenir; çekirdek yalnızca bu
// arayüze bağımlıdır, ortama göre farklı bir uygulama takılabilir.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Memory süreç içi Store uygulaması.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
}

func NewMemory() *Memory {
	return &Memory{entries: map[string]entry{}}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.Delete(key)
		return nil, false
	}
	return e.value, true
}

// Set ttl sıfır ise süresiz saklar.
func (m *Memory) Set(key string, value []byte, ttl time.Duration) {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
}
