package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestMemorySetGet(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("değer"), 0)

	got, ok := m.Get("k")
	if !ok || !bytes.Equal(got, []byte("değer")) {
		t.Fatalf("Get = %q, %v", got, ok)
	}
}

func TestMemoryMiss(t *testing.T) {
	m := NewMemory()
	if _, ok := m.Get("yok"); ok {
		t.Fatal("olmayan anahtar bulundu")
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), 10*time.Millisecond)

	if _, ok := m.Get("k"); !ok {
		t.Fatal("süre dolmadan kayıt kaybolmamalı")
	}

	time.Sleep(20 * time.Millisecond)
	if _, ok := m.Get("k"); ok {
		t.Fatal("süresi dolan kayıt dönmemeli")
	}
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("v"), 0)
	m.Delete("k")
	if _, ok := m.Get("k"); ok {
		t.Fatal("silinen kayıt dönmemeli")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	m.Set("k", []byte("eski"), 0)
	m.Set("k", []byte("yeni"), 0)
	got, _ := m.Get("k")
	if !bytes.Equal(got, []byte("yeni")) {
		t.Fatalf("Get = %q, want yeni", got)
	}
}
