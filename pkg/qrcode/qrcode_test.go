package qrcode

import (
	"errors"
	"strings"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	p := NewPayload(42, 7, "gul.celik@example.com", "Gül Çelik Öztürk")

	raw, err := EncodePayload(p)
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}

	got, err := DecodePayload(raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if got != p {
		t.Fatalf("round-trip bozuk: %+v != %+v", got, p)
	}
	if got.FullName != "Gül Çelik Öztürk" {
		t.Fatalf("Türkçe karakterler korunmadı: %q", got.FullName)
	}
}

func TestEncodeUsesCamelCaseKeys(t *testing.T) {
	raw, err := EncodePayload(NewPayload(1, 2, "a@b.co", "Ad"))
	if err != nil {
		t.Fatalf("EncodePayload: %v", err)
	}
	for _, key := range []string{`"registrationId"`, `"eventId"`, `"email"`, `"fullName"`, `"timestamp"`} {
		if !strings.Contains(raw, key) {
			t.Fatalf("çıktıda %s anahtarı yok: %s", key, raw)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []string{
		"",
		"bu json değil",
		"{",
		`{"registrationId":0,"eventId":5}`,
		`{"registrationId":5,"eventId":0}`,
		`[1,2,3]`,
	}
	for _, raw := range cases {
		if _, err := DecodePayload(raw); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("DecodePayload(%q) = %v, want ErrInvalidPayload", raw, err)
		}
	}
}

func TestGeneratePNG(t *testing.T) {
	png, err := GeneratePNG("https://davetix.app/e/abc12345", 256)
	if err != nil {
		t.Fatalf("GeneratePNG: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("boş PNG çıktısı")
	}
	// PNG imzası
	if string(png[1:4]) != "PNG" {
		t.Fatalf("PNG imzası yok: % x", png[:8])
	}
}

func TestGenerateImageSize(t *testing.T) {
	img, err := GenerateImage("payload", 200)
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("bitmap boyutu %dx%d, want 200x200", b.Dx(), b.Dy())
	}
}
