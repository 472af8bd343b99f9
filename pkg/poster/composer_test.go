package poster

import (
	"bytes"
	"image"
	"image/color"
	"testing"
	"time"
)

func sampleEvent() EventInfo {
	return EventInfo{
		Title:    "Uluslararası Kardiyoloji Kongresi",
		Subtitle: "12. Bahar Sempozyumu",
		Tagline:  "Kalpten kalbe bilim",
		Date:     time.Date(2026, time.March, 14, 19, 30, 0, 0, time.Local),
		Location: "Haliç Kongre Merkezi",
		Address:  "Sütlüce, Beyoğlu / İstanbul",
	}
}

func TestComposeOutputMatchesPreset(t *testing.T) {
	c := NewComposer(nil)
	cases := []struct {
		size string
		w, h int
	}{
		{"square", 1080, 1080},
		{"portrait", 1080, 1350},
		{"story", 1080, 1920},
		{"wide", 1920, 1080},
	}
	for _, cs := range cases {
		img, err := c.Compose(Request{Template: TemplateModern, Size: cs.size, Event: sampleEvent(), Seed: 1})
		if err != nil {
			t.Fatalf("Compose(%s): %v", cs.size, err)
		}
		b := img.Bounds()
		if b.Dx() != cs.w || b.Dy() != cs.h {
			t.Fatalf("Compose(%s) = %dx%d, want %dx%d", cs.size, b.Dx(), b.Dy(), cs.w, cs.h)
		}
	}
}

func TestComposeAllTemplates(t *testing.T) {
	c := NewComposer(nil)
	for _, tmpl := range Templates() {
		img, err := c.Compose(Request{Template: tmpl, Size: "square", Event: sampleEvent(), Seed: 7})
		if err != nil {
			t.Fatalf("Compose(%s): %v", tmpl, err)
		}
		if img.Bounds().Dx() != 1080 {
			t.Fatalf("Compose(%s) boş çıktı", tmpl)
		}
	}
}

func TestComposeUnknownTemplateFallsBack(t *testing.T) {
	c := NewComposer(nil)
	img, err := c.Compose(Request{Template: "yok-boyle-sablon", Size: "square", Event: sampleEvent(), Seed: 3})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	ref, err := c.Compose(Request{Template: TemplateModern, Size: "square", Event: sampleEvent(), Seed: 3})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !sameImage(img, ref) {
		t.Fatal("tanınmayan şablon modern ile aynı çıktıyı vermeli")
	}
}

func TestComposeDeterministicWithSeed(t *testing.T) {
	c := NewComposer(nil)
	req := Request{Template: TemplateFestival, Size: "square", Event: sampleEvent(), Style: Style{ShowDecorations: true}, Seed: 42}

	a, err := c.Compose(req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	b, err := c.Compose(req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !sameImage(a, b) {
		t.Fatal("aynı tohumla iki üretim birebir aynı olmalı")
	}
}

func TestComposeCustomOverrides(t *testing.T) {
	c := NewComposer(nil)
	req := Request{
		Template:    TemplateMinimal,
		Size:        "square",
		Event:       sampleEvent(),
		CustomTitle: "Özel Başlık",
		Seed:        5,
	}
	withOverride, err := c.Compose(req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	req.CustomTitle = ""
	without, err := c.Compose(req)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if sameImage(withOverride, without) {
		t.Fatal("başlık override'ı çıktıyı değiştirmeli")
	}
}

func TestComposeWithBackgroundAndQR(t *testing.T) {
	c := NewComposer(nil)

	bg := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			bg.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	img, err := c.Compose(Request{
		Template:          TemplateElegant,
		Size:              "square",
		Event:             sampleEvent(),
		Background:        bg,
		BackgroundOpacity: 0.8,
		QRContent:         "https://davetix.app/e/abc12345",
		Seed:              9,
	})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if img.Bounds().Dx() != 1080 || img.Bounds().Dy() != 1080 {
		t.Fatalf("çıktı boyutu %v", img.Bounds())
	}
}

func TestComposeRejectsOversizedSurface(t *testing.T) {
	c := NewComposer(nil)
	_, err := c.Compose(Request{Template: TemplateModern, Size: "custom", Width: 10000, Height: 10000, Event: sampleEvent()})
	if err == nil {
		t.Fatal("aşırı büyük tuval reddedilmeliydi")
	}
}

func TestEncodePNG(t *testing.T) {
	c := NewComposer(nil)
	img, err := c.Compose(Request{Template: TemplateModern, Size: "square", Event: sampleEvent(), Seed: 1})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}

	data, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(data, []byte{0x89, 'P', 'N', 'G'}) {
		t.Fatalf("PNG imzası yok: % x", data[:8])
	}

	jpg, err := EncodeJPEG(img)
	if err != nil {
		t.Fatalf("EncodeJPEG: %v", err)
	}
	if !bytes.HasPrefix(jpg, []byte{0xFF, 0xD8}) {
		t.Fatalf("JPEG imzası yok: % x", jpg[:4])
	}
}

func TestComposePersonalized(t *testing.T) {
	c := NewComposer(nil)
	img, err := c.ComposePersonalized(sampleEvent(), "Gül Çelik", `{"registrationId":1,"eventId":2,"email":"a@b.co","fullName":"Gül Çelik","timestamp":1}`)
	if err != nil {
		t.Fatalf("ComposePersonalized: %v", err)
	}
	if img.Bounds().Dx() != 1080 || img.Bounds().Dy() != 1080 {
		t.Fatalf("kişisel davetiye kare olmalı: %v", img.Bounds())
	}
}

func sameImage(a, b image.Image) bool {
	ra, okA := a.(*image.RGBA)
	rb, okB := b.(*image.RGBA)
	if okA && okB {
		return ra.Bounds() == rb.Bounds() && bytes.Equal(ra.Pix, rb.Pix)
	}
	return false
}
