package poster

import "testing"

func TestResolveSizePresets(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"square", 1080, 1080},
		{"portrait", 1080, 1350},
		{"story", 1080, 1920},
		{"wide", 1920, 1080},
		{"a4", 2480, 3508},
	}
	for _, c := range cases {
		got := ResolveSize(c.name, 0, 0)
		if got.Width != c.w || got.Height != c.h {
			t.Fatalf("ResolveSize(%q) = %dx%d, want %dx%d", c.name, got.Width, got.Height, c.w, c.h)
		}
	}
}

func TestResolveSizeCustom(t *testing.T) {
	got := ResolveSize("custom", 800, 600)
	if got.Width != 800 || got.Height != 600 {
		t.Fatalf("custom = %dx%d", got.Width, got.Height)
	}

	// Geçersiz özel boyut kareye düşer
	for _, c := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		got := ResolveSize("custom", c[0], c[1])
		if got.Name != "square" {
			t.Fatalf("geçersiz özel boyut %v square'e düşmeli, gelen %q", c, got.Name)
		}
	}
}

func TestResolveSizeUnknownFallsBack(t *testing.T) {
	got := ResolveSize("poster-dev", 0, 0)
	if got.Name != "square" || got.Width != 1080 {
		t.Fatalf("tanınmayan ad square'e düşmeli, gelen %+v", got)
	}
}

func TestScaleProportionalToWidth(t *testing.T) {
	if s := ResolveSize("square", 0, 0).Scale(); s != 1 {
		t.Fatalf("square ölçeği %v, want 1", s)
	}
	if s := ResolveSize("a4", 0, 0).Scale(); s <= 2.29 || s >= 2.30 {
		t.Fatalf("a4 ölçeği %v, want ~2.296", s)
	}
	wide := ResolveSize("wide", 0, 0).Scale()
	if wide != 1920.0/1080.0 {
		t.Fatalf("wide ölçeği %v", wide)
	}
}
