package styles

import "testing"

func TestGradientCSS(t *testing.T) {
	s := Settings{PrimaryColor: "#111111", SecondaryColor: "#222222", Gradient: "linear"}
	got := GradientCSS(s)
	want := "linear-gradient(135deg, #111111 0%, #222222 100%)"
	if got != want {
		t.Fatalf("GradientCSS linear = %q, want %q", got, want)
	}

	if got := GradientCSS(Settings{Gradient: "vertical"}); got != "linear-gradient(180deg, #6d28d9 0%, #2563eb 100%)" {
		t.Fatalf("GradientCSS vertical defaults = %q", got)
	}
}

func TestGradientCSSUnknownIsTransparent(t *testing.T) {
	for _, g := range []string{"", "none", "spiral"} {
		if got := GradientCSS(Settings{Gradient: g}); got != "transparent" {
			t.Fatalf("GradientCSS(%q) = %q, want transparent", g, got)
		}
	}
}

func TestAnimationClass(t *testing.T) {
	cases := map[string]string{
		"fade":       "animate-fade-in",
		"slide-up":   "animate-slide-up",
		"slide-left": "animate-slide-left",
		"zoom":       "animate-zoom-in",
		"none":       "",
		"wiggle":     "",
		"":           "",
	}
	for in, want := range cases {
		if got := AnimationClass(Settings{Animation: in}); got != want {
			t.Fatalf("AnimationClass(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestInlineStyles(t *testing.T) {
	s := Settings{
		PaddingX:          24,
		PaddingY:          16,
		BorderRadius:      12,
		ShadowIntensity:   50,
		Animation:         "fade",
		AnimationDuration: 700,
		AnimationDelay:    100,
	}
	got := InlineStyles(s)

	if got["padding"] != "16px 24px" {
		t.Fatalf("padding = %q", got["padding"])
	}
	if got["borderRadius"] != "12px" {
		t.Fatalf("borderRadius = %q", got["borderRadius"])
	}
	if got["boxShadow"] != "0 6px 20px rgba(0,0,0,0.22)" {
		t.Fatalf("boxShadow = %q", got["boxShadow"])
	}
	if got["animationDuration"] != "700ms" {
		t.Fatalf("animationDuration = %q", got["animationDuration"])
	}
	if got["animationDelay"] != "100ms" {
		t.Fatalf("animationDelay = %q", got["animationDelay"])
	}
	if _, ok := got["background"]; ok {
		t.Fatal("gradient yokken background üretilmemeli")
	}
}

func TestInlineStylesDefaultsAndClamp(t *testing.T) {
	got := InlineStyles(Settings{Animation: "zoom"})
	if got["animationDuration"] != "500ms" {
		t.Fatalf("varsayılan süre = %q, want 500ms", got["animationDuration"])
	}

	clamped := InlineStyles(Settings{ShadowIntensity: 250})
	capped := InlineStyles(Settings{ShadowIntensity: 100})
	if clamped["boxShadow"] != capped["boxShadow"] {
		t.Fatalf("gölge 100'e kenetlenmeli: %q != %q", clamped["boxShadow"], capped["boxShadow"])
	}
}

func TestInlineStylesMergesCustomCSS(t *testing.T) {
	got := InlineStyles(Settings{CustomCSS: "margin-top: 8px; color: red"})
	if got["marginTop"] != "8px" {
		t.Fatalf("marginTop = %q", got["marginTop"])
	}
	if got["color"] != "red" {
		t.Fatalf("color = %q", got["color"])
	}
}

func TestParseCSSFragmentSkipsMalformed(t *testing.T) {
	got := ParseCSSFragment("opacity: 0.5; bozukparça; : boş; border-top-width: 2px;")
	if len(got) != 2 {
		t.Fatalf("beklenen 2 çift, gelen %d: %v", len(got), got)
	}
	if got["opacity"] != "0.5" || got["borderTopWidth"] != "2px" {
		t.Fatalf("ParseCSSFragment = %v", got)
	}
}

func TestClassNames(t *testing.T) {
	s := Settings{Animation: "fade", HoverEffects: true, CustomClass: "ozel"}
	if got := ClassNames(s); got != "animate-fade-in hover-lift ozel" {
		t.Fatalf("ClassNames = %q", got)
	}
	if got := ClassNames(Settings{}); got != "" {
		t.Fatalf("boş ayarlar sınıf üretmemeli, gelen %q", got)
	}
}
