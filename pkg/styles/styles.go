package styles

import (
	"fmt"
	"strings"
)

// Settings bir sayfa bölümünün stil/animasyon/içerik ayar paketi. Tüm
// alanlar opsiyoneldir; türetme fonksiyonları totaldir, eksik veya
// tanınmayan değer hiçbir zaman hata üretmez.
type Settings struct {
	PrimaryColor      string `json:"primary_color"`
	SecondaryColor    string `json:"secondary_color"`
	AccentColor       string `json:"accent_color"`
	Gradient          string `json:"gradient"`
	PaddingX          int    `json:"padding_x"`
	PaddingY          int    `json:"padding_y"`
	BorderRadius      int    `json:"border_radius"`
	ShadowIntensity   int    `json:"shadow_intensity"`
	Animation         string `json:"animation"`
	AnimationDuration int    `json:"animation_duration"`
	AnimationDelay    int    `json:"animation_delay"`
	HoverEffects      bool   `json:"hover_effects"`
	CustomCSS         string `json:"custom_css"`
	CustomClass       string `json:"custom_class"`
}

// Varsayılanlar: alan hiç gelmediğinde render'ın düşmemesini garanti eder.
const (
	defaultPrimary   = "#6d28d9"
	defaultSecondary = "#2563eb"
	defaultDuration  = 500
)

// GradientCSS gradient enum'unu CSS background değerine çevirir.
// Tanınmayan anahtar ve "none" saydam döner.
func GradientCSS(s Settings) string {
	p := s.PrimaryColor
	if p == "" {
		p = defaultPrimary
	}
	sec := s.SecondaryColor
	if sec == "" {
		sec = defaultSecondary
	}

	switch s.Gradient {
	case "linear":
		return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", p, sec)
	case "radial":
		return fmt.Sprintf("radial-gradient(circle, %s 0%%, %s 100%%)", p, sec)
	case "diagonal":
		return fmt.Sprintf("linear-gradient(45deg, %s 0%%, %s 100%%)", p, sec)
	case "vertical":
		return fmt.Sprintf("linear-gradient(180deg, %s 0%%, %s 100%%)", p, sec)
	default:
		return "transparent"
	}
}

// AnimationClass giriş animasyonu için sınıf adı üretir; "none" ve
// tanınmayan değerler boş string'e düşer.
func AnimationClass(s Settings) string {
	switch s.Animation {
	case "fade":
		return "animate-fade-in"
	case "slide-up":
		return "animate-slide-up"
	case "slide-left":
		return "animate-slide-left"
	case "zoom":
		return "animate-zoom-in"
	default:
		return ""
	}
}

// InlineStyles sayısal alanları stil özelliklerine çevirir ve CustomCSS
// parçasını üzerine birleştirir. Gölge 0'da yok, 100'de tanımlı azami
// bulanıklık/ofset; arada doğrusal.
func InlineStyles(s Settings) map[string]string {
	out := map[string]string{}

	if s.PaddingX > 0 || s.PaddingY > 0 {
		out["padding"] = fmt.Sprintf("%dpx %dpx", s.PaddingY, s.PaddingX)
	}
	if s.BorderRadius > 0 {
		out["borderRadius"] = fmt.Sprintf("%dpx", s.BorderRadius)
	}
	if s.ShadowIntensity > 0 {
		i := s.ShadowIntensity
		if i > 100 {
			i = 100
		}
		blur := 40 * i / 100
		offset := 12 * i / 100
		out["boxShadow"] = fmt.Sprintf("0 %dpx %dpx rgba(0,0,0,0.%02d)", offset, blur, 10+i/4)
	}
	if bg := GradientCSS(s); bg != "transparent" {
		out["background"] = bg
	}
	if s.Animation != "" && AnimationClass(s) != "" {
		dur := s.AnimationDuration
		if dur <= 0 {
			dur = defaultDuration
		}
		out["animationDuration"] = fmt.Sprintf("%dms", dur)
		if s.AnimationDelay > 0 {
			out["animationDelay"] = fmt.Sprintf("%dms", s.AnimationDelay)
		}
	}

	for k, v := range ParseCSSFragment(s.CustomCSS) {
		out[k] = v
	}
	return out
}

// ClassNames animasyon sınıfı ile serbest CustomClass'ı birleştirir.
func ClassNames(s Settings) string {
	parts := []string{}
	if c := AnimationClass(s); c != "" {
		parts = append(parts, c)
	}
	if s.HoverEffects {
		parts = append(parts, "hover-lift")
	}
	if s.CustomClass != "" {
		parts = append(parts, strings.TrimSpace(s.CustomClass))
	}
	return strings.Join(parts, " ")
}

// ParseCSSFragment "key: value; key2: value2" biçimindeki serbest parçayı
// çözer. Anahtarlar tireli halden camelCase'e çevrilir; iki nokta içermeyen
// bozuk çiftler sessizce atlanır.
func ParseCSSFragment(raw string) map[string]string {
	out := map[string]string{}
	for _, pair := range strings.Split(raw, ";") {
		idx := strings.Index(pair, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(pair[:idx])
		val := strings.TrimSpace(pair[idx+1:])
		if key == "" || val == "" {
			continue
		}
		out[hyphenToCamel(key)] = val
	}
	return out
}

func hyphenToCamel(key string) string {
	parts := strings.Split(key, "-")
	var sb strings.Builder
	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			sb.WriteString(p)
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(p[1:])
	}
	return sb.String()
}
