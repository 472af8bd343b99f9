package poster

import (
	"math/rand"

	"github.com/fogleman/gg"
)

// Template kapalı bir görsel şablon kümesini adlandırır. Her ada tam bir
// çizim prosedürü karşılık gelir; tanınmayan ad modern'e düşer.
type Template string

const (
	TemplateModern    Template = "modern"
	TemplateElegant   Template = "elegant"
	TemplateMinimal   Template = "minimal"
	TemplateColorful  Template = "colorful"
	TemplateCorporate Template = "corporate"
	TemplateFestival  Template = "festival"
	TemplateMedical   Template = "medical"
	TemplateTech      Template = "tech"
)

// TextFields şablonlara giden çözümlenmiş metin alanları. Composer boş
// override'ları etkinlik alanlarıyla doldurduğu için burada hepsi nihaidir.
type TextFields struct {
	Title          string
	Subtitle       string
	Tagline        string
	DateLine       string
	TimeLine       string
	Location       string
	LocationDetail string
	Footer         string
}

// Style şablonların renk/font/dekor ayarları. Sıfır değerler çizimden önce
// withDefaults ile doldurulur; eksik alan hiçbir zaman render'ı düşürmez.
type Style struct {
	PrimaryColor    string  `json:"primary_color"`
	SecondaryColor  string  `json:"secondary_color"`
	AccentColor     string  `json:"accent_color"`
	TextColor       string  `json:"text_color"`
	FontScale       float64 `json:"font_scale"`
	ShowDecorations bool    `json:"show_decorations"`
	ShowEmojis      bool    `json:"show_emojis"`

	// Composer bir arka plan görseli yerleştirdiyse true; şablonlar kendi
	// zeminlerini basmak yerine okunurluk karartmasıyla yetinir.
	hasBackdrop bool
}

// WithBackdrop arka plan görseli hazırlanmış stil kopyası döner.
func (s Style) WithBackdrop() Style {
	s.hasBackdrop = true
	return s
}

func (s Style) withDefaults() Style {
	if s.PrimaryColor == "" {
		s.PrimaryColor = "#6d28d9"
	}
	if s.SecondaryColor == "" {
		s.SecondaryColor = "#2563eb"
	}
	if s.AccentColor == "" {
		s.AccentColor = "#f59e0b"
	}
	if s.TextColor == "" {
		s.TextColor = "#ffffff"
	}
	if s.FontScale <= 0 {
		s.FontScale = 1
	}
	return s
}

type drawFunc func(dc *gg.Context, size CanvasSize, scale float64, text TextFields, style Style, rng *rand.Rand)

var templates = map[Template]drawFunc{
	TemplateModern:    drawModern,
	TemplateElegant:   drawElegant,
	TemplateMinimal:   drawMinimal,
	TemplateColorful:  drawColorful,
	TemplateCorporate: drawCorporate,
	TemplateFestival:  drawFestival,
	TemplateMedical:   drawMedical,
	TemplateTech:      drawTech,
}

// Templates desteklenen şablon adlarını sabit sırada döner.
func Templates() []Template {
	return []Template{
		TemplateModern, TemplateElegant, TemplateMinimal, TemplateColorful,
		TemplateCorporate, TemplateFestival, TemplateMedical, TemplateTech,
	}
}

// Draw seçilen şablonun prosedürünü çağırır.
func Draw(tmpl Template, dc *gg.Context, size CanvasSize, text TextFields, style Style, rng *rand.Rand) {
	fn, ok := templates[tmpl]
	if !ok {
		fn = drawModern
	}
	fn(dc, size, size.Scale(), text, style.withDefaults(), rng)
}

// fillBase şablonun zemin dolgusunu basar. Arka plan görseli varsa dolgu
// yerine yarı saydam karartma çizilir ki görsel arkada kalsın ama metin
// okunur olsun.
func fillBase(dc *gg.Context, w, h float64, style Style, fill func()) {
	if style.hasBackdrop {
		dc.SetColor(HexToRGBA("#000000", 0.45))
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
		return
	}
	fill()
}

// withEmoji etkinse satırın başına piktograf ekler; salt string birleştirme,
// yerleşimi genişlik dışında etkilemez.
func withEmoji(enabled bool, emoji, line string) string {
	if line == "" {
		return ""
	}
	if enabled {
		return emoji + " " + line
	}
	return line
}
