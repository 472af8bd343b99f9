package poster

// Tüm şablonlar 1080 birimlik mantıksal düzlemde çizer; gerçek çıktı
// genişliğine oran uygulanarak her koordinat ve font ölçeklenir.
const BaseWidth = 1080.0

type CanvasSize struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Sosyal medya oranlarına karşılık gelen sabit boyutlar.
var sizePresets = []CanvasSize{
	{Name: "square", Label: "Instagram Post (1:1)", Width: 1080, Height: 1080},
	{Name: "portrait", Label: "Instagram Portre (4:5)", Width: 1080, Height: 1350},
	{Name: "story", Label: "Instagram Story (9:16)", Width: 1080, Height: 1920},
	{Name: "wide", Label: "Twitter/X Görseli (16:9)", Width: 1920, Height: 1080},
	{Name: "a4", Label: "A4 Afiş (300dpi)", Width: 2480, Height: 3508},
}

// SizePresets preset listesinin kopyasını döner.
func SizePresets() []CanvasSize {
	out := make([]CanvasSize, len(sizePresets))
	copy(out, sizePresets)
	return out
}

// ResolveSize preset adını boyuta çevirir. "custom" için width/height
// kullanılır; tanınmayan ad veya geçersiz özel boyut square'e düşer.
func ResolveSize(name string, width, height int) CanvasSize {
	if name == "custom" {
		if width > 0 && height > 0 {
			return CanvasSize{Name: "custom", Label: "Özel Boyut", Width: width, Height: height}
		}
		return sizePresets[0]
	}
	for _, p := range sizePresets {
		if p.Name == name {
			return p
		}
	}
	return sizePresets[0]
}

// Scale 1080 tabanına göre ölçek katsayısı.
func (s CanvasSize) Scale() float64 {
	return float64(s.Width) / BaseWidth
}
