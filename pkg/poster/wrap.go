package poster

import (
	"strings"

	"github.com/fogleman/gg"
)

// WrapText metni ölçülen piksel genişliğine göre satırlara böler. Kelimeler
// sırayla mevcut satıra eklenir; sıradaki kelime sınırı aşacaksa satır
// kapatılıp yenisi açılır. Tek başına sınırdan uzun bir kelime yine de kendi
// satırına yazılır (taşma kabul edilir).
func WrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if w, _ := dc.MeasureString(candidate); w > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// drawWrapped satırları verilen merkez noktadan aşağı doğru yazar ve son
// satırın alt y koordinatını döner.
func drawWrapped(dc *gg.Context, text string, cx, y, maxWidth, lineHeight float64) float64 {
	for _, line := range WrapText(dc, text, maxWidth) {
		dc.DrawStringAnchored(line, cx, y, 0.5, 0.5)
		y += lineHeight
	}
	return y
}

// drawWrappedLeft sola hizalı varyant.
func drawWrappedLeft(dc *gg.Context, text string, x, y, maxWidth, lineHeight float64) float64 {
	for _, line := range WrapText(dc, text, maxWidth) {
		dc.DrawStringAnchored(line, x, y, 0, 0.5)
		y += lineHeight
	}
	return y
}
